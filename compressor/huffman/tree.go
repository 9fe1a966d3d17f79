package huffman

import (
	"fmt"
	"math"

	"github.com/chronos-tachyon/assert"
)

type huffmanTree interface {
	getFrequency() int
	getId() int
}

type huffmanLeaf struct {
	freq, id int
	symbol   rune
}

type huffmanNode struct {
	freq, id    int
	left, right huffmanTree
}

func (leaf huffmanLeaf) getId() int {
	return leaf.id
}

func (leaf huffmanLeaf) getFrequency() int {
	return leaf.freq
}

func (node huffmanNode) getFrequency() int {
	return node.freq
}

func (node huffmanNode) getId() int {
	return node.id
}

// Tree is a Huffman tree built from a static frequency table. It is never
// modified after BuildTree returns, so it may be shared by readers.
type Tree struct {
	root     huffmanTree
	alphabet int
}

// BuildTree builds the Huffman tree for entries by greedily merging the two
// least frequent nodes until one root remains. Leaves are queued in entry
// order, which decides ties between equal frequencies.
func BuildTree(entries []Entry) (*Tree, error) {
	if err := validateEntries(entries); err != nil {
		return nil, err
	}
	treehub := newPriorityQueue(len(entries))
	monoId := 0
	for _, entry := range entries {
		if err := treehub.insert(huffmanLeaf{
			freq:   entry.Frequency,
			symbol: entry.Symbol,
			id:     monoId,
		}); err != nil {
			return nil, err
		}
		monoId++
	}
	for treehub.size() > 1 {
		x, err := treehub.extractMin()
		if err != nil {
			return nil, err
		}
		y, err := treehub.extractMin()
		if err != nil {
			return nil, err
		}
		if err = treehub.insert(huffmanNode{
			freq:  x.getFrequency() + y.getFrequency(),
			left:  x,
			right: y,
			id:    monoId,
		}); err != nil {
			return nil, err
		}
		monoId++
	}
	root, err := treehub.extractMin()
	if err != nil {
		return nil, err
	}
	assert.Assertf(monoId == 2*len(entries)-1, "created %d nodes for %d symbols", monoId, len(entries))
	return &Tree{root: root, alphabet: len(entries)}, nil
}

func validateEntries(entries []Entry) error {
	if len(entries) == 0 {
		return ErrEmptyAlphabet
	}
	seen := make(map[rune]struct{}, len(entries))
	total := 0
	for _, entry := range entries {
		if entry.Frequency <= 0 {
			return fmt.Errorf("%w: symbol %q has frequency %d", ErrInvalidFrequency, entry.Symbol, entry.Frequency)
		}
		if _, ok := seen[entry.Symbol]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateSymbol, entry.Symbol)
		}
		seen[entry.Symbol] = struct{}{}
		if total > math.MaxInt-entry.Frequency {
			return fmt.Errorf("%w: total frequency overflows int", ErrInvalidFrequency)
		}
		total += entry.Frequency
	}
	return nil
}

// AlphabetSize is the number of distinct symbols the tree was built from.
func (t *Tree) AlphabetSize() int {
	return t.alphabet
}

// Frequency is the weight of the root, i.e. the sum of all symbol frequencies.
func (t *Tree) Frequency() int {
	return t.root.getFrequency()
}

// InternalNodes counts the merge nodes of the tree.
func (t *Tree) InternalNodes() int {
	return countInternal(t.root)
}

// Depth is the length of the longest root-to-leaf path. A single-leaf tree
// has depth 0.
func (t *Tree) Depth() int {
	return depth(t.root)
}

func countInternal(tree huffmanTree) int {
	node, ok := tree.(huffmanNode)
	if !ok {
		return 0
	}
	return 1 + countInternal(node.left) + countInternal(node.right)
}

func depth(tree huffmanTree) int {
	node, ok := tree.(huffmanNode)
	if !ok {
		return 0
	}
	return 1 + max(depth(node.left), depth(node.right))
}
