package huffman

import (
	"fmt"
	"strings"
)

// Encode concatenates the codes of symbols in input order. Every symbol is
// checked before any output is produced.
func Encode(symbols []rune, table CodeTable) (string, error) {
	size, err := encodedLength(symbols, table)
	if err != nil {
		return "", err
	}
	var output strings.Builder
	output.Grow(size)
	for _, symbol := range symbols {
		output.WriteString(string(table[symbol]))
	}
	return output.String(), nil
}

// Decode turns a stream of '0' and '1' characters back into symbols by walking
// tree from the root, emitting a symbol and restarting at every leaf.
func Decode(stream string, tree *Tree) ([]rune, error) {
	walk := newTreeWalker(tree)
	var symbols []rune
	for i := 0; i < len(stream); i++ {
		var bit bool
		switch stream[i] {
		case '0':
		case '1':
			bit = true
		default:
			return nil, fmt.Errorf("%w: invalid character %q at offset %d", ErrMalformedStream, stream[i], i)
		}
		if symbol, ok := walk.step(bit); ok {
			symbols = append(symbols, symbol)
		}
	}
	if err := walk.finish(); err != nil {
		return nil, err
	}
	return symbols, nil
}

func encodedLength(symbols []rune, table CodeTable) (int, error) {
	size := 0
	for i, symbol := range symbols {
		code, ok := table[symbol]
		if !ok {
			return 0, fmt.Errorf("%w: %q at position %d", ErrUnknownSymbol, symbol, i)
		}
		size += code.Len()
	}
	return size, nil
}

// treeWalker holds the position of a decode in progress.
type treeWalker struct {
	root    huffmanTree
	current huffmanTree
	// steps taken since the last emitted symbol
	pending int
}

func newTreeWalker(tree *Tree) *treeWalker {
	return &treeWalker{root: tree.root, current: tree.root}
}

// step follows one bit, 0 to the left and 1 to the right. It reports the
// symbol of the leaf it lands on, after which the walk starts over at the
// root. On a single-leaf tree every bit lands on the root leaf.
func (tw *treeWalker) step(bit bool) (rune, bool) {
	if node, ok := tw.current.(huffmanNode); ok {
		if bit {
			tw.current = node.right
		} else {
			tw.current = node.left
		}
	}
	tw.pending++
	leaf, ok := tw.current.(huffmanLeaf)
	if !ok {
		return 0, false
	}
	tw.current = tw.root
	tw.pending = 0
	return leaf.symbol, true
}

func (tw *treeWalker) finish() error {
	if tw.pending != 0 {
		return fmt.Errorf("%w: stream ends %d bits into a code", ErrMalformedStream, tw.pending)
	}
	return nil
}
