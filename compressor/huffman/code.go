package huffman

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	"github.com/chronos-tachyon/assert"
)

// Code is the path from the root to a leaf, one '0' (left) or '1' (right)
// per edge.
type Code string

// Len returns the number of bits in the code.
func (c Code) Len() int {
	return len(c)
}

// CodeTable maps every symbol of a tree's alphabet to its code. No code in a
// table is a prefix of another.
type CodeTable map[rune]Code

// BuildCodeTable walks t once and records the code of every leaf. The sole
// symbol of a single-leaf tree gets the one-bit code "0", since an empty code
// could not be decoded.
func BuildCodeTable(t *Tree) CodeTable {
	symbolEnc := make(CodeTable, t.alphabet)
	if leaf, ok := t.root.(huffmanLeaf); ok {
		symbolEnc[leaf.symbol] = "0"
		return symbolEnc
	}
	getSymbolEncoding(t.root, symbolEnc, []byte{})
	assert.Assertf(len(symbolEnc) == t.alphabet, "code table has %d symbols, tree has %d", len(symbolEnc), t.alphabet)
	return symbolEnc
}

func getSymbolEncoding(tree huffmanTree, symbolEnc CodeTable, currentPrefix []byte) {
	switch i := tree.(type) {
	case huffmanLeaf:
		symbolEnc[i.symbol] = Code(currentPrefix)
	case huffmanNode:
		getSymbolEncoding(i.left, symbolEnc, append(currentPrefix, '0'))
		getSymbolEncoding(i.right, symbolEnc, append(currentPrefix, '1'))
	}
}

// Symbols returns the symbols of the table in ascending order.
func (ct CodeTable) Symbols() []rune {
	symbols := make([]rune, 0, len(ct))
	for s := range ct {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)
	return symbols
}

// Lengths returns the code length of every symbol.
func (ct CodeTable) Lengths() map[rune]int {
	lengths := make(map[rune]int, len(ct))
	for s, c := range ct {
		lengths[s] = c.Len()
	}
	return lengths
}

// WeightedLength is the sum of frequency times code length over entries,
// which is the length in bits of any input with exactly those frequencies.
func (ct CodeTable) WeightedLength(entries []Entry) (int, error) {
	total := 0
	for _, entry := range entries {
		code, ok := ct[entry.Symbol]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, entry.Symbol)
		}
		total += entry.Frequency * code.Len()
	}
	return total, nil
}

// Dump writes a programmer-readable listing of the table to w, one symbol per
// line in symbol order.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, s := range ct.Symbols() {
		fmt.Fprintf(&buf, "\t%q = %q\n", s, string(ct[s]))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
