package engine

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/FitrahHaque/Huffman-Engine/compressor/huffman"
)

// DefaultDemoText is the sentence the demo encodes when none is given.
const DefaultDemoText = "this is an example for huffman encoding"

// DemoResult holds every stage of a round trip over a piece of text.
type DemoResult struct {
	Original string
	Entries  []huffman.Entry
	Table    huffman.CodeTable
	Encoded  string
	Decoded  string
}

// Demo counts the characters of text, builds their code and round-trips the
// text through the '0'/'1' representation of the code stream.
func Demo(text string) (*DemoResult, error) {
	symbols := []rune(text)
	entries := huffman.CountSymbols(symbols)
	tree, err := huffman.BuildTree(entries)
	if err != nil {
		return nil, err
	}
	table := huffman.BuildCodeTable(tree)
	encoded, err := huffman.Encode(symbols, table)
	if err != nil {
		return nil, err
	}
	decoded, err := huffman.Decode(encoded, tree)
	if err != nil {
		return nil, err
	}
	return &DemoResult{
		Original: text,
		Entries:  entries,
		Table:    table,
		Encoded:  encoded,
		Decoded:  string(decoded),
	}, nil
}

// Print writes the result the way the command line shows it.
func (dr *DemoResult) Print(w io.Writer) error {
	if _, err := dr.Table.Dump(w); err != nil {
		return err
	}
	heading := color.New(color.FgCyan).SprintFunc()
	if _, err := fmt.Fprintf(w, "%s %s\n", heading("Original Text:"), dr.Original); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s %s\n", heading("Encoded Text:"), dr.Encoded); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s %s\n", heading("Decoded Text:"), dr.Decoded)
	return err
}
