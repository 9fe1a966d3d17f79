package huffman

import (
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// EncodeBits writes the codes of symbols to w as packed bits, most
// significant bit first, and zero-pads the last byte. It returns the number
// of bits that carry codes. No bits are written if a symbol is unknown.
func EncodeBits(w io.Writer, symbols []rune, table CodeTable) (int64, error) {
	if _, err := encodedLength(symbols, table); err != nil {
		return 0, err
	}
	bw := bitio.NewWriter(w)
	var nbits int64
	for _, symbol := range symbols {
		for _, b := range []byte(table[symbol]) {
			if err := bw.WriteBool(b == '1'); err != nil {
				return nbits, err
			}
			nbits++
		}
	}
	if err := bw.Close(); err != nil {
		return nbits, err
	}
	return nbits, nil
}

// DecodeBits reads exactly nbits packed bits from r and decodes them against
// tree. r may be read past the last bit.
func DecodeBits(r io.Reader, nbits int64, tree *Tree) ([]rune, error) {
	if nbits < 0 {
		return nil, fmt.Errorf("%w: negative bit count %d", ErrMalformedStream, nbits)
	}
	br := bitio.NewReader(r)
	walk := newTreeWalker(tree)
	var symbols []rune
	for i := int64(0); i < nbits; i++ {
		bit, err := br.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("%w: reading bit %d of %d: %w", ErrMalformedStream, i, nbits, err)
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
