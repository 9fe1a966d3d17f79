package huffman

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestEncodeBits(t *testing.T) {
	_, table := buildClassic(t)
	var buf bytes.Buffer
	nbits, err := EncodeBits(&buf, []rune("abcdef"), table)
	if err != nil {
		t.Fatal(err)
	}
	if nbits != 18 {
		t.Errorf("expected 18 bits, got %d", nbits)
	}
	expect := []byte{0xcd, 0x97, 0x80}
	if !bytes.Equal(buf.Bytes(), expect) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expect, buf.Bytes())
	}
}

func TestEncodeBits_UnknownSymbol(t *testing.T) {
	_, table := buildClassic(t)
	var buf bytes.Buffer
	_, err := EncodeBits(&buf, []rune("fz"), table)
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected nothing written, got %d bytes", buf.Len())
	}
}

func TestDecodeBits(t *testing.T) {
	tree, _ := buildClassic(t)
	decoded, err := DecodeBits(bytes.NewReader([]byte{0xcd, 0x97, 0x80}), 18, tree)
	if err != nil {
		t.Fatal(err)
	}
	if string(decoded) != "abcdef" {
		t.Errorf("expected %q, got %q", "abcdef", string(decoded))
	}
}

func TestDecodeBits_Malformed(t *testing.T) {
	tree, _ := buildClassic(t)

	type testRow struct {
		name  string
		data  []byte
		nbits int64
	}

	testData := [...]testRow{
		{name: "short input", data: []byte{0xcd}, nbits: 18},
		{name: "dangling path", data: []byte{0xcd, 0x97, 0x80}, nbits: 16},
		{name: "negative", data: nil, nbits: -1},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := DecodeBits(bytes.NewReader(row.data), row.nbits, tree)
			if !errors.Is(err, ErrMalformedStream) {
				t.Errorf("expected ErrMalformedStream, got %v", err)
			}
		})
	}
}

func TestBits_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		entries := randomAlphabet(rng)
		tree, err := BuildTree(entries)
		if err != nil {
			t.Fatal(err)
		}
		table := BuildCodeTable(tree)
		message := randomMessage(rng, entries)

		var buf bytes.Buffer
		nbits, err := EncodeBits(&buf, message, table)
		if err != nil {
			t.Fatal(err)
		}
		if want := (nbits + 7) / 8; int64(buf.Len()) != want {
			t.Errorf("round %d: %d bits packed into %d bytes, want %d", i, nbits, buf.Len(), want)
		}
		decoded, err := DecodeBits(&buf, nbits, tree)
		if err != nil {
			t.Fatal(err)
		}
		if string(decoded) != string(message) {
			t.Fatalf("round %d: round trip changed the message", i)
		}
	}
}
