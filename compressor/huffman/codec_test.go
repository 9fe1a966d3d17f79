package huffman

import (
	"errors"
	"math/rand"
	"testing"
)

func buildClassic(t *testing.T) (*Tree, CodeTable) {
	t.Helper()
	tree, err := BuildTree(classicEntries())
	if err != nil {
		t.Fatal(err)
	}
	return tree, BuildCodeTable(tree)
}

func TestEncode(t *testing.T) {
	_, table := buildClassic(t)

	type testRow struct {
		input  string
		expect string
	}

	testData := [...]testRow{
		{input: "", expect: ""},
		{input: "f", expect: "0"},
		{input: "abcdef", expect: "110011011001011110"},
		{input: "ffa", expect: "001100"},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			actual, err := Encode([]rune(row.input), table)
			if err != nil {
				t.Fatal(err)
			}
			if actual != row.expect {
				t.Errorf("expected %q, got %q", row.expect, actual)
			}
		})
	}
}

func TestEncode_UnknownSymbol(t *testing.T) {
	_, table := buildClassic(t)
	encoded, err := Encode([]rune("abz"), table)
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
	if encoded != "" {
		t.Errorf("expected no output, got %q", encoded)
	}
}

func TestDecode(t *testing.T) {
	tree, _ := buildClassic(t)
	decoded, err := Decode("110011011001011110", tree)
	if err != nil {
		t.Fatal(err)
	}
	if string(decoded) != "abcdef" {
		t.Errorf("expected %q, got %q", "abcdef", string(decoded))
	}

	decoded, err = Decode("", tree)
	if err != nil || len(decoded) != 0 {
		t.Errorf("expected empty result, got %q, %v", string(decoded), err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	tree, _ := buildClassic(t)
	for _, stream := range []string{"1", "11", "0110", "110", "0x", "0 1"} {
		t.Run(stream, func(t *testing.T) {
			decoded, err := Decode(stream, tree)
			if !errors.Is(err, ErrMalformedStream) {
				t.Errorf("expected ErrMalformedStream, got %v", err)
			}
			if decoded != nil {
				t.Errorf("expected no output, got %q", string(decoded))
			}
		})
	}
}

func TestCodec_SingleSymbol(t *testing.T) {
	tree, err := BuildTree([]Entry{{'a', 5}})
	if err != nil {
		t.Fatal(err)
	}
	table := BuildCodeTable(tree)
	encoded, err := Encode([]rune("aaaaa"), table)
	if err != nil {
		t.Fatal(err)
	}
	if encoded != "00000" {
		t.Errorf("expected %q, got %q", "00000", encoded)
	}
	decoded, err := Decode(encoded, tree)
	if err != nil {
		t.Fatal(err)
	}
	if string(decoded) != "aaaaa" {
		t.Errorf("expected %q, got %q", "aaaaa", string(decoded))
	}

	// every bit position yields the sole symbol
	decoded, err = Decode("101", tree)
	if err != nil {
		t.Fatal(err)
	}
	if string(decoded) != "aaa" {
		t.Errorf("expected %q, got %q", "aaa", string(decoded))
	}
}

func randomAlphabet(rng *rand.Rand) []Entry {
	size := 1 + rng.Intn(40)
	entries := make([]Entry, size)
	for i := range entries {
		entries[i] = Entry{Symbol: rune(0x20 + i*3), Frequency: 1 + rng.Intn(1000)}
	}
	return entries
}

func randomMessage(rng *rand.Rand, entries []Entry) []rune {
	message := make([]rune, rng.Intn(500))
	for i := range message {
		message[i] = entries[rng.Intn(len(entries))].Symbol
	}
	return message
}

func TestCodec_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		entries := randomAlphabet(rng)
		tree, err := BuildTree(entries)
		if err != nil {
			t.Fatal(err)
		}
		table := BuildCodeTable(tree)
		message := randomMessage(rng, entries)

		encoded, err := Encode(message, table)
		if err != nil {
			t.Fatal(err)
		}
		decoded, err := Decode(encoded, tree)
		if err != nil {
			t.Fatal(err)
		}
		if string(decoded) != string(message) {
			t.Fatalf("round %d: round trip changed the message", i)
		}

		weighted, err := table.WeightedLength(CountSymbols(message))
		if err != nil {
			t.Fatal(err)
		}
		if len(encoded) != weighted {
			t.Errorf("round %d: encoded %d bits, weighted length %d", i, len(encoded), weighted)
		}
	}
}
