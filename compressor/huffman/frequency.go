package huffman

import "slices"

// Entry is one symbol of an alphabet together with the number of times it occurs.
type Entry struct {
	Symbol    rune
	Frequency int
}

// CountSymbols builds the frequency table of symbols. Entries are sorted by
// symbol so the same input always yields the same tree.
func CountSymbols(symbols []rune) []Entry {
	symbolFreq := make(map[rune]int)
	for _, s := range symbols {
		symbolFreq[s]++
	}
	return sortedEntries(symbolFreq)
}

// CountBytes is CountSymbols over raw bytes, one symbol per byte value.
func CountBytes(data []byte) []Entry {
	var byteFreq [256]int
	for _, b := range data {
		byteFreq[b]++
	}
	var entries []Entry
	for b, freq := range byteFreq {
		if freq > 0 {
			entries = append(entries, Entry{Symbol: rune(b), Frequency: freq})
		}
	}
	return entries
}

func sortedEntries(symbolFreq map[rune]int) []Entry {
	keys := make([]rune, 0, len(symbolFreq))
	for r := range symbolFreq {
		keys = append(keys, r)
	}
	slices.Sort(keys)
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, Entry{Symbol: key, Frequency: symbolFreq[key]})
	}
	return entries
}
