package huffman

import "errors"

var (
	ErrEmptyAlphabet    = errors.New("huffman: empty alphabet")
	ErrInvalidFrequency = errors.New("huffman: invalid frequency")
	ErrDuplicateSymbol  = errors.New("huffman: duplicate symbol")
	ErrCapacityExceeded = errors.New("huffman: priority queue capacity exceeded")
	ErrQueueEmpty       = errors.New("huffman: priority queue is empty")
	ErrUnknownSymbol    = errors.New("huffman: unknown symbol")
	ErrMalformedStream  = errors.New("huffman: malformed stream")
	ErrInvalidHeader    = errors.New("huffman: invalid header")
)
