package huffman

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
)

var magic = []byte("RSN1")

type compressionCore struct {
	isInputBufferClosed bool
	lock                sync.Mutex
	inputBuffer         *bytes.Buffer
	output              io.Writer
}

// CompressionWriter collects everything written to it and, on Close, writes
// the Huffman-compressed container to the underlying writer.
type CompressionWriter struct {
	core *compressionCore
}

type decompressionCore struct {
	isInputBufferClosed bool
	lock                sync.Mutex
	inputBuffer         *bytes.Buffer
	outputBuffer        *bytes.Buffer
}

// DecompressionWriter accepts a compressed container. Close decodes it and
// makes the result available to the paired DecompressionReader.
type DecompressionWriter struct {
	core *decompressionCore
}

type DecompressionReader struct {
	core *decompressionCore
}

func NewCompressionWriter(writer io.Writer) io.WriteCloser {
	newCompressionCore := new(compressionCore)
	newCompressionCore.inputBuffer = new(bytes.Buffer)
	newCompressionCore.output = writer
	return &CompressionWriter{core: newCompressionCore}
}

func (cw *CompressionWriter) Write(data []byte) (int, error) {
	cw.core.lock.Lock()
	defer cw.core.lock.Unlock()
	if cw.core.isInputBufferClosed {
		return 0, errors.New("huffman: write to closed compression writer")
	}
	return cw.core.inputBuffer.Write(data)
}

func (cw *CompressionWriter) Close() error {
	cw.core.lock.Lock()
	defer cw.core.lock.Unlock()
	if cw.core.isInputBufferClosed {
		return nil
	}
	cw.core.isInputBufferClosed = true
	content := cw.core.inputBuffer.Bytes()
	defer cw.core.inputBuffer.Reset()
	return compress(cw.core.output, content)
}

func NewDecompressionReaderAndWriter() (io.ReadCloser, io.WriteCloser) {
	newDecompressionCore := new(decompressionCore)
	newDecompressionCore.inputBuffer, newDecompressionCore.outputBuffer = new(bytes.Buffer), new(bytes.Buffer)
	newDecompressionCore.isInputBufferClosed = false
	newDecompressionReader, newDecompressionWriter := new(DecompressionReader), new(DecompressionWriter)
	newDecompressionReader.core, newDecompressionWriter.core = newDecompressionCore, newDecompressionCore
	return newDecompressionReader, newDecompressionWriter
}

func (dw *DecompressionWriter) Write(data []byte) (int, error) {
	dw.core.lock.Lock()
	defer dw.core.lock.Unlock()
	if dw.core.isInputBufferClosed {
		return 0, errors.New("huffman: write to closed decompression writer")
	}
	return dw.core.inputBuffer.Write(data)
}

func (dw *DecompressionWriter) Close() error {
	dw.core.lock.Lock()
	defer dw.core.lock.Unlock()
	if dw.core.isInputBufferClosed {
		return nil
	}
	dw.core.isInputBufferClosed = true
	decompressedData, err := decompress(dw.core.inputBuffer.Bytes())
	dw.core.inputBuffer.Reset()
	if err != nil {
		return err
	}
	_, err = dw.core.outputBuffer.Write(decompressedData)
	return err
}

func (dr *DecompressionReader) Read(data []byte) (int, error) {
	dr.core.lock.Lock()
	defer dr.core.lock.Unlock()
	if !dr.core.isInputBufferClosed {
		return 0, errors.New("huffman: decompression input has not been closed")
	}
	return dr.core.outputBuffer.Read(data)
}

func (dr *DecompressionReader) Close() error {
	dr.core.lock.Lock()
	defer dr.core.lock.Unlock()
	dr.core.outputBuffer.Reset()
	return nil
}

// compress writes the container for content: magic, entry count, one
// (symbol, frequency) pair per entry, bit count, then the packed codes.
func compress(w io.Writer, content []byte) error {
	entries := CountBytes(content)
	bw := bufio.NewWriter(w)
	if len(entries) == 0 {
		if err := writeHeader(bw, nil, 0); err != nil {
			return err
		}
		return bw.Flush()
	}
	tree, err := BuildTree(entries)
	if err != nil {
		return err
	}
	table := BuildCodeTable(tree)
	nbits, err := table.WeightedLength(entries)
	if err != nil {
		return err
	}
	if err = writeHeader(bw, entries, uint64(nbits)); err != nil {
		return err
	}
	symbols := make([]rune, len(content))
	for i, b := range content {
		symbols[i] = rune(b)
	}
	if _, err = EncodeBits(bw, symbols, table); err != nil {
		return err
	}
	return bw.Flush()
}

func decompress(content []byte) ([]byte, error) {
	br := bytes.NewReader(content)
	entries, nbits, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		if nbits != 0 || br.Len() != 0 {
			return nil, fmt.Errorf("%w: payload without an alphabet", ErrMalformedStream)
		}
		return []byte{}, nil
	}
	tree, err := BuildTree(entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	expected, err := BuildCodeTable(tree).WeightedLength(entries)
	if err != nil {
		return nil, err
	}
	if uint64(expected) != nbits {
		return nil, fmt.Errorf("%w: bit count %d does not match frequencies (%d)", ErrInvalidHeader, nbits, expected)
	}
	symbols, err := DecodeBits(br, int64(nbits), tree)
	if err != nil {
		return nil, err
	}
	if len(symbols) != tree.Frequency() {
		return nil, fmt.Errorf("%w: decoded %d symbols, header promises %d", ErrMalformedStream, len(symbols), tree.Frequency())
	}
	output := make([]byte, len(symbols))
	for i, s := range symbols {
		output[i] = byte(s)
	}
	return output, nil
}

func writeHeader(w io.Writer, entries []Entry, nbits uint64) error {
	var scratch [binary.MaxVarintLen64]byte
	putUvarint := func(v uint64) error {
		n := binary.PutUvarint(scratch[:], v)
		_, err := w.Write(scratch[:n])
		return err
	}
	if _, err := w.Write(magic); err != nil {
		return err
	}
	if err := putUvarint(uint64(len(entries))); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := putUvarint(uint64(entry.Symbol)); err != nil {
			return err
		}
		if err := putUvarint(uint64(entry.Frequency)); err != nil {
			return err
		}
	}
	return putUvarint(nbits)
}

func readHeader(br *bytes.Reader) ([]Entry, uint64, error) {
	givenMagic := make([]byte, len(magic))
	if _, err := io.ReadFull(br, givenMagic); err != nil || !bytes.Equal(givenMagic, magic) {
		return nil, 0, fmt.Errorf("%w: bad magic", ErrInvalidHeader)
	}
	count, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: entry count: %w", ErrInvalidHeader, err)
	}
	if count > 256 {
		return nil, 0, fmt.Errorf("%w: %d entries for a byte alphabet", ErrInvalidHeader, count)
	}
	entries := make([]Entry, 0, count)
	for i := uint64(0); i < count; i++ {
		symbol, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: symbol %d: %w", ErrInvalidHeader, i, err)
		}
		if symbol > math.MaxUint8 {
			return nil, 0, fmt.Errorf("%w: symbol %d is not a byte", ErrInvalidHeader, symbol)
		}
		freq, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: frequency %d: %w", ErrInvalidHeader, i, err)
		}
		if freq > math.MaxInt32 {
			return nil, 0, fmt.Errorf("%w: frequency %d too large", ErrInvalidHeader, freq)
		}
		entries = append(entries, Entry{Symbol: rune(symbol), Frequency: int(freq)})
	}
	nbits, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: bit count: %w", ErrInvalidHeader, err)
	}
	if nbits > uint64(br.Len())*8 {
		return nil, 0, fmt.Errorf("%w: bit count %d exceeds payload", ErrInvalidHeader, nbits)
	}
	return entries, nbits, nil
}
