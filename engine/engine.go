package engine

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	pb "github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"

	"github.com/FitrahHaque/Huffman-Engine/compressor/huffman"
)

var Engines = [...]string{
	"huffman",
}

// Output receives progress bars and reports. Quiet silences both.
var (
	Output io.Writer = os.Stdout
	Quiet  bool
)

const chunkSize = 64 * 1024

type compressor struct {
	compressionEngine string
	compressedContent []byte
}

type decompressor struct {
	decompressionEngine string
	decompressedContent []byte
}

var writers = map[string]func(io.Writer) io.WriteCloser{
	"huffman": huffman.NewCompressionWriter,
}

var readers = map[string]func() (io.ReadCloser, io.WriteCloser){
	"huffman": huffman.NewDecompressionReaderAndWriter,
}

func (c *compressor) write(content []byte, bar *pb.ProgressBar) (int, error) {
	newWriter, ok := writers[c.compressionEngine]
	if !ok {
		return 0, fmt.Errorf("unknown compression algorithm %q", c.compressionEngine)
	}
	var b bytes.Buffer
	w := newWriter(&b)
	for start := 0; start < len(content); start += chunkSize {
		end := min(start+chunkSize, len(content))
		if _, err := w.Write(content[start:end]); err != nil {
			return 0, err
		}
		bar.Add(end - start)
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	c.compressedContent = b.Bytes()
	return len(c.compressedContent), nil
}

func (d *decompressor) read(content []byte, bar *pb.ProgressBar) (int, error) {
	newReaderAndWriter, ok := readers[d.decompressionEngine]
	if !ok {
		return 0, fmt.Errorf("unknown decompression algorithm %q", d.decompressionEngine)
	}
	r, w := newReaderAndWriter()
	defer r.Close()
	for start := 0; start < len(content); start += chunkSize {
		end := min(start+chunkSize, len(content))
		if _, err := w.Write(content[start:end]); err != nil {
			return 0, err
		}
		bar.Add(end - start)
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	decompressed, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	d.decompressedContent = decompressed
	return len(decompressed), nil
}

// CompressFiles compresses every file into file+fileExtension, running the
// algorithms in the given order.
func CompressFiles(algorithms []string, files []string, fileExtension string) error {
	for _, file := range files {
		if _, err := compressFile(algorithms, file, file+fileExtension); err != nil {
			return fmt.Errorf("compressing %s: %w", file, err)
		}
	}
	return nil
}

// DecompressFiles undoes CompressFiles. The output name drops fileExtension,
// or gains ".out" when the input does not carry it.
func DecompressFiles(algorithms []string, files []string, fileExtension string) error {
	for _, file := range files {
		outputFileName := file + ".out"
		if fileExtension != "" && strings.HasSuffix(file, fileExtension) && len(file) > len(fileExtension) {
			outputFileName = strings.TrimSuffix(file, fileExtension)
		}
		if _, err := decompressFile(algorithms, file, outputFileName); err != nil {
			return fmt.Errorf("decompressing %s: %w", file, err)
		}
	}
	return nil
}

func compressFile(algorithms []string, filePath string, outputFileName string) ([]byte, error) {
	fileContent, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	report(color.CyanString("Compressing %s...", filePath))
	compressed, err := compress(fileContent, algorithms)
	if err != nil {
		return nil, err
	}
	if err = os.WriteFile(outputFileName, compressed, 0644); err != nil {
		return nil, err
	}
	report(fmt.Sprintf("Original size (in bytes): %v", len(fileContent)))
	report(fmt.Sprintf("Compressed size (in bytes): %v", len(compressed)))
	report(color.GreenString("Compression ratio: %.2f%%", ratio(len(compressed), len(fileContent))))
	return compressed, nil
}

func decompressFile(algorithms []string, filePath string, outputFileName string) ([]byte, error) {
	fileContent, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	report(color.CyanString("Decompressing %s...", filePath))
	decompressed, err := decompress(fileContent, algorithms)
	if err != nil {
		return nil, err
	}
	if err = os.WriteFile(outputFileName, decompressed, 0644); err != nil {
		return nil, err
	}
	report(color.GreenString("Restored %v bytes into %s", len(decompressed), outputFileName))
	return decompressed, nil
}

func compress(content []byte, algorithms []string) ([]byte, error) {
	for _, algorithm := range algorithms {
		file := compressor{
			compressionEngine: algorithm,
		}
		bar := newBar(len(content))
		_, err := file.write(content, bar)
		bar.Finish()
		if err != nil {
			return nil, err
		}
		content = file.compressedContent
	}
	return content, nil
}

func decompress(content []byte, algorithms []string) ([]byte, error) {
	for i := len(algorithms) - 1; i >= 0; i-- {
		file := decompressor{
			decompressionEngine: algorithms[i],
		}
		bar := newBar(len(content))
		_, err := file.read(content, bar)
		bar.Finish()
		if err != nil {
			return nil, err
		}
		content = file.decompressedContent
	}
	return content, nil
}

func newBar(total int) *pb.ProgressBar {
	bar := pb.New(total)
	bar.Set(pb.Bytes, true)
	if Quiet {
		bar.SetWriter(io.Discard)
	} else {
		bar.SetWriter(Output)
	}
	return bar.Start()
}

func report(line string) {
	if Quiet {
		return
	}
	fmt.Fprintln(Output, line)
}

func ratio(compressed, original int) float64 {
	if original == 0 {
		return 0
	}
	return float64(compressed) / float64(original) * 100
}
