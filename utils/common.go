// Common package contains commonly used functions that benefit multiple tools
// Exporting these functions from the Common package reduces redundant code
package common

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// WrapFasta breaks seq into lines of width characters, each newline-terminated.
// The last line may be shorter. An empty seq gives "".
func WrapFasta(seq string, width int) string {
	var out strings.Builder
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		out.WriteString(seq[i:end])
		out.WriteByte('\n')
	}
	return out.String()
}

// FastaRecord is one header plus its concatenated sequence lines
type FastaRecord struct {
	Header      string // without the leading '>'
	Sequence    string
	LineLengths []int // length of each sequence line, in file order
}

// ReadFasta parses all records from r. Blank lines are skipped.
// Sequence data appearing before the first header is an error.
func ReadFasta(r io.Reader) ([]FastaRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var records []FastaRecord
	var current *FastaRecord
	var buffer strings.Builder
	lineNum := 0

	flush := func() {
		if current != nil {
			current.Sequence = buffer.String()
			records = append(records, *current)
		}
		buffer.Reset()
	}

	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			current = &FastaRecord{Header: line[1:]}
			continue
		}
		if current == nil {
			return nil, fmt.Errorf("line %d: sequence data before first header", lineNum)
		}
		current.LineLengths = append(current.LineLengths, len(line))
		buffer.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	flush()
	return records, nil
}

// ReadFastaFile maps file read-only and parses it, decompressing when the
// content starts with the gzip magic bytes.
func ReadFastaFile(file string) ([]FastaRecord, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%s is empty", file)
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to map file: %w", err)
	}
	defer mm.Unmap()

	var reader io.Reader = bytes.NewReader(mm)
	if len(mm) >= 2 && mm[0] == 0x1F && mm[1] == 0x8B {
		gr, err := gzip.NewReader(bytes.NewReader(mm))
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		defer gr.Close()
		reader = gr
	}
	return ReadFasta(reader)
}
