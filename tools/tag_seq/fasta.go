package tag_seq

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	common "seq_tagger_go/utils"
)

// LineWidth is the number of sequence characters per record line
const LineWidth = 60

// RecordFileName is the file a record with this identifier is written to
func RecordFileName(id string) string {
	return id + ".fasta"
}

// RecordHeader joins identifier and free-text description
func RecordHeader(id, description string) string {
	return id + " " + description
}

// FormatRecord writes a '>' header line followed by seq wrapped at LineWidth
func FormatRecord(w io.Writer, header, seq string) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, ">%s\n", header); err != nil {
		return err
	}
	if _, err := bw.WriteString(common.WrapFasta(seq, LineWidth)); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteRecord truncates or creates path and writes one record to it.
// With gz set, ".gz" is appended and the record is gzip-compressed.
// The path actually written is returned.
func WriteRecord(path, header, seq string, gz bool) (outPath string, err error) {
	outPath = path
	if gz {
		outPath += ".gz"
	}

	file, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", outPath, cerr)
		}
	}()

	var w io.Writer = file
	if gz {
		zw := gzip.NewWriter(file)
		defer func() {
			if cerr := zw.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to finish gzip stream %s: %w", outPath, cerr)
			}
		}()
		w = zw
	}

	if err = FormatRecord(w, header, seq); err != nil {
		return outPath, fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return outPath, nil
}
