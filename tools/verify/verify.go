package verify

import (
	"fmt"
	"io"
	"strings"

	"seq_tagger_go/tools/tag_seq"
	common "seq_tagger_go/utils"
)

// Report describes one FASTA record read back from disk
type Report struct {
	FileName        string
	ID              string
	Description     string
	SequenceLength  int // including any label still present
	LineCount       int
	OverlongLines   int // lines wider than tag_seq.LineWidth
	ShortInnerLines int // lines before the last one that are narrower than tag_seq.LineWidth
	LabelRemoved    bool
	Composition     tag_seq.Composition
}

// WellFormed reports whether every line but the last is exactly LineWidth wide
func (r Report) WellFormed() bool {
	return r.OverlongLines == 0 && r.ShortInnerLines == 0
}

// CheckFile reads a single-record FASTA file (plain or gzip) and checks it.
// See CheckRecord for label and pos.
func CheckFile(path, label string, pos int) (Report, error) {
	records, err := common.ReadFastaFile(path)
	if err != nil {
		return Report{}, err
	}
	if len(records) != 1 {
		return Report{}, fmt.Errorf("%s: expected exactly one record, found %d", path, len(records))
	}
	rep, err := CheckRecord(records[0], label, pos)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", path, err)
	}
	rep.FileName = path
	return rep, nil
}

// CheckRecord inspects line widths of rec and computes the composition of its
// sequence. With a non-empty label, the label is first removed at the
// one-based position pos so the numbers match the unlabeled sequence.
func CheckRecord(rec common.FastaRecord, label string, pos int) (Report, error) {
	rep := Report{
		SequenceLength: len(rec.Sequence),
		LineCount:      len(rec.LineLengths),
	}
	rep.ID, rep.Description, _ = strings.Cut(rec.Header, " ")

	for i, n := range rec.LineLengths {
		switch {
		case n > tag_seq.LineWidth:
			rep.OverlongLines++
		case n < tag_seq.LineWidth && i < len(rec.LineLengths)-1:
			rep.ShortInnerLines++
		}
	}

	seq := rec.Sequence
	if label != "" {
		if pos < 1 {
			return Report{}, fmt.Errorf("label position must be at least 1, got %d", pos)
		}
		stripped, err := tag_seq.RemoveLabel(seq, label, pos-1)
		if err != nil {
			return Report{}, err
		}
		seq = stripped
		rep.LabelRemoved = true
	}
	rep.Composition = tag_seq.ComputeComposition(seq)
	return rep, nil
}

func PrintReport(w io.Writer, rep Report) {
	fmt.Fprintf(w, "File: %s\n", rep.FileName)
	fmt.Fprintf(w, "ID: %s\n", rep.ID)
	fmt.Fprintf(w, "Description: %s\n", rep.Description)
	fmt.Fprintf(w, "Sequence length: %d bp over %d lines\n", rep.SequenceLength, rep.LineCount)
	if rep.WellFormed() {
		fmt.Fprintf(w, "Line wrapping: OK (%d columns)\n", tag_seq.LineWidth)
	} else {
		fmt.Fprintf(w, "Line wrapping: %d overlong, %d short inner lines\n", rep.OverlongLines, rep.ShortInnerLines)
	}
	if rep.LabelRemoved {
		fmt.Fprintln(w, "\nComposition (label excluded):")
	} else {
		fmt.Fprintln(w, "\nComposition:")
	}
	tag_seq.PrintComposition(w, rep.Composition)
}
