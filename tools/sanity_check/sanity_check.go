package sanity_check

import (
	"fmt"
	"io"
	"os"

	"seq_tagger_go/config" // Version control file
	"seq_tagger_go/tools/tag_seq"
)

const checkSeed = 1637

// Run performs a simple sanity check to ensure Seq Tagger is
// running properly printing helpful message and version number.
func Run(args []string) {
	if err := SelfTest(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Sanity check failed:", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully running Seq Tagger! (%s)\n", config.Main_version)
}

// SelfTest generates a seeded sequence, labels it and formats it in memory
func SelfTest(w io.Writer) error {
	rng := tag_seq.NewRand(checkSeed)
	seq := tag_seq.GenerateDNA(rng, tag_seq.LineWidth)
	comp := tag_seq.ComputeComposition(seq)
	if comp.Length != tag_seq.LineWidth {
		return fmt.Errorf("generated %d bases, want %d", comp.Length, tag_seq.LineWidth)
	}
	labeled, offset := tag_seq.InsertLabel(rng, seq, "check")
	restored, err := tag_seq.RemoveLabel(labeled, "check", offset)
	if err != nil {
		return err
	}
	if restored != seq {
		return fmt.Errorf("label removal did not restore the sequence")
	}
	return tag_seq.FormatRecord(w, tag_seq.RecordHeader("sanity_check", "self test"), labeled)
}
