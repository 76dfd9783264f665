package tag_seq

import (
	"fmt"
	"math/rand"
)

// InsertLabel splices label into seq at an offset drawn uniformly from
// [0, len(seq)]. It returns the labeled copy and the zero-based offset.
func InsertLabel(rng *rand.Rand, seq, label string) (string, int) {
	offset := rng.Intn(len(seq) + 1)
	return SpliceLabel(seq, label, offset), offset
}

// SpliceLabel places label before seq[offset]. offset must lie in [0, len(seq)].
func SpliceLabel(seq, label string, offset int) string {
	return seq[:offset] + label + seq[offset:]
}

// RemoveLabel undoes SpliceLabel, failing if label is not found at offset
func RemoveLabel(labeled, label string, offset int) (string, error) {
	end := offset + len(label)
	if offset < 0 || end > len(labeled) {
		return "", fmt.Errorf("label %q at offset %d runs past sequence end (%d)", label, offset, len(labeled))
	}
	if labeled[offset:end] != label {
		return "", fmt.Errorf("found %q at offset %d, expected label %q", labeled[offset:end], offset, label)
	}
	return labeled[:offset] + labeled[end:], nil
}
