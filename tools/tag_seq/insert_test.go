package tag_seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpliceLabel(t *testing.T) {
	got := SpliceLabel("ACGTACGTAC", "XY", 5)
	assert.Equal(t, "ACGTAXYCGTAC", got)
	assert.Len(t, got, 12)
	assert.Equal(t, 6, Result{Offset: 5}.Position())
}

func TestSpliceLabelEnds(t *testing.T) {
	assert.Equal(t, "XYACGT", SpliceLabel("ACGT", "XY", 0))
	assert.Equal(t, "ACGTXY", SpliceLabel("ACGT", "XY", 4))
	assert.Equal(t, "Ada", SpliceLabel("", "Ada", 0))
}

func TestInsertLabelRoundTrip(t *testing.T) {
	rng := NewRand(11)
	for i := 0; i < 300; i++ {
		seq := GenerateDNA(rng, rng.Intn(80))
		labeled, offset := InsertLabel(rng, seq, "Grace")

		require.GreaterOrEqual(t, offset, 0)
		require.LessOrEqual(t, offset, len(seq))
		require.Len(t, labeled, len(seq)+len("Grace"))

		restored, err := RemoveLabel(labeled, "Grace", offset)
		require.NoError(t, err)
		require.Equal(t, seq, restored)
	}
}

func TestInsertLabelReachesBothEnds(t *testing.T) {
	rng := NewRand(3)
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		_, offset := InsertLabel(rng, "AC", "x")
		seen[offset] = true
	}
	assert.Equal(t, map[int]bool{0: true, 1: true, 2: true}, seen)
}

func TestRemoveLabelErrors(t *testing.T) {
	_, err := RemoveLabel("ACGTXY", "XY", 5)
	assert.Error(t, err)

	_, err = RemoveLabel("ACGTXY", "XY", 3)
	assert.ErrorContains(t, err, "expected label")

	_, err = RemoveLabel("ACGTXY", "XY", -1)
	assert.Error(t, err)
}
