package tag_seq

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintReport(t *testing.T) {
	res := Result{
		Offset:      5,
		Composition: ComputeComposition("AAACCGGTTT"),
		RecordPath:  "seq1.fasta",
	}
	var buf bytes.Buffer
	PrintReport(&buf, res)
	out := buf.String()

	assert.Contains(t, out, "Wrote FASTA record to seq1.fasta\n")
	assert.Contains(t, out, "Label inserted at position: 6 (1-based)\n")
	assert.Contains(t, out, "A: 30.0%\nC: 20.0%\nG: 20.0%\nT: 30.0%\n")
	assert.Contains(t, out, "CG/AT ratio: 66.7%\n")
	assert.Contains(t, out, "Counts: A=3 C=2 G=2 T=3 (total 10)\n")
	assert.NotContains(t, out, "Composition chart")
}

func TestPrintCompositionInfinite(t *testing.T) {
	var buf bytes.Buffer
	PrintComposition(&buf, ComputeComposition("GGCC"))
	assert.Contains(t, buf.String(), "CG/AT ratio: infinite (no A/T bases)\n")
}
