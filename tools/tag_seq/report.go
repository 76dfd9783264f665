package tag_seq

import (
	"fmt"
	"io"
)

// PrintReport writes the human-readable run summary
func PrintReport(w io.Writer, res Result) {
	fmt.Fprintf(w, "\nWrote FASTA record to %s\n", res.RecordPath)
	fmt.Fprintf(w, "Label inserted at position: %d (1-based)\n", res.Position())
	fmt.Fprintln(w, "\nSequence composition (label excluded):")
	PrintComposition(w, res.Composition)
	if res.ChartPath != "" {
		fmt.Fprintf(w, "Composition chart: %s\n", res.ChartPath)
	}
}

// PrintComposition writes percentages in alphabet order, the CG/AT ratio,
// then raw counts and entropy.
func PrintComposition(w io.Writer, comp Composition) {
	for i := 0; i < len(Nucleotides); i++ {
		base := Nucleotides[i]
		fmt.Fprintf(w, "%c: %.1f%%\n", base, comp.Percent[base])
	}
	if comp.RatioIsInfinite() {
		fmt.Fprintln(w, "CG/AT ratio: infinite (no A/T bases)")
	} else {
		fmt.Fprintf(w, "CG/AT ratio: %.1f%%\n", comp.CGvsAT)
	}
	fmt.Fprintf(w, "Counts: A=%d C=%d G=%d T=%d (total %d)\n",
		comp.Counts['A'], comp.Counts['C'], comp.Counts['G'], comp.Counts['T'], comp.Length)
	fmt.Fprintf(w, "Shannon entropy: %.3f bits\n", comp.Entropy)
}
