package tag_seq

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Composition holds base statistics of an unlabeled sequence
type Composition struct {
	Length  int
	Counts  map[byte]int
	Percent map[byte]float64 // rounded to one decimal, not normalized to 100
	CGvsAT  float64          // (C+G)/(A+T)*100 rounded, +Inf when A+T is zero
	Entropy float64          // Shannon entropy in bits
}

// ComputeComposition counts each base of seq and derives percentages,
// the CG/AT ratio and the entropy. Symbols outside Nucleotides are not counted.
func ComputeComposition(seq string) Composition {
	comp := Composition{
		Length:  len(seq),
		Counts:  make(map[byte]int, len(Nucleotides)),
		Percent: make(map[byte]float64, len(Nucleotides)),
	}
	for i := 0; i < len(Nucleotides); i++ {
		comp.Counts[Nucleotides[i]] = 0
	}
	for i := 0; i < len(seq); i++ {
		if _, ok := comp.Counts[seq[i]]; ok {
			comp.Counts[seq[i]]++
		}
	}

	probs := make([]float64, len(Nucleotides))
	for i := 0; i < len(Nucleotides); i++ {
		base := Nucleotides[i]
		comp.Percent[base] = round1(percent(comp.Counts[base], comp.Length))
		probs[i] = float64(comp.Counts[base])
	}
	if total := floats.Sum(probs); total > 0 {
		floats.Scale(1/total, probs)
		comp.Entropy = stat.Entropy(probs) / math.Ln2
	}

	cg := comp.Counts['C'] + comp.Counts['G']
	at := comp.Counts['A'] + comp.Counts['T']
	if at == 0 {
		comp.CGvsAT = math.Inf(1)
	} else {
		comp.CGvsAT = round1(float64(cg) / float64(at) * 100)
	}
	return comp
}

// RatioIsInfinite reports whether the sequence had no A or T bases
func (c Composition) RatioIsInfinite() bool {
	return math.IsInf(c.CGvsAT, 1)
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// round1 rounds the exact binary value of v to one decimal place,
// sending exact ties to the even digit (6.25 -> 6.2, 0.15 -> 0.1).
func round1(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return r
}
