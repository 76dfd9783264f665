package tag_seq

import (
	"math/rand"
	"path/filepath"
)

// Request carries the validated inputs of one run
type Request struct {
	Length      int
	ID          string
	Description string
	Label       string
}

// Options controls where and how the record is written
type Options struct {
	OutDir string
	Gzip   bool
	Plot   bool
}

// Result summarizes one run for reporting
type Result struct {
	Request
	Sequence    string // as generated, without the label
	Labeled     string
	Offset      int // zero-based insertion offset
	Composition Composition
	RecordPath  string
	ChartPath   string
}

// Position is the one-based insertion position shown to users
func (r Result) Position() int {
	return r.Offset + 1
}

// Build generates a sequence, computes its composition, inserts the label
// and writes the record. rng is consumed by generation first, then insertion.
func Build(rng *rand.Rand, req Request, opts Options) (Result, error) {
	seq := GenerateDNA(rng, req.Length)
	comp := ComputeComposition(seq)
	labeled, offset := InsertLabel(rng, seq, req.Label)

	path := filepath.Join(opts.OutDir, RecordFileName(req.ID))
	written, err := WriteRecord(path, RecordHeader(req.ID, req.Description), labeled, opts.Gzip)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Request:     req,
		Sequence:    seq,
		Labeled:     labeled,
		Offset:      offset,
		Composition: comp,
		RecordPath:  written,
	}

	if opts.Plot {
		res.ChartPath = filepath.Join(opts.OutDir, req.ID+"_composition.svg")
		if err := WriteCompositionChart(res.ChartPath, req.ID, comp); err != nil {
			return res, err
		}
	}
	return res, nil
}
