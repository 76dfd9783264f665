package tag_seq

import (
	"bufio"
	"fmt"
	"io"
)

// Prompter collects run inputs interactively, asking again after each
// invalid answer until one validates or input runs out.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

func (p *Prompter) Length() (int, error) {
	return askUntilValid(p, "Sequence length: ", ValidateLength)
}

func (p *Prompter) ID() (string, error) {
	return askUntilValid(p, "Sequence ID: ", ValidateID)
}

func (p *Prompter) Description() (string, error) {
	return askUntilValid(p, "Sequence description: ", CleanDescription)
}

func (p *Prompter) Label() (string, error) {
	return askUntilValid(p, "Label to insert: ", ValidateLabel)
}

func askUntilValid[T any](p *Prompter, question string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		fmt.Fprint(p.out, question)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return zero, fmt.Errorf("reading answer: %w", err)
			}
			return zero, fmt.Errorf("reading answer: %w", io.ErrUnexpectedEOF)
		}
		v, err := parse(p.in.Text())
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input:", err)
			continue
		}
		return v, nil
	}
}
