package verify

import (
	"flag"
	"fmt"
	"os"
)

func Run(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	inFile := fs.String("in_file", "", "Input FASTA record (plain or .gz)")
	label := fs.String("label", "", "Label to exclude from statistics")
	pos := fs.Int("pos", 0, "1-based position the label was inserted at")

	err := fs.Parse(args)
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}
	if len(fs.Args()) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -in_file is required")
		fs.Usage()
		os.Exit(1)
	}
	if (*label == "") != (*pos == 0) {
		fmt.Fprintln(os.Stderr, "Error: -label and -pos must be given together")
		os.Exit(1)
	}

	rep, err := CheckFile(*inFile, *label, *pos)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	PrintReport(os.Stdout, rep)
	if !rep.WellFormed() {
		os.Exit(1)
	}
}
