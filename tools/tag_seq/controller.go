package tag_seq

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"seq_tagger_go/config"
)

func Run(args []string) {
	fs := flag.NewFlagSet("tag_seq", flag.ExitOnError)

	length := fs.Int("length", 0, "Length of generated DNA sequence (prompted if omitted)")
	id := fs.String("id", "", "Sequence ID, also the output file name (prompted if omitted)")
	desc := fs.String("desc", "", "Sequence description (FASTA header)")
	label := fs.String("label", "", "Label inserted at a random position (prompted if omitted)")
	seed := fs.Int64("seed", 0, "Seed for RNG (time-based if omitted)")
	outDir := fs.String("out_dir", ".", "Output directory")
	gzipOut := fs.Bool("gzip", false, "Compress output using gzip (.gz)")
	plotOut := fs.Bool("plot", false, "Write an SVG composition chart next to the record")
	settingsFile := fs.String("config", "", "Settings file (default: seq_tagger.yaml)")

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

	settings, err := config.Load(*settingsFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading settings:", err)
		os.Exit(1)
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	opts := Options{OutDir: settings.OutDir, Gzip: settings.Gzip, Plot: settings.Plot}
	if set["out_dir"] {
		opts.OutDir = *outDir
	}
	if set["gzip"] {
		opts.Gzip = *gzipOut
	}
	if set["plot"] {
		opts.Plot = *plotOut
	}
	runSeed := ClockSeed()
	if settings.Seed != nil {
		runSeed = *settings.Seed
	}
	if set["seed"] {
		runSeed = *seed
	}

	given := Request{Length: *length, ID: *id, Description: *desc, Label: *label}
	if !set["desc"] {
		given.Description = settings.Description
	}
	req, err := GatherRequest(given, set, NewPrompter(os.Stdin, os.Stdout))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if opts.OutDir != "" {
		if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
			fmt.Fprintln(os.Stderr, "Error creating output directory:", err)
			os.Exit(1)
		}
	}

	res, err := Build(NewRand(runSeed), req, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error writing record:", err)
		os.Exit(1)
	}
	PrintReport(os.Stdout, res)
	fmt.Printf("Seed: %d\n", runSeed)
}

// GatherRequest validates inputs given as flags and prompts for the rest.
// Invalid flag values are returned as errors; prompted answers are retried.
// The description is prompted for only when the length or ID was prompted.
func GatherRequest(given Request, set map[string]bool, p *Prompter) (Request, error) {
	req := given
	var err error
	interactive := false

	if set["length"] {
		if req.Length, err = ValidateLength(strconv.Itoa(given.Length)); err != nil {
			return Request{}, err
		}
	} else {
		interactive = true
		if req.Length, err = p.Length(); err != nil {
			return Request{}, err
		}
	}

	if set["id"] {
		if req.ID, err = ValidateID(given.ID); err != nil {
			return Request{}, err
		}
	} else {
		interactive = true
		if req.ID, err = p.ID(); err != nil {
			return Request{}, err
		}
	}

	if interactive && !set["desc"] {
		if req.Description, err = p.Description(); err != nil {
			return Request{}, err
		}
	} else {
		req.Description, _ = CleanDescription(given.Description)
	}

	if set["label"] {
		if req.Label, err = ValidateLabel(given.Label); err != nil {
			return Request{}, err
		}
	} else {
		if req.Label, err = p.Label(); err != nil {
			return Request{}, err
		}
	}
	return req, nil
}
