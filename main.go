package main

import (
	"fmt"
	"os"
	"strings"

	"seq_tagger_go/benchmark"
	"seq_tagger_go/config"
	"seq_tagger_go/tools/sanity_check"
	"seq_tagger_go/tools/tag_seq"
	"seq_tagger_go/tools/verify"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`Seq Tagger - Custom Help Menu
Usage:
  seq_tagger <tool> [options]

Tools:
  tag_seq		Generate a random DNA sequence, insert a label, write FASTA
  verify		Check a written record and recompute its composition
  check			Run diagnostic test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in associtation with a tool.
			Displays computational resource usage and
			pertinent operating system information
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("Seq Tagger - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tSeq Tagger:\t\t%s\n", config.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tTag Sequence:\t\t%s\n", config.Tag_Seq)
	fmt.Printf("\tVerify Record:\t\t%s\n", config.Verify)
	fmt.Printf("\tSanity Check:\t\t%s\n", config.Sanity_check)
	fmt.Printf("\tBenchmark:\t\t%s\n", config.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Scan for executible-specific help flags
	if len(os.Args) < 3 {
		for _, arg := range os.Args[1:] {
			if arg == "-h" || arg == "-help" {
				printCustomHelp()
			}
		}
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "tag_seq":
			tag_seq.Run(cleanedArgs)
		case "verify":
			verify.Run(cleanedArgs)
		case "check":
			sanity_check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("seq_tagger %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
