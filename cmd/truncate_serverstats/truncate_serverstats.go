// Truncate a serverstats_grab .dat file to a wall-clock time window.
//
// Usage:
//
//	truncate_serverstats input.dat output.dat [--from HH:MM:SS] [--to HH:MM:SS]
//
// The input is copied to the output with `#` metadata lines kept as-is and
// sample rows kept only when the local time of day of their epoch timestamp
// (second column) falls inside the window, both bounds inclusive.  Either
// bound may be omitted.  Names ending in .gz or .zst are read and written
// through the matching codec, so rotated logs can be cut directly.

package main

import (
	"flag"
	"fmt"
	"os"

	"serverstats-tools/hms"
	"serverstats-tools/statlog"
)

func main() {
	inputFile, outputFile, window := commandLine(os.Args[1:])
	if err := statlog.Truncate(inputFile, outputFile, window); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Done. Wrote: %s\n", outputFile)
}

func commandLine(args []string) (inputFile, outputFile string, window hms.Window) {
	var fromStr, toStr string
	fs := newFlags(&fromStr, &toStr)

	// Options may come before or after the file operands, so reparse the
	// remainder after each operand instead of relying on a single Parse,
	// which stops at the first non-option.
	files := []string{}
	fs.Parse(args)
	for fs.NArg() > 0 {
		files = append(files, fs.Arg(0))
		fs.Parse(fs.Args()[1:])
	}
	if len(files) != 2 {
		fs.Usage()
		os.Exit(2)
	}

	// Bounds are validated here, before any file is touched.
	window, err := hms.WindowOf(fromStr, toStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	return files[0], files[1], window
}

// newFlags builds the truncator's flag set; its Usage documents the file
// operands after the options and writes to the set's configured output.
func newFlags(fromStr, toStr *string) *flag.FlagSet {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.StringVar(fromStr, "from", "", "Keep rows at or after this `time`, strict HH:MM:SS")
	fs.StringVar(toStr, "to", "", "Keep rows at or before this `time`, strict HH:MM:SS")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [options] input-file output-file\nOptions:\n", os.Args[0])
		fs.PrintDefaults()
		fmt.Fprintf(out, "  input-file\n    \t.dat file to truncate\n")
		fmt.Fprintf(out, "  output-file\n    \tDestination for the kept rows (overwritten if it exists)\n")
	}
	return fs
}
