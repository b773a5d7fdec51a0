// b93 - Befunge-93 interpreter CLI
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"github.com/fungelab/b93/funge"
	"github.com/fungelab/b93/loader"
	"github.com/fungelab/b93/manifest"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	extensions := flag.Bool("x", false, "Enable extension instructions (hex literals a-f, next-cell fetch ')")
	runfile := flag.String("f", "", "Run a b93.toml runfile instead of positional files")
	trace := flag.Bool("trace", false, "Log every dispatched instruction (debug level)")
	verbosity := flag.Int("v", 0, "Log verbosity (0 = quiet, 2 = debug)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: b93 [options] [programs...]\n\n")
		fmt.Fprintf(os.Stderr, "Interprets each Befunge-93 program in order, running it to completion.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  b93 hello.b93              # Run one program\n")
		fmt.Fprintf(os.Stderr, "  b93 -x hex.b93             # Run with extensions enabled\n")
		fmt.Fprintf(os.Stderr, "  b93 -f batch.toml          # Run a declared batch\n")
		fmt.Fprintf(os.Stderr, "  b93 -trace -v 2 maze.b93   # Trace execution\n")
	}
	flag.Parse()

	commonlog.Configure(*verbosity, nil)

	if *runfile != "" {
		if flag.NArg() > 0 {
			fmt.Fprintf(os.Stderr, "Error: -f cannot be combined with positional programs\n")
			os.Exit(1)
		}
		if err := runBatch(*runfile, *trace); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	for _, path := range flag.Args() {
		if err := runProgram(path, *extensions, *trace); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// runBatch interprets every program a runfile declares, in order. The first
// resource error aborts the batch.
func runBatch(path string, trace bool) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	for _, p := range m.Programs {
		if err := runProgram(m.ResolvePath(p), p.Extensions, trace || m.Options.Trace); err != nil {
			return err
		}
	}
	return nil
}

// runProgram loads one program and runs it to completion on stdio.
func runProgram(path string, extensions, trace bool) error {
	grid, err := loader.Load(path)
	if err != nil {
		return err
	}

	interp := funge.New(grid, funge.NewStdConsole(os.Stdin, os.Stdout))
	interp.EnableExtensions(extensions)
	interp.Trace = trace
	return interp.Run(0)
}
