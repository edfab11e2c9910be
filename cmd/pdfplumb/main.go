// Command pdfplumb is the flag-based front-end collaborator over
// internal/document and internal/page (spec.md §6), specified for
// completeness rather than as part of the extraction contract itself.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: pdfplumb <command> [pattern] <file.pdf> [flags]")
		return 1
	}

	command := args[0]
	var path, pattern string
	var rest []string

	if command == "search" {
		if len(args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: pdfplumb search <pattern> <file.pdf> [flags]")
			return 1
		}
		pattern = args[1]
		path = args[2]
		rest = args[3:]
	} else {
		path = args[1]
		rest = args[2:]
	}

	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		pages       = fs.String("pages", "", "1-indexed page range, e.g. 1,3-5")
		format      = fs.String("format", "text", "output format: text, json, csv")
		password    = fs.String("password", "", "document password")
		unicodeNorm = fs.String("unicode-norm", "", "unicode normalization: nfc, nfd, nfkc, nfkd")
		repair      = fs.Bool("repair", false, "attempt relaxed-validation repair on open failure")
		strategy    = fs.String("strategy", "lattice", "table strategy: lattice, stream")
		snapTol     = fs.Float64("snap-tolerance", 3.0, "table snap tolerance")
		joinTol     = fs.Float64("join-tolerance", 3.0, "table join tolerance")
		textTol     = fs.Float64("text-tolerance", 3.0, "table text-assignment tolerance")
		xTol        = fs.Float64("x-tolerance", 3.0, "word x tolerance")
		yTol        = fs.Float64("y-tolerance", 3.0, "word y tolerance")
		layout      = fs.Bool("layout", false, "preserve column layout in text output")
		regexFlag   = fs.Bool("regex", false, "treat search pattern as a regular expression")
		ignoreCase  = fs.Bool("ignore-case", false, "case-insensitive search")
		configPath  = fs.String("config", "", "yaml file of tolerance presets")
	)

	if err := fs.Parse(rest); err != nil {
		return 1
	}

	applyConfig(*configPath, format)

	opts := cliOptions{
		pages:       *pages,
		format:      Format(*format),
		password:    *password,
		unicodeNorm: *unicodeNorm,
		repair:      *repair,
		strategy:    *strategy,
		snapTol:     *snapTol,
		joinTol:     *joinTol,
		textTol:     *textTol,
		xTol:        *xTol,
		yTol:        *yTol,
		layout:      *layout,
		regex:       *regexFlag,
		ignoreCase:  *ignoreCase,
		pattern:     pattern,
	}

	if err := dispatch(command, path, opts); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

// applyConfig loads an optional --config file and overlays its format
// preset when the caller didn't pass --format explicitly on the
// command line (detected by the flag's value still matching the
// fs.Float64/String default).
func applyConfig(path string, format *string) *fileConfig {
	if path == "" {
		return nil
	}
	cfg, err := loadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load config %s: %v\n", path, err)
		return nil
	}
	if cfg.Format != "" && *format == "text" {
		*format = cfg.Format
	}
	return cfg
}

type cliOptions struct {
	pages       string
	format      Format
	password    string
	unicodeNorm string
	repair      bool
	strategy    string
	snapTol     float64
	joinTol     float64
	textTol     float64
	xTol        float64
	yTol        float64
	layout      bool
	regex       bool
	ignoreCase  bool
	pattern     string
}
