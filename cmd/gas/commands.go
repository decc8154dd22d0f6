package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/bebop/gas/aligner"
	"github.com/bebop/gas/alphabet"
	"github.com/bebop/gas/internal/samout"
	"github.com/bebop/gas/internal/seqio"
	"github.com/bebop/gas/internal/tsvout"
)

/******************************************************************************

File is structured as so:

	Top level commands:
		run
		debug nw / sw / nw-matrix / sw-matrix

This file defines the run subcommand, its flags, and the code that runs
when it is invoked: the resulting *cli.Context gets turned into a call
against the aligner package and its collaborators. The global --verbose
flag is defined in main.go's application(); the debug subcommands live in
debug.go.

******************************************************************************/

// runCommand defines the "run" subcommand: load queries and targets, align,
// and write a TSV (or, with --sam, a SAM) report.
func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Align a query file against a target file and write a report.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "queries", Aliases: []string{"q"}, Required: true, Usage: "Path to the query sequences (one per line, fasta, or gzip of either)."},
			&cli.StringFlag{Name: "targets", Aliases: []string{"t"}, Required: true, Usage: "Path to the target sequences."},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "-", Usage: "Output path, or - for stdout."},
			&cli.IntFlag{Name: "min-score", Aliases: []string{"m"}, Value: 15, Usage: "Minimum alignment score to keep a candidate."},
			&cli.StringSliceFlag{Name: "rule", Aliases: []string{"r"}, Usage: "Accepted I/D/M arrangement; repeatable. Omit for exact-match-only."},
			&cli.BoolFlag{Name: "rc", Value: true, Usage: "Also try each query's reverse complement."},
			&cli.BoolFlag{Name: "no-rc", Usage: "Disable reverse-complement candidates, overriding --rc."},
			&cli.IntFlag{Name: "match-type", Value: int(aligner.MatchAny), Usage: "Accepted shape: 0=true exact, 1=query-in-target, 2=target-in-query, 3=any."},
			&cli.BoolFlag{Name: "sam", Usage: "Write a SAM stream instead of the native TSV report."},
			&cli.BoolFlag{Name: "strict-alphabet", Usage: "Reject input containing non-ACGT characters before aligning."},
		},
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	targets, err := seqio.ReadSequences(c.String("targets"))
	if err != nil {
		return fmt.Errorf("gas: reading targets: %w", err)
	}
	queries, err := seqio.ReadSequences(c.String("queries"))
	if err != nil {
		return fmt.Errorf("gas: reading queries: %w", err)
	}

	if c.Bool("strict-alphabet") {
		if err := checkAlphabet(targets, queries); err != nil {
			return err
		}
	}

	revComp := c.Bool("rc") && !c.Bool("no-rc")
	matchType := aligner.MatchType(c.Int("match-type"))

	a, err := aligner.NewAligner(targets, c.StringSlice("rule"), c.Int("min-score"), revComp, matchType)
	if err != nil {
		return fmt.Errorf("gas: %w", err)
	}

	start := time.Now()
	batch := a.AlignQueries(queries, false)
	elapsed := time.Since(start)

	log.Info().
		Int("total", batch.TotalReads).
		Int("mapped", len(batch.Mapped)).
		Int("unmapped", len(batch.Unmapped)).
		Dur("elapsed", elapsed).
		Msg("alignment batch complete")

	out, err := openOutput(c.String("output"))
	if err != nil {
		return fmt.Errorf("gas: opening output: %w", err)
	}
	defer out.Close()

	if c.Bool("sam") {
		return samout.Write(out, targets, batch)
	}
	return tsvout.Write(out, batch)
}

func checkAlphabet(targets, queries []string) error {
	for i, target := range targets {
		if pos := alphabet.DNA.Check(target); pos >= 0 {
			return fmt.Errorf("gas: target %d contains non-DNA symbol at position %d", i, pos)
		}
	}
	for i, query := range queries {
		if pos := alphabet.DNA.Check(query); pos >= 0 {
			return fmt.Errorf("gas: query %d contains non-DNA symbol at position %d", i, pos)
		}
	}
	return nil
}

func openOutput(path string) (*os.File, error) {
	if path == "-" || path == "" {
		return os.Stdout, nil
	}
	return os.Create(path)
}
