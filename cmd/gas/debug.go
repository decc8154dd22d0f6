package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/bebop/gas/align"
	"github.com/bebop/gas/align/matrix"
)

// debugCommand exposes the teacher's general-purpose aligners directly,
// for comparing their output against the aligner package's fixed-penalty
// scheme on arbitrary strings.
func debugCommand() *cli.Command {
	return &cli.Command{
		Name:  "debug",
		Usage: "Run the general-purpose Needleman-Wunsch/Smith-Waterman aligners on two strings.",
		Subcommands: []*cli.Command{
			{
				Name:      "nw",
				Usage:     "Global alignment via Needleman-Wunsch with a flat match/mismatch/gap score.",
				ArgsUsage: "<stringA> <stringB>",
				Action:    debugAction(align.NeedlemanWunsch),
			},
			{
				Name:      "sw",
				Usage:     "Local alignment via Smith-Waterman with a flat match/mismatch/gap score.",
				ArgsUsage: "<stringA> <stringB>",
				Action:    debugAction(align.SmithWaterman),
			},
			{
				Name:      "nw-matrix",
				Usage:     "Global alignment via Needleman-Wunsch using the NUC_4 DNA substitution matrix.",
				ArgsUsage: "<stringA> <stringB>",
				Action:    debugMatrixAction(align.NeedlemanWunschMatrix),
			},
			{
				Name:      "sw-matrix",
				Usage:     "Local alignment via Smith-Waterman using the NUC_4 DNA substitution matrix.",
				ArgsUsage: "<stringA> <stringB>",
				Action:    debugMatrixAction(align.SmithWatermanMatrix),
			},
		},
	}
}

func debugAction(run func(string, string, align.Scoring) (int, string, string)) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() != 2 {
			return fmt.Errorf("gas: expected exactly 2 positional arguments, got %d", c.NArg())
		}
		score, alignedA, alignedB := run(c.Args().Get(0), c.Args().Get(1), align.NewScoring())
		fmt.Printf("Score: %d\n%s\n%s\n", score, alignedA, alignedB)
		return nil
	}
}

func debugMatrixAction(run func(string, string, *matrix.SubstitutionMatrix, int) (int, string, string, error)) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() != 2 {
			return fmt.Errorf("gas: expected exactly 2 positional arguments, got %d", c.NArg())
		}
		dnaAlphabet := matrix.DefaultAlphabet()
		subMatrix, err := matrix.NewSubstitutionMatrix(dnaAlphabet, dnaAlphabet, matrix.NUC_4)
		if err != nil {
			return fmt.Errorf("gas: building substitution matrix: %w", err)
		}
		score, alignedA, alignedB, err := run(c.Args().Get(0), c.Args().Get(1), subMatrix, -2)
		if err != nil {
			return fmt.Errorf("gas: %w", err)
		}
		fmt.Printf("Score: %d\n%s\n%s\n", score, alignedA, alignedB)
		return nil
	}
}
