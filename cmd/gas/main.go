package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

// main is the entry point for the command line app. It is separated from
// application to make the app itself easy to exercise in tests.
func main() {
	run(os.Args)
}

// run is separated from main and application for debugging's sake.
func run(args []string) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	app := application()
	if err := app.Run(args); err != nil {
		log.Fatal().Err(err).Msg("gas failed")
	}
}

// application defines the gas command line app: its global flags and the
// run/debug subcommands.
func application() *cli.App {
	return &cli.App{
		Name:  "gas",
		Usage: "Align short DNA queries against a fixed set of targets.",

		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Has no effect; no per-candidate logging is emitted.",
			},
		},

		Commands: []*cli.Command{
			runCommand(),
			debugCommand(),
		},
	}
}
