package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/foliokit/folio/cmd"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// A .env file is a convenient place for ALPHAVANTAGE_API_KEY.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("cannot read .env")
	}

	// Shell completion: handles the request and exits when invoked by the
	// completion hook, a no-op otherwise.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"value": {Flags: map[string]complete.Predictor{"d": predict.Nothing}},
			"perf":  {Flags: map[string]complete.Predictor{"s": predict.Nothing, "e": predict.Nothing}},
			"demo":  {},
		},
		Flags: map[string]complete.Predictor{
			"alphavantage-api-key": predict.Nothing,
			"config":               predict.Files("*.toml"),
		},
	}
	completion.Complete("fv")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
