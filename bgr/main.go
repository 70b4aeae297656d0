package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/balancegrid/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// A data directory can carry its own file locations in a .env file.
	godotenv.Load()

	// Shell completion; exits early when invoked by the shell.
	complete.Complete("bgr", completion())

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	filterFlags := map[string]complete.Predictor{
		"from":     predict.Nothing,
		"to":       predict.Nothing,
		"currency": predict.Nothing,
		"account":  predict.Nothing,
		"category": predict.Nothing,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"movements-file":  predict.Files("*.jsonl"),
			"rates-file":      predict.Files("*.json"),
			"categories-file": predict.Files("*.json"),
			"epoch":           predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"grid":      {Flags: filterFlags},
			"movements": {Flags: filterFlags},
			"import":    {Args: predict.Files("*")},
			"export":    {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
			"fmt":       {},
			"rates":     {Flags: map[string]complete.Predictor{"set": predict.Nothing}},
			"topic":     {Args: predict.Set{"grid", "movements", "formats", "readme"}},
		},
	}
}
