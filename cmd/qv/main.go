package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/suykerbuyk/qv/internal/archetype"
	"github.com/suykerbuyk/qv/internal/check"
	"github.com/suykerbuyk/qv/internal/config"
	"github.com/suykerbuyk/qv/internal/help"
	"github.com/suykerbuyk/qv/internal/input"
	"github.com/suykerbuyk/qv/internal/quiz"
	"github.com/suykerbuyk/qv/internal/scoring"
	"github.com/suykerbuyk/qv/internal/stats"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("qv: ")

	for _, id := range quiz.VerifyReverseConfig() {
		log.Printf("warning: %s is expected to be reverse-scored but the catalog disagrees", id)
	}

	// Bare "qv" and "qv --json" run the validation suite.
	cmd, args := "validate", []string(nil)
	if len(os.Args) > 1 {
		cmd, args = os.Args[1], os.Args[2:]
		if strings.HasPrefix(cmd, "-") && cmd != "--help" && cmd != "-h" {
			cmd, args = "validate", os.Args[1:]
		}
	}

	switch cmd {
	case "help", "--help", "-h":
		fmt.Print(help.FormatUsage(help.TopLevel, help.Subcommands))
		return
	case "version":
		fmt.Printf("qv v%s\n", help.Version)
		return
	}

	// The suite does not depend on settings, so a broken config only warns.
	cfg, err := config.Load()
	if err != nil {
		if cmd != "validate" {
			fatal("load config: %v", err)
		}
		log.Printf("warning: load config: %v; using defaults", err)
		cfg = config.DefaultConfig()
	}

	switch cmd {
	case "validate":
		runValidate(cfg, args)
	case "score":
		runScore(cfg, args)
	case "stats":
		runStats(cfg, args)
	case "archetypes":
		runArchetypes(cfg, args)
	case "config":
		runConfig(cfg, args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, help.FormatUsage(help.TopLevel, help.Subcommands))
		os.Exit(1)
	}
}

func runValidate(cfg config.Config, args []string) {
	fs := newFlagSet(help.CmdValidate)
	jsonOut := fs.Bool("json", cfg.JSON(), "print the report as JSON")
	parse(fs, help.CmdValidate, args)
	if fs.NArg() > 0 {
		fatal("usage: %s", help.CmdValidate.Usage)
	}

	report := check.RunAll()
	if *jsonOut {
		data, err := report.JSON(cfg.Output.Indent)
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(string(data))
	} else {
		fmt.Print(report.Format())
	}

	if report.HasFailures() {
		os.Exit(1)
	}
}

func runScore(cfg config.Config, args []string) {
	fs := newFlagSet(help.CmdScore)
	jsonOut := fs.Bool("json", cfg.JSON(), "print the scorecard as JSON")
	format := fs.String("format", "auto", "input format: auto, json or yaml")
	parse(fs, help.CmdScore, args)
	if fs.NArg() != 1 {
		fatal("usage: %s", help.CmdScore.Usage)
	}

	opts := inputOptions(cfg, *format)
	path := cfg.ResolveInput(fs.Arg(0))
	responses, err := input.Load(path, os.Stdin, opts)
	if err != nil {
		fatal("score: %v", err)
	}

	card := scoring.NewScorecard(responses)
	if *jsonOut {
		printJSON(card, cfg.Output.Indent)
		return
	}
	fmt.Print(card.Format())
}

func runStats(cfg config.Config, args []string) {
	fs := newFlagSet(help.CmdStats)
	jsonOut := fs.Bool("json", cfg.JSON(), "print the summary as JSON")
	format := fs.String("format", "auto", "input format: auto, json or yaml")
	parse(fs, help.CmdStats, args)
	if fs.NArg() == 0 {
		fatal("usage: %s", help.CmdStats.Usage)
	}

	opts := inputOptions(cfg, *format)
	cards := make([]scoring.Scorecard, 0, fs.NArg())
	for _, arg := range fs.Args() {
		responses, err := input.Load(cfg.ResolveInput(arg), os.Stdin, opts)
		if err != nil {
			fatal("stats: %v", err)
		}
		cards = append(cards, scoring.NewScorecard(responses))
	}

	summary := stats.Compute(cards)
	if *jsonOut {
		printJSON(summary, cfg.Output.Indent)
		return
	}
	fmt.Print(stats.Format(summary))
}

func runArchetypes(cfg config.Config, args []string) {
	fs := newFlagSet(help.CmdArchetypes)
	jsonOut := fs.Bool("json", cfg.JSON(), "print the definitions as JSON")
	parse(fs, help.CmdArchetypes, args)

	defs := archetype.All()
	if *jsonOut {
		printJSON(defs, cfg.Output.Indent)
		return
	}
	fmt.Print(archetype.FormatList(defs))
}

func runConfig(cfg config.Config, args []string) {
	fs := newFlagSet(help.CmdConfig)
	initConfig := fs.Bool("init", false, "write a default config.toml")
	parse(fs, help.CmdConfig, args)

	if *initConfig {
		path, created, err := config.WriteDefault()
		if err != nil {
			fatal("config: %v", err)
		}
		if created {
			fmt.Printf("created: %s\n", config.CompressHome(path))
		} else {
			fmt.Printf("exists: %s\n", config.CompressHome(path))
		}
		return
	}

	source := "(none, using defaults)"
	if cfg.Source != "" {
		source = config.CompressHome(cfg.Source)
	}
	fmt.Printf("config:             %s\n", source)
	fmt.Printf("output.format:      %s\n", cfg.Output.Format)
	fmt.Printf("output.indent:      %d\n", cfg.Output.Indent)
	fmt.Printf("input.dir:          %s\n", config.CompressHome(cfg.Input.Dir))
	fmt.Printf("input.warn_unknown: %t\n", cfg.Input.WarnUnknown)
}

func inputOptions(cfg config.Config, format string) input.Options {
	f, err := input.ParseFormat(format)
	if err != nil {
		fatal("--format: %v", err)
	}
	return input.Options{WarnUnknown: cfg.Input.WarnUnknown, Format: f}
}

func newFlagSet(c help.Command) *pflag.FlagSet {
	fs := pflag.NewFlagSet(c.Name, pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, help.FormatTerminal(c))
	}
	return fs
}

func parse(fs *pflag.FlagSet, c help.Command, args []string) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fatal("%s: %v", c.Name, err)
	}
}

func printJSON(v any, indent int) {
	var (
		data []byte
		err  error
	)
	if indent > 0 {
		data, err = json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		fatal("marshal: %v", err)
	}
	fmt.Println(string(data))
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "qv: "+format+"\n", args...)
	os.Exit(1)
}
