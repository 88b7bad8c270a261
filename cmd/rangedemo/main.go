package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/rangekit/internal/showcase"
)

const envLogLevel = "RANGEDEMO_LOG_LEVEL"

const ErrInvalidLogLevel errorkit.Error = "ErrInvalidLogLevel"

var logLevels = []logging.Level{
	logging.LevelDebug,
	logging.LevelInfo,
	logging.LevelWarn,
	logging.LevelError,
	logging.LevelFatal,
}

func main() {
	ctx := context.Background()
	if err := configureLogLevel(); err != nil {
		logger.Fatal(ctx, "failed to configure the logging level", logging.ErrField(err))
		os.Exit(cli.ExitCodeBadRequest)
	}
	cli.Main(ctx, NewMux())
}

// configureLogLevel applies RANGEDEMO_LOG_LEVEL when it is set.
// Without it, the logger keeps the level it picked up from its own environment variables.
func configureLogLevel() error {
	level, ok, err := lookupLogLevel()
	if err != nil || !ok {
		return err
	}
	logger.Configure(func(l *logging.Logger) {
		l.Level = level
	})
	return nil
}

func lookupLogLevel() (logging.Level, bool, error) {
	raw, ok, err := env.Lookup[string](envLogLevel)
	if err != nil || !ok {
		return "", ok, err
	}
	level := logging.Level(strings.ToLower(raw))
	if !slices.Contains(logLevels, level) {
		return "", false, ErrInvalidLogLevel.F("%s=%q", envLogLevel, raw)
	}
	return level, true, nil
}

// NewMux wires the rangedemo commands.
func NewMux() *cli.Mux {
	var m cli.Mux
	m.Handle("run", RunCommand{})
	m.Handle("list", ListCommand{})
	return &m
}

// RunCommand executes the scenarios and prints their outcome.
type RunCommand struct {
	Scenario string `flag:"scenario,s" desc:"run only the scenario with this name"`

	// Logger is optional, the package level logger is used when it is nil.
	Logger *logging.Logger
}

func (cmd RunCommand) Summary() string { return "run the rangekit demonstration scenarios" }

func (cmd RunCommand) ServeCLI(w cli.Response, r *cli.Request) {
	scenarios := showcase.Scenarios()
	if cmd.Scenario != "" {
		sc, ok := showcase.Lookup(cmd.Scenario)
		if !ok {
			w.ExitCode(cli.ExitCodeBadRequest)
			fmt.Fprintf(w, "unknown scenario: %s\n", cmd.Scenario)
			return
		}
		scenarios = []showcase.Scenario{sc}
	}

	reports, err := showcase.Runner{Logger: cmd.Logger}.Run(r.Context(), scenarios)
	for _, rep := range reports {
		fmt.Fprintf(w, "%s: %s\n", rep.Scenario, rep.Outcome)
	}
	if err != nil {
		w.ExitCode(cli.ExitCodeError)
	}
}

// ListCommand prints the name of every scenario.
type ListCommand struct{}

func (cmd ListCommand) Summary() string { return "list the available scenarios" }

func (cmd ListCommand) ServeCLI(w cli.Response, r *cli.Request) {
	for _, sc := range showcase.Scenarios() {
		fmt.Fprintln(w, sc.Name)
	}
}
