// Command mincut runs the min-cut experiments driven by a request on stdin.
//
//	1            runtime vs. size: graph files follow, ended by "done"
//	2 f k r      success rate vs. budget on file f with known cut k, r runs per budget
//
// CSV goes to stdout, logs to stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/mincut/config"
	"github.com/katalvlaran/mincut/experiment"
	"github.com/katalvlaran/mincut/graphio"
	"github.com/katalvlaran/mincut/mincut"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		if errors.Is(err, mincut.ErrEntropy) {
			fmt.Fprintln(os.Stderr, "mincut: fatal: no entropy for seeding:", err)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "mincut:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg := config.NewConfig()
	fs := pflag.NewFlagSet("mincut", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "config file (yaml, json or toml)")
	if err := cfg.BindFlags(fs); err != nil {
		return err
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *cfgPath != "" {
		if err := cfg.LoadFromFile(*cfgPath); err != nil {
			return err
		}
	}

	log := cfg.CreateLogger(stderr)
	solver, err := cfg.Solver()
	if err != nil {
		return err
	}
	runner, err := experiment.NewRunner(solver, cfg.ExperimentSettings(), log)
	if err != nil {
		return err
	}

	req, err := graphio.ReadRequest(stdin)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if timeout := cfg.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	opts := solver.Options()
	log.Debug().
		Int("mode", int(req.Mode)).
		Stringer("strategy", opts.Strategy).
		Stringer("base_mode", opts.BaseMode).
		Int("workers", opts.Workers).
		Int64("seed", cfg.Seed()).
		Msg("starting")

	return runner.Run(ctx, req, stdout)
}
