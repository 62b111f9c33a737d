package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/seqname/internal/config"
	"github.com/backmassage/seqname/internal/display"
	"github.com/backmassage/seqname/internal/logging"
	"github.com/backmassage/seqname/internal/pipeline"
	"github.com/backmassage/seqname/internal/term"
)

// rootDeps carries everything the command needs from the process, so tests
// can run it against temp directories and buffers.
type rootDeps struct {
	WorkDir string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

func newRootCmd(deps rootDeps) *cobra.Command {
	cfg := config.DefaultConfig()
	cfg.Dir = deps.WorkDir

	cmd := &cobra.Command{
		Use:   "seqname",
		Short: "Copy files into a timestamped directory under sequential names",
		Long: `seqname selects the files of one directory that carry the target extension,
orders them naturally (img2 before img10), and copies them into
<dir>/<YYYYMMDD_HHMMSS>/ as 001.jpg, 002.jpg, ... Originals are left untouched.

Options not given on the command line are asked for interactively.
Use --test to print the planned mapping without copying.`,
		Version:       fmt.Sprintf("%s (commit=%s)", version, commit),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(deps.Stdin)
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)

	flags := config.BindFlags(cmd.Flags(), &cfg)

	cmd.RunE = func(c *cobra.Command, _ []string) error {
		if err := resolveConfig(c, &cfg, flags, deps); err != nil {
			return err
		}
		return execute(c.Context(), &cfg, deps)
	}
	return cmd
}

// loggedError marks an error that has already been written through the logger.
type loggedError struct{ err error }

func (e loggedError) Error() string { return e.err.Error() }
func (e loggedError) Unwrap() error { return e.err }

// reportError prints err to w unless the logger already did.
func reportError(w io.Writer, err error) {
	var le loggedError
	if errors.As(err, &le) {
		return
	}
	fmt.Fprintf(w, "seqname: %v\n", err)
}

// resolveConfig layers the config file, prompts and negated flags onto cfg
// and validates the result.
func resolveConfig(c *cobra.Command, cfg *config.Config, flags *config.Flags, deps rootDeps) error {
	changed := c.Flags().Changed
	fromFile := map[string]bool{}

	if cfg.ConfigFile != "" {
		f, err := config.LoadFile(cfg.ConfigFile)
		if err != nil {
			return err
		}
		if fromFile, err = f.ApplyTo(cfg, changed); err != nil {
			return err
		}
	}

	if !cfg.NoInput {
		p := config.NewPrompter(deps.Stdin, deps.Stderr)
		skip := func(name string) bool { return changed(name) || fromFile[name] }
		if err := p.Fill(cfg, skip); err != nil {
			return err
		}
	}

	flags.Apply(cfg)
	return cfg.Validate()
}

// execute runs the pipeline with logging and signal handling in place.
func execute(parent context.Context, cfg *config.Config, deps rootDeps) error {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	// Structured reports own stdout; everything else goes to stderr.
	console := deps.Stdout
	if cfg.Format != config.FormatPretty {
		console = deps.Stderr
	}
	log.SetOutput(console, deps.Stderr)

	if term.Enabled() {
		display.PrintBanner(console)
	}
	display.PrintConfig(console, cfg)
	if cfg.DryRun() {
		log.Debug("DRY RUN: no files will be written")
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := pipeline.Run(ctx, cfg, log, deps.Stdout); err != nil {
		log.Error("%v", err)
		return loggedError{err}
	}
	return nil
}
