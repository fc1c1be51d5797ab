package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc/internal/config"
)

// errFailed is returned when any expression failed to evaluate. The failures
// have already been reported, so main only sets the exit status.
var errFailed = errors.New("some expressions failed")

// maxLine is the longest input line accepted when reading expressions from a
// file or stdin.
const maxLine = 1 << 20

type flags struct {
	configFile string
	inName     string
	maxLen     int
	echo       bool
	verbose    bool
	noColor    bool
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "calc [flags] [expr...]",
		Short: "Evaluate arithmetic expressions",
		Long: `Calc evaluates arithmetic expressions made of decimal numbers, + - * /,
unary signs, and parentheses, and prints each result.

Each argument is one expression. With no arguments, calc reads one expression
per line from the file named by --in, or from stdin. Blank lines are skipped.
Failed expressions print a short message, and calc exits with status 1 if any
expression failed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.config(cmd)
			if err != nil {
				return err
			}
			return run(cmd, cfg, f.inName, args)
		},
	}
	cmd.Flags().StringVar(&f.configFile, "config", "", "configuration file (YAML or JSON)")
	cmd.Flags().StringVar(&f.inName, "in", "", "input file, or - for stdin (default stdin if no args given)")
	cmd.Flags().IntVar(&f.maxLen, "max-len", config.Default().MaxLen, "maximum expression length in characters, 0 for no limit")
	cmd.Flags().BoolVar(&f.echo, "echo", false, "print each expression with its result")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "disable colored output")
	return cmd
}

// config loads the config file, if any, and applies flags that were set
// explicitly on top of it.
func (f *flags) config(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configFile != "" {
		c, err := config.FromFile(f.configFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = c
	}
	fs := cmd.Flags()
	if fs.Changed("max-len") {
		cfg.MaxLen = f.maxLen
	}
	if fs.Changed("echo") {
		cfg.Echo = f.echo
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}
	if f.noColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, cfg config.Config, inName string, args []string) error {
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()}))
	e := newEvaluator(cmd.OutOrStdout(), logger, cfg)

	in, closer, err := input(cmd, inName, len(args) == 0)
	if err != nil {
		return err
	}
	if in != nil {
		defer closer.Close()
		if err := e.lines(in); err != nil {
			return err
		}
	}
	for _, arg := range args {
		e.eval(arg)
	}

	logger.Debug("done", slog.Int("evaluated", e.count), slog.Int("failed", e.failed))
	if e.failed > 0 {
		return errFailed
	}
	return nil
}

// input opens the source of line-separated expressions. The result is nil if
// there is nothing to read.
func input(cmd *cobra.Command, inName string, std bool) (io.Reader, io.Closer, error) {
	switch {
	case inName != "" && inName != "-":
		f, err := os.Open(inName)
		if err != nil {
			return nil, nil, fmt.Errorf("open input: %w", err)
		}
		return f, f, nil
	case inName == "-", std:
		return cmd.InOrStdin(), io.NopCloser(nil), nil
	}
	return nil, nil, nil
}

// lines evaluates each non-blank line of in.
func (e *evaluator) lines(in io.Reader) error {
	s := bufio.NewScanner(in)
	s.Buffer(make([]byte, 0, 64*1024), maxLine)
	for s.Scan() {
		e.evalLine(s.Text())
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
