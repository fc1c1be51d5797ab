package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/internal/config"
)

// evaluator evaluates expressions and prints results or error messages.
type evaluator struct {
	out    io.Writer
	log    *slog.Logger
	preset calc.EvalOption
	echo   bool
	bad    *color.Color
	expr   *color.Color

	count  int
	failed int
}

func newEvaluator(out io.Writer, logger *slog.Logger, cfg config.Config) *evaluator {
	e := evaluator{
		out:    out,
		log:    logger,
		preset: calc.EvalPreset(cfg.EvalOptions()...),
		echo:   cfg.Echo,
		bad:    color.New(color.FgRed),
		expr:   color.New(color.Faint),
	}
	if !cfg.Color {
		e.bad.DisableColor()
		e.expr.DisableColor()
	}
	return &e
}

// evalLine evaluates a line of input, skipping it if it is blank.
func (e *evaluator) evalLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	e.eval(line)
}

// eval evaluates one expression and prints the outcome.
func (e *evaluator) eval(src string) {
	e.count++
	r, err := calc.EvalString(src, e.preset)
	if err != nil {
		e.failed++
		e.logFailure(src, err)
		msg := calc.Message(err)
		if e.echo {
			e.expr.Fprint(e.out, src+": ")
		}
		e.bad.Fprintln(e.out, msg)
		return
	}
	e.log.Debug("evaluated", slog.String("expr", src), slog.String("result", r))
	if e.echo {
		e.expr.Fprint(e.out, src+" = ")
	}
	fmt.Fprintln(e.out, r)
}

func (e *evaluator) logFailure(src string, err error) {
	attrs := []any{
		slog.String("expr", src),
		slog.String("kind", calc.Classify(err).String()),
	}
	var ie calc.InputError
	if errors.As(err, &ie) {
		attrs = append(attrs, slog.Int("col", ie.Pos()))
	}
	attrs = append(attrs, slog.Any("error", err))
	e.log.Debug("evaluation failed", attrs...)
}
