// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/yourorg/arc-calc/internal/arith"
	"github.com/yourorg/arc-calc/internal/errors"
	"github.com/yourorg/arc-calc/internal/output"
)

// result is one computed value, as rendered by every output format.
type result struct {
	Operation string   `json:"operation" yaml:"operation"`
	Input     []string `json:"input" yaml:"input"`
	Result    string   `json:"result" yaml:"result"`
}

func (r result) String() string {
	return fmt.Sprintf("%s(%s) = %s", r.Operation, strings.Join(r.Input, ", "), r.Result)
}

// newCalcCmd creates the calculator command.
func newCalcCmd(newLogger loggerFactory) *cobra.Command {
	var (
		add        floatPair
		fact       int
		fib        int
		verbose    bool
		outputOpts output.OutputOptions
	)

	cmd := &cobra.Command{
		Use:   "arc-calc",
		Short: "Dummy utilities: add, factorial, fibonacci",
		Long: `Compute a sum, a factorial or a Fibonacci number.

Only one operation runs per invocation. When several are given, the first of
--add, --fact, --fib wins. Without any, a short demo is printed.`,
		Example: `  # Add two numbers
  arc-calc --add 1.5 -2

  # 20!
  arc-calc --fact 20

  # 100th Fibonacci number as JSON
  arc-calc --fib 100 --output json`,
		Args: noPositionalArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := outputOpts.Resolve(); err != nil {
				return err
			}

			logger, err := newLogger(verbose)
			if err != nil {
				return errors.NewCLIError("failed to create logger").WithCause(err)
			}
			defer func() { _ = logger.Sync() }()

			flags := cmd.Flags()
			w := cmd.OutOrStdout()

			switch {
			case flags.Changed("add"):
				if len(add.vals) != 2 {
					return errors.NewUsageError(fmt.Sprintf("--add expects 2 arguments, got %d", len(add.vals))).
						WithSuggestions("arc-calc --add 1 2")
				}
				a, b := add.vals[0], add.vals[1]
				logger.Debug("Running operation", zap.String("op", "add"), zap.Float64("a", a), zap.Float64("b", b))
				return writeResult(w, outputOpts, addResult(a, b))
			case flags.Changed("fact"):
				logger.Debug("Running operation", zap.String("op", "factorial"), zap.Int("n", fact))
				r, err := intResult("factorial", fact, arith.Factorial)
				if err != nil {
					logger.Debug("Operation failed", zap.Error(err))
					return invalidArgument(err, "--fact")
				}
				return writeResult(w, outputOpts, r)
			case flags.Changed("fib"):
				logger.Debug("Running operation", zap.String("op", "fibonacci"), zap.Int("n", fib))
				r, err := intResult("fibonacci", fib, arith.Fibonacci)
				if err != nil {
					logger.Debug("Operation failed", zap.Error(err))
					return invalidArgument(err, "--fib")
				}
				return writeResult(w, outputOpts, r)
			default:
				logger.Debug("No operation selected, running demo")
				return writeDemo(w, outputOpts)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().Var(&add, "add", "Add two numbers `A B`")
	cmd.Flags().IntVar(&fact, "fact", 0, "Compute factorial of `N`")
	cmd.Flags().IntVar(&fib, "fib", 0, "Compute `N`-th Fibonacci number (0-indexed)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Log debug information to stderr")
	outputOpts.AddOutputFlags(cmd, output.OutputText)

	return cmd
}

func addResult(a, b float64) result {
	return result{
		Operation: "add",
		Input:     []string{formatFloat(a), formatFloat(b)},
		Result:    formatFloat(arith.Add(a, b)),
	}
}

func intResult(op string, n int, fn func(int) (*big.Int, error)) (result, error) {
	v, err := fn(n)
	if err != nil {
		return result{}, err
	}
	return result{Operation: op, Input: []string{strconv.Itoa(n)}, Result: v.String()}, nil
}

func invalidArgument(err error, flag string) error {
	if !stderrors.Is(err, arith.ErrInvalidArgument) {
		return errors.NewCLIError("computation failed").WithCause(err)
	}
	return errors.NewUsageError("n must be non-negative").
		WithCause(err).
		WithHint(fmt.Sprintf("Pass a non-negative integer, e.g. %s 5", flag))
}

// demoResults is what runs when no operation is selected.
func demoResults() []result {
	fact, _ := intResult("factorial", 5, arith.Factorial)
	fib, _ := intResult("fibonacci", 7, arith.Fibonacci)
	return []result{
		{Operation: "add", Input: []string{"1", "2"}, Result: formatFloat(arith.Add(1, 2))},
		fact,
		fib,
	}
}

func writeDemo(w io.Writer, opts output.OutputOptions) error {
	results := demoResults()
	switch {
	case opts.Is(output.OutputJSON):
		return encodeJSON(w, results)
	case opts.Is(output.OutputYAML):
		return encodeYAML(w, results)
	case opts.Is(output.OutputQuiet):
		return nil
	default:
		fmt.Fprintln(w, "No arguments given. Demo output:")
		for _, r := range results {
			fmt.Fprintf(w, " %s\n", r)
		}
		return nil
	}
}

// writeResult formats and outputs a single result.
func writeResult(w io.Writer, opts output.OutputOptions, r result) error {
	switch {
	case opts.Is(output.OutputJSON):
		return encodeJSON(w, r)
	case opts.Is(output.OutputYAML):
		return encodeYAML(w, r)
	case opts.Is(output.OutputQuiet):
		return nil
	default:
		fmt.Fprintln(w, r)
		return nil
	}
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(v)
}

// formatFloat renders v the way Python's repr does: integral values keep a
// trailing ".0" and magnitudes outside [1e-4, 1e16) use exponent form.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if v != 0 {
		e := strconv.FormatFloat(v, 'e', -1, 64)
		exp, _ := strconv.Atoi(e[strings.LastIndexByte(e, 'e')+1:])
		if exp < -4 || exp >= 16 {
			return e
		}
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
