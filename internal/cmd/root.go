// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yourorg/arc-calc/internal/errors"
)

// Version is reported by --version.
const Version = "0.1"

// loggerFactory builds the logger used for a single invocation.
type loggerFactory func(verbose bool) (*zap.Logger, error)

// NewRootCmd creates the root command for arc-calc.
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultLogger)
}

func newRootCmd(newLogger loggerFactory) *cobra.Command {
	root := newCalcCmd(newLogger)
	root.Version = Version
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return errors.NewUsageError(err.Error()).
			WithCause(err).
			WithHint(fmt.Sprintf("Run '%s --help' for usage", c.Name()))
	})
	return root
}

func defaultLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// noPositionalArgs rejects stray arguments the way argparse does.
func noPositionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return errors.NewUsageError("unrecognized arguments: " + strings.Join(args, " ")).
		WithHint(fmt.Sprintf("Run '%s --help' for usage", cmd.Name()))
}
