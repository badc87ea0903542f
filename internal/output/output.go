// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package output handles the --output flag shared by commands.
package output

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yourorg/arc-calc/internal/errors"
)

// OutputFormat names a rendering of command results.
type OutputFormat string

const (
	OutputText  OutputFormat = "text"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
	OutputQuiet OutputFormat = "quiet"
)

// Formats lists the accepted values of --output, default first.
var Formats = []OutputFormat{OutputText, OutputJSON, OutputYAML, OutputQuiet}

// OutputOptions holds the raw flag value and the resolved format.
type OutputOptions struct {
	raw    string
	format OutputFormat
}

// AddOutputFlags registers --output/-o on cmd.
func (o *OutputOptions) AddOutputFlags(cmd *cobra.Command, def OutputFormat) {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	cmd.Flags().StringVarP(&o.raw, "output", "o", string(def),
		"Output format ("+strings.Join(names, "|")+")")
	_ = cmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// Resolve validates the flag value. It must be called before Is.
func (o *OutputOptions) Resolve() error {
	want := OutputFormat(strings.ToLower(strings.TrimSpace(o.raw)))
	if want == "" {
		want = OutputText
	}
	for _, f := range Formats {
		if f == want {
			o.format = f
			return nil
		}
	}
	return errors.NewUsageError(fmt.Sprintf("unknown output format %q", o.raw)).
		WithHint("Supported formats: text, json, yaml, quiet")
}

// Is reports whether the resolved format is f.
func (o *OutputOptions) Is(f OutputFormat) bool {
	return o.format == f
}
