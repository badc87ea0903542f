// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/yourorg/arc-calc/internal/cmd"
	"github.com/yourorg/arc-calc/internal/errors"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := cmd.NewRootCmd()
	root.SetArgs(cmd.ExpandArgs(args))
	if err := root.Execute(); err != nil {
		fmt.Fprint(os.Stderr, errors.Format(err))
		return errors.ExitCode(err)
	}
	return 0
}
