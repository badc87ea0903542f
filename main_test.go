// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		args []string
		want int
	}{
		{[]string{}, 0},
		{[]string{"--version"}, 0},
		{[]string{"--add", "1", "2"}, 0},
		{[]string{"--fact", "5"}, 0},
		{[]string{"--fib", "7"}, 0},
		{[]string{"--fact", "-3"}, 2},
		{[]string{"--fib", "-3"}, 2},
		{[]string{"--fact", "abc"}, 2},
		{[]string{"--help"}, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, run(tt.args), "run(%q)", tt.args)
	}
}
