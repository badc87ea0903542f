// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// pairFlags take two values on the command line. pflag only binds one value
// per occurrence, so ExpandArgs splits them into repeated flags.
var pairFlags = map[string]bool{
	"--add": true,
}

// ExpandArgs rewrites "--add A B" into "--add=A --add=B" so that negative
// operands are not mistaken for shorthand flags. Arguments after "--" are
// left untouched.
func ExpandArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if !pairFlags[arg] || i+1 >= len(args) || args[i+1] == "--" {
			out = append(out, arg)
			continue
		}
		for n := 0; n < 2 && i+1 < len(args) && args[i+1] != "--"; n++ {
			i++
			out = append(out, arg+"="+args[i])
		}
	}
	return out
}

// floatPair collects the values of a repeated float flag.
type floatPair struct {
	vals []float64
}

func (p *floatPair) String() string {
	parts := make([]string, len(p.vals))
	for i, v := range p.vals {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, ",")
}

func (p *floatPair) Set(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("invalid float value %q", s)
	}
	p.vals = append(p.vals, v)
	return nil
}

func (p *floatPair) Type() string {
	return "float"
}
