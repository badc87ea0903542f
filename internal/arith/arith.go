// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package arith implements the calculator's operations. Integer results are
// arbitrary precision so factorial and Fibonacci never overflow.
package arith

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidArgument is returned when an operand is outside an operation's domain.
var ErrInvalidArgument = errors.New("invalid argument")

// Add returns the sum of a and b.
func Add(a, b float64) float64 {
	return a + b
}

// Factorial returns n! for n >= 0.
func Factorial(n int) (*big.Int, error) {
	if err := checkNonNegative(n); err != nil {
		return nil, err
	}
	result := big.NewInt(1)
	for i := int64(2); i <= int64(n); i++ {
		result.Mul(result, big.NewInt(i))
	}
	return result, nil
}

// Fibonacci returns the n-th Fibonacci number, with F(0) = 0 and F(1) = 1.
func Fibonacci(n int) (*big.Int, error) {
	if err := checkNonNegative(n); err != nil {
		return nil, err
	}
	a, b := big.NewInt(0), big.NewInt(1)
	for i := 0; i < n; i++ {
		// a, b = b, a+b
		a.Add(a, b)
		a, b = b, a
	}
	return a, nil
}

func checkNonNegative(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: n must be non-negative", ErrInvalidArgument)
	}
	return nil
}
