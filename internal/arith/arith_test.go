// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package arith

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	pairs := [][2]float64{{1, 2}, {-1.5, 2.25}, {0.1, 0.2}, {1e300, -1e300}, {0, -0}}
	for _, p := range pairs {
		assert.Equal(t, p[0]+p[1], Add(p[0], p[1]))
		assert.Equal(t, Add(p[0], p[1]), Add(p[1], p[0]), "add(%v, %v) not commutative", p[0], p[1])
	}
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "1"},
		{1, "1"},
		{2, "2"},
		{5, "120"},
		{10, "3628800"},
		{25, "15511210043330985984000000"},
	}
	for _, tt := range tests {
		got, err := Factorial(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String(), "factorial(%d)", tt.n)
	}
}

func TestFibonacci(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{1, "1"},
		{2, "1"},
		{7, "13"},
		{10, "55"},
		{93, "12200160415121876738"},
		{100, "354224848179261915075"},
	}
	for _, tt := range tests {
		got, err := Fibonacci(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String(), "fibonacci(%d)", tt.n)
	}
}

func TestFibonacciRecurrence(t *testing.T) {
	for n := 0; n < 200; n++ {
		a, err := Fibonacci(n)
		require.NoError(t, err)
		b, err := Fibonacci(n + 1)
		require.NoError(t, err)
		c, err := Fibonacci(n + 2)
		require.NoError(t, err)
		sum := new(big.Int).Add(a, b)
		assert.Zero(t, c.Cmp(sum), "fibonacci(%d) != fibonacci(%d) + fibonacci(%d)", n+2, n, n+1)
	}
}

func TestNegativeOperand(t *testing.T) {
	for _, n := range []int{-1, -3, -1 << 31} {
		_, err := Factorial(n)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		assert.Contains(t, err.Error(), "n must be non-negative")

		_, err = Fibonacci(n)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	}
}
