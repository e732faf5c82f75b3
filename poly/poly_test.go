/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package poly

import (
	"bytes"
	"crypto/rand"
	mrand "math/rand"
	"testing"

	"github.com/IBM/SSS/field"
	. "github.com/IBM/SSS/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRandom(t *testing.T) {
	p, err := NewRandom(rand.Reader, 42, 4)
	require.NoError(t, err)

	assert.Equal(t, 4, p.Degree())
	assert.Len(t, p, 5)
	assert.Equal(t, int64(42), p[0])
	assert.Equal(t, int64(42), p.ValueAt(0))
	for _, c := range p {
		assert.True(t, field.Contains(c))
	}
}

func TestNewRandomDeterministicSource(t *testing.T) {
	p1, err := NewRandom(mrand.New(mrand.NewSource(7)), 5, 3)
	require.NoError(t, err)
	p2, err := NewRandom(mrand.New(mrand.NewSource(7)), 5, 3)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestNewRandomZeroDegree(t *testing.T) {
	p, err := NewRandom(bytes.NewReader(nil), 9, 0)
	require.NoError(t, err)
	assert.Equal(t, Polynomial{9}, p)
	assert.Equal(t, int64(9), p.ValueAt(1234))
}

func TestNewRandomErrors(t *testing.T) {
	_, err := NewRandom(rand.Reader, 1, -1)
	assert.True(t, errors.Is(err, ErrInvalidParameters))

	_, err = NewRandom(bytes.NewReader(nil), 1, 2)
	assert.Error(t, err)
}

func TestNewCopiesCoefficients(t *testing.T) {
	coefficients := []int64{1, 2, 3}
	p := New(coefficients...)
	coefficients[0] = 100

	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, int64(1), p[0])

	c := p.Coefficients()
	c[1] = 100
	assert.Equal(t, int64(2), p[1])
}

func TestValueAt(t *testing.T) {
	// 2 + 0x + x^2
	p := New(2, 0, 1)
	assert.Equal(t, int64(2), p.ValueAt(0))
	assert.Equal(t, int64(3), p.ValueAt(1))
	assert.Equal(t, int64(6), p.ValueAt(2))
	assert.Equal(t, int64(11), p.ValueAt(3))

	// (P-1) + (P-1)x at x = 1 wraps around
	p = New(field.P-1, field.P-1)
	assert.Equal(t, field.P-2, p.ValueAt(1))

	assert.Equal(t, int64(0), Polynomial{}.ValueAt(5))
}

func TestInterpolateAtZero(t *testing.T) {
	res, err := InterpolateAtZero([]int64{1, 2}, []int64{2, 4}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res)

	res, err = InterpolateAtZero([]int64{1, 2, 3}, []int64{3, 6, 11}, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res)
}

func TestInterpolateRandomPolynomial(t *testing.T) {
	p, err := NewRandom(rand.Reader, 31337, 5)
	require.NoError(t, err)

	xs := []int64{3, 9, 1, 27, 100, 65000}
	ys := make([]int64, len(xs))
	for i, x := range xs {
		ys[i] = p.ValueAt(x)
	}

	res, err := InterpolateAtZero(xs, ys, p.Degree())
	require.NoError(t, err)
	assert.Equal(t, p.ValueAt(0), res)

	var sum int64
	for i := range xs {
		term, err := LagrangeTerm(xs, ys, i)
		require.NoError(t, err)
		sum = field.Add(sum, term)
	}
	assert.Equal(t, res, sum)
}

func TestInterpolateErrors(t *testing.T) {
	_, err := InterpolateAtZero([]int64{1, 2}, []int64{1}, 1)
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	_, err = InterpolateAtZero([]int64{1, 2}, []int64{1, 2}, 2)
	assert.True(t, errors.Is(err, ErrInsufficientShares))

	_, err = InterpolateAtZero(nil, nil, 0)
	assert.True(t, errors.Is(err, ErrInsufficientShares))

	_, err = InterpolateAtZero([]int64{1}, []int64{1}, -1)
	assert.True(t, errors.Is(err, ErrInvalidParameters))

	_, err = InterpolateAtZero([]int64{1, 2, 1}, []int64{5, 6, 5}, 2)
	assert.True(t, errors.Is(err, ErrDegenerateInverse))

	// Congruent modulo P is a duplicate as well
	_, err = InterpolateAtZero([]int64{1, 1 + field.P}, []int64{5, 5}, 1)
	assert.True(t, errors.Is(err, ErrDegenerateInverse))
}
