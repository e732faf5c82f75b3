/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package poly

import (
	"github.com/IBM/SSS/field"
	. "github.com/IBM/SSS/types"
	"github.com/pkg/errors"
)

// InterpolateAtZero returns f(0) for the polynomial f of the given degree passing through
// the points (xs[i], ys[i]). Every point participates, so all of them are expected to lie
// on the same polynomial.
func InterpolateAtZero(xs, ys []int64, degree int) (int64, error) {
	if err := validatePoints(xs, ys, degree); err != nil {
		return 0, err
	}

	var sum int64
	for i := range xs {
		term, err := LagrangeTerm(xs, ys, i)
		if err != nil {
			return 0, err
		}
		sum = field.Add(sum, term)
	}

	return sum, nil
}

// LagrangeTerm returns ys[i] * prod_{j != i} (0 - xs[j]) / (xs[i] - xs[j]).
// The terms of all points sum up to f(0).
func LagrangeTerm(xs, ys []int64, i int) (int64, error) {
	nominator := int64(1)
	denominator := int64(1)

	for j := range xs {
		if j == i {
			continue
		}
		nominator = field.Mul(nominator, field.Neg(xs[j]))
		denominator = field.Mul(denominator, field.Sub(xs[i], xs[j]))
	}

	inv, err := field.ModInverse(denominator, field.P)
	if err != nil {
		return 0, errors.Wrapf(err, "point %d shares its x-coordinate with another point", xs[i])
	}

	return field.Mul(field.Mul(nominator, inv), ys[i]), nil
}

func validatePoints(xs, ys []int64, degree int) error {
	if len(xs) != len(ys) {
		return errors.Wrapf(ErrLengthMismatch, "got %d x-coordinates but %d y-coordinates", len(xs), len(ys))
	}

	if degree < 0 {
		return errors.Wrapf(ErrInvalidParameters, "negative degree %d", degree)
	}

	if degree+1 > len(xs) {
		return errors.Wrapf(ErrInsufficientShares, "polynomial of degree %d cannot be interpolated with only %d points", degree, len(xs))
	}

	return nil
}
