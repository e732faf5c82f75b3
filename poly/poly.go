/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package poly

import (
	"io"

	"github.com/IBM/SSS/field"
	. "github.com/IBM/SSS/types"
	"github.com/pkg/errors"
)

// Polynomial is a polynomial over the field, lowest degree first:
// p[0] is the constant term.
type Polynomial []int64

// NewRandom returns a polynomial of the given degree with yIntercept as its constant term,
// and all other coefficients drawn uniformly from the field using rand.
func NewRandom(rand io.Reader, yIntercept int64, degree int) (Polynomial, error) {
	if degree < 0 {
		return nil, errors.Wrapf(ErrInvalidParameters, "negative degree %d", degree)
	}

	p := make(Polynomial, degree+1)
	p[0] = yIntercept

	for i := 1; i <= degree; i++ {
		c, err := field.RandomElement(rand)
		if err != nil {
			return nil, err
		}
		p[i] = c
	}

	return p, nil
}

// New returns a polynomial with the given coefficients, lowest degree first.
func New(coefficients ...int64) Polynomial {
	p := make(Polynomial, len(coefficients))
	copy(p, coefficients)
	return p
}

func (p Polynomial) Degree() int {
	return len(p) - 1
}

func (p Polynomial) Coefficients() []int64 {
	return New(p...)
}

// ValueAt evaluates the polynomial at x.
func (p Polynomial) ValueAt(x int64) int64 {
	var sum int64
	for i := 0; i < len(p); i++ {
		sum += field.Mul(p[i], field.ModExp(x, int64(i), field.P))
		sum = field.Modulo(sum, field.P)
	}
	return field.Modulo(sum, field.P)
}
