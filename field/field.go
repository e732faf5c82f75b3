/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package field

import (
	"crypto/rand"
	"io"
	"math/big"
	"math/bits"

	. "github.com/IBM/SSS/types"
	"github.com/pkg/errors"
)

// P is the prime modulus of the field. All participants of a sharing must agree on it,
// shares produced under a different modulus cannot be combined or reconstructed.
const P int64 = 65413

var bigP = big.NewInt(P)

// Modulo returns a mod b in [0, b), also for negative a. b must be positive.
func Modulo(a, b int64) int64 {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

// ModExp computes base^exponent mod modulus by repeated squaring.
// For exponent 0 it returns 1 regardless of the base.
func ModExp(base, exponent, modulus int64) int64 {
	b := Modulo(base, modulus)
	e := exponent
	result := int64(1)
	for e > 0 {
		if e%2 == 1 {
			result = mulMod(result, b, modulus)
		}
		b = mulMod(b, b, modulus)
		e /= 2
	}
	return result
}

// mulMod returns a*b mod modulus for a, b in [0, modulus), using a 128-bit product.
func mulMod(a, b, modulus int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return int64(bits.Rem64(hi, lo, uint64(modulus)))
}

// ExtendedEuclid returns (gcd, x, y) such that b*x + n*y = gcd.
// It unrolls the reduction egcd(b, n) -> egcd(n mod b, b), which terminates with (n, 0, 1) once b is 0.
func ExtendedEuclid(b, n int64) (gcd, x, y int64) {
	var quotients []int64
	for b != 0 {
		quotients = append(quotients, n/b)
		b, n = Modulo(n, b), b
	}

	gcd, x, y = n, 0, 1
	for i := len(quotients) - 1; i >= 0; i-- {
		x, y = y-quotients[i]*x, x
	}
	return gcd, x, y
}

// ModInverse returns the x in [0, modulus) with base*x = 1 (mod modulus).
// A base that shares a factor with the modulus (for a prime modulus, a base congruent to 0)
// has no inverse and yields ErrDegenerateInverse.
func ModInverse(base, modulus int64) (int64, error) {
	gcd, x, _ := ExtendedEuclid(Modulo(base, modulus), modulus)
	if gcd != 1 {
		return 0, errors.Wrapf(ErrDegenerateInverse, "%d has no inverse modulo %d", base, modulus)
	}
	return Modulo(x, modulus), nil
}

func Add(a, b int64) int64 {
	return Modulo(Modulo(a, P)+Modulo(b, P), P)
}

func Sub(a, b int64) int64 {
	return Modulo(Modulo(a, P)-Modulo(b, P), P)
}

func Mul(a, b int64) int64 {
	return Modulo(Modulo(a, P)*Modulo(b, P), P)
}

func Neg(a int64) int64 {
	return Modulo(-a, P)
}

// Contains reports whether a is a canonical field element, i.e. in [0, P).
func Contains(a int64) bool {
	return a >= 0 && a < P
}

// RandomElement draws a uniformly distributed element of [0, P) from the given source.
// The secrecy of every sharing relies on this source being unpredictable.
func RandomElement(rand io.Reader) (int64, error) {
	n, err := randInt(rand)
	if err != nil {
		return 0, errors.Wrap(err, "failed drawing random field element")
	}
	return n, nil
}

func randInt(r io.Reader) (int64, error) {
	n, err := rand.Int(r, bigP)
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}
