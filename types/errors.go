/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sss

import (
	"github.com/pkg/errors"
)

var (
	// ErrInsufficientShares is returned when fewer shares than the threshold are given.
	ErrInsufficientShares = errors.New("insufficient shares")
	// ErrLengthMismatch is returned when two share sets (or coordinate vectors) differ in length.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrCoordinateMismatch is returned when paired shares differ in x-coordinate or threshold.
	ErrCoordinateMismatch = errors.New("coordinate mismatch")
	// ErrDegenerateInverse is returned when inverting a value congruent to zero.
	ErrDegenerateInverse = errors.New("degenerate inverse")
	// ErrInvalidParameters is returned for an out of range secret, threshold or share count.
	ErrInvalidParameters = errors.New("invalid parameters")
	// ErrInconsistentShares is returned when shares in one set cannot belong to the same polynomial.
	ErrInconsistentShares = errors.New("inconsistent shares")
)

// Kind maps an error to the name of the sentinel it wraps, for labeling.
func Kind(err error) string {
	switch errors.Cause(err) {
	case nil:
		return ""
	case ErrInsufficientShares:
		return "insufficient_shares"
	case ErrLengthMismatch:
		return "length_mismatch"
	case ErrCoordinateMismatch:
		return "coordinate_mismatch"
	case ErrDegenerateInverse:
		return "degenerate_inverse"
	case ErrInvalidParameters:
		return "invalid_parameters"
	case ErrInconsistentShares:
		return "inconsistent_shares"
	default:
		return "other"
	}
}
