/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sss

import (
	"fmt"
)

const (
	OpCreateShares = "create_shares"
	OpReconstruct  = "reconstruct"
	OpAddShares    = "add_shares"
)

// Logger logs messages in a synchronized fashion to the same destination (usually to a file)
type Logger interface {
	DebugEnabled() bool
	Debugf(format string, a ...interface{})
	Infof(format string, a ...interface{})
	Warnf(format string, a ...interface{})
	Errorf(format string, a ...interface{})
}

// Metrics records the outcome of an operation over a given amount of shares.
// A nil error denotes success.
type Metrics interface {
	Observe(op string, shares int, err error)
}

// Share is a single point (X, Y) on a secret polynomial of degree Threshold-1.
// Y may exceed the field modulus when the share is the result of an addition,
// it is reduced during reconstruction.
type Share struct {
	X         int64
	Y         int64
	Threshold int
	ID        string
}

// WithID returns a copy of the share labeled with the given identifier.
func (s Share) WithID(id string) Share {
	s.ID = id
	return s
}

// String never prints the Y coordinate.
func (s Share) String() string {
	if s.ID == "" {
		return fmt.Sprintf("Share{X: %d, Threshold: %d}", s.X, s.Threshold)
	}
	return fmt.Sprintf("Share{ID: %s, X: %d, Threshold: %d}", s.ID, s.X, s.Threshold)
}

// Shares is an ordered share set, all points of the same polynomial.
type Shares []Share

func (s Shares) Xs() []int64 {
	res := make([]int64, len(s))
	for i, share := range s {
		res[i] = share.X
	}
	return res
}

func (s Shares) Ys() []int64 {
	res := make([]int64, len(s))
	for i, share := range s {
		res[i] = share.Y
	}
	return res
}

// Threshold returns the threshold declared by the first share, or 0 for an empty set.
func (s Shares) Threshold() int {
	if len(s) == 0 {
		return 0
	}
	return s[0].Threshold
}

// Subset returns the shares at the given 1-based positions.
func (s Shares) Subset(positions ...int64) Shares {
	res := make(Shares, 0, len(positions))
	for _, p := range positions {
		res = append(res, s[p-1])
	}
	return res
}
