/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package threshold

import (
	"crypto/rand"
	"io"
	"math/big"
	"sync"

	"github.com/IBM/SSS/field"
	"github.com/IBM/SSS/logging"
	"github.com/IBM/SSS/metrics"
	"github.com/IBM/SSS/poly"
	. "github.com/IBM/SSS/types"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var defaultScheme = &Scheme{}

// CreateShares splits secret into n shares, any threshold of which reconstruct it,
// drawing coefficients from crypto/rand.
func CreateShares(secret int64, n, threshold int) (Shares, error) {
	return defaultScheme.CreateShares(secret, n, threshold)
}

// Reconstruct recovers the secret of the given shares.
func Reconstruct(shares Shares) (int64, error) {
	return defaultScheme.Reconstruct(shares)
}

// AddShares combines two share sets into a share set of the sum of their secrets.
func AddShares(a, b Shares) (Shares, error) {
	return defaultScheme.AddShares(a, b)
}

// Scheme creates, reconstructs and adds shares.
// With StrictReconstruct set, Reconstruct first runs CheckConsistency, which interpolates
// every threshold-sized subset of the given shares, C(n, t) of them, and is rejected
// beyond MaxConsistencySubsets.
type Scheme struct {
	// State
	setupOnce sync.Once
	// Config
	Rand              io.Reader
	Logger            Logger
	Metrics           Metrics
	Workers           int
	StrictReconstruct bool
}

// MaxConsistencySubsets bounds the number of threshold-sized subsets a consistency check
// interpolates. Larger share sets fail the check with ErrInvalidParameters.
const MaxConsistencySubsets = 1 << 16

func (s *Scheme) setup() {
	if s.Rand == nil {
		s.Rand = rand.Reader
	}
	if s.Logger == nil {
		s.Logger = logging.Nop()
	}
	if s.Metrics == nil {
		s.Metrics = metrics.Nop{}
	}
	if s.Workers < 1 {
		s.Workers = 1
	}
}

// CreateShares builds a random polynomial of degree threshold-1 with secret as its constant term,
// and evaluates it at x = 1, ..., n. Fewer than threshold of the returned shares reveal nothing about the secret.
func (s *Scheme) CreateShares(secret int64, n, threshold int) (Shares, error) {
	s.setupOnce.Do(s.setup)

	shares, err := s.createShares(secret, n, threshold)
	s.Metrics.Observe(OpCreateShares, len(shares), err)
	if err != nil {
		s.Logger.Warnf("Failed creating %d shares with threshold %d: %v", n, threshold, err)
		return nil, err
	}

	s.Logger.Debugf("Created %d shares with threshold %d", n, threshold)
	return shares, nil
}

func (s *Scheme) createShares(secret int64, n, threshold int) (Shares, error) {
	if err := validateShareParameters(secret, n, threshold); err != nil {
		return nil, err
	}

	polynomial, err := poly.NewRandom(s.Rand, secret, threshold-1)
	if err != nil {
		return nil, err
	}

	shares := make(Shares, n)
	// x = 0 is never used, that is the secret itself.
	err = s.forEach(n, func(i int) error {
		x := int64(i + 1)
		shares[i] = Share{
			X:         x,
			Y:         polynomial.ValueAt(x),
			Threshold: threshold,
		}
		return nil
	})

	return shares, err
}

func validateShareParameters(secret int64, n, threshold int) error {
	if threshold < 1 {
		return errors.Wrapf(ErrInvalidParameters, "threshold must be at least 1, got %d", threshold)
	}
	if threshold > n {
		return errors.Wrapf(ErrInvalidParameters, "threshold (%d) exceeds the number of shares (%d)", threshold, n)
	}
	if int64(n) >= field.P {
		return errors.Wrapf(ErrInvalidParameters, "cannot create %d shares, at most %d distinct non-zero points exist", n, field.P-1)
	}
	if !field.Contains(secret) {
		return errors.Wrapf(ErrInvalidParameters, "secret is outside of [0, %d)", field.P)
	}
	return nil
}

// Reconstruct recovers the secret by interpolating all given shares at zero.
// The threshold is taken from the shares, which must all agree on it and have distinct x-coordinates.
func (s *Scheme) Reconstruct(shares Shares) (int64, error) {
	s.setupOnce.Do(s.setup)

	secret, err := s.reconstruct(shares)
	s.Metrics.Observe(OpReconstruct, len(shares), err)
	if err != nil {
		s.Logger.Warnf("Failed reconstructing from %d shares: %v", len(shares), err)
		return 0, err
	}

	s.Logger.Debugf("Reconstructed secret from %d shares with threshold %d", len(shares), shares.Threshold())
	return secret, nil
}

func (s *Scheme) reconstruct(shares Shares) (int64, error) {
	if err := validateShares(shares); err != nil {
		return 0, err
	}

	if s.StrictReconstruct {
		if err := s.checkConsistency(shares); err != nil {
			return 0, err
		}
	}

	return s.interpolate(shares)
}

func (s *Scheme) interpolate(shares Shares) (int64, error) {
	xs, ys := shares.Xs(), shares.Ys()
	degree := shares.Threshold() - 1

	if s.Workers == 1 {
		return poly.InterpolateAtZero(xs, ys, degree)
	}

	terms := make([]int64, len(shares))
	err := s.forEach(len(shares), func(i int) error {
		term, err := poly.LagrangeTerm(xs, ys, i)
		terms[i] = term
		return err
	})
	if err != nil {
		return 0, err
	}

	var secret int64
	for _, term := range terms {
		secret = field.Add(secret, term)
	}
	return secret, nil
}

func validateShares(shares Shares) error {
	if len(shares) == 0 {
		return errors.Wrap(ErrInsufficientShares, "no shares provided")
	}

	t := shares.Threshold()
	if t < 1 {
		return errors.Wrapf(ErrInvalidParameters, "invalid threshold %d", t)
	}
	if len(shares) < t {
		return errors.Wrapf(ErrInsufficientShares, "need at least %d shares, got %d", t, len(shares))
	}

	used := make(map[int64]struct{}, len(shares))
	for i, share := range shares {
		if share.Threshold != t {
			return errors.Wrapf(ErrInconsistentShares, "share %d has threshold %d but share 0 has %d", i, share.Threshold, t)
		}
		x := field.Modulo(share.X, field.P)
		if _, exists := used[x]; exists {
			return errors.Wrapf(ErrDegenerateInverse, "x-coordinate %d appears twice", share.X)
		}
		used[x] = struct{}{}
	}

	return nil
}

// CheckConsistency reconstructs from every threshold-sized subset of the shares
// and fails if they do not all yield the same secret.
// It detects shares of different polynomials mixed into one set, given more shares than the threshold.
func (s *Scheme) CheckConsistency(shares Shares) error {
	s.setupOnce.Do(s.setup)

	if err := validateShares(shares); err != nil {
		return err
	}

	return s.checkConsistency(shares)
}

func (s *Scheme) checkConsistency(shares Shares) error {
	t := shares.Threshold()
	if len(shares) == t {
		return nil
	}

	subsets := new(big.Int).Binomial(int64(len(shares)), int64(t))
	if subsets.Cmp(big.NewInt(MaxConsistencySubsets)) > 0 {
		return errors.Wrapf(ErrInvalidParameters, "checking %d shares with threshold %d takes %s interpolations, at most %d are allowed",
			len(shares), t, subsets, MaxConsistencySubsets)
	}

	var err error
	var first int64
	var checked int
	chooseKoutOfN(len(shares), t, func(positions []int64) bool {
		subset := shares.Subset(positions...)
		var secret int64
		secret, err = poly.InterpolateAtZero(subset.Xs(), subset.Ys(), t-1)
		if err != nil {
			return false
		}
		checked++
		if checked == 1 {
			first = secret
			return true
		}
		if secret != first {
			err = errors.Wrapf(ErrInconsistentShares, "shares at positions %v disagree with the first %d of %d shares", positions, t, len(shares))
			return false
		}
		return true
	})

	return err
}

// AddShares adds two index aligned share sets, yielding shares of the sum of both secrets.
// Paired shares must have the same x-coordinate and threshold. The summed y-coordinates are
// left unreduced, reconstruction reduces them. A sum that would overflow int64 is reduced modulo P instead.
func (s *Scheme) AddShares(a, b Shares) (Shares, error) {
	s.setupOnce.Do(s.setup)

	res, err := addShares(a, b)
	s.Metrics.Observe(OpAddShares, len(res), err)
	if err != nil {
		s.Logger.Warnf("Failed adding share sets: %v", err)
		return nil, err
	}

	s.Logger.Debugf("Added two sets of %d shares", len(res))
	return res, nil
}

func addShares(a, b Shares) (Shares, error) {
	if len(a) != len(b) {
		return nil, errors.Wrapf(ErrLengthMismatch, "cannot add %d shares to %d shares", len(b), len(a))
	}

	res := make(Shares, len(a))
	for i := range a {
		if a[i].Threshold != b[i].Threshold {
			return nil, errors.Wrapf(ErrCoordinateMismatch, "shares at %d have thresholds %d and %d", i, a[i].Threshold, b[i].Threshold)
		}
		if a[i].X != b[i].X {
			return nil, errors.Wrapf(ErrCoordinateMismatch, "shares at %d have x-coordinates %d and %d", i, a[i].X, b[i].X)
		}
		res[i] = Share{
			X:         a[i].X,
			Y:         addY(a[i].Y, b[i].Y),
			Threshold: a[i].Threshold,
		}
	}

	return res, nil
}

// addY returns a+b, reduced into the field only if the plain sum would overflow.
func addY(a, b int64) int64 {
	sum := a + b
	if (a^sum)&(b^sum) < 0 {
		return field.Add(a, b)
	}
	return sum
}

// forEach invokes f on 0, ..., n-1, concurrently over at most Workers goroutines.
func (s *Scheme) forEach(n int, f func(i int) error) error {
	if s.Workers == 1 {
		for i := 0; i < n; i++ {
			if err := f(i); err != nil {
				return err
			}
		}
		return nil
	}

	var eg errgroup.Group
	eg.SetLimit(s.Workers)
	for i := 0; i < n; i++ {
		i := i
		eg.Go(func() error {
			return f(i)
		})
	}
	return eg.Wait()
}
