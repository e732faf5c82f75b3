/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package metrics records secret sharing operations as Prometheus metrics.
// Only operation names, outcomes and share counts are recorded, never share values.
package metrics

import (
	sss "github.com/IBM/SSS/types"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	Namespace = "sss"

	LabelOperation = "operation"
	LabelStatus    = "status"
	LabelErrorType = "error_type"

	StatusSuccess = "success"
	StatusError   = "error"
)

// Recorder implements the Metrics interface of the scheme.
type Recorder struct {
	operations *prometheus.CounterVec
	errors     *prometheus.CounterVec
	shares     *prometheus.HistogramVec
}

// NewRecorder creates a recorder and registers its collectors with reg.
// A nil reg leaves the collectors unregistered.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "operations_total",
				Help:      "Total number of secret sharing operations by type and status",
			},
			[]string{LabelOperation, LabelStatus},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "errors_total",
				Help:      "Total number of failed secret sharing operations by type and error kind",
			},
			[]string{LabelOperation, LabelErrorType},
		),
		shares: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "shares",
				Help:      "Number of shares produced or consumed per operation",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
			},
			[]string{LabelOperation},
		),
	}

	if reg == nil {
		return r, nil
	}

	for _, c := range r.Collectors() {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Recorder) Collectors() []prometheus.Collector {
	return []prometheus.Collector{r.operations, r.errors, r.shares}
}

func (r *Recorder) Observe(op string, shares int, err error) {
	if err != nil {
		r.operations.WithLabelValues(op, StatusError).Inc()
		r.errors.WithLabelValues(op, sss.Kind(err)).Inc()
		return
	}
	r.operations.WithLabelValues(op, StatusSuccess).Inc()
	r.shares.WithLabelValues(op).Observe(float64(shares))
}

// Nop discards all observations.
type Nop struct{}

func (Nop) Observe(string, int, error) {}
