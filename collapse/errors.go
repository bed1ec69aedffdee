// SPDX-License-Identifier: MIT
// Package: districts/collapse
//
// errors.go: sentinel errors for the collapse package.
//
// Node-local failures never abort a tick. They are recorded on the node's
// Outcome.Reason so drivers can log them and decide on a retry policy:
//   • ErrMissingStorage    → Failed        (structural error)
//   • ErrExhausted         → Contradiction (constraints removed every option)
//   • ErrDegenerateWeights → Failed        (forced collapse with total weight ≤ 0)

package collapse

import "errors"

// ErrMissingStorage indicates a node without candidate-set storage.
var ErrMissingStorage = errors.New("collapse: node has no candidate storage")

// ErrExhausted indicates constraint propagation eliminated every candidate.
var ErrExhausted = errors.New("collapse: all candidates eliminated")

// ErrDegenerateWeights indicates a forced collapse over a zero-weight set.
var ErrDegenerateWeights = errors.New("collapse: candidate weights sum to zero")

// ErrInvalidParams indicates a Params field outside its documented range.
var ErrInvalidParams = errors.New("collapse: invalid params")

// ErrNegativeDelta indicates Tick was called with a negative time delta.
var ErrNegativeDelta = errors.New("collapse: negative tick delta")
