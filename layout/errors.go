// SPDX-License-Identifier: MIT
// Package: districts/layout
//
// errors.go: sentinel errors for the layout package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Constructors attach context as "<Method>: <detail>: %w".
//   • Constructors never panic; validation panics are confined to WithX options.
//
// Priority when several validations fail:
//   ErrTooFewNodes → ErrBadRadius → ErrTooManyChildren → ErrNeedRandSource → ErrConstructFailed.

package layout

import "errors"

// ErrTooFewNodes indicates a size parameter (n, rows, cols, perParent) below
// the constructor minimum.
var ErrTooFewNodes = errors.New("layout: parameter too small")

// ErrBadRadius indicates a non-positive radius.
var ErrBadRadius = errors.New("layout: radius must be positive")

// ErrTooManyChildren indicates more children per parent than free offsets.
var ErrTooManyChildren = errors.New("layout: too many children per parent")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("layout: rng is required")

// ErrConstructFailed indicates a constructor could not place its nodes, or a
// nil constructor was passed to BuildWorld.
var ErrConstructFailed = errors.New("layout: construction failed")
