// SPDX-License-Identifier: MIT
// Package: districts/collapse
//
// options.go: functional options for NewEngine.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//     Engine methods themselves never panic.
//   • Use Params.Validate first when values come from user configuration.

package collapse

import (
	"fmt"
	"log/slog"
)

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithParams replaces the heuristic parameters. Panics if p is invalid.
func WithParams(p Params) Option {
	if err := p.Validate(); err != nil {
		panic(fmt.Sprintf("collapse: WithParams: %v", err))
	}
	return func(e *Engine) { e.params = p }
}

// WithWorkers bounds tick parallelism. 0 means runtime.GOMAXPROCS(0).
// Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("collapse: WithWorkers(n<0)")
	}
	return func(e *Engine) { e.workers = n }
}

// WithLogger sets the engine logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("collapse: WithLogger(nil)")
	}
	return func(e *Engine) { e.logger = l }
}
