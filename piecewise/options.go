// SPDX-License-Identifier: MIT
// Package: stepfn/piecewise
//
// options.go — functional options for Builder.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and PANIC on meaningless input
//     (programmer error). Builder and algorithms never panic.
//   • No hidden globals; everything flows through builderConfig.

package piecewise

// DefaultCapacity is the initial segment capacity of a Builder. Step
// functions in this package are expected to stay small; a Builder that
// outgrows it spills to a larger slice like any append.
const DefaultCapacity = 8

// BuilderOption customises a Builder at construction time.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved Builder configuration.
type builderConfig struct {
	capacity int
}

// WithCapacity sets the initial segment capacity of the Builder.
// Panics on n < 0. n == 0 defers every allocation to the first Overlay.
func WithCapacity(n int) BuilderOption {
	if n < 0 {
		panic("piecewise: WithCapacity(n<0)")
	}
	return func(c *builderConfig) {
		c.capacity = n
	}
}

// newBuilderConfig applies opts over the defaults. Nil options are skipped.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{capacity: DefaultCapacity}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
