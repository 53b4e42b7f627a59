// SPDX-License-Identifier: MIT
// Package: thuemorse/alphabet
//
// options.go: functional options and the resolved catalog configuration.
//
// Contract:
//   • Options are functional (type Option func(*catalogConfig)).
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Later options override earlier ones.

package alphabet

// Option customizes Build, BuildFrom and Discover.
type Option func(*catalogConfig)

// catalogConfig holds every knob a catalog scan reads. Passed by value.
type catalogConfig struct {
	// labelFn names symbols by first-seen index.
	labelFn LabelFn
	// capacity is the number of labels labelFn can produce; Unbounded for no limit.
	capacity int
	// clamp assigns UnknownLabel past capacity instead of failing.
	clamp bool
}

// newCatalogConfig resolves opts over the deterministic defaults:
// DefaultLabelFn, capacity MaxLabels, strict overflow.
func newCatalogConfig(opts ...Option) catalogConfig {
	cfg := catalogConfig{
		labelFn:  DefaultLabelFn,
		capacity: MaxLabels,
		clamp:    false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLabelScheme sets the label generator and its capacity (Unbounded for
// no limit). Panics on nil fn or a capacity that is neither positive nor Unbounded.
// fn must be injective over the indexes it is asked for; the scan rejects
// repeats with ErrDuplicateLabel.
func WithLabelScheme(fn LabelFn, capacity int) Option {
	if fn == nil {
		panic("alphabet: WithLabelScheme(nil)")
	}
	if capacity <= 0 && capacity != Unbounded {
		panic("alphabet: WithLabelScheme(capacity<=0)")
	}
	return func(c *catalogConfig) {
		c.labelFn = fn
		c.capacity = capacity
	}
}

// WithDecimalLabels switches to DecimalLabelFn with unbounded capacity.
func WithDecimalLabels() Option {
	return WithLabelScheme(DecimalLabelFn, Unbounded)
}

// WithClampedLabels labels symbols past the capacity with UnknownLabel
// instead of returning ErrLabelSpaceExhausted.
func WithClampedLabels() Option {
	return func(c *catalogConfig) { c.clamp = true }
}
