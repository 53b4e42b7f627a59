package thuemorse

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/thuemorse/alphabet"
	"github.com/katalvlaran/thuemorse/internal/logging"
	"github.com/katalvlaran/thuemorse/sequence"
	"github.com/katalvlaran/thuemorse/symbolgraph"
)

// Version is the release of the module and the CLI.
const Version = "0.1.0"

// Analysis bundles one run: the scanned source, its alphabet, the symbol
// graph and an optional rendering of a sequence prefix.
type Analysis struct {
	// K is the window length.
	K int

	// Source is the Thue-Morse prefix that was scanned.
	Source string

	// Alphabet holds the distinct K-windows of Source.
	Alphabet *alphabet.Alphabet

	// Graph relates the alphabet's symbols.
	Graph *symbolgraph.Graph

	// Prefix is T[0 : K+M-1] for render length M; empty when M == 0.
	Prefix string

	// Rendering is Prefix spelled in labels; len(Rendering) == M.
	Rendering []string
}

// Option customizes Analyze.
type Option func(*analysisConfig)

type analysisConfig struct {
	renderLength int
	logger       *slog.Logger
	alphabetOpts []alphabet.Option
}

// WithRenderLength requests a rendering of M symbols. Panics if m < 0.
func WithRenderLength(m int) Option {
	if m < 0 {
		panic("thuemorse: WithRenderLength(m<0)")
	}
	return func(c *analysisConfig) { c.renderLength = m }
}

// WithLogger routes debug diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("thuemorse: WithLogger(nil)")
	}
	return func(c *analysisConfig) { c.logger = l }
}

// WithAlphabetOptions forwards label-scheme options to alphabet.Discover.
func WithAlphabetOptions(opts ...alphabet.Option) Option {
	return func(c *analysisConfig) { c.alphabetOpts = append(c.alphabetOpts, opts...) }
}

// Analyze generates the source for window length k, extracts its alphabet,
// builds the symbol graph and, if requested, renders a prefix.
// Errors from alphabet and symbolgraph are returned wrapped.
func Analyze(k int, opts ...Option) (*Analysis, error) {
	cfg := analysisConfig{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger.With("k", k)

	// same scan as alphabet.Discover, keeping the source for the Analysis
	src := alphabet.DiscoverySource(k)
	log.Debug("generated source", "length", len(src))

	a, err := alphabet.Build(src, k, cfg.alphabetOpts...)
	if err != nil {
		return nil, fmt.Errorf("thuemorse: Analyze: %w", err)
	}
	log.Debug("built alphabet", "symbols", a.Len())

	g, err := symbolgraph.Build(a)
	if err != nil {
		return nil, fmt.Errorf("thuemorse: Analyze: %w", err)
	}
	log.Debug("built symbol graph", "edges", len(g.Edges()))

	an := &Analysis{K: k, Source: src, Alphabet: a, Graph: g}
	if cfg.renderLength > 0 && k > 0 {
		an.Prefix = sequence.Generate(k + cfg.renderLength - 1)
		an.Rendering = alphabet.RenderLabels(a, an.Prefix)
		log.Debug("rendered prefix", "bits", len(an.Prefix), "labels", len(an.Rendering))
	}

	return an, nil
}
