package meta

import (
	"sync/atomic"

	"github.com/coregx/minire/literal"
	"github.com/coregx/minire/prefilter"
	"github.com/coregx/minire/syntax"
)

// Engine runs the greedy evaluator over haystacks using the strategy
// selected for its pattern.
//
// Thread safety: the pattern tree and prefilter are immutable after
// compilation and per-search state lives on the stack of each call, so
// multiple goroutines can safely search with the same Engine. Statistics
// are updated atomically.
//
// Example:
//
//	engine, err := meta.Compile("he+llo")
//	if err != nil {
//	    return err
//	}
//	match := engine.Find([]byte("say heeello"))
//	if match != nil {
//	    println(match.String()) // "heeello"
//	}
type Engine struct {
	// stats MUST be first for 8-byte alignment of its atomics on 32-bit platforms.
	stats Stats

	pattern   string
	root      *syntax.Node
	prefixes  *literal.Seq
	prefilter prefilter.Prefilter
	strategy  Strategy
	config    Config

	// alwaysMatches is true if the root succeeds at every offset, so
	// IsMatch can answer without evaluating.
	alwaysMatches bool
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// Searches counts calls into the search dispatcher.
	Searches uint64

	// ScanSearches counts searches that tried offsets one by one,
	// including prefilter fallbacks.
	ScanSearches uint64

	// PrefilterHits counts prefilter candidates confirmed by the evaluator,
	// plus literal matches reported without evaluation.
	PrefilterHits uint64

	// PrefilterMisses counts prefilter candidates that didn't match.
	PrefilterMisses uint64

	// PrefilterAbandoned counts times the prefilter was abandoned due to a
	// high false positive rate.
	PrefilterAbandoned uint64
}

// Compile compiles a pattern with the default configuration.
//
// Example:
//
//	engine, err := meta.Compile("^abc")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Steps:
//  1. Validate the configuration
//  2. Tokenize and parse the pattern
//  3. Extract prefix literals and build a prefilter
//  4. Select the strategy
//
// Returns a *ConfigError for an invalid configuration and a *CompileError
// wrapping the syntax error for an invalid pattern.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	root, err := syntax.Compile(pattern, syntax.Options{StrictDelimiters: config.StrictDelimiters})
	if err != nil {
		return nil, &CompileError{
			Pattern: pattern,
			Err:     err,
		}
	}

	e := NewEngine(root, config)
	e.pattern = pattern
	return e, nil
}

// NewEngine builds an engine for an already parsed tree.
// The configuration is assumed valid.
func NewEngine(root *syntax.Node, config Config) *Engine {
	e := &Engine{
		root:          root,
		config:        config,
		alwaysMatches: root.AlwaysMatches(),
	}

	// A start-anchored pattern is only tried at offset 0; a prefilter would
	// find its literal anywhere and bypass the anchor.
	if config.EnablePrefilter && root.Op != syntax.OpStartAnchor {
		extractor := literal.New(literal.ExtractorConfig{
			MaxLiterals:   config.MaxLiterals,
			MaxLiteralLen: config.MaxLiteralLen,
			MaxClassSize:  config.MaxClassExpansion,
		})
		e.prefixes = extractor.ExtractPrefixes(root)
		e.prefilter = prefilter.NewBuilder(e.prefixes).Build()
	}

	e.strategy = SelectStrategy(root, e.prefilter, config)
	return e
}

// Pattern returns the source text the engine was compiled from.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Root returns the parsed pattern tree. It must not be modified.
func (e *Engine) Root() *syntax.Node {
	return e.root
}

// Strategy returns the execution strategy selected for this engine.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Prefixes returns the extracted prefix literals, or nil when extraction
// was not attempted.
func (e *Engine) Prefixes() *literal.Seq {
	return e.prefixes
}

// Prefilter returns the candidate finder, or nil when there is none.
func (e *Engine) Prefilter() prefilter.Prefilter {
	return e.prefilter
}

// IsStartAnchored returns true if the pattern is anchored at the start (^).
func (e *Engine) IsStartAnchored() bool {
	return e.strategy == UseAnchored
}

// Stats returns a snapshot of the execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		Searches:           atomic.LoadUint64(&e.stats.Searches),
		ScanSearches:       atomic.LoadUint64(&e.stats.ScanSearches),
		PrefilterHits:      atomic.LoadUint64(&e.stats.PrefilterHits),
		PrefilterMisses:    atomic.LoadUint64(&e.stats.PrefilterMisses),
		PrefilterAbandoned: atomic.LoadUint64(&e.stats.PrefilterAbandoned),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.Searches, 0)
	atomic.StoreUint64(&e.stats.ScanSearches, 0)
	atomic.StoreUint64(&e.stats.PrefilterHits, 0)
	atomic.StoreUint64(&e.stats.PrefilterMisses, 0)
	atomic.StoreUint64(&e.stats.PrefilterAbandoned, 0)
}

// CompileError represents a pattern compilation error.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface. The message is the underlying
// syntax error's, e.g. "Unexpected token ')' (group close) at position 0,
// expected '(' before ')'".
func (e *CompileError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying syntax error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
