// Package grep implements the line search behind the minigrep command.
//
// A Searcher scans standard input or a list of paths line by line with one
// compiled pattern. Files are scanned concurrently, each into its own
// buffer, and the buffers are written out in the order the inputs were
// given. Files ending in .zst or .gz are decompressed on the fly.
package grep

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/coregx/minire"
)

// StdinName is the input name reported for standard input.
const StdinName = "(standard input)"

// maxLineSize bounds a single input line.
const maxLineSize = 16 << 20

// ctxCheckInterval is the number of lines scanned between cancellation checks.
const ctxCheckInterval = 1024

// Options controls what a Searcher prints.
type Options struct {
	// Recursive descends into directory arguments.
	Recursive bool

	// OnlyMatching prints each non-empty match on its own line instead of
	// the whole line.
	OnlyMatching bool

	// LineNumbers prefixes output with the 1-based line number.
	LineNumbers bool

	// CountOnly prints the number of matching lines per input.
	CountOnly bool

	// Color highlights file names, line numbers and matches.
	Color bool

	// JSON prints one JSON object per matching line (or per input with
	// CountOnly).
	JSON bool

	// Jobs is the number of files scanned concurrently. Values below 1 mean 1.
	Jobs int
}

// Summary reports the outcome of Run.
type Summary struct {
	// Inputs is the number of inputs that were scanned.
	Inputs int

	// MatchedLines is the number of matching lines over all inputs.
	MatchedLines int

	// Failed is the number of paths that could not be read.
	Failed int
}

// Matched reports whether any line matched.
func (s Summary) Matched() bool {
	return s.MatchedLines > 0
}

// Searcher scans inputs for lines matching a pattern.
// A Searcher is safe for concurrent use.
type Searcher struct {
	re     *minire.Regex
	opts   Options
	logger *zap.Logger
	styles styles
}

// New returns a Searcher for re. A nil logger discards log output.
func New(re *minire.Regex, opts Options, logger *zap.Logger) *Searcher {
	if opts.Jobs < 1 {
		opts.Jobs = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Searcher{
		re:     re,
		opts:   opts,
		logger: logger,
		styles: newStyles(opts.Color),
	}
}

// result is the output of scanning one input.
type result struct {
	out     []byte
	matched int
	err     error
}

// Run scans stdin when paths is empty and every path otherwise, writing
// the output to w. Names are printed in front of each line when more than
// one path is given or Recursive is set. Each file's output is written as
// soon as every earlier file has been written.
//
// Unreadable paths are logged and skipped. The returned error joins their
// failures, so a non-nil error may come with a Summary that has matches.
func (s *Searcher) Run(ctx context.Context, paths []string, stdin io.Reader, w io.Writer) (Summary, error) {
	if len(paths) == 0 {
		res := s.scan(ctx, StdinName, stdin, false)
		if _, err := w.Write(res.out); err != nil {
			return Summary{}, err
		}
		summary := Summary{Inputs: 1, MatchedLines: res.matched}
		if res.err != nil {
			summary.Failed = 1
		}
		return summary, res.err
	}

	inputs, errs := s.collect(paths)
	withName := s.opts.Recursive || len(paths) > 1

	// Workers may run at most window inputs ahead of the writer, so
	// buffered output stays bounded however many files there are.
	window := make(chan struct{}, 2*s.opts.Jobs)
	results := make([]result, len(inputs))
	done := make([]chan struct{}, len(inputs))
	for i := range done {
		done[i] = make(chan struct{})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Jobs)
	waitErr := make(chan error, 1)
	go func() {
		for i, name := range inputs {
			window <- struct{}{}
			g.Go(func() error {
				defer close(done[i])
				results[i] = s.scanFile(gctx, name, withName)
				return gctx.Err()
			})
		}
		waitErr <- g.Wait()
	}()

	summary := Summary{Failed: len(errs)}
	var writeErr error
	for i := range inputs {
		<-done[i]
		res := results[i]
		results[i] = result{}
		<-window

		if res.err != nil {
			summary.Failed++
			errs = append(errs, res.err)
			continue
		}
		summary.Inputs++
		summary.MatchedLines += res.matched
		if writeErr == nil {
			_, writeErr = w.Write(res.out)
		}
	}
	if err := <-waitErr; err != nil {
		return summary, err
	}
	if writeErr != nil {
		return summary, writeErr
	}

	s.logger.Debug("search finished",
		zap.Int("inputs", summary.Inputs),
		zap.Int("matched_lines", summary.MatchedLines),
		zap.Int("failed", summary.Failed),
		zap.Stringer("strategy", s.re.Strategy()))

	return summary, errors.Join(errs...)
}

func (s *Searcher) scanFile(ctx context.Context, name string, withName bool) result {
	rc, err := openInput(name)
	if err != nil {
		s.logger.Warn("cannot open input", zap.String("path", name), zap.Error(err))
		return result{err: err}
	}
	defer rc.Close()

	res := s.scan(ctx, name, rc, withName)
	if res.err != nil {
		s.logger.Warn("cannot read input", zap.String("path", name), zap.Error(res.err))
	}
	return res
}

// scan reads r line by line and renders every matching line into a buffer.
func (s *Searcher) scan(ctx context.Context, name string, r io.Reader, withName bool) result {
	var buf bytes.Buffer
	p := newPrinter(&buf, name, withName, s.opts, s.styles)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo, matched := 0, 0
	for sc.Scan() {
		lineNo++
		if lineNo%ctxCheckInterval == 0 && ctx.Err() != nil {
			return result{err: ctx.Err()}
		}

		line := sc.Bytes()
		if s.opts.CountOnly {
			if s.re.Match(line) {
				matched++
			}
			continue
		}

		locs := s.re.FindAllIndex(line, -1)
		if locs == nil {
			continue
		}
		matched++
		p.line(lineNo, line, locs)
	}
	if err := sc.Err(); err != nil {
		return result{err: fmt.Errorf("%s: %w", name, err)}
	}

	if s.opts.CountOnly {
		p.count(matched)
	}

	s.logger.Debug("scanned input",
		zap.String("path", name),
		zap.Int("lines", lineNo),
		zap.Int("matched", matched))

	return result{out: buf.Bytes(), matched: matched}
}
