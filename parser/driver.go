// Package parser translates bibliographic search queries, in both the
// legacy SPIRES dialect and the Invenio colon dialect, into a single
// AST. Parsing is total: malformed input degrades to MalformedQuery
// nodes instead of failing, and the result records whether that
// fallback was used.
package parser

import (
	"strings"
	"time"

	"github.com/inspirehep/inspire-query-parser/ast"
	"github.com/inspirehep/inspire-query-parser/errors"
	"github.com/inspirehep/inspire-query-parser/keyword"
	"github.com/inspirehep/inspire-query-parser/logger"
)

// Result is the outcome of one parse. Root is never nil. FallbackUsed
// is set when any part of the input was not recognized by the grammar,
// which callers typically surface as "query not understood" telemetry
// while still running the degraded query.
type Result struct {
	Root         ast.Node
	FallbackUsed bool
}

// Driver parses queries against a keyword registry and a clock. The
// zero configuration uses the standard field tables and the wall
// clock; both can be overridden for tests or alternate deployments.
type Driver struct {
	reg *keyword.Registry
	now func() time.Time
}

type Option func(*Driver)

// WithRegistry replaces the keyword registry.
func WithRegistry(reg *keyword.Registry) Option {
	return func(d *Driver) { d.reg = reg }
}

// WithClock replaces the clock used to resolve relative date
// specifiers such as today-2.
func WithClock(now func() time.Time) Option {
	return func(d *Driver) { d.now = now }
}

func NewDriver(opts ...Option) *Driver {
	d := &Driver{reg: keyword.Default(), now: timeNow}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var defaultDriver = NewDriver()

// Parse parses raw with the default driver.
func Parse(raw string) Result {
	return defaultDriver.Parse(raw)
}

// Parse translates raw query text into an AST. It never fails: input
// the grammar cannot read comes back as a MalformedQuery over its
// words, empty input as ValueOp(Empty), and any internal panic is
// contained behind the same plaintext fallback.
func (d *Driver) Parse(raw string) Result {
	root, furthest, err := d.tryParse(raw)
	if err != nil {
		logger.Logger.Warnw("query parse failed, degrading to plaintext",
			"query", raw,
			"error", err,
		)
		return Result{Root: plaintextFallback(raw), FallbackUsed: true}
	}

	fallback := false
	ast.Walk(root, func(n ast.Node) bool {
		if _, ok := n.(*ast.MalformedQuery); ok {
			fallback = true
			return false
		}
		return true
	})
	if fallback {
		logger.Logger.Warnw("query partially recognized",
			"query", raw,
			"furthest_offset", furthest,
		)
	} else {
		logger.Logger.Debugw("query parsed",
			"query", raw,
			"canonical", ast.Serialize(root),
		)
	}
	return Result{Root: root, FallbackUsed: fallback}
}

func (d *Driver) tryParse(raw string) (root ast.Node, furthest int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("parse panic: %v", r)
		}
	}()

	p := newParser(raw, d.reg)
	cst := p.parseQuery()
	b := &builder{input: raw, reg: d.reg, now: d.now()}
	return b.build(cst), p.furthest, nil
}

// plaintextFallback is the last line of defense: the whole input as
// free-text words, or the empty query.
func plaintextFallback(raw string) ast.Node {
	words := strings.Fields(raw)
	if len(words) == 0 {
		return &ast.ValueOp{Value: &ast.Empty{}}
	}
	return &ast.MalformedQuery{Words: words}
}
