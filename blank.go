package rdfa

import (
	"strconv"
	"sync/atomic"
)

// BlankNodeSource supplies monotonically increasing, process-unique blank
// node identifiers for the lifetime of a single parse.
// Concurrent parses must either use independent sources or one that
// provides atomic increment with a total order, as counterSource does.
type BlankNodeSource interface {
	// Next returns the next identifier, strictly greater than every
	// previously returned identifier from this source.
	Next() uint64
}

// counterSource is the production BlankNodeSource: an atomically
// incremented counter, kept behind an interface so tests can substitute
// a deterministically resettable one.
type counterSource struct {
	n atomic.Uint64
}

// NewBlankNodeSource returns a fresh, zeroed BlankNodeSource suitable for
// one parse. Each call returns an independent counter, so concurrent
// parses naturally avoid sharing state.
func NewBlankNodeSource() BlankNodeSource {
	return &counterSource{}
}

// Next returns the next blank node identifier, starting at 1.
func (c *counterSource) Next() uint64 {
	return c.n.Add(1)
}

// resettableSource is a BlankNodeSource a test harness can reset to zero
// between cases, so that re-running the engine on the same input with the
// counter reset reproduces identical output.
type resettableSource struct {
	n atomic.Uint64
}

// NewResettableBlankNodeSource returns a BlankNodeSource whose Reset method
// restarts the counter at zero. Intended for tests only.
func NewResettableBlankNodeSource() interface {
	BlankNodeSource
	Reset()
} {
	return &resettableSource{}
}

func (r *resettableSource) Next() uint64 { return r.n.Add(1) }
func (r *resettableSource) Reset()       { r.n.Store(0) }

// refBlankRegistry assigns each distinct safe-CURIE label a stable render
// token for the lifetime of one parse that cannot collide with an
// autogenerated Blank: a label that looks like a small integer could
// otherwise render the same as a Blank carrying that numeric id. The
// engine is single-threaded per parse, so a plain map suffices.
type refBlankRegistry struct {
	tokens map[string]string
	blanks BlankNodeSource
}

func newRefBlankRegistry(blanks BlankNodeSource) *refBlankRegistry {
	return &refBlankRegistry{tokens: make(map[string]string), blanks: blanks}
}

// tokenFor returns the render token for label, minting and memoizing one
// the first time label is seen. Labels that are not bare decimal digits
// cannot collide with the `<well-known-prefix><n>` rendering of an
// autogenerated Blank, so they render as themselves.
func (r *refBlankRegistry) tokenFor(label string) string {
	if !looksNumeric(label) {
		return label
	}
	if tok, ok := r.tokens[label]; ok {
		return tok
	}
	tok := "g" + strconv.FormatUint(r.blanks.Next(), 10)
	r.tokens[label] = tok
	return tok
}

func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
