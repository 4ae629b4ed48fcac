package rdfa

import "github.com/golang/glog"

// Options configures a single call to Parse.
type Options struct {
	// Base is the document's initial base IRI.
	Base string

	// EmptyRefNodeSubstitute is required only if the document contains a
	// "[_:]" safe CURIE; ParseElement returns ErrMissingSubstitute if it
	// is encountered without one.
	EmptyRefNodeSubstitute string

	// WellKnownPrefix is used to render generated blank nodes as
	// dereferenceable IRIs during serialization. Defaults to
	// "http://data.lblod.info/.well-known/genid#".
	WellKnownPrefix string

	// Blanks, if non-nil, overrides the default atomic blank node
	// counter — tests pass a resettable source here for determinism.
	Blanks BlankNodeSource
}

// Parse evaluates root's RDFa markup and renders the resulting graph as
// N-Triples.
func Parse(root Element, opts Options) (string, error) {
	stmts, err := ParseElement(root, opts)
	if err != nil {
		return "", err
	}
	glog.V(1).Infof("rdfa: parsed %d statements", len(stmts))
	return SerializeNTriples(stmts, opts.WellKnownPrefix), nil
}

// ParseElement evaluates root's RDFa markup and returns the resulting,
// deduplicated statement set without serializing it.
func ParseElement(root Element, opts Options) ([]Statement, error) {
	if root == nil {
		return nil, ErrMalformedTree
	}
	blanks := opts.Blanks
	if blanks == nil {
		blanks = NewBlankNodeSource()
	}
	ctx := Context{
		Base:                   opts.Base,
		EmptyRefNodeSubstitute: opts.EmptyRefNodeSubstitute,
		WellKnownPrefix:        opts.WellKnownPrefix,
		blanks:                 blanks,
		refBlanks:              newRefBlankRegistry(blanks),
	}
	return Evaluate(ctx, root)
}
