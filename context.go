package rdfa

// Context is the inherited evaluation state passed from parent to child
// element. Contexts are stack-allocated per element and released when the
// element's subtree completes — a strict tree, never a shared graph of
// pointers.
type Context struct {
	// Base is the current base IRI: inherited, and overridable by a
	// descendant <base href> element or a base attribute on the current
	// element.
	Base string

	// Vocab is the default vocabulary IRI, or "" if none is in scope.
	Vocab string

	// Lang is the current language tag, or "" if none is in scope.
	Lang string

	// Prefixes maps a CURIE prefix label to its IRI. Replaced wholesale
	// when a prefix attribute is present on the element; otherwise
	// inherited from the parent.
	Prefixes map[string]string

	// InRel, InRev and InList carry incomplete-triple predicate lists to
	// the child element: predicates awaiting an object supplied by a
	// descendant.
	InRel  []Term
	InRev  []Term
	InList []Term

	// CurrentNode is the current subject inherited from the parent
	// element.
	CurrentNode Term

	// EmptyRefNodeSubstitute names the blank node produced by the safe
	// CURIE "[_:]" (an explicit reference to an unnamed blank node).
	// ParseElement returns ErrMissingSubstitute only when a "[_:]" is
	// actually resolved while this is empty; an empty value is not
	// rejected up front.
	EmptyRefNodeSubstitute string

	// WellKnownPrefix is the blank-node IRI prefix, e.g. the
	// "http://data.lblod.info/.well-known/genid#" in
	// "<http://data.lblod.info/.well-known/genid#7>". Evaluate defaults it
	// and child contexts carry it, but serialisation does not read it:
	// Parse passes Options.WellKnownPrefix to SerializeNTriples.
	WellKnownPrefix string

	// blanks and refBlanks are shared, parse-scoped state: every Context
	// derived from the same ParseElement call must mint blank node
	// identifiers from the same source and resolve the same safe-CURIE
	// label to the same token. They exist purely to thread shared mutable
	// state through an otherwise stack-allocated, per-element Context.
	blanks    BlankNodeSource
	refBlanks *refBlankRegistry
}

// child returns the starting Context passed into the evaluation of one of
// this element's children. It carries Base, Lang, EmptyRefNodeSubstitute
// and WellKnownPrefix forward. Vocab, Prefixes, CurrentNode and the
// incomplete-triple lists are left unset here; evaluateElement fills them
// in on the returned Context before recursing. The shared parse-scoped
// blank-node state always carries over.
func (c Context) child() Context {
	return Context{
		Base:                   c.Base,
		Lang:                   c.Lang,
		EmptyRefNodeSubstitute: c.EmptyRefNodeSubstitute,
		WellKnownPrefix:        c.WellKnownPrefix,
		blanks:                 c.blanks,
		refBlanks:              c.refBlanks,
	}
}

func (c *Context) newBlank() Term {
	return Blank{ID: c.blanks.Next()}
}

func (c *Context) refBlank(label string) Term {
	return RefBlank{Label: c.refBlanks.tokenFor(label)}
}
