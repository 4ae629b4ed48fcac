package rdfa

import "strings"

// Term is implemented by every RDF node kind the engine produces: IRI,
// TermIRI, Literal, Ref, Blank and RefBlank (the six Node cases of the
// data model). A Term is either a resource (subject/object position) or a
// predicate (which must always be IRI-shaped).
type Term interface {
	// Eq reports structural equality with another Term. Equality pierces
	// Ref, and an IRI compares equal to a TermIRI with the same text.
	Eq(other Term) bool

	term()
}

// IRI is an absolute IRI verified by the URL-parsing collaborator.
type IRI struct {
	Value string
}

func (IRI) term() {}

// Eq reports whether other is an IRI or TermIRI with the same text.
func (i IRI) Eq(other Term) bool {
	return sameIRIText(i.Value, other)
}

// TermIRI is an IRI produced by vocabulary expansion, a reserved keyword,
// or base-relative resolution. It is indistinguishable from IRI under Eq;
// the distinction only matters to the resolver's term/non-term split used
// by the evaluation engine.
type TermIRI struct {
	Value string
}

func (TermIRI) term() {}

// Eq reports whether other is an IRI or TermIRI with the same text.
func (t TermIRI) Eq(other Term) bool {
	return sameIRIText(t.Value, other)
}

func sameIRIText(value string, other Term) bool {
	other = Deref(other)
	switch o := other.(type) {
	case IRI:
		return o.Value == value
	case TermIRI:
		return o.Value == value
	default:
		return false
	}
}

// Blank is a freshly minted blank node; ID is a monotonically assigned,
// process-unique (within one parse) token.
type Blank struct {
	ID uint64
}

func (Blank) term() {}

// Eq reports whether other is a Blank with the same ID.
func (b Blank) Eq(other Term) bool {
	o, ok := Deref(other).(Blank)
	return ok && o.ID == b.ID
}

// RefBlank is a blank node referenced by its original textual label in the
// source, e.g. the text after "_:" in a safe CURIE. Two RefBlank values
// with identical Labels denote the same resource.
type RefBlank struct {
	Label string
}

func (RefBlank) term() {}

// Eq reports whether other is a RefBlank with the same Label.
func (r RefBlank) Eq(other Term) bool {
	o, ok := Deref(other).(RefBlank)
	return ok && o.Label == r.Label
}

// Ref is a shared handle to another Term, letting multiple containers
// reference the same node without copying it. Equality pierces Ref.
type Ref struct {
	Inner Term
}

func (Ref) term() {}

// Eq reports equality after dereferencing both sides through any Ref.
func (r Ref) Eq(other Term) bool {
	return Deref(r).Eq(Deref(other))
}

// Deref unwraps t through any number of Ref layers and returns the
// underlying Term. Equality and hashing always operate on the
// dereferenced Term.
func Deref(t Term) Term {
	for {
		r, ok := t.(Ref)
		if !ok {
			return t
		}
		t = r.Inner
	}
}

// IsIRILike reports whether t is, after dereferencing, an IRI or TermIRI.
func IsIRILike(t Term) bool {
	switch Deref(t).(type) {
	case IRI, TermIRI:
		return true
	default:
		return false
	}
}

// IsTermIRI reports whether t is, after dereferencing, specifically a
// TermIRI (as opposed to a plain IRI) — the distinction the engine uses
// to split term-IRI rels from plain-IRI rels.
func IsTermIRI(t Term) bool {
	_, ok := Deref(t).(TermIRI)
	return ok
}

// textOf returns the lexical text of an IRI-like term, or "" otherwise.
func textOf(t Term) string {
	switch o := Deref(t).(type) {
	case IRI:
		return o.Value
	case TermIRI:
		return o.Value
	default:
		return ""
	}
}

// isEmptyTerm reports whether a dereferenced Term denotes "nothing": an
// empty IRI/TermIRI text, an empty-valued Literal with no datatype and no
// language, or an empty RefBlank label.
func isEmptyTerm(t Term) bool {
	switch o := Deref(t).(type) {
	case IRI:
		return o.Value == ""
	case TermIRI:
		return o.Value == ""
	case RefBlank:
		return o.Label == ""
	case Literal:
		return o.Value == "" && o.Datatype == nil && o.Lang == ""
	case Blank:
		return false
	default:
		return false
	}
}

// trimmed returns s with leading/trailing ASCII/Unicode whitespace removed,
// the same trimming the resolver applies before inspecting a reference.
func trimmed(s string) string {
	return strings.TrimSpace(s)
}
