package rdfa

import "strings"

// Element is the tree-walking collaborator the engine consumes: an
// adapter over whatever HTML/XML DOM representation the caller has
// parsed. It is deliberately minimal — one method per RDFa-relevant
// attribute, plus tree navigation — so that other DOM libraries can
// implement it besides the htmldom package.
type Element interface {
	// Name returns the element's local tag name, lowercased.
	Name() string

	// Attr returns the named attribute's trimmed value and whether it
	// was present at all.
	Attr(name string) (string, bool)

	// Children returns the element's direct element children in document
	// order. Text-only nodes are not represented as children.
	Children() []Element

	// Text returns the element's direct text content (not including
	// descendant elements' text), concatenated in document order.
	Text() string

	// InnerHTML returns the element's descendant markup, serialized back
	// to source form, for the rdf:XMLLiteral/rdf:HTML special datatypes,
	// which must preserve markup rather than flatten it to plain text.
	InnerHTML() string
}

// elementView wraps an Element with the derived, RDFa-specific fields the
// engine reads once per element: vocab/base/prefix declarations, the six
// core attributes, and a handful of derived booleans.
type elementView struct {
	el Element

	vocab       string
	base        string
	prefixes    map[string]string
	resource    string
	lang        string
	property    []string
	rel         []string
	rev         []string
	typeOf      []string
	src         string
	href        string
	datatype    string
	inlist      bool
	content     string
	about       string
	datetime    string
	hasResource bool
	hasAbout    bool
	hasContent  bool
	hasDatatype bool
}

// newElementView reads every RDFa-relevant attribute off el once, so the
// rest of the engine works against plain fields instead of repeated
// Attr lookups.
func newElementView(el Element) *elementView {
	v := &elementView{el: el}

	if val, ok := el.Attr("vocab"); ok {
		v.vocab = trimmed(val)
	}
	if val, ok := el.Attr("base"); ok {
		v.base = stripFragment(trimmed(val))
	} else if el.Name() == "base" {
		if href, ok := el.Attr("href"); ok {
			v.base = stripFragment(trimmed(href))
		}
	}
	if val, ok := el.Attr("prefix"); ok {
		v.prefixes = parsePrefixAttr(val)
	}
	if val, ok := el.Attr("resource"); ok {
		v.resource = trimmed(val)
		v.hasResource = true
	}
	if val, ok := el.Attr("lang"); ok {
		v.lang = trimmed(val)
	} else if val, ok := el.Attr("xml:lang"); ok {
		v.lang = trimmed(val)
	}
	if val, ok := el.Attr("property"); ok {
		v.property = splitTokens(val)
	}
	if val, ok := el.Attr("rel"); ok {
		v.rel = splitTokens(val)
	}
	if val, ok := el.Attr("rev"); ok {
		v.rev = splitTokens(val)
	}
	if val, ok := el.Attr("typeof"); ok {
		v.typeOf = splitTokens(val)
	}
	if val, ok := el.Attr("src"); ok {
		v.src = trimmed(val)
	}
	if val, ok := el.Attr("href"); ok {
		v.href = trimmed(val)
	}
	if val, ok := el.Attr("datatype"); ok {
		v.datatype = trimmed(val)
		v.hasDatatype = true
	}
	if _, ok := el.Attr("inlist"); ok {
		v.inlist = true
	}
	if val, ok := el.Attr("content"); ok {
		v.content = trimmed(val)
		v.hasContent = true
	}
	if val, ok := el.Attr("about"); ok {
		v.about = trimmed(val)
		v.hasAbout = true
	}
	if val, ok := el.Attr("datetime"); ok {
		v.datetime = trimmed(val)
	}

	return v
}

// srcOrHref returns the src attribute if present, else href, else "",
// and whether either was present.
func (v *elementView) srcOrHref() (string, bool) {
	if v.src != "" {
		return v.src, true
	}
	if v.href != "" {
		return v.href, true
	}
	return "", false
}

func (v *elementView) hasNoContentAndNoDatatype() bool {
	return !v.hasContent && !v.hasDatatype
}

// isInlist reports whether this element's rel/rev/property should be
// assembled into rdf:List chains.
func (v *elementView) isInlist() bool {
	return v.inlist
}

// getTime returns the element's machine-readable time value: the
// datetime attribute if present, otherwise the element's own text. Used
// for the <time> element and any element carrying a datetime attribute.
func (v *elementView) getTime() (string, bool) {
	if v.datetime != "" {
		return v.datetime, true
	}
	if v.el.Name() == "time" {
		if t := strings.TrimSpace(v.el.Text()); t != "" {
			return t, true
		}
	}
	return "", false
}

// texts returns the non-empty, trimmed text of el itself followed by the
// text of each direct child element in order — the candidate pool for
// literal extraction.
func (v *elementView) texts() []string {
	var out []string
	if t := strings.TrimSpace(v.el.Text()); t != "" {
		out = append(out, t)
	}
	for _, c := range v.el.Children() {
		if t := strings.TrimSpace(c.Text()); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func splitTokens(s string) []string {
	fields := strings.Fields(s)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func stripFragment(s string) string {
	if idx := strings.IndexByte(s, '#'); idx >= 0 {
		return s[:idx]
	}
	return s
}

// parsePrefixAttr parses a prefix="p1: iri1 p2: iri2" attribute value
// into a label→IRI map.
func parsePrefixAttr(s string) map[string]string {
	fields := strings.Fields(s)
	out := make(map[string]string, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		label := strings.TrimSuffix(fields[i], ":")
		out[label] = fields[i+1]
	}
	return out
}
