package rdfa

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/golang/glog"
	"github.com/jplu/trident/iri"
)

// resolveURI turns a raw attribute reference into a Term, given the
// element's inherited Context: absolute IRIs pass through validation,
// CURIEs and safe CURIEs expand via the prefix maps, and everything else
// falls back to base-relative, vocabulary or reserved-keyword resolution.
//
// isResource distinguishes subject/object positions (about, resource,
// src, href) from predicate/type positions (rel, rev, typeof, property,
// datatype): only the former resolve a bare reference against the base.
func resolveURI(ctx Context, reference string, isResource bool) (Term, error) {
	ref := trimmed(reference)
	if ref == "" {
		// An empty reference in a subject/object position names the base.
		if isResource && ctx.Base != "" {
			return resolveRelative(ctx.Base, ref)
		}
		return nil, &UnresolvableReferenceError{Reference: reference, Reason: "empty reference"}
	}

	if scheme, rest, ok := splitScheme(ref); ok {
		if isSpecialScheme(scheme) {
			return resolveAbsolute(ref)
		}
		// A non-special scheme that is not a registered CURIE prefix is
		// treated as a literal, unresolved IRI — e.g. "mailto:" and
		// "tel:" references pass straight through.
		if _, known := ctx.Prefixes[scheme]; !known {
			if _, known := commonPrefixes[scheme]; !known {
				return IRI{Value: ref}, nil
			}
		}
		_ = rest
	}

	if term, ok, err := resolveCurie(ctx, ref); ok || err != nil {
		return term, err
	}

	// Base-relative resolution applies to subject/object positions and to
	// references that are explicitly fragment- or path-shaped; a bare term
	// in a predicate/type position falls through to the vocabulary and
	// reserved-keyword routes instead.
	if ctx.Base != "" && (isResource || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "/")) {
		return resolveRelative(ctx.Base, ref)
	}

	return resolveFallback(ctx, ref)
}

// resolveAbsolute validates ref as an absolute IRI via the trident/iri
// RFC 3987 parser, percent-encoding whitespace and control characters
// first.
func resolveAbsolute(ref string) (Term, error) {
	encoded := percentEncodeControlAndSpace(ref)
	if _, err := iri.ParseRef(encoded); err != nil {
		glog.Warningf("rdfa: absolute IRI %q failed validation: %v", ref, err)
		return nil, &InvalidURIError{Reference: ref, Cause: err}
	}
	return IRI{Value: encoded}, nil
}

// resolveRelative resolves ref against base using trident/iri's RFC 3986/
// 3987 reference resolution algorithm.
func resolveRelative(base, ref string) (Term, error) {
	baseRef, err := iri.ParseRef(base)
	if err != nil {
		return nil, &InvalidURIError{Reference: base, Cause: err}
	}
	resolved, err := baseRef.Resolve(ref)
	if err != nil {
		return nil, &InvalidURIError{Reference: ref, Cause: err}
	}
	// Base-relative resolution produces a term IRI, not a plain one —
	// only the engine's term-vs-plain rel split cares about the
	// distinction.
	return TermIRI{Value: resolved.String()}, nil
}

// resolveCurie attempts to interpret ref as a safe CURIE or a bare
// prefixed name, returning ok=false when ref does not look like a CURIE
// at all so the caller can fall through to relative/fallback resolution.
func resolveCurie(ctx Context, ref string) (Term, bool, error) {
	if strings.HasPrefix(ref, "[") != strings.HasSuffix(ref, "]") {
		return nil, true, &InvalidSafeCurieError{Reference: ref}
	}
	prefix, suffix, hasColon := parseSafeCurie(ref)
	if !hasColon {
		return nil, false, nil
	}

	if prefix == "_" {
		if suffix == "" {
			if ctx.EmptyRefNodeSubstitute == "" {
				return nil, true, ErrMissingSubstitute
			}
			c := ctx
			return c.refBlank(ctx.EmptyRefNodeSubstitute), true, nil
		}
		c := ctx
		return c.refBlank(suffix), true, nil
	}

	if iriStr, ok := ctx.Prefixes[prefix]; ok {
		return IRI{Value: iriStr + suffix}, true, nil
	}
	if prefix == "" && suffix != "" {
		// The empty prefix maps to the XHTML vocabulary and yields a term IRI.
		return TermIRI{Value: commonPrefixes[""] + suffix}, true, nil
	}
	if iriStr, ok := commonPrefixes[prefix]; ok {
		return IRI{Value: iriStr + suffix}, true, nil
	}

	return nil, false, nil
}

// parseSafeCurie splits a safe CURIE, with or without its enclosing
// brackets, on the first colon. hasColon is false when ref contains no
// colon at all; the brackets themselves are optional.
func parseSafeCurie(ref string) (prefix, suffix string, hasColon bool) {
	s := ref
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") && len(s) >= 2 {
		s = s[1 : len(s)-1]
	}
	idx := strings.IndexByte(s, ':')
	if idx < 0 {
		return "", "", false
	}
	return s[:idx], s[idx+1:], true
}

// resolveFallback is reached when ref has no scheme, did not parse as a
// known-prefix CURIE, and base-relative resolution did not apply: try the
// in-scope vocabulary, then the reserved-keyword table, then give up.
func resolveFallback(ctx Context, ref string) (Term, error) {
	if ctx.Vocab != "" {
		return TermIRI{Value: ctx.Vocab + ref}, nil
	}
	lowered := strings.ToLower(ref)
	if isReservedKeyword(lowered) {
		if iriStr, ok := commonPrefixes[lowered]; ok {
			return TermIRI{Value: iriStr}, nil
		}
	}
	return nil, &UnresolvableReferenceError{
		Reference: ref,
		Reason:    "no base, no matching prefix, not a reserved keyword, no vocabulary in scope",
	}
}

// splitScheme reports whether ref begins with a URI scheme ("alpha
// *(alpha|digit|+|-|.) \":\"") and, if so, returns it lowercased along
// with the remainder following the colon.
func splitScheme(ref string) (scheme, rest string, ok bool) {
	idx := strings.IndexByte(ref, ':')
	if idx <= 0 {
		return "", "", false
	}
	candidate := ref[:idx]
	for i, r := range candidate {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return "", "", false
		}
	}
	return strings.ToLower(candidate), ref[idx+1:], true
}

// isSpecialScheme reports whether scheme is one of the WHATWG URL
// "special" schemes, for which url.Parse's authority/path splitting is a
// reliable enough approximation to hand off to trident/iri for full RFC
// 3987 validation.
func isSpecialScheme(scheme string) bool {
	_, ok := specialSchemes[scheme]
	if !ok {
		return false
	}
	// This parses only the scheme name with a placeholder authority; the
	// rest of the reference is not inspected here, so a bare "http:" with
	// no authority still counts as special.
	if _, err := url.Parse(scheme + "://x"); err != nil {
		return false
	}
	return true
}

// percentEncodeControlAndSpace percent-encodes ASCII control characters
// and whitespace in an otherwise well-formed IRI.
func percentEncodeControlAndSpace(s string) string {
	var b strings.Builder
	needsEscape := false
	for _, r := range s {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}
	for _, r := range s {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			fmt.Fprintf(&b, "%%%02X", r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
