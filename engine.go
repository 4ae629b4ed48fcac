package rdfa

import "github.com/golang/glog"

// Evaluate walks root and every descendant, producing the full RDF graph
// described by the document's RDFa markup. It is the package's main entry
// point below Parse; ctx.Base must already be set
// (ctx.EmptyRefNodeSubstitute only needs to be set if the document is
// expected to use the "[_:]" safe CURIE).
func Evaluate(ctx Context, root Element) ([]Statement, error) {
	if ctx.blanks == nil {
		ctx.blanks = NewBlankNodeSource()
	}
	if ctx.refBlanks == nil {
		ctx.refBlanks = newRefBlankRegistry(ctx.blanks)
	}
	if ctx.WellKnownPrefix == "" {
		ctx.WellKnownPrefix = defaultWellKnownPfx
	}
	// A <base href> anywhere in the document sets the document-wide base
	// IRI, overriding whatever base the caller supplied — the same
	// override a browser gives <base> over a document's own URL. This must
	// be resolved once, up front: elementView already updates the
	// per-element Context when it walks into the <base>
	// element itself, but that update only reaches <base>'s own
	// (nonexistent) children, not its siblings, so a document-wide scan
	// is needed to make the override visible to the rest of the tree.
	if docBase, ok := findDocumentBase(root); ok {
		ctx.Base = docBase
	}
	if ctx.CurrentNode == nil {
		ctx.CurrentNode = IRI{Value: ctx.Base}
	}

	lb := newListBuilder()
	predicateTerms := make(map[string]Term)

	stmts, _, err := evaluateElement(ctx, root, lb, predicateTerms)
	if err != nil {
		return nil, err
	}
	stmts = append(stmts, lb.flush(&ctx, ctx.CurrentNode, ctx.CurrentNode, predicateTerms)...)
	stmts = rewritePatternCopies(stmts)
	stmts = dedupStatements(stmts)
	return stmts, nil
}

// evaluateElement processes a single element: derive its Context, compute
// its subject (the about/resource/src-href/typeof ladder below), emit the
// triples this element alone is responsible for, recurse into children,
// and return the accumulated statements plus the element's completion
// object: its object resource when it has one, otherwise its new subject.
func evaluateElement(ctx Context, el Element, lb *listBuilder, predicateTerms map[string]Term) ([]Statement, Term, error) {
	v := newElementView(el)
	newCtx := ctx

	if v.prefixes != nil {
		newCtx.Prefixes = v.prefixes
	}
	if v.base != "" {
		newCtx.Base = v.base
	}
	if v.lang != "" {
		newCtx.Lang = v.lang
	}

	var out []Statement

	if v.vocab != "" {
		if vocabTerm, err := resolveURI(newCtx, v.vocab, true); err == nil {
			out = append(out, Statement{Subject: ctx.CurrentNode, Predicate: nodeRDFAUsesVocabulary, Object: vocabTerm})
		}
		newCtx.Vocab = v.vocab
	}

	relTerms, err := resolveTermList(newCtx, v.rel, false)
	if err != nil {
		return nil, nil, err
	}
	revTerms, err := resolveTermList(newCtx, v.rev, false)
	if err != nil {
		return nil, nil, err
	}
	typeOfTerms, err := resolveTermList(newCtx, v.typeOf, false)
	if err != nil {
		return nil, nil, err
	}
	propertyTerms, err := resolveTermList(newCtx, v.property, false)
	if err != nil {
		return nil, nil, err
	}
	// Blank-node resolution is permitted for rel/rev/typeof but never for
	// property — a property predicate that resolved to a blank node (e.g.
	// a stray "_:x" reference) is dropped.
	propertyTerms = filterIRILikeTerms(propertyTerms)
	for _, p := range propertyTerms {
		predicateTerms[termKey(p)] = p
	}
	for _, p := range append(append([]Term{}, relTerms...), revTerms...) {
		predicateTerms[termKey(p)] = p
	}

	var aboutTerm, resourceTerm, srcHrefTerm Term
	hasAbout := v.hasAbout
	hasResource := v.hasResource
	if v.hasAbout {
		if v.about == "[]" {
			aboutTerm = newCtx.newBlank()
		} else if t, ok, err := resolveURILenient(newCtx, v.about, true); err != nil {
			return nil, nil, err
		} else if ok {
			aboutTerm = t
		} else {
			hasAbout = false
		}
	}
	if v.hasResource {
		// Unlike about="[]", which mints a fresh blank node,
		// resource="[]" is simply treated as if resource were absent.
		if v.resource == "[]" {
			hasResource = false
		} else if t, ok, err := resolveURILenient(newCtx, v.resource, true); err != nil {
			return nil, nil, err
		} else if ok {
			resourceTerm = t
		} else {
			hasResource = false
		}
	}
	if sh, ok := v.srcOrHref(); ok {
		if t, ok, err := resolveURILenient(newCtx, sh, true); err != nil {
			return nil, nil, err
		} else if ok {
			srcHrefTerm = t
		}
	}

	// Establish the new subject, following
	// about > resource > src/href > (typeof without about/resource/src/href -> fresh bnode) > inherited.
	var newSubject Term
	typesEmitted := false
	propertiesEmitted := false
	switch {
	case hasAbout:
		newSubject = aboutTerm
	case hasResource:
		newSubject = resourceTerm
	case srcHrefTerm != nil:
		newSubject = srcHrefTerm
	case len(typeOfTerms) > 0:
		switch {
		case len(propertyTerms) > 0 && v.hasNoContentAndNoDatatype() && (len(ctx.InRel) > 0 || len(ctx.InRev) > 0):
			// A typeof+property element with no content/datatype that
			// completes a parent's pending rel/rev inserts an intermediate
			// node: the types hang off a fresh object node, the property
			// links a second fresh node to it, and the parent's rel/rev
			// complete against that second node.
			b := newCtx.newBlank()
			node := srcHrefTerm
			if node == nil {
				node = newCtx.newBlank()
			}
			for _, t := range typeOfTerms {
				out = append(out, Statement{Subject: node, Predicate: nodeRDFType, Object: t})
			}
			for _, p := range propertyTerms {
				out = append(out, Statement{Subject: b, Predicate: p, Object: node})
			}
			newSubject = b
			typesEmitted = true
			propertiesEmitted = true
		case len(relTerms) > 0:
			// A bare typeof with rel gets a fresh blank that the rel
			// loop below then links from the parent subject.
			newSubject = newCtx.newBlank()
		case v.hasDatatype && isLikelySpecialDatatypeAttr(v.datatype):
			// A special-marker datatype still resolves to a fresh
			// blank; the literal itself is extracted separately.
			newSubject = newCtx.newBlank()
		default:
			// No rel, no special datatype — prefer the document base
			// for body/head or when nothing beneath this
			// element could ever complete an incomplete rel/rev against
			// it, otherwise mint a fresh blank.
			newSubject = bareTypeofSubject(newCtx, el)
		}
	default:
		newSubject = ctx.CurrentNode
	}

	// typeof emits rdf:type against the new subject, unless a ladder
	// branch above already emitted the types on a different node.
	if !typesEmitted {
		for _, t := range typeOfTerms {
			out = append(out, Statement{Subject: newSubject, Predicate: nodeRDFType, Object: t})
		}
	}

	// rel/rev without an own subject-changing attribute describe the
	// parent's subject, completed either now (object resource known) or
	// later by a descendant.
	subjectForRel := ctx.CurrentNode
	if hasAbout || hasResource {
		subjectForRel = newSubject
	}

	objectResource := resourceTerm
	if objectResource == nil {
		objectResource = srcHrefTerm
	}
	if objectResource == nil && len(typeOfTerms) > 0 && !hasAbout && !hasResource {
		objectResource = newSubject
	}

	var childInRel, childInRev, childInList []Term
	var relsDeferred, revsDeferred []Term
	srcHrefConsumedByRel := false

	if len(relTerms) > 0 || len(revTerms) > 0 {
		if objectResource != nil {
			relsToEmit, revsToEmit := relTerms, revTerms

			// When src/href (not resource/about) supplies the object and a
			// property is also present, a rel/rev whose
			// predicate resolved as a term IRI (vocab/reserved-keyword/
			// base-relative) does not consume src/href as its object —
			// only a plain-IRI rel/rev does. The term-IRI predicates fall
			// through as incomplete triples instead, same as if no object
			// resource had been available at all.
			srcHrefIsObject := !hasAbout && !hasResource && srcHrefTerm != nil
			if srcHrefIsObject && len(propertyTerms) > 0 {
				relsToEmit, relsDeferred = splitTermIRIs(relTerms)
				revsToEmit, revsDeferred = splitTermIRIs(revTerms)
				srcHrefConsumedByRel = len(relsToEmit) > 0 || len(revsToEmit) > 0
			}

			for _, p := range relsToEmit {
				if v.isInlist() {
					lb.add(subjectForRel, p, objectResource)
				} else {
					out = append(out, Statement{Subject: subjectForRel, Predicate: p, Object: objectResource})
				}
			}
			for _, p := range revsToEmit {
				out = append(out, Statement{Subject: objectResource, Predicate: p, Object: subjectForRel})
			}
			childInRel = append(childInRel, relsDeferred...)
			childInRev = append(childInRev, revsDeferred...)
		} else if v.isInlist() && len(el.Children()) == 0 && !lb.pending(subjectForRel) {
			// An inlist rel with no object resource, no children to
			// supply one later, and nothing already
			// accumulating for this subject is a declared-but-empty list
			// — emit rdf:nil directly rather than carrying an incomplete
			// triple that nothing will ever complete.
			for _, p := range relTerms {
				out = append(out, Statement{Subject: subjectForRel, Predicate: p, Object: nodeRDFNil})
			}
		} else {
			// No object resource yet: these become incomplete triples,
			// inherited by every qualifying descendant until one of
			// them supplies a subject.
			childInRel = append(childInRel, relTerms...)
			childInRev = append(childInRev, revTerms...)
		}
	}

	// A property with no rel/rev, and no content/datatype,
	// but with a resource/href/src present, names that resource's IRI as
	// the object instead of extracting a literal — otherwise the literal
	// extraction rules apply.
	if len(propertyTerms) > 0 && !propertiesEmitted {
		propSubject := ctx.CurrentNode
		if hasAbout || hasResource {
			propSubject = newSubject
		}
		switch {
		case v.hasNoContentAndNoDatatype() && objectResource != nil && len(relTerms) == 0 && len(revTerms) == 0:
			for _, p := range propertyTerms {
				out = append(out, Statement{Subject: propSubject, Predicate: p, Object: objectResource})
			}
		case srcHrefConsumedByRel && len(relsDeferred) == 0 && len(revsDeferred) == 0:
			// Every rel/rev was a plain IRI and already consumed src/href
			// as its object; the property names that relationship rather
			// than a literal, so no literal triple is emitted.
		default:
			lit := extractLiteral(newCtx, v)
			for _, p := range propertyTerms {
				if v.isInlist() {
					lb.add(propSubject, p, lit)
				} else {
					out = append(out, Statement{Subject: propSubject, Predicate: p, Object: lit})
				}
			}
		}
	}

	// Complete any incomplete triples this element's new subject
	// satisfies: a descendant whose about/resource/src/href/typeof
	// establishes a concrete subject completes its parent's pending
	// rel/rev.
	if (hasAbout || hasResource || srcHrefTerm != nil || len(typeOfTerms) > 0) && newSubject != nil {
		for _, p := range ctx.InRel {
			out = append(out, Statement{Subject: ctx.CurrentNode, Predicate: p, Object: newSubject})
		}
		for _, p := range ctx.InRev {
			out = append(out, Statement{Subject: newSubject, Predicate: p, Object: ctx.CurrentNode})
		}
		for _, p := range ctx.InList {
			lb.add(ctx.CurrentNode, p, newSubject)
		}
	} else {
		childInRel = append(childInRel, ctx.InRel...)
		childInRev = append(childInRev, ctx.InRev...)
		childInList = append(childInList, ctx.InList...)
	}

	// Recurse into children, transparently splicing zero-attribute
	// elements: a child with no RDFa-relevant attribute at all passes its
	// own children straight up rather than starting a fresh subject scope.
	childCtx := newCtx.child()
	childCtx.Vocab = newCtx.Vocab
	childCtx.Prefixes = newCtx.Prefixes
	childCtx.CurrentNode = newSubject
	childCtx.InRel = childInRel
	childCtx.InRev = childInRev
	childCtx.InList = childInList

	childStmts, err := walkChildren(childCtx, el, lb, predicateTerms)
	if err != nil {
		return nil, nil, err
	}
	out = append(out, childStmts...)

	if newSubject != nil && !newSubject.Eq(ctx.CurrentNode) {
		out = append(out, lb.flush(&newCtx, newSubject, newSubject, predicateTerms)...)
	}

	completionObject := newSubject
	if objectResource != nil {
		completionObject = objectResource
	}
	return out, completionObject, nil
}

// walkChildren evaluates every child of el in document order, transparently
// descending through a child with no RDFa-relevant attributes at all so
// that its own children are evaluated as if they were direct children of
// el.
func walkChildren(ctx Context, el Element, lb *listBuilder, predicateTerms map[string]Term) ([]Statement, error) {
	var out []Statement
	for _, child := range el.Children() {
		if isTransparent(child) {
			grandchildren, err := walkChildren(ctx, child, lb, predicateTerms)
			if err != nil {
				return nil, err
			}
			out = append(out, grandchildren...)
			continue
		}
		stmts, _, err := evaluateElement(ctx, child, lb, predicateTerms)
		if err != nil {
			return nil, err
		}
		out = append(out, stmts...)
	}
	return out, nil
}

// findDocumentBase searches root and its descendants, in document order,
// for the first <base href> element, returning its href (stripped at the
// fragment boundary).
func findDocumentBase(root Element) (string, bool) {
	if root == nil {
		return "", false
	}
	if root.Name() == "base" {
		if href, ok := root.Attr("href"); ok {
			return stripFragment(trimmed(href)), true
		}
	}
	for _, c := range root.Children() {
		if base, ok := findDocumentBase(c); ok {
			return base, true
		}
	}
	return "", false
}

var rdfaAttrNames = []string{
	"vocab", "base", "prefix", "resource", "lang", "xml:lang", "property",
	"rel", "rev", "typeof", "src", "href", "datatype", "inlist", "content",
	"about", "datetime",
}

// isTransparent reports whether el carries none of the RDFa-relevant
// attributes and is not a <base> or <time> element, making it invisible to
// subject/context derivation: its children are spliced directly into its
// parent's child list.
func isTransparent(el Element) bool {
	for _, name := range rdfaAttrNames {
		if _, ok := el.Attr(name); ok {
			return false
		}
	}
	return el.Name() != "base" && el.Name() != "time"
}

// resolveTermList resolves each reference in refs independently. An
// UnresolvableReference/InvalidUri/InvalidSafeCurie failure on any one
// attribute value is logged and that value is dropped; the element as a
// whole continues to be processed. Only ErrMissingSubstitute (fatal)
// aborts the whole parse.
func resolveTermList(ctx Context, refs []string, isResource bool) ([]Term, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	out := make([]Term, 0, len(refs))
	for _, r := range refs {
		t, ok, err := resolveURILenient(ctx, r, isResource)
		if err != nil {
			return nil, err
		}
		// A reference that resolved to an empty term carries no
		// information and is dropped the same way an unresolvable one is.
		if ok && !isEmptyTerm(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

// filterIRILikeTerms drops any term that is not IRI-like (i.e. a Blank or
// RefBlank), logging a warning for each. Blank-node resolution is
// permitted for rel/rev/typeof but not for property.
func filterIRILikeTerms(terms []Term) []Term {
	out := terms[:0]
	for _, t := range terms {
		if IsIRILike(t) {
			out = append(out, t)
		} else {
			glog.Warningf("rdfa: dropping non-IRI property predicate %v", t)
		}
	}
	return out
}

// splitTermIRIs partitions resolved rel/rev predicates into plain IRIs and
// term IRIs (produced by vocab expansion, a reserved keyword, or
// base-relative resolution) — used to decide whether a rel/rev predicate
// consumes src/href as its object.
func splitTermIRIs(terms []Term) (plain, term []Term) {
	for _, t := range terms {
		if IsTermIRI(t) {
			term = append(term, t)
		} else {
			plain = append(plain, t)
		}
	}
	return plain, term
}

// isLikelySpecialDatatypeAttr reports whether a raw (unresolved) datatype
// attribute value names one of the three special literal markers, by its
// common CURIE form or full IRI. Used only for the cheap classification
// needed during subject derivation (the typeof branch of evaluateElement
// and the descendant scan behind bareTypeofSubject); the literal extractor
// itself always resolves the datatype properly.
func isLikelySpecialDatatypeAttr(raw string) bool {
	switch raw {
	case "rdf:XMLLiteral", "rdf:HTML", "rdf:PlainLiteral",
		rdfXMLLiteral, rdfHTMLLiteral, rdfPlainLiteral:
		return true
	default:
		return false
	}
}

// bareTypeofSubject selects the current subject for a bare typeof with a
// non-special datatype: the document base for a body/head element or one
// with no descendant that could ever complete an incomplete rel/rev
// against it, otherwise a fresh blank node.
func bareTypeofSubject(ctx Context, el Element) Term {
	if el.Name() == "body" || el.Name() == "head" || !hasQualifyingDescendant(el) {
		return IRI{Value: ctx.Base}
	}
	return ctx.newBlank()
}

// hasQualifyingDescendant searches el's descendants, in document order,
// for any element carrying href/src/resource/property/about, excluding
// elements whose own datatype is a special literal marker (those can
// never themselves become a completable subject).
func hasQualifyingDescendant(el Element) bool {
	for _, c := range el.Children() {
		if carriesSubjectAttrs(c) || hasQualifyingDescendant(c) {
			return true
		}
	}
	return false
}

func carriesSubjectAttrs(el Element) bool {
	if dt, ok := el.Attr("datatype"); ok && isLikelySpecialDatatypeAttr(trimmed(dt)) {
		return false
	}
	for _, name := range []string{"href", "src", "resource", "property", "about"} {
		if _, ok := el.Attr(name); ok {
			return true
		}
	}
	return false
}

// resolveURILenient resolves a single reference. ErrMissingSubstitute is
// fatal and propagated; every other resolution error is logged and
// reported as ok=false so the caller skips just this attribute.
func resolveURILenient(ctx Context, ref string, isResource bool) (Term, bool, error) {
	t, err := resolveURI(ctx, ref, isResource)
	if err == nil {
		return t, true, nil
	}
	if err == ErrMissingSubstitute {
		return nil, false, err
	}
	switch e := err.(type) {
	case *UnresolvableReferenceError:
		glog.V(1).Infof("rdfa: skipping attribute value: %v", e)
	case *InvalidURIError:
		glog.Warningf("rdfa: skipping attribute value: %v", e)
	case *InvalidSafeCurieError:
		glog.Warningf("rdfa: skipping attribute value: %v", e)
	default:
		glog.Warningf("rdfa: skipping attribute value %q: %v", ref, err)
	}
	return nil, false, nil
}
