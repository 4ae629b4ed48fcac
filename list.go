package rdfa

// listBuilder accumulates inlist objects keyed by (subject, predicate)
// across however many elements contribute to the same list before the
// owning subject's scope closes, then realizes each accumulated list as an
// rdf:first/rdf:rest chain terminated by rdf:nil. Keeping the buffer
// separate from the ordinary statements lets the engine flush it
// deterministically at scope-close time, so sibling scopes that close
// without producing a terminating nil never leak half-formed lists.
type listBuilder struct {
	order []listKey
	items map[listKey][]Term
}

type listKey struct {
	subject   string
	predicate string
}

func newListBuilder() *listBuilder {
	return &listBuilder{items: make(map[listKey][]Term)}
}

// add appends object to the in-progress list for (subject, predicate),
// registering a new key the first time it is seen so flush order matches
// first-use order.
func (lb *listBuilder) add(subject, predicate, object Term) {
	k := listKey{subject: termKey(subject), predicate: termKey(predicate)}
	if _, ok := lb.items[k]; !ok {
		lb.order = append(lb.order, k)
	}
	lb.items[k] = append(lb.items[k], object)
}

// pending reports whether any list is buffered for subject on any
// predicate — used to decide whether the declared-but-empty list
// short-circuit applies.
func (lb *listBuilder) pending(subject Term) bool {
	key := termKey(subject)
	for _, k := range lb.order {
		if k.subject == key {
			if len(lb.items[k]) > 0 {
				return true
			}
		}
	}
	return false
}

// flush realizes and removes every list buffered for subject, returning
// the rdf:first/rdf:rest/rdf:nil statements plus one subject→predicate→
// head statement per list (or subject→predicate→rdf:nil for a declared
// but empty list). It is called once the element that owns subject as its
// current-subject has finished processing all of its children.
func (lb *listBuilder) flush(ctx *Context, subject Term, subjectTerm Term, predicateTerm map[string]Term) []Statement {
	var out []Statement
	key := termKey(subject)
	remaining := lb.order[:0]
	for _, k := range lb.order {
		if k.subject != key {
			remaining = append(remaining, k)
			continue
		}
		objects := lb.items[k]
		delete(lb.items, k)
		pred := predicateTerm[k.predicate]
		if pred == nil {
			continue
		}
		out = append(out, realizeList(ctx, subjectTerm, pred, objects)...)
	}
	lb.order = remaining
	return out
}

// realizeList builds the rdf:first/rdf:rest/rdf:nil chain for one list and
// the subject→predicate→head triple (rdf:nil directly if objects is
// empty).
func realizeList(ctx *Context, subject, predicate Term, objects []Term) []Statement {
	if len(objects) == 0 {
		return []Statement{{Subject: subject, Predicate: predicate, Object: nodeRDFNil}}
	}

	out := make([]Statement, 0, len(objects)*2+1)
	head := ctx.newBlank()
	out = append(out, Statement{Subject: subject, Predicate: predicate, Object: head})

	cell := head
	for i, obj := range objects {
		out = append(out, Statement{Subject: cell, Predicate: nodeRDFFirst, Object: obj})
		if i == len(objects)-1 {
			out = append(out, Statement{Subject: cell, Predicate: nodeRDFRest, Object: nodeRDFNil})
			break
		}
		next := ctx.newBlank()
		out = append(out, Statement{Subject: cell, Predicate: nodeRDFRest, Object: next})
		cell = next
	}
	return out
}
