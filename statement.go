package rdfa

import "strconv"

// Statement is an RDF triple: subject, predicate, object. The predicate
// must be IRI-shaped; subject and object may be any Term kind produced by
// the engine. Equality and hashing are structural.
type Statement struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Eq reports whether s and other name the same triple, piercing Ref on
// every position.
func (s Statement) Eq(other Statement) bool {
	return s.Subject.Eq(other.Subject) &&
		s.Predicate.Eq(other.Predicate) &&
		s.Object.Eq(other.Object)
}

// dedupStatements returns stmts with duplicate statements removed,
// preserving the order of first occurrence; the final statement set never
// contains duplicates.
func dedupStatements(stmts []Statement) []Statement {
	seen := make(map[string]struct{}, len(stmts))
	out := make([]Statement, 0, len(stmts))
	for _, s := range stmts {
		k := termKey(s.Subject) + "\x00" + termKey(s.Predicate) + "\x00" + termKey(s.Object)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}

// termKey returns a canonical, Eq-respecting string key for t, piercing
// Ref and treating IRI/TermIRI alike (they compare equal under Eq).
func termKey(t Term) string {
	switch o := Deref(t).(type) {
	case IRI:
		return "i:" + o.Value
	case TermIRI:
		return "i:" + o.Value
	case Blank:
		return "b:" + strconv.FormatUint(o.ID, 10)
	case RefBlank:
		return "rb:" + o.Label
	case Literal:
		dt := ""
		if o.Datatype != nil {
			dt = termKey(o.Datatype)
		}
		return "l:" + o.Value + "\x01" + dt + "\x01" + o.Lang
	default:
		return ""
	}
}
