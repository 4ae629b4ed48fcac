package rdfa

// rewritePatternCopies is the pattern-copy post-pass. An element typed
// rdfa:Pattern acts as a reusable template: any other subject that
// carries an rdfa:copy edge to that pattern node receives a copy of every
// statement whose subject is the pattern node, rewritten onto the copying
// subject. Pattern nodes that no copy edge ever references are left as
// ordinary, visible statements (they were presumably meant to be read
// directly, not only copied from).
func rewritePatternCopies(stmts []Statement) []Statement {
	patternNodes := make(map[string]Term)   // termKey -> pattern subject Term
	patternBodies := make(map[string][]Statement) // termKey(pattern) -> its non-type statements
	var copyEdges []Statement
	var rest []Statement

	for _, s := range stmts {
		if s.Predicate.Eq(nodeRDFType) && s.Object.Eq(nodeRDFAPatternType) {
			patternNodes[termKey(s.Subject)] = s.Subject
			continue
		}
		if s.Predicate.Eq(nodeRDFACopyPredicate) {
			copyEdges = append(copyEdges, s)
			continue
		}
		rest = append(rest, s)
	}

	// Partition rest into pattern-body statements (subject is a pattern
	// node) versus everything else (R).
	var ordinary []Statement
	for _, s := range rest {
		if _, isPattern := patternNodes[termKey(s.Subject)]; isPattern {
			k := termKey(s.Subject)
			patternBodies[k] = append(patternBodies[k], s)
			continue
		}
		ordinary = append(ordinary, s)
	}

	referenced := make(map[string]bool)
	out := make([]Statement, 0, len(ordinary)+len(copyEdges)*2)
	out = append(out, ordinary...)

	for _, edge := range copyEdges {
		patternKey := termKey(edge.Object)
		body, ok := patternBodies[patternKey]
		if !ok {
			// rdfa:copy pointed at something that was never typed
			// rdfa:Pattern: keep the edge itself, nothing to expand.
			out = append(out, edge)
			continue
		}
		referenced[patternKey] = true
		for _, b := range body {
			out = append(out, Statement{Subject: edge.Subject, Predicate: b.Predicate, Object: b.Object})
		}
	}

	// Restore templates that no copy edge ever referenced, including
	// their rdf:type rdfa:Pattern declaration.
	for key, subj := range patternNodes {
		if referenced[key] {
			continue
		}
		out = append(out, Statement{Subject: subj, Predicate: nodeRDFType, Object: nodeRDFAPatternType})
		out = append(out, patternBodies[key]...)
	}

	return out
}
