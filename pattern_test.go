package rdfa

import "testing"

func TestRewritePatternCopiesExpandsReferencedTemplate(t *testing.T) {
	tmpl := IRI{Value: "http://ex/#tmpl"}
	y := IRI{Value: "http://ex/y"}
	in := []Statement{
		{Subject: tmpl, Predicate: nodeRDFType, Object: nodeRDFAPatternType},
		{Subject: tmpl, Predicate: IRI{Value: "http://p/n"}, Object: NewLiteral("X")},
		{Subject: y, Predicate: nodeRDFACopyPredicate, Object: tmpl},
	}
	got := rewritePatternCopies(in)
	want := Statement{Subject: y, Predicate: IRI{Value: "http://p/n"}, Object: NewLiteral("X")}
	if len(got) != 1 || !got[0].Eq(want) {
		t.Errorf("rewritePatternCopies() = %#v; want exactly [%#v]", got, want)
	}
}

func TestRewritePatternCopiesPreservesUnreferencedTemplate(t *testing.T) {
	tmpl := IRI{Value: "http://ex/#tmpl"}
	in := []Statement{
		{Subject: tmpl, Predicate: nodeRDFType, Object: nodeRDFAPatternType},
		{Subject: tmpl, Predicate: IRI{Value: "http://p/n"}, Object: NewLiteral("X")},
	}
	got := rewritePatternCopies(in)
	if len(got) != 2 {
		t.Fatalf("rewritePatternCopies() = %#v; want both template statements restored", got)
	}
	if !hasStatement(got, in[0]) || !hasStatement(got, in[1]) {
		t.Errorf("unreferenced template was altered: %#v", got)
	}
}

func TestRewritePatternCopiesKeepsDanglingCopyEdge(t *testing.T) {
	y := IRI{Value: "http://ex/y"}
	notATemplate := IRI{Value: "http://ex/other"}
	in := []Statement{
		{Subject: y, Predicate: nodeRDFACopyPredicate, Object: notATemplate},
	}
	got := rewritePatternCopies(in)
	if len(got) != 1 || !got[0].Eq(in[0]) {
		t.Errorf("a copy edge to a non-pattern must be left in place, got %#v", got)
	}
}

func TestRewritePatternCopiesMultipleReferences(t *testing.T) {
	tmpl := IRI{Value: "http://ex/#tmpl"}
	a := IRI{Value: "http://ex/a"}
	b := IRI{Value: "http://ex/b"}
	in := []Statement{
		{Subject: tmpl, Predicate: nodeRDFType, Object: nodeRDFAPatternType},
		{Subject: tmpl, Predicate: IRI{Value: "http://p/n"}, Object: NewLiteral("X")},
		{Subject: a, Predicate: nodeRDFACopyPredicate, Object: tmpl},
		{Subject: b, Predicate: nodeRDFACopyPredicate, Object: tmpl},
	}
	got := rewritePatternCopies(in)
	if len(got) != 2 {
		t.Fatalf("rewritePatternCopies() = %#v; want one expanded statement per copier", got)
	}
	if !hasStatement(got, Statement{Subject: a, Predicate: IRI{Value: "http://p/n"}, Object: NewLiteral("X")}) ||
		!hasStatement(got, Statement{Subject: b, Predicate: IRI{Value: "http://p/n"}, Object: NewLiteral("X")}) {
		t.Errorf("expansion missing for one of the copiers: %#v", got)
	}
}
