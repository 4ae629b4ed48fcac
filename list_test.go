package rdfa

import "testing"

func newTestListContext() *Context {
	blanks := NewBlankNodeSource()
	return &Context{blanks: blanks, refBlanks: newRefBlankRegistry(blanks)}
}

func TestListBuilderRealizesChain(t *testing.T) {
	ctx := newTestListContext()
	subj := IRI{Value: "http://ex/x"}
	pred := IRI{Value: "http://p/has"}
	preds := map[string]Term{termKey(pred): pred}

	lb := newListBuilder()
	lb.add(subj, pred, NewLiteral("A"))
	lb.add(subj, pred, NewLiteral("B"))

	if !lb.pending(subj) {
		t.Fatalf("pending(%v) = false after add", subj)
	}

	got := lb.flush(ctx, subj, subj, preds)
	// head triple + 2 cells of first/rest each.
	if len(got) != 5 {
		t.Fatalf("flush() produced %d statements; want 5: %#v", len(got), got)
	}
	if !got[0].Subject.Eq(subj) || !got[0].Predicate.Eq(pred) {
		t.Errorf("head statement = %#v; want subject/predicate %v %v", got[0], subj, pred)
	}
	head := got[0].Object
	if !hasStatement(got, Statement{Subject: head, Predicate: nodeRDFFirst, Object: NewLiteral("A")}) {
		t.Errorf("missing first cell A in %#v", got)
	}
	last := got[len(got)-1]
	if !last.Predicate.Eq(nodeRDFRest) || !last.Object.Eq(nodeRDFNil) {
		t.Errorf("chain not nil-terminated: %#v", last)
	}

	if lb.pending(subj) {
		t.Errorf("pending(%v) = true after flush", subj)
	}
}

func TestListBuilderFlushIsScopedToSubject(t *testing.T) {
	ctx := newTestListContext()
	x := IRI{Value: "http://ex/x"}
	y := IRI{Value: "http://ex/y"}
	pred := IRI{Value: "http://p/has"}
	preds := map[string]Term{termKey(pred): pred}

	lb := newListBuilder()
	lb.add(x, pred, NewLiteral("A"))
	lb.add(y, pred, NewLiteral("B"))

	_ = lb.flush(ctx, x, x, preds)
	if !lb.pending(y) {
		t.Errorf("flushing x also drained y's list")
	}
}

func TestRealizeListEmpty(t *testing.T) {
	ctx := newTestListContext()
	subj := IRI{Value: "http://ex/x"}
	pred := IRI{Value: "http://p/has"}
	got := realizeList(ctx, subj, pred, nil)
	want := Statement{Subject: subj, Predicate: pred, Object: nodeRDFNil}
	if len(got) != 1 || !got[0].Eq(want) {
		t.Errorf("realizeList(empty) = %#v; want [%#v]", got, want)
	}
}
