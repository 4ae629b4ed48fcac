package htmldom

import (
	"strings"
	"testing"

	rdfa "github.com/nbittich/graph-rdfa-processor"
)

func TestParseReturnsDocumentElement(t *testing.T) {
	root, err := Parse(`<html><body><p id="x">hi</p></body></html>`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if root.Name() != "html" {
		t.Errorf("root Name() = %q; want html", root.Name())
	}
}

func TestNodeAttrAndText(t *testing.T) {
	root, err := Parse(`<html><body><p vocab="http://schema.org/">Ada</p></body></html>`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	p := findByName(t, root, "p")
	if v, ok := p.Attr("vocab"); !ok || v != "http://schema.org/" {
		t.Errorf("Attr(vocab) = %q, %v", v, ok)
	}
	if _, ok := p.Attr("about"); ok {
		t.Errorf("Attr(about) present on element without it")
	}
	if got := p.Text(); got != "Ada" {
		t.Errorf("Text() = %q; want Ada", got)
	}
}

func TestNodeInnerHTMLPreservesMarkup(t *testing.T) {
	root, err := Parse(`<html><body><p datatype="rdf:HTML"><b>x</b> y</p></body></html>`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	p := findByName(t, root, "p")
	got := p.InnerHTML()
	if !strings.Contains(got, "<b>x</b>") {
		t.Errorf("InnerHTML() = %q; want the <b> markup preserved", got)
	}
}

func TestParseThroughEngine(t *testing.T) {
	html := `<html><body><p vocab="http://schema.org/" typeof="Person"><span property="name">Ada</span></p></body></html>`
	root, err := Parse(html)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	got, err := rdfa.Parse(root, rdfa.Options{
		Base:   "http://ex/",
		Blanks: rdfa.NewResettableBlankNodeSource(),
	})
	if err != nil {
		t.Fatalf("rdfa.Parse() error = %v", err)
	}
	for _, want := range []string{
		"<http://ex/> <http://www.w3.org/ns/rdfa#usesVocabulary> <http://schema.org/> .",
		"<http://data.lblod.info/.well-known/genid#1> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://schema.org/Person> .",
		"<http://data.lblod.info/.well-known/genid#1> <http://schema.org/name> \"Ada\" .",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing line %q:\n%s", want, got)
		}
	}
}

func TestParseNoRDFaAttributesEmptyOutput(t *testing.T) {
	root, err := Parse(`<html><body><p>just text</p></body></html>`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	got, err := rdfa.Parse(root, rdfa.Options{Base: "http://ex/"})
	if err != nil {
		t.Fatalf("rdfa.Parse() error = %v", err)
	}
	if got != "" {
		t.Errorf("rdfa.Parse() = %q; want empty output for a document with no RDFa attributes", got)
	}
}

func findByName(t *testing.T, root rdfa.Element, name string) rdfa.Element {
	t.Helper()
	if root.Name() == name {
		return root
	}
	for _, c := range root.Children() {
		if found := tryFind(c, name); found != nil {
			return found
		}
	}
	t.Fatalf("no <%s> element found", name)
	return nil
}

func tryFind(el rdfa.Element, name string) rdfa.Element {
	if el.Name() == name {
		return el
	}
	for _, c := range el.Children() {
		if found := tryFind(c, name); found != nil {
			return found
		}
	}
	return nil
}
