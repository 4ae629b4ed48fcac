package rdfa

import "testing"

func TestElementViewSrcOrHrefPrefersSrc(t *testing.T) {
	v := newElementView(el("img", map[string]string{"src": "http://ex/s", "href": "http://ex/h"}))
	got, ok := v.srcOrHref()
	if !ok || got != "http://ex/s" {
		t.Errorf("srcOrHref() = %q, %v; want http://ex/s, true", got, ok)
	}

	v = newElementView(el("a", map[string]string{"href": "http://ex/h"}))
	got, ok = v.srcOrHref()
	if !ok || got != "http://ex/h" {
		t.Errorf("srcOrHref() = %q, %v; want http://ex/h, true", got, ok)
	}

	v = newElementView(el("span", nil))
	if _, ok = v.srcOrHref(); ok {
		t.Errorf("srcOrHref() on a bare span reported a value")
	}
}

func TestElementViewGetTime(t *testing.T) {
	v := newElementView(textEl("time", nil, "2022-09-10"))
	got, ok := v.getTime()
	if !ok || got != "2022-09-10" {
		t.Errorf("getTime() = %q, %v; want element text", got, ok)
	}

	v = newElementView(textEl("span", map[string]string{"datetime": "2022"}, "twenty twenty-two"))
	got, ok = v.getTime()
	if !ok || got != "2022" {
		t.Errorf("getTime() = %q, %v; want the datetime attribute", got, ok)
	}

	v = newElementView(textEl("span", nil, "no time here"))
	if _, ok = v.getTime(); ok {
		t.Errorf("getTime() on a plain span reported a value")
	}
}

func TestElementViewBaseStripsFragment(t *testing.T) {
	v := newElementView(el("base", map[string]string{"href": "http://ex/doc#frag"}))
	if v.base != "http://ex/doc" {
		t.Errorf("base = %q; want fragment stripped", v.base)
	}
}

func TestElementViewXMLLangFallback(t *testing.T) {
	v := newElementView(el("p", map[string]string{"xml:lang": "de"}))
	if v.lang != "de" {
		t.Errorf("lang = %q; want de from xml:lang", v.lang)
	}
	v = newElementView(el("p", map[string]string{"lang": "en", "xml:lang": "de"}))
	if v.lang != "en" {
		t.Errorf("lang = %q; lang attribute must win over xml:lang", v.lang)
	}
}

func TestSplitTokens(t *testing.T) {
	got := splitTokens("  a \t b\nc ")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("splitTokens() = %#v; want [a b c]", got)
	}
	if got := splitTokens("   "); len(got) != 0 {
		t.Errorf("splitTokens(blank) = %#v; want empty", got)
	}
}

func TestIsTransparent(t *testing.T) {
	if !isTransparent(el("div", nil)) {
		t.Errorf("attribute-free div should be transparent")
	}
	if isTransparent(el("div", map[string]string{"property": "x"})) {
		t.Errorf("div with property should not be transparent")
	}
	if isTransparent(el("base", nil)) {
		t.Errorf("base element is never transparent")
	}
	if isTransparent(el("time", nil)) {
		t.Errorf("time element is never transparent")
	}
}
