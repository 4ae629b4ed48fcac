// Package htmldom adapts golang.org/x/net/html's parse tree to the
// rdfa.Element interface, so the engine can walk a parsed HTML document
// without depending on any particular DOM library.
package htmldom

import (
	"strings"

	"golang.org/x/net/html"

	rdfa "github.com/nbittich/graph-rdfa-processor"
)

// Node wraps an *html.Node so it satisfies rdfa.Element.
type Node struct {
	n *html.Node
}

// Parse parses htmlText and returns the document element's Node (the
// root <html> element, or the first element found if the parse produced
// a bare fragment) as an rdfa.Element.
func Parse(htmlText string) (rdfa.Element, error) {
	doc, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		return nil, err
	}
	root := firstElement(doc)
	if root == nil {
		return nil, nil
	}
	return &Node{n: root}, nil
}

func firstElement(n *html.Node) *html.Node {
	if n.Type == html.ElementNode {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := firstElement(c); found != nil {
			return found
		}
	}
	return nil
}

// Name returns the element's lowercased local tag name.
func (nd *Node) Name() string {
	return strings.ToLower(nd.n.Data)
}

// Attr returns the named attribute's value, trimmed, and whether it was
// present. Matching is case-insensitive, per HTML attribute semantics.
func (nd *Node) Attr(name string) (string, bool) {
	for _, a := range nd.n.Attr {
		if strings.EqualFold(a.Key, name) {
			return strings.TrimSpace(a.Val), true
		}
	}
	return "", false
}

// Children returns nd's direct element children in document order.
func (nd *Node) Children() []rdfa.Element {
	var out []rdfa.Element
	for c := nd.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, &Node{n: c})
		}
	}
	return out
}

// Text returns nd's direct text content: the concatenation of its
// immediate text-node children, not descendant elements' text.
func (nd *Node) Text() string {
	var b strings.Builder
	for c := nd.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// InnerHTML renders nd's children back to HTML source, preserving markup,
// using x/net/html's own renderer rather than hand-rolling one.
func (nd *Node) InnerHTML() string {
	var b strings.Builder
	for c := nd.n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&b, c)
	}
	return b.String()
}
