package wikimark

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML class names used for contexts without a native element.
const (
	LinkClass     = "wiki-link"
	TemplateClass = "wiki-template"
)

// RenderHTML writes root as an HTML fragment. Bold and italic map to <b>
// and <i>; links and templates become <span> elements carrying LinkClass or
// TemplateClass. Text is escaped.
func RenderHTML(w io.Writer, root *Node) error {
	if w == nil {
		return fmt.Errorf("render html: writer is nil")
	}
	if root == nil {
		return nil
	}
	frag := &html.Node{Type: html.DocumentNode}
	appendHTML(frag, root)
	for c := frag.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
	}
	return nil
}

func appendHTML(parent *html.Node, n *Node) {
	for _, c := range n.Children {
		if c.Node == nil {
			parent.AppendChild(&html.Node{Type: html.TextNode, Data: c.Text})
			continue
		}
		outer, inner := htmlElement(c.Node.State)
		parent.AppendChild(outer)
		appendHTML(inner, c.Node)
	}
}

// htmlElement returns the element for state and the node its content goes
// into; they differ only for bold-italic.
func htmlElement(state State) (outer, inner *html.Node) {
	switch state {
	case Bold:
		outer = element(atom.B, "")
	case Italic:
		outer = element(atom.I, "")
	case BoldItalic:
		outer = element(atom.B, "")
		inner = element(atom.I, "")
		outer.AppendChild(inner)
		return outer, inner
	case Link:
		outer = element(atom.Span, LinkClass)
	case Template:
		outer = element(atom.Span, TemplateClass)
	default:
		outer = element(atom.Span, "")
	}
	return outer, outer
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
