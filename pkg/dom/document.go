package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document wraps a parsed HTML tree and owns the dynamic state layered on
// top of it: element wrappers, event listeners, animation timelines and
// repeating timers.
type Document struct {
	root     *html.Node
	elements map[*html.Node]*Element
	timers   []*Timer
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &Document{
		root:     root,
		elements: make(map[*html.Node]*Element),
	}, nil
}

// ParseString reads an HTML document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Render writes the document's current tree as HTML to w.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	return nil
}

// CreateElement creates a detached element with the given tag name.
// The element belongs to this document but has no parent until it is
// inserted somewhere in the tree.
func (d *Document) CreateElement(tag string) *Element {
	node := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	return d.wrap(node)
}

// QuerySelector returns the first element in the document matching the
// CSS selector, or nil if nothing matches. The error is non-nil only for
// an invalid selector.
func (d *Document) QuerySelector(selector string) (*Element, error) {
	return d.query(d.root, selector)
}

// QuerySelectorAll returns every element in the document matching the
// CSS selector, in tree order.
func (d *Document) QuerySelectorAll(selector string) ([]*Element, error) {
	return d.queryAll(d.root, selector)
}

// query resolves a selector to the first match within scope, excluding
// the scope node itself.
func (d *Document) query(scope *html.Node, selector string) (*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	for _, n := range sel.MatchAll(scope) {
		if n == scope {
			continue
		}
		return d.wrap(n), nil
	}
	return nil, nil
}

// queryAll resolves a selector to all matches within scope, excluding
// the scope node itself.
func (d *Document) queryAll(scope *html.Node, selector string) ([]*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	var out []*Element
	for _, n := range sel.MatchAll(scope) {
		if n == scope {
			continue
		}
		out = append(out, d.wrap(n))
	}
	return out, nil
}

// wrap returns the canonical Element for a node, creating it on first
// use. Interning keeps element identity stable: the same node always
// yields the same *Element, so listener and animation state survives
// repeated lookups.
func (d *Document) wrap(n *html.Node) *Element {
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{doc: d, node: n}
	d.elements[n] = el
	return el
}
