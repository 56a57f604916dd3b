package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Element is the canonical wrapper for one node in a Document. Two
// lookups of the same node return the same *Element, so elements can be
// compared by pointer.
type Element struct {
	doc  *Document
	node *html.Node

	listeners  map[string][]*Listener
	animations []*Animation
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.node.Data }

// Document returns the owning document.
func (e *Element) Document() *Document { return e.doc }

// QuerySelector returns the first descendant matching the CSS selector,
// or nil if nothing matches.
func (e *Element) QuerySelector(selector string) (*Element, error) {
	return e.doc.query(e.node, selector)
}

// QuerySelectorAll returns all descendants matching the CSS selector,
// in tree order.
func (e *Element) QuerySelectorAll(selector string) ([]*Element, error) {
	return e.doc.queryAll(e.node, selector)
}

// Parent returns the parent element, or nil at the tree root or for a
// detached element.
func (e *Element) Parent() *Element {
	p := e.node.Parent
	for p != nil && p.Type != html.ElementNode {
		p = p.Parent
	}
	if p == nil {
		return nil
	}
	return e.doc.wrap(p)
}

// Children returns the element's child elements in order.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.doc.wrap(c))
		}
	}
	return out
}

// Contains reports whether other is e or a descendant of e.
func (e *Element) Contains(other *Element) bool {
	if other == nil {
		return false
	}
	for n := other.node; n != nil; n = n.Parent {
		if n == e.node {
			return true
		}
	}
	return false
}

// AppendChild appends child as the last child of e, detaching it from
// its current parent first. This is a move, matching DOM appendChild
// semantics.
func (e *Element) AppendChild(child *Element) {
	detach(child.node)
	e.node.AppendChild(child.node)
}

// InsertBefore inserts child immediately before ref among e's children,
// detaching child from its current parent first. A nil ref appends.
func (e *Element) InsertBefore(child, ref *Element) {
	detach(child.node)
	if ref == nil {
		e.node.AppendChild(child.node)
		return
	}
	e.node.InsertBefore(child.node, ref.node)
}

func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Attribute returns the value of the named attribute and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute sets the named attribute, replacing any existing value.
func (e *Element) SetAttribute(name, value string) {
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute deletes the named attribute if present.
func (e *Element) RemoveAttribute(name string) {
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr = append(e.node.Attr[:i], e.node.Attr[i+1:]...)
			return
		}
	}
}

// HasClass reports whether the class attribute contains name.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.classList() {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass adds name to the class attribute if not already present.
func (e *Element) AddClass(name string) {
	if e.HasClass(name) {
		return
	}
	classes := append(e.classList(), name)
	e.SetAttribute("class", strings.Join(classes, " "))
}

// RemoveClass removes name from the class attribute.
func (e *Element) RemoveClass(name string) {
	classes := e.classList()
	out := classes[:0]
	for _, c := range classes {
		if c != name {
			out = append(out, c)
		}
	}
	e.SetAttribute("class", strings.Join(out, " "))
}

func (e *Element) classList() []string {
	v, _ := e.Attribute("class")
	return strings.Fields(v)
}

// Style returns the value of one inline style property, or "" if unset.
func (e *Element) Style(property string) string {
	for _, p := range e.styleProps() {
		if p.key == property {
			return p.val
		}
	}
	return ""
}

// SetStyle sets one inline style property, preserving the order of the
// other properties in the style attribute.
func (e *Element) SetStyle(property, value string) {
	props := e.styleProps()
	found := false
	for i := range props {
		if props[i].key == property {
			props[i].val = value
			found = true
			break
		}
	}
	if !found {
		props = append(props, styleProp{key: property, val: value})
	}
	parts := make([]string, 0, len(props))
	for _, p := range props {
		parts = append(parts, p.key+": "+p.val)
	}
	e.SetAttribute("style", strings.Join(parts, "; "))
}

type styleProp struct {
	key, val string
}

func (e *Element) styleProps() []styleProp {
	v, _ := e.Attribute("style")
	var props []styleProp
	for _, decl := range strings.Split(v, ";") {
		key, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		if key != "" {
			props = append(props, styleProp{key: key, val: val})
		}
	}
	return props
}

// Text returns the concatenated text content of the element's subtree.
func (e *Element) Text() string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return sb.String()
}

// SetText replaces the element's children with a single text node.
func (e *Element) SetText(text string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}
