package docx

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// node is one element of the document part's XML tree. The tree is parsed
// with raw tokens, so namespace prefixes stay exactly as they appear in the
// file ("w:p", "w:r", ...) and serialization reproduces the input
// byte-for-byte wherever nothing was mutated.
type node struct {
	name     xml.Name // Space holds the raw prefix, not a resolved URI
	attrs    []xml.Attr
	children []*node
	text     string // character data; only set when name is empty
	raw      string // verbatim segment (comment, directive); only set when name is empty
}

func textNode(s string) *node {
	return &node{text: s}
}

func elemNode(name string, children ...*node) *node {
	return &node{name: rawName(name), children: children}
}

func rawName(s string) xml.Name {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return xml.Name{Space: s[:i], Local: s[i+1:]}
	}
	return xml.Name{Local: s}
}

func nameString(n xml.Name) string {
	if n.Space != "" {
		return n.Space + ":" + n.Local
	}
	return n.Local
}

func (n *node) is(name string) bool {
	return n.name == rawName(name)
}

func (n *node) isElement() bool {
	return n.name.Local != ""
}

// find returns the first direct child element with the given raw name.
func (n *node) find(name string) *node {
	want := rawName(name)
	for _, c := range n.children {
		if c.name == want {
			return c
		}
	}
	return nil
}

// findAll returns all direct child elements with the given raw name.
func (n *node) findAll(name string) []*node {
	want := rawName(name)
	var out []*node
	for _, c := range n.children {
		if c.name == want {
			out = append(out, c)
		}
	}
	return out
}

func (n *node) append(children ...*node) {
	n.children = append(n.children, children...)
}

// insertFirst places child before every existing child. Property elements
// (w:pPr, w:rPr) must come first within their parent.
func (n *node) insertFirst(child *node) {
	n.children = append([]*node{child}, n.children...)
}

func (n *node) removeAll(name string) {
	want := rawName(name)
	kept := n.children[:0]
	for _, c := range n.children {
		if c.name != want {
			kept = append(kept, c)
		}
	}
	n.children = kept
}

func (n *node) attr(name string) (string, bool) {
	want := rawName(name)
	for _, a := range n.attrs {
		if a.Name == want {
			return a.Value, true
		}
	}
	return "", false
}

func (n *node) setAttr(name, value string) {
	want := rawName(name)
	for i, a := range n.attrs {
		if a.Name == want {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, xml.Attr{Name: want, Value: value})
}

func (n *node) removeAttr(name string) {
	want := rawName(name)
	kept := n.attrs[:0]
	for _, a := range n.attrs {
		if a.Name != want {
			kept = append(kept, a)
		}
	}
	n.attrs = kept
}

func (n *node) clone() *node {
	out := &node{name: n.name, text: n.text, raw: n.raw}
	out.attrs = append([]xml.Attr(nil), n.attrs...)
	out.children = make([]*node, len(n.children))
	for i, c := range n.children {
		out.children[i] = c.clone()
	}
	return out
}

// parseXML reads a document part into a node tree. header collects
// everything before the root element (the XML declaration).
func parseXML(data []byte) (root *node, header string, err error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var stack []*node
	var head strings.Builder

	for {
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &node{name: t.Name, attrs: append([]xml.Attr(nil), t.Attr...)}
			if len(stack) == 0 {
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, "", errMalformed
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, textNode(string(t)))
			}
		case xml.ProcInst:
			if root == nil {
				head.WriteString("<?" + t.Target + " " + string(t.Inst) + "?>")
			}
		case xml.Comment:
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, &node{raw: "<!--" + string(t) + "-->"})
			}
		case xml.Directive:
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, &node{raw: "<!" + string(t) + ">"})
			}
		}
	}
	if root == nil || len(stack) != 0 {
		return nil, "", errMalformed
	}
	return root, head.String(), nil
}

func (n *node) write(b *strings.Builder) {
	if !n.isElement() {
		if n.raw != "" {
			b.WriteString(n.raw)
			return
		}
		writeEscaped(b, n.text)
		return
	}

	name := nameString(n.name)
	b.WriteByte('<')
	b.WriteString(name)
	for _, a := range n.attrs {
		b.WriteByte(' ')
		b.WriteString(nameString(a.Name))
		b.WriteString(`="`)
		writeEscaped(b, a.Value)
		b.WriteByte('"')
	}
	if len(n.children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	for _, c := range n.children {
		c.write(b)
	}
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
}

func writeEscaped(b *strings.Builder, s string) {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	b.Write(buf.Bytes())
}

func serialize(root *node, header string) []byte {
	var b strings.Builder
	b.WriteString(header)
	root.write(&b)
	return []byte(b.String())
}
