// Package html renders dom trees to HTML markup.
package html

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"

	"github.com/andreasremdt/portfolio/pkg/dom"
)

// voidElements are HTML elements that cannot have children
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// booleanAttributes are HTML attributes that are boolean flags
var booleanAttributes = map[string]bool{
	"checked":   true,
	"disabled":  true,
	"readonly":  true,
	"required":  true,
	"selected":  true,
	"defer":     true,
	"async":     true,
	"multiple":  true,
	"autofocus": true,
	"hidden":    true,
}

// Renderer writes a dom tree as HTML.
type Renderer struct {
	w   io.Writer
	err error
}

// NewRenderer creates a Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render writes the given node and its descendants as HTML.
func (r *Renderer) Render(node *dom.Node) error {
	r.renderNode(node)
	return r.err
}

// RenderToString renders a node tree to an HTML string.
func RenderToString(node *dom.Node) (string, error) {
	var sb strings.Builder
	if err := NewRenderer(&sb).Render(node); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderDocument renders a full page: doctype followed by the root node.
func RenderDocument(w io.Writer, root *dom.Node) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	return NewRenderer(w).Render(root)
}

// write helper that tracks errors
func (r *Renderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}

func (r *Renderer) renderNode(node *dom.Node) {
	if node == nil || r.err != nil {
		return
	}

	switch node.Kind {
	case dom.KindText:
		// Escape text content to prevent XSS
		r.write(html.EscapeString(node.Text))

	case dom.KindRaw:
		// Raw markup is trusted author content and written verbatim
		r.write(node.Text)

	case dom.KindElement:
		r.renderElement(node)

	case dom.KindFragment:
		for _, kid := range node.Kids {
			r.renderNode(kid)
		}
	}
}

func (r *Renderer) renderElement(node *dom.Node) {
	r.write("<")
	r.write(node.Tag)

	for _, key := range sortedAttrKeys(node.Attrs) {
		value := node.Attrs[key]

		if booleanAttributes[key] {
			if v, ok := value.(bool); ok && v {
				r.write(" ")
				r.write(key)
			}
			continue
		}

		valueStr := fmt.Sprintf("%v", value)

		// Security: prevent javascript: URLs in href/src attributes
		if (key == "href" || key == "src") && strings.HasPrefix(strings.ToLower(valueStr), "javascript:") {
			valueStr = "#"
		}

		r.write(" ")
		r.write(key)
		r.write(`="`)
		r.write(html.EscapeString(valueStr))
		r.write(`"`)
	}

	if voidElements[node.Tag] {
		r.write(">")
		return
	}

	r.write(">")

	for _, kid := range node.Kids {
		r.renderNode(kid)
	}

	r.write("</")
	r.write(node.Tag)
	r.write(">")
}

// sortedAttrKeys returns attribute names in a stable order so rendered
// output is deterministic.
func sortedAttrKeys(attrs dom.Attrs) []string {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
