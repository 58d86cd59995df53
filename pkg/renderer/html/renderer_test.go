package html

import (
	"strings"
	"testing"

	"github.com/andreasremdt/portfolio/pkg/dom"
)

func TestRenderer_TextNodes(t *testing.T) {
	tests := []struct {
		name     string
		node     *dom.Node
		expected string
	}{
		{
			name:     "simple text",
			node:     dom.Text("Hello World"),
			expected: "Hello World",
		},
		{
			name:     "text with HTML entities",
			node:     dom.Text("<script>alert('xss')</script>"),
			expected: "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;",
		},
		{
			name:     "text with quotes",
			node:     dom.Text(`"Hello" & 'World'`),
			expected: "&#34;Hello&#34; &amp; &#39;World&#39;",
		},
		{
			name:     "raw markup is not escaped",
			node:     dom.Raw("<strong>bold</strong>"),
			expected: "<strong>bold</strong>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("RenderToString() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestRenderer_Elements(t *testing.T) {
	tests := []struct {
		name     string
		node     *dom.Node
		expected string
	}{
		{
			name:     "empty div",
			node:     dom.El("div", nil),
			expected: "<div></div>",
		},
		{
			name:     "div with text",
			node:     dom.El("div", nil, dom.Text("Hello")),
			expected: "<div>Hello</div>",
		},
		{
			name: "div with attributes in stable order",
			node: dom.El("div", dom.Attrs{
				"id":    "main",
				"class": "container",
			}),
			expected: `<div class="container" id="main"></div>`,
		},
		{
			name: "nested elements",
			node: dom.El("div", nil,
				dom.El("p", nil, dom.Text("Paragraph 1")),
				dom.El("p", nil, dom.Text("Paragraph 2")),
			),
			expected: "<div><p>Paragraph 1</p><p>Paragraph 2</p></div>",
		},
		{
			name: "void element",
			node: dom.El("img", dom.Attrs{
				"src": "/photo.jpg",
				"alt": "Photo",
			}),
			expected: `<img alt="Photo" src="/photo.jpg">`,
		},
		{
			name: "boolean attribute set",
			node: dom.El("input", dom.Attrs{
				"type":     "text",
				"required": true,
			}),
			expected: `<input required type="text">`,
		},
		{
			name: "boolean attribute unset",
			node: dom.El("input", dom.Attrs{
				"type":     "text",
				"required": false,
			}),
			expected: `<input type="text">`,
		},
		{
			name: "javascript href is neutralized",
			node: dom.El("a", dom.Attrs{
				"href": "javascript:alert(1)",
			}, dom.Text("click")),
			expected: `<a href="#">click</a>`,
		},
		{
			name: "attribute value is escaped",
			node: dom.El("div", dom.Attrs{
				"title": `say "hi"`,
			}),
			expected: `<div title="say &#34;hi&#34;"></div>`,
		},
		{
			name: "fragment renders children only",
			node: dom.Frag(
				dom.El("li", nil, dom.Text("one")),
				dom.El("li", nil, dom.Text("two")),
			),
			expected: "<li>one</li><li>two</li>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("RenderToString() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestRenderDocument(t *testing.T) {
	var sb strings.Builder
	root := dom.El("html", dom.Attrs{"lang": "en"},
		dom.El("body", nil, dom.Text("hi")),
	)

	if err := RenderDocument(&sb, root); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "<!DOCTYPE html>\n<html lang=\"en\"><body>hi</body></html>"
	if sb.String() != want {
		t.Errorf("RenderDocument() = %q, want %q", sb.String(), want)
	}
}
