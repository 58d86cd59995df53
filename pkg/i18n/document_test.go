package i18n

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	doc := Node(map[string]Document{
		"greeting": Leaf("Hello World"),
		"header": Node(map[string]Document{
			"title":  Leaf("Header"),
			"button": Leaf("Click me!"),
		}),
		"empty": Leaf(""),
	})

	tests := []struct {
		name   string
		path   string
		want   string
		wantOK bool
	}{
		{
			name:   "top-level key",
			path:   "greeting",
			want:   "Hello World",
			wantOK: true,
		},
		{
			name:   "two-segment path",
			path:   "header.title",
			want:   "Header",
			wantOK: true,
		},
		{
			name: "missing branch",
			path: "header.missing",
		},
		{
			name: "missing root key",
			path: "footer.note",
		},
		{
			name: "path runs through a leaf",
			path: "greeting.more",
		},
		{
			name: "path stops at a namespace",
			path: "header",
		},
		{
			name: "empty leaf yields no value",
			path: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(doc, tt.path)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseDocument(t *testing.T) {
	t.Run("nested object", func(t *testing.T) {
		doc, err := ParseDocument([]byte(`{"a": {"b": "X"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, ok := Resolve(doc, "a.b"); !ok || got != "X" {
			t.Errorf("Resolve(a.b) = %q, %v; want %q, true", got, ok, "X")
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := ParseDocument([]byte(`{"a": `))
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("expected ErrMalformed, got %v", err)
		}
	})

	t.Run("top-level array", func(t *testing.T) {
		_, err := ParseDocument([]byte(`["a", "b"]`))
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("expected ErrMalformed, got %v", err)
		}
	})

	t.Run("non-string leaves are walk misses", func(t *testing.T) {
		doc, err := ParseDocument([]byte(`{"count": 42, "list": ["x"], "gone": null, "ok": "yes"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := Resolve(doc, "count"); ok {
			t.Error("numeric value resolved, want miss")
		}
		if _, ok := Resolve(doc, "list"); ok {
			t.Error("array value resolved, want miss")
		}
		if _, ok := Resolve(doc, "gone"); ok {
			t.Error("null value resolved, want miss")
		}
		if kid := doc.kids["gone"]; kid.IsLeaf() || kid.IsNode() {
			t.Error("null value decoded as a leaf or namespace, want empty document")
		}
		if got, ok := Resolve(doc, "ok"); !ok || got != "yes" {
			t.Errorf("Resolve(ok) = %q, %v; want %q, true", got, ok, "yes")
		}
	})
}
