package i18n

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
)

func TestDirSource(t *testing.T) {
	fsys := fstest.MapFS{
		"en.json":  {Data: []byte(`{"greeting": "Hello"}`)},
		"de.json":  {Data: []byte(`{"greeting": "Hallo"}`)},
		"bad.json": {Data: []byte(`{"greeting": `)},
	}
	source := NewDirSource(fsys)

	t.Run("existing language", func(t *testing.T) {
		doc, err := source.Load(context.Background(), "de")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, _ := Resolve(doc, "greeting"); got != "Hallo" {
			t.Errorf("Resolve(greeting) = %q, want %q", got, "Hallo")
		}
	})

	t.Run("missing language", func(t *testing.T) {
		_, err := source.Load(context.Background(), "fr")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := source.Load(context.Background(), "bad")
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("expected ErrMalformed, got %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := source.Load(ctx, "en"); err == nil {
			t.Error("expected error for cancelled context")
		}
	})
}

func TestHTTPSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/locales/en.json":
			w.Write([]byte(`{"header": {"title": "Header"}}`))
		case "/locales/bad.json":
			w.Write([]byte(`not json`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	source := NewHTTPSource(server.URL+"/locales/{lang}.json", server.Client())

	t.Run("existing language", func(t *testing.T) {
		doc, err := source.Load(context.Background(), "en")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, _ := Resolve(doc, "header.title"); got != "Header" {
			t.Errorf("Resolve(header.title) = %q, want %q", got, "Header")
		}
	})

	t.Run("missing language is not found", func(t *testing.T) {
		_, err := source.Load(context.Background(), "fr")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		_, err := source.Load(context.Background(), "bad")
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("expected ErrMalformed, got %v", err)
		}
	})
}
