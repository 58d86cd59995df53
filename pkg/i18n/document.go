// Package i18n localizes page content. A Translator rewrites tagged elements
// of a dom tree from per-language translation documents, which are JSON trees
// of nested string values addressed by dot-separated key paths.
package i18n

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Document is a tree-shaped translation document for one language: every
// node is either a leaf holding a translated string or a namespace mapping
// key segments to further documents. The zero value is neither and never
// resolves.
type Document struct {
	leaf   string
	isLeaf bool
	kids   map[string]Document
}

// Leaf creates a leaf document holding a single translated string.
func Leaf(value string) Document {
	return Document{leaf: value, isLeaf: true}
}

// Node creates a namespace document from its child documents.
func Node(kids map[string]Document) Document {
	return Document{kids: kids}
}

// IsLeaf reports whether the document is a translated string.
func (d Document) IsLeaf() bool {
	return d.isLeaf
}

// IsNode reports whether the document is a namespace.
func (d Document) IsNode() bool {
	return d.kids != nil
}

// UnmarshalJSON accepts strings as leaves and objects as namespaces. Other
// JSON values (numbers, arrays, booleans, null) have no key-path address and
// decode to an empty document, which every resolution walk misses.
func (d *Document) UnmarshalJSON(data []byte) error {
	// json.Unmarshal leaves a *string untouched on null, which would turn
	// null into a leaf instead of an empty document.
	if string(data) == "null" {
		*d = Document{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = Leaf(s)
		return nil
	}

	var kids map[string]Document
	if err := json.Unmarshal(data, &kids); err == nil {
		*d = Node(kids)
		return nil
	}

	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	*d = Document{}
	return nil
}

// ParseDocument decodes a JSON translation document. The top level must be
// an object; anything else is malformed.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !doc.IsNode() {
		return Document{}, fmt.Errorf("%w: top-level value is not an object", ErrMalformed)
	}
	return doc, nil
}

// Resolve walks doc along the dot-separated key path and returns the leaf
// string it addresses. The walk never mutates the document. It reports no
// value when a segment is missing, when it runs through a leaf or malformed
// value before the path ends, or when the addressed leaf is empty.
func Resolve(doc Document, path string) (string, bool) {
	current := doc
	for _, segment := range strings.Split(path, ".") {
		kid, ok := current.kids[segment]
		if !ok {
			return "", false
		}
		current = kid
	}

	if !current.isLeaf || current.leaf == "" {
		return "", false
	}
	return current.leaf, true
}
