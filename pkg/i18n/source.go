package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
)

var (
	// ErrNotFound means no translation document exists for the requested language
	ErrNotFound = errors.New("i18n: translation document not found")
	// ErrMalformed means the document exists but is not a tree of strings and objects
	ErrMalformed = errors.New("i18n: malformed translation document")
)

// Source retrieves the translation document for a language code. A missing
// or malformed resource is a retrieval failure; the Translator never caches
// documents across loads, so Load is called fresh on every language change.
type Source interface {
	Load(ctx context.Context, lang string) (Document, error)
}

// DirSource loads documents from <lang>.json files in a file system, e.g.
// a locales directory on disk or an embedded FS.
type DirSource struct {
	fsys fs.FS
}

// NewDirSource creates a Source reading from the given file system.
func NewDirSource(fsys fs.FS) *DirSource {
	return &DirSource{fsys: fsys}
}

// Load reads and parses <lang>.json.
func (s *DirSource) Load(ctx context.Context, lang string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	data, err := fs.ReadFile(s.fsys, lang+".json")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, fmt.Errorf("%w: %s", ErrNotFound, lang)
		}
		return Document{}, fmt.Errorf("i18n: read %s.json: %w", lang, err)
	}

	return ParseDocument(data)
}

// HTTPSource fetches documents over HTTP from a URL template in which the
// placeholder "{lang}" is replaced by the language code, e.g.
// "https://example.com/locales/{lang}.json".
type HTTPSource struct {
	urlTemplate string
	client      *http.Client
}

// NewHTTPSource creates a Source fetching from the given URL template.
// A nil client falls back to http.DefaultClient.
func NewHTTPSource(urlTemplate string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{
		urlTemplate: urlTemplate,
		client:      client,
	}
}

// Load fetches and parses the document for lang.
func (s *HTTPSource) Load(ctx context.Context, lang string) (Document, error) {
	url := strings.ReplaceAll(s.urlTemplate, "{lang}", lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Document{}, fmt.Errorf("i18n: build request for %s: %w", lang, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("i18n: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Document{}, fmt.Errorf("%w: %s", ErrNotFound, lang)
	}
	if resp.StatusCode != http.StatusOK {
		return Document{}, fmt.Errorf("i18n: fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Document{}, fmt.Errorf("i18n: read response for %s: %w", lang, err)
	}

	return ParseDocument(data)
}
