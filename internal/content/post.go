// Package content loads and renders the site's markdown posts.
package content

import (
	"bytes"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Post is a single blog entry loaded from the content directory.
type Post struct {
	// Slug is the URL segment, derived from the filename
	Slug string

	// File is the source filename inside the content directory
	File string

	Title       string
	Description string
	Date        time.Time
	Tags        []string
	Draft       bool

	// HTML is the rendered post body
	HTML string
}

// frontmatter is the YAML block at the top of a post file.
type frontmatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Tags        []string `yaml:"tags"`
	Draft       bool     `yaml:"draft"`
}

const dateLayout = "2006-01-02"

var delimiter = []byte("---")

// Load reads and renders every markdown post in the file system, newest
// first. Drafts are skipped unless includeDrafts is set.
func Load(fsys fs.FS, includeDrafts bool) ([]Post, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read content directory: %w", err)
	}

	var posts []Post
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		data, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}

		post, err := Parse(entry.Name(), data)
		if err != nil {
			return nil, err
		}
		if post.Draft && !includeDrafts {
			continue
		}
		posts = append(posts, post)
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})

	return posts, nil
}

// Parse builds a Post from a markdown file: a "---" delimited YAML
// frontmatter block followed by the body.
func Parse(name string, data []byte) (Post, error) {
	fm, body, err := splitFrontmatter(data)
	if err != nil {
		return Post{}, fmt.Errorf("%s: %w", name, err)
	}

	var meta frontmatter
	if err := yaml.Unmarshal(fm, &meta); err != nil {
		return Post{}, fmt.Errorf("%s: parse frontmatter: %w", name, err)
	}
	if meta.Title == "" {
		return Post{}, fmt.Errorf("%s: frontmatter is missing a title", name)
	}

	var date time.Time
	if meta.Date != "" {
		date, err = time.Parse(dateLayout, meta.Date)
		if err != nil {
			return Post{}, fmt.Errorf("%s: parse date %q: %w", name, meta.Date, err)
		}
	}

	rendered, err := Render(body)
	if err != nil {
		return Post{}, fmt.Errorf("%s: render markdown: %w", name, err)
	}

	return Post{
		Slug:        Slug(name),
		File:        name,
		Title:       meta.Title,
		Description: meta.Description,
		Date:        date,
		Tags:        meta.Tags,
		Draft:       meta.Draft,
		HTML:        rendered,
	}, nil
}

// splitFrontmatter separates the leading YAML block from the markdown body.
func splitFrontmatter(data []byte) (fm, body []byte, err error) {
	trimmed := bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	trimmed = bytes.TrimLeft(trimmed, "\r\n")
	if !bytes.HasPrefix(trimmed, delimiter) {
		return nil, nil, fmt.Errorf("missing frontmatter block")
	}

	rest := trimmed[len(delimiter):]
	end := bytes.Index(rest, append([]byte("\n"), delimiter...))
	if end < 0 {
		return nil, nil, fmt.Errorf("unterminated frontmatter block")
	}

	fm = rest[:end]
	body = rest[end+1+len(delimiter):]
	body = bytes.TrimLeft(body, "\r\n")
	return fm, body, nil
}

// Slug derives the URL segment from a post filename: the extension is
// dropped and a leading YYYY-MM-DD- date prefix, if present, is stripped.
func Slug(name string) string {
	slug := strings.TrimSuffix(name, ".md")
	if len(slug) > 11 && slug[4] == '-' && slug[7] == '-' && slug[10] == '-' {
		if isDigits(slug[:4]) && isDigits(slug[5:7]) && isDigits(slug[8:10]) {
			slug = slug[11:]
		}
	}
	return slug
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
