// Package site builds the portfolio's page trees. Pages are presentational
// only: they arrange already-loaded content into elements and tag static UI
// strings with translation keys for the i18n pass.
package site

import (
	"strings"

	"github.com/andreasremdt/portfolio/internal/config"
	"github.com/andreasremdt/portfolio/pkg/dom"
)

// Layout wraps page content in the shared document frame: head, header
// navigation, footer. basePath is "/" for the default language and
// "/<lang>/" for every other language, so in-site links stay within the
// visitor's language.
func Layout(cfg *config.Config, title, basePath string, main *dom.Node) *dom.Node {
	pageTitle := cfg.Site.Title
	if title != "" {
		pageTitle = title + " · " + cfg.Site.Title
	}

	return dom.El("html", dom.Attrs{"lang": cfg.DefaultLanguage()},
		dom.El("head", nil,
			dom.El("meta", dom.Attrs{"charset": "utf-8"}),
			dom.El("meta", dom.Attrs{"name": "viewport", "content": "width=device-width, initial-scale=1"}),
			dom.El("title", nil, dom.Text(pageTitle)),
			dom.El("meta", dom.Attrs{"name": "description", "content": cfg.Site.Description}),
			dom.El("link", dom.Attrs{"rel": "stylesheet", "href": "/static/styles.css"}),
		),
		dom.El("body", nil,
			header(cfg, basePath),
			dom.El("main", nil, main),
			footer(cfg),
		),
	)
}

func header(cfg *config.Config, basePath string) *dom.Node {
	nav := dom.El("nav", nil,
		dom.El("a", dom.Attrs{"href": basePath, "data-i18n": "nav.home"}, dom.Text("Home")),
	)

	// Language switcher: one link per configured language.
	if len(cfg.Languages) > 1 {
		switcher := dom.El("ul", dom.Attrs{"class": "languages"})
		for _, lang := range cfg.Languages {
			switcher.Kids = append(switcher.Kids, dom.El("li", nil,
				dom.El("a", dom.Attrs{"href": BasePath(cfg, lang)}, dom.Text(strings.ToUpper(lang))),
			))
		}
		nav.Kids = append(nav.Kids, switcher)
	}

	return dom.El("header", dom.Attrs{"class": "site-header"},
		dom.El("a", dom.Attrs{"href": basePath, "class": "site-title"}, dom.Text(cfg.Site.Title)),
		nav,
	)
}

func footer(cfg *config.Config) *dom.Node {
	return dom.El("footer", dom.Attrs{"class": "site-footer"},
		dom.El("p", dom.Attrs{"data-i18n": "footer.note"}, dom.Text("Thanks for reading.")),
	)
}

// BasePath returns the root path for a language: "/" for the default
// language, "/<lang>/" otherwise.
func BasePath(cfg *config.Config, lang string) string {
	if lang == cfg.DefaultLanguage() {
		return "/"
	}
	return "/" + lang + "/"
}
