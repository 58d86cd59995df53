package site

import (
	"github.com/andreasremdt/portfolio/internal/config"
	"github.com/andreasremdt/portfolio/internal/content"
	"github.com/andreasremdt/portfolio/pkg/dom"
)

// Home builds the home page: hero section plus the post list, newest first.
func Home(cfg *config.Config, posts []content.Post, basePath string) *dom.Node {
	hero := dom.El("section", dom.Attrs{"class": "hero"},
		dom.El("h1", dom.Attrs{"data-i18n": "home.greeting"}, dom.Textf("Hi, I'm %s.", cfg.Site.Author)),
		dom.El("p", dom.Attrs{"data-i18n": "home.intro"}, dom.Text(cfg.Site.Description)),
	)

	list := dom.El("ul", dom.Attrs{"class": "post-list"})
	for _, post := range posts {
		list.Kids = append(list.Kids, postCard(post, basePath))
	}

	return Layout(cfg, "", basePath, dom.Frag(
		hero,
		dom.El("section", dom.Attrs{"class": "posts"},
			dom.El("h2", dom.Attrs{"data-i18n": "home.latest"}, dom.Text("Latest posts")),
			list,
		),
	))
}

func postCard(post content.Post, basePath string) *dom.Node {
	card := dom.El("li", dom.Attrs{"class": "post-card"},
		dom.El("a", dom.Attrs{"href": basePath + "blog/" + post.Slug + "/"},
			dom.El("h3", nil, dom.Text(post.Title)),
		),
		dom.El("time", dom.Attrs{"datetime": post.Date.Format("2006-01-02")},
			dom.Text(post.Date.Format("January 2, 2006")),
		),
	)
	if post.Description != "" {
		card.Kids = append(card.Kids, dom.El("p", nil, dom.Text(post.Description)))
	}
	return card
}
