package site

import (
	"github.com/andreasremdt/portfolio/internal/config"
	"github.com/andreasremdt/portfolio/internal/content"
	"github.com/andreasremdt/portfolio/pkg/dom"
)

// PostPage builds a single post page. The body is the trusted markdown
// renderer's output and is injected as raw markup.
func PostPage(cfg *config.Config, post content.Post, basePath string) *dom.Node {
	header := dom.El("header", dom.Attrs{"class": "post-header"},
		dom.El("h1", nil, dom.Text(post.Title)),
		dom.El("p", dom.Attrs{"class": "post-meta"},
			dom.El("span", dom.Attrs{"data-i18n": "post.published"}, dom.Text("Published on")),
			dom.Text(" "),
			dom.El("time", dom.Attrs{"datetime": post.Date.Format("2006-01-02")},
				dom.Text(post.Date.Format("January 2, 2006")),
			),
		),
	)

	tags := dom.Frag()
	if len(post.Tags) > 0 {
		list := dom.El("ul", dom.Attrs{"class": "tags"})
		for _, tag := range post.Tags {
			list.Kids = append(list.Kids, dom.El("li", nil, dom.Text(tag)))
		}
		tags = list
	}

	article := dom.El("article", dom.Attrs{"class": "post"},
		header,
		dom.El("div", dom.Attrs{"class": "post-body"}, dom.Raw(post.HTML)),
		tags,
		dom.El("a", dom.Attrs{"href": basePath, "class": "back-link", "data-i18n": "post.back"},
			dom.Text("Back to all posts"),
		),
	)

	return Layout(cfg, post.Title, basePath, article)
}
