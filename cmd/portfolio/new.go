package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/andreasremdt/portfolio/cmd/portfolio/internal/ui"
	"github.com/andreasremdt/portfolio/internal/config"
)

func newNewCommand() *cobra.Command {
	var interactive bool
	var description string
	var tags []string
	var draft bool

	cmd := &cobra.Command{
		Use:   "new [title]",
		Short: "Scaffold a new blog post",
		Long:  `Creates a markdown post stub with frontmatter in the content directory.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var title string
			if len(args) > 0 {
				title = args[0]
			}
			if title == "" {
				interactive = true
			}
			return runNew(title, description, tags, draft, interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Run the interactive wizard")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Post description")
	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "Comma-separated post tags")
	cmd.Flags().BoolVar(&draft, "draft", false, "Mark the post as a draft")

	return cmd
}

func runNew(title, description string, tags []string, draft, interactive bool) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	if interactive {
		answers, ok, err := ui.Run(title)
		if err != nil {
			return fmt.Errorf("wizard failed: %w", err)
		}
		if !ok {
			log.Println("🛑 Aborted, no post created")
			return nil
		}
		title = answers.Title
		description = answers.Description
		tags = answers.Tags
		draft = answers.Draft
	}

	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("a post needs a title")
	}

	slug := slugify(title)
	name := time.Now().Format("2006-01-02") + "-" + slug + ".md"
	path := filepath.Join(cfg.ContentDir, name)

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	if err := os.MkdirAll(cfg.ContentDir, 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(postStub(title, description, tags, draft)), 0644); err != nil {
		return err
	}

	log.Printf("✅ Created %s\n", path)
	return nil
}

func postStub(title, description string, tags []string, draft bool) string {
	var sb strings.Builder
	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "title: %s\n", title)
	if description != "" {
		fmt.Fprintf(&sb, "description: %s\n", description)
	}
	fmt.Fprintf(&sb, "date: %s\n", time.Now().Format("2006-01-02"))
	if len(tags) > 0 {
		sb.WriteString("tags:\n")
		for _, tag := range tags {
			fmt.Fprintf(&sb, "  - %s\n", tag)
		}
	}
	if draft {
		sb.WriteString("draft: true\n")
	}
	sb.WriteString("---\n\nWrite something worth reading.\n")
	return sb.String()
}

// slugify turns a post title into a URL-safe slug.
func slugify(title string) string {
	var sb strings.Builder
	var lastDash bool

	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		case !lastDash && sb.Len() > 0:
			sb.WriteByte('-')
			lastDash = true
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
