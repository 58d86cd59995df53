package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/andreasremdt/portfolio/internal/config"
	"github.com/andreasremdt/portfolio/internal/content"
	"github.com/andreasremdt/portfolio/internal/site"
	"github.com/andreasremdt/portfolio/pkg/dom"
	"github.com/andreasremdt/portfolio/pkg/i18n"
	"github.com/andreasremdt/portfolio/pkg/renderer/html"
)

func newBuildCommand() *cobra.Command {
	var outDir string
	var drafts bool
	var cwd string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the static site",
		Long:  `Renders every page for every configured language into the output directory and copies static assets.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cwd != "" {
				if err := os.Chdir(cwd); err != nil {
					return fmt.Errorf("failed to change directory to %s: %w", cwd, err)
				}
			}
			return runBuild(outDir, drafts)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (defaults to the configured outputDir)")
	cmd.Flags().BoolVar(&drafts, "drafts", false, "Include draft posts in the build")
	cmd.Flags().StringVar(&cwd, "cwd", "", "Working directory of the site (defaults to current)")

	return cmd
}

func runBuild(outDir string, drafts bool) error {
	start := time.Now()

	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	if outDir != "" {
		cfg.OutputDir = outDir
	}

	posts, err := content.Load(os.DirFS(cfg.ContentDir), drafts)
	if err != nil {
		return fmt.Errorf("load posts: %w", err)
	}
	log.Printf("📚 Loaded %d posts\n", len(posts))

	source := i18n.NewDirSource(os.DirFS(cfg.LocalesDir))

	var pages int
	for _, lang := range cfg.Languages {
		base := site.BasePath(cfg, lang)
		langDir := filepath.Join(cfg.OutputDir, strings.Trim(base, "/"))

		if err := writePage(source, lang, filepath.Join(langDir, "index.html"), site.Home(cfg, posts, base)); err != nil {
			return err
		}
		pages++

		for _, post := range posts {
			out := filepath.Join(langDir, "blog", post.Slug, "index.html")
			if err := writePage(source, lang, out, site.PostPage(cfg, post, base)); err != nil {
				return err
			}
			pages++
		}
	}

	if err := copyDir(cfg.StaticDir, filepath.Join(cfg.OutputDir, "static")); err != nil {
		return fmt.Errorf("copy static assets: %w", err)
	}

	log.Printf("✅ Built %d pages for %d languages in %s\n", pages, len(cfg.Languages), time.Since(start).Round(time.Millisecond))
	return nil
}

// writePage translates a page tree into the given language and renders it
// to path. A failed translation load is logged by the Translator and the
// page falls back to its authored strings, so a missing locale never fails
// the build.
func writePage(source i18n.Source, lang, path string, page *dom.Node) error {
	tr := i18n.New(page, source, i18n.WithLanguages(lang))
	<-tr.Load(context.Background(), "")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return html.RenderDocument(f, page)
}

// copyDir copies src into dst recursively. A missing src is not an error;
// sites without static assets are fine.
func copyDir(src, dst string) error {
	info, err := os.Stat(src)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", src)
	}

	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if info.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
