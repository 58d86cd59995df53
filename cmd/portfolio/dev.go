package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/andreasremdt/portfolio/internal/cache"
	"github.com/andreasremdt/portfolio/internal/config"
	"github.com/andreasremdt/portfolio/internal/content"
	"github.com/andreasremdt/portfolio/internal/site"
	"github.com/andreasremdt/portfolio/pkg/dom"
	"github.com/andreasremdt/portfolio/pkg/i18n"
	"github.com/andreasremdt/portfolio/pkg/renderer/html"
)

// liveReloadScript is injected into every page served by the dev server.
const liveReloadScript = `<script>
(function () {
  var ws = new WebSocket("ws://" + location.host + "/livereload");
  ws.onopen = function () { ws.send(JSON.stringify({ type: "HELLO" })); };
  ws.onmessage = function (event) {
    var msg = JSON.parse(event.data);
    if (msg.type === "RELOAD") location.reload();
    if (msg.type === "ERROR") console.error("portfolio:", msg.message);
  };
})();
</script>`

type devServer struct {
	host        string
	port        int
	cfg         *config.Config
	watcher     *fsnotify.Watcher
	wsClients   map[*websocket.Conn]bool
	wsMutex     sync.RWMutex
	upgrader    websocket.Upgrader
	renderCache *cache.Cache
	source      i18n.Source

	postsMu sync.RWMutex
	posts   []content.Post
}

func newDevCommand() *cobra.Command {
	var port int
	var host string
	var cwd string

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the development server",
		Long:  `Starts a development server with file watching, live reload and per-visitor language negotiation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cwd != "" {
				if err := os.Chdir(cwd); err != nil {
					return fmt.Errorf("failed to change directory to %s: %w", cwd, err)
				}
			}
			return runDev(host, port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run the dev server on")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind the dev server to")
	cmd.Flags().StringVar(&cwd, "cwd", "", "Working directory of the site (defaults to current)")

	return cmd
}

func runDev(host string, port int) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	// CLI flags take precedence over portfolio.json.
	if port != 0 {
		cfg.Dev.Port = port
	}
	if host != "" {
		cfg.Dev.Host = host
	}

	server := &devServer{
		host:        cfg.Dev.Host,
		port:        cfg.Dev.Port,
		cfg:         cfg,
		wsClients:   make(map[*websocket.Conn]bool),
		renderCache: cache.New(0),
		source:      i18n.NewDirSource(os.DirFS(cfg.LocalesDir)),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Allow all origins in dev mode
				return true
			},
		},
	}

	if err := server.reloadPosts(); err != nil {
		return fmt.Errorf("initial content load failed: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()
	server.watcher = watcher

	if err := server.setupWatcher(); err != nil {
		return fmt.Errorf("failed to setup watcher: %w", err)
	}
	go server.watchFiles()

	mux := http.NewServeMux()
	mux.HandleFunc("/livereload", server.handleWebSocket)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/", server.servePage)

	addr := fmt.Sprintf("%s:%d", server.host, server.port)
	log.Printf("✨ Dev server running at http://%s\n", addr)

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("\n🛑 Shutting down dev server...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}()

	err = srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *devServer) reloadPosts() error {
	posts, err := content.Load(os.DirFS(s.cfg.ContentDir), true)
	if err != nil {
		return err
	}

	s.postsMu.Lock()
	s.posts = posts
	s.postsMu.Unlock()

	log.Printf("📚 Loaded %d posts\n", len(posts))
	return nil
}

func (s *devServer) setupWatcher() error {
	for _, dir := range []string{s.cfg.ContentDir, s.cfg.LocalesDir, s.cfg.StaticDir} {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}
		if err := s.watcher.Add(dir); err != nil {
			return err
		}
	}
	return nil
}

func (s *devServer) watchFiles() {
	debounce := time.NewTimer(0)
	<-debounce.C // drain initial timer

	var pendingEvents []fsnotify.Event
	var mu sync.Mutex

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			if !s.isRelevantFile(event.Name) {
				continue
			}

			mu.Lock()
			pendingEvents = append(pendingEvents, event)
			mu.Unlock()

			debounce.Reset(100 * time.Millisecond)

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			log.Println("Watcher error:", err)

		case <-debounce.C:
			mu.Lock()
			events := pendingEvents
			pendingEvents = nil
			mu.Unlock()

			if len(events) > 0 {
				s.handleFileChanges(events)
			}
		}
	}
}

func (s *devServer) isRelevantFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".json" || ext == ".css" || ext == ".js" || ext == ".svg" || ext == ".png" || ext == ".jpg"
}

func (s *devServer) handleFileChanges(events []fsnotify.Event) {
	var hasContentChanges bool

	for _, event := range events {
		if count := s.renderCache.InvalidateByDependency(event.Name); count > 0 {
			log.Printf("🗑️  Invalidated %d cached pages due to %s", count, filepath.Base(event.Name))
		}
		if strings.ToLower(filepath.Ext(event.Name)) == ".md" {
			hasContentChanges = true
		}
	}

	if hasContentChanges {
		log.Println("🔄 Content changed, reloading posts...")
		if err := s.reloadPosts(); err != nil {
			log.Printf("❌ Reload failed: %v\n", err)
			s.notifyClients("error", map[string]interface{}{
				"message": fmt.Sprintf("Content reload failed: %v", err),
			})
			return
		}
		// Listing pages embed every post, drop them all.
		s.renderCache.Clear()
	}

	s.notifyClients("reload", nil)
}

// servePage renders the requested page in the visitor's language.
func (s *devServer) servePage(w http.ResponseWriter, r *http.Request) {
	lang := s.cfg.DefaultLanguage()
	path := r.URL.Path
	explicit := false

	// Explicit language prefix wins: /de/... serves German, /en/... serves
	// English even when the visitor's browser prefers another language.
	for _, code := range s.cfg.Languages {
		if path == "/"+code {
			http.Redirect(w, r, path+"/", http.StatusMovedPermanently)
			return
		}
		prefix := "/" + code + "/"
		if strings.HasPrefix(path, prefix) {
			lang = code
			explicit = true
			path = "/" + strings.TrimPrefix(path, prefix)
			break
		}
	}

	// Only the bare, unprefixed root negotiates against Accept-Language and
	// redirects visitors preferring another supported language.
	if path == "/" && !explicit {
		if negotiated := i18n.MatchLanguage(r.Header.Get("Accept-Language"), s.cfg.Languages); negotiated != s.cfg.DefaultLanguage() {
			http.Redirect(w, r, site.BasePath(s.cfg, negotiated), http.StatusFound)
			return
		}
	}

	key := cache.Key(lang, path)
	if data, ok := s.renderCache.Get(key); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(data)
		return
	}

	page, deps, ok := s.buildPage(lang, path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	rendered, err := s.renderPage(r.Context(), lang, page)
	if err != nil {
		log.Printf("❌ Render failed for %s: %v\n", r.URL.Path, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	s.renderCache.Put(key, rendered, deps...)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(rendered)
}

// buildPage maps a language-stripped request path to a page tree plus the
// source files it depends on.
func (s *devServer) buildPage(lang, path string) (*dom.Node, []string, bool) {
	s.postsMu.RLock()
	posts := s.posts
	s.postsMu.RUnlock()

	base := site.BasePath(s.cfg, lang)
	localeDep := filepath.Join(s.cfg.LocalesDir, lang+".json")

	if path == "/" || path == "/index.html" {
		deps := []string{localeDep}
		for _, post := range posts {
			deps = append(deps, filepath.Join(s.cfg.ContentDir, post.File))
		}
		return site.Home(s.cfg, posts, base), deps, true
	}

	if slug, ok := strings.CutPrefix(path, "/blog/"); ok {
		slug = strings.TrimSuffix(slug, "/")
		for _, post := range posts {
			if post.Slug == slug {
				deps := []string{localeDep, filepath.Join(s.cfg.ContentDir, post.File)}
				return site.PostPage(s.cfg, post, base), deps, true
			}
		}
	}

	return nil, nil, false
}

func (s *devServer) renderPage(ctx context.Context, lang string, page *dom.Node) ([]byte, error) {
	tr := i18n.New(page, s.source, i18n.WithLanguages(lang))
	<-tr.Load(ctx, "")

	var buf bytes.Buffer
	if err := html.RenderDocument(&buf, page); err != nil {
		return nil, err
	}

	rendered := bytes.Replace(buf.Bytes(), []byte("</body>"), []byte(liveReloadScript+"</body>"), 1)
	return rendered, nil
}

func (s *devServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	s.wsMutex.Lock()
	s.wsClients[conn] = true
	s.wsMutex.Unlock()

	defer func() {
		s.wsMutex.Lock()
		delete(s.wsClients, conn)
		s.wsMutex.Unlock()
	}()

	for {
		var msg map[string]interface{}
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		switch msg["type"] {
		case "HELLO":
			conn.WriteJSON(map[string]interface{}{
				"type": "ACK",
			})
		default:
			log.Printf("Unknown WebSocket message type: %v", msg["type"])
		}
	}
}

func (s *devServer) notifyClients(msgType string, data map[string]interface{}) {
	s.wsMutex.RLock()
	defer s.wsMutex.RUnlock()

	message := map[string]interface{}{
		"type": strings.ToUpper(msgType),
	}
	for k, v := range data {
		message[k] = v
	}

	for client := range s.wsClients {
		if err := client.WriteJSON(message); err != nil {
			log.Printf("Failed to send message to client: %v", err)
		}
	}
}
