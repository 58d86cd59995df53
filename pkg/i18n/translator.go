package i18n

import (
	"context"
	"log"
	"sync"

	"github.com/andreasremdt/portfolio/pkg/dom"
)

// KeyAttr is the attribute marking an element as translatable. Its value is
// a dot-separated key path into the language's translation document.
const KeyAttr = "data-i18n"

// Translator rewrites tagged elements of a document tree from per-language
// translation documents.
//
// The set of translatable elements is captured once at construction; elements
// added to the tree later are not picked up. The active language changes on
// every Load. Documents are fetched fresh per load and never cached here.
//
// Load is asynchronous and overlapping loads are not sequenced: the attempt
// that settles last determines the final element content (last-write-wins).
// All tree writes happen under an internal lock, so concurrent loads are
// memory-safe; the ordering race is deliberate and documented.
type Translator struct {
	source Source

	mu       sync.Mutex
	root     *dom.Node
	elements []*dom.Node // fixed snapshot, captured at construction
	lang     string
	pending  int
	markup   bool
	logf     func(format string, args ...any)
}

// Option configures a Translator.
type Option func(*Translator)

// WithLanguages supplies the ordered list of user-preferred locale tags used
// to detect the initial language. The first entry wins.
func WithLanguages(prefs ...string) Option {
	return func(t *Translator) {
		t.lang = DetectLanguage(prefs, t.lang)
	}
}

// WithFallbackLanguage supplies the single preferred-locale string used when
// no preference list is available.
func WithFallbackLanguage(tag string) Option {
	return func(t *Translator) {
		t.lang = DetectLanguage(nil, tag)
	}
}

// WithMarkup opts into raw markup replacement: resolved values are injected
// unescaped. Only safe when translation documents are authored by the site
// owner. The default writes plain text.
func WithMarkup() Option {
	return func(t *Translator) {
		t.markup = true
	}
}

// WithLogf redirects the Translator's diagnostic output.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(t *Translator) {
		t.logf = logf
	}
}

// New creates a Translator over the given document tree. It snapshots every
// element carrying KeyAttr and determines the initial language from the
// supplied options ("en" when none are given). No I/O happens here.
func New(root *dom.Node, source Source, opts ...Option) *Translator {
	t := &Translator{
		source: source,
		root:   root,
		lang:   "en",
		logf:   log.Printf,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.elements = root.FindAll(KeyAttr)
	return t
}

// Language returns the active language code.
func (t *Translator) Language() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lang
}

// Loading reports whether any load attempt is still outstanding.
func (t *Translator) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending > 0
}

// Load fetches the translation document for lang and applies it to the
// snapshot elements. An empty lang keeps the active language; a non-empty
// lang replaces it verbatim, without the two-letter truncation used at
// construction.
//
// Load does not block: the fetch runs in its own goroutine and the returned
// channel closes when the attempt settles. Retrieval failures are logged and
// leave every element untouched, but the active language keeps the attempted
// code. There are no retries and a prior in-flight load is
// not cancelled; whichever attempt settles last wins.
func (t *Translator) Load(ctx context.Context, lang string) <-chan struct{} {
	t.mu.Lock()
	if lang != "" {
		t.lang = lang
	}
	attempt := t.lang
	t.pending++
	t.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)

		doc, err := t.source.Load(ctx, attempt)

		t.mu.Lock()
		defer t.mu.Unlock()
		t.pending--

		if err != nil {
			t.logf("i18n: loading %q failed: %v", attempt, err)
			return
		}

		t.translate(doc)
		t.toggleLangTag()
	}()
	return done
}

// translate applies doc to every snapshot element in captured order. Each
// element resolves independently: a key-path miss leaves that element's
// content as it was and does not affect the others.
func (t *Translator) translate(doc Document) {
	for _, el := range t.elements {
		key, ok := el.Attr(KeyAttr)
		if !ok || key == "" {
			continue
		}

		value, ok := Resolve(doc, key)
		if !ok {
			continue
		}

		if t.markup {
			el.ReplaceChildren(dom.Raw(value))
		} else {
			el.ReplaceChildren(dom.Text(value))
		}
	}
}

// ToggleLangTag aligns the root element's lang attribute with the active
// language. Calling it again without a language change is a no-op.
func (t *Translator) ToggleLangTag() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.toggleLangTag()
}

func (t *Translator) toggleLangTag() {
	if current, _ := t.root.Attr("lang"); current != t.lang {
		t.root.SetAttr("lang", t.lang)
	}
}
