// Package articles extracts numbered articles from the page text of a
// constitution and keeps them in an immutable, id-keyed Store.
package articles

import (
	"context"
	"fmt"
	"strings"

	"github.com/itsmostafa/constbot/internal/pdftext"
	"github.com/rs/zerolog"
)

// DefaultStartPage is the zero-based index of the first page scanned. The
// pages before it hold the preamble and table of contents.
const DefaultStartPage = 20

// Options configures an Extractor.
type Options struct {
	// StartPage is the zero-based index of the first page to scan
	StartPage int

	// Classifier decides what each line is; nil uses NewClassifier(nil)
	Classifier Classifier

	// Logger receives the extraction summary; nil disables logging
	Logger *zerolog.Logger
}

// DefaultOptions returns Options for the official Constitution of India PDF.
func DefaultOptions() Options {
	return Options{StartPage: DefaultStartPage}
}

// Stats summarizes one extraction run.
type Stats struct {
	PagesScanned int
	PagesSkipped int // pages with no extractable text
	Lines        int
	Discarded    map[string]int // by rule name
	Articles     int
}

// Extractor segments page text into articles.
type Extractor struct {
	startPage  int
	classifier Classifier
	log        zerolog.Logger
}

// NewExtractor creates an Extractor from opts.
func NewExtractor(opts Options) *Extractor {
	e := &Extractor{
		startPage:  opts.StartPage,
		classifier: opts.Classifier,
		log:        zerolog.Nop(),
	}
	if e.startPage < 0 {
		e.startPage = 0
	}
	if e.classifier == nil {
		e.classifier = NewClassifier(nil)
	}
	if opts.Logger != nil {
		e.log = *opts.Logger
	}
	return e
}

// scan holds the accumulation state of a single Extract call.
type scan struct {
	state *ScanState
	lines []string
	store *Store
	stats Stats
}

// finalize stores the article in progress, if any, and clears it.
func (s *scan) finalize() {
	if !s.state.active {
		return
	}
	s.store.put(s.state.current, strings.TrimSpace(strings.Join(s.lines, "\n")))
	s.state.active = false
	s.state.current = ""
	s.lines = nil
}

// Extract scans pages from the configured start page and returns the articles
// found. Running it twice over the same pages yields identical stores.
func (e *Extractor) Extract(pages []pdftext.Page) (*Store, Stats) {
	s := &scan{
		state: newScanState(),
		store: newStore(),
		stats: Stats{Discarded: make(map[string]int)},
	}

	for i := e.startPage; i < len(pages); i++ {
		text := pages[i].Text
		if text == "" {
			s.stats.PagesSkipped++
			continue
		}
		s.stats.PagesScanned++

		for _, raw := range strings.Split(text, "\n") {
			s.stats.Lines++
			d := e.classifier.Classify(strings.TrimSpace(raw), s.state)

			switch d.Action {
			case ActionClose:
				s.finalize()
			case ActionStart:
				s.finalize()
				s.state.current = d.ID
				s.state.active = true
				s.state.seen[d.ID] = struct{}{}
				s.lines = []string{d.Content}
			case ActionAppend:
				if s.state.active {
					s.lines = append(s.lines, d.Content)
				} else {
					s.stats.Discarded[d.Rule]++
				}
			default:
				s.stats.Discarded[d.Rule]++
			}
		}
	}
	s.finalize()

	s.stats.Articles = s.store.Len()
	e.log.Debug().
		Int("pages_scanned", s.stats.PagesScanned).
		Int("pages_skipped", s.stats.PagesSkipped).
		Int("lines", s.stats.Lines).
		Interface("discarded", s.stats.Discarded).
		Int("articles", s.stats.Articles).
		Msg("extraction finished")

	return s.store, s.stats
}

// Load reads every page from src and extracts its articles. Failing to read
// the document is an error; no partial store is returned.
func (e *Extractor) Load(ctx context.Context, src pdftext.Source) (*Store, error) {
	pages, err := src.Pages(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading document with %s backend: %w", src.Name(), err)
	}

	if e.startPage >= len(pages) {
		e.log.Warn().
			Int("start_page", e.startPage).
			Int("pages", len(pages)).
			Msg("start page is past the end of the document")
	}

	store, _ := e.Extract(pages)
	if store.Len() == 0 {
		e.log.Warn().Str("source", src.Name()).Msg("no articles found")
	}
	return store, nil
}

// LoadArticles opens the PDF at path with backend and extracts its articles.
func LoadArticles(ctx context.Context, path string, backend pdftext.Backend, opts Options) (*Store, error) {
	src, err := pdftext.Open(path, backend)
	if err != nil {
		return nil, err
	}

	store, err := NewExtractor(opts).Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("loading articles from %s: %w", path, err)
	}
	return store, nil
}
