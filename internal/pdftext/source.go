// Package pdftext turns a PDF document into a sequence of per-page text blobs.
//
// Two backends are available: a pure Go reader and the poppler command line
// tools. Both yield one Page per physical page, with an empty Text when the
// page has no extractable text.
package pdftext

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNoPages is returned when a document reports zero pages.
	ErrNoPages = errors.New("no pages in document")
	// ErrToolMissing is returned when a required external tool is not installed.
	ErrToolMissing = errors.New("required tool not found")
)

// Page is the extracted text of a single physical page.
type Page struct {
	Number int    // 1-based physical page number
	Text   string // Raw extracted text, empty if the page has none
}

// Source yields the pages of one document.
type Source interface {
	// Name returns the backend name (e.g. "native", "pdftotext")
	Name() string

	// Pages extracts every page of the document in order.
	Pages(ctx context.Context) ([]Page, error)
}

// Backend selects which Source implementation reads a document.
type Backend string

const (
	// BackendNative reads PDFs in-process with github.com/ledongthuc/pdf
	BackendNative Backend = "native"
	// BackendPdftotext shells out to poppler's pdftotext
	BackendPdftotext Backend = "pdftotext"
)

// ValidateBackend checks if the given backend string is valid and returns the Backend
func ValidateBackend(name string) (Backend, error) {
	switch Backend(name) {
	case BackendNative:
		return BackendNative, nil
	case BackendPdftotext:
		return BackendPdftotext, nil
	default:
		return "", fmt.Errorf("unknown backend: %q (valid options: native, pdftotext)", name)
	}
}

// Open returns a Source reading path with the given backend.
func Open(path string, backend Backend) (Source, error) {
	switch backend {
	case BackendNative, "":
		return NewNativeSource(path), nil
	case BackendPdftotext:
		return NewPopplerSource(path), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// StaticSource serves pages that are already in memory.
type StaticSource struct {
	pages []Page
}

// NewStaticSource builds a Source from raw page texts, numbering them from 1.
func NewStaticSource(texts ...string) *StaticSource {
	pages := make([]Page, len(texts))
	for i, t := range texts {
		pages[i] = Page{Number: i + 1, Text: t}
	}
	return &StaticSource{pages: pages}
}

func (s *StaticSource) Name() string { return "static" }

// Pages returns a copy of the in-memory pages.
func (s *StaticSource) Pages(ctx context.Context) ([]Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Page, len(s.pages))
	copy(out, s.pages)
	return out, nil
}
