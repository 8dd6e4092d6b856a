package pdftext

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// PopplerSource extracts page text with poppler-utils (pdfinfo, pdftotext).
type PopplerSource struct {
	path string
}

// NewPopplerSource creates a PopplerSource for the PDF at path.
func NewPopplerSource(path string) *PopplerSource {
	return &PopplerSource{path: path}
}

func (s *PopplerSource) Name() string { return string(BackendPdftotext) }

// Pages extracts the text of each page with one pdftotext call per page.
func (s *PopplerSource) Pages(ctx context.Context) ([]Page, error) {
	// Check if pdftotext is available
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext: %w (install poppler-utils)", ErrToolMissing)
	}

	pageCount, err := s.pageCount(ctx)
	if err != nil {
		return nil, err
	}
	if pageCount == 0 {
		return nil, ErrNoPages
	}

	pages := make([]Page, pageCount)
	for i := 0; i < pageCount; i++ {
		text, err := s.extractPage(ctx, i+1)
		if err != nil {
			return nil, fmt.Errorf("extracting page %d: %w", i+1, err)
		}
		pages[i] = Page{Number: i + 1, Text: text}
	}

	return pages, nil
}

// pageCount returns the number of pages reported by pdfinfo.
func (s *PopplerSource) pageCount(ctx context.Context) (int, error) {
	output, err := exec.CommandContext(ctx, "pdfinfo", s.path).Output()
	if err != nil {
		// pdfinfo ships with pdftotext but may be stripped from minimal images
		return s.pageCountFallback(ctx)
	}
	return parsePdfinfoPages(string(output))
}

// parsePdfinfoPages reads "Pages: N" from pdfinfo output.
func parsePdfinfoPages(output string) (int, error) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, "Pages:") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		return count, nil
	}

	return 0, fmt.Errorf("could not determine page count from pdfinfo")
}

// pageCountFallback binary searches for the last page pdftotext accepts.
func (s *PopplerSource) pageCountFallback(ctx context.Context) (int, error) {
	low, high := 0, 10000

	for low < high {
		mid := (low + high + 1) / 2

		cmd := exec.CommandContext(ctx, "pdftotext", "-f", strconv.Itoa(mid), "-l", strconv.Itoa(mid), s.path, "-")
		if err := cmd.Run(); err != nil {
			high = mid - 1
		} else {
			low = mid
		}
	}

	if low == 0 {
		return 0, fmt.Errorf("could not determine page count of %s", s.path)
	}

	return low, nil
}

// extractPage extracts text from a single page.
func (s *PopplerSource) extractPage(ctx context.Context, pageNum int) (string, error) {
	n := strconv.Itoa(pageNum)
	output, err := exec.CommandContext(ctx, "pdftotext", "-f", n, "-l", n, "-layout", s.path, "-").Output()
	if err != nil {
		return "", err
	}

	// pdftotext terminates every page with a form feed
	return strings.TrimRight(string(output), "\f"), nil
}
