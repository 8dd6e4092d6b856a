package pdftext

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// NativeSource extracts page text with the pure Go ledongthuc/pdf reader.
type NativeSource struct {
	path string
}

// NewNativeSource creates a NativeSource for the PDF at path.
func NewNativeSource(path string) *NativeSource {
	return &NativeSource{path: path}
}

func (s *NativeSource) Name() string { return string(BackendNative) }

// Pages opens the document and extracts each page line by line.
// A page that fails to decode yields an empty Text instead of an error.
func (s *NativeSource) Pages(ctx context.Context) ([]Page, error) {
	f, r, err := pdf.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", s.path, err)
	}
	defer f.Close()

	total := r.NumPage()
	if total == 0 {
		return nil, ErrNoPages
	}

	pages := make([]Page, 0, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := Page{Number: i}
		p := r.Page(i)
		if !p.V.IsNull() {
			page.Text = pageLines(p)
		}
		pages = append(pages, page)
	}

	return pages, nil
}

// Glyphs whose baselines differ by less than lineTolerance times the font
// size share a line. A horizontal gap wider than wordGap times the font size
// between two glyphs is a word break.
const (
	lineTolerance = 0.5
	wordGap       = 0.15
)

// pageLines rebuilds the visual lines of a page from its positioned glyphs.
func pageLines(p pdf.Page) (text string) {
	// The reader panics on some malformed content streams.
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	return joinGlyphs(p.Content().Text)
}

// joinGlyphs groups glyphs into lines top to bottom, orders each line left to
// right and inserts spaces at word gaps.
func joinGlyphs(glyphs []pdf.Text) string {
	if len(glyphs) == 0 {
		return ""
	}

	// PDF coordinates grow upwards. Stable sorts keep content stream order
	// for glyphs that share a position.
	sorted := make([]pdf.Text, len(glyphs))
	copy(sorted, glyphs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y > sorted[j].Y
	})

	var lines [][]pdf.Text
	var current []pdf.Text
	lineY := sorted[0].Y
	for _, g := range sorted {
		if len(current) > 0 && lineY-g.Y > tolerance(g.FontSize) {
			lines = append(lines, current)
			current = nil
			lineY = g.Y
		}
		current = append(current, g)
	}
	lines = append(lines, current)

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = joinLine(line)
	}
	return strings.Join(out, "\n")
}

func tolerance(fontSize float64) float64 {
	if fontSize <= 0 {
		return 2
	}
	return lineTolerance * fontSize
}

func joinLine(line []pdf.Text) string {
	sort.SliceStable(line, func(i, j int) bool {
		return line[i].X < line[j].X
	})

	var b strings.Builder
	for i, g := range line {
		if i > 0 {
			prev := line[i-1]
			gap := g.X - (prev.X + prev.W)
			if gap > wordGap*g.FontSize &&
				!strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(g.S, " ") {
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
	}
	return b.String()
}
