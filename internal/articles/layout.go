package articles

import (
	"regexp"
	"strings"
)

// Layout holds the patterns that describe how a particular document lays out
// its articles, headings and footnotes.
type Layout struct {
	// Structure matches headings that end the current article (PART, CHAPTER).
	Structure *regexp.Regexp

	// ArticleStart matches the first line of an article. It must capture the
	// article number in group 1 and the rest of the line in group 2.
	ArticleStart *regexp.Regexp

	// Footnote matches whole lines that are editorial footnotes even though
	// they look like an article start ("1. Subs. by ...").
	Footnote *regexp.Regexp

	// AmendmentMarkers are substrings that mark amendment-history notes.
	AmendmentMarkers []string

	// PageNumber and PageArtifact match running page furniture.
	PageNumber   *regexp.Regexp
	PageArtifact *regexp.Regexp
}

// FootnoteStems are the editorial verbs that open amendment footnotes in the
// official text of the Constitution of India.
var FootnoteStems = []string{"Subs.", "Ins.", "Omitted", "Rep.", "Added", "Substituted", "Inserted"}

// space matches one whitespace character. RE2's \s is ASCII only, and PDF
// text often separates an article number from its title with U+00A0.
const space = `[\s\p{Zs}]`

// ConstitutionLayout returns the layout of the official Constitution of India
// PDF. Article and heading lines may carry a footnote marker such as "3[".
func ConstitutionLayout() *Layout {
	stems := make([]string, len(FootnoteStems))
	for i, s := range FootnoteStems {
		stems[i] = regexp.QuoteMeta(s)
	}

	return &Layout{
		Structure:        regexp.MustCompile(`^(?:\d+\[)?(?:PART` + space + `+[IVXLC]+|CHAPTER` + space + `+[IVXLC]+)`),
		ArticleStart:     regexp.MustCompile(`^(?:\d+\[)?(\d+[A-Z]?)\.` + space + `+(.*)$`),
		Footnote:         regexp.MustCompile(`^\d+\.` + space + `+(?:` + strings.Join(stems, "|") + `)`),
		AmendmentMarkers: []string{"Amendment) Act", "w.e.f."},
		PageNumber:       regexp.MustCompile(`^\d+$`),
		PageArtifact:     regexp.MustCompile(`^\d+` + space + `+\d+$`),
	}
}

// parseStart reports whether line looks like an article start and returns
// its id and remaining content.
func (l *Layout) parseStart(line string) (ArticleID, string, bool) {
	m := l.ArticleStart.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return ArticleID(m[1]), m[2], true
}

func (l *Layout) isAmendment(content string) bool {
	for _, marker := range l.AmendmentMarkers {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return false
}

func hasLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
