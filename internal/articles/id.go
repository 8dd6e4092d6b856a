package articles

import (
	"regexp"
	"strconv"
	"strings"
)

// ArticleID is a normalized article number: digits optionally followed by a
// single upper-case letter ("21", "21A").
type ArticleID string

var idPattern = regexp.MustCompile(`^\d+[A-Z]?$`)

// ParseID normalizes s into an ArticleID. Input is case-insensitive and may be
// surrounded by whitespace.
func ParseID(s string) (ArticleID, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !idPattern.MatchString(s) {
		return "", false
	}
	return ArticleID(s), true
}

func (id ArticleID) String() string { return string(id) }

// split separates the numeric part from the optional letter suffix.
func (id ArticleID) split() (int, string) {
	s := string(id)
	i := len(s)
	if i > 0 && s[i-1] >= 'A' && s[i-1] <= 'Z' {
		i--
	}
	n, _ := strconv.Atoi(s[:i])
	return n, s[i:]
}

// Compare orders ids numerically, then by suffix, so "21" < "21A" < "22".
func Compare(a, b ArticleID) int {
	an, as := a.split()
	bn, bs := b.split()
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	}
	return strings.Compare(as, bs)
}
