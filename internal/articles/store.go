package articles

import (
	"slices"
	"strings"
)

// Store maps article ids to their text. It is built once by an Extractor and
// never modified afterwards, so it is safe for unlimited concurrent readers.
type Store struct {
	texts map[ArticleID]string
	order []ArticleID // document order
}

// Entry is a single stored article.
type Entry struct {
	ID   ArticleID `json:"id"`
	Text string    `json:"text"`
}

func newStore() *Store {
	return &Store{texts: make(map[ArticleID]string)}
}

// NewStore builds a Store from entries in the given order. Later duplicates of
// an id are ignored.
func NewStore(entries ...Entry) *Store {
	s := newStore()
	for _, e := range entries {
		s.put(e.ID, e.Text)
	}
	return s
}

// put records text for id unless id is already present.
func (s *Store) put(id ArticleID, text string) {
	if _, ok := s.texts[id]; ok {
		return
	}
	s.texts[id] = text
	s.order = append(s.order, id)
}

// Get returns the text stored for id.
func (s *Store) Get(id ArticleID) (string, bool) {
	if s == nil {
		return "", false
	}
	text, ok := s.texts[id]
	return text, ok
}

// Len returns the number of stored articles.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// IDs returns the stored ids in document order.
func (s *Store) IDs() []ArticleID {
	if s == nil {
		return nil
	}
	return slices.Clone(s.order)
}

// SortedIDs returns the stored ids in numeric order.
func (s *Store) SortedIDs() []ArticleID {
	ids := s.IDs()
	slices.SortFunc(ids, Compare)
	return ids
}

// Entries returns every article in numeric id order.
func (s *Store) Entries() []Entry {
	ids := s.SortedIDs()
	out := make([]Entry, len(ids))
	for i, id := range ids {
		out[i] = Entry{ID: id, Text: s.texts[id]}
	}
	return out
}

// Title returns the first line of an article, which in most layouts is its
// marginal heading.
func Title(text string) string {
	title, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(title)
}
