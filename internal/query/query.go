// Package query answers article lookups against an articles.Store.
//
// Only references to article numbers are understood ("Article 21", "art. 21A",
// "21"). Questions about topics are deliberately not answered.
package query

import (
	"regexp"
	"strings"

	"github.com/itsmostafa/constbot/internal/articles"
)

const (
	// HeaderPrefix starts the first line of every successful answer
	HeaderPrefix = "Article "
	// NotFoundMessage is returned for a well-formed id missing from the store
	NotFoundMessage = "The requested article is not found in the document."
	// NoInformationMessage is returned when the query names no article
	NoInformationMessage = "The document does not contain this information."
)

var (
	// "article 21", "art. 21a", "art21" anywhere in the query
	referencePattern = regexp.MustCompile(`(?:article|art\.?)[\s\p{Zs}]*(\d+[a-z]?)`)
	// the whole query is just an id
	barePattern = regexp.MustCompile(`^\d+[a-z]?$`)
)

// ExtractID finds the article id a query refers to. The query is trimmed and
// lower-cased first; the returned id is upper-cased.
func ExtractID(q string) (articles.ArticleID, bool) {
	q = strings.ToLower(strings.TrimSpace(q))

	if m := referencePattern.FindStringSubmatch(q); m != nil {
		return articles.ArticleID(strings.ToUpper(m[1])), true
	}
	if barePattern.MatchString(q) {
		return articles.ArticleID(strings.ToUpper(q)), true
	}
	return "", false
}

// Answer resolves q against store. It has no side effects.
func Answer(q string, store *articles.Store) string {
	id, ok := ExtractID(q)
	if !ok {
		return NoInformationMessage
	}

	text, ok := store.Get(id)
	if !ok {
		return NotFoundMessage
	}
	return Format(id, text)
}

// Format renders an article the way Answer returns it.
func Format(id articles.ArticleID, text string) string {
	return HeaderPrefix + string(id) + "\n\n" + text
}

// Resolver binds a Store so handlers can share one immutable instance.
type Resolver struct {
	store *articles.Store
}

// NewResolver creates a Resolver over store.
func NewResolver(store *articles.Store) *Resolver {
	return &Resolver{store: store}
}

// Answer resolves q against the bound store.
func (r *Resolver) Answer(q string) string {
	return Answer(q, r.store)
}

// Lookup returns the raw text of id, if stored.
func (r *Resolver) Lookup(id articles.ArticleID) (string, bool) {
	return r.store.Get(id)
}

// Store returns the bound store.
func (r *Resolver) Store() *articles.Store {
	return r.store
}
