package articles

// Action is what the extractor does with a classified line.
type Action int

const (
	// ActionDiscard drops the line without touching the current article
	ActionDiscard Action = iota
	// ActionClose finalizes the current article and leaves none in progress
	ActionClose
	// ActionStart finalizes the current article and opens a new one
	ActionStart
	// ActionAppend adds the line to the current article
	ActionAppend
)

func (a Action) String() string {
	switch a {
	case ActionDiscard:
		return "discard"
	case ActionClose:
		return "close"
	case ActionStart:
		return "start"
	case ActionAppend:
		return "append"
	default:
		return "unknown"
	}
}

// Decision is the outcome of classifying one line.
type Decision struct {
	Action  Action
	Rule    string    // name of the rule that decided
	ID      ArticleID // set for ActionStart
	Content string    // text to accumulate for ActionStart and ActionAppend
}

// Line is a trimmed source line, pre-parsed against the layout's article
// start pattern so rules do not repeat the match.
type Line struct {
	Text    string
	IsStart bool
	ID      ArticleID
	Content string
}

// ScanState is the read-only view of extraction progress that rules consult.
type ScanState struct {
	current ArticleID
	active  bool
	seen    map[ArticleID]struct{}
}

func newScanState() *ScanState {
	return &ScanState{seen: make(map[ArticleID]struct{})}
}

// Active reports whether an article is in progress.
func (s *ScanState) Active() bool { return s.active }

// Current returns the id of the article in progress, if any.
func (s *ScanState) Current() ArticleID { return s.current }

// Seen reports whether id has already been started during this scan.
func (s *ScanState) Seen(id ArticleID) bool {
	_, ok := s.seen[id]
	return ok
}

// Classifier decides what to do with each line of the document.
type Classifier interface {
	Classify(text string, st *ScanState) Decision
}

// Rule is one named classification predicate. Apply returns ok=false when the
// rule has no opinion about the line.
type Rule struct {
	Name  string
	Apply func(l Line, st *ScanState) (Decision, bool)
}

// RuleClassifier evaluates its rules in order; the first rule that applies
// decides. Lines no rule claims are discarded.
type RuleClassifier struct {
	Layout *Layout
	Rules  []Rule
}

// NewClassifier returns a RuleClassifier with the default rule set for layout.
func NewClassifier(layout *Layout) *RuleClassifier {
	if layout == nil {
		layout = ConstitutionLayout()
	}
	return &RuleClassifier{Layout: layout, Rules: DefaultRules(layout)}
}

// Classify implements Classifier.
func (c *RuleClassifier) Classify(text string, st *ScanState) Decision {
	l := Line{Text: text}
	if text != "" {
		l.ID, l.Content, l.IsStart = c.Layout.parseStart(text)
	}

	for _, r := range c.Rules {
		if d, ok := r.Apply(l, st); ok {
			d.Rule = r.Name
			return d
		}
	}

	return Decision{Action: ActionDiscard, Rule: "unclaimed"}
}

// Rule names, also used as keys in Stats.Discarded.
const (
	RuleBlank        = "blank"
	RuleStructure    = "structure"
	RuleFootnote     = "footnote"
	RuleAmendment    = "amendment"
	RuleNoLetters    = "no-letters"
	RuleDuplicate    = "first-occurrence-wins"
	RuleArticleStart = "article-start"
	RuleOrphan       = "orphan"
	RulePageNumber   = "page-number"
	RulePageArtifact = "page-artifact"
	RuleContinuation = "continuation"
)

// FirstOccurrenceWins rejects an article start whose id was already started.
// Article numbers appear once, in order, in the main body; a later line with
// the same number is a footnote or cross-reference.
func FirstOccurrenceWins() Rule {
	return Rule{
		Name: RuleDuplicate,
		Apply: func(l Line, st *ScanState) (Decision, bool) {
			if l.IsStart && st.Seen(l.ID) {
				return Decision{Action: ActionDiscard}, true
			}
			return Decision{}, false
		},
	}
}

// DefaultRules returns the rule set for layout in priority order: structure,
// footnote exclusions, duplicates, article starts, then continuation lines.
func DefaultRules(layout *Layout) []Rule {
	discard := Decision{Action: ActionDiscard}

	return []Rule{
		{Name: RuleBlank, Apply: func(l Line, _ *ScanState) (Decision, bool) {
			return discard, l.Text == ""
		}},
		{Name: RuleStructure, Apply: func(l Line, _ *ScanState) (Decision, bool) {
			return Decision{Action: ActionClose}, layout.Structure.MatchString(l.Text)
		}},
		{Name: RuleFootnote, Apply: func(l Line, _ *ScanState) (Decision, bool) {
			return discard, l.IsStart && layout.Footnote.MatchString(l.Text)
		}},
		{Name: RuleAmendment, Apply: func(l Line, _ *ScanState) (Decision, bool) {
			return discard, l.IsStart && layout.isAmendment(l.Content)
		}},
		{Name: RuleNoLetters, Apply: func(l Line, _ *ScanState) (Decision, bool) {
			return discard, l.IsStart && !hasLetter(l.Content)
		}},
		FirstOccurrenceWins(),
		{Name: RuleArticleStart, Apply: func(l Line, _ *ScanState) (Decision, bool) {
			if !l.IsStart {
				return Decision{}, false
			}
			return Decision{Action: ActionStart, ID: l.ID, Content: l.Content}, true
		}},
		{Name: RuleOrphan, Apply: func(_ Line, st *ScanState) (Decision, bool) {
			return discard, !st.Active()
		}},
		{Name: RulePageNumber, Apply: func(l Line, _ *ScanState) (Decision, bool) {
			return discard, layout.PageNumber.MatchString(l.Text)
		}},
		{Name: RulePageArtifact, Apply: func(l Line, _ *ScanState) (Decision, bool) {
			return discard, layout.PageArtifact.MatchString(l.Text)
		}},
		{Name: RuleContinuation, Apply: func(l Line, _ *ScanState) (Decision, bool) {
			return Decision{Action: ActionAppend, Content: l.Text}, true
		}},
	}
}
