package articles

import (
	"testing"
)

func TestRuleClassifier(t *testing.T) {
	c := NewClassifier(nil)

	active := newScanState()
	active.current = "21"
	active.active = true
	active.seen["21"] = struct{}{}

	idle := newScanState()

	tests := []struct {
		name       string
		line       string
		state      *ScanState
		wantAction Action
		wantRule   string
		wantID     ArticleID
	}{
		{name: "blank", line: "", state: active, wantAction: ActionDiscard, wantRule: RuleBlank},
		{name: "part heading", line: "PART III", state: active, wantAction: ActionClose, wantRule: RuleStructure},
		{name: "chapter heading", line: "CHAPTER IV.—THE UNION JUDICIARY", state: active, wantAction: ActionClose, wantRule: RuleStructure},
		{name: "prefixed heading", line: "2[PART XXI", state: idle, wantAction: ActionClose, wantRule: RuleStructure},
		{name: "footnote", line: "1. Rep. by the Constitution", state: active, wantAction: ActionDiscard, wantRule: RuleFootnote},
		{name: "amendment note", line: "2. The Constitution (Eighty-sixth Amendment) Act, 2002", state: active, wantAction: ActionDiscard, wantRule: RuleAmendment},
		{name: "numeric only", line: "3. 1976.", state: active, wantAction: ActionDiscard, wantRule: RuleNoLetters},
		{name: "duplicate", line: "21. Protection of life", state: active, wantAction: ActionDiscard, wantRule: RuleDuplicate},
		{name: "article start", line: "22. Protection against arrest", state: active, wantAction: ActionStart, wantRule: RuleArticleStart, wantID: "22"},
		{name: "no-break space start", line: "22.\u00a0Protection against arrest", state: active, wantAction: ActionStart, wantRule: RuleArticleStart, wantID: "22"},
		{name: "no-break space heading", line: "PART\u00a0IV", state: active, wantAction: ActionClose, wantRule: RuleStructure},
		{name: "no-break space footnote", line: "1.\u00a0Subs. by the Constitution", state: active, wantAction: ActionDiscard, wantRule: RuleFootnote},
		{name: "suffix start", line: "4[31C. Saving of laws", state: idle, wantAction: ActionStart, wantRule: RuleArticleStart, wantID: "31C"},
		{name: "orphan", line: "CONTENTS", state: idle, wantAction: ActionDiscard, wantRule: RuleOrphan},
		{name: "page number", line: "118", state: active, wantAction: ActionDiscard, wantRule: RulePageNumber},
		{name: "page artifact", line: "12 13", state: active, wantAction: ActionDiscard, wantRule: RulePageArtifact},
		{name: "continuation", line: "(2) Every person who is arrested", state: active, wantAction: ActionAppend, wantRule: RuleContinuation},
		{name: "lowercase suffix is not a start", line: "21a. something", state: active, wantAction: ActionAppend, wantRule: RuleContinuation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := c.Classify(tt.line, tt.state)
			if d.Action != tt.wantAction {
				t.Errorf("Classify(%q).Action = %v, want %v", tt.line, d.Action, tt.wantAction)
			}
			if d.Rule != tt.wantRule {
				t.Errorf("Classify(%q).Rule = %q, want %q", tt.line, d.Rule, tt.wantRule)
			}
			if d.ID != tt.wantID {
				t.Errorf("Classify(%q).ID = %q, want %q", tt.line, d.ID, tt.wantID)
			}
		})
	}
}

func TestCustomRuleOrder(t *testing.T) {
	// Without the duplicate rule the classifier starts the same id twice.
	layout := ConstitutionLayout()
	var rules []Rule
	for _, r := range DefaultRules(layout) {
		if r.Name != RuleDuplicate {
			rules = append(rules, r)
		}
	}
	ex := NewExtractor(Options{Classifier: &RuleClassifier{Layout: layout, Rules: rules}})

	store, _ := ex.Extract(pagesOf("5. Citizenship at commencement.", "5. Citizenship restated later."))

	// Store keeps the first text it is given even when the classifier starts
	// the same id twice.
	if got := mustGet(t, store, "5"); got != "Citizenship at commencement." {
		t.Errorf("article 5 = %q", got)
	}
}

func TestEmptyRuleSetDiscardsEverything(t *testing.T) {
	c := &RuleClassifier{Layout: ConstitutionLayout()}
	d := c.Classify("1. Name and territory of the Union.", newScanState())
	if d.Action != ActionDiscard || d.Rule != "unclaimed" {
		t.Errorf("Classify() = %+v, want unclaimed discard", d)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionDiscard: "discard",
		ActionClose:   "close",
		ActionStart:   "start",
		ActionAppend:  "append",
		Action(42):    "unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", a, got, want)
		}
	}
}
