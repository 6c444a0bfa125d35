package question

import (
	"fmt"
	"sort"
	"strings"

	"formbuilder/internal/model"
)

// ReducedAnswer is the display-ready form of one stored answer, built for
// the response-review screen. Exactly one of the per-variant fields is
// populated, matching Type; Missing marks an answer whose question no
// longer exists.
type ReducedAnswer struct {
	QuestionID   string             `json:"questionId"`
	QuestionText string             `json:"questionText,omitempty"`
	Type         model.QuestionType `json:"type,omitempty"`
	Missing      bool               `json:"missing,omitempty"`

	Categories []CategoryGroup `json:"categories,omitempty"`
	Words      []string        `json:"words,omitempty"`
	Text       string          `json:"text,omitempty"`
	SubAnswers []SubAnswer     `json:"subAnswers,omitempty"`
}

// CategoryGroup lists the item texts a respondent filed under one category.
type CategoryGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// SubAnswer pairs a comprehension sub-question with the option a
// respondent picked.
type SubAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// clozeSeparator joins cloze words for the single-line review rendering;
// unanswered blanks show as gaps between separators.
const clozeSeparator = " ... "

// Reduce converts a stored answer into its display form. A nil question
// (deleted after responses were collected) yields an explicit missing-data
// marker; reduction never fails the review of the rest of a submission.
func Reduce(q *model.Question, answer any) ReducedAnswer {
	if q == nil {
		return ReducedAnswer{Missing: true}
	}
	v, ok := Lookup(q.Type)
	if !ok {
		return ReducedAnswer{QuestionID: q.ID, QuestionText: q.QuestionText, Type: q.Type, Missing: true}
	}
	reduced := v.Reduce(q, answer)
	reduced.QuestionID = q.ID
	reduced.QuestionText = q.QuestionText
	reduced.Type = q.Type
	return reduced
}

// categorizeReduce groups placed item texts by category. The question's
// declared category order comes first; categories present only in the
// answer (stale names from a rename after submission) are appended as-is,
// sorted for determinism — no reconciliation is attempted.
func categorizeReduce(q *model.Question, answer any) ReducedAnswer {
	placed, ok := answer.(map[string]any)
	if !ok {
		return ReducedAnswer{}
	}

	var groups []CategoryGroup
	taken := make(map[string]bool, len(placed))
	for _, cat := range q.Categorize.Categories {
		if texts, ok := asItemTexts(placed[cat]); ok && len(texts) > 0 {
			groups = append(groups, CategoryGroup{Category: cat, Items: texts})
			taken[cat] = true
		}
	}

	var stale []string
	for cat := range placed {
		if !taken[cat] {
			stale = append(stale, cat)
		}
	}
	sort.Strings(stale)
	for _, cat := range stale {
		if texts, ok := asItemTexts(placed[cat]); ok && len(texts) > 0 {
			groups = append(groups, CategoryGroup{Category: cat, Items: texts})
		}
	}

	return ReducedAnswer{Categories: groups}
}

// clozeReduce flattens the answer to the ordered filled-in words,
// tolerating both the list shape and the legacy index-keyed map shape.
func clozeReduce(q *model.Question, answer any) ReducedAnswer {
	words, ok := asOrderedStrings(answer)
	if !ok {
		words = []string{asString(answer)}
	}
	return ReducedAnswer{Words: words, Text: strings.Join(words, clozeSeparator)}
}

// comprehensionReduce pairs each sub-question's text with the submitted
// option, by index. Missing sub-question text falls back to an
// auto-generated label.
func comprehensionReduce(q *model.Question, answer any) ReducedAnswer {
	selected, ok := asOrderedStrings(answer)
	if !ok {
		return ReducedAnswer{}
	}

	subs := make([]SubAnswer, len(selected))
	for i, value := range selected {
		text := ""
		if i < len(q.Comprehension.SubQuestions) {
			text = q.Comprehension.SubQuestions[i].Question
		}
		if text == "" {
			text = fmt.Sprintf("Sub-question %d", i+1)
		}
		subs[i] = SubAnswer{Question: text, Answer: value}
	}
	return ReducedAnswer{SubAnswers: subs}
}
