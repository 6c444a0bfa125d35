package question

import (
	"fmt"
	"strconv"
	"strings"

	"formbuilder/internal/model"
)

// ValidateForm checks a form's authoring completeness before it is
// persisted. Violations are human-readable and collected rather than
// failing on the first; an empty result means the form may be saved.
// Response submissions are checked separately by ValidateAnswer.
func ValidateForm(f *model.Form) []string {
	var violations []string

	if strings.TrimSpace(f.Title) == "" {
		violations = append(violations, "Form title is required")
	}
	if len(f.Questions) == 0 {
		violations = append(violations, "At least one question is required")
	}

	for i := range f.Questions {
		q := &f.Questions[i]
		label := fmt.Sprintf("Question %d", i+1)
		v, ok := Lookup(q.Type)
		if !ok {
			violations = append(violations, label+": Invalid question type")
			continue
		}
		violations = append(violations, v.Complete(q, label)...)
	}

	return violations
}

// ValidateAnswer checks a submitted answer against its question's variant.
// Violations are descriptive strings, never errors; an empty result means
// the answer is acceptable for storage.
func ValidateAnswer(q *model.Question, answer any) []string {
	v, ok := Lookup(q.Type)
	if !ok {
		return []string{fmt.Sprintf("question %s has unknown type %q", q.ID, q.Type)}
	}
	return v.ValidateAnswer(q, answer)
}

func categorizeComplete(q *model.Question, label string) []string {
	var violations []string
	c := q.Categorize
	if c == nil || len(c.Categories) == 0 {
		violations = append(violations, label+": Categories are required for categorize questions")
	}
	if c == nil || len(c.Items) == 0 {
		violations = append(violations, label+": Items are required for categorize questions")
	}
	if c == nil {
		return violations
	}
	seen := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if seen[cat] {
			violations = append(violations, fmt.Sprintf("%s: Duplicate category %q", label, cat))
		}
		seen[cat] = true
	}
	for _, item := range c.Items {
		if item.CorrectCategory != "" && !seen[item.CorrectCategory] {
			violations = append(violations, fmt.Sprintf("%s: Item %q references unknown category %q", label, item.Text, item.CorrectCategory))
		}
	}
	return violations
}

func clozeComplete(q *model.Question, label string) []string {
	var violations []string
	c := q.Cloze
	if c == nil || strings.TrimSpace(c.Passage) == "" {
		violations = append(violations, label+": Passage is required for cloze questions")
	}
	if c == nil || len(c.Blanks) == 0 {
		violations = append(violations, label+": At least one blank is required for cloze questions")
	}
	if c == nil {
		return violations
	}
	// Placeholders must be exactly [Blank 1]..[Blank k] in blank order,
	// each appearing exactly once in the passage.
	for i, b := range c.Blanks {
		want := PlaceholderFor(i + 1)
		if b.Placeholder != want {
			violations = append(violations, fmt.Sprintf("%s: Blank %d placeholder is %q, expected %q", label, i+1, b.Placeholder, want))
			continue
		}
		if n := strings.Count(c.Passage, want); n != 1 {
			violations = append(violations, fmt.Sprintf("%s: Placeholder %q appears %d times in the passage, expected once", label, want, n))
		}
	}
	return violations
}

func comprehensionComplete(q *model.Question, label string) []string {
	var violations []string
	c := q.Comprehension
	if c == nil || strings.TrimSpace(c.PassageText) == "" {
		violations = append(violations, label+": Passage text is required for comprehension questions")
	}
	if c == nil || len(c.SubQuestions) == 0 {
		violations = append(violations, label+": At least one sub-question is required for comprehension questions")
	}
	if c == nil {
		return violations
	}
	for i, sq := range c.SubQuestions {
		if len(sq.Options) != subQuestionOptions {
			violations = append(violations, fmt.Sprintf("%s: Sub-question %d must have exactly %d options", label, i+1, subQuestionOptions))
		}
		if sq.CorrectAnswer != "" && !containsString(sq.Options, sq.CorrectAnswer) {
			violations = append(violations, fmt.Sprintf("%s: Sub-question %d correct answer %q is not one of its options", label, i+1, sq.CorrectAnswer))
		}
	}
	return violations
}

// subQuestionOptions is the fixed option count of a comprehension MCQ.
const subQuestionOptions = 4

func categorizeValidate(q *model.Question, answer any) []string {
	c := q.Categorize
	placed, ok := answer.(map[string]any)
	if !ok {
		return []string{"categorize answer must map categories to item lists"}
	}

	declared := make(map[string]bool, len(c.Items))
	for _, item := range c.Items {
		declared[item.Text] = true
	}

	var violations []string
	seen := make(map[string]string) // item text -> category already holding it
	for _, cat := range sortedIndexKeys(placed) {
		if !containsString(c.Categories, cat) {
			violations = append(violations, fmt.Sprintf("category %q is not part of this question", cat))
		}
		texts, ok := asItemTexts(placed[cat])
		if !ok {
			violations = append(violations, fmt.Sprintf("category %q must hold a list of items", cat))
			continue
		}
		for _, text := range texts {
			if !declared[text] {
				violations = append(violations, fmt.Sprintf("item %q is not part of this question", text))
			}
			if other, dup := seen[text]; dup && other != cat {
				violations = append(violations, fmt.Sprintf("item %q is placed in more than one category", text))
			}
			seen[text] = cat
		}
	}
	return violations
}

func clozeValidate(q *model.Question, answer any) []string {
	c := q.Cloze
	values, ok := answer.([]any)
	if !ok {
		if typed, isTyped := answer.([]string); isTyped {
			values = make([]any, len(typed))
			for i, s := range typed {
				values[i] = s
			}
		} else {
			return []string{"cloze answer must be an ordered list of strings"}
		}
	}
	if len(values) != len(c.Blanks) {
		return []string{fmt.Sprintf("cloze answer has %d entries, expected %d", len(values), len(c.Blanks))}
	}

	var violations []string
	for i, v := range values {
		value, ok := v.(string)
		if !ok {
			violations = append(violations, fmt.Sprintf("blank %d answer must be a string", i+1))
			continue
		}
		// Free-text blanks accept anything; option blanks accept a member
		// of their set or empty (unanswered).
		if value == "" || len(c.Blanks[i].Options) == 0 {
			continue
		}
		if !containsString(c.Blanks[i].Options, value) {
			violations = append(violations, fmt.Sprintf("%q is not an allowed option for blank %d", value, i+1))
		}
	}
	return violations
}

func comprehensionValidate(q *model.Question, answer any) []string {
	c := q.Comprehension
	selected, ok := answer.(map[string]any)
	if !ok {
		return []string{"comprehension answer must map sub-question indices to options"}
	}

	var violations []string
	for _, key := range sortedIndexKeys(selected) {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(c.SubQuestions) {
			violations = append(violations, fmt.Sprintf("sub-question index %q is out of range", key))
			continue
		}
		value, ok := selected[key].(string)
		if !ok {
			violations = append(violations, fmt.Sprintf("sub-question %d answer must be a string", idx+1))
			continue
		}
		if value == "" {
			continue
		}
		if !containsString(c.SubQuestions[idx].Options, value) {
			violations = append(violations, fmt.Sprintf("%q is not one of sub-question %d's options", value, idx+1))
		}
	}
	return violations
}
