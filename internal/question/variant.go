// Package question implements the question variant model: per-type
// authoring completeness, answer validation, editor transforms, and the
// reduction of stored answers into review-ready structures. Everything here
// is pure; persistence and transport live elsewhere.
package question

import "formbuilder/internal/model"

// Variant bundles one question kind's behavior: authoring-time
// completeness, submitted-answer validation, and reduction of a stored
// answer for review. Adding a new kind means registering a new Variant;
// existing ones are never touched.
type Variant struct {
	Type           model.QuestionType
	Complete       func(q *model.Question, label string) []string
	ValidateAnswer func(q *model.Question, answer any) []string
	Reduce         func(q *model.Question, answer any) ReducedAnswer
}

var variants = map[model.QuestionType]Variant{}

// Register adds a variant to the registry, replacing any previous entry
// for the same type.
func Register(v Variant) {
	variants[v.Type] = v
}

// Lookup returns the variant registered for a type tag.
func Lookup(t model.QuestionType) (Variant, bool) {
	v, ok := variants[t]
	return v, ok
}

func init() {
	Register(Variant{
		Type:           model.QuestionCategorize,
		Complete:       categorizeComplete,
		ValidateAnswer: categorizeValidate,
		Reduce:         categorizeReduce,
	})
	Register(Variant{
		Type:           model.QuestionCloze,
		Complete:       clozeComplete,
		ValidateAnswer: clozeValidate,
		Reduce:         clozeReduce,
	})
	Register(Variant{
		Type:           model.QuestionComprehension,
		Complete:       comprehensionComplete,
		ValidateAnswer: comprehensionValidate,
		Reduce:         comprehensionReduce,
	})
}
