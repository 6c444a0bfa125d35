package model

import "time"

// FormResponse is one anonymous submission against a form. Immutable once
// created; only the public submission endpoint writes these.
type FormResponse struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	FormID      string        `json:"formId" bson:"formId"`
	SubmittedAt time.Time     `json:"submittedAt" bson:"submittedAt"`
	Answers     []AnswerEntry `json:"responses" bson:"responses"`
}

// AnswerEntry pairs a question with its submitted answer. The answer shape
// depends on the referenced question's type: a category→items map for
// categorize, an ordered string list for cloze, an index-keyed option map
// for comprehension.
type AnswerEntry struct {
	QuestionID string `json:"questionId" bson:"questionId"`
	Answer     any    `json:"answer" bson:"answer"`
}
