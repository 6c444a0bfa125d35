package model

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// QuestionType tags the question variant
type QuestionType string

const (
	QuestionCategorize    QuestionType = "categorize"
	QuestionCloze         QuestionType = "cloze"
	QuestionComprehension QuestionType = "comprehension"
)

// Form is a persistent document created by an authenticated user.
// Completeness (title, at least one question) is enforced at the persist
// boundary, not here.
type Form struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	HeaderImage string     `json:"headerImage,omitempty" bson:"headerImage,omitempty"`
	CreatedBy   string     `json:"createdBy" bson:"createdBy"`
	Questions   []Question `json:"questions" bson:"questions"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// Question is a tagged union over the three variants. Exactly one of the
// variant pointers is non-nil, matching Type. On the wire and in storage it
// is a single flat document carrying only its own variant's fields.
type Question struct {
	ID           string       `json:"id"`
	Type         QuestionType `json:"type"`
	QuestionText string       `json:"questionText,omitempty"`
	Image        string       `json:"image,omitempty"`

	Categorize    *CategorizeSpec    `json:"-"`
	Cloze         *ClozeSpec         `json:"-"`
	Comprehension *ComprehensionSpec `json:"-"`
}

// CategorizeSpec authors a drag-and-drop sorting question.
type CategorizeSpec struct {
	Categories []string `json:"categories" bson:"categories"`
	Items      []Item   `json:"items" bson:"items"`
}

// Item is a draggable entry with the category its author filed it under.
type Item struct {
	Text            string `json:"text" bson:"text"`
	CorrectCategory string `json:"correctCategory,omitempty" bson:"correctCategory,omitempty"`
}

// ClozeSpec authors a fill-in-the-blank passage. Blank placeholders are
// always [Blank 1]..[Blank k] in blank order, each appearing exactly once
// in Passage.
type ClozeSpec struct {
	Passage string  `json:"passage" bson:"passage"`
	Blanks  []Blank `json:"blanks" bson:"blanks"`
}

// Blank is one gap in a cloze passage. An empty Options list means the
// respondent types free text.
type Blank struct {
	Word        string   `json:"word" bson:"word"`
	Options     []string `json:"options" bson:"options"`
	Placeholder string   `json:"placeholder" bson:"placeholder"`
}

// ComprehensionSpec authors a passage with multiple-choice sub-questions.
type ComprehensionSpec struct {
	PassageText  string        `json:"passageText" bson:"passageText"`
	SubQuestions []SubQuestion `json:"subQuestions" bson:"subQuestions"`
}

// SubQuestion is one four-option MCQ. CorrectAnswer, when set, equals one
// of Options.
type SubQuestion struct {
	Question      string   `json:"question" bson:"question"`
	Options       []string `json:"options" bson:"options"`
	CorrectAnswer string   `json:"correctAnswer,omitempty" bson:"correctAnswer,omitempty"`
}

// questionDoc is the flat wire/storage shape shared by all variants.
type questionDoc struct {
	ID           string       `json:"id" bson:"id"`
	Type         QuestionType `json:"type" bson:"type"`
	QuestionText string       `json:"questionText,omitempty" bson:"questionText,omitempty"`
	Image        string       `json:"image,omitempty" bson:"image,omitempty"`

	Categories []string `json:"categories,omitempty" bson:"categories,omitempty"`
	Items      []Item   `json:"items,omitempty" bson:"items,omitempty"`

	Passage string  `json:"passage,omitempty" bson:"passage,omitempty"`
	Blanks  []Blank `json:"blanks,omitempty" bson:"blanks,omitempty"`

	PassageText  string        `json:"passageText,omitempty" bson:"passageText,omitempty"`
	SubQuestions []SubQuestion `json:"subQuestions,omitempty" bson:"subQuestions,omitempty"`
}

func (q Question) doc() questionDoc {
	d := questionDoc{
		ID:           q.ID,
		Type:         q.Type,
		QuestionText: q.QuestionText,
		Image:        q.Image,
	}
	switch {
	case q.Categorize != nil:
		d.Categories = q.Categorize.Categories
		d.Items = q.Categorize.Items
	case q.Cloze != nil:
		d.Passage = q.Cloze.Passage
		d.Blanks = q.Cloze.Blanks
	case q.Comprehension != nil:
		d.PassageText = q.Comprehension.PassageText
		d.SubQuestions = q.Comprehension.SubQuestions
	}
	return d
}

func (q *Question) fromDoc(d questionDoc) error {
	q.ID = d.ID
	q.Type = d.Type
	q.QuestionText = d.QuestionText
	q.Image = d.Image
	q.Categorize = nil
	q.Cloze = nil
	q.Comprehension = nil
	switch d.Type {
	case QuestionCategorize:
		q.Categorize = &CategorizeSpec{Categories: d.Categories, Items: d.Items}
	case QuestionCloze:
		q.Cloze = &ClozeSpec{Passage: d.Passage, Blanks: d.Blanks}
	case QuestionComprehension:
		q.Comprehension = &ComprehensionSpec{PassageText: d.PassageText, SubQuestions: d.SubQuestions}
	default:
		return fmt.Errorf("unknown question type %q", d.Type)
	}
	return nil
}

func (q Question) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.doc())
}

func (q *Question) UnmarshalJSON(data []byte) error {
	var d questionDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	return q.fromDoc(d)
}

func (q Question) MarshalBSON() ([]byte, error) {
	return bson.Marshal(q.doc())
}

func (q *Question) UnmarshalBSON(data []byte) error {
	var d questionDoc
	if err := bson.Unmarshal(data, &d); err != nil {
		return err
	}
	return q.fromDoc(d)
}
