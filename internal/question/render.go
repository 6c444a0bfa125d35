package question

import "formbuilder/internal/model"

// RenderedForm is the public fill view of a form: everything a respondent
// needs, nothing that gives answers away.
type RenderedForm struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	HeaderImage string             `json:"headerImage,omitempty"`
	Questions   []RenderedQuestion `json:"questions"`
}

// RenderedQuestion is one question as shown to a respondent. Categorize
// items lose their correctCategory, comprehension sub-questions lose their
// correctAnswer, and cloze passages arrive pre-tokenized with the initial
// word bank (no answers consumed yet).
type RenderedQuestion struct {
	ID           string             `json:"id"`
	Type         model.QuestionType `json:"type"`
	QuestionText string             `json:"questionText,omitempty"`
	Image        string             `json:"image,omitempty"`

	Categories []string `json:"categories,omitempty"`
	Items      []string `json:"items,omitempty"`

	Tokens   []Token         `json:"tokens,omitempty"`
	Blanks   []RenderedBlank `json:"blanks,omitempty"`
	WordBank []string        `json:"wordBank,omitempty"`

	PassageText  string                `json:"passageText,omitempty"`
	SubQuestions []RenderedSubQuestion `json:"subQuestions,omitempty"`
}

// RenderedBlank tells the respondent how to answer one blank without
// revealing the original word beyond its length (used to size the input).
type RenderedBlank struct {
	HasOptions bool `json:"hasOptions"`
	WordLength int  `json:"wordLength"`
}

// RenderedSubQuestion is a comprehension MCQ without its correct answer.
type RenderedSubQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// RenderForm builds the respondent view of a form.
func RenderForm(f *model.Form) RenderedForm {
	rendered := RenderedForm{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		HeaderImage: f.HeaderImage,
		Questions:   make([]RenderedQuestion, 0, len(f.Questions)),
	}
	for i := range f.Questions {
		rendered.Questions = append(rendered.Questions, RenderQuestion(&f.Questions[i]))
	}
	return rendered
}

// RenderQuestion builds the respondent view of one question.
func RenderQuestion(q *model.Question) RenderedQuestion {
	r := RenderedQuestion{
		ID:           q.ID,
		Type:         q.Type,
		QuestionText: q.QuestionText,
		Image:        q.Image,
	}
	switch {
	case q.Categorize != nil:
		r.Categories = q.Categorize.Categories
		r.Items = make([]string, len(q.Categorize.Items))
		for i, item := range q.Categorize.Items {
			r.Items[i] = item.Text
		}
	case q.Cloze != nil:
		r.Tokens = Tokenize(q.Cloze.Passage, len(q.Cloze.Blanks))
		r.Blanks = make([]RenderedBlank, len(q.Cloze.Blanks))
		for i, b := range q.Cloze.Blanks {
			r.Blanks[i] = RenderedBlank{HasOptions: len(b.Options) > 0, WordLength: len(b.Word)}
		}
		r.WordBank = WordBank(q.Cloze.Blanks, nil)
	case q.Comprehension != nil:
		r.PassageText = q.Comprehension.PassageText
		r.SubQuestions = make([]RenderedSubQuestion, len(q.Comprehension.SubQuestions))
		for i, sq := range q.Comprehension.SubQuestions {
			r.SubQuestions[i] = RenderedSubQuestion{Question: sq.Question, Options: sq.Options}
		}
	}
	return r
}
