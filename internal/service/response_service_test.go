package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formbuilder/internal/model"
)

func responseFixture(t *testing.T) (*ResponseService, *fakeResponseRepo, string, string) {
	t.Helper()
	formRepo := newFakeFormRepo()
	respRepo := &fakeResponseRepo{}
	formSvc := NewFormService(formRepo, respRepo, newFakeFormCache())

	form := clozeForm("owner-1")
	id, err := formSvc.Create(context.Background(), form)
	require.NoError(t, err)

	questionID := formRepo.forms[id].Questions[0].ID
	return NewResponseService(respRepo, formSvc), respRepo, id, questionID
}

func TestResponseServiceSubmitStoresValidSubmission(t *testing.T) {
	svc, respRepo, formID, questionID := responseFixture(t)

	resp, err := svc.Submit(context.Background(), formID, []model.AnswerEntry{
		{QuestionID: questionID, Answer: []any{"Paris"}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.False(t, resp.SubmittedAt.IsZero())
	require.Len(t, respRepo.responses, 1)
	assert.Equal(t, formID, respRepo.responses[0].FormID)
}

func TestResponseServiceSubmitRejectsWholeSubmission(t *testing.T) {
	svc, respRepo, formID, questionID := responseFixture(t)

	_, err := svc.Submit(context.Background(), formID, []model.AnswerEntry{
		{QuestionID: questionID, Answer: []any{"Rome"}},
	})
	verr, ok := AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, verr.Violations, `"Rome" is not an allowed option for blank 1`)
	assert.Empty(t, respRepo.responses, "a rejected submission must not be stored")
}

func TestResponseServiceSubmitUnknownQuestion(t *testing.T) {
	svc, respRepo, formID, questionID := responseFixture(t)

	_, err := svc.Submit(context.Background(), formID, []model.AnswerEntry{
		{QuestionID: questionID, Answer: []any{"Paris"}},
		{QuestionID: "ghost", Answer: "whatever"},
	})
	verr, ok := AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, verr.Violations, `answer references unknown question "ghost"`)
	assert.Empty(t, respRepo.responses)
}

func TestResponseServiceSubmitMissingForm(t *testing.T) {
	svc, _, _, _ := responseFixture(t)

	_, err := svc.Submit(context.Background(), "no-such-form", nil)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestResponseServiceListForReviewOwnerGate(t *testing.T) {
	svc, _, formID, questionID := responseFixture(t)

	_, err := svc.Submit(context.Background(), formID, []model.AnswerEntry{
		{QuestionID: questionID, Answer: []any{"Paris"}},
	})
	require.NoError(t, err)

	_, err = svc.ListForReview(context.Background(), "owner-2", formID)
	assert.True(t, errors.Is(err, ErrForbidden))

	_, err = svc.ListForReview(context.Background(), "owner-1", "no-such-form")
	assert.True(t, errors.Is(err, ErrNotFound))

	review, err := svc.ListForReview(context.Background(), "owner-1", formID)
	require.NoError(t, err)
	assert.Equal(t, "Geography quiz", review.Title)
	require.Len(t, review.Submissions, 1)

	sub := review.Submissions[0]
	require.Len(t, sub.Review, 1)
	assert.False(t, sub.Review[0].Missing)
	assert.Equal(t, "Paris", sub.Review[0].Text)
}

func TestResponseServiceListForReviewMarksDeletedQuestions(t *testing.T) {
	svc, respRepo, formID, _ := responseFixture(t)

	// A stored answer whose question was since removed from the form.
	respRepo.responses = append(respRepo.responses, &model.FormResponse{
		ID:     "resp-stale",
		FormID: formID,
		Answers: []model.AnswerEntry{
			{QuestionID: "deleted-question", Answer: []any{"Paris"}},
		},
	})

	review, err := svc.ListForReview(context.Background(), "owner-1", formID)
	require.NoError(t, err)
	require.Len(t, review.Submissions, 1)

	reduced := review.Submissions[0].Review[0]
	assert.True(t, reduced.Missing)
	assert.Equal(t, "deleted-question", reduced.QuestionID)
}
