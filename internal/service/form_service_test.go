package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formbuilder/internal/model"
	"formbuilder/internal/question"
)

func newFormService(repo *fakeFormRepo, respRepo *fakeResponseRepo, cache *fakeFormCache) *FormService {
	return NewFormService(repo, respRepo, cache)
}

func clozeForm(owner string) *model.Form {
	return &model.Form{
		Title:     "Geography quiz",
		CreatedBy: owner,
		Questions: []model.Question{
			{
				Type: model.QuestionCloze,
				Cloze: &model.ClozeSpec{
					Passage: "The capital of France is [Blank 1].",
					Blanks: []model.Blank{
						{Word: "Paris", Options: []string{"Paris", "London"}, Placeholder: question.PlaceholderFor(1)},
					},
				},
			},
		},
	}
}

func TestFormServiceCreateRejectsIncompleteForm(t *testing.T) {
	repo := newFakeFormRepo()
	svc := newFormService(repo, &fakeResponseRepo{}, newFakeFormCache())

	_, err := svc.Create(context.Background(), &model.Form{Title: "   "})
	require.Error(t, err)

	verr, ok := AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, verr.Violations, "Form title is required")
	assert.Contains(t, verr.Violations, "At least one question is required")
	assert.Empty(t, repo.forms, "an invalid form must not be persisted")
}

func TestFormServiceCreateAssignsQuestionIDs(t *testing.T) {
	repo := newFakeFormRepo()
	svc := newFormService(repo, &fakeResponseRepo{}, newFakeFormCache())

	form := clozeForm("owner-1")
	id, err := svc.Create(context.Background(), form)
	require.NoError(t, err)

	stored := repo.forms[id]
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.Questions[0].ID)
}

func TestFormServiceGetByIDReadsThroughCache(t *testing.T) {
	repo := newFakeFormRepo()
	cache := newFakeFormCache()
	svc := newFormService(repo, &fakeResponseRepo{}, cache)

	form := clozeForm("owner-1")
	id, err := svc.Create(context.Background(), form)
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotNil(t, cache.forms[id], "a miss should populate the cache")

	// A later repo delete does not matter while the entry is cached.
	delete(repo.forms, id)
	got, err = svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestFormServiceGetByIDMissingForm(t *testing.T) {
	svc := newFormService(newFakeFormRepo(), &fakeResponseRepo{}, newFakeFormCache())

	got, err := svc.GetByID(context.Background(), "no-such-form")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFormServiceUpdateOwnerChecks(t *testing.T) {
	repo := newFakeFormRepo()
	svc := newFormService(repo, &fakeResponseRepo{}, newFakeFormCache())

	form := clozeForm("owner-1")
	id, err := svc.Create(context.Background(), form)
	require.NoError(t, err)

	update := clozeForm("ignored")
	update.ID = id
	update.Title = "Updated quiz"

	err = svc.Update(context.Background(), "owner-2", update)
	assert.True(t, errors.Is(err, ErrForbidden))
	assert.Equal(t, "Geography quiz", repo.forms[id].Title)

	missing := clozeForm("owner-1")
	missing.ID = "no-such-form"
	err = svc.Update(context.Background(), "owner-1", missing)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFormServiceUpdatePreservesOwnershipAndInvalidates(t *testing.T) {
	repo := newFakeFormRepo()
	cache := newFakeFormCache()
	svc := newFormService(repo, &fakeResponseRepo{}, cache)

	form := clozeForm("owner-1")
	id, err := svc.Create(context.Background(), form)
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, cache.forms[id])

	update := clozeForm("attacker")
	update.ID = id
	update.Title = "Updated quiz"
	require.NoError(t, svc.Update(context.Background(), "owner-1", update))

	stored := repo.forms[id]
	assert.Equal(t, "Updated quiz", stored.Title)
	assert.Equal(t, "owner-1", stored.CreatedBy, "ownership cannot be reassigned through an update")
	assert.Nil(t, cache.forms[id], "updates must invalidate the cached copy")
}

func TestFormServiceDeleteCascadesResponses(t *testing.T) {
	repo := newFakeFormRepo()
	respRepo := &fakeResponseRepo{}
	cache := newFakeFormCache()
	svc := newFormService(repo, respRepo, cache)

	form := clozeForm("owner-1")
	id, err := svc.Create(context.Background(), form)
	require.NoError(t, err)

	respRepo.responses = append(respRepo.responses,
		&model.FormResponse{ID: "resp-1", FormID: id},
		&model.FormResponse{ID: "resp-2", FormID: "other-form"},
	)

	err = svc.Delete(context.Background(), "owner-2", id)
	assert.True(t, errors.Is(err, ErrForbidden))
	assert.Len(t, respRepo.responses, 2)

	require.NoError(t, svc.Delete(context.Background(), "owner-1", id))
	assert.Nil(t, repo.forms[id])
	require.Len(t, respRepo.responses, 1)
	assert.Equal(t, "other-form", respRepo.responses[0].FormID)
}

func TestFormServiceRenderStripsAnswerKey(t *testing.T) {
	repo := newFakeFormRepo()
	svc := newFormService(repo, &fakeResponseRepo{}, newFakeFormCache())

	form := clozeForm("owner-1")
	id, err := svc.Create(context.Background(), form)
	require.NoError(t, err)

	rendered, err := svc.Render(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, rendered.Questions, 1)

	q := rendered.Questions[0]
	require.Len(t, q.Blanks, 1)
	assert.True(t, q.Blanks[0].HasOptions)
	assert.Equal(t, len("Paris"), q.Blanks[0].WordLength)
	assert.ElementsMatch(t, []string{"Paris", "London"}, q.WordBank)

	_, err = svc.Render(context.Background(), "no-such-form")
	assert.True(t, errors.Is(err, ErrNotFound))
}
