package service

import (
	"context"
	"fmt"
	"time"

	"formbuilder/internal/model"
	"formbuilder/internal/question"
	"formbuilder/internal/repository"
)

// ResponseService handles anonymous submissions and the owner's review
// listing.
type ResponseService struct {
	responseRepo repository.ResponseRepo
	formSvc      *FormService
}

// NewResponseService creates a new response service
func NewResponseService(responseRepo repository.ResponseRepo, formSvc *FormService) *ResponseService {
	return &ResponseService{
		responseRepo: responseRepo,
		formSvc:      formSvc,
	}
}

// Submit validates a submission against the form's questions and stores
// it. Any violation rejects the whole submission; nothing is partially
// stored.
func (s *ResponseService) Submit(ctx context.Context, formID string, entries []model.AnswerEntry) (*model.FormResponse, error) {
	form, err := s.formSvc.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, ErrNotFound
	}

	byID := questionsByID(form)
	var violations []string
	for _, entry := range entries {
		q, ok := byID[entry.QuestionID]
		if !ok {
			violations = append(violations, fmt.Sprintf("answer references unknown question %q", entry.QuestionID))
			continue
		}
		violations = append(violations, question.ValidateAnswer(q, entry.Answer)...)
	}
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	response := &model.FormResponse{
		FormID:      formID,
		SubmittedAt: time.Now(),
		Answers:     entries,
	}
	if err := s.responseRepo.Create(ctx, response); err != nil {
		return nil, err
	}
	return response, nil
}

// ReviewedSubmission is one stored submission with its answers reduced for
// display alongside the raw entries.
type ReviewedSubmission struct {
	ID          string                   `json:"id"`
	SubmittedAt time.Time                `json:"submittedAt"`
	Responses   []model.AnswerEntry      `json:"responses"`
	Review      []question.ReducedAnswer `json:"review"`
}

// Review is the owner's response listing for one form.
type Review struct {
	FormID      string               `json:"formId"`
	Title       string               `json:"title"`
	Submissions []ReviewedSubmission `json:"submissions"`
}

// ListForReview returns a form's submissions with reduced answers. Only
// the owner may view them. Answers whose question has been deleted reduce
// to the missing-data marker instead of aborting the listing.
func (s *ResponseService) ListForReview(ctx context.Context, ownerID, formID string) (*Review, error) {
	form, err := s.formSvc.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, ErrNotFound
	}
	if form.CreatedBy != ownerID {
		return nil, ErrForbidden
	}

	responses, err := s.responseRepo.GetByFormID(ctx, formID)
	if err != nil {
		return nil, err
	}

	byID := questionsByID(form)
	review := &Review{
		FormID:      formID,
		Title:       form.Title,
		Submissions: make([]ReviewedSubmission, 0, len(responses)),
	}
	for _, resp := range responses {
		sub := ReviewedSubmission{
			ID:          resp.ID,
			SubmittedAt: resp.SubmittedAt,
			Responses:   resp.Answers,
			Review:      make([]question.ReducedAnswer, 0, len(resp.Answers)),
		}
		for _, entry := range resp.Answers {
			reduced := question.Reduce(byID[entry.QuestionID], entry.Answer)
			if reduced.Missing {
				reduced.QuestionID = entry.QuestionID
			}
			sub.Review = append(sub.Review, reduced)
		}
		review.Submissions = append(review.Submissions, sub)
	}
	return review, nil
}

func questionsByID(form *model.Form) map[string]*model.Question {
	byID := make(map[string]*model.Question, len(form.Questions))
	for i := range form.Questions {
		byID[form.Questions[i].ID] = &form.Questions[i]
	}
	return byID
}
