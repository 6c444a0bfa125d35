package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"formbuilder/internal/cache"
	"formbuilder/internal/model"
	"formbuilder/internal/question"
	"formbuilder/internal/repository"
)

// FormService handles form CRUD. Writes go straight to Mongo; the public
// read path is served through the Redis cache, which writers invalidate.
type FormService struct {
	formRepo     repository.FormRepo
	responseRepo repository.ResponseRepo
	formCache    cache.FormCache
}

// NewFormService creates a new form service
func NewFormService(formRepo repository.FormRepo, responseRepo repository.ResponseRepo, formCache cache.FormCache) *FormService {
	return &FormService{
		formRepo:     formRepo,
		responseRepo: responseRepo,
		formCache:    formCache,
	}
}

// Create validates and persists a new form. Authoring violations block the
// persist and come back as a ValidationError.
func (s *FormService) Create(ctx context.Context, form *model.Form) (string, error) {
	normalize(form)
	if violations := question.ValidateForm(form); len(violations) > 0 {
		return "", &ValidationError{Violations: violations}
	}
	return s.formRepo.Create(ctx, form)
}

// GetByID retrieves a form, serving the public fill path read-through from
// the cache. Returns nil when the form does not exist.
func (s *FormService) GetByID(ctx context.Context, id string) (*model.Form, error) {
	cached, err := s.formCache.Get(ctx, id)
	if err != nil {
		// Cache trouble must not take down form reads.
		log.Printf("form cache get %s: %v", id, err)
	}
	if cached != nil {
		return cached, nil
	}

	form, err := s.formRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, nil
	}

	if err := s.formCache.Set(ctx, form); err != nil {
		log.Printf("form cache set %s: %v", id, err)
	}
	return form, nil
}

// ListByOwner retrieves all forms created by a user.
func (s *FormService) ListByOwner(ctx context.Context, ownerID string) ([]*model.Form, error) {
	return s.formRepo.GetByOwner(ctx, ownerID)
}

// Update replaces the whole form document: last writer wins, no field
// merge. Only the owner may update.
func (s *FormService) Update(ctx context.Context, ownerID string, form *model.Form) error {
	existing, err := s.formRepo.GetByID(ctx, form.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if existing.CreatedBy != ownerID {
		return ErrForbidden
	}

	form.CreatedBy = existing.CreatedBy
	form.CreatedAt = existing.CreatedAt
	normalize(form)
	if violations := question.ValidateForm(form); len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}

	if err := s.formRepo.Update(ctx, form); err != nil {
		return err
	}
	if err := s.formCache.Invalidate(ctx, form.ID); err != nil {
		log.Printf("form cache invalidate %s: %v", form.ID, err)
	}
	return nil
}

// Delete removes a form and cascades to every response referencing it.
// Only the owner may delete.
func (s *FormService) Delete(ctx context.Context, ownerID, id string) error {
	existing, err := s.formRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if existing.CreatedBy != ownerID {
		return ErrForbidden
	}

	if err := s.responseRepo.DeleteByFormID(ctx, id); err != nil {
		return err
	}
	if err := s.formRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.formCache.Invalidate(ctx, id); err != nil {
		log.Printf("form cache invalidate %s: %v", id, err)
	}
	return nil
}

// Render builds the sanitized respondent view of a form.
func (s *FormService) Render(ctx context.Context, id string) (*question.RenderedForm, error) {
	form, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, ErrNotFound
	}
	rendered := question.RenderForm(form)
	return &rendered, nil
}

// normalize assigns ids to new questions and re-applies the categorize
// cascade invariant before validation.
func normalize(form *model.Form) {
	for i := range form.Questions {
		q := &form.Questions[i]
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		if q.Categorize != nil {
			question.Normalize(q.Categorize)
		}
	}
}
