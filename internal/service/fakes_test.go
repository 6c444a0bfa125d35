package service

import (
	"context"
	"fmt"

	"formbuilder/internal/model"
)

// In-memory fakes for the repository and cache interfaces.

type fakeFormRepo struct {
	forms  map[string]*model.Form
	nextID int
}

func newFakeFormRepo() *fakeFormRepo {
	return &fakeFormRepo{forms: make(map[string]*model.Form)}
}

func (r *fakeFormRepo) Create(ctx context.Context, form *model.Form) (string, error) {
	r.nextID++
	form.ID = fmt.Sprintf("form-%d", r.nextID)
	stored := *form
	r.forms[form.ID] = &stored
	return form.ID, nil
}

func (r *fakeFormRepo) GetByID(ctx context.Context, id string) (*model.Form, error) {
	form, ok := r.forms[id]
	if !ok {
		return nil, nil
	}
	copied := *form
	return &copied, nil
}

func (r *fakeFormRepo) GetByOwner(ctx context.Context, ownerID string) ([]*model.Form, error) {
	var out []*model.Form
	for _, form := range r.forms {
		if form.CreatedBy == ownerID {
			copied := *form
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeFormRepo) Update(ctx context.Context, form *model.Form) error {
	stored := *form
	r.forms[form.ID] = &stored
	return nil
}

func (r *fakeFormRepo) Delete(ctx context.Context, id string) error {
	delete(r.forms, id)
	return nil
}

type fakeResponseRepo struct {
	responses []*model.FormResponse
	nextID    int
}

func (r *fakeResponseRepo) Create(ctx context.Context, response *model.FormResponse) error {
	r.nextID++
	response.ID = fmt.Sprintf("resp-%d", r.nextID)
	r.responses = append(r.responses, response)
	return nil
}

func (r *fakeResponseRepo) GetByFormID(ctx context.Context, formID string) ([]*model.FormResponse, error) {
	var out []*model.FormResponse
	for _, resp := range r.responses {
		if resp.FormID == formID {
			out = append(out, resp)
		}
	}
	return out, nil
}

func (r *fakeResponseRepo) DeleteByFormID(ctx context.Context, formID string) error {
	kept := r.responses[:0]
	for _, resp := range r.responses {
		if resp.FormID != formID {
			kept = append(kept, resp)
		}
	}
	r.responses = kept
	return nil
}

type fakeFormCache struct {
	forms map[string]*model.Form
}

func newFakeFormCache() *fakeFormCache {
	return &fakeFormCache{forms: make(map[string]*model.Form)}
}

func (c *fakeFormCache) Get(ctx context.Context, id string) (*model.Form, error) {
	return c.forms[id], nil
}

func (c *fakeFormCache) Set(ctx context.Context, form *model.Form) error {
	c.forms[form.ID] = form
	return nil
}

func (c *fakeFormCache) Invalidate(ctx context.Context, id string) error {
	delete(c.forms, id)
	return nil
}

type fakeUserRepo struct {
	users  map[string]*model.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) (string, error) {
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[user.ID] = user
	return user.ID, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.users[id], nil
}
