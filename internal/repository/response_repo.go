package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"formbuilder/internal/model"
)

// ResponseRepo handles MongoDB operations for form responses. Responses
// are append-only: there is no update.
type ResponseRepo interface {
	Create(ctx context.Context, response *model.FormResponse) error
	GetByFormID(ctx context.Context, formID string) ([]*model.FormResponse, error)
	DeleteByFormID(ctx context.Context, formID string) error
}

type responseRepo struct {
	collection *mongo.Collection
}

// NewResponseRepo creates a new response repository
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("responses"),
	}
}

func (r *responseRepo) Create(ctx context.Context, response *model.FormResponse) error {
	if response.SubmittedAt.IsZero() {
		response.SubmittedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, response)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		response.ID = oid.Hex()
	}
	return nil
}

func (r *responseRepo) GetByFormID(ctx context.Context, formID string) ([]*model.FormResponse, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"formId": formID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.FormResponse
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	for _, resp := range responses {
		normalizeEntries(resp.Answers)
	}
	return responses, nil
}

// DeleteByFormID removes every response referencing a form; the cascade
// half of form deletion.
func (r *responseRepo) DeleteByFormID(ctx context.Context, formID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"formId": formID})
	return err
}

// normalizeEntries rewrites the driver's bson document/array types into
// plain maps and slices so the reduction layer sees the same shapes the
// JSON boundary produces.
func normalizeEntries(entries []model.AnswerEntry) {
	for i := range entries {
		entries[i].Answer = toPlain(entries[i].Answer)
	}
}

func toPlain(v any) any {
	switch t := v.(type) {
	case primitive.D:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = toPlain(e.Value)
		}
		return m
	case primitive.M:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = toPlain(e)
		}
		return m
	case primitive.A:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = toPlain(e)
		}
		return s
	default:
		return v
	}
}
