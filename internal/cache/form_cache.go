package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"formbuilder/internal/model"
)

// FormCache handles Redis operations for the public form read path. Every
// respondent loading a form hits this before Mongo; writers invalidate.
type FormCache interface {
	Get(ctx context.Context, id string) (*model.Form, error)
	Set(ctx context.Context, form *model.Form) error
	Invalidate(ctx context.Context, id string) error
}

type formCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFormCache creates a new form cache
func NewFormCache(client *redis.Client) FormCache {
	return &formCache{
		client: client,
		ttl:    5 * time.Minute,
	}
}

func (c *formCache) key(id string) string {
	return fmt.Sprintf("form:%s", id)
}

func (c *formCache) Get(ctx context.Context, id string) (*model.Form, error) {
	data, err := c.client.Get(ctx, c.key(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var form model.Form
	if err := json.Unmarshal([]byte(data), &form); err != nil {
		return nil, err
	}
	return &form, nil
}

func (c *formCache) Set(ctx context.Context, form *model.Form) error {
	data, err := json.Marshal(form)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(form.ID), data, c.ttl).Err()
}

func (c *formCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}
