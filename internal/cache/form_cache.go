package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"formcraft/internal/model"
)

// FormCache holds read-through copies of saved forms.
// Forms are never edited after creation, so entries only expire.
type FormCache interface {
	Get(ctx context.Context, id string) (*model.Form, error)
	Set(ctx context.Context, form *model.Form) error
}

type formCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFormCache creates a Redis backed form cache
func NewFormCache(client *redis.Client, ttl time.Duration) FormCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &formCache{
		client: client,
		ttl:    ttl,
	}
}

func formKey(id string) string {
	return fmt.Sprintf("form:%s", id)
}

// Get returns nil, nil on a miss
func (c *formCache) Get(ctx context.Context, id string) (*model.Form, error) {
	data, err := c.client.Get(ctx, formKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var form model.Form
	if err := json.Unmarshal(data, &form); err != nil {
		return nil, err
	}
	return &form, nil
}

func (c *formCache) Set(ctx context.Context, form *model.Form) error {
	if form.ID == "" {
		return fmt.Errorf("cannot cache form without id")
	}
	data, err := json.Marshal(form)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, formKey(form.ID), data, c.ttl).Err()
}

// NopFormCache is used when no Redis address is configured
type NopFormCache struct{}

func (NopFormCache) Get(context.Context, string) (*model.Form, error) { return nil, nil }
func (NopFormCache) Set(context.Context, *model.Form) error           { return nil }
