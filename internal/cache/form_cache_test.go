package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formcraft/internal/model"
)

func TestFormKey(t *testing.T) {
	assert.Equal(t, "form:65f0c0ffee", formKey("65f0c0ffee"))
}

func TestFormCache_SetRequiresID(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()
	c := NewFormCache(client, time.Minute)

	err := c.Set(context.Background(), &model.Form{Title: "no id"})

	require.Error(t, err)
}

func TestNewFormCache_DefaultTTL(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	c := NewFormCache(client, 0).(*formCache)

	assert.Equal(t, time.Hour, c.ttl)
}

func TestNopFormCache(t *testing.T) {
	var c FormCache = NopFormCache{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, &model.Form{ID: "x"}))
	form, err := c.Get(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, form)
}
