package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestGetSetJSON(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	found, err := GetJSON(ctx, "missing", &payload{})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "k", payload{Name: "a", Count: 2}, time.Minute))

	var got payload
	found, err = GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "a", Count: 2}, got)
}

func TestAside_MissFetchesAndStores(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *payload) func() error {
		return func() error {
			calls++
			*dest = payload{Name: "fresh", Count: calls}
			return nil
		}
	}

	var first payload
	require.NoError(t, Aside(ctx, "k", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "fresh", first.Name)

	// second call is served from the cache
	var second payload
	require.NoError(t, Aside(ctx, "k", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestAside_FetchErrorPropagates(t *testing.T) {
	setupMiniredis(t)

	var dest payload
	wantErr := errors.New("backend down")
	err := Aside(context.Background(), "k", &dest, time.Minute, func() error { return wantErr })
	assert.ErrorIs(t, err, wantErr)
}

func TestAside_RedisDownDegradesToFetch(t *testing.T) {
	mr := setupMiniredis(t)
	mr.Close()

	calls := 0
	var dest payload
	err := Aside(context.Background(), "k", &dest, time.Minute, func() error {
		calls++
		dest = payload{Name: "direct"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "direct", dest.Name)
}

func TestInvalidateFeed(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, FeedPageKey(1, 20), payload{Name: "page1"}, time.Minute))
	require.NoError(t, SetJSON(ctx, FeedPageKey(2, 20), payload{Name: "page2"}, time.Minute))
	require.NoError(t, SetJSON(ctx, PostKey("p1"), payload{Name: "post"}, time.Minute))

	InvalidateFeed(ctx)

	found, err := GetJSON(ctx, FeedPageKey(1, 20), &payload{})
	require.NoError(t, err)
	assert.False(t, found)
	found, err = GetJSON(ctx, FeedPageKey(2, 20), &payload{})
	require.NoError(t, err)
	assert.False(t, found)

	// unrelated keys survive
	found, err = GetJSON(ctx, PostKey("p1"), &payload{})
	require.NoError(t, err)
	assert.True(t, found)
}
