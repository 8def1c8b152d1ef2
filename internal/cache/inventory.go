package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix     = "post:%s"
	FeedPageKeyPrefix = "feed:page:%d:%d"
)

const (
	PostTTL = 30 * time.Minute
	// FeedTTL is short: the anonymous feed is hot but must pick up new posts
	// quickly.
	FeedTTL = 30 * time.Second
)

func PostKey(postID string) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

// FeedPageKey caches only viewer-less feed pages; personalized pages are
// never cached because the liked/reported annotations differ per viewer.
func FeedPageKey(page, pageSize int) string {
	return fmt.Sprintf(FeedPageKeyPrefix, page, pageSize)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateFeed drops all cached anonymous feed pages. Called whenever a
// post is created or removed so stale pages never outlive a write by more
// than one round trip.
func InvalidateFeed(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, "feed:page:*", 100).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}

func InvalidatePost(ctx context.Context, postID string) {
	Invalidate(ctx, PostKey(postID))
}
