// Package media talks to the external blob storage and delivery network.
// Upload and object lifecycle live outside this service; the engine only
// receives content references and issues delete-by-reference calls.
package media

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Store deletes stored media objects by their reference URL.
// Deletion is best-effort from the caller's point of view: the moderation
// cascade logs and swallows failures rather than blocking post removal.
type Store interface {
	DeleteObject(ctx context.Context, url string) error
}

// HTTPStore issues DELETE requests against the storage origin.
type HTTPStore struct {
	originPrefix string
	client       *http.Client
	logger       *slog.Logger
}

// NewHTTPStore returns a Store deleting objects under originPrefix.
func NewHTTPStore(originPrefix string, logger *slog.Logger) *HTTPStore {
	return &HTTPStore{
		originPrefix: originPrefix,
		client:       &http.Client{Timeout: 10 * time.Second},
		logger:       logger,
	}
}

// DeleteObject removes the object the URL points at. URLs outside the
// configured origin are refused so a corrupted content reference cannot be
// turned into a request against an arbitrary host.
func (s *HTTPStore) DeleteObject(ctx context.Context, url string) error {
	if !strings.HasPrefix(url, s.originPrefix) {
		return fmt.Errorf("media: reference %q is outside the storage origin", url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("media: build delete request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("media: delete %q: %w", url, err)
	}
	defer resp.Body.Close()

	// 404 means someone already cleaned up the object; that's the outcome
	// the caller wanted.
	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("media: delete %q: unexpected status %d", url, resp.StatusCode)
	}

	s.logger.InfoContext(ctx, "media object deleted", slog.String("url", url))
	return nil
}

// DisabledStore logs deletions without performing them. Used in development
// and when MEDIA_DELETE_ENABLED is off.
type DisabledStore struct {
	logger *slog.Logger
}

// NewDisabledStore returns a Store that only records delete intents.
func NewDisabledStore(logger *slog.Logger) *DisabledStore {
	return &DisabledStore{logger: logger}
}

func (s *DisabledStore) DeleteObject(ctx context.Context, url string) error {
	s.logger.InfoContext(ctx, "media delete skipped (disabled)", slog.String("url", url))
	return nil
}
