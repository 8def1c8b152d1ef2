// Package repository provides data access layer implementations for the
// application. It is the only layer that talks to the record store; services
// consume these interfaces and never see driver errors directly.
package repository

import (
	"context"
	"errors"
	"time"

	"notebooks/internal/models"

	"gorm.io/gorm"
)

// translateErr maps storage-layer errors onto the application taxonomy.
// Point reads of absent records become NOT_FOUND, duplicate-key inserts
// become CONFLICT (the insert-if-absent signal), caller aborts become
// CANCELED, and anything else is treated as a transient backend failure.
func translateErr(err error, resource string, id interface{}) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.NewNotFoundError(resource, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.NewConflictError(resource + " already exists")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return models.NewCanceledError(err)
	default:
		return models.NewUnavailableError(err)
	}
}

const (
	readRetries    = 2
	readRetryDelay = 50 * time.Millisecond
)

// withReadRetry runs fn, retrying a bounded number of times when the error
// is transient. Only used for idempotent reads; writes surface the failure
// to the caller instead.
func withReadRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = fn()
		if err == nil || !models.IsCode(err, models.CodeUnavailable) || attempt >= readRetries {
			return err
		}
		select {
		case <-time.After(time.Duration(attempt+1) * readRetryDelay):
		case <-ctx.Done():
			return models.NewCanceledError(ctx.Err())
		}
	}
}
