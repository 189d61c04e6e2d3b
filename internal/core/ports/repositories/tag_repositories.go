package repositories

import (
	"context"

	"github.com/budgie-app/budgie/internal/core/domain"
)

// TagRepository defines persistence operations for tags.
type TagRepository interface {
	// GetOrCreateTag returns the tag for (user, name), creating it if
	// absent. The upsert is race-safe: two concurrent calls yield the
	// same row.
	GetOrCreateTag(ctx context.Context, userID int64, name string) (*domain.Tag, error)
	// CreateTag inserts a new tag unconditionally. Returns
	// apperrors.ErrDuplicate when (user, name) already exists.
	CreateTag(ctx context.Context, userID int64, name string) (*domain.Tag, error)
}
