package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/budgie-app/budgie/internal/apperrors"
	"github.com/budgie-app/budgie/internal/core/domain"
	portsrepo "github.com/budgie-app/budgie/internal/core/ports/repositories"
	"github.com/budgie-app/budgie/internal/middleware"
)

// TagService implements the tag registry.
type TagService struct {
	TagRepository portsrepo.TagRepository
}

func NewTagService(repo portsrepo.TagRepository) *TagService {
	return &TagService{TagRepository: repo}
}

// GetOrCreateTag returns the identity's tag with the given text,
// creating it if absent. Calling twice with the same text yields the
// same tag id.
func (s *TagService) GetOrCreateTag(ctx context.Context, identity domain.Identity, name string) (*domain.Tag, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if identity.IsZero() {
		return nil, apperrors.ErrNoActiveUser
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: tag text must not be empty", apperrors.ErrValidation)
	}

	tag, err := s.TagRepository.GetOrCreateTag(ctx, identity.UserID, name)
	if err != nil {
		logger.Error("Failed to get or create tag", slog.String("error", err.Error()), slog.String("tag", name))
		return nil, err
	}
	return tag, nil
}

// CreateTag inserts a new tag unconditionally.
func (s *TagService) CreateTag(ctx context.Context, identity domain.Identity, name string) (*domain.Tag, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if identity.IsZero() {
		return nil, apperrors.ErrNoActiveUser
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: tag text must not be empty", apperrors.ErrValidation)
	}

	tag, err := s.TagRepository.CreateTag(ctx, identity.UserID, name)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to create tag", slog.String("error", err.Error()), slog.String("tag", name))
		}
		return nil, err
	}

	logger.Info("Tag created", slog.Int64("tag_id", tag.TagID), slog.String("tag", tag.Name))
	return tag, nil
}
