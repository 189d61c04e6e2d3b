package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/budgie-app/budgie/internal/apperrors"
	"github.com/budgie-app/budgie/internal/core/domain"
	portsrepo "github.com/budgie-app/budgie/internal/core/ports/repositories"
	"github.com/budgie-app/budgie/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTagRepository struct {
	pool *pgxpool.Pool
}

// newPgxTagRepository creates a new repository for tag data.
func newPgxTagRepository(pool *pgxpool.Pool) portsrepo.TagRepository {
	return &PgxTagRepository{pool: pool}
}

// Ensure PgxTagRepository implements portsrepo.TagRepository
var _ portsrepo.TagRepository = (*PgxTagRepository)(nil)

func toDomainTag(m models.Tag) domain.Tag {
	return domain.Tag{
		TagID:  m.ID,
		UserID: m.UserID,
		Name:   m.Tag,
	}
}

// GetOrCreateTag returns the tag for (user, name), creating it if absent.
// The no-op DO UPDATE makes RETURNING yield the existing row on
// conflict, so two concurrent calls resolve to the same id.
func (r *PgxTagRepository) GetOrCreateTag(ctx context.Context, userID int64, name string) (*domain.Tag, error) {
	query := `
		INSERT INTO tag (user_id, tag)
		VALUES ($1, $2)
		ON CONFLICT (user_id, tag) DO UPDATE SET tag = EXCLUDED.tag
		RETURNING id;
	`
	modelTag := models.Tag{UserID: userID, Tag: name}
	if err := r.pool.QueryRow(ctx, query, userID, name).Scan(&modelTag.ID); err != nil {
		return nil, fmt.Errorf("failed to get or create tag %q: %w", name, err)
	}

	domainTag := toDomainTag(modelTag)
	return &domainTag, nil
}

// CreateTag inserts a new tag unconditionally.
func (r *PgxTagRepository) CreateTag(ctx context.Context, userID int64, name string) (*domain.Tag, error) {
	query := `
		INSERT INTO tag (user_id, tag)
		VALUES ($1, $2)
		RETURNING id;
	`
	modelTag := models.Tag{UserID: userID, Tag: name}
	if err := r.pool.QueryRow(ctx, query, userID, name).Scan(&modelTag.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation on (user_id, tag)
			return nil, fmt.Errorf("%w: tag %q", apperrors.ErrDuplicate, name)
		}
		return nil, fmt.Errorf("failed to create tag %q: %w", name, err)
	}

	domainTag := toDomainTag(modelTag)
	return &domainTag, nil
}
