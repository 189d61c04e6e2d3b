package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/budgie-app/budgie/internal/apperrors"
	"github.com/budgie-app/budgie/internal/core/domain"
	portsrepo "github.com/budgie-app/budgie/internal/core/ports/repositories"
	"github.com/budgie-app/budgie/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	pool *pgxpool.Pool
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{pool: pool}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

// Helper to convert domain.User to models.User for DB storage
func toModelUser(d domain.User) models.User {
	return models.User{
		ID:       d.UserID,
		Email:    d.Email,
		Password: d.PasswordHash,
		Salt:     d.Salt,
		Name:     d.Name,
		Created:  d.Created,
	}
}

// Helper to convert models.User from DB to domain.User
func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.ID,
		Email:        m.Email,
		PasswordHash: m.Password,
		Salt:         m.Salt,
		Name:         m.Name,
		Created:      m.Created,
	}
}

// SaveUser inserts a new user and returns it with the generated id.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	modelUser := toModelUser(user)

	query := `
		INSERT INTO app_user (email, password, salt, name, created)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err := r.pool.QueryRow(ctx, query,
		modelUser.Email,
		modelUser.Password,
		modelUser.Salt,
		modelUser.Name,
		modelUser.Created,
	).Scan(&modelUser.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return nil, fmt.Errorf("%w: user with email %s already exists", apperrors.ErrDuplicate, modelUser.Email)
		}
		return nil, fmt.Errorf("failed to save user %s: %w", modelUser.Email, err)
	}

	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}

// FindUserByEmail retrieves a user by email.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, password, salt, name, created
		FROM app_user
		WHERE email = $1;
	`
	var modelUser models.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&modelUser.ID,
		&modelUser.Email,
		&modelUser.Password,
		&modelUser.Salt,
		&modelUser.Name,
		&modelUser.Created,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by email %s: %w", email, err)
	}

	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}

// FindUserByID retrieves a user by its ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `
		SELECT id, email, password, salt, name, created
		FROM app_user
		WHERE id = $1;
	`
	var modelUser models.User
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&modelUser.ID,
		&modelUser.Email,
		&modelUser.Password,
		&modelUser.Salt,
		&modelUser.Name,
		&modelUser.Created,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %d: %w", userID, err)
	}

	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}
