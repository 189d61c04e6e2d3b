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

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepository
var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// Helper to convert domain.Account to models.Account for DB storage
func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		ID:          d.AccountID,
		UserID:      d.UserID,
		Name:        d.Name,
		Description: d.Description,
		Type:        d.Type,
	}
}

// Helper to convert models.Account from DB to domain.Account
func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		Type:        m.Type,
	}
}

// SaveAccount inserts a new account and returns it with the generated id.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	modelAcc := toModelAccount(account)

	query := `
		INSERT INTO account (user_id, name, description, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	err := r.pool.QueryRow(ctx, query,
		modelAcc.UserID,
		modelAcc.Name,
		modelAcc.Description,
		modelAcc.Type,
	).Scan(&modelAcc.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation on (name, user_id)
			return nil, fmt.Errorf("%w: account %q", apperrors.ErrDuplicateAccount, modelAcc.Name)
		}
		return nil, fmt.Errorf("failed to save account %q: %w", modelAcc.Name, err)
	}

	domainAcc := toDomainAccount(modelAcc)
	return &domainAcc, nil
}

// FindAccountByName retrieves an account by its user-scoped name.
func (r *PgxAccountRepository) FindAccountByName(ctx context.Context, userID int64, name string) (*domain.Account, error) {
	query := `
		SELECT id, user_id, name, description, type
		FROM account
		WHERE user_id = $1 AND name = $2;
	`
	var modelAcc models.Account
	err := r.pool.QueryRow(ctx, query, userID, name).Scan(
		&modelAcc.ID,
		&modelAcc.UserID,
		&modelAcc.Name,
		&modelAcc.Description,
		&modelAcc.Type,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrAccountNotFound, name)
		}
		return nil, fmt.Errorf("failed to find account %q: %w", name, err)
	}

	domainAcc := toDomainAccount(modelAcc)
	return &domainAcc, nil
}

// ListAccounts retrieves the user's accounts in primary-key order,
// optionally restricted to a type.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, userID int64, filter portsrepo.AccountFilter) ([]domain.Account, error) {
	query := `
		SELECT id, user_id, name, description, type
		FROM account
		WHERE user_id = $1
	`
	args := []interface{}{userID}
	if filter.Type != "" {
		query += ` AND type = $2`
		args = append(args, filter.Type)
	}
	query += ` ORDER BY id;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for user %d: %w", userID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var modelAcc models.Account
		err := rows.Scan(
			&modelAcc.ID,
			&modelAcc.UserID,
			&modelAcc.Name,
			&modelAcc.Description,
			&modelAcc.Type,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row for user %d: %w", userID, err)
		}
		accounts = append(accounts, toDomainAccount(modelAcc))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows for user %d: %w", userID, rows.Err())
	}

	return accounts, nil
}
