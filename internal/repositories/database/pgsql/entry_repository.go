package pgsql

import (
	"context"
	"fmt"

	"github.com/budgie-app/budgie/internal/core/domain"
	portsrepo "github.com/budgie-app/budgie/internal/core/ports/repositories"
	"github.com/budgie-app/budgie/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for entry and entry_tag data.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepository {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepository
var _ portsrepo.EntryRepository = (*PgxEntryRepository)(nil)

// SaveEntry persists the entry row and one entry_tag row per tag ID
// within a single DB transaction. Either all rows commit or none do.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry, tagIDs []int64) (*domain.Entry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Ignored if the transaction commits successfully
	defer r.Rollback(ctx, tx)

	entryQuery := `
		INSERT INTO entry (user_id, who, "when", credit_account_id, debit_account_id, amount, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, entryQuery,
		entry.UserID,
		entry.Who,
		entry.When,
		entry.CreditAccountID,
		entry.DebitAccountID,
		entry.Amount,
		entry.Description,
	).Scan(&entry.EntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert entry: %w", err)
	}

	if len(tagIDs) > 0 {
		batch := &pgx.Batch{}
		tagQuery := `
			INSERT INTO entry_tag (user_id, entry_id, tag_id)
			VALUES ($1, $2, $3)
			ON CONFLICT (entry_id, tag_id) DO NOTHING;
		`
		for _, tagID := range tagIDs {
			batch.Queue(tagQuery, entry.UserID, entry.EntryID, tagID)
		}

		br := tx.SendBatch(ctx, batch)
		// Close surfaces the first error of any command in the batch
		if err := br.Close(); err != nil {
			return nil, fmt.Errorf("failed to insert tag associations for entry %d: %w", entry.EntryID, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &entry, nil
}

// DeleteEntry removes the entry's tag associations and then the entry
// itself within one transaction. Returns false when no entry matched.
func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, userID int64, entryID int64) (bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer r.Rollback(ctx, tx)

	// Associations first: entry_tag rows reference entry.id
	_, err = tx.Exec(ctx, `DELETE FROM entry_tag WHERE entry_id = $1 AND user_id = $2;`, entryID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete tag associations for entry %d: %w", entryID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM entry WHERE id = $1 AND user_id = $2;`, entryID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete entry %d: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Nothing to delete is a normal outcome; the deferred rollback
		// discards the (empty) association delete.
		return false, nil
	}

	if err := r.Commit(ctx, tx); err != nil {
		return false, err
	}
	return true, nil
}

// ListEntries retrieves the user's entries in primary-key order, with
// credit/debit account names resolved and tag texts attached.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, userID int64, filter portsrepo.EntryFilter) ([]domain.Entry, error) {
	query := `
		SELECT e.id, e.user_id, e.who, e."when", e.credit_account_id, ca.name, e.debit_account_id, da.name, e.amount, e.description
		FROM entry e
		JOIN account ca ON e.credit_account_id = ca.id
		JOIN account da ON e.debit_account_id = da.id
		WHERE e.user_id = $1
	`
	args := []interface{}{userID}
	if filter.DebitAccountName != "" {
		args = append(args, filter.DebitAccountName)
		query += fmt.Sprintf(` AND da.name = $%d`, len(args))
	}
	if filter.CreditAccountName != "" {
		args = append(args, filter.CreditAccountName)
		query += fmt.Sprintf(` AND ca.name = $%d`, len(args))
	}
	query += ` ORDER BY e.id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for user %d: %w", userID, err)
	}
	defer rows.Close()

	modelEntries := []models.Entry{}
	for rows.Next() {
		var m models.Entry
		err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.Who,
			&m.When,
			&m.CreditAccountID,
			&m.CreditAccountName,
			&m.DebitAccountID,
			&m.DebitAccountName,
			&m.Amount,
			&m.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row for user %d: %w", userID, err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows for user %d: %w", userID, err)
	}

	entryIDs := make([]int64, len(modelEntries))
	for i, m := range modelEntries {
		entryIDs[i] = m.ID
	}

	tagsByEntry, err := r.findTagTextsByEntryIDs(ctx, entryIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.Entry, len(modelEntries))
	for i, m := range modelEntries {
		entries[i] = domain.Entry{
			EntryID:           m.ID,
			UserID:            m.UserID,
			Who:               m.Who,
			When:              m.When,
			CreditAccountID:   m.CreditAccountID,
			CreditAccountName: m.CreditAccountName,
			DebitAccountID:    m.DebitAccountID,
			DebitAccountName:  m.DebitAccountName,
			Amount:            m.Amount,
			Description:       m.Description,
			Tags:              tagsByEntry[m.ID],
		}
	}

	return entries, nil
}

// findTagTextsByEntryIDs retrieves tag texts for a batch of entries.
// Entries without tags get an empty slice, not a missing key.
func (r *PgxEntryRepository) findTagTextsByEntryIDs(ctx context.Context, entryIDs []int64) (map[int64][]string, error) {
	tagsByEntry := make(map[int64][]string, len(entryIDs))
	for _, id := range entryIDs {
		tagsByEntry[id] = []string{}
	}
	if len(entryIDs) == 0 {
		return tagsByEntry, nil
	}

	query := `
		SELECT et.entry_id, t.tag
		FROM entry_tag et
		JOIN tag t ON et.tag_id = t.id
		WHERE et.entry_id = ANY($1)
		ORDER BY et.id;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags for entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entryID int64
		var text string
		if err := rows.Scan(&entryID, &text); err != nil {
			return nil, fmt.Errorf("failed to scan entry tag row: %w", err)
		}
		tagsByEntry[entryID] = append(tagsByEntry[entryID], text)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry tag rows: %w", err)
	}

	return tagsByEntry, nil
}

// AccountBalance computes the debit-positive net of all entries
// touching the account. Empty sums coalesce to zero.
func (r *PgxEntryRepository) AccountBalance(ctx context.Context, userID int64, accountID int64) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount) FILTER (WHERE debit_account_id = $2), 0)
		     - COALESCE(SUM(amount) FILTER (WHERE credit_account_id = $2), 0)
		FROM entry
		WHERE user_id = $1;
	`
	var balance decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, userID, accountID).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute balance for account %d: %w", accountID, err)
	}
	return balance, nil
}
