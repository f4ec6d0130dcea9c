package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/daybook-app/daybook-backend/internal/models"
)

const journalColumns = `id, user_id, title, content, category, created_date, due_date, date_of_update, archive`

// CreateJournal inserts a journal entry and returns it with the assigned ID.
func (s *Store) CreateJournal(ctx context.Context, journal models.Journal) (models.Journal, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO journals (user_id, title, content, category, created_date, due_date, date_of_update, archive)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, journal.UserID, journal.Title, journal.Content, journal.Category,
		journal.CreatedDate, journal.DueDate, journal.DateOfUpdate, journal.Archive,
	).Scan(&journal.ID)
	if err != nil {
		return models.Journal{}, mapError(err)
	}
	return journal, nil
}

// ListJournals returns the owner's entries ordered by ID, with offset
// pagination. A limit of 0 or less means no limit.
func (s *Store) ListJournals(ctx context.Context, ownerID int64, skip, limit int) ([]models.Journal, error) {
	var lim interface{} = limit
	if limit <= 0 {
		lim = nil // LIMIT NULL means no limit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+journalColumns+`
		FROM journals WHERE user_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`, ownerID, lim, skip)
	if err != nil {
		return nil, err
	}
	return scanJournals(rows)
}

// ListJournalsSince returns the owner's entries created on or after the
// given date, ordered by ID.
func (s *Store) ListJournalsSince(ctx context.Context, ownerID int64, from models.Date) ([]models.Journal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+journalColumns+`
		FROM journals WHERE user_id = $1 AND created_date >= $2
		ORDER BY id
	`, ownerID, from)
	if err != nil {
		return nil, err
	}
	return scanJournals(rows)
}

// ListJournalsForMonth returns the owner's entries created in the given
// calendar month, ordered by ID.
func (s *Store) ListJournalsForMonth(ctx context.Context, ownerID int64, year int, month time.Month) ([]models.Journal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+journalColumns+`
		FROM journals
		WHERE user_id = $1
		  AND EXTRACT(YEAR FROM created_date) = $2
		  AND EXTRACT(MONTH FROM created_date) = $3
		ORDER BY id
	`, ownerID, year, int(month))
	if err != nil {
		return nil, err
	}
	return scanJournals(rows)
}

// UpdateJournal replaces the entry's fields. The WHERE clause carries both
// the entry ID and the owner ID, so an entry owned by another user is
// indistinguishable from a missing one: both return ErrNotFound.
func (s *Store) UpdateJournal(ctx context.Context, journal models.Journal) (models.Journal, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE journals
		SET title = $1, content = $2, category = $3, created_date = $4,
		    due_date = $5, date_of_update = $6, archive = $7
		WHERE id = $8 AND user_id = $9
	`, journal.Title, journal.Content, journal.Category, journal.CreatedDate,
		journal.DueDate, journal.DateOfUpdate, journal.Archive,
		journal.ID, journal.UserID)
	if err != nil {
		return models.Journal{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Journal{}, err
	}
	if affected == 0 {
		return models.Journal{}, ErrNotFound
	}
	return journal, nil
}

// DeleteJournal removes the entry when it belongs to the owner.
func (s *Store) DeleteJournal(ctx context.Context, id, ownerID int64) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM journals WHERE id = $1 AND user_id = $2
	`, id, ownerID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanJournals(rows *sql.Rows) ([]models.Journal, error) {
	defer rows.Close()

	journals := make([]models.Journal, 0)
	for rows.Next() {
		var j models.Journal
		if err := rows.Scan(&j.ID, &j.UserID, &j.Title, &j.Content, &j.Category,
			&j.CreatedDate, &j.DueDate, &j.DateOfUpdate, &j.Archive); err != nil {
			return nil, err
		}
		journals = append(journals, j)
	}
	return journals, rows.Err()
}
