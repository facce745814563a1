package library

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// LastProperSearch returns the date of the last completed proper search.
// Returns the zero time when no search has ever completed.
func (s *Store) LastProperSearch() (time.Time, error) {
	var last sql.NullTime
	err := s.db.QueryRow("SELECT last_proper_search FROM info WHERE id = 1").Scan(&last)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("get last proper search: %w", err)
	}
	if !last.Valid {
		return time.Time{}, nil
	}
	return last.Time, nil
}

// SetLastProperSearch records when a proper search last completed.
// Inserts the info row if it does not exist yet, else updates in place.
func (s *Store) SetLastProperSearch(when time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO info (id, last_proper_search) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET last_proper_search = excluded.last_proper_search`,
		when,
	)
	if err != nil {
		return fmt.Errorf("set last proper search: %w", err)
	}
	return nil
}
