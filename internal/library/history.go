package library

import (
	"fmt"
	"strings"
	"time"

	"github.com/vmunix/properd/pkg/release"
)

// HistoryFilter specifies criteria for querying history entries.
type HistoryFilter struct {
	ShowID  int64
	Season  int
	Episode int
	Quality *release.Quality
	Since   *time.Time
	Actions []string // empty = any action kind
}

func addHistory(q querier, h *HistoryEntry) error {
	result, err := q.Exec(`
		INSERT INTO history (show_id, season, episode, quality, action, resource, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		h.ShowID, h.Season, h.Episode, int(h.Quality), h.Action, h.Resource, h.Date,
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	h.ID = id
	return nil
}

// AddHistory inserts a new history entry. Sets ID on the struct.
func (s *Store) AddHistory(h *HistoryEntry) error { return addHistory(s.db, h) }

// AddHistory inserts a new history entry within a transaction.
func (t *Tx) AddHistory(h *HistoryEntry) error { return addHistory(t.tx, h) }

// ListHistory returns history entries matching the filter, most recent first.
func (s *Store) ListHistory(f HistoryFilter) ([]*HistoryEntry, error) {
	conditions := []string{"show_id = ?", "season = ?", "episode = ?"}
	args := []any{f.ShowID, f.Season, f.Episode}

	if f.Quality != nil {
		conditions = append(conditions, "quality = ?")
		args = append(args, int(*f.Quality))
	}
	if f.Since != nil {
		conditions = append(conditions, "date >= ?")
		args = append(args, *f.Since)
	}
	if len(f.Actions) > 0 {
		placeholders := make([]string, len(f.Actions))
		for i, a := range f.Actions {
			placeholders[i] = "?"
			args = append(args, a)
		}
		conditions = append(conditions, "action IN ("+strings.Join(placeholders, ",")+")")
	}

	query := `SELECT id, show_id, season, episode, quality, action, resource, date
		FROM history WHERE ` + strings.Join(conditions, " AND ") + ` ORDER BY date DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*HistoryEntry
	for rows.Next() {
		h := &HistoryEntry{}
		var quality int
		if err := rows.Scan(&h.ID, &h.ShowID, &h.Season, &h.Episode, &quality, &h.Action, &h.Resource, &h.Date); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		h.Quality = release.Quality(quality)
		results = append(results, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return results, nil
}
