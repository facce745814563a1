package library

import (
	"fmt"
)

func addEpisode(q querier, e *Episode) error {
	result, err := q.Exec(`
		INSERT INTO episodes (show_id, season, episode, title, air_date, status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ShowID, e.Season, e.Episode, e.Title, e.AirDate, e.Status,
	)
	if err != nil {
		return fmt.Errorf("insert episode: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	e.ID = id
	return nil
}

// AddEpisode inserts a new episode into the database.
// Sets ID on the struct.
func (s *Store) AddEpisode(e *Episode) error { return addEpisode(s.db, e) }

// AddEpisode inserts a new episode within a transaction.
func (t *Tx) AddEpisode(e *Episode) error { return addEpisode(t.tx, e) }

func getEpisodeByNumber(q querier, showID int64, season, episode int) (*Episode, error) {
	e := &Episode{}
	err := q.QueryRow(`
		SELECT id, show_id, season, episode, title, air_date, status
		FROM episodes WHERE show_id = ? AND season = ? AND episode = ?`,
		showID, season, episode,
	).Scan(&e.ID, &e.ShowID, &e.Season, &e.Episode, &e.Title, &e.AirDate, &e.Status)
	if err != nil {
		return nil, fmt.Errorf("get episode %d/S%02dE%02d: %w", showID, season, episode, mapSQLiteError(err))
	}
	return e, nil
}

// GetEpisodeByNumber retrieves an episode by its (show, season, episode) key.
// Returns ErrNotFound if no such episode is tracked.
func (s *Store) GetEpisodeByNumber(showID int64, season, episode int) (*Episode, error) {
	return getEpisodeByNumber(s.db, showID, season, episode)
}

// GetEpisodeByNumber retrieves an episode within a transaction.
func (t *Tx) GetEpisodeByNumber(showID int64, season, episode int) (*Episode, error) {
	return getEpisodeByNumber(t.tx, showID, season, episode)
}

func setEpisodeStatus(q querier, id int64, status int) error {
	result, err := q.Exec("UPDATE episodes SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("update episode %d status: %w", id, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update episode %d status: %w", id, ErrNotFound)
	}
	return nil
}

// SetEpisodeStatus updates an episode's composite status.
// Returns ErrNotFound if the episode does not exist.
func (s *Store) SetEpisodeStatus(id int64, status int) error {
	return setEpisodeStatus(s.db, id, status)
}

// SetEpisodeStatus updates an episode's composite status within a transaction.
func (t *Tx) SetEpisodeStatus(id int64, status int) error {
	return setEpisodeStatus(t.tx, id, status)
}
