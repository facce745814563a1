package library

import (
	"fmt"
	"time"
)

// AddShow inserts a new show and its scene names.
// Sets ID and AddedAt on the struct.
func (s *Store) AddShow(sh *Show) error {
	now := time.Now()
	result, err := s.db.Exec(`
		INSERT INTO shows (tvdb_id, title, language, added_at)
		VALUES (?, ?, ?, ?)`,
		sh.TVDBID, sh.Title, sh.Language, now,
	)
	if err != nil {
		return fmt.Errorf("insert show: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	sh.ID = id
	sh.AddedAt = now

	for i, name := range sh.SceneNames {
		if _, err := s.db.Exec(`
			INSERT INTO scene_names (show_id, name, position)
			VALUES (?, ?, ?)`, sh.ID, name, i,
		); err != nil {
			return fmt.Errorf("insert scene name %q: %w", name, mapSQLiteError(err))
		}
	}
	return nil
}

// GetShow retrieves a show by ID, scene names included.
// Returns ErrNotFound if the show does not exist.
func (s *Store) GetShow(id int64) (*Show, error) {
	sh := &Show{}
	err := s.db.QueryRow(`
		SELECT id, tvdb_id, title, language, added_at
		FROM shows WHERE id = ?`, id,
	).Scan(&sh.ID, &sh.TVDBID, &sh.Title, &sh.Language, &sh.AddedAt)
	if err != nil {
		return nil, fmt.Errorf("get show %d: %w", id, mapSQLiteError(err))
	}
	if err := s.loadSceneNames(sh); err != nil {
		return nil, err
	}
	return sh, nil
}

// ListShows returns all shows ordered by ID, scene names included.
// The ordering is what makes first-match-wins resolution reproducible.
func (s *Store) ListShows() ([]*Show, error) {
	rows, err := s.db.Query(`
		SELECT id, tvdb_id, title, language, added_at
		FROM shows ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Show
	for rows.Next() {
		sh := &Show{}
		if err := rows.Scan(&sh.ID, &sh.TVDBID, &sh.Title, &sh.Language, &sh.AddedAt); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		results = append(results, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shows: %w", err)
	}

	for _, sh := range results {
		if err := s.loadSceneNames(sh); err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (s *Store) loadSceneNames(sh *Show) error {
	rows, err := s.db.Query(`
		SELECT name FROM scene_names
		WHERE show_id = ? ORDER BY position`, sh.ID)
	if err != nil {
		return fmt.Errorf("list scene names for show %d: %w", sh.ID, err)
	}
	defer func() { _ = rows.Close() }()

	sh.SceneNames = nil
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("scan scene name: %w", err)
		}
		sh.SceneNames = append(sh.SceneNames, name)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate scene names: %w", err)
	}
	return nil
}
