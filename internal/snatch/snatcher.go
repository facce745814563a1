// Package snatch submits replacement downloads and records them in the
// library, keeping episode status and snatch history in step with what was
// sent to the download client.
package snatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/properd/internal/library"
	"github.com/vmunix/properd/internal/proper"
)

// NZBPusher submits an NZB URL for download.
type NZBPusher interface {
	Add(ctx context.Context, nzbURL, category string) (string, error)
}

// Snatcher sends proper replacements to the download client and persists
// the resulting state change.
type Snatcher struct {
	client   NZBPusher
	store    *library.Store
	category string
	log      *slog.Logger
	now      func() time.Time
}

// New creates a Snatcher submitting to the given client under category.
func New(client NZBPusher, store *library.Store, category string, log *slog.Logger) *Snatcher {
	return &Snatcher{
		client:   client,
		store:    store,
		category: category,
		log:      log.With("component", "snatch"),
		now:      time.Now,
	}
}

// SnatchProper sends the candidate to the download client, then records the
// snatch: episode status flips to snatched-proper at the candidate's quality
// and a history entry is written. Status and history commit together.
func (s *Snatcher) SnatchProper(ctx context.Context, ep *library.Episode, c proper.Candidate) error {
	id, err := s.client.Add(ctx, c.URL, s.category)
	if err != nil {
		return fmt.Errorf("submitting nzb for %q: %w", c.Name, err)
	}
	s.log.Info("proper sent to download client", "name", c.Name, "download_id", id)

	tx, err := s.store.Begin()
	if err != nil {
		return fmt.Errorf("begin snatch record: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	status := library.CompositeStatus(library.StateSnatchedProper, c.Quality)
	if err := tx.SetEpisodeStatus(ep.ID, status); err != nil {
		return fmt.Errorf("updating episode status: %w", err)
	}
	if err := tx.AddHistory(&library.HistoryEntry{
		ShowID:   c.ShowID,
		Season:   c.Season,
		Episode:  c.Episode,
		Quality:  c.Quality,
		Action:   library.ActionSnatchedProper,
		Resource: c.Name,
		Date:     s.now(),
	}); err != nil {
		return fmt.Errorf("recording snatch history: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snatch record: %w", err)
	}
	return nil
}
