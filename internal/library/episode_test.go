package library

import (
	"errors"
	"testing"

	"github.com/vmunix/properd/pkg/release"
)

func TestStore_AddEpisode_GetByNumber(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	sh := addTestShow(t, store)

	e := &Episode{
		ShowID:  sh.ID,
		Season:  1,
		Episode: 2,
		Title:   "Second",
		Status:  CompositeStatus(StateDownloaded, release.QualityHDTV),
	}
	if err := store.AddEpisode(e); err != nil {
		t.Fatalf("AddEpisode: %v", err)
	}
	if e.ID == 0 {
		t.Error("ID should be set after AddEpisode")
	}

	got, err := store.GetEpisodeByNumber(sh.ID, 1, 2)
	if err != nil {
		t.Fatalf("GetEpisodeByNumber: %v", err)
	}
	state, quality := SplitCompositeStatus(got.Status)
	if state != StateDownloaded || quality != release.QualityHDTV {
		t.Errorf("status = (%v, %v), want (downloaded, 720p hdtv)", state, quality)
	}
}

func TestStore_GetEpisodeByNumber_NotFound(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	sh := addTestShow(t, store)

	_, err := store.GetEpisodeByNumber(sh.ID, 9, 9)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_AddEpisode_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	sh := addTestShow(t, store)

	e1 := &Episode{ShowID: sh.ID, Season: 1, Episode: 1}
	if err := store.AddEpisode(e1); err != nil {
		t.Fatalf("AddEpisode first: %v", err)
	}

	e2 := &Episode{ShowID: sh.ID, Season: 1, Episode: 1}
	err := store.AddEpisode(e2)
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestStore_SetEpisodeStatus(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	sh := addTestShow(t, store)

	e := &Episode{ShowID: sh.ID, Season: 1, Episode: 1}
	if err := store.AddEpisode(e); err != nil {
		t.Fatalf("AddEpisode: %v", err)
	}

	status := CompositeStatus(StateSnatchedProper, release.QualityHDTV)
	if err := store.SetEpisodeStatus(e.ID, status); err != nil {
		t.Fatalf("SetEpisodeStatus: %v", err)
	}

	got, err := store.GetEpisodeByNumber(sh.ID, 1, 1)
	if err != nil {
		t.Fatalf("GetEpisodeByNumber: %v", err)
	}
	if got.Status != status {
		t.Errorf("status = %d, want %d", got.Status, status)
	}
}

func TestStore_SetEpisodeStatus_NotFound(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	err := store.SetEpisodeStatus(123, 0)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTx_StatusAndHistoryTogether(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	sh := addTestShow(t, store)

	e := &Episode{ShowID: sh.ID, Season: 3, Episode: 4}
	if err := store.AddEpisode(e); err != nil {
		t.Fatalf("AddEpisode: %v", err)
	}

	tx, err := store.Begin()
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := tx.SetEpisodeStatus(e.ID, CompositeStatus(StateSnatchedProper, release.QualityHDTV)); err != nil {
		t.Fatalf("tx SetEpisodeStatus: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}

	got, err := store.GetEpisodeByNumber(sh.ID, 3, 4)
	if err != nil {
		t.Fatalf("GetEpisodeByNumber: %v", err)
	}
	if got.Status != 0 {
		t.Errorf("status = %d after rollback, want 0", got.Status)
	}
}
