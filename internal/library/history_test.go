package library

import (
	"testing"
	"time"

	"github.com/vmunix/properd/pkg/release"
)

func addHistoryEntry(t *testing.T, store *Store, showID int64, action, resource string, age time.Duration) {
	t.Helper()
	h := &HistoryEntry{
		ShowID:   showID,
		Season:   1,
		Episode:  2,
		Quality:  release.QualityHDTV,
		Action:   action,
		Resource: resource,
		Date:     time.Now().Add(-age),
	}
	if err := store.AddHistory(h); err != nil {
		t.Fatalf("AddHistory: %v", err)
	}
}

func TestStore_ListHistory_Filters(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	sh := addTestShow(t, store)

	addHistoryEntry(t, store, sh.ID, ActionSnatched, "Show.Name.S01E02.720p.HDTV.x264-OLD", 24*time.Hour)
	addHistoryEntry(t, store, sh.ID, ActionDownloaded, "Show.Name.S01E02.720p.HDTV.x264-OLD", 23*time.Hour)
	addHistoryEntry(t, store, sh.ID, ActionSnatched, "Show.Name.S01E02.720p.HDTV.x264-ANCIENT", 45*24*time.Hour)

	since := time.Now().Add(-30 * 24 * time.Hour)
	quality := release.QualityHDTV
	entries, err := store.ListHistory(HistoryFilter{
		ShowID:  sh.ID,
		Season:  1,
		Episode: 2,
		Quality: &quality,
		Since:   &since,
		Actions: SnatchActions,
	})
	if err != nil {
		t.Fatalf("ListHistory: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1 (downloaded kind and aged-out row excluded)", len(entries))
	}
	if entries[0].Resource != "Show.Name.S01E02.720p.HDTV.x264-OLD" {
		t.Errorf("Resource = %q", entries[0].Resource)
	}
	if entries[0].Quality != release.QualityHDTV {
		t.Errorf("Quality = %v, want 720p hdtv", entries[0].Quality)
	}
}

func TestStore_ListHistory_QualityMismatch(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	sh := addTestShow(t, store)

	addHistoryEntry(t, store, sh.ID, ActionSnatched, "Show.Name.S01E02.720p.HDTV.x264-OLD", time.Hour)

	quality := release.QualityFullHDWEB
	entries, err := store.ListHistory(HistoryFilter{
		ShowID:  sh.ID,
		Season:  1,
		Episode: 2,
		Quality: &quality,
		Actions: SnatchActions,
	})
	if err != nil {
		t.Fatalf("ListHistory: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0 for different quality", len(entries))
	}
}
