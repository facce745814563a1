package library

import (
	"testing"
	"time"
)

func TestStore_LastProperSearch_Empty(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	last, err := store.LastProperSearch()
	if err != nil {
		t.Fatalf("LastProperSearch: %v", err)
	}
	if !last.IsZero() {
		t.Errorf("expected zero time with no marker, got %v", last)
	}
}

func TestStore_SetLastProperSearch_Upsert(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	first := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if err := store.SetLastProperSearch(first); err != nil {
		t.Fatalf("SetLastProperSearch insert: %v", err)
	}

	got, err := store.LastProperSearch()
	if err != nil {
		t.Fatalf("LastProperSearch: %v", err)
	}
	if !got.Equal(first) {
		t.Errorf("marker = %v, want %v", got, first)
	}

	second := first.AddDate(0, 0, 1)
	if err := store.SetLastProperSearch(second); err != nil {
		t.Fatalf("SetLastProperSearch update: %v", err)
	}

	got, err = store.LastProperSearch()
	if err != nil {
		t.Fatalf("LastProperSearch: %v", err)
	}
	if !got.Equal(second) {
		t.Errorf("marker = %v, want %v after update", got, second)
	}
}
