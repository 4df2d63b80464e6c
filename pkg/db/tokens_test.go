package db

import (
	"testing"

	"github.com/textkit/freqdist/pkg/freqdist"
)

func TestSaveAndGetTokenCounts(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	sessionID, err := db.CreateSession(1, "")
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	dist := freqdist.FromPairs([]freqdist.Pair[string]{
		{Key: "learning", Count: 10},
		{Key: "model", Count: 7},
		{Key: "skipped", Count: 0},
	})

	if err := db.SaveTokenCounts(sessionID, dist); err != nil {
		t.Fatalf("SaveTokenCounts() error = %v", err)
	}

	loaded, err := db.GetTokenCounts(sessionID)
	if err != nil {
		t.Fatalf("GetTokenCounts() error = %v", err)
	}

	if got := loaded.Get("learning"); got != 10 {
		t.Errorf("Get(learning) = %d, want 10", got)
	}
	if got := loaded.Get("model"); got != 7 {
		t.Errorf("Get(model) = %d, want 7", got)
	}
	// Zero-count entries are not persisted.
	if got := loaded.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if got := loaded.SumCounts(); got != 17 {
		t.Errorf("SumCounts() = %d, want 17", got)
	}
}

func TestSaveTokenCountsOverwrites(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	sessionID, err := db.CreateSession(1, "")
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	first := freqdist.FromPairs([]freqdist.Pair[string]{{Key: "alpha", Count: 1}})
	if err := db.SaveTokenCounts(sessionID, first); err != nil {
		t.Fatalf("SaveTokenCounts() error = %v", err)
	}

	second := freqdist.FromPairs([]freqdist.Pair[string]{{Key: "alpha", Count: 5}})
	if err := db.SaveTokenCounts(sessionID, second); err != nil {
		t.Fatalf("SaveTokenCounts() second call error = %v", err)
	}

	loaded, err := db.GetTokenCounts(sessionID)
	if err != nil {
		t.Fatalf("GetTokenCounts() error = %v", err)
	}
	if got := loaded.Get("alpha"); got != 5 {
		t.Errorf("Get(alpha) = %d, want 5", got)
	}
}

func TestTopTokens(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	sessionID, err := db.CreateSession(1, "")
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	dist := freqdist.FromPairs([]freqdist.Pair[string]{
		{Key: "learning", Count: 10},
		{Key: "data", Count: 7},
		{Key: "model", Count: 7},
		{Key: "train", Count: 2},
	})
	if err := db.SaveTokenCounts(sessionID, dist); err != nil {
		t.Fatalf("SaveTokenCounts() error = %v", err)
	}

	top, err := db.TopTokens(sessionID, 3)
	if err != nil {
		t.Fatalf("TopTokens() error = %v", err)
	}

	want := []TokenCount{
		{Token: "learning", Count: 10},
		{Token: "data", Count: 7},
		{Token: "model", Count: 7},
	}
	if len(top) != len(want) {
		t.Fatalf("TopTokens() returned %d tokens, want %d", len(top), len(want))
	}
	for i := range want {
		if top[i] != want[i] {
			t.Errorf("top[%d] = %v, want %v", i, top[i], want[i])
		}
	}
}

func TestGetTokenCountsEmptySession(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	sessionID, err := db.CreateSession(1, "")
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	loaded, err := db.GetTokenCounts(sessionID)
	if err != nil {
		t.Fatalf("GetTokenCounts() error = %v", err)
	}
	if got := loaded.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}
