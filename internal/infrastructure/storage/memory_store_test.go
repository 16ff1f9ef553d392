package storage

import (
	"context"
	"testing"

	"github.com/akhhatar/e-voting-project/domain"
)

func TestMemoryStore_InitSeedsOnce(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}

	users, err := store.GetUsers(ctx)
	if err != nil {
		t.Fatalf("GetUsers: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected empty users map, got %d entries", len(users))
	}

	users["V001"] = &domain.Voter{VoterID: "V001", FirstName: "Asha"}
	if err := store.PutUsers(ctx, users); err != nil {
		t.Fatalf("PutUsers: %v", err)
	}

	// A second Init must not wipe existing data.
	if err := store.Init(ctx); err != nil {
		t.Fatalf("second Init: %v", err)
	}
	users, err = store.GetUsers(ctx)
	if err != nil {
		t.Fatalf("GetUsers after re-init: %v", err)
	}
	if _, ok := users["V001"]; !ok {
		t.Error("re-init dropped the stored voter")
	}
}

func TestMemoryStore_GetOfUnseededKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	users, err := store.GetUsers(ctx)
	if err != nil {
		t.Fatalf("GetUsers: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Errorf("expected empty map for absent key, got %#v", users)
	}

	parties, err := store.GetParties(ctx)
	if err != nil {
		t.Fatalf("GetParties: %v", err)
	}
	if parties != nil {
		t.Errorf("expected nil slice for absent key, got %#v", parties)
	}
}

func TestMemoryStore_NoSharedReferences(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.PutCandidates(ctx, []domain.Candidate{
		{ID: "cand_1", Name: "First", Votes: 3},
	}); err != nil {
		t.Fatalf("PutCandidates: %v", err)
	}

	first, err := store.GetCandidates(ctx)
	if err != nil {
		t.Fatalf("GetCandidates: %v", err)
	}
	first[0].Votes = 99

	second, err := store.GetCandidates(ctx)
	if err != nil {
		t.Fatalf("GetCandidates: %v", err)
	}
	if second[0].Votes != 3 {
		t.Errorf("store leaked a live reference: tally is %d, want 3", second[0].Votes)
	}
}

func TestMemoryStore_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.PutParties(ctx, []domain.Party{{ID: "party_1", Name: "Alpha"}}); err != nil {
		t.Fatalf("PutParties: %v", err)
	}
	if err := store.PutParties(ctx, []domain.Party{{ID: "party_2", Name: "Beta"}}); err != nil {
		t.Fatalf("PutParties: %v", err)
	}

	parties, err := store.GetParties(ctx)
	if err != nil {
		t.Fatalf("GetParties: %v", err)
	}
	if len(parties) != 1 || parties[0].ID != "party_2" {
		t.Errorf("expected only the second write to survive, got %#v", parties)
	}
}
