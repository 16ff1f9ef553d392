package services

import (
	"context"
	"testing"
	"time"

	"github.com/akhhatar/e-voting-project/domain"
	"github.com/akhhatar/e-voting-project/internal/infrastructure/storage"
	"github.com/akhhatar/e-voting-project/internal/mocks"
)

func newTestAdminService(store domain.ElectionStore, notifier domain.NotificationService) domain.AdminService {
	return NewAdminService(
		store,
		mocks.NewMockSessionRepository(),
		mocks.NewMockTokenService(),
		notifier,
		"admin",
		"1234",
		time.Hour,
	)
}

func TestAdminService_Login(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		expectedError error
	}{
		{"correct password", "admin", nil},
		{"wrong password", "Admin", domain.ErrInvalidCredentials},
		{"trailing space rejected", "admin ", domain.ErrInvalidCredentials},
		{"empty password", "", domain.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAdminService(storage.NewMemoryStore(), nil)
			result, err := svc.Login(context.Background(), tt.password)

			if tt.expectedError != nil {
				if err != tt.expectedError {
					t.Fatalf("expected %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			if result.AccessToken == "" || result.SessionID == "" {
				t.Errorf("incomplete auth result: %+v", result)
			}
			if result.Voter != nil {
				t.Error("admin auth result must not carry a voter record")
			}
		})
	}
}

func TestAdminService_AddParty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := newTestAdminService(store, nil)

	party, err := svc.AddParty(ctx, "Unity Party")
	if err != nil {
		t.Fatalf("AddParty: %v", err)
	}
	if party.ID == "" || party.Name != "Unity Party" {
		t.Errorf("party = %+v", party)
	}

	// Duplicate names are allowed; each gets its own id.
	second, err := svc.AddParty(ctx, "Unity Party")
	if err != nil {
		t.Fatalf("second AddParty: %v", err)
	}
	if second.ID == party.ID {
		t.Error("party ids must be unique")
	}

	parties, _ := store.GetParties(ctx)
	if len(parties) != 2 {
		t.Fatalf("expected 2 parties, got %d", len(parties))
	}

	if _, err := svc.AddParty(ctx, ""); err != domain.ErrValidationFailed {
		t.Errorf("expected ErrValidationFailed, got %v", err)
	}
}

func TestAdminService_AddCandidate(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := newTestAdminService(store, nil)

	candidate, err := svc.AddCandidate(ctx, "Alice", "party_1")
	if err != nil {
		t.Fatalf("AddCandidate: %v", err)
	}
	if candidate.Votes != 0 {
		t.Errorf("new candidate tally = %d, want 0", candidate.Votes)
	}
	if candidate.PartyID != "party_1" {
		t.Errorf("candidate = %+v", candidate)
	}

	if _, err := svc.AddCandidate(ctx, "", "party_1"); err != domain.ErrValidationFailed {
		t.Errorf("empty name: expected ErrValidationFailed, got %v", err)
	}
	if _, err := svc.AddCandidate(ctx, "Bob", ""); err != domain.ErrValidationFailed {
		t.Errorf("empty party: expected ErrValidationFailed, got %v", err)
	}

	candidates, _ := store.GetCandidates(ctx)
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
}

func TestAdminService_PendingVoters(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	store.PutUsers(ctx, map[string]*domain.Voter{
		"VOT3": {VoterID: "VOT3", FirstName: "Meena"},
		"VOT1": {VoterID: "VOT1", FirstName: "Asha", Approved: true},
		"VOT2": {VoterID: "VOT2", FirstName: "Ravi"},
	})
	svc := newTestAdminService(store, nil)

	pending, err := svc.PendingVoters(ctx)
	if err != nil {
		t.Fatalf("PendingVoters: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending voters, got %d", len(pending))
	}
	if pending[0].VoterID != "VOT2" || pending[1].VoterID != "VOT3" {
		t.Errorf("pending list not sorted by voter id: %v, %v", pending[0].VoterID, pending[1].VoterID)
	}
}

func TestAdminService_ApproveVoter(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	store.PutUsers(ctx, map[string]*domain.Voter{
		"VOT1": {VoterID: "VOT1", FirstName: "Asha", Number: "+911234567890"},
	})
	notifier := mocks.NewMockNotificationService()
	svc := newTestAdminService(store, notifier)

	if err := svc.ApproveVoter(ctx, "VOT1"); err != nil {
		t.Fatalf("ApproveVoter: %v", err)
	}
	users, _ := store.GetUsers(ctx)
	if !users["VOT1"].Approved {
		t.Error("voter not approved")
	}
	if len(notifier.SentSMS) != 1 {
		t.Fatalf("expected 1 SMS, got %d", len(notifier.SentSMS))
	}
	if notifier.SentSMS[0].To != "+911234567890" {
		t.Errorf("SMS to %q", notifier.SentSMS[0].To)
	}

	// Re-approving succeeds and stays quiet.
	if err := svc.ApproveVoter(ctx, "VOT1"); err != nil {
		t.Fatalf("second ApproveVoter: %v", err)
	}
	if len(notifier.SentSMS) != 1 {
		t.Errorf("re-approval sent another SMS, total %d", len(notifier.SentSMS))
	}

	if err := svc.ApproveVoter(ctx, "VOT999"); err != domain.ErrVoterNotFound {
		t.Errorf("expected ErrVoterNotFound, got %v", err)
	}
}

func TestAdminService_Results(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	store.PutParties(ctx, []domain.Party{{ID: "party_1", Name: "Unity Party"}})
	store.PutCandidates(ctx, []domain.Candidate{
		{ID: "cand_a", Name: "Alice", PartyID: "party_1", Votes: 3},
		{ID: "cand_b", Name: "Bob", PartyID: "party_1", Votes: 5},
		{ID: "cand_c", Name: "Carol", PartyID: "party_gone", Votes: 5},
		{ID: "cand_d", Name: "Dev", PartyID: "party_1", Votes: 1},
	})
	svc := newTestAdminService(store, nil)

	if _, err := svc.Results(ctx, "0000"); err != domain.ErrInvalidResultsCode {
		t.Fatalf("expected ErrInvalidResultsCode, got %v", err)
	}

	rows, err := svc.Results(ctx, "1234")
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	got := make([]string, len(rows))
	for i, r := range rows {
		got[i] = r.CandidateID
	}
	// Descending by tally; Bob and Carol tie and keep stored order.
	want := []string{"cand_b", "cand_c", "cand_a", "cand_d"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("result order = %v, want %v", got, want)
		}
	}
	if rows[1].Party != "Independent" {
		t.Errorf("dangling party reference should render Independent, got %q", rows[1].Party)
	}
}
