package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/akhhatar/e-voting-project/domain"
)

// AdminServiceImpl implements domain.AdminService. The gate is a single
// shared static password; there is no per-admin identity, no lockout and no
// rate limiting. Same for the results code. Both are exact-match,
// case-sensitive, untrimmed comparisons.
type AdminServiceImpl struct {
	store         domain.ElectionStore
	sessionRepo   domain.SessionRepository
	tokenSvc      domain.TokenService
	notifier      domain.NotificationService
	adminPassword string
	resultsCode   string
	sessionTTL    time.Duration
}

// NewAdminService creates a new admin service
func NewAdminService(
	store domain.ElectionStore,
	sessionRepo domain.SessionRepository,
	tokenSvc domain.TokenService,
	notifier domain.NotificationService,
	adminPassword, resultsCode string,
	sessionTTL time.Duration,
) domain.AdminService {
	return &AdminServiceImpl{
		store:         store,
		sessionRepo:   sessionRepo,
		tokenSvc:      tokenSvc,
		notifier:      notifier,
		adminPassword: adminPassword,
		resultsCode:   resultsCode,
		sessionTTL:    sessionTTL,
	}
}

// Login implements domain.AdminService
func (s *AdminServiceImpl) Login(ctx context.Context, password string) (*domain.AuthResult, error) {
	if password != s.adminPassword {
		return nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		ID:        fmt.Sprintf("sess_admin_%d", time.Now().UnixNano()),
		Subject:   domain.AdminSubject,
		Role:      domain.RoleAdmin,
		ExpiresAt: time.Now().Add(s.sessionTTL),
		CreatedAt: time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.tokenSvc.GenerateAccessToken(domain.AdminSubject, domain.RoleAdmin, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.AuthResult{
		AccessToken: token,
		SessionID:   session.ID,
		ExpiresIn:   int64(s.sessionTTL.Seconds()),
	}, nil
}

// AddParty implements domain.AdminService
func (s *AdminServiceImpl) AddParty(ctx context.Context, name string) (*domain.Party, error) {
	if name == "" {
		return nil, domain.ErrValidationFailed
	}

	parties, err := s.store.GetParties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read parties: %w", err)
	}

	party := domain.Party{
		ID:   "party_" + uuid.NewString(),
		Name: name,
	}
	parties = append(parties, party)
	if err := s.store.PutParties(ctx, parties); err != nil {
		return nil, fmt.Errorf("failed to write parties: %w", err)
	}
	return &party, nil
}

// AddCandidate implements domain.AdminService. The party id is only checked
// for presence; a reference that later dangles renders as "Independent".
func (s *AdminServiceImpl) AddCandidate(ctx context.Context, name, partyID string) (*domain.Candidate, error) {
	if name == "" || partyID == "" {
		return nil, domain.ErrValidationFailed
	}

	candidates, err := s.store.GetCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}

	candidate := domain.Candidate{
		ID:      "cand_" + uuid.NewString(),
		Name:    name,
		PartyID: partyID,
		Votes:   0,
	}
	candidates = append(candidates, candidate)
	if err := s.store.PutCandidates(ctx, candidates); err != nil {
		return nil, fmt.Errorf("failed to write candidates: %w", err)
	}
	return &candidate, nil
}

// PendingVoters implements domain.AdminService. The users collection is a
// JSON object with no meaningful order, so pending voters are sorted by
// voter id for stable output.
func (s *AdminServiceImpl) PendingVoters(ctx context.Context) ([]*domain.Voter, error) {
	users, err := s.store.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	var pending []*domain.Voter
	for _, voter := range users {
		if !voter.Approved {
			pending = append(pending, voter)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].VoterID < pending[j].VoterID
	})
	return pending, nil
}

// ApproveVoter implements domain.AdminService. Idempotent: re-approving an
// approved voter succeeds without a second notification.
func (s *AdminServiceImpl) ApproveVoter(ctx context.Context, voterID string) error {
	users, err := s.store.GetUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to read users: %w", err)
	}
	voter, ok := users[voterID]
	if !ok {
		return domain.ErrVoterNotFound
	}

	alreadyApproved := voter.Approved
	voter.Approved = true
	if err := s.store.PutUsers(ctx, users); err != nil {
		return fmt.Errorf("failed to write users: %w", err)
	}

	if !alreadyApproved && s.notifier != nil && voter.Number != "" {
		message := fmt.Sprintf("Hi %s, your voter registration %s has been approved. You can now log in and vote.", voter.FirstName, voterID)
		if err := s.notifier.SendSMS(voter.Number, message); err != nil {
			// Approval stands even when the notification does not go out.
			log.Printf("approval SMS to %s failed: %v", voterID, err)
		}
	}
	return nil
}

// Results implements domain.AdminService. The code gates the view only; it
// is not an access-control boundary on the underlying data. Sorting is
// stable: equal tallies keep their stored relative order.
func (s *AdminServiceImpl) Results(ctx context.Context, code string) ([]domain.ResultRow, error) {
	if code != s.resultsCode {
		return nil, domain.ErrInvalidResultsCode
	}

	candidates, err := s.store.GetCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	parties, err := s.store.GetParties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read parties: %w", err)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Votes > candidates[j].Votes
	})

	names := partyNames(parties)
	rows := make([]domain.ResultRow, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, domain.ResultRow{
			CandidateID: c.ID,
			Name:        c.Name,
			Party:       partyLabel(names, c.PartyID),
			Votes:       c.Votes,
		})
	}
	return rows, nil
}
