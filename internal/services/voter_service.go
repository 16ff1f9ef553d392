package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/akhhatar/e-voting-project/domain"
)

// challengeSize is the number of random bytes handed to every ceremony.
// The challenge is fabricated locally and never checked by anyone; it exists
// because the ceremony API wants one.
const challengeSize = 32

// newChallenge returns a fresh random ceremony challenge.
func newChallenge() ([]byte, error) {
	challenge := make([]byte, challengeSize)
	if _, err := rand.Read(challenge); err != nil {
		return nil, fmt.Errorf("failed to generate challenge: %w", err)
	}
	return challenge, nil
}

// VoterServiceImpl implements domain.VoterService
type VoterServiceImpl struct {
	store       domain.ElectionStore
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	ceremony    domain.CredentialCeremony
	rpName      string
	sessionTTL  time.Duration
}

// NewVoterService creates a new voter service. ceremony may be nil when the
// platform offers no authenticator; registration then reports unsupported.
func NewVoterService(
	store domain.ElectionStore,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	ceremony domain.CredentialCeremony,
	rpName string,
	sessionTTL time.Duration,
) domain.VoterService {
	return &VoterServiceImpl{
		store:       store,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		ceremony:    ceremony,
		rpName:      rpName,
		sessionTTL:  sessionTTL,
	}
}

// Register implements domain.VoterService. The users collection is only
// written after the ceremony succeeds; a denied or cancelled ceremony leaves
// no partial state behind.
func (s *VoterServiceImpl) Register(ctx context.Context, reg domain.Registration) (*domain.Voter, error) {
	if s.ceremony == nil {
		return nil, domain.ErrCeremonyUnsupported
	}
	if reg.VoterID == "" || reg.Password == "" || reg.FirstName == "" {
		return nil, domain.ErrValidationFailed
	}

	users, err := s.store.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	if _, exists := users[reg.VoterID]; exists {
		return nil, domain.ErrDuplicateVoter
	}

	challenge, err := newChallenge()
	if err != nil {
		return nil, err
	}

	// May block indefinitely while the user interacts with the prompt.
	rawID, err := s.ceremony.CreateCredential(ctx, domain.CredentialCreation{
		Challenge:             challenge,
		RelyingParty:          s.rpName,
		UserID:                reg.VoterID,
		UserName:              reg.Email,
		UserDisplayName:       reg.FirstName + " " + reg.LastName,
		PlatformAuthenticator: true,
		UserVerification:      true,
	})
	if err != nil {
		return nil, domain.ErrCeremonyFailed
	}

	stored, err := s.passwordSvc.Store(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to store password: %w", err)
	}

	voter := &domain.Voter{
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		VoterID:      reg.VoterID,
		Aadhaar:      reg.Aadhaar,
		Email:        reg.Email,
		Number:       reg.Number,
		Password:     stored,
		CredentialID: domain.EncodeCredentialID(rawID),
		Approved:     false,
		HasVoted:     false,
	}

	// Re-read: the ceremony may have taken a while and other writes may have
	// landed in between. The duplicate check still holds only per this read;
	// last writer wins, as everywhere in the store.
	users, err = s.store.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	users[reg.VoterID] = voter
	if err := s.store.PutUsers(ctx, users); err != nil {
		return nil, fmt.Errorf("failed to write users: %w", err)
	}
	return voter, nil
}

// Login implements domain.VoterService. Checks run in a fixed order and the
// first failure wins: record exists, password matches, admin has approved,
// a fingerprint credential is on record.
func (s *VoterServiceImpl) Login(ctx context.Context, voterID, password string) (*domain.AuthResult, error) {
	users, err := s.store.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	voter, ok := users[voterID]
	if !ok {
		return nil, domain.ErrVoterNotFound
	}
	if !s.passwordSvc.Verify(voter.Password, password) {
		return nil, domain.ErrInvalidCredentials
	}
	if !voter.Approved {
		return nil, domain.ErrVoterNotApproved
	}
	if voter.CredentialID == "" {
		return nil, domain.ErrMissingCredential
	}

	session := &domain.Session{
		ID:        fmt.Sprintf("sess_%s_%d", voterID, time.Now().UnixNano()),
		Subject:   voterID,
		Role:      domain.RoleVoter,
		ExpiresAt: time.Now().Add(s.sessionTTL),
		CreatedAt: time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.tokenSvc.GenerateAccessToken(voterID, domain.RoleVoter, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.AuthResult{
		Voter:       voter,
		AccessToken: token,
		SessionID:   session.ID,
		ExpiresIn:   int64(s.sessionTTL.Seconds()),
	}, nil
}

// Logout implements domain.VoterService
func (s *VoterServiceImpl) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}
