package services

import (
	"context"
	"fmt"

	"github.com/akhhatar/e-voting-project/domain"
)

// independentLabel is shown for candidates whose party reference is empty or
// dangling. A bad reference degrades, it never errors.
const independentLabel = "Independent"

// VotingServiceImpl implements domain.VotingService
type VotingServiceImpl struct {
	store    domain.ElectionStore
	ceremony domain.CredentialCeremony
}

// NewVotingService creates a new voting service
func NewVotingService(store domain.ElectionStore, ceremony domain.CredentialCeremony) domain.VotingService {
	return &VotingServiceImpl{
		store:    store,
		ceremony: ceremony,
	}
}

// Ballot implements domain.VotingService. A voter who has already voted gets
// the notice and no candidate list; voting is offered exactly once.
func (s *VotingServiceImpl) Ballot(ctx context.Context, voterID string) (*domain.Ballot, error) {
	users, err := s.store.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	voter, ok := users[voterID]
	if !ok {
		return nil, domain.ErrVoterNotFound
	}

	ballot := &domain.Ballot{
		VoterName: voter.FirstName,
		HasVoted:  voter.HasVoted,
	}
	if voter.HasVoted {
		return ballot, nil
	}

	candidates, err := s.store.GetCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	parties, err := s.store.GetParties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read parties: %w", err)
	}

	names := partyNames(parties)
	for _, c := range candidates {
		ballot.Candidates = append(ballot.Candidates, domain.BallotEntry{
			CandidateID: c.ID,
			Name:        c.Name,
			Party:       partyLabel(names, c.PartyID),
		})
	}
	return ballot, nil
}

// CastVote implements domain.VotingService. The Voted state is terminal and
// enforced here, not by a hidden button: a second cast fails regardless of
// what the client shows. On assertion failure nothing is mutated and the
// voter may try again; there is no retry limit.
func (s *VotingServiceImpl) CastVote(ctx context.Context, voterID, candidateID string) error {
	users, err := s.store.GetUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to read users: %w", err)
	}
	voter, ok := users[voterID]
	if !ok {
		return domain.ErrVoterNotFound
	}
	if voter.CredentialID == "" {
		return domain.ErrMissingCredential
	}
	if voter.HasVoted {
		return domain.ErrAlreadyVoted
	}

	candidates, err := s.store.GetCandidates(ctx)
	if err != nil {
		return fmt.Errorf("failed to read candidates: %w", err)
	}
	if findCandidate(candidates, candidateID) < 0 {
		return domain.ErrCandidateNotFound
	}

	if s.ceremony == nil {
		return domain.ErrCeremonyUnsupported
	}
	credentialID, err := domain.DecodeCredentialID(voter.CredentialID)
	if err != nil {
		return domain.ErrMissingCredential
	}
	challenge, err := newChallenge()
	if err != nil {
		return err
	}

	// May block indefinitely on the fingerprint prompt. The assertion result
	// is discarded unverified: success means the ceremony resolved, nothing
	// stronger.
	if _, err := s.ceremony.RequestAssertion(ctx, domain.AssertionRequest{
		Challenge:        challenge,
		CredentialID:     credentialID,
		UserVerification: true,
	}); err != nil {
		return domain.ErrCeremonyFailed
	}

	// Two independent writes with no atomicity across them: a crash in
	// between leaves the tally ahead of the voter flag. Accepted store
	// contract, not a bug to fix here.
	candidates, err = s.store.GetCandidates(ctx)
	if err != nil {
		return fmt.Errorf("failed to read candidates: %w", err)
	}
	idx := findCandidate(candidates, candidateID)
	if idx < 0 {
		return domain.ErrCandidateNotFound
	}
	candidates[idx].Votes++
	if err := s.store.PutCandidates(ctx, candidates); err != nil {
		return fmt.Errorf("failed to write candidates: %w", err)
	}

	users, err = s.store.GetUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to read users: %w", err)
	}
	if voter, ok := users[voterID]; ok {
		voter.HasVoted = true
	}
	if err := s.store.PutUsers(ctx, users); err != nil {
		return fmt.Errorf("failed to write users: %w", err)
	}
	return nil
}

func findCandidate(candidates []domain.Candidate, id string) int {
	for i := range candidates {
		if candidates[i].ID == id {
			return i
		}
	}
	return -1
}

func partyNames(parties []domain.Party) map[string]string {
	names := make(map[string]string, len(parties))
	for _, p := range parties {
		names[p.ID] = p.Name
	}
	return names
}

func partyLabel(names map[string]string, partyID string) string {
	if name, ok := names[partyID]; ok && name != "" {
		return name
	}
	return independentLabel
}
