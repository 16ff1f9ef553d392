package domain

import "context"

// ElectionStore is the persistence layer: three independently stored JSON
// collections, each read and written whole. There is no transaction spanning
// two collections; a multi-step mutation is independent writes and the last
// writer wins per collection. Callers that need cross-collection consistency
// do not get it here, and that limitation is part of the contract.
type ElectionStore interface {
	// Init seeds users to an empty map and parties/candidates to empty
	// lists when absent. Idempotent; called on every startup.
	Init(ctx context.Context) error

	GetUsers(ctx context.Context) (map[string]*Voter, error)
	PutUsers(ctx context.Context, users map[string]*Voter) error

	GetParties(ctx context.Context) ([]Party, error)
	PutParties(ctx context.Context, parties []Party) error

	GetCandidates(ctx context.Context) ([]Candidate, error)
	PutCandidates(ctx context.Context, candidates []Candidate) error
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
	DeleteExpired(ctx context.Context) error
}

// CredentialCreation describes a registration ceremony request: a fabricated
// challenge, the relying party name and the voter's identity hints.
type CredentialCreation struct {
	Challenge       []byte
	RelyingParty    string
	UserID          string
	UserName        string
	UserDisplayName string

	// PlatformAuthenticator requires a built-in (fingerprint) authenticator;
	// UserVerification requires the user to prove presence.
	PlatformAuthenticator bool
	UserVerification      bool
}

// AssertionRequest describes a verification ceremony request, scoped to a
// single previously registered credential.
type AssertionRequest struct {
	Challenge        []byte
	CredentialID     []byte
	UserVerification bool
}

// CredentialCeremony is the external authentication-ceremony capability.
// Both calls may block for unbounded real time awaiting user interaction and
// must treat cancellation as an ordinary failure. The assertion result is
// opaque: nothing in this system ever verifies it against a stored public
// key, so "success" means only that the capability resolved.
type CredentialCeremony interface {
	CreateCredential(ctx context.Context, req CredentialCreation) ([]byte, error)
	RequestAssertion(ctx context.Context, req AssertionRequest) ([]byte, error)
}

// VoterService defines the citizen portal business logic.
type VoterService interface {
	Register(ctx context.Context, reg Registration) (*Voter, error)
	Login(ctx context.Context, voterID, password string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
}

// VotingService defines the per-voter voting state machine:
// pending approval -> approved & not voted -> voted (terminal).
type VotingService interface {
	Ballot(ctx context.Context, voterID string) (*Ballot, error)
	CastVote(ctx context.Context, voterID, candidateID string) error
}

// AdminService defines the admin portal operations.
type AdminService interface {
	Login(ctx context.Context, password string) (*AuthResult, error)
	AddParty(ctx context.Context, name string) (*Party, error)
	AddCandidate(ctx context.Context, name, partyID string) (*Candidate, error)
	PendingVoters(ctx context.Context) ([]*Voter, error)
	ApproveVoter(ctx context.Context, voterID string) error
	Results(ctx context.Context, code string) ([]ResultRow, error)
}

// PasswordService defines password storage and comparison. This system keeps
// passwords verbatim and compares by exact string equality.
type PasswordService interface {
	Store(password string) (string, error)
	Verify(stored, supplied string) bool
}

// TokenService defines access-token operations.
type TokenService interface {
	GenerateAccessToken(subject, role, sessionID string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	Subject   string `json:"sub"`
	Role      string `json:"role"`
	SessionID string `json:"session_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// NotificationService defines outbound notification operations.
type NotificationService interface {
	SendSMS(to, message string) error
}

// PolicyService defines authorization policy operations.
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer is the subset of the Casbin enforcer this service needs.
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
