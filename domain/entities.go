package domain

import "time"

// Portal roles carried by sessions and tokens.
const (
	RoleVoter = "voter"
	RoleAdmin = "admin"
)

// AdminSubject is the session subject for the shared admin principal. The
// admin portal has no per-user identity, only the static gate password.
const AdminSubject = "admin"

// Voter is a citizen's identity and voting eligibility record. The JSON tags
// are the persisted layout of the users collection, keyed by voter id.
// Password is stored and compared as-is; that weakness is part of this
// system's documented contract, not an oversight to patch here.
type Voter struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	VoterID      string `json:"voterId"`
	Aadhaar      string `json:"aadhaar"`
	Email        string `json:"email"`
	Number       string `json:"number"`
	Password     string `json:"password"`
	CredentialID string `json:"credentialId,omitempty"`
	Approved     bool   `json:"approved"`
	HasVoted     bool   `json:"hasVoted"`
}

// DisplayName returns the name presented during credential ceremonies and on
// the voting view.
func (v *Voter) DisplayName() string {
	return v.FirstName + " " + v.LastName
}

// Party is a named grouping for candidates. Parties are created by the admin
// and never updated or deleted.
type Party struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Candidate is a contestant. PartyID may dangle or be empty; such candidates
// render as "Independent". Votes only ever increases, by one per cast vote.
type Candidate struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	PartyID string `json:"partyId"`
	Votes   int    `json:"votes"`
}

// Session is the ephemeral login context for a voter or the admin principal.
// Sessions are never written to the election store.
type Session struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Registration is the citizen registration form.
type Registration struct {
	FirstName string
	LastName  string
	VoterID   string
	Aadhaar   string
	Email     string
	Number    string
	Password  string
}

// AuthResult is a successful login outcome. Voter is nil for admin logins.
type AuthResult struct {
	Voter       *Voter
	AccessToken string
	SessionID   string
	ExpiresIn   int64
}

// BallotEntry is a candidate as offered on the voting view.
type BallotEntry struct {
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
	Party       string `json:"party"`
}

// Ballot is the voting view for one authenticated voter. When HasVoted is
// set the candidate list is withheld and the view shows the already-voted
// notice instead.
type Ballot struct {
	VoterName  string        `json:"voter_name"`
	HasVoted   bool          `json:"has_voted"`
	Candidates []BallotEntry `json:"candidates,omitempty"`
}

// ResultRow is one line of the unlocked results, ordered by tally descending.
type ResultRow struct {
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
	Party       string `json:"party"`
	Votes       int    `json:"votes"`
}
