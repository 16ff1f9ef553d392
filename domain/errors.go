package domain

import "errors"

// Registration and login errors
var (
	ErrVoterNotFound      = errors.New("no voter found with this voter id")
	ErrDuplicateVoter     = errors.New("a voter with this voter id already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrVoterNotApproved   = errors.New("account is pending admin approval")
	ErrMissingCredential  = errors.New("no fingerprint credential on record")
	ErrValidationFailed   = errors.New("required field missing")
)

// Credential ceremony errors. Denial, cancellation and timeout are
// indistinguishable: the capability either resolves or it does not.
var (
	ErrCeremonyUnsupported = errors.New("fingerprint ceremony not supported")
	ErrCeremonyFailed      = errors.New("fingerprint ceremony failed or was cancelled")
)

// Voting errors
var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrAlreadyVoted      = errors.New("vote already cast")
)

// Admin errors
var (
	ErrInvalidResultsCode = errors.New("incorrect secure code")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)
