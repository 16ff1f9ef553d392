// Package ceremony provides the credential-ceremony capability: the external
// collaborator that registers platform-bound credentials and asserts their
// presence. The workflow treats it as opaque; both calls may block awaiting
// user interaction and resolve to either an opaque result or a failure.
package ceremony

import (
	"context"
	"crypto/rand"

	"github.com/akhhatar/e-voting-project/domain"
)

// LocalAuthenticator simulates a platform authenticator for single-machine
// demos. It hands out random credential identifiers and asserts for any
// non-empty credential it is shown. No cryptographic verification happens
// anywhere in this system: the challenge is fabricated by the caller and the
// assertion payload is never inspected, so ceremony "success" means only
// that the call resolved. A real relying-party check would need a trusted
// server-side credential record, which is outside this system's boundary.
type LocalAuthenticator struct{}

// NewLocalAuthenticator creates the simulator.
func NewLocalAuthenticator() *LocalAuthenticator {
	return &LocalAuthenticator{}
}

// CreateCredential implements domain.CredentialCeremony
func (a *LocalAuthenticator) CreateCredential(ctx context.Context, req domain.CredentialCreation) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.ErrCeremonyFailed
	}
	if len(req.Challenge) == 0 || req.UserID == "" {
		return nil, domain.ErrCeremonyFailed
	}

	id := make([]byte, 32)
	if _, err := rand.Read(id); err != nil {
		return nil, domain.ErrCeremonyFailed
	}
	return id, nil
}

// RequestAssertion implements domain.CredentialCeremony
func (a *LocalAuthenticator) RequestAssertion(ctx context.Context, req domain.AssertionRequest) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.ErrCeremonyFailed
	}
	if len(req.Challenge) == 0 || len(req.CredentialID) == 0 {
		return nil, domain.ErrCeremonyFailed
	}

	sig := make([]byte, 64)
	if _, err := rand.Read(sig); err != nil {
		return nil, domain.ErrCeremonyFailed
	}
	return sig, nil
}

// Compile-time interface compliance verification
var _ domain.CredentialCeremony = (*LocalAuthenticator)(nil)
