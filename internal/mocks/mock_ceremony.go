package mocks

import (
	"context"

	"github.com/akhhatar/e-voting-project/domain"
)

// MockCeremony implements domain.CredentialCeremony for testing. The default
// behavior resolves deterministically: a fixed credential id and a fixed
// assertion payload, never blocking.
type MockCeremony struct {
	CreateCredentialFunc func(ctx context.Context, req domain.CredentialCreation) ([]byte, error)
	RequestAssertionFunc func(ctx context.Context, req domain.AssertionRequest) ([]byte, error)

	// CreateCalls and AssertCalls record the requests seen, letting tests
	// check challenges and credential scoping.
	CreateCalls []domain.CredentialCreation
	AssertCalls []domain.AssertionRequest
}

// NewMockCeremony creates a new MockCeremony with default behaviors
func NewMockCeremony() *MockCeremony {
	return &MockCeremony{}
}

// CreateCredential runs the registration ceremony
func (m *MockCeremony) CreateCredential(ctx context.Context, req domain.CredentialCreation) ([]byte, error) {
	m.CreateCalls = append(m.CreateCalls, req)
	if m.CreateCredentialFunc != nil {
		return m.CreateCredentialFunc(ctx, req)
	}
	return []byte{0x01, 0x02, 0x03, 0x04, 0x05}, nil
}

// RequestAssertion runs the verification ceremony
func (m *MockCeremony) RequestAssertion(ctx context.Context, req domain.AssertionRequest) ([]byte, error) {
	m.AssertCalls = append(m.AssertCalls, req)
	if m.RequestAssertionFunc != nil {
		return m.RequestAssertionFunc(ctx, req)
	}
	return []byte("assertion"), nil
}

// Compile-time interface compliance verification
var _ domain.CredentialCeremony = (*MockCeremony)(nil)
