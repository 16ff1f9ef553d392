package mocks

import "github.com/akhhatar/e-voting-project/domain"

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendSMSFunc func(to, message string) error

	// SentSMS records every message handed to the service.
	SentSMS []struct{ To, Message string }
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendSMS records and optionally delegates
func (m *MockNotificationService) SendSMS(to, message string) error {
	m.SentSMS = append(m.SentSMS, struct{ To, Message string }{to, message})
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
