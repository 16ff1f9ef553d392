package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhhatar/e-voting-project/domain"
	"github.com/akhhatar/e-voting-project/internal/infrastructure/auth"
	"github.com/akhhatar/e-voting-project/internal/infrastructure/repositories"
	"github.com/akhhatar/e-voting-project/internal/infrastructure/storage"
	"github.com/akhhatar/e-voting-project/internal/mocks"
	"github.com/akhhatar/e-voting-project/internal/services"
)

func newCitizenTestServer(t *testing.T, cer *mocks.MockCeremony) (*gin.Engine, *storage.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	require.NoError(t, store.Init(context.Background()))

	voterSvc := services.NewVoterService(
		store,
		repositories.NewMemorySessionRepository(),
		auth.NewPasswordService(),
		mocks.NewMockTokenService(),
		cer,
		"E-Voting System",
		time.Hour,
	)
	h := NewCitizenHandlers(voterSvc, services.NewVotingService(store, cer))

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	return r, store
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validRegistration() map[string]string {
	return map[string]string{
		"firstName": "Asha",
		"lastName":  "Kumar",
		"voterId":   "VOT1",
		"aadhaar":   "123412341234",
		"email":     "asha@example.com",
		"number":    "+911234567890",
		"password":  "hunter2",
	}
}

func TestCitizenHandlers_Register(t *testing.T) {
	tests := []struct {
		name            string
		body            map[string]string
		setupMocks      func(*mocks.MockCeremony, *storage.MemoryStore)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "successful registration",
			body:            validRegistration(),
			setupMocks:      func(*mocks.MockCeremony, *storage.MemoryStore) {},
			expectedStatus:  http.StatusCreated,
			expectedMessage: "pending admin approval",
		},
		{
			name: "duplicate voter id",
			body: validRegistration(),
			setupMocks: func(cer *mocks.MockCeremony, store *storage.MemoryStore) {
				store.PutUsers(context.Background(), map[string]*domain.Voter{
					"VOT1": {VoterID: "VOT1"},
				})
			},
			expectedStatus:  http.StatusConflict,
			expectedMessage: "already exists",
		},
		{
			name: "cancelled fingerprint ceremony",
			body: validRegistration(),
			setupMocks: func(cer *mocks.MockCeremony, store *storage.MemoryStore) {
				cer.CreateCredentialFunc = func(ctx context.Context, req domain.CredentialCreation) ([]byte, error) {
					return nil, errors.New("cancelled")
				}
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "cancelled",
		},
		{
			name:           "missing form fields",
			body:           map[string]string{"voterId": "VOT1"},
			setupMocks:     func(*mocks.MockCeremony, *storage.MemoryStore) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cer := mocks.NewMockCeremony()
			r, store := newCitizenTestServer(t, cer)
			tt.setupMocks(cer, store)

			w := postJSON(t, r, "/auth/register", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedMessage != "" {
				assert.Contains(t, w.Body.String(), tt.expectedMessage)
			}
		})
	}
}

func TestCitizenHandlers_LoginStatusMapping(t *testing.T) {
	seed := &domain.Voter{VoterID: "VOT1", Password: "hunter2", Approved: true, CredentialID: "AQIDBAU"}

	tests := []struct {
		name           string
		voter          *domain.Voter
		body           map[string]string
		expectedStatus int
	}{
		{
			name:           "success",
			voter:          seed,
			body:           map[string]string{"voterId": "VOT1", "password": "hunter2"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown voter",
			voter:          seed,
			body:           map[string]string{"voterId": "VOT9", "password": "hunter2"},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "wrong password",
			voter:          seed,
			body:           map[string]string{"voterId": "VOT1", "password": "nope"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "pending approval",
			voter:          &domain.Voter{VoterID: "VOT1", Password: "hunter2", CredentialID: "AQIDBAU"},
			body:           map[string]string{"voterId": "VOT1", "password": "hunter2"},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "no credential on record",
			voter:          &domain.Voter{VoterID: "VOT1", Password: "hunter2", Approved: true},
			body:           map[string]string{"voterId": "VOT1", "password": "hunter2"},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, store := newCitizenTestServer(t, mocks.NewMockCeremony())
			require.NoError(t, store.PutUsers(context.Background(), map[string]*domain.Voter{
				tt.voter.VoterID: tt.voter,
			}))

			w := postJSON(t, r, "/auth/login", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}
