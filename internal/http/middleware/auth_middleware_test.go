package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/akhhatar/e-voting-project/domain"
	"github.com/akhhatar/e-voting-project/internal/mocks"
)

func runProtected(t *testing.T, tokenSvc domain.TokenService, sessionRepo domain.SessionRepository, authHeader string) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	captured := map[string]string{}
	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokenSvc, sessionRepo), func(c *gin.Context) {
		captured["subject"] = c.GetString("subject")
		captured["role"] = c.GetString("role")
		captured["session_id"] = c.GetString("session_id")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, captured
}

func TestAuthMiddleware(t *testing.T) {
	liveSession := &domain.Session{
		ID:        "sess_1",
		Subject:   "VOT1",
		Role:      domain.RoleVoter,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	tests := []struct {
		name           string
		authHeader     string
		setupMocks     func(*mocks.MockTokenService, *mocks.MockSessionRepository)
		expectedStatus int
	}{
		{
			name:       "valid token with live session",
			authHeader: "Bearer good",
			setupMocks: func(tokenSvc *mocks.MockTokenService, sessions *mocks.MockSessionRepository) {
				tokenSvc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{Subject: "VOT1", Role: domain.RoleVoter, SessionID: "sess_1"}, nil
				}
				sessions.FindByIDFunc = func(ctx context.Context, id string) (*domain.Session, error) {
					return liveSession, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			authHeader:     "",
			setupMocks:     func(*mocks.MockTokenService, *mocks.MockSessionRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "not bearer",
			authHeader:     "Basic Zm9vOmJhcg==",
			setupMocks:     func(*mocks.MockTokenService, *mocks.MockSessionRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer stale",
			setupMocks: func(tokenSvc *mocks.MockTokenService, sessions *mocks.MockSessionRepository) {
				tokenSvc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenExpired
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token but session gone",
			authHeader: "Bearer good",
			setupMocks: func(tokenSvc *mocks.MockTokenService, sessions *mocks.MockSessionRepository) {
				tokenSvc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{Subject: "VOT1", Role: domain.RoleVoter, SessionID: "sess_1"}, nil
				}
				sessions.FindByIDFunc = func(ctx context.Context, id string) (*domain.Session, error) {
					return nil, domain.ErrSessionNotFound
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "session belongs to someone else",
			authHeader: "Bearer good",
			setupMocks: func(tokenSvc *mocks.MockTokenService, sessions *mocks.MockSessionRepository) {
				tokenSvc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{Subject: "VOT2", Role: domain.RoleVoter, SessionID: "sess_1"}, nil
				}
				sessions.FindByIDFunc = func(ctx context.Context, id string) (*domain.Session, error) {
					return liveSession, nil
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService()
			sessions := mocks.NewMockSessionRepository()
			tt.setupMocks(tokenSvc, sessions)

			w, captured := runProtected(t, tokenSvc, sessions, tt.authHeader)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "VOT1", captured["subject"])
				assert.Equal(t, domain.RoleVoter, captured["role"])
				assert.Equal(t, "sess_1", captured["session_id"])
			}
		})
	}
}
