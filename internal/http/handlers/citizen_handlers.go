package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akhhatar/e-voting-project/domain"
)

// CitizenHandlers handles the citizen portal HTTP requests
type CitizenHandlers struct {
	voterSvc  domain.VoterService
	votingSvc domain.VotingService
}

// NewCitizenHandlers creates new citizen handlers
func NewCitizenHandlers(voterSvc domain.VoterService, votingSvc domain.VotingService) *CitizenHandlers {
	return &CitizenHandlers{
		voterSvc:  voterSvc,
		votingSvc: votingSvc,
	}
}

// RegisterRequest represents the registration form
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	VoterID   string `json:"voterId" binding:"required"`
	Aadhaar   string `json:"aadhaar" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Number    string `json:"number" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// LoginRequest represents a citizen login attempt
type LoginRequest struct {
	VoterID  string `json:"voterId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CastVoteRequest carries the chosen candidate
type CastVoteRequest struct {
	CandidateID string `json:"candidateId" binding:"required"`
}

// notification mirrors the portal's message box: a title and a body.
func notification(title, message string) gin.H {
	return gin.H{"title": title, "message": message}
}

// Register handles voter registration, fingerprint ceremony included.
func (h *CitizenHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	voter, err := h.voterSvc.Register(c.Request.Context(), domain.Registration{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		VoterID:   req.VoterID,
		Aadhaar:   req.Aadhaar,
		Email:     req.Email,
		Number:    req.Number,
		Password:  req.Password,
	})
	if err != nil {
		switch err {
		case domain.ErrDuplicateVoter:
			c.JSON(http.StatusConflict, notification("Registration Failed", "A user with this Voter ID already exists."))
		case domain.ErrCeremonyUnsupported:
			c.JSON(http.StatusServiceUnavailable, notification("Unsupported", "This deployment has no fingerprint authenticator available."))
		case domain.ErrCeremonyFailed:
			c.JSON(http.StatusBadRequest, notification("Registration Failed", "Fingerprint registration failed or was cancelled. Please try again."))
		case domain.ErrValidationFailed:
			c.JSON(http.StatusBadRequest, notification("Registration Failed", "Please fill all fields."))
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register voter"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"title":    "Success",
			"message":  "Registration successful! Your account is pending admin approval.",
			"voter_id": voter.VoterID,
		},
	})
}

// Login handles citizen login
func (h *CitizenHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.voterSvc.Login(c.Request.Context(), req.VoterID, req.Password)
	if err != nil {
		switch err {
		case domain.ErrVoterNotFound:
			c.JSON(http.StatusNotFound, notification("Login Failed", "No user found with this Voter ID."))
		case domain.ErrInvalidCredentials:
			c.JSON(http.StatusUnauthorized, notification("Login Failed", "Incorrect password."))
		case domain.ErrVoterNotApproved:
			c.JSON(http.StatusForbidden, notification("Login Failed", "Your account is still pending admin approval."))
		case domain.ErrMissingCredential:
			c.JSON(http.StatusForbidden, notification("Login Failed", "No fingerprint data found. Please re-register."))
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"access_token": result.AccessToken,
			"token_type":   "Bearer",
			"expires_in":   result.ExpiresIn,
			"voter": gin.H{
				"voter_id": result.Voter.VoterID,
				"name":     result.Voter.DisplayName(),
			},
		},
	})
}

// Logout invalidates the current session
func (h *CitizenHandlers) Logout(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active session"})
		return
	}
	if err := h.voterSvc.Logout(c.Request.Context(), sessionID.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Logged out"}})
}

// Ballot returns the voting screen contents for the authenticated voter.
func (h *CitizenHandlers) Ballot(c *gin.Context) {
	subject := c.GetString("subject")

	ballot, err := h.votingSvc.Ballot(c.Request.Context(), subject)
	if err != nil {
		if err == domain.ErrVoterNotFound {
			c.JSON(http.StatusNotFound, notification("Error", "No user found with this Voter ID."))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ballot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ballot})
}

// CastVote records the authenticated voter's single vote.
func (h *CitizenHandlers) CastVote(c *gin.Context) {
	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subject := c.GetString("subject")
	if err := h.votingSvc.CastVote(c.Request.Context(), subject, req.CandidateID); err != nil {
		switch err {
		case domain.ErrVoterNotFound:
			c.JSON(http.StatusNotFound, notification("Error", "No user found with this Voter ID."))
		case domain.ErrMissingCredential:
			c.JSON(http.StatusForbidden, notification("Error", "No fingerprint data found for this user."))
		case domain.ErrAlreadyVoted:
			c.JSON(http.StatusConflict, notification("Error", "You have already cast your vote."))
		case domain.ErrCandidateNotFound:
			c.JSON(http.StatusNotFound, notification("Error", "Candidate not found."))
		case domain.ErrCeremonyUnsupported:
			c.JSON(http.StatusServiceUnavailable, notification("Unsupported", "This deployment has no fingerprint authenticator available."))
		case domain.ErrCeremonyFailed:
			c.JSON(http.StatusForbidden, notification("Verification Failed", "Fingerprint did not match or was cancelled. Vote not cast."))
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cast vote"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": notification("Success!", "Your vote has been cast successfully."),
	})
}
