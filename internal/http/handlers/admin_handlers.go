package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akhhatar/e-voting-project/domain"
)

// AdminHandlers handles the admin portal HTTP requests
type AdminHandlers struct {
	adminSvc domain.AdminService
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(adminSvc domain.AdminService) *AdminHandlers {
	return &AdminHandlers{adminSvc: adminSvc}
}

// AdminLoginRequest carries the shared admin password
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AddPartyRequest represents the add-party form
type AddPartyRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddCandidateRequest represents the add-candidate form
type AddCandidateRequest struct {
	Name    string `json:"name" binding:"required"`
	PartyID string `json:"partyId" binding:"required"`
}

// ResultsRequest carries the results unlock code
type ResultsRequest struct {
	Code string `json:"code" binding:"required"`
}

// Login handles admin login
func (h *AdminHandlers) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.adminSvc.Login(c.Request.Context(), req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, notification("Admin Login Failed", "Incorrect password."))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"access_token": result.AccessToken,
			"token_type":   "Bearer",
			"expires_in":   result.ExpiresIn,
		},
	})
}

// AddParty registers a new party
func (h *AdminHandlers) AddParty(c *gin.Context) {
	var req AddPartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	party, err := h.adminSvc.AddParty(c.Request.Context(), req.Name)
	if err != nil {
		if err == domain.ErrValidationFailed {
			c.JSON(http.StatusBadRequest, notification("Error", "Please fill all fields."))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add party"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"title":   "Success",
			"message": fmt.Sprintf("Party %q added.", party.Name),
			"party":   party,
		},
	})
}

// AddCandidate registers a new candidate under a party
func (h *AdminHandlers) AddCandidate(c *gin.Context) {
	var req AddCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidate, err := h.adminSvc.AddCandidate(c.Request.Context(), req.Name, req.PartyID)
	if err != nil {
		if err == domain.ErrValidationFailed {
			c.JSON(http.StatusBadRequest, notification("Error", "Please fill all fields."))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add candidate"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"title":     "Success",
			"message":   fmt.Sprintf("Candidate %q added.", candidate.Name),
			"candidate": candidate,
		},
	})
}

// PendingVoters lists voters awaiting approval
func (h *AdminHandlers) PendingVoters(c *gin.Context) {
	pending, err := h.adminSvc.PendingVoters(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pending voters"})
		return
	}

	voters := make([]gin.H, 0, len(pending))
	for _, v := range pending {
		voters = append(voters, gin.H{
			"voter_id": v.VoterID,
			"name":     v.DisplayName(),
			"email":    v.Email,
			"number":   v.Number,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": voters})
}

// ApproveVoter flips a voter to approved
func (h *AdminHandlers) ApproveVoter(c *gin.Context) {
	voterID := c.Param("id")

	if err := h.adminSvc.ApproveVoter(c.Request.Context(), voterID); err != nil {
		if err == domain.ErrVoterNotFound {
			c.JSON(http.StatusNotFound, notification("Error", "No user found with this Voter ID."))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve voter"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": notification("Success", fmt.Sprintf("User %s has been approved.", voterID)),
	})
}

// Results unlocks and returns the tally. The code travels in the request
// body on every call; nothing about a session remembers an earlier unlock.
func (h *AdminHandlers) Results(c *gin.Context) {
	var req ResultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.adminSvc.Results(c.Request.Context(), req.Code)
	if err != nil {
		if err == domain.ErrInvalidResultsCode {
			c.JSON(http.StatusForbidden, notification("Error", "Incorrect Secure Code."))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load results"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}
