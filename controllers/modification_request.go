package controllers

import (
	"errors"
	"net/http"

	"procurement-api/services"

	"github.com/gin-gonic/gin"
)

type CreateModificationRequest struct {
	BRFQID  string `json:"brfq_id" binding:"required"`
	Summary string `json:"summary" binding:"required"`
	Details string `json:"details"`
}

// CreateModification registers a modification request against a BRFQ.
func CreateModification(c *gin.Context) {
	var req CreateModificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")
	mod, err := services.NewModificationService(nil).Create(req.BRFQID, userID.(string), req.Summary, req.Details)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "BRFQ not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create modification request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": mod})
}

// GetModifications lists modification requests with optional filters.
func GetModifications(c *gin.Context) {
	limit, offset := parseLimitOffset(c)

	items, total, err := services.NewModificationService(nil).List(c.Query("status"), c.Query("brfq_id"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch modification requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": items, "total": total})
}

// GetModification returns one modification request with its action history.
func GetModification(c *gin.Context) {
	mod, err := services.NewModificationService(nil).Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Modification request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch modification request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": mod})
}

type modificationDecisionRequest struct {
	ActedBy string `json:"actedBy"`
	Note    string `json:"note"`
}

// RejectModification transitions a pending modification request to rejected
// and appends a history record, atomically.
func RejectModification(c *gin.Context) {
	decideModification(c, false)
}

// ApproveModification transitions a pending modification request to approved
// and appends a history record, atomically.
func ApproveModification(c *gin.Context) {
	decideModification(c, true)
}

func decideModification(c *gin.Context, approve bool) {
	var req modificationDecisionRequest
	_ = c.ShouldBindJSON(&req)

	actedBy := req.ActedBy
	if actedBy == "" {
		if userID, ok := c.Get("userID"); ok {
			actedBy = userID.(string)
		}
	}

	svc := services.NewModificationService(nil)
	var (
		decision *services.ModificationDecision
		err      error
	)
	if approve {
		decision, err = svc.Approve(c.Param("id"), actedBy, req.Note)
	} else {
		decision, err = svc.Reject(c.Param("id"), actedBy, req.Note)
	}
	if err != nil {
		var transitionErr *services.InvalidTransitionError
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Modification request not found"})
		case errors.As(err, &transitionErr):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": transitionErr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to process modification request"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"modification": decision.Modification,
			"history":      decision.History,
		},
	})
}
