package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"procurement-api/services"

	"github.com/gin-gonic/gin"
)

// IssueQuoteInvite signs an invite token binding one supplier to one BRFQ.
func IssueQuoteInvite(c *gin.Context) {
	var req struct {
		BRFQID     string `json:"brfq_id" binding:"required"`
		SupplierID string `json:"supplier_id" binding:"required"`
		TTLHours   int    `json:"ttl_hours"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	token, err := services.SignQuoteInvite(req.BRFQID, req.SupplierID, time.Duration(req.TTLHours)*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to sign invite token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// SubmitQuote accepts a supplier quote authorized by a signed invite token.
// The BRFQ and supplier references come from the token, not the body.
func SubmitQuote(c *gin.Context) {
	var req services.QuoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Quote token is required"})
		return
	}

	quote, err := services.NewQuoteService(nil).Submit(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuoteToken):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired quote token"})
		case errors.Is(err, services.ErrUnknownReference):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced BRFQ or supplier does not exist"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit quote"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Quote submitted successfully", "quote": quote})
}

// GetBRFQQuotes lists submitted quotes for a BRFQ.
func GetBRFQQuotes(c *gin.Context) {
	quotes, err := services.NewQuoteService(nil).ListForBRFQ(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch quotes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "quotes": quotes, "total": len(quotes)})
}

// CreateAward records the award outcome for a BRFQ.
func CreateAward(c *gin.Context) {
	var req struct {
		Winners []services.AwardWinnerInput `json:"winners" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")
	award, err := services.NewAwardService(nil).Create(c.Param("id"), userID.(string), req.Winners)
	if err != nil {
		var transitionErr *services.InvalidTransitionError
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "BRFQ not found"})
		case errors.Is(err, services.ErrUnknownReference):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Winner quote does not belong to this BRFQ"})
		case errors.As(err, &transitionErr):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": transitionErr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create award"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "award": award})
}

// DecideAward records an approval decision on an award.
func DecideAward(c *gin.Context) {
	var req struct {
		Decision string `json:"decision" binding:"required,oneof=approved rejected"`
		Note     string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")
	award, err := services.NewAwardService(nil).Decide(c.Param("awardId"), userID.(string), req.Decision, req.Note)
	if err != nil {
		var transitionErr *services.InvalidTransitionError
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Award not found"})
		case errors.As(err, &transitionErr):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": transitionErr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to record decision"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "award": award})
}

// GetAward returns an award with winners and approvals.
func GetAward(c *gin.Context) {
	award, err := services.NewAwardService(nil).Get(c.Param("awardId"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Award not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch award"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "award": award})
}

// parseLimitOffset reads pagination params with sane defaults.
func parseLimitOffset(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
