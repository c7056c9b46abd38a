package controllers

import (
	"errors"
	"net/http"

	"procurement-api/config"
	"procurement-api/models"
	"procurement-api/services"

	"github.com/gin-gonic/gin"
)

type brfqItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UOM         string  `json:"uom"`
}

type CreateBRFQRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	ScopeOfWork []string          `json:"scope_of_work"`
	LineItems   []brfqItemRequest `json:"line_items"`
}

// CreateBRFQ stores a new draft procurement request for the current buyer.
func CreateBRFQ(c *gin.Context) {
	var req CreateBRFQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")

	brfq := models.BRFQ{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		RequestedBy: userID.(string),
	}
	for _, scope := range req.ScopeOfWork {
		brfq.ScopeOfWork = append(brfq.ScopeOfWork, models.ScopeOfWorkItem{Description: scope})
	}
	for _, item := range req.LineItems {
		brfq.LineItems = append(brfq.LineItems, models.BRFQLineItem{
			Name:        item.Name,
			Description: item.Description,
			Quantity:    item.Quantity,
			UOM:         item.UOM,
		})
	}

	created, err := services.NewBRFQService(nil).Create(brfq)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create BRFQ"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "brfq": created})
}

// GetBRFQs lists procurement requests. Buyers see their own; admins see all.
func GetBRFQs(c *gin.Context) {
	status := c.Query("status")
	limit, offset := parseLimitOffset(c)

	requestedBy := ""
	if userType, _ := c.Get("userType"); userType == models.UserTypeBuyer {
		userID, _ := c.Get("userID")
		requestedBy = userID.(string)
	}

	items, total, err := services.NewBRFQService(nil).List(status, requestedBy, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch BRFQs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "brfqs": items, "total": total})
}

// GetBRFQ returns one procurement request with its owned collections.
func GetBRFQ(c *gin.Context) {
	brfq, err := services.NewBRFQService(nil).Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "BRFQ not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch BRFQ"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "brfq": brfq})
}

// UpdateBRFQ applies changes to a draft BRFQ.
func UpdateBRFQ(c *gin.Context) {
	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Category    *string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No fields to update"})
		return
	}

	brfq, err := services.NewBRFQService(nil).Update(c.Param("id"), updates)
	if err != nil {
		respondBRFQError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "brfq": brfq})
}

// PublishBRFQ moves a draft to PUBLISHED.
func PublishBRFQ(c *gin.Context) {
	brfq, err := services.NewBRFQService(nil).Publish(c.Param("id"))
	if err != nil {
		respondBRFQError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "brfq": brfq})
}

type brfqDecisionRequest struct {
	Note string `json:"note"`
}

// ApproveBRFQ records an admin approval on a pending BRFQ.
func ApproveBRFQ(c *gin.Context) {
	var req brfqDecisionRequest
	_ = c.ShouldBindJSON(&req)

	userID, _ := c.Get("userID")
	brfq, err := services.NewBRFQService(nil).Approve(c.Param("id"), userID.(string), req.Note)
	if err != nil {
		respondBRFQError(c, err)
		return
	}

	notifyRequester(brfq, "BRFQ approved", "Your procurement request has been approved.", "success")

	c.JSON(http.StatusOK, gin.H{"success": true, "brfq": brfq})
}

// RejectBRFQ records an admin rejection on a pending BRFQ and clears the
// publish flag. The requester is notified.
func RejectBRFQ(c *gin.Context) {
	var req brfqDecisionRequest
	_ = c.ShouldBindJSON(&req)

	userID, _ := c.Get("userID")
	brfq, err := services.NewBRFQService(nil).Reject(c.Param("id"), userID.(string), req.Note)
	if err != nil {
		respondBRFQError(c, err)
		return
	}

	notifyRequester(brfq, "BRFQ rejected", "Your procurement request has been rejected.", "warning")

	c.JSON(http.StatusOK, gin.H{"success": true, "brfq": brfq})
}

// DeleteBRFQ soft-deletes a procurement request.
func DeleteBRFQ(c *gin.Context) {
	if err := services.NewBRFQService(nil).Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "BRFQ not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete BRFQ"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// LinkBRFQSuppliers attaches suppliers to a BRFQ.
func LinkBRFQSuppliers(c *gin.Context) {
	var req struct {
		SupplierIDs []string `json:"supplier_ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := services.NewBRFQService(nil).LinkSuppliers(c.Param("id"), req.SupplierIDs); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "BRFQ or supplier not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to link suppliers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func respondBRFQError(c *gin.Context, err error) {
	var transitionErr *services.InvalidTransitionError
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "BRFQ not found"})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": transitionErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update BRFQ"})
	}
}

func notifyRequester(brfq *models.BRFQ, title, message, notifType string) {
	if brfq == nil || brfq.RequestedBy == "" {
		return
	}
	createNotification(brfq.RequestedBy, title, message, notifType, &brfq.BRFQID)

	var requester models.User
	if err := config.DB.Select("email").
		Where("user_id = ? AND delete_at IS NULL", brfq.RequestedBy).
		First(&requester).Error; err != nil {
		return
	}
	html := buildEmailTemplate(title,
		[]string{message},
		[]emailMetaItem{{Label: "BRFQ", Value: brfq.Title}},
		"View request", appBaseURL()+"/brfqs/"+brfq.BRFQID,
	)
	sendMailSafe([]string{requester.Email}, title, html)
}
