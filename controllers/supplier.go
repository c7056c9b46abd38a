package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"procurement-api/config"
	"procurement-api/models"
	"procurement-api/services"
	"procurement-api/utils"

	"github.com/gin-gonic/gin"
)

type RegisterSupplierRequest struct {
	CompanyName   string `json:"company_name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	SupplierType  string `json:"supplier_type"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Country       string `json:"country"`
	TaxID         string `json:"tax_id"`
}

// RegisterSupplier handles public supplier self-registration.
func RegisterSupplier(c *gin.Context) {
	var req RegisterSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	req.Email = utils.SanitizeInput(req.Email)
	if !utils.ValidateEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid email format"})
		return
	}

	supplier, err := services.NewSupplierService(nil).Register(models.Supplier{
		CompanyName:   utils.SanitizeInput(req.CompanyName),
		Email:         req.Email,
		SupplierType:  req.SupplierType,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		Country:       req.Country,
		TaxID:         req.TaxID,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "supplier": supplier})
}

// GetSuppliers lists suppliers, optionally filtered by status.
func GetSuppliers(c *gin.Context) {
	status := c.Query("status")

	q := config.DB.Where("delete_at IS NULL")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var suppliers []models.Supplier
	if err := q.Order("create_at DESC").Find(&suppliers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch suppliers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "suppliers": suppliers, "total": len(suppliers)})
}

// GetSupplier returns one supplier with its linked user account.
func GetSupplier(c *gin.Context) {
	var supplier models.Supplier
	if err := config.DB.Preload("User").
		Where("supplier_id = ? AND delete_at IS NULL", c.Param("supplierId")).
		First(&supplier).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Supplier not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "supplier": supplier})
}

// ApproveSupplier activates a supplier and provisions its login on first
// approval. Generated credentials are mailed to the registration address.
func ApproveSupplier(c *gin.Context) {
	supplierID := c.Param("supplierId")

	result, err := services.NewSupplierService(nil).Approve(supplierID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Supplier not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to approve supplier"})
		return
	}

	if result.UserCreated {
		html := buildEmailTemplate(
			"Your supplier account is ready",
			[]string{
				fmt.Sprintf("The registration for %s has been approved.", result.Supplier.CompanyName),
				"An account has been created for you. Sign in with the credentials below and change the password right away.",
			},
			[]emailMetaItem{
				{Label: "Username", Value: result.User.Username},
				{Label: "Email", Value: result.User.Email},
				{Label: "Temporary password", Value: result.PlainPassword},
			},
			"Sign in", appBaseURL()+"/login",
		)
		sendMailSafe([]string{result.Supplier.Email}, "Supplier account approved", html)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "supplier": result.Supplier, "user_created": result.UserCreated})
}

// RejectSupplier declines a pending supplier registration.
func RejectSupplier(c *gin.Context) {
	supplierID := c.Param("supplierId")

	supplier, err := services.NewSupplierService(nil).Reject(supplierID)
	if err != nil {
		var transitionErr *services.InvalidTransitionError
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Supplier not found"})
		case errors.As(err, &transitionErr):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": transitionErr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to reject supplier"})
		}
		return
	}

	html := buildEmailTemplate(
		"Supplier registration declined",
		[]string{fmt.Sprintf("The registration for %s was not approved.", supplier.CompanyName)},
		nil, "", "",
	)
	sendMailSafe([]string{supplier.Email}, "Supplier registration declined", html)

	c.JSON(http.StatusOK, gin.H{"success": true, "supplier": supplier})
}
