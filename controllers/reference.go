package controllers

import (
	"net/http"
	"time"

	"procurement-api/config"
	"procurement-api/models"
	"procurement-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// referenceEntry describes one lookup table exposed through the generic
// reference-data endpoints. newRow returns a fresh row with id and name set.
type referenceEntry struct {
	tableName string
	keyColumn string
	newList   func() interface{}
	newRow    func(id, name string, now time.Time) interface{}
}

var referenceRegistry = map[string]referenceEntry{
	"carriers": {
		tableName: "carriers",
		keyColumn: "carrier_id",
		newList:   func() interface{} { return &[]models.Carrier{} },
		newRow: func(id, name string, now time.Time) interface{} {
			return &models.Carrier{CarrierID: id, Name: name, CreateAt: now}
		},
	},
	"incoterms": {
		tableName: "incoterms",
		keyColumn: "incoterm_id",
		newList:   func() interface{} { return &[]models.Incoterm{} },
		newRow: func(id, name string, now time.Time) interface{} {
			return &models.Incoterm{IncotermID: id, Code: name, Name: name, CreateAt: now}
		},
	},
	"currencies": {
		tableName: "currencies",
		keyColumn: "currency_id",
		newList:   func() interface{} { return &[]models.Currency{} },
		newRow: func(id, name string, now time.Time) interface{} {
			return &models.Currency{CurrencyID: id, Code: name, Name: name, CreateAt: now}
		},
	},
	"uoms": {
		tableName: "uoms",
		keyColumn: "uom_id",
		newList:   func() interface{} { return &[]models.UOM{} },
		newRow: func(id, name string, now time.Time) interface{} {
			return &models.UOM{UOMID: id, Name: name, CreateAt: now}
		},
	},
	"urgencies": {
		tableName: "urgencies",
		keyColumn: "urgency_id",
		newList:   func() interface{} { return &[]models.Urgency{} },
		newRow: func(id, name string, now time.Time) interface{} {
			return &models.Urgency{UrgencyID: id, Name: name, CreateAt: now}
		},
	},
	"shipping-methods": {
		tableName: "shipping_methods",
		keyColumn: "shipping_method_id",
		newList:   func() interface{} { return &[]models.ShippingMethod{} },
		newRow: func(id, name string, now time.Time) interface{} {
			return &models.ShippingMethod{ShippingMethodID: id, Name: name, CreateAt: now}
		},
	},
	"payment-terms": {
		tableName: "payment_terms",
		keyColumn: "payment_term_id",
		newList:   func() interface{} { return &[]models.PaymentTerm{} },
		newRow: func(id, name string, now time.Time) interface{} {
			return &models.PaymentTerm{PaymentTermID: id, Name: name, CreateAt: now}
		},
	},
	"categories": {
		tableName: "categories",
		keyColumn: "category_id",
		newList:   func() interface{} { return &[]models.Category{} },
		newRow: func(id, name string, now time.Time) interface{} {
			return &models.Category{CategoryID: id, Name: name, CreateAt: now}
		},
	},
}

func referenceEntryFor(c *gin.Context) (referenceEntry, bool) {
	entry, ok := referenceRegistry[c.Param("table")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Unknown reference table"})
	}
	return entry, ok
}

// ListReference returns all active rows of one lookup table.
func ListReference(c *gin.Context) {
	entry, ok := referenceEntryFor(c)
	if !ok {
		return
	}

	list := entry.newList()
	if err := config.DB.Where("delete_at IS NULL").Order("name ASC").Find(list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch reference data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// CreateReference inserts a named row into one lookup table.
func CreateReference(c *gin.Context) {
	entry, ok := referenceEntryFor(c)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	name := utils.SanitizeInput(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Name must not be empty"})
		return
	}

	row := entry.newRow(uuid.NewString(), name, time.Now())
	if err := config.DB.Create(row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create reference row"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": row})
}

// DeleteReference soft-deletes one lookup row.
func DeleteReference(c *gin.Context) {
	entry, ok := referenceEntryFor(c)
	if !ok {
		return
	}

	res := config.DB.Table(entry.tableName).
		Where(entry.keyColumn+" = ? AND delete_at IS NULL", c.Param("id")).
		Update("delete_at", time.Now())
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete reference row"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Reference row not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
