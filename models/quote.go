package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a supplier's priced response to a BRFQ. The BRFQ and supplier
// references come from the signed invite token, never from the client body.
type Quote struct {
	QuoteID         string          `gorm:"primaryKey;column:quote_id;type:varchar(64)" json:"quote_id"`
	BRFQID          string          `gorm:"column:brfq_id;type:varchar(64)" json:"brfq_id"`
	SupplierID      string          `gorm:"column:supplier_id;type:varchar(64)" json:"supplier_id"`
	SupplierQuoteNo string          `gorm:"column:supplier_quote_no" json:"supplier_quote_no"`
	ValidFor        int             `gorm:"column:valid_for" json:"valid_for"`
	Currency        string          `gorm:"column:currency" json:"currency"`
	Shipping        string          `gorm:"column:shipping" json:"shipping"`
	TotalAmount     decimal.Decimal `gorm:"column:total_amount;type:decimal(18,2)" json:"total_amount"`
	SubmittedAt     time.Time       `gorm:"column:submitted_at" json:"submitted_at"`
	CreateAt        time.Time       `gorm:"column:create_at" json:"create_at"`
	DeleteAt        *time.Time      `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations. Items are owned exclusively and go away with the quote.
	Items    []QuoteItem `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Supplier *Supplier   `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

type QuoteItem struct {
	QuoteItemID string          `gorm:"primaryKey;column:quote_item_id;type:varchar(64)" json:"quote_item_id"`
	QuoteID     string          `gorm:"column:quote_id;type:varchar(64)" json:"quote_id"`
	LineItemID  *string         `gorm:"column:line_item_id;type:varchar(64)" json:"line_item_id,omitempty"`
	Description string          `gorm:"column:description" json:"description"`
	Quantity    decimal.Decimal `gorm:"column:quantity;type:decimal(18,3)" json:"quantity"`
	UOM         string          `gorm:"column:uom" json:"uom"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:decimal(18,2)" json:"unit_price"`
	LineTotal   decimal.Decimal `gorm:"column:line_total;type:decimal(18,2)" json:"line_total"`
}

// TableName overrides
func (Quote) TableName() string {
	return "quotes"
}

func (QuoteItem) TableName() string {
	return "quote_items"
}
