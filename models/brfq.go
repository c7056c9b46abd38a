package models

import "time"

// BRFQ lifecycle statuses. "PUBLISHED" keeps its legacy casing because
// existing clients match on the literal value.
const (
	BRFQStatusDraft     = "draft"
	BRFQStatusPublished = "PUBLISHED"
	BRFQStatusPending   = "pending"
	BRFQStatusApproved  = "approved"
	BRFQStatusRejected  = "rejected"
)

// BRFQ is a buyer-initiated request for quotation.
type BRFQ struct {
	BRFQID         string     `gorm:"primaryKey;column:brfq_id;type:varchar(64)" json:"brfq_id"`
	Title          string     `gorm:"column:title" json:"title"`
	Description    string     `gorm:"column:description" json:"description"`
	Category       string     `gorm:"column:category" json:"category"`
	Status         string     `gorm:"column:status" json:"status"`
	ApprovalStatus string     `gorm:"column:approval_status" json:"approval_status"`
	Published      bool       `gorm:"column:published" json:"published"`
	RequestedBy    string     `gorm:"column:requested_by;type:varchar(64)" json:"requested_by"`
	DecidedBy      *string    `gorm:"column:decided_by;type:varchar(64)" json:"decided_by,omitempty"`
	DecidedAt      *time.Time `gorm:"column:decided_at" json:"decided_at,omitempty"`
	DecisionNote   *string    `gorm:"column:decision_note" json:"decision_note,omitempty"`
	CloseDate      *time.Time `gorm:"column:close_date" json:"close_date,omitempty"`
	CreateAt       time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt       *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt       *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Requester      *User             `gorm:"foreignKey:RequestedBy" json:"requester,omitempty"`
	ScopeOfWork    []ScopeOfWorkItem `gorm:"foreignKey:BRFQID" json:"scope_of_work,omitempty"`
	LineItems      []BRFQLineItem    `gorm:"foreignKey:BRFQID" json:"line_items,omitempty"`
	Suppliers      []Supplier        `gorm:"many2many:brfq_suppliers;foreignKey:BRFQID;joinForeignKey:BRFQID;references:SupplierID;joinReferences:SupplierID" json:"suppliers,omitempty"`
	Quotes         []Quote           `gorm:"foreignKey:BRFQID" json:"quotes,omitempty"`
}

// ScopeOfWorkItem is a single scope entry owned by a BRFQ.
type ScopeOfWorkItem struct {
	ScopeItemID string `gorm:"primaryKey;column:scope_item_id;type:varchar(64)" json:"scope_item_id"`
	BRFQID      string `gorm:"column:brfq_id;type:varchar(64)" json:"brfq_id"`
	Description string `gorm:"column:description" json:"description"`
	SortOrder   int    `gorm:"column:sort_order" json:"sort_order"`
}

// BRFQLineItem is a requested line owned by a BRFQ; quotes price against it.
type BRFQLineItem struct {
	LineItemID  string  `gorm:"primaryKey;column:line_item_id;type:varchar(64)" json:"line_item_id"`
	BRFQID      string  `gorm:"column:brfq_id;type:varchar(64)" json:"brfq_id"`
	Name        string  `gorm:"column:name" json:"name"`
	Description string  `gorm:"column:description" json:"description"`
	Quantity    float64 `gorm:"column:quantity" json:"quantity"`
	UOM         string  `gorm:"column:uom" json:"uom"`
}

// TableName overrides
func (BRFQ) TableName() string {
	return "brfqs"
}

func (ScopeOfWorkItem) TableName() string {
	return "brfq_scope_items"
}

func (BRFQLineItem) TableName() string {
	return "brfq_line_items"
}
