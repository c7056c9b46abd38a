package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Award is the result of a BRFQ; it owns winner and approval records.
type Award struct {
	AwardID   string     `gorm:"primaryKey;column:award_id;type:varchar(64)" json:"award_id"`
	BRFQID    string     `gorm:"column:brfq_id;type:varchar(64)" json:"brfq_id"`
	Status    string     `gorm:"column:status" json:"status"`
	CreatedBy string     `gorm:"column:created_by;type:varchar(64)" json:"created_by"`
	CreateAt  time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt  *time.Time `gorm:"column:update_at" json:"update_at"`

	// Relations
	Winners   []AwardWinner   `gorm:"foreignKey:AwardID" json:"winners,omitempty"`
	Approvals []AwardApproval `gorm:"foreignKey:AwardID" json:"approvals,omitempty"`
}

type AwardWinner struct {
	WinnerID   string          `gorm:"primaryKey;column:winner_id;type:varchar(64)" json:"winner_id"`
	AwardID    string          `gorm:"column:award_id;type:varchar(64)" json:"award_id"`
	SupplierID string          `gorm:"column:supplier_id;type:varchar(64)" json:"supplier_id"`
	QuoteID    string          `gorm:"column:quote_id;type:varchar(64)" json:"quote_id"`
	Amount     decimal.Decimal `gorm:"column:amount;type:decimal(18,2)" json:"amount"`

	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

type AwardApproval struct {
	ApprovalID string     `gorm:"primaryKey;column:approval_id;type:varchar(64)" json:"approval_id"`
	AwardID    string     `gorm:"column:award_id;type:varchar(64)" json:"award_id"`
	Approver   string     `gorm:"column:approver;type:varchar(64)" json:"approver"`
	Decision   string     `gorm:"column:decision" json:"decision"`
	Note       *string    `gorm:"column:note" json:"note,omitempty"`
	DecidedAt  *time.Time `gorm:"column:decided_at" json:"decided_at,omitempty"`
}

// TableName overrides
func (Award) TableName() string {
	return "awards"
}

func (AwardWinner) TableName() string {
	return "award_winners"
}

func (AwardApproval) TableName() string {
	return "award_approvals"
}
