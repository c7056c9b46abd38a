package models

import "time"

// Modification request statuses and recorded actions.
const (
	ModificationStatusPending  = "pending"
	ModificationStatusApproved = "approved"
	ModificationStatusRejected = "rejected"

	ModificationActionApprove = "approve"
	ModificationActionReject  = "reject"
)

// ModificationRequest is a proposed change to a published BRFQ. Leaving
// "pending" is one-way; every decision appends a ModificationAction row.
type ModificationRequest struct {
	ModificationID string     `gorm:"primaryKey;column:modification_id;type:varchar(64)" json:"modification_id"`
	BRFQID         string     `gorm:"column:brfq_id;type:varchar(64)" json:"brfq_id"`
	RequestedBy    string     `gorm:"column:requested_by;type:varchar(64)" json:"requested_by"`
	Summary        string     `gorm:"column:summary" json:"summary"`
	Details        *string    `gorm:"column:details" json:"details,omitempty"`
	Status         string     `gorm:"column:status" json:"status"`
	ProcessedBy    *string    `gorm:"column:processed_by;type:varchar(64)" json:"processed_by,omitempty"`
	ProcessedAt    *time.Time `gorm:"column:processed_at" json:"processed_at,omitempty"`
	Note           *string    `gorm:"column:note" json:"note,omitempty"`
	CreateAt       time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt       *time.Time `gorm:"column:update_at" json:"update_at"`

	// Relations
	History []ModificationAction `gorm:"foreignKey:ModificationID" json:"history,omitempty"`
}

// ModificationAction is an immutable audit record of a decision taken on a
// modification request. Rows are only ever inserted.
type ModificationAction struct {
	ActionID       string    `gorm:"primaryKey;column:action_id;type:varchar(64)" json:"action_id"`
	ModificationID string    `gorm:"column:modification_id;type:varchar(64)" json:"modification_id"`
	Action         string    `gorm:"column:action" json:"action"`
	ActedBy        string    `gorm:"column:acted_by;type:varchar(64)" json:"acted_by"`
	Note           *string   `gorm:"column:note" json:"note,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides
func (ModificationRequest) TableName() string {
	return "modification_requests"
}

func (ModificationAction) TableName() string {
	return "modification_actions"
}
