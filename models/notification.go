package models

import "time"

type Notification struct {
	NotificationID string     `gorm:"primaryKey;column:notification_id;type:varchar(64)" json:"notification_id"`
	UserID         string     `gorm:"column:user_id;type:varchar(64)" json:"user_id"`
	Title          string     `gorm:"column:title" json:"title"`
	Message        string     `gorm:"column:message" json:"message"`
	Type           string     `gorm:"column:type" json:"type"` // info|success|warning|error
	RelatedBRFQID  *string    `gorm:"column:related_brfq_id;type:varchar(64)" json:"related_brfq_id,omitempty"`
	IsRead         bool       `gorm:"column:is_read" json:"is_read"`
	CreateAt       time.Time  `gorm:"column:create_at" json:"created_at"`
	UpdateAt       *time.Time `gorm:"column:update_at" json:"-"`
}

func (Notification) TableName() string { return "notifications" }
