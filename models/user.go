package models

import (
	"time"
)

// User account types. Supplier accounts are provisioned lazily when a
// supplier registration is approved.
const (
	UserTypeAdmin    = "ADMIN"
	UserTypeBuyer    = "BUYER"
	UserTypeSupplier = "SUPPLIER"
)

type User struct {
	UserID     string     `gorm:"primaryKey;column:user_id;type:varchar(64)" json:"user_id"`
	Username   string     `gorm:"column:username" json:"username"`
	Email      string     `gorm:"column:email;unique" json:"email"`
	Password   string     `gorm:"column:password" json:"-"`
	Type       string     `gorm:"column:type" json:"type"`
	SupplierID *string    `gorm:"column:supplier_id;type:varchar(64)" json:"supplier_id,omitempty"`
	CreateAt   *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt   *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt   *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

func (User) TableName() string {
	return "users"
}
