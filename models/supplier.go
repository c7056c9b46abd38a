package models

import "time"

// Supplier statuses. "Active" keeps its legacy casing because existing
// clients match on the literal value.
const (
	SupplierStatusPending  = "pending"
	SupplierStatusActive   = "Active"
	SupplierStatusRejected = "rejected"
)

// Supplier represents a registered vendor. The registration email is unique
// and is the join key to the provisioned User account.
type Supplier struct {
	SupplierID    string     `gorm:"primaryKey;column:supplier_id;type:varchar(64)" json:"supplier_id"`
	CompanyName   string     `gorm:"column:company_name" json:"company_name"`
	Email         string     `gorm:"column:email;unique" json:"email"`
	Status        string     `gorm:"column:status" json:"status"`
	SupplierType  string     `gorm:"column:supplier_type" json:"supplier_type"`
	ContactPerson string     `gorm:"column:contact_person" json:"contact_person"`
	Phone         string     `gorm:"column:phone" json:"phone"`
	Address       string     `gorm:"column:address" json:"address"`
	City          string     `gorm:"column:city" json:"city"`
	Country       string     `gorm:"column:country" json:"country"`
	TaxID         string     `gorm:"column:tax_id" json:"tax_id"`
	CreateAt      time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt      *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt      *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	User *User `gorm:"foreignKey:SupplierID;references:SupplierID" json:"user,omitempty"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
