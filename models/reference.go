package models

import "time"

// Reference lookup tables. Single-name rows maintained by administrators;
// no uniqueness is enforced beyond the primary key.

type Carrier struct {
	CarrierID string     `gorm:"primaryKey;column:carrier_id;type:varchar(64)" json:"carrier_id"`
	Name      string     `gorm:"column:name" json:"name"`
	CreateAt  time.Time  `gorm:"column:create_at" json:"create_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

type Incoterm struct {
	IncotermID string     `gorm:"primaryKey;column:incoterm_id;type:varchar(64)" json:"incoterm_id"`
	Code       string     `gorm:"column:code" json:"code"`
	Name       string     `gorm:"column:name" json:"name"`
	CreateAt   time.Time  `gorm:"column:create_at" json:"create_at"`
	DeleteAt   *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

type Currency struct {
	CurrencyID string     `gorm:"primaryKey;column:currency_id;type:varchar(64)" json:"currency_id"`
	Code       string     `gorm:"column:code" json:"code"`
	Name       string     `gorm:"column:name" json:"name"`
	CreateAt   time.Time  `gorm:"column:create_at" json:"create_at"`
	DeleteAt   *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

type UOM struct {
	UOMID    string     `gorm:"primaryKey;column:uom_id;type:varchar(64)" json:"uom_id"`
	Name     string     `gorm:"column:name" json:"name"`
	CreateAt time.Time  `gorm:"column:create_at" json:"create_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

type Urgency struct {
	UrgencyID string     `gorm:"primaryKey;column:urgency_id;type:varchar(64)" json:"urgency_id"`
	Name      string     `gorm:"column:name" json:"name"`
	CreateAt  time.Time  `gorm:"column:create_at" json:"create_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

type ShippingMethod struct {
	ShippingMethodID string     `gorm:"primaryKey;column:shipping_method_id;type:varchar(64)" json:"shipping_method_id"`
	Name             string     `gorm:"column:name" json:"name"`
	CreateAt         time.Time  `gorm:"column:create_at" json:"create_at"`
	DeleteAt         *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

type PaymentTerm struct {
	PaymentTermID string     `gorm:"primaryKey;column:payment_term_id;type:varchar(64)" json:"payment_term_id"`
	Name          string     `gorm:"column:name" json:"name"`
	CreateAt      time.Time  `gorm:"column:create_at" json:"create_at"`
	DeleteAt      *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

type Category struct {
	CategoryID string     `gorm:"primaryKey;column:category_id;type:varchar(64)" json:"category_id"`
	Name       string     `gorm:"column:name" json:"name"`
	CreateAt   time.Time  `gorm:"column:create_at" json:"create_at"`
	DeleteAt   *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// TableName overrides
func (Carrier) TableName() string        { return "carriers" }
func (Incoterm) TableName() string       { return "incoterms" }
func (Currency) TableName() string       { return "currencies" }
func (UOM) TableName() string            { return "uoms" }
func (Urgency) TableName() string        { return "urgencies" }
func (ShippingMethod) TableName() string { return "shipping_methods" }
func (PaymentTerm) TableName() string    { return "payment_terms" }
func (Category) TableName() string       { return "categories" }
