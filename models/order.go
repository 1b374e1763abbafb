package models

import "time"

// Order moves through exactly two states: unpaid (paid=false) and
// paid. Price is computed once at creation and never recomputed.
type Order struct {
	ID     uint        `gorm:"primaryKey" json:"id"`
	UserID uint        `gorm:"index;not null" json:"-"`
	Items  []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"`
	Date   time.Time   `gorm:"not null" json:"date"`
	Price  float64     `json:"price"`
	Paid   bool        `gorm:"not null" json:"paid"`
}

type OrderItem struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	OrderID       uint        `gorm:"index;not null" json:"-"`
	DefinedItemID uint        `gorm:"not null" json:"-"`
	DefinedItem   DefinedItem `gorm:"foreignKey:DefinedItemID" json:"defined_item"`
	DateAdded     time.Time   `gorm:"not null" json:"date_added"`
}
