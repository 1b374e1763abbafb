package models

import "time"

type Cart struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	UserID uint       `gorm:"uniqueIndex" json:"-"` // Enforces ONE cart per user
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type CartItem struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	CartID        uint        `gorm:"index;not null" json:"-"`
	DefinedItemID uint        `gorm:"not null" json:"-"`
	DefinedItem   DefinedItem `gorm:"foreignKey:DefinedItemID" json:"defined_item"`
	DateAdded     time.Time   `gorm:"not null" json:"date_added"`
}
