package models

import "time"

type Review struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	UserID  uint      `gorm:"index" json:"user_id"`
	ItemID  uint      `gorm:"index" json:"item_id"`
	Comment string    `gorm:"not null" json:"comment"`
	Rating  int       `gorm:"not null" json:"rating"`
	Date    time.Time `gorm:"not null" json:"date"`
}
