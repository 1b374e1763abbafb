package models

type User struct {
	ID       uint     `gorm:"primaryKey" json:"-"`
	PublicID string   `gorm:"uniqueIndex;size:64" json:"public_id"`
	Username string   `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email    string   `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Password string   `gorm:"size:300;not null" json:"-"` // bcrypt hash, never serialized
	IsAdmin  bool     `gorm:"not null;default:false" json:"is_admin"`
	Info     UserInfo `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"info"`
	Cart     Cart     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Orders   []Order  `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	Reviews  []Review `gorm:"foreignKey:UserID" json:"reviews,omitempty"`
}

// UserInfo holds profile fields, one row per user, created empty at registration.
type UserInfo struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"uniqueIndex" json:"-"`
	FirstName   string `gorm:"size:30" json:"first_name"`
	LastName    string `gorm:"size:30" json:"last_name"`
	PhoneNumber string `gorm:"size:30" json:"phone_number"`
	Address     string `gorm:"size:100" json:"address"`
}
