package models

type Item struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:50;not null" json:"name"`
	Description string    `gorm:"size:200" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	ImageFile   string    `gorm:"size:50;not null;default:'shirt.jpg'" json:"image_file"`
	ItemTypeID  *uint     `json:"item_type_id"`
	ItemType    *ItemType `gorm:"foreignKey:ItemTypeID" json:"item_type,omitempty"`
	Reviews     []Review  `gorm:"foreignKey:ItemID" json:"reviews,omitempty"`
}

// ItemType groups items into categories.
type ItemType struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`
}

// DefinedItem is a concrete purchasable variant of an Item: the chosen
// size and quantity. Cart items and order items each reference their
// own DefinedItem row; checkout copies rows instead of re-pointing
// them so an order never shares mutable rows with a live cart.
type DefinedItem struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	ItemID uint   `gorm:"not null" json:"item_id"`
	Item   Item   `gorm:"foreignKey:ItemID" json:"item"`
	Size   string `gorm:"size:10;not null" json:"size"`
	Amount int    `gorm:"not null" json:"amount"`
}

// Size is the dictionary of selectable sizes.
type Size struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Size  string `gorm:"size:10;not null" json:"size"`
	Value string `gorm:"size:10;not null" json:"value"`
}
