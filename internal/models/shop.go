package models

import "time"

type ItemType string

const (
	ItemCardBack ItemType = "card_back"
	ItemFrame    ItemType = "frame"
	ItemTheme    ItemType = "theme"
)

// ShopItem is a cosmetic priced in crystals.
type ShopItem struct {
	ID          string   `gorm:"primaryKey;type:text" json:"id"`
	Slug        string   `gorm:"uniqueIndex" json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        ItemType `gorm:"type:text;index" json:"type"`
	Price       int      `json:"price"`
	PreviewURL  string   `json:"previewUrl"`
	Available   bool     `gorm:"default:true" json:"available"`
}

// UserItem is an inventory row. At most one item per type may be equipped
// for a given user; the equip handler clears siblings before setting.
type UserItem struct {
	UserID      string    `gorm:"primaryKey;type:text" json:"userId"`
	ItemID      string    `gorm:"primaryKey;type:text" json:"itemId"`
	Equipped    bool      `gorm:"default:false" json:"equipped"`
	PurchasedAt time.Time `json:"purchasedAt"`

	Item ShopItem `gorm:"foreignKey:ItemID" json:"item"`
}
