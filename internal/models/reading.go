package models

import (
	"time"

	"github.com/lib/pq"
)

type SpreadType string

const (
	SpreadSingleCard   SpreadType = "single_card"
	SpreadThreeCard    SpreadType = "three_card"
	SpreadCelticCross  SpreadType = "celtic_cross"
	SpreadHorseshoe    SpreadType = "horseshoe"
	SpreadRelationship SpreadType = "relationship"
)

// Reading is one tarot reading performed by a user.
type Reading struct {
	ID         string         `gorm:"primaryKey;type:text" json:"id"`
	UserID     string         `gorm:"index" json:"userId"`
	SpreadType SpreadType     `gorm:"type:text;index" json:"spreadType"`
	Question   string         `json:"question"`
	Cards      pq.StringArray `gorm:"type:text[]" json:"cards"`
	Notes      string         `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time      `gorm:"index" json:"createdAt"`
}
