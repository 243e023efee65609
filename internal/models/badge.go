package models

import "time"

type BadgeCategory string
type BadgeRarity string

const (
	BadgeCategoryReadings BadgeCategory = "READINGS"
	BadgeCategoryLearning BadgeCategory = "LEARNING"
	BadgeCategoryStreak   BadgeCategory = "STREAK"
	BadgeCategoryJournal  BadgeCategory = "JOURNAL"
	BadgeCategoryExplorer BadgeCategory = "EXPLORER"

	RarityCommon    BadgeRarity = "COMMON"
	RarityRare      BadgeRarity = "RARE"
	RarityEpic      BadgeRarity = "EPIC"
	RarityLegendary BadgeRarity = "LEGENDARY"
)

// Badge is a static definition seeded once; never mutated at runtime.
type Badge struct {
	ID          string        `gorm:"primaryKey;type:text" json:"id"`
	Slug        string        `gorm:"uniqueIndex" json:"slug"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"` // Name of the Lucide icon
	Category    BadgeCategory `gorm:"type:text" json:"category"`
	Rarity      BadgeRarity   `gorm:"type:text;default:'COMMON'" json:"rarity"`

	Requirement Requirement `gorm:"serializer:json;type:text" json:"requirement"`

	XPReward      int `gorm:"default:0" json:"xpReward"`
	CrystalReward int `gorm:"default:0" json:"crystalReward"`
}

// UserBadge records a single unlock. The composite primary key doubles as
// the uniqueness constraint: at most one row per (user, badge) even under
// concurrent unlock attempts. Rows are never updated or deleted.
type UserBadge struct {
	UserID   string    `gorm:"primaryKey;type:text" json:"userId"`
	BadgeID  string    `gorm:"primaryKey;type:text" json:"badgeId"`
	EarnedAt time.Time `gorm:"index" json:"earnedAt"`

	Badge Badge `gorm:"foreignKey:BadgeID" json:"badge"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`
}
