package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name      string `json:"name"`
	Email     string `gorm:"uniqueIndex" json:"email"`
	Username  string `gorm:"uniqueIndex" json:"username"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`

	Role Role `gorm:"type:text;default:'USER'" json:"role"`

	// Progression state. XP only ever increases; Level is derived from XP and
	// recomputed whenever XP is credited. Crystals move both ways (rewards
	// credit, shop purchases debit).
	XP       int `gorm:"default:0" json:"xp"`
	Level    int `gorm:"default:1" json:"level"`
	Crystals int `gorm:"default:0" json:"crystals"`

	// Consecutive-day activity counter, maintained by the activity tracker
	// when readings or daily challenges come in.
	Streak       int        `gorm:"default:0" json:"streak"`
	LastActiveAt *time.Time `json:"lastActiveAt"`

	Password string `json:"-"`
}

// XPEvent is the append-only ledger behind every XP credit (badge unlocks,
// lesson completions, readings, daily challenges). Windowed leaderboards sum
// over it.
type XPEvent struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	UserID    string    `gorm:"index" json:"userId"`
	Amount    int       `json:"amount"`
	Source    string    `json:"source"`    // badge, lesson, reading, daily_challenge
	Reference string    `json:"reference"` // slug or id of the thing that paid out
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}
