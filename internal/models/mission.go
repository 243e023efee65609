package models

import "time"

type MissionType string

const (
	MissionDaily       MissionType = "daily"
	MissionWeekly      MissionType = "weekly"
	MissionAchievement MissionType = "achievement"
)

// Mission is a static definition sharing the badge requirement shape.
type Mission struct {
	ID          string      `gorm:"primaryKey;type:text" json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        MissionType `gorm:"type:text;index" json:"type"`

	Requirement Requirement `gorm:"serializer:json;type:text" json:"requirement"`

	XPReward      int     `gorm:"default:0" json:"xpReward"`
	CrystalReward int     `gorm:"default:0" json:"crystalReward"`
	BadgeRewardID *string `json:"badgeRewardId"`

	Active bool `gorm:"default:true" json:"active"`
}

// UserMission caches the last computed progress for a mission. The stored
// value is a fallback only; the authoritative percentage is recomputed from
// live activity counters on every listing.
type UserMission struct {
	UserID    string    `gorm:"primaryKey;type:text" json:"userId"`
	MissionID string    `gorm:"primaryKey;type:text" json:"missionId"`
	Progress  int       `gorm:"default:0" json:"progress"`
	UpdatedAt time.Time `json:"updatedAt"`
}
