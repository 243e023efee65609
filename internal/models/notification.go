package models

import "time"

type NotificationType string

const (
	NotificationBadgeUnlocked    NotificationType = "badge_unlocked"
	NotificationLevelUp          NotificationType = "level_up"
	NotificationMissionCompleted NotificationType = "mission_completed"
	NotificationSubscription     NotificationType = "subscription"
)

type Notification struct {
	ID        string           `gorm:"primaryKey;type:text" json:"id"`
	UserID    string           `gorm:"index" json:"userId"`
	Type      NotificationType `gorm:"type:text" json:"type"`
	Message   string           `json:"message"`
	IsRead    bool             `gorm:"default:false" json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}
