package models

import "time"

// DailyChallenge is the card prompt of the day, seeded ahead of time.
type DailyChallenge struct {
	ID       string    `gorm:"primaryKey;type:text" json:"id"`
	Date     time.Time `gorm:"uniqueIndex" json:"date"` // midnight UTC
	CardName string    `json:"cardName"`
	Prompt   string    `gorm:"type:text" json:"prompt"`
}

// UserDailyChallenge records a user's answer to a daily challenge. Answers
// long enough to pass the reflection threshold also count as reflections.
type UserDailyChallenge struct {
	UserID      string     `gorm:"primaryKey;type:text" json:"userId"`
	ChallengeID string     `gorm:"primaryKey;type:text" json:"challengeId"`
	Answer      string     `gorm:"type:text" json:"answer"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`

	Challenge DailyChallenge `gorm:"foreignKey:ChallengeID" json:"challenge,omitempty"`
}
