package models

import "time"

// Course -> CourseModule -> Lesson, with per-user completion rows.

type Course struct {
	ID          string `gorm:"primaryKey;type:text" json:"id"`
	Slug        string `gorm:"uniqueIndex" json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CoverURL    string `json:"coverUrl"`

	Modules []CourseModule `gorm:"foreignKey:CourseID" json:"modules,omitempty"`
}

type CourseModule struct {
	ID       string `gorm:"primaryKey;type:text" json:"id"`
	CourseID string `gorm:"index" json:"courseId"`
	Title    string `json:"title"`
	Position int    `json:"position"`

	Lessons []Lesson `gorm:"foreignKey:ModuleID" json:"lessons,omitempty"`
}

type Lesson struct {
	ID       string `gorm:"primaryKey;type:text" json:"id"`
	ModuleID string `gorm:"index" json:"moduleId"`
	Title    string `json:"title"`
	Content  string `gorm:"type:text" json:"content"`
	Position int    `json:"position"`
	XPReward int    `gorm:"default:25" json:"xpReward"`
}

// LessonProgress marks a lesson as completed for a user. XP for a lesson is
// credited exactly once, on the transition to completed.
type LessonProgress struct {
	UserID      string     `gorm:"primaryKey;type:text" json:"userId"`
	LessonID    string     `gorm:"primaryKey;type:text" json:"lessonId"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
}
