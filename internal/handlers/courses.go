package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portal-cosmico/backend/internal/database"
	"github.com/portal-cosmico/backend/internal/models"
	"github.com/portal-cosmico/backend/internal/services"
	"github.com/portal-cosmico/backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListCourses GET /courses
func ListCourses(c *gin.Context) {
	var courses []models.Course
	if err := database.DB.
		Preload("Modules", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Find(&courses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// GetCourse GET /courses/:slug
// Returns the course with the caller's completion state per lesson and an
// overall percent-complete.
func GetCourse(c *gin.Context) {
	userID := c.MustGet("userId").(string)
	slug := c.Param("slug")

	var course models.Course
	if err := database.DB.
		Preload("Modules", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&course, "slug = ?", slug).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	completed := completedLessonSet(userID)

	total := 0
	done := 0
	progress := make(map[string]bool)
	for _, module := range course.Modules {
		for _, lesson := range module.Lessons {
			total++
			if completed[lesson.ID] {
				done++
				progress[lesson.ID] = true
			}
		}
	}

	percentage := 0
	if total > 0 {
		percentage = done * 100 / total
	}

	c.JSON(http.StatusOK, gin.H{
		"course":           course,
		"completedLessons": progress,
		"progress": gin.H{
			"total":      total,
			"completed":  done,
			"percentage": percentage,
		},
	})
}

// CompleteLesson POST /lessons/:id/complete
// First completion credits the lesson's XP and recomputes the level; repeat
// calls are no-ops reporting xpEarned 0.
func CompleteLesson(c *gin.Context) {
	userID := c.MustGet("userId").(string)
	lessonID := c.Param("id")

	var lesson models.Lesson
	if err := database.DB.First(&lesson, "id = ?", lessonID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		return
	}

	var existing models.LessonProgress
	err := database.DB.First(&existing, "user_id = ? AND lesson_id = ?", userID, lessonID).Error
	if err == nil && existing.Completed {
		var user models.User
		if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"xpEarned":         0,
			"newXp":            user.XP,
			"newLevel":         user.Level,
			"leveledUp":        false,
			"alreadyCompleted": true,
			"courseProgress":   courseProgressForLesson(userID, lesson),
		})
		return
	}

	var grant services.XPGrant
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		row := models.LessonProgress{
			UserID:      userID,
			LessonID:    lessonID,
			Completed:   true,
			CompletedAt: &now,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"completed", "completed_at"}),
		}).Create(&row).Error; err != nil {
			return err
		}

		var err error
		grant, err = services.AwardXP(tx, userID, lesson.XPReward, "lesson", lesson.ID)
		return err
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record completion"})
		return
	}

	if grant.LeveledUp {
		services.Notify(userID, models.NotificationLevelUp, "You reached a new level!")
	}

	if _, err := services.CheckAndUnlockBadges(userID); err != nil {
		logger.Warn().Err(err).Str("user", userID).Msg("Post-lesson badge scan failed")
	}

	c.JSON(http.StatusOK, gin.H{
		"xpEarned":         grant.XPEarned,
		"newXp":            grant.NewXP,
		"newLevel":         grant.NewLevel,
		"leveledUp":        grant.LeveledUp,
		"alreadyCompleted": false,
		"courseProgress":   courseProgressForLesson(userID, lesson),
	})
}

func completedLessonSet(userID string) map[string]bool {
	var rows []models.LessonProgress
	database.DB.Where("user_id = ? AND completed = ?", userID, true).Find(&rows)

	set := make(map[string]bool, len(rows))
	for _, row := range rows {
		set[row.LessonID] = true
	}
	return set
}

// courseProgressForLesson recomputes the percent-complete of the course the
// lesson belongs to.
func courseProgressForLesson(userID string, lesson models.Lesson) int {
	var module models.CourseModule
	if err := database.DB.First(&module, "id = ?", lesson.ModuleID).Error; err != nil {
		return 0
	}

	moduleIDs := database.DB.Model(&models.CourseModule{}).Select("id").Where("course_id = ?", module.CourseID)

	var total int64
	database.DB.Model(&models.Lesson{}).Where("module_id IN (?)", moduleIDs).Count(&total)
	if total == 0 {
		return 0
	}

	var done int64
	database.DB.Model(&models.LessonProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Where("lesson_id IN (?)", database.DB.Model(&models.Lesson{}).Select("id").Where("module_id IN (?)", moduleIDs)).
		Count(&done)

	return int(done * 100 / total)
}
