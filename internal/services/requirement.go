package services

import (
	"github.com/portal-cosmico/backend/internal/models"
	"gorm.io/gorm"
)

// EvaluateRequirement reports whether the user's activity satisfies the
// requirement. Pure read-then-compare; no side effects. Unknown or not yet
// backed requirement kinds fail closed and never unlock anything.
func EvaluateRequirement(db *gorm.DB, userID string, req models.Requirement) (bool, error) {
	switch req.Type {
	case models.ReqModuleCompleted:
		return moduleCompleted(db, userID, req.ModuleID)
	case models.ReqAllModulesComplete:
		return allModulesCompleted(db, userID, req.CourseSlug)
	}

	current, supported, err := RequirementProgress(db, userID, req)
	if err != nil {
		return false, err
	}
	if !supported {
		return false, nil
	}
	return current >= int64(req.TargetOrDefault()), nil
}

// RequirementProgress returns the current counter value for requirement
// kinds that map onto a numeric activity counter. Module-completion and the
// not-yet-backed kinds report supported=false.
func RequirementProgress(db *gorm.DB, userID string, req models.Requirement) (current int64, supported bool, err error) {
	switch req.Type {
	case models.ReqStreakDays, models.ReqDailyChallengeStreak:
		var user models.User
		if err := db.Select("streak").First(&user, "id = ?", userID).Error; err != nil {
			return 0, false, err
		}
		return int64(user.Streak), true, nil

	case models.ReqDailyChallengeCount, models.ReqDailyChallenge:
		var n int64
		err := db.Model(&models.UserDailyChallenge{}).
			Where("user_id = ? AND completed = ?", userID, true).
			Count(&n).Error
		return n, true, err

	case models.ReqLessonsCompleted, models.ReqReadLesson, models.ReqCompleteLessons:
		var n int64
		err := db.Model(&models.LessonProgress{}).
			Where("user_id = ? AND completed = ?", userID, true).
			Count(&n).Error
		return n, true, err

	case models.ReqReadingsCount, models.ReqCreateReading, models.ReqCreateReadings:
		var n int64
		err := db.Model(&models.Reading{}).Where("user_id = ?", userID).Count(&n).Error
		return n, true, err

	case models.ReqReflectionsCount, models.ReqWriteReflection:
		var n int64
		err := db.Model(&models.UserDailyChallenge{}).
			Where("user_id = ? AND completed = ? AND LENGTH(answer) >= ?", userID, true, req.MinWordsOrDefault()).
			Count(&n).Error
		return n, true, err

	case models.ReqUseSpreadTypes:
		var n int64
		err := db.Model(&models.Reading{}).
			Where("user_id = ?", userID).
			Distinct("spread_type").
			Count(&n).Error
		return n, true, err
	}

	// Stubs (moon_phases_readings, correct_streak, cards_viewed,
	// symbols_identified, completion_percentage, seasonal_event) and any
	// unknown kind land here.
	return 0, false, nil
}

func moduleCompleted(db *gorm.DB, userID, moduleID string) (bool, error) {
	if moduleID == "" {
		return false, nil
	}

	var total int64
	if err := db.Model(&models.Lesson{}).Where("module_id = ?", moduleID).Count(&total).Error; err != nil {
		return false, err
	}
	if total == 0 {
		return false, nil
	}

	var done int64
	err := db.Model(&models.LessonProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Where("lesson_id IN (?)", db.Model(&models.Lesson{}).Select("id").Where("module_id = ?", moduleID)).
		Count(&done).Error
	if err != nil {
		return false, err
	}
	return done >= total, nil
}

func allModulesCompleted(db *gorm.DB, userID, courseSlug string) (bool, error) {
	if courseSlug == "" {
		return false, nil
	}

	var course models.Course
	if err := db.First(&course, "slug = ?", courseSlug).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}

	lessonIDs := db.Model(&models.Lesson{}).Select("id").
		Where("module_id IN (?)", db.Model(&models.CourseModule{}).Select("id").Where("course_id = ?", course.ID))

	var total int64
	if err := db.Model(&models.Lesson{}).
		Where("module_id IN (?)", db.Model(&models.CourseModule{}).Select("id").Where("course_id = ?", course.ID)).
		Count(&total).Error; err != nil {
		return false, err
	}
	if total == 0 {
		return false, nil
	}

	var done int64
	err := db.Model(&models.LessonProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Where("lesson_id IN (?)", lessonIDs).
		Count(&done).Error
	if err != nil {
		return false, err
	}
	return done >= total, nil
}
