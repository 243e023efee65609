package models

// RequirementType tags the rule a badge or mission checks against the
// user's activity counters. Several legacy aliases map to the same counter;
// the canonical grouping lives in services.
type RequirementType string

const (
	ReqStreakDays           RequirementType = "streak_days"
	ReqDailyChallengeStreak RequirementType = "daily_challenge_streak"

	ReqDailyChallengeCount RequirementType = "daily_challenge_count"
	ReqDailyChallenge      RequirementType = "daily_challenge"

	ReqLessonsCompleted RequirementType = "lessons_completed"
	ReqReadLesson       RequirementType = "read_lesson"
	ReqCompleteLessons  RequirementType = "complete_lessons"

	ReqReadingsCount  RequirementType = "readings_count"
	ReqCreateReading  RequirementType = "create_reading"
	ReqCreateReadings RequirementType = "create_readings"

	ReqReflectionsCount RequirementType = "reflections_count"
	ReqWriteReflection  RequirementType = "write_reflection"

	ReqUseSpreadTypes RequirementType = "use_spread_types"

	ReqModuleCompleted    RequirementType = "module_completed"
	ReqAllModulesComplete RequirementType = "all_modules_completed"

	// Declared but not yet backed by counters. Evaluation fails closed.
	ReqMoonPhasesReadings   RequirementType = "moon_phases_readings"
	ReqCorrectStreak        RequirementType = "correct_streak"
	ReqCardsViewed          RequirementType = "cards_viewed"
	ReqSymbolsIdentified    RequirementType = "symbols_identified"
	ReqCompletionPercentage RequirementType = "completion_percentage"
	ReqSeasonalEvent        RequirementType = "seasonal_event"
)

// Requirement is the rule attached to badges and missions. It is stored as a
// JSON column and parsed into this struct at the storage boundary; raw JSON
// never reaches business logic.
type Requirement struct {
	Type       RequirementType `json:"type"`
	Target     int             `json:"target,omitempty"`
	MinWords   int             `json:"minWords,omitempty"`
	ModuleID   string          `json:"moduleId,omitempty"`
	CourseSlug string          `json:"courseSlug,omitempty"`
}

// TargetOrDefault returns the requirement target, defaulting to 1 when absent.
func (r Requirement) TargetOrDefault() int {
	if r.Target <= 0 {
		return 1
	}
	return r.Target
}

// MinWordsOrDefault returns the reflection length threshold, defaulting to 50.
func (r Requirement) MinWordsOrDefault() int {
	if r.MinWords <= 0 {
		return 50
	}
	return r.MinWords
}
