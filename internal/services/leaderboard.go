package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/portal-cosmico/backend/internal/database"
	apperrors "github.com/portal-cosmico/backend/pkg/errors"
	"gorm.io/gorm"
)

type LeaderboardType string
type LeaderboardCategory string

const (
	LeaderboardGlobal  LeaderboardType = "GLOBAL"
	LeaderboardWeekly  LeaderboardType = "WEEKLY"
	LeaderboardMonthly LeaderboardType = "MONTHLY"

	CategoryXP       LeaderboardCategory = "XP"
	CategoryStreak   LeaderboardCategory = "STREAK"
	CategoryReadings LeaderboardCategory = "READINGS"
	CategoryBadges   LeaderboardCategory = "BADGES"
)

const leaderboardTTL = 30 * time.Second

type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	Level     int    `json:"level"`
	Value     int64  `json:"value"`
}

// ParseLeaderboardType normalizes the query-string value.
func ParseLeaderboardType(s string) (LeaderboardType, error) {
	switch LeaderboardType(strings.ToUpper(s)) {
	case LeaderboardGlobal, "":
		return LeaderboardGlobal, nil
	case LeaderboardWeekly:
		return LeaderboardWeekly, nil
	case LeaderboardMonthly:
		return LeaderboardMonthly, nil
	}
	return "", apperrors.BadRequest("Unknown leaderboard type")
}

func ParseLeaderboardCategory(s string) (LeaderboardCategory, error) {
	switch LeaderboardCategory(strings.ToUpper(s)) {
	case CategoryXP, "":
		return CategoryXP, nil
	case CategoryStreak:
		return CategoryStreak, nil
	case CategoryReadings:
		return CategoryReadings, nil
	case CategoryBadges:
		return CategoryBadges, nil
	}
	return "", apperrors.BadRequest("Unknown leaderboard category")
}

// Leaderboard returns one page of the ranked board.
func Leaderboard(lbType LeaderboardType, category LeaderboardCategory, limit, offset int) ([]LeaderboardEntry, error) {
	entries, err := fullLeaderboard(lbType, category)
	if err != nil {
		return nil, err
	}

	if offset >= len(entries) {
		return []LeaderboardEntry{}, nil
	}
	end := offset + limit
	if end > len(entries) {
		end = len(entries)
	}
	return entries[offset:end], nil
}

// MyPosition locates the caller on the board.
func MyPosition(userID string, lbType LeaderboardType, category LeaderboardCategory) (*LeaderboardEntry, error) {
	entries, err := fullLeaderboard(lbType, category)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].UserID == userID {
			return &entries[i], nil
		}
	}
	return nil, apperrors.NotFound("User not ranked")
}

// fullLeaderboard computes (or serves from cache) the complete ranked list
// for one (type, category) pair. The board is small enough that ranking in
// memory after one aggregate query beats a window-function round trip.
func fullLeaderboard(lbType LeaderboardType, category LeaderboardCategory) ([]LeaderboardEntry, error) {
	cacheKey := fmt.Sprintf("leaderboard:%s:%s", lbType, category)
	if database.Redis != nil {
		var cached []LeaderboardEntry
		if err := database.CacheGet(cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	entries, err := queryLeaderboard(database.DB, lbType, category)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}

	if database.Redis != nil {
		_ = database.CacheSet(cacheKey, entries, leaderboardTTL)
	}
	return entries, nil
}

func queryLeaderboard(db *gorm.DB, lbType LeaderboardType, category LeaderboardCategory) ([]LeaderboardEntry, error) {
	since := windowStart(lbType)

	base := db.Table("users").
		Where("users.deleted_at IS NULL").
		Order("value DESC, users.username ASC")

	selectCols := "users.id AS user_id, users.username, users.name, users.avatar_url, users.level"

	var q *gorm.DB
	switch category {
	case CategoryXP:
		if since == nil {
			q = base.Select(selectCols + ", users.xp AS value")
		} else {
			q = base.Select(selectCols+", COALESCE(SUM(xp_events.amount), 0) AS value").
				Joins("LEFT JOIN xp_events ON xp_events.user_id = users.id AND xp_events.created_at >= ?", *since).
				Group("users.id")
		}

	case CategoryStreak:
		// Streak is a current-state counter; the time window does not apply.
		q = base.Select(selectCols + ", users.streak AS value")

	case CategoryReadings:
		join := "LEFT JOIN readings ON readings.user_id = users.id"
		if since != nil {
			q = base.Select(selectCols+", COUNT(readings.id) AS value").
				Joins(join+" AND readings.created_at >= ?", *since).
				Group("users.id")
		} else {
			q = base.Select(selectCols + ", COUNT(readings.id) AS value").
				Joins(join).
				Group("users.id")
		}

	case CategoryBadges:
		join := "LEFT JOIN user_badges ON user_badges.user_id = users.id"
		if since != nil {
			q = base.Select(selectCols+", COUNT(user_badges.badge_id) AS value").
				Joins(join+" AND user_badges.earned_at >= ?", *since).
				Group("users.id")
		} else {
			q = base.Select(selectCols + ", COUNT(user_badges.badge_id) AS value").
				Joins(join).
				Group("users.id")
		}

	default:
		return nil, apperrors.BadRequest("Unknown leaderboard category")
	}

	var entries []LeaderboardEntry
	if err := q.Scan(&entries).Error; err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []LeaderboardEntry{}
	}
	return entries, nil
}

func windowStart(lbType LeaderboardType) *time.Time {
	now := time.Now()
	switch lbType {
	case LeaderboardWeekly:
		t := now.AddDate(0, 0, -7)
		return &t
	case LeaderboardMonthly:
		t := now.AddDate(0, -1, 0)
		return &t
	}
	return nil
}
