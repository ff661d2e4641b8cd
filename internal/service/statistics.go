package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"studydeck/internal/domain"
	"studydeck/internal/domain/models"
	"studydeck/internal/domain/repositories"
)

// MonthDay is one calendar cell of the study heat map.
type MonthDay struct {
	Date    string `json:"date"` // models.DateKey format
	Studied bool   `json:"studied"`
}

// Summary is everything the statistics view derives from the raw rows.
// All of it is computed on the fly; nothing here is persisted.
type Summary struct {
	TodayPercentage       float64    `json:"today_percentage"`
	TodayCards            int        `json:"today_cards"`
	LastSessionPercentage float64    `json:"last_session_percentage"`
	GlobalAverage         int        `json:"global_average"`
	WeeklyCount           int        `json:"weekly_count"`
	WeeklyGoal            int        `json:"weekly_goal"`
	BestScore             int        `json:"best_score"`
	LongestStreak         int        `json:"longest_streak"`
	MostCardsInDay        int        `json:"most_cards_in_day"`
	Month                 string     `json:"month"` // YYYY-MM
	MonthDays             []MonthDay `json:"month_days"`
}

// StatisticsService derives the study dashboard from the statistics rows
type StatisticsService struct {
	statRepo     repositories.StatisticRepository
	settingsRepo repositories.SettingsRepository
	logger       *slog.Logger
}

// NewStatisticsService creates a new statistics service
func NewStatisticsService(
	statRepo repositories.StatisticRepository,
	settingsRepo repositories.SettingsRepository,
	logger *slog.Logger,
) *StatisticsService {
	return &StatisticsService{
		statRepo:     statRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// ListStatistics returns the raw rows ordered by date
func (s *StatisticsService) ListStatistics(ctx context.Context, userID string) ([]models.Statistic, error) {
	return s.statRepo.ListByUser(ctx, userID)
}

// GetSummary computes the dashboard for a user. month selects the calendar
// heat map ("YYYY-MM"); empty means the current month.
func (s *StatisticsService) GetSummary(ctx context.Context, userID, month string) (*Summary, error) {
	stats, err := s.statRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	goal := models.DefaultWeeklyGoal
	if settings, err := s.settingsRepo.Get(ctx, userID); err == nil {
		goal = settings.WeeklyGoal
	} else if !isNotFound(err) {
		return nil, err
	}

	now := time.Now().UTC()
	if month == "" {
		month = now.Format("2006-01")
	}
	monthStart, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid month %q", domain.ErrValidation, month)
	}

	summary := computeSummary(stats, now)
	summary.WeeklyGoal = goal
	summary.Month = month
	summary.MonthDays = monthHeatmap(stats, monthStart.Year(), monthStart.Month())

	return summary, nil
}

// computeSummary runs the single-pass derivations over rows sorted by date
// ascending (the repository's order).
func computeSummary(stats []models.Statistic, now time.Time) *Summary {
	summary := &Summary{}

	today := now.Format(models.DateKey)
	for _, stat := range stats {
		if stat.Date == today {
			summary.TodayPercentage = stat.Percentage
			summary.TodayCards = stat.CardsStudied
		}
	}
	// Last session = the day before the most recent row, when there is one
	if len(stats) >= 2 {
		summary.LastSessionPercentage = stats[len(stats)-2].Percentage
	}

	summary.GlobalAverage = globalAverage(stats)
	summary.WeeklyCount = weeklyCount(stats, now)

	streak, best, mostCards := bestPerformance(stats)
	summary.LongestStreak = streak
	summary.BestScore = best
	summary.MostCardsInDay = mostCards

	return summary
}

// globalAverage is the rounded mean of all day percentages
func globalAverage(stats []models.Statistic) int {
	if len(stats) == 0 {
		return 0
	}
	var total float64
	for _, stat := range stats {
		total += stat.Percentage
	}
	return int(math.Round(total / float64(len(stats))))
}

// weeklyCount counts study days within the trailing 7 days
func weeklyCount(stats []models.Statistic, now time.Time) int {
	cutoff := now.AddDate(0, 0, -7)
	count := 0
	for _, stat := range stats {
		day, err := time.Parse(models.DateKey, stat.Date)
		if err != nil {
			continue
		}
		if !day.Before(cutoff) {
			count++
		}
	}
	return count
}

// bestPerformance scans rows in date order: the streak grows while dates
// are exactly one day apart and resets at any gap.
func bestPerformance(stats []models.Statistic) (longestStreak, bestScore, mostCards int) {
	currentStreak := 0
	var lastDay time.Time

	for _, stat := range stats {
		day, err := time.Parse(models.DateKey, stat.Date)
		if err != nil {
			continue
		}

		if !lastDay.IsZero() && day.Sub(lastDay) == 24*time.Hour {
			currentStreak++
		} else {
			currentStreak = 1
		}
		if currentStreak > longestStreak {
			longestStreak = currentStreak
		}

		if score := int(math.Round(stat.Percentage)); score > bestScore {
			bestScore = score
		}
		if stat.CardsStudied > mostCards {
			mostCards = stat.CardsStudied
		}

		lastDay = day
	}

	return longestStreak, bestScore, mostCards
}

// monthHeatmap flags each day of the month that has a statistic row
func monthHeatmap(stats []models.Statistic, year int, month time.Month) []MonthDay {
	studied := make(map[string]bool, len(stats))
	for _, stat := range stats {
		studied[stat.Date] = true
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]MonthDay, 0, daysInMonth)
	for i := 0; i < daysInMonth; i++ {
		date := first.AddDate(0, 0, i).Format(models.DateKey)
		days = append(days, MonthDay{Date: date, Studied: studied[date]})
	}
	return days
}
