package service

import (
	"context"
	"testing"
	"time"

	"studydeck/internal/domain/models"
)

func day(t *testing.T, date string) time.Time {
	t.Helper()
	parsed, err := time.Parse(models.DateKey, date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	return parsed
}

func statRow(date string, percentage float64, cards int) models.Statistic {
	return models.Statistic{
		UserID:       "user-1",
		Date:         date,
		Percentage:   percentage,
		CardsStudied: cards,
		TotalCards:   cards,
	}
}

func TestBestPerformance(t *testing.T) {
	tests := []struct {
		name        string
		stats       []models.Statistic
		wantStreak  int
		wantBest    int
		wantMostDay int
	}{
		{
			name:       "empty history",
			stats:      nil,
			wantStreak: 0,
		},
		{
			name:        "single day",
			stats:       []models.Statistic{statRow("2026-08-29", 80, 12)},
			wantStreak:  1,
			wantBest:    80,
			wantMostDay: 12,
		},
		{
			name: "three consecutive days",
			stats: []models.Statistic{
				statRow("2026-08-27", 50, 5),
				statRow("2026-08-28", 70, 10),
				statRow("2026-08-29", 90, 8),
			},
			wantStreak:  3,
			wantBest:    90,
			wantMostDay: 10,
		},
		{
			name: "gap resets streak",
			stats: []models.Statistic{
				statRow("2026-08-20", 60, 4),
				statRow("2026-08-21", 60, 4),
				statRow("2026-08-25", 60, 4),
			},
			wantStreak:  2,
			wantBest:    60,
			wantMostDay: 4,
		},
		{
			name: "longest streak is not the last one",
			stats: []models.Statistic{
				statRow("2026-08-10", 40, 2),
				statRow("2026-08-11", 40, 2),
				statRow("2026-08-12", 40, 2),
				statRow("2026-08-20", 55, 3),
				statRow("2026-08-21", 55, 3),
			},
			wantStreak:  3,
			wantBest:    55,
			wantMostDay: 3,
		},
		{
			name: "best score rounds the percentage",
			stats: []models.Statistic{
				statRow("2026-08-29", 66.67, 3),
			},
			wantStreak:  1,
			wantBest:    67,
			wantMostDay: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			streak, best, mostCards := bestPerformance(tt.stats)
			if streak != tt.wantStreak {
				t.Errorf("streak = %d, want %d", streak, tt.wantStreak)
			}
			if best != tt.wantBest {
				t.Errorf("best = %d, want %d", best, tt.wantBest)
			}
			if mostCards != tt.wantMostDay {
				t.Errorf("mostCards = %d, want %d", mostCards, tt.wantMostDay)
			}
		})
	}
}

func TestWeeklyCount(t *testing.T) {
	now := day(t, "2026-08-29")

	stats := []models.Statistic{
		statRow("2026-08-10", 50, 5), // outside the window
		statRow("2026-08-22", 50, 5), // exactly 7 days back, counts
		statRow("2026-08-26", 50, 5),
		statRow("2026-08-29", 50, 5),
	}

	if got := weeklyCount(stats, now); got != 3 {
		t.Errorf("weeklyCount = %d, want 3", got)
	}
	if got := weeklyCount(nil, now); got != 0 {
		t.Errorf("weeklyCount(empty) = %d, want 0", got)
	}
}

func TestGlobalAverage(t *testing.T) {
	stats := []models.Statistic{
		statRow("2026-08-27", 50, 5),
		statRow("2026-08-28", 70, 5),
		statRow("2026-08-29", 81, 5),
	}

	if got := globalAverage(stats); got != 67 {
		t.Errorf("globalAverage = %d, want 67", got)
	}
	if got := globalAverage(nil); got != 0 {
		t.Errorf("globalAverage(empty) = %d, want 0", got)
	}
}

func TestComputeSummary(t *testing.T) {
	now := day(t, "2026-08-29")

	stats := []models.Statistic{
		statRow("2026-08-27", 50, 5),
		statRow("2026-08-28", 70, 10),
		statRow("2026-08-29", 90, 8),
	}

	summary := computeSummary(stats, now)

	if summary.TodayPercentage != 90 {
		t.Errorf("TodayPercentage = %v, want 90", summary.TodayPercentage)
	}
	if summary.TodayCards != 8 {
		t.Errorf("TodayCards = %d, want 8", summary.TodayCards)
	}
	if summary.LastSessionPercentage != 70 {
		t.Errorf("LastSessionPercentage = %v, want 70", summary.LastSessionPercentage)
	}
	if summary.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3", summary.LongestStreak)
	}
	if summary.WeeklyCount != 3 {
		t.Errorf("WeeklyCount = %d, want 3", summary.WeeklyCount)
	}
	if summary.GlobalAverage != 70 {
		t.Errorf("GlobalAverage = %d, want 70", summary.GlobalAverage)
	}
}

func TestMonthHeatmap(t *testing.T) {
	stats := []models.Statistic{
		statRow("2026-02-01", 50, 5),
		statRow("2026-02-14", 70, 5),
		statRow("2026-03-01", 90, 5), // different month, ignored
	}

	days := monthHeatmap(stats, 2026, time.February)

	if len(days) != 28 {
		t.Fatalf("len(days) = %d, want 28", len(days))
	}
	if !days[0].Studied {
		t.Error("Feb 1 should be marked studied")
	}
	if !days[13].Studied {
		t.Error("Feb 14 should be marked studied")
	}
	if days[1].Studied {
		t.Error("Feb 2 should not be marked studied")
	}
	if days[27].Date != "2026-02-28" {
		t.Errorf("last day = %s, want 2026-02-28", days[27].Date)
	}
}

func TestGetSummaryUsesWeeklyGoal(t *testing.T) {
	ctx := context.Background()
	statRepo := newFakeStatRepo()
	settingsRepo := newFakeSettingsRepo()
	svc := NewStatisticsService(statRepo, settingsRepo, testLogger())

	// No settings saved: default goal
	summary, err := svc.GetSummary(ctx, "user-1", "2026-08")
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if summary.WeeklyGoal != models.DefaultWeeklyGoal {
		t.Errorf("WeeklyGoal = %d, want default %d", summary.WeeklyGoal, models.DefaultWeeklyGoal)
	}
	if summary.Month != "2026-08" {
		t.Errorf("Month = %s, want 2026-08", summary.Month)
	}
	if len(summary.MonthDays) != 31 {
		t.Errorf("len(MonthDays) = %d, want 31", len(summary.MonthDays))
	}

	// Saved goal wins
	if err := settingsRepo.Upsert(ctx, &models.UserSettings{UserID: "user-1", WeeklyGoal: 3}); err != nil {
		t.Fatalf("Upsert settings: %v", err)
	}
	summary, err = svc.GetSummary(ctx, "user-1", "2026-08")
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if summary.WeeklyGoal != 3 {
		t.Errorf("WeeklyGoal = %d, want 3", summary.WeeklyGoal)
	}
}

func TestGetSummaryRejectsBadMonth(t *testing.T) {
	svc := NewStatisticsService(newFakeStatRepo(), newFakeSettingsRepo(), testLogger())

	if _, err := svc.GetSummary(context.Background(), "user-1", "not-a-month"); err == nil {
		t.Error("expected error for invalid month")
	}
}
