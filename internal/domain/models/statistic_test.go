package models

import (
	"math"
	"testing"
	"time"
)

func TestMergeSession(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name           string
		prev           Statistic
		percentage     float64
		cards          int
		wantPercentage float64
		wantTotal      int
		wantStudied    int
	}{
		{
			name:           "first session of the day",
			prev:           Statistic{Date: "2026-08-29"},
			percentage:     75,
			cards:          8,
			wantPercentage: 75,
			wantTotal:      8,
			wantStudied:    8,
		},
		{
			name: "second session is card-weighted",
			prev: Statistic{
				Date:         "2026-08-29",
				Percentage:   50,
				CardsStudied: 10,
				TotalCards:   10,
			},
			percentage: 100,
			cards:      10,
			// (50*10 + 100*10) / 20
			wantPercentage: 75,
			wantTotal:      20,
			wantStudied:    20,
		},
		{
			name: "small session barely moves a big day",
			prev: Statistic{
				Date:         "2026-08-29",
				Percentage:   90,
				CardsStudied: 90,
				TotalCards:   90,
			},
			percentage: 0,
			cards:      10,
			// (90*90 + 0*10) / 100
			wantPercentage: 81,
			wantTotal:      100,
			wantStudied:    100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stat := tt.prev
			stat.MergeSession(tt.percentage, tt.cards, now)

			if math.Abs(stat.Percentage-tt.wantPercentage) > 1e-9 {
				t.Errorf("Percentage = %v, want %v", stat.Percentage, tt.wantPercentage)
			}
			if stat.TotalCards != tt.wantTotal {
				t.Errorf("TotalCards = %d, want %d", stat.TotalCards, tt.wantTotal)
			}
			if stat.CardsStudied != tt.wantStudied {
				t.Errorf("CardsStudied = %d, want %d", stat.CardsStudied, tt.wantStudied)
			}
			if !stat.RecordedAt.Equal(now) {
				t.Errorf("RecordedAt = %v, want %v", stat.RecordedAt, now)
			}
		})
	}
}

func TestShareAddressedTo(t *testing.T) {
	share := Share{RecipientEmail: "Friend@Example.com"}

	if !share.AddressedTo("friend@example.com") {
		t.Error("case-insensitive match should succeed")
	}
	if share.AddressedTo("other@example.com") {
		t.Error("different address should not match")
	}
}
