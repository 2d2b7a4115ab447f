package usecase

import (
	"reflect"
	"testing"
	"time"

	"main/model"
)

func entry(date string, status model.EntryStatus) *model.DailyTaskEntry {
	return &model.DailyTaskEntry{
		EntryID: date + "-" + string(status),
		TaskID:  "task-1",
		Date:    date,
		Status:  status,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateDailyStats(t *testing.T) {
	entries := []*model.DailyTaskEntry{
		entry("2024-01-01", model.StatusCompleted),
		entry("2024-01-01", model.StatusSkipped),
		entry("2024-01-02", model.StatusCompleted),
	}
	dates := []time.Time{day(2024, time.January, 1), day(2024, time.January, 2)}

	got := CalculateDailyStats(entries, dates)
	want := []model.DailyStat{
		{Date: "2024-01-01", Total: 2, Completed: 1, Percentage: 50},
		{Date: "2024-01-02", Total: 1, Completed: 1, Percentage: 100},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestCalculateDailyStatsEmptyDay(t *testing.T) {
	got := CalculateDailyStats(nil, []time.Time{day(2024, time.January, 1)})
	if got[0].Total != 0 || got[0].Completed != 0 || got[0].Percentage != 0 {
		t.Fatalf("expected zeroed stats for empty day, got %+v", got[0])
	}
}

func TestCalculateWeeklyStats(t *testing.T) {
	weekStart := day(2024, time.January, 1)

	t.Run("EmptyWeek", func(t *testing.T) {
		got := CalculateWeeklyStats(nil, weekStart)
		if got.Total != 0 || got.Completed != 0 || got.Percentage != 0 {
			t.Fatalf("expected zeroed stats, got %+v", got)
		}
		if got.WeekStartDate != "2024-01-01" {
			t.Fatalf("expected week start 2024-01-01, got %s", got.WeekStartDate)
		}
	})

	t.Run("BoundariesInclusive", func(t *testing.T) {
		entries := []*model.DailyTaskEntry{
			entry("2023-12-31", model.StatusCompleted), // Sunday before
			entry("2024-01-01", model.StatusCompleted), // Monday
			entry("2024-01-07", model.StatusPending),   // Sunday
			entry("2024-01-08", model.StatusCompleted), // Monday after
		}
		got := CalculateWeeklyStats(entries, weekStart)
		if got.Total != 2 || got.Completed != 1 || got.Percentage != 50 {
			t.Fatalf("expected 2/1/50, got %+v", got)
		}
	})

	t.Run("UnparseableDatesExcluded", func(t *testing.T) {
		entries := []*model.DailyTaskEntry{
			entry("not-a-date", model.StatusCompleted),
			entry("2024-01-03", model.StatusCompleted),
		}
		got := CalculateWeeklyStats(entries, weekStart)
		if got.Total != 1 {
			t.Fatalf("expected 1 entry counted, got %d", got.Total)
		}
	})
}

func TestCalculateMonthlyStats(t *testing.T) {
	entries := []*model.DailyTaskEntry{
		entry("2024-01-01", model.StatusCompleted),
		entry("2024-01-31", model.StatusSkipped),
		entry("2024-02-01", model.StatusCompleted),
		entry("2023-01-15", model.StatusCompleted), // same month, other year
	}
	got := CalculateMonthlyStats(entries, day(2024, time.January, 15))

	if got.Month != "January 2024" {
		t.Fatalf("expected label January 2024, got %q", got.Month)
	}
	if got.Total != 2 || got.Completed != 1 || got.Percentage != 50 {
		t.Fatalf("expected 2/1/50, got %+v", got)
	}
}

func TestPercentageRounding(t *testing.T) {
	cases := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{0, 5, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds half up
		{3, 3, 100},
	}
	for _, tc := range cases {
		if got := percentage(tc.completed, tc.total); got != tc.want {
			t.Errorf("percentage(%d, %d): expected %d, got %d", tc.completed, tc.total, tc.want, got)
		}
	}
}

func TestStatsArePure(t *testing.T) {
	entries := []*model.DailyTaskEntry{
		entry("2024-01-01", model.StatusCompleted),
		entry("2024-01-02", model.StatusPending),
	}
	snapshot := make([]model.DailyTaskEntry, len(entries))
	for i, e := range entries {
		snapshot[i] = *e
	}

	dates := []time.Time{day(2024, time.January, 1), day(2024, time.January, 2)}
	first := CalculateDailyStats(entries, dates)
	second := CalculateDailyStats(entries, dates)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two runs over the same entries disagree")
	}

	CalculateWeeklyStats(entries, day(2024, time.January, 1))
	CalculateMonthlyStats(entries, day(2024, time.January, 1))
	for i, e := range entries {
		if *e != snapshot[i] {
			t.Fatalf("entry %d was mutated: %+v", i, *e)
		}
	}
}
