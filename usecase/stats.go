package usecase

import (
	"math"
	"time"

	"main/model"
	"main/utils"
)

// The aggregation functions below are pure: they never modify the entry
// slice and always return the same result for the same input.

// CalculateDailyStats summarizes completion per date, preserving the order
// of the given dates. An entry belongs to a date iff its Date string equals
// the date's YYYY-MM-DD form.
func CalculateDailyStats(entries []*model.DailyTaskEntry, dates []time.Time) []model.DailyStat {
	stats := make([]model.DailyStat, 0, len(dates))
	for _, date := range dates {
		dateStr := utils.FormatDate(date)
		total, completed := 0, 0
		for _, entry := range entries {
			if entry.Date != dateStr {
				continue
			}
			total++
			if entry.Status == model.StatusCompleted {
				completed++
			}
		}
		stats = append(stats, model.DailyStat{
			Date:       dateStr,
			Total:      total,
			Completed:  completed,
			Percentage: percentage(completed, total),
		})
	}
	return stats
}

// CalculateWeeklyStats aggregates the entries falling inside the full
// seven-day span starting at weekStart, boundaries inclusive. Entry dates
// are compared as date values here, not strings.
func CalculateWeeklyStats(entries []*model.DailyTaskEntry, weekStart time.Time) model.WeeklyStats {
	week := utils.WeekDates(weekStart)
	first, last := week[0], week[6]

	total, completed := 0, 0
	for _, entry := range entries {
		date, err := utils.ParseDate(entry.Date)
		if err != nil {
			continue
		}
		if date.Before(first) || date.After(last) {
			continue
		}
		total++
		if entry.Status == model.StatusCompleted {
			completed++
		}
	}

	return model.WeeklyStats{
		WeekStartDate: utils.FormatDate(weekStart),
		Total:         total,
		Completed:     completed,
		Percentage:    percentage(completed, total),
	}
}

// CalculateMonthlyStats aggregates the entries sharing calendar month and
// year with the reference date.
func CalculateMonthlyStats(entries []*model.DailyTaskEntry, reference time.Time) model.MonthlyStats {
	total, completed := 0, 0
	for _, entry := range entries {
		date, err := utils.ParseDate(entry.Date)
		if err != nil {
			continue
		}
		if date.Month() != reference.Month() || date.Year() != reference.Year() {
			continue
		}
		total++
		if entry.Status == model.StatusCompleted {
			completed++
		}
	}

	return model.MonthlyStats{
		Month:      reference.Format("January 2006"),
		Total:      total,
		Completed:  completed,
		Percentage: percentage(completed, total),
	}
}

// percentage rounds 100*completed/total to the nearest integer, half up.
// A total of zero yields zero.
func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
