package dto

import (
	"time"

	"main/model"
)

type ScheduleResponse struct {
	ID            string              `json:"id"`
	WeekStartDate string              `json:"week_start_date"`
	Tasks         map[string][]string `json:"tasks"`
	CreatedAt     time.Time           `json:"created_at"`
}

// Convert model.WeekSchedule to ScheduleResponse. Every day key appears in
// the response, empty days as empty lists, so clients can render the full
// week without key checks.
func ToScheduleResponse(schedule *model.WeekSchedule) ScheduleResponse {
	tasks := make(map[string][]string, len(model.DaysOfWeek))
	for _, day := range model.DaysOfWeek {
		ids := schedule.Tasks[day]
		if ids == nil {
			ids = []string{}
		}
		tasks[string(day)] = ids
	}
	return ScheduleResponse{
		ID:            schedule.ScheduleID,
		WeekStartDate: schedule.WeekStartDate,
		Tasks:         tasks,
		CreatedAt:     schedule.CreatedAt,
	}
}
