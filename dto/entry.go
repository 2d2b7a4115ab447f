package dto

import (
	"time"

	"main/model"
)

type EntryResponse struct {
	ID          string            `json:"id"`
	TaskID      string            `json:"task_id"`
	Date        string            `json:"date"`
	Status      model.EntryStatus `json:"status"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	Notes       string            `json:"notes,omitempty"`
}

// Convert model.DailyTaskEntry to EntryResponse
func ToEntryResponse(entry *model.DailyTaskEntry) EntryResponse {
	return EntryResponse{
		ID:          entry.EntryID,
		TaskID:      entry.TaskID,
		Date:        entry.Date,
		Status:      entry.Status,
		CompletedAt: entry.CompletedAt,
		Notes:       entry.Notes,
	}
}

// Convert slice of model.DailyTaskEntry to slice of EntryResponse
func ToEntryResponses(entries []*model.DailyTaskEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToEntryResponse(entry)
	}
	return responses
}
