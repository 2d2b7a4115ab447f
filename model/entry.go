package model

import "time"

type EntryStatus string

const (
	StatusPending   EntryStatus = "pending"
	StatusCompleted EntryStatus = "completed"
	StatusSkipped   EntryStatus = "skipped"
)

func (s EntryStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusSkipped:
		return true
	}
	return false
}

// DailyTaskEntry is one task's occurrence on one calendar day. Date is the
// canonical YYYY-MM-DD string; two entries fall on the same day iff their
// Date strings are equal. TaskID is a weak reference and may point at a
// task that has since been deleted.
type DailyTaskEntry struct {
	EntryID     string      `bson:"_id,omitempty" json:"id"`
	TaskID      string      `bson:"task_id" json:"task_id"`
	Date        string      `bson:"date" json:"date"`
	Status      EntryStatus `bson:"status" json:"status"`
	CompletedAt *time.Time  `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	Notes       string      `bson:"notes,omitempty" json:"notes,omitempty"`
}
