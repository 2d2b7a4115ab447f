package model

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the three accepted priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	TaskID           string    `bson:"_id,omitempty" json:"id"`
	Title            string    `bson:"title" json:"title" binding:"required"`
	Description      string    `bson:"description,omitempty" json:"description,omitempty"`
	EstimatedMinutes int       `bson:"estimated_minutes,omitempty" json:"estimated_minutes,omitempty"`
	Priority         Priority  `bson:"priority" json:"priority"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}
