package usecase

import "errors"

var (
	ErrTitleRequired       = errors.New("task title is required")
	ErrInvalidPriority     = errors.New("invalid priority level")
	ErrInvalidMinutes      = errors.New("estimated minutes must be positive")
	ErrTaskRequired        = errors.New("task id is required")
	ErrTaskNotFound        = errors.New("task not found")
	ErrEntryNotFound       = errors.New("daily entry not found")
	ErrIllegalTransition   = errors.New("illegal status transition")
	ErrInvalidDate         = errors.New("date must be in YYYY-MM-DD form")
	ErrInvalidDay          = errors.New("invalid day of week")
	ErrInvalidWeekStart    = errors.New("week start date must be a Monday")
	ErrInvalidReminderTime = errors.New("reminder time must be in HH:mm form")
)
