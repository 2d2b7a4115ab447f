package usecase

import (
	"context"
	"time"

	"main/model"
)

// The planner talks to persistence and the reminder scheduler through the
// interfaces below. The Mongo repositories and the Redis reminder
// scheduler satisfy them in production; tests plug in fakes.

type TaskStore interface {
	LoadTasks(ctx context.Context) ([]*model.Task, error)
	InsertTask(ctx context.Context, task *model.Task) error
	UpdateTask(ctx context.Context, task *model.Task) error
	DeleteTask(ctx context.Context, taskID string) error
}

type EntryStore interface {
	LoadEntries(ctx context.Context) ([]*model.DailyTaskEntry, error)
	EntriesForDate(ctx context.Context, date string) ([]*model.DailyTaskEntry, error)
	InsertEntry(ctx context.Context, entry *model.DailyTaskEntry) error
	UpdateEntry(ctx context.Context, entry *model.DailyTaskEntry) error
}

type ScheduleStore interface {
	LoadSchedules(ctx context.Context) ([]*model.WeekSchedule, error)
	SaveSchedule(ctx context.Context, schedule *model.WeekSchedule) error
}

type ConfigStore interface {
	LoadNotificationConfig(ctx context.Context) (*model.NotificationConfig, error)
	SaveNotificationConfig(ctx context.Context, cfg *model.NotificationConfig) error
}

// Notifier schedules the daily reminder. Delivery is somebody else's job;
// the planner only records and cancels schedules.
type Notifier interface {
	ScheduleDaily(ctx context.Context, at string, sound, vibration bool) error
	CancelAll(ctx context.Context) error
	SendTest(ctx context.Context) error
}

// StatsCache holds the derived completion stats between recomputations.
// All methods are best effort; a broken cache must never fail a request.
type StatsCache interface {
	Get(ctx context.Context) (*model.CompletionStats, bool)
	Set(ctx context.Context, stats *model.CompletionStats)
}

// Clock supplies "now" so date-dependent behavior is testable.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
