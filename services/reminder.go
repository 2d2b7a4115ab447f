package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"main/utils"

	"github.com/redis/go-redis/v9"
)

const (
	reminderScheduleKey = "reminder:daily"
	reminderTestQueue   = "reminder:test"
)

// ReminderScheduler records the active daily reminder in Redis. The
// delivery worker watches the schedule key and owns the actual push;
// this side only writes and removes schedules.
type ReminderScheduler struct {
	client *redis.Client
}

type reminderSchedule struct {
	Time        string    `json:"time"`
	Sound       bool      `json:"sound"`
	Vibration   bool      `json:"vibration"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// NewReminderScheduler creates and connects a reminder scheduler
func NewReminderScheduler(redisURL string, dialTimeout time.Duration) (*ReminderScheduler, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &ReminderScheduler{client: client}, nil
}

// ScheduleDaily replaces any existing schedule with one firing every day
// at the given HH:mm clock time.
func (rs *ReminderScheduler) ScheduleDaily(ctx context.Context, at string, sound, vibration bool) error {
	if !utils.ValidateClockTime(at) {
		return fmt.Errorf("invalid reminder time %q", at)
	}

	schedule := reminderSchedule{
		Time:        at,
		Sound:       sound,
		Vibration:   vibration,
		ScheduledAt: time.Now(),
	}
	data, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder schedule: %v", err)
	}

	if err := rs.client.Set(ctx, reminderScheduleKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store reminder schedule: %v", err)
	}
	return nil
}

// CancelAll removes the stored schedule so no further reminders fire.
func (rs *ReminderScheduler) CancelAll(ctx context.Context) error {
	if err := rs.client.Del(ctx, reminderScheduleKey).Err(); err != nil {
		return fmt.Errorf("failed to cancel reminders: %v", err)
	}
	return nil
}

// SendTest queues one immediate test reminder for the delivery worker.
func (rs *ReminderScheduler) SendTest(ctx context.Context) error {
	payload, err := json.Marshal(map[string]interface{}{
		"type":      "test",
		"queued_at": time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal test reminder: %v", err)
	}
	if err := rs.client.LPush(ctx, reminderTestQueue, payload).Err(); err != nil {
		return fmt.Errorf("failed to queue test reminder: %v", err)
	}
	return nil
}
