package services

import (
	"context"
	"testing"
)

func TestScheduleDailyRejectsBadTime(t *testing.T) {
	rs := &ReminderScheduler{}
	for _, at := range []string{"", "24:00", "9:00", "noon"} {
		if err := rs.ScheduleDaily(context.Background(), at, true, true); err == nil {
			t.Errorf("expected %q to be rejected", at)
		}
	}
}
