package usecase

import (
	"reflect"
	"testing"
	"time"

	"main/model"
)

func scheduleWith(tasks map[model.DayOfWeek][]string) *model.WeekSchedule {
	return &model.WeekSchedule{
		ScheduleID:    "sched-1",
		WeekStartDate: "2024-01-01",
		Tasks:         tasks,
		CreatedAt:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestToggleScheduleTask(t *testing.T) {
	t.Run("AppendsWhenAbsent", func(t *testing.T) {
		s := scheduleWith(map[model.DayOfWeek][]string{
			model.Monday: {"a", "b"},
		})
		got := ToggleScheduleTask(s, model.Monday, "c")
		want := []string{"a", "b", "c"}
		if !reflect.DeepEqual(got.Tasks[model.Monday], want) {
			t.Fatalf("expected %v, got %v", want, got.Tasks[model.Monday])
		}
	})

	t.Run("RemovesWhenPresent", func(t *testing.T) {
		s := scheduleWith(map[model.DayOfWeek][]string{
			model.Monday: {"a", "b", "c"},
		})
		got := ToggleScheduleTask(s, model.Monday, "b")
		want := []string{"a", "c"}
		if !reflect.DeepEqual(got.Tasks[model.Monday], want) {
			t.Fatalf("expected %v, got %v", want, got.Tasks[model.Monday])
		}
	})

	t.Run("ToggleIsItsOwnInverse", func(t *testing.T) {
		s := scheduleWith(map[model.DayOfWeek][]string{
			model.Wednesday: {"a", "b"},
		})
		round := ToggleScheduleTask(ToggleScheduleTask(s, model.Wednesday, "b"), model.Wednesday, "b")
		if !reflect.DeepEqual(round.Tasks, s.Tasks) {
			t.Fatalf("double toggle changed the schedule: %v vs %v", round.Tasks, s.Tasks)
		}
	})

	t.Run("InputUntouched", func(t *testing.T) {
		s := scheduleWith(map[model.DayOfWeek][]string{
			model.Friday: {"a"},
		})
		_ = ToggleScheduleTask(s, model.Friday, "a")
		_ = ToggleScheduleTask(s, model.Friday, "z")
		if !reflect.DeepEqual(s.Tasks[model.Friday], []string{"a"}) {
			t.Fatalf("input schedule was mutated: %v", s.Tasks[model.Friday])
		}
	})

	t.Run("NilTaskMap", func(t *testing.T) {
		s := scheduleWith(nil)
		got := ToggleScheduleTask(s, model.Tuesday, "x")
		if !reflect.DeepEqual(got.Tasks[model.Tuesday], []string{"x"}) {
			t.Fatalf("expected [x], got %v", got.Tasks[model.Tuesday])
		}
	})
}

func TestFindScheduleForWeek(t *testing.T) {
	schedules := []*model.WeekSchedule{
		scheduleWith(nil),
		{ScheduleID: "sched-2", WeekStartDate: "2024-01-08"},
	}

	if got := FindScheduleForWeek(schedules, "2024-01-08"); got == nil || got.ScheduleID != "sched-2" {
		t.Fatalf("expected sched-2, got %+v", got)
	}
	if got := FindScheduleForWeek(schedules, "2024-01-15"); got != nil {
		t.Fatalf("expected nil for unknown week, got %+v", got)
	}
}

func TestNewWeekSchedule(t *testing.T) {
	now := time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC)
	s := NewWeekSchedule("2024-01-01", now)

	if s.ScheduleID == "" {
		t.Fatal("expected a fresh id")
	}
	if s.WeekStartDate != "2024-01-01" {
		t.Fatalf("expected week start 2024-01-01, got %s", s.WeekStartDate)
	}
	if len(s.Tasks) != 0 {
		t.Fatalf("expected empty task map, got %v", s.Tasks)
	}
	if !s.CreatedAt.Equal(now) {
		t.Fatalf("expected created_at %v, got %v", now, s.CreatedAt)
	}
}
