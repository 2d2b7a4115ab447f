package usecase

import (
	"context"
	"log"
	"strings"
	"sync"

	"main/model"
	"main/utils"
)

// Planner is the single service object behind the API: it holds the store,
// notifier and clock collaborators plus the loaded collections and the
// derived completion stats. Mutations are serialized by one mutex; a read
// that fails degrades to an empty collection while a write that fails is
// returned to the caller with the in-memory state left as it was.
type Planner struct {
	tasks     TaskStore
	entries   EntryStore
	schedules ScheduleStore
	config    ConfigStore
	notifier  Notifier
	clock     Clock
	cache     StatsCache

	mu                 sync.Mutex
	taskList           []*model.Task
	entryList          []*model.DailyTaskEntry
	todayEntries       []*model.DailyTaskEntry
	currentSchedule    *model.WeekSchedule
	stats              *model.CompletionStats
	notificationConfig *model.NotificationConfig
}

type PlannerDeps struct {
	Tasks     TaskStore
	Entries   EntryStore
	Schedules ScheduleStore
	Config    ConfigStore
	Notifier  Notifier
	Clock     Clock
	Cache     StatsCache // optional; stats work without it
}

func NewPlanner(deps PlannerDeps) *Planner {
	clock := deps.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	return &Planner{
		tasks:              deps.Tasks,
		entries:            deps.Entries,
		schedules:          deps.Schedules,
		config:             deps.Config,
		notifier:           deps.Notifier,
		clock:              clock,
		cache:              deps.Cache,
		notificationConfig: model.DefaultNotificationConfig(),
	}
}

// LoadAll performs the startup bulk load. The four collections are
// independent, so their loads run concurrently; the stats recomputation
// waits for the entry load it depends on.
func (p *Planner) LoadAll(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		p.reloadTasksLocked(ctx)
	}()
	go func() {
		defer wg.Done()
		p.reloadEntriesLocked(ctx)
	}()
	go func() {
		defer wg.Done()
		p.reloadCurrentScheduleLocked(ctx)
	}()
	go func() {
		defer wg.Done()
		p.reloadNotificationConfigLocked(ctx)
	}()
	wg.Wait()

	p.refreshStatsLocked(ctx)
}

// Tasks

func (p *Planner) Tasks() []*model.Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*model.Task(nil), p.taskList...)
}

type TaskDraft struct {
	Title            string
	Description      string
	EstimatedMinutes int
	Priority         model.Priority
}

func (p *Planner) CreateTask(ctx context.Context, draft TaskDraft) (*model.Task, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	if draft.Title == "" {
		return nil, ErrTitleRequired
	}
	if !draft.Priority.Valid() {
		return nil, ErrInvalidPriority
	}
	if draft.EstimatedMinutes < 0 {
		return nil, ErrInvalidMinutes
	}

	task := &model.Task{
		TaskID:           utils.GenerateID(),
		Title:            draft.Title,
		Description:      draft.Description,
		EstimatedMinutes: draft.EstimatedMinutes,
		Priority:         draft.Priority,
		CreatedAt:        p.clock.Now(),
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.tasks.InsertTask(ctx, task); err != nil {
		return nil, err
	}
	p.reloadTasksLocked(ctx)
	return task, nil
}

// TaskUpdate carries the fields an edit may change; nil means unchanged.
type TaskUpdate struct {
	Title            *string
	Description      *string
	EstimatedMinutes *int
	Priority         *model.Priority
}

func (p *Planner) EditTask(ctx context.Context, taskID string, update TaskUpdate) (*model.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	stored := findTask(p.taskList, taskID)
	if stored == nil {
		return nil, ErrTaskNotFound
	}

	edited := *stored
	if update.Title != nil {
		edited.Title = strings.TrimSpace(*update.Title)
		if edited.Title == "" {
			return nil, ErrTitleRequired
		}
	}
	if update.Description != nil {
		edited.Description = *update.Description
	}
	if update.EstimatedMinutes != nil {
		if *update.EstimatedMinutes < 0 {
			return nil, ErrInvalidMinutes
		}
		edited.EstimatedMinutes = *update.EstimatedMinutes
	}
	if update.Priority != nil {
		if !update.Priority.Valid() {
			return nil, ErrInvalidPriority
		}
		edited.Priority = *update.Priority
	}

	if err := p.tasks.UpdateTask(ctx, &edited); err != nil {
		return nil, err
	}
	p.reloadTasksLocked(ctx)
	return &edited, nil
}

// RemoveTask deletes the task only. Entries and schedules referencing it
// keep the now-dangling id; stats are not recomputed.
func (p *Planner) RemoveTask(ctx context.Context, taskID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if findTask(p.taskList, taskID) == nil {
		return ErrTaskNotFound
	}
	if err := p.tasks.DeleteTask(ctx, taskID); err != nil {
		return err
	}
	p.reloadTasksLocked(ctx)
	return nil
}

// Daily entries

func (p *Planner) Entries() []*model.DailyTaskEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*model.DailyTaskEntry(nil), p.entryList...)
}

func (p *Planner) TodayEntries() []*model.DailyTaskEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*model.DailyTaskEntry(nil), p.todayEntries...)
}

// CreateEntry schedules one occurrence of a task on one calendar day,
// starting out pending.
func (p *Planner) CreateEntry(ctx context.Context, taskID, date string) (*model.DailyTaskEntry, error) {
	if taskID == "" {
		return nil, ErrTaskRequired
	}
	if _, err := utils.ParseDate(date); err != nil {
		return nil, ErrInvalidDate
	}

	entry := &model.DailyTaskEntry{
		EntryID: utils.GenerateID(),
		TaskID:  taskID,
		Date:    date,
		Status:  model.StatusPending,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.entries.InsertEntry(ctx, entry); err != nil {
		return nil, err
	}
	p.reloadEntriesLocked(ctx)
	p.refreshStatsLocked(ctx)
	return entry, nil
}

// CompleteEntry moves a pending entry to completed, stamping completed_at
// and attaching optional notes.
func (p *Planner) CompleteEntry(ctx context.Context, entryID, notes string) (*model.DailyTaskEntry, error) {
	return p.transition(ctx, entryID, "complete", func(entry *model.DailyTaskEntry) error {
		if entry.Status != model.StatusPending {
			return ErrIllegalTransition
		}
		now := p.clock.Now()
		entry.Status = model.StatusCompleted
		entry.CompletedAt = &now
		if notes != "" {
			entry.Notes = notes
		}
		return nil
	})
}

// SkipEntry moves a pending entry to skipped.
func (p *Planner) SkipEntry(ctx context.Context, entryID string) (*model.DailyTaskEntry, error) {
	return p.transition(ctx, entryID, "skip", func(entry *model.DailyTaskEntry) error {
		if entry.Status != model.StatusPending {
			return ErrIllegalTransition
		}
		entry.Status = model.StatusSkipped
		return nil
	})
}

// UndoEntry returns a completed or skipped entry to pending and clears
// completed_at.
func (p *Planner) UndoEntry(ctx context.Context, entryID string) (*model.DailyTaskEntry, error) {
	return p.transition(ctx, entryID, "undo", func(entry *model.DailyTaskEntry) error {
		if entry.Status != model.StatusCompleted && entry.Status != model.StatusSkipped {
			return ErrIllegalTransition
		}
		entry.Status = model.StatusPending
		entry.CompletedAt = nil
		return nil
	})
}

// transition applies a status change to a copy of the stored entry,
// persists it, then reloads the entry collection and recomputes stats.
// When the persist fails the in-memory entry keeps its old status.
func (p *Planner) transition(ctx context.Context, entryID, kind string, apply func(*model.DailyTaskEntry) error) (*model.DailyTaskEntry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	stored := findEntry(p.entryList, entryID)
	if stored == nil {
		return nil, ErrEntryNotFound
	}

	updated := *stored
	if err := apply(&updated); err != nil {
		return nil, err
	}
	if err := p.entries.UpdateEntry(ctx, &updated); err != nil {
		return nil, err
	}
	utils.TrackEntryTransition(kind)

	p.reloadEntriesLocked(ctx)
	p.refreshStatsLocked(ctx)
	return &updated, nil
}

// Week schedule

// CurrentWeekSchedule returns the stored schedule for the week containing
// "now", or a fresh empty one that has not been persisted.
func (p *Planner) CurrentWeekSchedule(ctx context.Context) *model.WeekSchedule {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reloadCurrentScheduleLocked(ctx)
	return p.currentSchedule.Clone()
}

// ToggleCurrentScheduleTask returns an edited copy of the current week's
// schedule; nothing is persisted until SaveWeekSchedule.
func (p *Planner) ToggleCurrentScheduleTask(ctx context.Context, day model.DayOfWeek, taskID string) (*model.WeekSchedule, error) {
	if !day.Valid() {
		return nil, ErrInvalidDay
	}
	if taskID == "" {
		return nil, ErrTaskRequired
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.currentSchedule == nil {
		p.reloadCurrentScheduleLocked(ctx)
	}
	return ToggleScheduleTask(p.currentSchedule, day, taskID), nil
}

func (p *Planner) SaveWeekSchedule(ctx context.Context, schedule *model.WeekSchedule) error {
	start, err := utils.ParseDate(schedule.WeekStartDate)
	if err != nil {
		return ErrInvalidDate
	}
	if utils.FormatDate(utils.WeekStart(start)) != schedule.WeekStartDate {
		return ErrInvalidWeekStart
	}
	for day := range schedule.Tasks {
		if !day.Valid() {
			return ErrInvalidDay
		}
	}
	if schedule.ScheduleID == "" {
		schedule.ScheduleID = utils.GenerateID()
	}
	if schedule.CreatedAt.IsZero() {
		schedule.CreatedAt = p.clock.Now()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.schedules.SaveSchedule(ctx, schedule); err != nil {
		return err
	}
	p.reloadCurrentScheduleLocked(ctx)
	return nil
}

// Stats

// Stats returns the completion stats, preferring the cache when one is
// wired in.
func (p *Planner) Stats(ctx context.Context) *model.CompletionStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cache != nil {
		if stats, ok := p.cache.Get(ctx); ok {
			utils.TrackStatsCache("hit")
			return stats
		}
		utils.TrackStatsCache("miss")
	}
	if p.stats == nil {
		p.refreshStatsLocked(ctx)
	}
	return p.stats
}

// RefreshStats reloads the entry collection and recomputes the stats view.
func (p *Planner) RefreshStats(ctx context.Context) *model.CompletionStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reloadEntriesLocked(ctx)
	p.refreshStatsLocked(ctx)
	return p.stats
}

// Notifications

func (p *Planner) NotificationConfig() *model.NotificationConfig {
	p.mu.Lock()
	defer p.mu.Unlock()
	cfg := *p.notificationConfig
	return &cfg
}

// UpdateNotificationConfig persists the config, then schedules or cancels
// the daily reminder to match the enabled flag.
func (p *Planner) UpdateNotificationConfig(ctx context.Context, cfg model.NotificationConfig) error {
	if !utils.ValidateClockTime(cfg.Time) {
		return ErrInvalidReminderTime
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.config.SaveNotificationConfig(ctx, &cfg); err != nil {
		return err
	}
	p.notificationConfig = &cfg

	if cfg.Enabled {
		return p.notifier.ScheduleDaily(ctx, cfg.Time, cfg.Sound, cfg.Vibration)
	}
	return p.notifier.CancelAll(ctx)
}

func (p *Planner) TestReminder(ctx context.Context) error {
	return p.notifier.SendTest(ctx)
}

// Reload helpers. All of them recover a failed or undecodable read to the
// empty collection (or default config) so the planner degrades to "no
// data" instead of failing the caller.

func (p *Planner) reloadTasksLocked(ctx context.Context) {
	tasks, err := p.tasks.LoadTasks(ctx)
	if err != nil {
		log.Printf("loading tasks: %v; continuing with none", err)
		utils.TrackError("planner", "task_load_failed")
		tasks = nil
	}
	p.taskList = tasks
}

func (p *Planner) reloadEntriesLocked(ctx context.Context) {
	entries, err := p.entries.LoadEntries(ctx)
	if err != nil {
		log.Printf("loading entries: %v; continuing with none", err)
		utils.TrackError("planner", "entry_load_failed")
		entries = nil
	}
	p.entryList = entries

	today, err := p.entries.EntriesForDate(ctx, utils.FormatDate(p.clock.Now()))
	if err != nil {
		log.Printf("loading today's entries: %v; continuing with none", err)
		utils.TrackError("planner", "today_load_failed")
		today = nil
	}
	p.todayEntries = today
}

func (p *Planner) reloadCurrentScheduleLocked(ctx context.Context) {
	weekStartStr := utils.FormatDate(utils.WeekStart(p.clock.Now()))

	schedules, err := p.schedules.LoadSchedules(ctx)
	if err != nil {
		log.Printf("loading schedules: %v; continuing with none", err)
		utils.TrackError("planner", "schedule_load_failed")
		schedules = nil
	}
	if found := FindScheduleForWeek(schedules, weekStartStr); found != nil {
		p.currentSchedule = found
		return
	}
	p.currentSchedule = NewWeekSchedule(weekStartStr, p.clock.Now())
}

func (p *Planner) reloadNotificationConfigLocked(ctx context.Context) {
	cfg, err := p.config.LoadNotificationConfig(ctx)
	if err != nil {
		log.Printf("loading notification config: %v; using defaults", err)
		utils.TrackError("planner", "config_load_failed")
		cfg = model.DefaultNotificationConfig()
	}
	p.notificationConfig = cfg
}

func (p *Planner) refreshStatsLocked(ctx context.Context) {
	now := p.clock.Now()
	weekStart := utils.WeekStart(now)

	stats := &model.CompletionStats{
		Daily:   CalculateDailyStats(p.entryList, utils.WeekDates(weekStart)),
		Weekly:  CalculateWeeklyStats(p.entryList, weekStart),
		Monthly: CalculateMonthlyStats(p.entryList, now),
	}
	p.stats = stats
	if p.cache != nil {
		p.cache.Set(ctx, stats)
	}
}

func findTask(tasks []*model.Task, id string) *model.Task {
	for _, t := range tasks {
		if t.TaskID == id {
			return t
		}
	}
	return nil
}

func findEntry(entries []*model.DailyTaskEntry, id string) *model.DailyTaskEntry {
	for _, e := range entries {
		if e.EntryID == id {
			return e
		}
	}
	return nil
}
