package handler

import (
	"errors"
	"time"

	"main/dto"
	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	planner *usecase.Planner
}

func NewScheduleHandler(planner *usecase.Planner) *ScheduleHandler {
	return &ScheduleHandler{planner: planner}
}

// CurrentSchedule returns the schedule for the week containing today. When
// none is stored yet the response is a fresh empty schedule; it is only
// persisted once the client saves it.
func (h *ScheduleHandler) CurrentSchedule(c *gin.Context) {
	schedule := h.planner.CurrentWeekSchedule(c.Request.Context())
	utils.Success(c, dto.ToScheduleResponse(schedule))
}

// ToggleTask returns an edited copy of the current week's schedule with the
// task added to or removed from the given day. Nothing is saved; the client
// persists the result with SaveSchedule.
func (h *ScheduleHandler) ToggleTask(c *gin.Context) {
	var req struct {
		Day    model.DayOfWeek `json:"day" binding:"required"`
		TaskID string          `json:"task_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	schedule, err := h.planner.ToggleCurrentScheduleTask(c.Request.Context(), req.Day, req.TaskID)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDay) || errors.Is(err, usecase.ErrTaskRequired) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToScheduleResponse(schedule))
}

func (h *ScheduleHandler) SaveSchedule(c *gin.Context) {
	var req struct {
		ID            string              `json:"id"`
		WeekStartDate string              `json:"week_start_date" binding:"required"`
		Tasks         map[string][]string `json:"tasks"`
		CreatedAt     time.Time           `json:"created_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	schedule := &model.WeekSchedule{
		ScheduleID:    req.ID,
		WeekStartDate: req.WeekStartDate,
		Tasks:         make(map[model.DayOfWeek][]string, len(req.Tasks)),
		CreatedAt:     req.CreatedAt,
	}
	for day, ids := range req.Tasks {
		schedule.Tasks[model.DayOfWeek(day)] = ids
	}

	if err := h.planner.SaveWeekSchedule(c.Request.Context(), schedule); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate),
			errors.Is(err, usecase.ErrInvalidWeekStart),
			errors.Is(err, usecase.ErrInvalidDay):
			utils.BadRequest(c, err.Error())
		case errors.Is(err, repository.ErrDuplicateWeekSchedule):
			utils.Conflict(c, err.Error())
		default:
			utils.InternalError(c, err.Error())
		}
		return
	}

	utils.Success(c, dto.ToScheduleResponse(schedule))
}
