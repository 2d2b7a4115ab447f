package handler

import (
	"errors"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type TasksHandler struct {
	planner *usecase.Planner
}

func NewTasksHandler(planner *usecase.Planner) *TasksHandler {
	return &TasksHandler{planner: planner}
}

func (h *TasksHandler) ListTasks(c *gin.Context) {
	utils.Success(c, dto.ToTaskResponses(h.planner.Tasks()))
}

func (h *TasksHandler) CreateTask(c *gin.Context) {
	var req struct {
		Title            string         `json:"title" binding:"required"`
		Description      string         `json:"description"`
		EstimatedMinutes int            `json:"estimated_minutes"`
		Priority         model.Priority `json:"priority" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	task, err := h.planner.CreateTask(c.Request.Context(), usecase.TaskDraft{
		Title:            req.Title,
		Description:      req.Description,
		EstimatedMinutes: req.EstimatedMinutes,
		Priority:         req.Priority,
	})
	if err != nil {
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Created(c, dto.ToTaskResponse(task))
}

func (h *TasksHandler) UpdateTask(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		utils.BadRequest(c, "Missing task ID")
		return
	}

	var req struct {
		Title            *string         `json:"title"`
		Description      *string         `json:"description"`
		EstimatedMinutes *int            `json:"estimated_minutes"`
		Priority         *model.Priority `json:"priority"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	task, err := h.planner.EditTask(c.Request.Context(), taskID, usecase.TaskUpdate{
		Title:            req.Title,
		Description:      req.Description,
		EstimatedMinutes: req.EstimatedMinutes,
		Priority:         req.Priority,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTaskNotFound):
			utils.NotFound(c, err.Error())
		case isValidationError(err):
			utils.BadRequest(c, err.Error())
		default:
			utils.InternalError(c, err.Error())
		}
		return
	}

	utils.Success(c, dto.ToTaskResponse(task))
}

func (h *TasksHandler) DeleteTask(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		utils.BadRequest(c, "Missing task ID")
		return
	}

	if err := h.planner.RemoveTask(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"deleted": taskID})
}

func isValidationError(err error) bool {
	return errors.Is(err, usecase.ErrTitleRequired) ||
		errors.Is(err, usecase.ErrInvalidPriority) ||
		errors.Is(err, usecase.ErrInvalidMinutes)
}
