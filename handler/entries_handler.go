package handler

import (
	"errors"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type EntriesHandler struct {
	planner *usecase.Planner
}

func NewEntriesHandler(planner *usecase.Planner) *EntriesHandler {
	return &EntriesHandler{planner: planner}
}

func (h *EntriesHandler) ListEntries(c *gin.Context) {
	utils.Success(c, dto.ToEntryResponses(h.planner.Entries()))
}

func (h *EntriesHandler) TodayEntries(c *gin.Context) {
	utils.Success(c, dto.ToEntryResponses(h.planner.TodayEntries()))
}

func (h *EntriesHandler) CreateEntry(c *gin.Context) {
	var req struct {
		TaskID string `json:"task_id" binding:"required"`
		Date   string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	entry, err := h.planner.CreateEntry(c.Request.Context(), req.TaskID, req.Date)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDate) || errors.Is(err, usecase.ErrTaskRequired) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Created(c, dto.ToEntryResponse(entry))
}

func (h *EntriesHandler) CompleteEntry(c *gin.Context) {
	var req struct {
		Notes string `json:"notes"`
	}
	// The body is optional; complete works without notes.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}

	entry, err := h.planner.CompleteEntry(c.Request.Context(), c.Param("id"), req.Notes)
	if err != nil {
		h.transitionError(c, err)
		return
	}
	utils.Success(c, dto.ToEntryResponse(entry))
}

func (h *EntriesHandler) SkipEntry(c *gin.Context) {
	entry, err := h.planner.SkipEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.transitionError(c, err)
		return
	}
	utils.Success(c, dto.ToEntryResponse(entry))
}

func (h *EntriesHandler) UndoEntry(c *gin.Context) {
	entry, err := h.planner.UndoEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.transitionError(c, err)
		return
	}
	utils.Success(c, dto.ToEntryResponse(entry))
}

func (h *EntriesHandler) transitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrEntryNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, usecase.ErrIllegalTransition):
		utils.Conflict(c, err.Error())
	default:
		utils.InternalError(c, err.Error())
	}
}
