package handler

import (
	"errors"

	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type NotificationsHandler struct {
	planner *usecase.Planner
}

func NewNotificationsHandler(planner *usecase.Planner) *NotificationsHandler {
	return &NotificationsHandler{planner: planner}
}

func (h *NotificationsHandler) GetConfig(c *gin.Context) {
	utils.Success(c, h.planner.NotificationConfig())
}

// UpdateConfig persists the reminder configuration and reschedules or
// cancels the daily reminder to match.
func (h *NotificationsHandler) UpdateConfig(c *gin.Context) {
	var req struct {
		Enabled   *bool  `json:"enabled" binding:"required"`
		Time      string `json:"time" binding:"required,hhmm"`
		Sound     bool   `json:"sound"`
		Vibration bool   `json:"vibration"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cfg := model.NotificationConfig{
		Enabled:   *req.Enabled,
		Time:      req.Time,
		Sound:     req.Sound,
		Vibration: req.Vibration,
	}
	if err := h.planner.UpdateNotificationConfig(c.Request.Context(), cfg); err != nil {
		if errors.Is(err, usecase.ErrInvalidReminderTime) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, cfg)
}

// TestReminder queues one immediate reminder so users can verify delivery.
func (h *NotificationsHandler) TestReminder(c *gin.Context) {
	if err := h.planner.TestReminder(c.Request.Context()); err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	utils.Success(c, gin.H{"queued": true})
}
