package dto

import (
	"time"

	"main/model"
)

type TaskResponse struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description,omitempty"`
	EstimatedMinutes int            `json:"estimated_minutes,omitempty"`
	Priority         model.Priority `json:"priority"`
	CreatedAt        time.Time      `json:"created_at"`
}

// Convert model.Task to TaskResponse
func ToTaskResponse(task *model.Task) TaskResponse {
	return TaskResponse{
		ID:               task.TaskID,
		Title:            task.Title,
		Description:      task.Description,
		EstimatedMinutes: task.EstimatedMinutes,
		Priority:         task.Priority,
		CreatedAt:        task.CreatedAt,
	}
}

// Convert slice of model.Task to slice of TaskResponse
func ToTaskResponses(tasks []*model.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task)
	}
	return responses
}
