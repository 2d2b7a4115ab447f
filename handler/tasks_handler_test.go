package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type memTaskStore struct {
	tasks []*model.Task
}

func (s *memTaskStore) LoadTasks(ctx context.Context) ([]*model.Task, error) {
	return append([]*model.Task(nil), s.tasks...), nil
}

func (s *memTaskStore) InsertTask(ctx context.Context, task *model.Task) error {
	copied := *task
	s.tasks = append(s.tasks, &copied)
	return nil
}

func (s *memTaskStore) UpdateTask(ctx context.Context, task *model.Task) error {
	for i, stored := range s.tasks {
		if stored.TaskID == task.TaskID {
			copied := *task
			s.tasks[i] = &copied
			return nil
		}
	}
	return usecase.ErrTaskNotFound
}

func (s *memTaskStore) DeleteTask(ctx context.Context, taskID string) error {
	for i, stored := range s.tasks {
		if stored.TaskID == taskID {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return usecase.ErrTaskNotFound
}

func newTasksRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.InitValidator()

	planner := usecase.NewPlanner(usecase.PlannerDeps{
		Tasks: &memTaskStore{},
	})
	h := NewTasksHandler(planner)

	router := gin.New()
	router.GET("/api/tasks/", h.ListTasks)
	router.POST("/api/tasks/", h.CreateTask)
	router.DELETE("/api/tasks/:id", h.DeleteTask)
	return router
}

func TestCreateAndListTasks(t *testing.T) {
	router := newTasksRouter()

	body := `{"title":"Read","priority":"medium","estimated_minutes":30}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tasks/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data []struct {
			ID       string `json:"id"`
			Title    string `json:"title"`
			Priority string `json:"priority"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("undecodable response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Title != "Read" || resp.Data[0].Priority != "medium" {
		t.Fatalf("unexpected task list: %+v", resp.Data)
	}
}

func TestCreateTaskRejectsBadBody(t *testing.T) {
	router := newTasksRouter()

	cases := []string{
		`{"priority":"medium"}`,          // missing title
		`{"title":"x"}`,                  // missing priority
		`{"title":"x","priority":"top"}`, // unknown priority
	}
	for _, body := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/tasks/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestDeleteUnknownTask(t *testing.T) {
	router := newTasksRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/tasks/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
