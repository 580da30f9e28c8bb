package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"task-manager-go/app/models"
	"task-manager-go/app/services"

	"github.com/gorilla/mux"
)

// TaskController translates HTTP requests into TaskService calls and
// service outcomes into JSON envelopes.
type TaskController struct {
	Service *services.TaskService
}

// NewTaskController creates a new TaskController.
func NewTaskController(service *services.TaskService) *TaskController {
	return &TaskController{Service: service}
}

// Response envelopes. Every endpoint except the root metadata carries
// an ok flag; failures additionally carry error and message.

type errorResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type listResponse struct {
	OK    bool          `json:"ok"`
	Tasks []models.Task `json:"tasks"`
	Total int           `json:"total"`
}

type taskResponse struct {
	OK      bool        `json:"ok"`
	Task    models.Task `json:"task"`
	Message string      `json:"message,omitempty"`
}

type deleteResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Deleted string `json:"deleted"`
}

type clearResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type healthResponse struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
	Total  int    `json:"total"`
	Time   string `json:"time"`
}

type rootResponse struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, category, message string) {
	writeJSON(w, status, errorResponse{OK: false, Error: category, Message: message})
}

// decodeInput reads a task input body. Only a missing, malformed, or
// empty payload ({}, null) is a bad request; an object carrying solely
// unrecognized fields passes through as an empty input.
func decodeInput(r *http.Request) (models.TaskInput, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return models.TaskInput{}, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		return models.TaskInput{}, false
	}

	var in models.TaskInput
	if err := json.Unmarshal(body, &in); err != nil {
		return models.TaskInput{}, false
	}
	return in, true
}

// ListTasks handles GET /tasks, optionally filtered by ?status=.
func (c *TaskController) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks := c.Service.GetTasks(r.URL.Query().Get("status"))
	writeJSON(w, http.StatusOK, listResponse{OK: true, Tasks: tasks, Total: len(tasks)})
}

// GetTask handles GET /tasks/{taskID}.
func (c *TaskController) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["taskID"]

	task, err := c.Service.GetTask(taskID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Not Found", fmt.Sprintf("No task with id %s", taskID))
		return
	}
	writeJSON(w, http.StatusOK, taskResponse{OK: true, Task: task})
}

// CreateTask handles POST /tasks.
func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Bad Request", "JSON body required")
		return
	}

	task, err := c.Service.CreateTask(in)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, "Validation Error", verr.Message)
			return
		}
		writeError(w, http.StatusInternalServerError, "Server error", "")
		return
	}

	writeJSON(w, http.StatusCreated, taskResponse{OK: true, Task: task, Message: "Task successfully created"})
}

// UpdateTask handles PUT /tasks/{taskID}. The id is resolved before the
// body is read, so an unknown id is 404 no matter what the payload is.
func (c *TaskController) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["taskID"]

	if _, err := c.Service.GetTask(taskID); err != nil {
		writeError(w, http.StatusNotFound, "Not Found", fmt.Sprintf("Task id %s not found", taskID))
		return
	}

	in, ok := decodeInput(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Bad Request", "JSON body required")
		return
	}

	task, err := c.Service.UpdateTask(taskID, in)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, "Validation Error", verr.Message)
			return
		}
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Not Found", fmt.Sprintf("Task id %s not found", taskID))
			return
		}
		writeError(w, http.StatusInternalServerError, "Server error", "")
		return
	}

	writeJSON(w, http.StatusOK, taskResponse{OK: true, Task: task, Message: "Task updated"})
}

// DeleteTask handles DELETE /tasks/{taskID}.
func (c *TaskController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["taskID"]

	if err := c.Service.DeleteTask(taskID); err != nil {
		writeError(w, http.StatusNotFound, "Not Found", fmt.Sprintf("No task with id %s", taskID))
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{OK: true, Message: "Task removed", Deleted: taskID})
}

// ClearTasks handles DELETE /tasks.
func (c *TaskController) ClearTasks(w http.ResponseWriter, r *http.Request) {
	n := c.Service.ClearTasks()
	writeJSON(w, http.StatusOK, clearResponse{OK: true, Message: fmt.Sprintf("Removed %d tasks", n), Count: n})
}

// Health handles GET /health.
func (c *TaskController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		OK:     true,
		Status: "running",
		Total:  c.Service.Count(),
		Time:   time.Now().Format(services.TimeLayout),
	})
}

// Root handles GET /, describing the API surface.
func (c *TaskController) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{
		Name:    "Task Manager API",
		Version: "1.0",
		Endpoints: map[string]string{
			"GET /tasks":         "List all tasks or filter by status",
			"GET /tasks/{id}":    "Get one task",
			"POST /tasks":        "Create task",
			"PUT /tasks/{id}":    "Update task",
			"DELETE /tasks/{id}": "Delete task",
			"DELETE /tasks":      "Delete all tasks",
			"GET /health":        "Health check",
		},
	})
}
