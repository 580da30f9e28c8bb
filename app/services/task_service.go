package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"task-manager-go/app/models"

	"github.com/google/uuid"
)

// TimeLayout renders local time the way the API serves it: ISO-8601
// with microseconds and no zone designator.
const TimeLayout = "2006-01-02T15:04:05.000000"

func now() string {
	return time.Now().Format(TimeLayout)
}

// TaskService owns the in-memory task collection and enforces all of
// its invariants. Tasks are kept in insertion order.
type TaskService struct {
	mu    sync.RWMutex
	tasks []*models.Task
}

// NewTaskService creates a store seeded with two demo tasks.
func NewTaskService() *TaskService {
	s := &TaskService{}
	s.seed("Finish REST API homework", "Build Flask CRUD endpoints for tasks", models.StatusInProgress)
	s.seed("Prepare for software exam", "Revise Flask concepts and REST fundamentals", models.StatusPending)
	return s
}

func (s *TaskService) seed(title, description, status string) {
	ts := now()
	s.tasks = append(s.tasks, &models.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Status:      status,
		Created:     ts,
		Updated:     ts,
	})
}

// validate checks in against the field rules. requireTitle is true for
// create, where title must be present and non-blank; update requires
// nothing. A supplied status must always be a known value.
func validate(in models.TaskInput, requireTitle bool) error {
	if requireTitle && (in.Title == nil || strings.TrimSpace(*in.Title) == "") {
		return &ValidationError{Message: "'title' is required and cannot be blank"}
	}
	if in.Status != nil && !validStatus(*in.Status) {
		return &ValidationError{
			Message: fmt.Sprintf("Status must be one of: %s", strings.Join(models.AllowedStatuses, ", ")),
		}
	}
	return nil
}

func validStatus(status string) bool {
	for _, allowed := range models.AllowedStatuses {
		if status == allowed {
			return true
		}
	}
	return false
}

// GetTasks returns all tasks, or only those matching status when it is
// non-empty. The result preserves insertion order and is never nil.
func (s *TaskService) GetTasks(status string) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if status == "" || t.Status == status {
			tasks = append(tasks, *t)
		}
	}
	return tasks
}

// GetTask returns the task with the given id, or ErrNotFound.
func (s *TaskService) GetTask(id string) (models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.find(id)
	if t == nil {
		return models.Task{}, ErrNotFound
	}
	return *t, nil
}

// CreateTask validates in and appends a new task. Title is required and
// trimmed; description defaults to empty; status defaults to pending.
func (s *TaskService) CreateTask(in models.TaskInput) (models.Task, error) {
	if err := validate(in, true); err != nil {
		return models.Task{}, err
	}

	ts := now()
	task := &models.Task{
		ID:      uuid.New().String(),
		Title:   strings.TrimSpace(*in.Title),
		Status:  models.StatusPending,
		Created: ts,
		Updated: ts,
	}
	if in.Description != nil {
		task.Description = strings.TrimSpace(*in.Description)
	}
	if in.Status != nil {
		task.Status = *in.Status
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	return *task, nil
}

// UpdateTask applies the supplied fields of in to the task with the
// given id. Fields are applied independently; a supplied blank title is
// ignored rather than rejected. Updated is bumped even when no field
// changed. Id and Created are never altered.
func (s *TaskService) UpdateTask(id string, in models.TaskInput) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(id)
	if t == nil {
		return models.Task{}, ErrNotFound
	}

	if err := validate(in, false); err != nil {
		return models.Task{}, err
	}

	if in.Title != nil {
		if title := strings.TrimSpace(*in.Title); title != "" {
			t.Title = title
		}
	}
	if in.Description != nil {
		t.Description = strings.TrimSpace(*in.Description)
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	t.Updated = now()

	return *t, nil
}

// DeleteTask removes the task with the given id, or returns ErrNotFound.
func (s *TaskService) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ClearTasks removes every task and returns how many were removed.
func (s *TaskService) ClearTasks() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.tasks)
	s.tasks = nil
	return n
}

// Count returns the number of stored tasks.
func (s *TaskService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.tasks)
}

// find returns the stored task with the given id, or nil. Callers must
// hold the lock.
func (s *TaskService) find(id string) *models.Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}
