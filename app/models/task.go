package models

// Task statuses. No other value is ever stored.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// AllowedStatuses lists every valid task status, in the order they are
// reported in validation messages.
var AllowedStatuses = []string{StatusPending, StatusInProgress, StatusCompleted}

// Task represents a managed work item. Created and Updated hold
// ISO-8601 local-time strings (microsecond precision, no zone), which is
// also their wire form.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Created     string `json:"created"`
	Updated     string `json:"updated"`
}

// TaskInput is the decode target for create and update request bodies.
// Pointer fields distinguish an absent field from an empty one, which
// update semantics depend on.
type TaskInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}
