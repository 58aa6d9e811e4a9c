package models

import "time"

// Role determines what a user is allowed to do with tasks
type Role int

const (
	RoleEmployee Role = iota
	RoleManager
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleManager:
		return "manager"
	case RoleEmployee:
		return "employee"
	}
	return "unknown"
}

// User represents a team member
type User struct {
	ID     string
	Name   string
	Email  string
	Avatar string
	Role   Role
}

// Status is a kanban column
type Status int

const (
	StatusTodo Status = iota
	StatusInProgress
	StatusReview
	StatusDone
)

// AllStatuses lists the kanban columns in board order
var AllStatuses = []Status{StatusTodo, StatusInProgress, StatusReview, StatusDone}

func (s Status) String() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusReview:
		return "Review"
	case StatusDone:
		return "Done"
	}
	return "unknown"
}

// Priority of a task
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

// AllPriorities lists priorities from low to high
var AllPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	}
	return "unknown"
}

// Comment represents a comment on a task; immutable once created
type Comment struct {
	ID        string
	User      User
	Content   string
	CreatedAt time.Time
}

// Task represents a single work item
type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	Assignee    User
	CreatedBy   User
	CreatedAt   time.Time
	DueDate     time.Time
	Tags        []string
	Comments    []Comment
	Attachments []string
}

// NotificationType categorizes feed entries
type NotificationType int

const (
	NotificationTask NotificationType = iota
	NotificationComment
	NotificationMention
	NotificationDeadline
)

func (t NotificationType) String() string {
	switch t {
	case NotificationTask:
		return "task"
	case NotificationComment:
		return "comment"
	case NotificationMention:
		return "mention"
	case NotificationDeadline:
		return "deadline"
	}
	return "unknown"
}

// Notification is a single entry in the activity feed. TaskID is empty when
// the entry has no task to navigate to; it may also reference a task that
// has since been deleted.
type Notification struct {
	ID        string
	Title     string
	Message   string
	Type      NotificationType
	Read      bool
	CreatedAt time.Time
	TaskID    string
}
