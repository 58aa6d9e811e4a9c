package store

import (
	"fmt"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/models"
)

// Snapshot is the seed data a session starts from: the roster, the active
// user, and the initial tasks and notifications. The session treats it as an
// opaque initial state.
type Snapshot struct {
	Current       models.User
	Users         []models.User
	Tasks         []models.Task
	Notifications []models.Notification
}

// Session is the process-wide state handle: the current user, the roster,
// both stores, and the single selected task. It is constructed once at
// startup and injected into every view; there is no global instance.
type Session struct {
	Current       models.User
	Users         []models.User
	Tasks         *TaskStore
	Notifications *NotificationStore

	// selection is held by id, not by copy, so reads always reflect the
	// latest task state.
	selectedID string
}

// NewSession builds a session from the seed snapshot.
func NewSession(snap Snapshot) *Session {
	return &Session{
		Current:       snap.Current,
		Users:         snap.Users,
		Tasks:         NewTaskStore(snap.Tasks),
		Notifications: NewNotificationStore(snap.Notifications),
	}
}

// Select opens the task with the given id for inspection. Selecting an id
// that is not in the store clears the selection.
func (s *Session) Select(id string) {
	if _, ok := s.Tasks.Get(id); !ok {
		s.selectedID = ""
		return
	}
	s.selectedID = id
}

// ClearSelection closes the detail view.
func (s *Session) ClearSelection() { s.selectedID = "" }

// Selected resolves the current selection against the task store. A stale
// selection (task deleted since) reports false.
func (s *Session) Selected() (models.Task, bool) {
	if s.selectedID == "" {
		return models.Task{}, false
	}
	return s.Tasks.Get(s.selectedID)
}

// CreateTask creates a task and posts an assignment notification to the
// feed when the task is assigned to someone other than its creator.
func (s *Session) CreateTask(req CreateRequest) (models.Task, error) {
	req.CreatedBy = s.Current
	task, err := s.Tasks.Create(req)
	if err != nil {
		return models.Task{}, err
	}
	if task.Assignee.ID != s.Current.ID {
		s.Notifications.Append(models.NotificationTask,
			"New task assigned",
			fmt.Sprintf("%s assigned %q to %s", s.Current.Name, task.Title, task.Assignee.Name),
			task.ID)
	}
	return task, nil
}

// AddComment appends a comment by the current user and posts a comment
// notification to the feed.
func (s *Session) AddComment(taskID, content string) (models.Comment, error) {
	comment, err := s.Tasks.AddComment(taskID, s.Current, content)
	if err != nil {
		return models.Comment{}, err
	}
	if task, ok := s.Tasks.Get(taskID); ok {
		s.Notifications.Append(models.NotificationComment,
			"New comment",
			fmt.Sprintf("%s commented on %q", s.Current.Name, task.Title),
			task.ID)
	}
	return comment, nil
}

// DeleteTask removes the granted task and clears the selection if it
// pointed at the deleted task. The store itself does not own the selection,
// so the session pairs the two here.
func (s *Session) DeleteTask(grant auth.DeleteGrant) {
	s.Tasks.Delete(grant)
	if s.selectedID == grant.TaskID() {
		s.selectedID = ""
	}
}

// OpenNotification marks the notification read and, when it references a
// task that still exists, selects that task. A dangling reference leaves
// the selection unchanged rather than erroring.
func (s *Session) OpenNotification(id string) (models.Task, bool) {
	s.Notifications.MarkRead(id)
	n, ok := s.Notifications.Get(id)
	if !ok || n.TaskID == "" {
		return models.Task{}, false
	}
	task, ok := s.Tasks.Get(n.TaskID)
	if !ok {
		return models.Task{}, false
	}
	s.selectedID = task.ID
	return task, true
}

// UserByID looks up a roster member.
func (s *Session) UserByID(id string) (models.User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}
