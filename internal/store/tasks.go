package store

import (
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/models"
)

// TaskStore owns every task record for the session. Records are held in
// memory only; insertion order (newest first) defines the default iteration
// order. Mutations that change or remove a record require a grant from the
// auth package, so callers cannot skip the policy check.
type TaskStore struct {
	tasks map[string]models.Task
	order []string
	now   func() time.Time
}

// NewTaskStore builds a store holding the given initial snapshot in the
// order provided.
func NewTaskStore(initial []models.Task) *TaskStore {
	s := &TaskStore{
		tasks: make(map[string]models.Task, len(initial)),
		order: make([]string, 0, len(initial)),
		now:   time.Now,
	}
	for _, t := range initial {
		if _, ok := s.tasks[t.ID]; ok {
			continue
		}
		s.tasks[t.ID] = t
		s.order = append(s.order, t.ID)
	}
	return s
}

// CreateRequest carries the caller-supplied fields for a new task. The
// status is whatever the caller passes; there is no implicit default.
type CreateRequest struct {
	Title       string
	Description string
	Status      models.Status
	Priority    models.Priority
	Assignee    models.User
	CreatedBy   models.User
	DueDate     time.Time
	Tags        []string
}

// cleanTags trims every tag and drops the blank ones. Duplicates are kept:
// only empty strings are excluded from the stored set.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// Create validates req, assigns a fresh id and stores the task at the head
// of the collection. Comments and attachments start empty. Empty tag strings
// are dropped.
func (s *TaskStore) Create(req CreateRequest) (models.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.Task{}, invalidf("title", "must not be empty")
	}
	if req.Assignee.ID == "" {
		return models.Task{}, invalidf("assignee", "required")
	}
	if req.DueDate.IsZero() {
		return models.Task{}, invalidf("due date", "required")
	}

	task := models.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Assignee:    req.Assignee,
		CreatedBy:   req.CreatedBy,
		CreatedAt:   s.now(),
		DueDate:     req.DueDate,
		Tags:        cleanTags(req.Tags),
		Comments:    []models.Comment{},
		Attachments: []string{},
	}

	s.tasks[task.ID] = task
	s.order = slices.Insert(s.order, 0, task.ID)
	return task, nil
}

// Patch describes a partial update. Nil fields are left untouched, so an
// empty patch is a no-op. CreatedBy and CreatedAt are deliberately absent:
// they never change after creation.
type Patch struct {
	Title       *string
	Description *string
	Status      *models.Status
	Priority    *models.Priority
	Assignee    *models.User
	DueDate     *time.Time
	Tags        *[]string
	Attachments *[]string
}

// Update merges patch into the granted task. Returns NotFoundError when the
// task no longer exists (it may have been deleted after the grant was
// issued) and ValidationError when the patch would blank the title.
func (s *TaskStore) Update(grant auth.EditGrant, patch Patch) (models.Task, error) {
	task, ok := s.tasks[grant.TaskID()]
	if !ok {
		return models.Task{}, &NotFoundError{Kind: "task", ID: grant.TaskID()}
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return models.Task{}, invalidf("title", "must not be empty")
		}
		task.Title = title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Assignee != nil {
		task.Assignee = *patch.Assignee
	}
	if patch.DueDate != nil {
		task.DueDate = *patch.DueDate
	}
	if patch.Tags != nil {
		task.Tags = cleanTags(*patch.Tags)
	}
	if patch.Attachments != nil {
		task.Attachments = slices.Clone(*patch.Attachments)
	}

	s.tasks[task.ID] = task
	return task, nil
}

// Move changes only the task's status. Every status is a legal target from
// every other status, including itself.
func (s *TaskStore) Move(grant auth.EditGrant, status models.Status) (models.Task, error) {
	return s.Update(grant, Patch{Status: &status})
}

// Delete removes the granted task. Deleting a task that is already gone is
// a silent no-op, so delete is idempotent from the caller's perspective.
func (s *TaskStore) Delete(grant auth.DeleteGrant) {
	id := grant.TaskID()
	if _, ok := s.tasks[id]; !ok {
		return
	}
	delete(s.tasks, id)
	s.order = slices.DeleteFunc(s.order, func(o string) bool { return o == id })
}

// AddComment appends a comment to the task. Comments are append-only and
// immutable once created.
func (s *TaskStore) AddComment(taskID string, user models.User, content string) (models.Comment, error) {
	task, ok := s.tasks[taskID]
	if !ok {
		return models.Comment{}, &NotFoundError{Kind: "task", ID: taskID}
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Comment{}, invalidf("comment", "must not be empty")
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		User:      user,
		Content:   content,
		CreatedAt: s.now(),
	}
	task.Comments = append(slices.Clone(task.Comments), comment)
	s.tasks[task.ID] = task
	return comment, nil
}

// Get returns the task with the given id.
func (s *TaskStore) Get(id string) (models.Task, bool) {
	task, ok := s.tasks[id]
	return task, ok
}

// Len returns the number of tasks in the store.
func (s *TaskStore) Len() int { return len(s.order) }

// All iterates over every task in insertion order, newest first. The
// sequence is restartable and always reflects the current store contents.
func (s *TaskStore) All() iter.Seq[models.Task] {
	return func(yield func(models.Task) bool) {
		for _, id := range s.order {
			if !yield(s.tasks[id]) {
				return
			}
		}
	}
}

// CountByStatus returns the number of tasks in the given column.
func (s *TaskStore) CountByStatus(status models.Status) int {
	n := 0
	for _, t := range s.tasks {
		if t.Status == status {
			n++
		}
	}
	return n
}
