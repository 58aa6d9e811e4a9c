package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/store"
)

var (
	admin    = models.User{ID: "u-admin", Name: "Ada", Role: models.RoleAdmin}
	manager  = models.User{ID: "u-mgr", Name: "Mae", Role: models.RoleManager}
	assignee = models.User{ID: "u-emp1", Name: "Eve", Role: models.RoleEmployee}
	other    = models.User{ID: "u-emp2", Name: "Omar", Role: models.RoleEmployee}

	due = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
)

func validRequest() store.CreateRequest {
	return store.CreateRequest{
		Title:     "Fix bug",
		Status:    models.StatusTodo,
		Priority:  models.PriorityHigh,
		Assignee:  assignee,
		CreatedBy: admin,
		DueDate:   due,
	}
}

func mustEdit(t *testing.T, task models.Task) auth.EditGrant {
	t.Helper()
	grant, err := auth.AuthorizeEdit(admin, task)
	require.NoError(t, err)
	return grant
}

func mustDelete(t *testing.T, task models.Task) auth.DeleteGrant {
	t.Helper()
	grant, err := auth.AuthorizeDelete(admin, task)
	require.NoError(t, err)
	return grant
}

func TestCreate_Defaults(t *testing.T) {
	s := store.NewTaskStore(nil)

	task, err := s.Create(validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, models.StatusTodo, task.Status)
	assert.Empty(t, task.Comments)
	assert.Empty(t, task.Attachments)
	assert.False(t, task.CreatedAt.IsZero())

	stored, ok := s.Get(task.ID)
	require.True(t, ok)
	assert.Equal(t, task, stored)
}

func TestCreate_Validation(t *testing.T) {
	s := store.NewTaskStore(nil)

	tests := []struct {
		name   string
		mutate func(*store.CreateRequest)
	}{
		{"empty title", func(r *store.CreateRequest) { r.Title = "" }},
		{"whitespace title", func(r *store.CreateRequest) { r.Title = "   " }},
		{"missing assignee", func(r *store.CreateRequest) { r.Assignee = models.User{} }},
		{"missing due date", func(r *store.CreateRequest) { r.DueDate = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := s.Create(req)
			assert.True(t, store.IsValidation(err), "want ValidationError, got %v", err)
		})
	}
	assert.Equal(t, 0, s.Len())
}

func TestCreate_UniqueStableIDs(t *testing.T) {
	s := store.NewTaskStore(nil)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		task, err := s.Create(validRequest())
		require.NoError(t, err)
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
	assert.Equal(t, 100, s.Len())
}

func TestCreate_DropsBlankTags(t *testing.T) {
	s := store.NewTaskStore(nil)

	req := validRequest()
	req.Tags = []string{"bug", "", "  ", "auth", "bug"}
	task, err := s.Create(req)
	require.NoError(t, err)

	// Duplicates are permitted, empty strings are not
	assert.Equal(t, []string{"bug", "auth", "bug"}, task.Tags)
}

func TestUpdate_DropsBlankTags(t *testing.T) {
	s := store.NewTaskStore(nil)
	task, err := s.Create(validRequest())
	require.NoError(t, err)

	tags := []string{"bug", "", "  ", "auth", "bug"}
	updated, err := s.Update(mustEdit(t, task), store.Patch{Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, []string{"bug", "auth", "bug"}, updated.Tags)

	stored, ok := s.Get(task.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"bug", "auth", "bug"}, stored.Tags)
}

func TestCreate_NewestFirst(t *testing.T) {
	s := store.NewTaskStore(nil)

	first, err := s.Create(validRequest())
	require.NoError(t, err)
	second, err := s.Create(validRequest())
	require.NoError(t, err)

	var order []string
	for task := range s.All() {
		order = append(order, task.ID)
	}
	assert.Equal(t, []string{second.ID, first.ID}, order)
}

func TestUpdate_MergesOnlySuppliedFields(t *testing.T) {
	s := store.NewTaskStore(nil)
	task, err := s.Create(validRequest())
	require.NoError(t, err)

	desc := "Repro steps attached"
	updated, err := s.Update(mustEdit(t, task), store.Patch{Description: &desc})
	require.NoError(t, err)

	assert.Equal(t, desc, updated.Description)
	assert.Equal(t, task.Title, updated.Title)
	assert.Equal(t, task.Status, updated.Status)
	assert.Equal(t, task.Priority, updated.Priority)
	assert.Equal(t, task.CreatedBy, updated.CreatedBy)
	assert.Equal(t, task.CreatedAt, updated.CreatedAt)
}

func TestUpdate_EmptyPatchIsNoOp(t *testing.T) {
	s := store.NewTaskStore(nil)
	task, err := s.Create(validRequest())
	require.NoError(t, err)

	updated, err := s.Update(mustEdit(t, task), store.Patch{})
	require.NoError(t, err)
	assert.Equal(t, task, updated)

	stored, _ := s.Get(task.ID)
	assert.Equal(t, task, stored)
}

func TestUpdate_RejectsBlankTitle(t *testing.T) {
	s := store.NewTaskStore(nil)
	task, err := s.Create(validRequest())
	require.NoError(t, err)

	blank := "  "
	_, err = s.Update(mustEdit(t, task), store.Patch{Title: &blank})
	assert.True(t, store.IsValidation(err))

	stored, _ := s.Get(task.ID)
	assert.Equal(t, task.Title, stored.Title)
}

func TestUpdate_Attachments(t *testing.T) {
	s := store.NewTaskStore(nil)
	task, err := s.Create(validRequest())
	require.NoError(t, err)

	files := []string{"trace.har", "screenshot.png"}
	updated, err := s.Update(mustEdit(t, task), store.Patch{Attachments: &files})
	require.NoError(t, err)
	assert.Equal(t, files, updated.Attachments)

	// Remove one
	files = files[:1]
	updated, err = s.Update(mustEdit(t, updated), store.Patch{Attachments: &files})
	require.NoError(t, err)
	assert.Equal(t, []string{"trace.har"}, updated.Attachments)
}

func TestMove_AllTransitionsLegal(t *testing.T) {
	s := store.NewTaskStore(nil)
	task, err := s.Create(validRequest())
	require.NoError(t, err)

	// Every pair including self-moves
	for _, from := range models.AllStatuses {
		for _, to := range models.AllStatuses {
			_, err := s.Move(mustEdit(t, task), from)
			require.NoError(t, err)
			moved, err := s.Move(mustEdit(t, task), to)
			require.NoError(t, err, "move %s -> %s", from, to)
			assert.Equal(t, to, moved.Status)
		}
	}
}

func TestMove_ChangesNothingElse(t *testing.T) {
	s := store.NewTaskStore(nil)
	req := validRequest()
	req.Status = models.StatusReview
	task, err := s.Create(req)
	require.NoError(t, err)

	moved, err := s.Move(mustEdit(t, task), models.StatusDone)
	require.NoError(t, err)

	want := task
	want.Status = models.StatusDone
	assert.Equal(t, want, moved)
}

func TestDelete_Idempotent(t *testing.T) {
	s := store.NewTaskStore(nil)
	task, err := s.Create(validRequest())
	require.NoError(t, err)

	grant := mustDelete(t, task)
	s.Delete(grant)
	assert.Equal(t, 0, s.Len())

	// Deleting again is a silent no-op
	s.Delete(grant)
	assert.Equal(t, 0, s.Len())
}

func TestUpdate_AfterDeleteIsNotFound(t *testing.T) {
	s := store.NewTaskStore(nil)
	task, err := s.Create(validRequest())
	require.NoError(t, err)

	edit := mustEdit(t, task)
	s.Delete(mustDelete(t, task))

	_, err = s.Update(edit, store.Patch{})
	assert.True(t, store.IsNotFound(err))
	_, err = s.Move(edit, models.StatusDone)
	assert.True(t, store.IsNotFound(err))
}

func TestAddComment(t *testing.T) {
	s := store.NewTaskStore(nil)
	task, err := s.Create(validRequest())
	require.NoError(t, err)

	first, err := s.AddComment(task.ID, assignee, "On it.")
	require.NoError(t, err)
	second, err := s.AddComment(task.ID, manager, "Thanks!")
	require.NoError(t, err)

	stored, _ := s.Get(task.ID)
	require.Len(t, stored.Comments, 2)
	assert.Equal(t, first, stored.Comments[0])
	assert.Equal(t, second, stored.Comments[1])
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAddComment_Errors(t *testing.T) {
	s := store.NewTaskStore(nil)
	task, err := s.Create(validRequest())
	require.NoError(t, err)

	_, err = s.AddComment(task.ID, assignee, "   ")
	assert.True(t, store.IsValidation(err))

	_, err = s.AddComment("missing", assignee, "hello")
	assert.True(t, store.IsNotFound(err))
}

func TestCountByStatus(t *testing.T) {
	s := store.NewTaskStore(nil)
	for _, status := range []models.Status{models.StatusTodo, models.StatusTodo, models.StatusDone} {
		req := validRequest()
		req.Status = status
		_, err := s.Create(req)
		require.NoError(t, err)
	}

	assert.Equal(t, 2, s.CountByStatus(models.StatusTodo))
	assert.Equal(t, 0, s.CountByStatus(models.StatusReview))
	assert.Equal(t, 1, s.CountByStatus(models.StatusDone))
}
