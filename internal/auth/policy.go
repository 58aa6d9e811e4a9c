package auth

import (
	"errors"

	"github.com/taskdeck/taskdeck/internal/models"
)

// ErrDenied is returned when the user's role does not allow the requested
// mutation.
var ErrDenied = errors.New("permission denied")

// CanEdit reports whether user may modify task. Admins and managers may edit
// any task; employees may only edit tasks assigned to them.
func CanEdit(user models.User, task models.Task) bool {
	switch user.Role {
	case models.RoleAdmin:
		return true
	case models.RoleManager:
		return true
	case models.RoleEmployee:
		return task.Assignee.ID == user.ID
	}
	return false
}

// CanDelete reports whether user may delete task. Only admins may delete,
// regardless of assignee.
func CanDelete(user models.User, task models.Task) bool {
	switch user.Role {
	case models.RoleAdmin:
		return true
	case models.RoleManager, models.RoleEmployee:
		return false
	}
	return false
}

// EditGrant proves that an edit of one task passed the policy check. The
// zero value grants nothing; the only way to obtain a usable grant is
// AuthorizeEdit, so store mutations cannot bypass the policy.
type EditGrant struct {
	taskID string
}

// TaskID returns the task the grant was issued for.
func (g EditGrant) TaskID() string { return g.taskID }

// DeleteGrant proves that a delete of one task passed the policy check.
type DeleteGrant struct {
	taskID string
}

// TaskID returns the task the grant was issued for.
func (g DeleteGrant) TaskID() string { return g.taskID }

// AuthorizeEdit checks CanEdit and issues a grant for task. Returns ErrDenied
// when the policy rejects the user.
func AuthorizeEdit(user models.User, task models.Task) (EditGrant, error) {
	if !CanEdit(user, task) {
		return EditGrant{}, ErrDenied
	}
	return EditGrant{taskID: task.ID}, nil
}

// AuthorizeDelete checks CanDelete and issues a grant for task.
func AuthorizeDelete(user models.User, task models.Task) (DeleteGrant, error) {
	if !CanDelete(user, task) {
		return DeleteGrant{}, ErrDenied
	}
	return DeleteGrant{taskID: task.ID}, nil
}
