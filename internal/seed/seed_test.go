package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/seed"
	"github.com/taskdeck/taskdeck/internal/store"
)

func TestSnapshot_Consistent(t *testing.T) {
	snap := seed.Snapshot()

	require.NotEmpty(t, snap.Users)
	assert.Contains(t, snap.Users, snap.Current)

	roster := make(map[string]models.User, len(snap.Users))
	for _, u := range snap.Users {
		_, dup := roster[u.ID]
		assert.Falsef(t, dup, "duplicate user id %s", u.ID)
		roster[u.ID] = u
	}

	taskIDs := make(map[string]bool, len(snap.Tasks))
	for _, task := range snap.Tasks {
		assert.Falsef(t, taskIDs[task.ID], "duplicate task id %s", task.ID)
		taskIDs[task.ID] = true

		assert.NotEmptyf(t, task.Title, "task %s has no title", task.ID)
		assert.Containsf(t, roster, task.Assignee.ID, "task %s assigned outside the roster", task.ID)
		assert.Containsf(t, roster, task.CreatedBy.ID, "task %s created outside the roster", task.ID)
		assert.Falsef(t, task.DueDate.IsZero(), "task %s has no due date", task.ID)
		assert.NotNilf(t, task.Comments, "task %s has nil comments", task.ID)
		assert.NotNilf(t, task.Attachments, "task %s has nil attachments", task.ID)
	}

	// Every notification points at a task that exists
	for _, n := range snap.Notifications {
		if n.TaskID != "" {
			assert.Truef(t, taskIDs[n.TaskID], "notification %s points at missing task %s", n.ID, n.TaskID)
		}
	}
}

func TestSnapshot_FeedIsNewestFirst(t *testing.T) {
	snap := seed.Snapshot()

	require.NotEmpty(t, snap.Notifications)
	for i := 1; i < len(snap.Notifications); i++ {
		prev, cur := snap.Notifications[i-1], snap.Notifications[i]
		assert.Falsef(t, prev.CreatedAt.Before(cur.CreatedAt),
			"notification %s is newer than the %s before it", cur.ID, prev.ID)
	}
}

func TestSnapshot_LoadsIntoSession(t *testing.T) {
	snap := seed.Snapshot()
	s := store.NewSession(snap)

	assert.Equal(t, len(snap.Tasks), s.Tasks.Len())
	assert.Equal(t, len(snap.Notifications), s.Notifications.Len())
	assert.Positive(t, s.Notifications.UnreadCount())
	assert.Equal(t, models.RoleAdmin, s.Current.Role)

	// Every column is populated so the board demos well
	for _, status := range models.AllStatuses {
		assert.Positivef(t, s.Tasks.CountByStatus(status), "no tasks in %s", status)
	}
}
