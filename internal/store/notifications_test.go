package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/store"
)

func feedFixture() *store.NotificationStore {
	now := time.Now()
	return store.NewNotificationStore([]models.Notification{
		{ID: "n1", Title: "New task assigned", Type: models.NotificationTask, CreatedAt: now.Add(-time.Hour), TaskID: "t1"},
		{ID: "n2", Title: "New comment", Type: models.NotificationComment, CreatedAt: now.Add(-30 * time.Minute), TaskID: "t1", Read: true},
		{ID: "n3", Title: "Due soon", Type: models.NotificationDeadline, CreatedAt: now},
	})
}

func TestMarkRead(t *testing.T) {
	s := feedFixture()
	require.Equal(t, 2, s.UnreadCount())

	s.MarkRead("n1")
	assert.Equal(t, 1, s.UnreadCount())

	n, ok := s.Get("n1")
	require.True(t, ok)
	assert.True(t, n.Read)
}

func TestMarkRead_BestEffort(t *testing.T) {
	s := feedFixture()

	// Already read and unknown ids are silent no-ops
	s.MarkRead("n2")
	s.MarkRead("nope")
	assert.Equal(t, 2, s.UnreadCount())
}

func TestMarkAllRead(t *testing.T) {
	s := feedFixture()
	s.MarkAllRead()
	assert.Equal(t, 0, s.UnreadCount())

	// Idempotent
	s.MarkAllRead()
	assert.Equal(t, 0, s.UnreadCount())
}

func TestUnreadCount_Live(t *testing.T) {
	s := feedFixture()
	require.Equal(t, 2, s.UnreadCount())

	s.Append(models.NotificationMention, "You were mentioned", "in a comment", "t2")
	assert.Equal(t, 3, s.UnreadCount())
}

func TestAppend_NewestFirst(t *testing.T) {
	s := feedFixture()

	added := s.Append(models.NotificationTask, "Task completed", "done", "")
	assert.NotEmpty(t, added.ID)
	assert.False(t, added.Read)
	assert.Empty(t, added.TaskID)

	feed := s.All()
	require.Len(t, feed, 4)
	assert.Equal(t, added.ID, feed[0].ID)
}

func TestAll_ReturnsCopy(t *testing.T) {
	s := feedFixture()

	feed := s.All()
	feed[0].Read = true
	feed[0].Title = "mutated"

	fresh := s.All()
	assert.False(t, fresh[0].Read)
	assert.Equal(t, "New task assigned", fresh[0].Title)
}
