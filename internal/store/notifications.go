package store

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/models"
)

// NotificationStore is the chronological activity feed, newest first.
// Notifications are never deleted; the only mutation is the read flag.
type NotificationStore struct {
	feed []models.Notification
	now  func() time.Time
}

// NewNotificationStore builds a feed from the initial snapshot in the order
// provided.
func NewNotificationStore(initial []models.Notification) *NotificationStore {
	return &NotificationStore{
		feed: slices.Clone(initial),
		now:  time.Now,
	}
}

// Append adds a new entry at the head of the feed, unread. taskID may be
// empty for entries with no navigation target.
func (s *NotificationStore) Append(typ models.NotificationType, title, message, taskID string) models.Notification {
	n := models.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Type:      typ,
		CreatedAt: s.now(),
		TaskID:    taskID,
	}
	s.feed = slices.Insert(s.feed, 0, n)
	return n
}

// MarkRead marks the matching notification read. Best-effort: already-read
// entries and unknown ids are silent no-ops.
func (s *NotificationStore) MarkRead(id string) {
	for i := range s.feed {
		if s.feed[i].ID == id {
			s.feed[i].Read = true
			return
		}
	}
}

// MarkAllRead marks every notification read.
func (s *NotificationStore) MarkAllRead() {
	for i := range s.feed {
		s.feed[i].Read = true
	}
}

// UnreadCount counts unread entries. Computed on every call; the indicator
// reads it on every render.
func (s *NotificationStore) UnreadCount() int {
	n := 0
	for i := range s.feed {
		if !s.feed[i].Read {
			n++
		}
	}
	return n
}

// Get returns the notification with the given id.
func (s *NotificationStore) Get(id string) (models.Notification, bool) {
	for i := range s.feed {
		if s.feed[i].ID == id {
			return s.feed[i], true
		}
	}
	return models.Notification{}, false
}

// All returns the feed newest first. The slice is a copy; mutating it does
// not affect the store.
func (s *NotificationStore) All() []models.Notification {
	return slices.Clone(s.feed)
}

// Len returns the number of notifications in the feed.
func (s *NotificationStore) Len() int { return len(s.feed) }
