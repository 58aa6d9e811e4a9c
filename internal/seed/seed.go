// Package seed provides the built-in demo snapshot the app starts from.
// There is no remote backend; this is the whole initial state.
package seed

import (
	"time"

	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/store"
)

// Snapshot returns the demo roster, tasks and notifications. The first user
// (an admin) is the active user.
func Snapshot() store.Snapshot {
	now := time.Now()

	users := []models.User{
		{ID: "u1", Name: "Sarah Chen", Email: "sarah.chen@taskdeck.dev", Avatar: "SC", Role: models.RoleAdmin},
		{ID: "u2", Name: "Marcus Webb", Email: "marcus.webb@taskdeck.dev", Avatar: "MW", Role: models.RoleManager},
		{ID: "u3", Name: "Priya Patel", Email: "priya.patel@taskdeck.dev", Avatar: "PP", Role: models.RoleEmployee},
		{ID: "u4", Name: "Tom Okafor", Email: "tom.okafor@taskdeck.dev", Avatar: "TO", Role: models.RoleEmployee},
		{ID: "u5", Name: "Lena Fischer", Email: "lena.fischer@taskdeck.dev", Avatar: "LF", Role: models.RoleEmployee},
	}

	tasks := []models.Task{
		{
			ID:          "t1",
			Title:       "Fix login redirect loop",
			Description: "Users landing on an expired session bounce between /login and /dashboard.",
			Status:      models.StatusInProgress,
			Priority:    models.PriorityHigh,
			Assignee:    users[2],
			CreatedBy:   users[1],
			CreatedAt:   now.Add(-72 * time.Hour),
			DueDate:     now.Add(24 * time.Hour),
			Tags:        []string{"bug", "auth"},
			Comments: []models.Comment{
				{ID: "c1", User: users[1], Content: "Repro steps are in the ticket, happens on Safari too.", CreatedAt: now.Add(-48 * time.Hour)},
				{ID: "c2", User: users[2], Content: "Narrowed it down to the token refresh path.", CreatedAt: now.Add(-20 * time.Hour)},
			},
			Attachments: []string{"har-trace.har"},
		},
		{
			ID:          "t2",
			Title:       "Design empty states for the board",
			Description: "Columns with no tasks look broken. Needs illustrations and copy.",
			Status:      models.StatusTodo,
			Priority:    models.PriorityMedium,
			Assignee:    users[4],
			CreatedBy:   users[0],
			CreatedAt:   now.Add(-50 * time.Hour),
			DueDate:     now.Add(5 * 24 * time.Hour),
			Tags:        []string{"design"},
			Comments:    []models.Comment{},
			Attachments: []string{},
		},
		{
			ID:          "t3",
			Title:       "Quarterly capacity planning",
			Description: "Collect team availability for Q4 and update the allocation sheet.",
			Status:      models.StatusReview,
			Priority:    models.PriorityLow,
			Assignee:    users[1],
			CreatedBy:   users[0],
			CreatedAt:   now.Add(-6 * 24 * time.Hour),
			DueDate:     now.Add(48 * time.Hour),
			Tags:        []string{"planning"},
			Comments: []models.Comment{
				{ID: "c3", User: users[0], Content: "Sheet is shared, please double-check the PTO rows.", CreatedAt: now.Add(-3 * 24 * time.Hour)},
			},
			Attachments: []string{"q4-allocation.xlsx"},
		},
		{
			ID:          "t4",
			Title:       "Upgrade CI runners",
			Description: "Move the pipeline to the new runner pool before the old one is retired.",
			Status:      models.StatusDone,
			Priority:    models.PriorityMedium,
			Assignee:    users[3],
			CreatedBy:   users[1],
			CreatedAt:   now.Add(-10 * 24 * time.Hour),
			DueDate:     now.Add(-24 * time.Hour),
			Tags:        []string{"infra", "ci"},
			Comments:    []models.Comment{},
			Attachments: []string{},
		},
		{
			ID:          "t5",
			Title:       "Write onboarding runbook",
			Description: "One page covering local setup, seed data, and the release checklist.",
			Status:      models.StatusTodo,
			Priority:    models.PriorityLow,
			Assignee:    users[3],
			CreatedBy:   users[2],
			CreatedAt:   now.Add(-30 * time.Hour),
			DueDate:     now.Add(7 * 24 * time.Hour),
			Tags:        []string{"docs"},
			Comments:    []models.Comment{},
			Attachments: []string{},
		},
		{
			ID:          "t6",
			Title:       "Profile board render performance",
			Description: "Board feels sluggish past ~200 tasks. Find the hot path.",
			Status:      models.StatusInProgress,
			Priority:    models.PriorityHigh,
			Assignee:    users[4],
			CreatedBy:   users[0],
			CreatedAt:   now.Add(-26 * time.Hour),
			DueDate:     now.Add(3 * 24 * time.Hour),
			Tags:        []string{"performance"},
			Comments:    []models.Comment{},
			Attachments: []string{"flamegraph.svg", "profile.pb.gz"},
		},
	}

	// Newest first, matching the feed order the store maintains
	notifications := []models.Notification{
		{ID: "n1", Title: "Due soon", Message: "\"Fix login redirect loop\" is due tomorrow", Type: models.NotificationDeadline, CreatedAt: now.Add(-2 * time.Hour), TaskID: "t1"},
		{ID: "n2", Title: "You were mentioned", Message: "Sarah mentioned you in \"Quarterly capacity planning\"", Type: models.NotificationMention, CreatedAt: now.Add(-18 * time.Hour), TaskID: "t3"},
		{ID: "n3", Title: "New comment", Message: "Priya commented on \"Fix login redirect loop\"", Type: models.NotificationComment, CreatedAt: now.Add(-20 * time.Hour), TaskID: "t1"},
		{ID: "n4", Title: "Task completed", Message: "Tom moved \"Upgrade CI runners\" to Done", Type: models.NotificationTask, CreatedAt: now.Add(-24 * time.Hour), TaskID: "t4"},
		{ID: "n5", Title: "New task assigned", Message: "Marcus assigned \"Fix login redirect loop\" to Priya", Type: models.NotificationTask, CreatedAt: now.Add(-72 * time.Hour), TaskID: "t1", Read: true},
	}

	return store.Snapshot{
		Current:       users[0],
		Users:         users,
		Tasks:         tasks,
		Notifications: notifications,
	}
}
