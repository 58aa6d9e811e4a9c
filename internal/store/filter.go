package store

import (
	"iter"
	"strings"

	"github.com/taskdeck/taskdeck/internal/models"
)

// Criteria selects a subset of tasks. Every field is optional; the zero
// value matches everything. Nil status/priority and an empty assignee id
// mean "all", following the dropdown defaults.
type Criteria struct {
	Status   *models.Status
	Priority *models.Priority
	Assignee string // user id; "" matches every assignee
	Search   string // case-insensitive substring over title and description
}

// Active reports whether any criterion constrains the result.
func (c Criteria) Active() bool {
	return c.Status != nil || c.Priority != nil || c.Assignee != "" || strings.TrimSpace(c.Search) != ""
}

// Reset clears all four criteria at once.
func (c *Criteria) Reset() { *c = Criteria{} }

// Matches reports whether task satisfies every active criterion. Criteria
// combine conjunctively, so the evaluation order does not matter.
func (c Criteria) Matches(task models.Task) bool {
	if c.Status != nil && task.Status != *c.Status {
		return false
	}
	if c.Priority != nil && task.Priority != *c.Priority {
		return false
	}
	if c.Assignee != "" && task.Assignee.ID != c.Assignee {
		return false
	}
	if query := strings.ToLower(strings.TrimSpace(c.Search)); query != "" {
		if !strings.Contains(strings.ToLower(task.Title), query) &&
			!strings.Contains(strings.ToLower(task.Description), query) {
			return false
		}
	}
	return true
}

// Apply filters tasks lazily. The result is restartable and never mutates
// the underlying store; ranging over it again re-reads current contents.
func (c Criteria) Apply(tasks iter.Seq[models.Task]) iter.Seq[models.Task] {
	return func(yield func(models.Task) bool) {
		for task := range tasks {
			if !c.Matches(task) {
				continue
			}
			if !yield(task) {
				return
			}
		}
	}
}
