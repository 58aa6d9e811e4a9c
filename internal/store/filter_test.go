package store_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/store"
)

func filterFixture(t *testing.T) *store.TaskStore {
	t.Helper()
	s := store.NewTaskStore(nil)

	seed := []store.CreateRequest{
		{Title: "Fix login redirect", Description: "session expiry loop", Status: models.StatusInProgress, Priority: models.PriorityHigh, Assignee: assignee, CreatedBy: admin, DueDate: due},
		{Title: "Design empty states", Description: "board illustrations", Status: models.StatusTodo, Priority: models.PriorityMedium, Assignee: other, CreatedBy: admin, DueDate: due},
		{Title: "Capacity planning", Description: "Q4 allocation", Status: models.StatusReview, Priority: models.PriorityLow, Assignee: manager, CreatedBy: admin, DueDate: due},
		{Title: "Upgrade CI runners", Description: "move to new pool", Status: models.StatusDone, Priority: models.PriorityMedium, Assignee: assignee, CreatedBy: admin, DueDate: due},
	}
	for _, req := range seed {
		_, err := s.Create(req)
		require.NoError(t, err)
	}
	return s
}

func titles(seq func(yield func(models.Task) bool)) []string {
	var out []string
	for task := range seq {
		out = append(out, task.Title)
	}
	return out
}

func TestFilter_ZeroValueMatchesEverything(t *testing.T) {
	s := filterFixture(t)

	var c store.Criteria
	assert.False(t, c.Active())
	assert.Len(t, titles(c.Apply(s.All())), 4)
}

func TestFilter_Conjunction(t *testing.T) {
	s := filterFixture(t)

	status := models.StatusDone
	priority := models.PriorityMedium
	c := store.Criteria{Status: &status, Priority: &priority, Assignee: assignee.ID}

	assert.Equal(t, []string{"Upgrade CI runners"}, titles(c.Apply(s.All())))
}

func TestFilter_Commutative(t *testing.T) {
	s := filterFixture(t)

	status := models.StatusInProgress
	priority := models.PriorityHigh

	combined := store.Criteria{Status: &status, Priority: &priority, Assignee: assignee.ID}
	byStatus := store.Criteria{Status: &status}
	byPriority := store.Criteria{Priority: &priority}
	byAssignee := store.Criteria{Assignee: assignee.ID}

	want := titles(combined.Apply(s.All()))
	require.NotEmpty(t, want)

	// Chaining single-criterion filters in any order equals the conjunction
	orders := [][]store.Criteria{
		{byStatus, byPriority, byAssignee},
		{byPriority, byAssignee, byStatus},
		{byAssignee, byStatus, byPriority},
	}
	for _, chain := range orders {
		seq := s.All()
		for _, c := range chain {
			seq = c.Apply(seq)
		}
		assert.Equal(t, want, titles(seq))
	}
}

func TestFilter_SearchIsCaseInsensitive(t *testing.T) {
	s := filterFixture(t)

	c := store.Criteria{Search: "LOGIN"}
	assert.Equal(t, []string{"Fix login redirect"}, titles(c.Apply(s.All())))
}

func TestFilter_SearchMatchesDescription(t *testing.T) {
	s := filterFixture(t)

	// Search covers title and description
	c := store.Criteria{Search: "allocation"}
	assert.Equal(t, []string{"Capacity planning"}, titles(c.Apply(s.All())))
}

func TestFilter_Restartable(t *testing.T) {
	s := filterFixture(t)

	c := store.Criteria{Assignee: assignee.ID}
	seq := c.Apply(s.All())

	first := titles(seq)
	second := titles(seq)
	assert.Equal(t, first, second)
}

func TestFilter_ReflectsCurrentStoreState(t *testing.T) {
	s := filterFixture(t)

	done := models.StatusDone
	c := store.Criteria{Status: &done}
	seq := c.Apply(s.All())
	assert.Len(t, titles(seq), 1)

	req := validRequest()
	req.Title = "Ship release notes"
	req.Status = models.StatusDone
	_, err := s.Create(req)
	require.NoError(t, err)

	// Same sequence, re-ranged: sees the new task
	got := titles(seq)
	assert.Len(t, got, 2)
	assert.True(t, slices.Contains(got, "Ship release notes"))
}

func TestFilter_Reset(t *testing.T) {
	status := models.StatusTodo
	c := store.Criteria{Status: &status, Assignee: "u1", Search: "x"}
	require.True(t, c.Active())

	c.Reset()
	assert.False(t, c.Active())
	assert.Equal(t, store.Criteria{}, c)
}
