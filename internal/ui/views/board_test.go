package views_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/ui/views"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewTaskForm_EmptyRoster(t *testing.T) {
	session := store.NewSession(store.Snapshot{
		Current: models.User{ID: "u1", Name: "Ada", Role: models.RoleAdmin},
	})
	v := views.NewBoardView(session)
	v.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	// With nobody to assign to, the form must refuse to open instead of
	// indexing into an empty roster
	v.Update(keyRune('n'))
	assert.False(t, v.CapturingInput())
	assert.NotPanics(t, func() { v.View() })
}

func TestNewTaskForm_OpensWithRoster(t *testing.T) {
	session := store.NewSession(store.Snapshot{
		Current: models.User{ID: "u1", Name: "Ada", Role: models.RoleAdmin},
		Users:   []models.User{{ID: "u1", Name: "Ada", Role: models.RoleAdmin}},
	})
	v := views.NewBoardView(session)
	v.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	v.Update(keyRune('n'))
	assert.True(t, v.CapturingInput())
	assert.NotPanics(t, func() { v.View() })
}
