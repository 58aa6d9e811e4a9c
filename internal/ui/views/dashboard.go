package views

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/ui/styles"
)

// DashboardView shows task counts per status and the most recent tasks
type DashboardView struct {
	session *store.Session
	styles  *styles.Styles
	width   int
	height  int
}

// NewDashboardView creates the dashboard page
func NewDashboardView(session *store.Session) *DashboardView {
	return &DashboardView{
		session: session,
		styles:  styles.NewStyles(),
	}
}

func (v *DashboardView) Init() tea.Cmd { return nil }

func (v *DashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		v.width = size.Width
		v.height = size.Height
	}
	return v, nil
}

func (v *DashboardView) View() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	stats := []struct {
		label string
		value int
		color lipgloss.Color
	}{
		{"Total Tasks", v.session.Tasks.Len(), styles.Current.Primary},
		{"In Progress", v.session.Tasks.CountByStatus(models.StatusInProgress), styles.Current.StatusInProgress},
		{"In Review", v.session.Tasks.CountByStatus(models.StatusReview), styles.Current.StatusReview},
		{"Completed", v.session.Tasks.CountByStatus(models.StatusDone), styles.Current.StatusDone},
	}

	cardWidth := clamp(contentWidth/4-3, 14, 24)
	var cards []string
	for _, stat := range stats {
		value := lipgloss.NewStyle().Foreground(stat.color).Bold(true).Render(fmt.Sprintf("%d", stat.value))
		card := s.Column.Width(cardWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				s.TitleMuted.Render(stat.label),
				value,
			),
		)
		cards = append(cards, card)
	}

	// Five most recent tasks, newest first
	var recent []string
	count := 0
	for task := range v.session.Tasks.All() {
		if count >= 5 {
			break
		}
		statusBadge := lipgloss.NewStyle().Foreground(styles.StatusColor(task.Status)).Render(task.Status.String())
		recent = append(recent, lipgloss.JoinHorizontal(lipgloss.Center,
			s.ListItem.Width(clamp(contentWidth-24, 20, 70)).Render(task.Title),
			s.TitleMuted.Render("→ "+task.Assignee.Name+"  "),
			statusBadge,
		))
		count++
	}
	if len(recent) == 0 {
		recent = append(recent, s.TitleMuted.Render("No tasks yet"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Dashboard"),
		s.TitleMuted.Render("Overview of your tasks and progress"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		s.ColumnHeader.Render("Recent Activity"),
		lipgloss.JoinVertical(lipgloss.Left, recent...),
	)

	return styles.CenterView(content, v.width, v.height)
}
