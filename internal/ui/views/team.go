package views

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/ui/styles"
)

// TeamView shows the roster with per-member task counts
type TeamView struct {
	session *store.Session
	styles  *styles.Styles
	width   int
	height  int
}

// NewTeamView creates the team page
func NewTeamView(session *store.Session) *TeamView {
	return &TeamView{
		session: session,
		styles:  styles.NewStyles(),
	}
}

func (v *TeamView) Init() tea.Cmd { return nil }

func (v *TeamView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		v.width = size.Width
		v.height = size.Height
	}
	return v, nil
}

func (v *TeamView) View() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	cardWidth := clamp(contentWidth/3-3, 22, 34)

	var cards []string
	for _, user := range v.session.Users {
		assigned := 0
		done := 0
		for task := range v.session.Tasks.All() {
			if task.Assignee.ID != user.ID {
				continue
			}
			assigned++
			if task.Status == models.StatusDone {
				done++
			}
		}

		role := s.Badge.Foreground(styles.Current.Secondary).Render(user.Role.String())
		doneStyle := lipgloss.NewStyle().Foreground(styles.Current.StatusDone)
		card := s.Column.Width(cardWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				s.ColumnHeader.Render(user.Name)+" "+role,
				s.TitleMuted.Render(user.Email),
				"",
				fmt.Sprintf("%d tasks  %s", assigned, doneStyle.Render(fmt.Sprintf("%d done", done))),
			),
		)
		cards = append(cards, card)
	}

	// Three cards per row
	var rows []string
	for i := 0; i < len(cards); i += 3 {
		end := min(i+3, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{
			s.Title.Render("Team"),
			s.TitleMuted.Render("View and manage team members"),
			"",
		}, rows...)...,
	)

	return styles.CenterView(content, v.width, v.height)
}
