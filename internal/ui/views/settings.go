package views

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/ui/styles"
)

// SettingsView shows the current user's profile
type SettingsView struct {
	session *store.Session
	styles  *styles.Styles
	width   int
	height  int
}

// NewSettingsView creates the settings page
func NewSettingsView(session *store.Session) *SettingsView {
	return &SettingsView{
		session: session,
		styles:  styles.NewStyles(),
	}
}

func (v *SettingsView) Init() tea.Cmd { return nil }

func (v *SettingsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		v.width = size.Width
		v.height = size.Height
	}
	return v, nil
}

func (v *SettingsView) View() string {
	s := v.styles
	user := v.session.Current

	profile := s.Column.Width(clamp(styles.ContentWidth(v.width)-4, 30, 60)).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			s.ColumnHeader.Render("Profile"),
			"",
			"Name:  "+user.Name,
			"Email: "+user.Email,
			"Role:  "+s.Badge.Foreground(styles.Current.Secondary).Render(user.Role.String()),
		),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Settings"),
		s.TitleMuted.Render("Manage your account and preferences"),
		"",
		profile,
	)

	return styles.CenterView(content, v.width, v.height)
}
