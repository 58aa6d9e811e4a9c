package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/settings"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/ui/styles"
	"github.com/taskdeck/taskdeck/internal/ui/views"
)

// Currently active page
type Page int

const (
	PageDashboard Page = iota
	PageBoard
	PageTeam
	PageSettings
)

func (p Page) String() string {
	switch p {
	case PageBoard:
		return "board"
	case PageTeam:
		return "team"
	case PageSettings:
		return "settings"
	}
	return "dashboard"
}

func pageFromString(s string) Page {
	switch s {
	case "board":
		return PageBoard
	case "team":
		return PageTeam
	case "settings":
		return PageSettings
	}
	return PageDashboard
}

type App struct {
	session  *store.Session
	settings *settings.Store
	styles   *styles.Styles

	page      Page
	dashboard *views.DashboardView
	board     *views.BoardView
	team      *views.TeamView
	profile   *views.SettingsView

	notifications *views.NotificationsView
	overlayOpen   bool

	width  int
	height int
}

// NewApp creates the application shell with every page wired to the one
// shared session.
func NewApp(session *store.Session, settingsStore *settings.Store) *App {
	return &App{
		session:       session,
		settings:      settingsStore,
		styles:        styles.NewStyles(),
		page:          PageDashboard,
		dashboard:     views.NewDashboardView(session),
		board:         views.NewBoardView(session),
		team:          views.NewTeamView(session),
		profile:       views.NewSettingsView(session),
		notifications: views.NewNotificationsView(session),
	}
}

func (a *App) Init() tea.Cmd {
	// Restore the last opened page
	if last, err := a.settings.Get(settings.KeyLastPage); err == nil && last != "" {
		a.page = pageFromString(last)
	}
	return nil
}

func (a *App) openPage(page Page) {
	a.page = page
	a.settings.Set(settings.KeyLastPage, page.String())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Reserve a line for the tab bar
		inner := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 2}
		a.dashboard.Update(inner)
		a.board.Update(inner)
		a.team.Update(inner)
		a.profile.Update(inner)
		a.notifications.Update(inner)
		return a, nil

	case views.OpenedTask:
		a.overlayOpen = false
		a.openPage(PageBoard)
		a.board.ShowSelected()
		return a, nil

	case views.CloseOverlay:
		a.overlayOpen = false
		return a, nil

	case tea.KeyMsg:
		if a.overlayOpen {
			_, cmd := a.notifications.Update(msg)
			return a, cmd
		}

		// Page shortcuts, unless a view is capturing text input
		if a.page != PageBoard || !a.board.CapturingInput() {
			switch msg.String() {
			case "1":
				a.openPage(PageDashboard)
				return a, nil
			case "2":
				a.openPage(PageBoard)
				return a, nil
			case "3":
				a.openPage(PageTeam)
				return a, nil
			case "4":
				a.openPage(PageSettings)
				return a, nil
			case "N":
				a.overlayOpen = true
				return a, nil
			case "q", "ctrl+c":
				if a.page != PageBoard {
					return a, tea.Quit
				}
			}
		}
	}

	var cmd tea.Cmd
	switch a.page {
	case PageDashboard:
		_, cmd = a.dashboard.Update(msg)
	case PageBoard:
		_, cmd = a.board.Update(msg)
	case PageTeam:
		_, cmd = a.team.Update(msg)
	case PageSettings:
		_, cmd = a.profile.Update(msg)
	}

	return a, cmd
}

func (a *App) renderTabBar() string {
	s := a.styles

	tabs := []struct {
		key   string
		label string
		page  Page
	}{
		{"1", "Dashboard", PageDashboard},
		{"2", "Tasks", PageBoard},
		{"3", "Team", PageTeam},
		{"4", "Settings", PageSettings},
	}

	var items []string
	for _, tab := range tabs {
		label := s.HelpKey.Render(tab.key) + " " + tab.label
		if tab.page == a.page {
			label = s.Title.Render(tab.key + " " + tab.label)
		}
		items = append(items, label)
	}

	bell := s.HelpKey.Render("N") + " 🔔"
	if unread := a.session.Notifications.UnreadCount(); unread > 0 {
		bell += lipgloss.NewStyle().Foreground(styles.Current.Error).Bold(true).Render(fmt.Sprintf(" %d", unread))
	}
	items = append(items, bell)

	bar := ""
	for i, item := range items {
		if i > 0 {
			bar += s.TitleMuted.Render("  │  ")
		}
		bar += item
	}
	return s.TitleBar.Render(bar)
}

func (a *App) View() string {
	if a.overlayOpen {
		return a.notifications.View()
	}

	var body string
	switch a.page {
	case PageBoard:
		body = a.board.View()
	case PageTeam:
		body = a.team.View()
	case PageSettings:
		body = a.profile.View()
	default:
		body = a.dashboard.View()
	}

	return a.renderTabBar() + "\n" + body
}
