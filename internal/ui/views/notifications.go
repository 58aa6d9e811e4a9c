package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/ui/keys"
	"github.com/taskdeck/taskdeck/internal/ui/styles"
)

// OpenedTask signals that a notification resolved to a task and it is now
// selected; the app should switch to the board's detail view.
type OpenedTask struct{}

// CloseOverlay signals that the notification overlay should close.
type CloseOverlay struct{}

// NotificationsView is the activity feed overlay
type NotificationsView struct {
	session *store.Session
	styles  *styles.Styles
	keys    keys.KeyMap
	cursor  int
	width   int
	height  int
}

// NewNotificationsView creates the feed overlay
func NewNotificationsView(session *store.Session) *NotificationsView {
	return &NotificationsView{
		session: session,
		styles:  styles.NewStyles(),
		keys:    keys.DefaultKeyMap(),
	}
}

func (v *NotificationsView) Init() tea.Cmd { return nil }

func (v *NotificationsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		feed := v.session.Notifications.All()

		switch {
		case key.Matches(msg, v.keys.Back):
			return v, func() tea.Msg { return CloseOverlay{} }

		case key.Matches(msg, v.keys.Up):
			if v.cursor > 0 {
				v.cursor--
			}
			return v, nil

		case key.Matches(msg, v.keys.Down):
			if v.cursor < len(feed)-1 {
				v.cursor++
			}
			return v, nil

		case key.Matches(msg, v.keys.Enter):
			if v.cursor < len(feed) {
				// Mark read either way; navigate only when the task
				// still exists.
				if _, ok := v.session.OpenNotification(feed[v.cursor].ID); ok {
					return v, func() tea.Msg { return OpenedTask{} }
				}
			}
			return v, nil

		case msg.String() == "r":
			v.session.Notifications.MarkAllRead()
			return v, nil
		}
	}

	return v, nil
}

func notificationIcon(t models.NotificationType) string {
	switch t {
	case models.NotificationTask:
		return "✔"
	case models.NotificationComment:
		return "💬"
	case models.NotificationMention:
		return "@"
	case models.NotificationDeadline:
		return "⏰"
	}
	return "•"
}

func (v *NotificationsView) View() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	feed := v.session.Notifications.All()

	header := s.Title.Render("Notifications")
	if unread := v.session.Notifications.UnreadCount(); unread > 0 {
		header += s.TitleMuted.Render(fmt.Sprintf("  %d unread", unread))
	}

	var items []string
	if len(feed) == 0 {
		items = append(items, s.TitleMuted.Render("No notifications"))
	}
	for i, n := range feed {
		itemStyle := s.ListItem
		if i == v.cursor {
			itemStyle = s.ListSelected
		}

		dot := "  "
		if !n.Read {
			dot = lipgloss.NewStyle().Foreground(styles.Current.Primary).Render("● ")
		}

		title := n.Title
		if !n.Read {
			title = lipgloss.NewStyle().Bold(true).Render(title)
		}

		line := fmt.Sprintf("%s%s %s", dot, notificationIcon(n.Type), title)
		items = append(items,
			itemStyle.Width(clamp(contentWidth-8, 30, 70)).Render(line),
			s.TitleMuted.PaddingLeft(6).Render(n.Message),
		)
	}

	help := s.Help.Render(
		fmt.Sprintf("%s open • %s mark all read • %s close",
			s.HelpKey.Render("↵"),
			s.HelpKey.Render("r"),
			s.HelpKey.Render("esc"),
		),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{header, ""}, append(items, help)...)...,
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.Popup.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}
