package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/ui/styles"
)

// Detail mode: the selected task opened for inspection, with edit/delete
// gated by the policy and a comment composer.

func (v *BoardView) updateViewingTask(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	task, ok := v.session.Selected()
	if !ok {
		// Selection went stale (task deleted elsewhere); close the view
		v.viewingTask = false
		v.editing = false
		return v, nil
	}

	if v.commentFocused {
		switch {
		case key.Matches(msg, v.keys.Back):
			v.commentFocused = false
			v.commentInput.Blur()
			return v, nil
		case msg.String() == "ctrl+s":
			return v, v.submitComment(task.ID)
		default:
			var cmd tea.Cmd
			v.commentInput, cmd = v.commentInput.Update(msg)
			return v, cmd
		}
	}

	if v.editing {
		return v.updateEditing(msg, task)
	}

	switch {
	case key.Matches(msg, v.keys.Back):
		v.viewingTask = false
		v.session.ClearSelection()
		return v, nil

	case key.Matches(msg, v.keys.Edit):
		if !auth.CanEdit(v.session.Current, task) {
			v.statusMsg = "You cannot edit this task"
			return v, nil
		}
		v.startEdit(task)
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Delete):
		if !auth.CanDelete(v.session.Current, task) {
			v.statusMsg = "Only admins can delete tasks"
			return v, nil
		}
		v.confirmingDelete = true
		v.deleteTargetID = task.ID
		v.deleteTargetName = task.Title
		return v, nil

	case key.Matches(msg, v.keys.Comment):
		v.commentFocused = true
		v.commentInput.Focus()
		return v, textarea.Blink

	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit
	}

	return v, nil
}

func (v *BoardView) startEdit(task models.Task) {
	v.editing = true
	v.editFocus = 0
	v.editErr = ""
	v.editTitle.SetValue(task.Title)
	v.editDesc.SetValue(task.Description)
	v.editStatus = int(task.Status)
	v.editPriority = int(task.Priority)
	v.updateEditFocus()
}

func (v *BoardView) updateEditing(msg tea.KeyMsg, task models.Task) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.editing = false
		return v, nil

	case msg.String() == "ctrl+s":
		return v, v.saveEdit(task)

	case key.Matches(msg, v.keys.Tab):
		v.editFocus = (v.editFocus + 1) % 5
		v.updateEditFocus()
		return v, nil

	case msg.String() == "shift+tab":
		v.editFocus = (v.editFocus + 4) % 5
		v.updateEditFocus()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if v.editFocus == 0 {
			v.editFocus++
			v.updateEditFocus()
			return v, nil
		}
		if v.editFocus == 4 {
			return v, v.saveEdit(task)
		}

	case key.Matches(msg, v.keys.Left):
		switch v.editFocus {
		case 2:
			v.editStatus = (v.editStatus + len(models.AllStatuses) - 1) % len(models.AllStatuses)
			return v, nil
		case 3:
			v.editPriority = (v.editPriority + len(models.AllPriorities) - 1) % len(models.AllPriorities)
			return v, nil
		}

	case key.Matches(msg, v.keys.Right):
		switch v.editFocus {
		case 2:
			v.editStatus = (v.editStatus + 1) % len(models.AllStatuses)
			return v, nil
		case 3:
			v.editPriority = (v.editPriority + 1) % len(models.AllPriorities)
			return v, nil
		}
	}

	var cmd tea.Cmd
	switch v.editFocus {
	case 0:
		v.editTitle, cmd = v.editTitle.Update(msg)
	case 1:
		v.editDesc, cmd = v.editDesc.Update(msg)
	}
	return v, cmd
}

func (v *BoardView) updateEditFocus() {
	v.editTitle.Blur()
	v.editDesc.Blur()

	switch v.editFocus {
	case 0:
		v.editTitle.Focus()
	case 1:
		v.editDesc.Focus()
	}
}

func (v *BoardView) saveEdit(task models.Task) tea.Cmd {
	grant, err := auth.AuthorizeEdit(v.session.Current, task)
	if err != nil {
		v.editing = false
		v.statusMsg = "You cannot edit this task"
		return nil
	}

	title := strings.TrimSpace(v.editTitle.Value())
	desc := strings.TrimSpace(v.editDesc.Value())
	status := models.AllStatuses[v.editStatus]
	priority := models.AllPriorities[v.editPriority]

	_, err = v.session.Tasks.Update(grant, store.Patch{
		Title:       &title,
		Description: &desc,
		Status:      &status,
		Priority:    &priority,
	})
	if err != nil {
		v.editErr = err.Error()
		return nil
	}

	v.editing = false
	v.editErr = ""
	return nil
}

func (v *BoardView) submitComment(taskID string) tea.Cmd {
	content := strings.TrimSpace(v.commentInput.Value())
	if content == "" {
		return nil
	}

	if _, err := v.session.AddComment(taskID, content); err != nil {
		v.statusMsg = err.Error()
		return nil
	}

	v.commentInput.Reset()
	v.commentFocused = false
	v.commentInput.Blur()
	return nil
}

func (v *BoardView) renderTaskView() string {
	task, ok := v.session.Selected()
	if !ok {
		return v.styles.TitleMuted.Render("Task no longer exists")
	}

	if v.editing {
		return v.renderEditForm(task)
	}

	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	bodyWidth := clamp(contentWidth-8, 30, 70)

	statusBadge := lipgloss.NewStyle().
		Foreground(styles.Current.Background).
		Background(styles.StatusColor(task.Status)).
		Padding(0, 1).
		Render(task.Status.String())
	priorityBadge := lipgloss.NewStyle().
		Foreground(styles.PriorityColor(task.Priority)).
		Render("● " + task.Priority.String() + " Priority")

	var tags string
	for _, tag := range task.Tags {
		tags += s.Badge.Foreground(styles.Current.Accent).Render("#" + tag)
	}

	rows := []string{
		s.Title.Render(task.Title),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, statusBadge, "  ", priorityBadge),
	}
	if tags != "" {
		rows = append(rows, tags)
	}

	if task.Description != "" {
		rows = append(rows, "",
			s.ColumnHeader.Render("Description"),
			lipgloss.NewStyle().Width(bodyWidth).Render(task.Description),
		)
	}

	rows = append(rows, "",
		s.TitleMuted.Render("Assignee:   ")+task.Assignee.Name+s.TitleMuted.Render(" ("+task.Assignee.Role.String()+")"),
		s.TitleMuted.Render("Created by: ")+task.CreatedBy.Name,
		s.TitleMuted.Render("Due:        ")+task.DueDate.Format("January 2, 2006"),
		s.TitleMuted.Render("Created:    ")+task.CreatedAt.Format("January 2, 2006"),
	)

	if len(task.Attachments) > 0 {
		rows = append(rows, "", s.ColumnHeader.Render(fmt.Sprintf("Attachments (%d)", len(task.Attachments))))
		for _, file := range task.Attachments {
			rows = append(rows, s.TitleMuted.Render("📎 ")+file)
		}
	}

	if len(task.Comments) > 0 {
		rows = append(rows, "", s.ColumnHeader.Render(fmt.Sprintf("Comments (%d)", len(task.Comments))))
		for _, comment := range task.Comments {
			rows = append(rows,
				s.HelpKey.Render(comment.User.Name)+s.TitleMuted.Render(" · "+comment.CreatedAt.Format("Jan 2, 15:04")),
				lipgloss.NewStyle().Width(bodyWidth).Render(comment.Content),
				"",
			)
		}
	}

	if v.commentFocused {
		rows = append(rows, "", s.InputFocused.Render(v.commentInput.View()),
			s.TitleMuted.Render("Ctrl+S: post • Esc: cancel"))
	} else {
		var actions []string
		if auth.CanEdit(v.session.Current, task) {
			actions = append(actions, s.HelpKey.Render("e")+" edit")
		}
		if auth.CanDelete(v.session.Current, task) {
			actions = append(actions, s.HelpKey.Render("d")+" delete")
		}
		actions = append(actions, s.HelpKey.Render("c")+" comment", s.HelpKey.Render("esc")+" close")
		rows = append(rows, "", s.Help.Render(strings.Join(actions, " • ")))
	}

	if v.statusMsg != "" {
		rows = append(rows, s.StatusErr.Render(v.statusMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *BoardView) renderEditForm(task models.Task) string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-10, 20, 50)

	titleStyle := s.Input
	descStyle := s.Input
	statusStyle := s.Button
	priorityStyle := s.Button
	btnStyle := s.Button

	switch v.editFocus {
	case 0:
		titleStyle = s.InputFocused
	case 1:
		descStyle = s.InputFocused
	case 2:
		statusStyle = s.ButtonFocused
	case 3:
		priorityStyle = s.ButtonFocused
	case 4:
		btnStyle = s.ButtonFocused
	}

	rows := []string{
		s.Title.Render("Edit Task"),
		"",
		"Title:",
		titleStyle.Width(inputWidth).Render(v.editTitle.View()),
		"",
		"Description:",
		descStyle.Width(inputWidth).Render(v.editDesc.View()),
		"",
		"Status:   " + statusStyle.Render("◀ "+models.AllStatuses[v.editStatus].String()+" ▶"),
		"Priority: " + priorityStyle.Render("◀ "+models.AllPriorities[v.editPriority].String()+" ▶"),
		"",
		btnStyle.Render(" Save "),
	}

	if v.editErr != "" {
		rows = append(rows, "", s.StatusErr.Render(v.editErr))
	}
	rows = append(rows, "", s.TitleMuted.Render("Tab: next • ←/→ choose • Ctrl+S: save • Esc: cancel"))

	form := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}
