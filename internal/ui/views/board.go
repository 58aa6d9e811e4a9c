package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/ui/keys"
	"github.com/taskdeck/taskdeck/internal/ui/styles"
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

const dueDateLayout = "2006-01-02"

// BoardView shows the kanban board: one column per status, filtered by the
// active criteria. Moving a card between columns is the keyboard equivalent
// of drag-and-drop and resolves to a single Move call.
type BoardView struct {
	session *store.Session
	styles  *styles.Styles
	keys    keys.KeyMap

	width  int
	height int

	criteria store.Criteria
	col      int
	row      int

	searching   bool
	searchInput textinput.Model

	// New-task form
	creating     bool
	formTitle    textinput.Model
	formDesc     textarea.Model
	formDue      textinput.Model
	formTags     textinput.Model
	formAssignee int
	formPriority int
	formStatus   int
	formFocus    int // 0=title, 1=desc, 2=assignee, 3=priority, 4=status, 5=due, 6=tags, 7=create
	formErr      string

	// Task detail view
	viewingTask  bool
	editing      bool
	editTitle    textinput.Model
	editDesc     textarea.Model
	editStatus   int
	editPriority int
	editFocus    int // 0=title, 1=desc, 2=status, 3=priority, 4=save
	editErr      string

	commentInput   textarea.Model
	commentFocused bool

	// Delete confirmation
	confirmingDelete bool
	deleteTargetID   string
	deleteTargetName string

	// Transient message in the status line (e.g. permission denied)
	statusMsg string

	// Help popup (shown with ?)
	showHelpPopup bool
}

// NewBoardView creates the kanban board page
func NewBoardView(session *store.Session) *BoardView {
	search := textinput.New()
	search.Placeholder = "Search tasks..."
	search.CharLimit = 100

	formTitle := textinput.New()
	formTitle.Placeholder = "Task title"
	formTitle.CharLimit = 200

	formDesc := textarea.New()
	formDesc.Placeholder = "Description"
	formDesc.CharLimit = 1000
	formDesc.SetWidth(50)
	formDesc.SetHeight(3)
	formDesc.ShowLineNumbers = false

	formDue := textinput.New()
	formDue.Placeholder = dueDateLayout
	formDue.CharLimit = 10

	formTags := textinput.New()
	formTags.Placeholder = "Tags, comma separated"
	formTags.CharLimit = 200

	editTitle := textinput.New()
	editTitle.Placeholder = "Task title"
	editTitle.CharLimit = 200

	editDesc := textarea.New()
	editDesc.Placeholder = "Description"
	editDesc.CharLimit = 1000
	editDesc.SetWidth(50)
	editDesc.SetHeight(3)
	editDesc.ShowLineNumbers = false

	commentInput := textarea.New()
	commentInput.Placeholder = "Add a comment..."
	commentInput.CharLimit = 2000
	commentInput.SetWidth(50)
	commentInput.SetHeight(3)
	commentInput.ShowLineNumbers = false

	return &BoardView{
		session:      session,
		styles:       styles.NewStyles(),
		keys:         keys.DefaultKeyMap(),
		searchInput:  search,
		formTitle:    formTitle,
		formDesc:     formDesc,
		formDue:      formDue,
		formTags:     formTags,
		editTitle:    editTitle,
		editDesc:     editDesc,
		commentInput: commentInput,
	}
}

func (v *BoardView) Init() tea.Cmd { return nil }

// CapturingInput reports whether the view is in a mode where keystrokes must
// not be interpreted as app-level shortcuts.
func (v *BoardView) CapturingInput() bool {
	return v.searching || v.creating || v.viewingTask || v.confirmingDelete
}

// ShowSelected opens the detail view when the session has a selected task.
// Used after a notification click resolved to a task.
func (v *BoardView) ShowSelected() {
	if _, ok := v.session.Selected(); ok {
		v.viewingTask = true
		v.editing = false
		v.commentFocused = false
	}
}

// columns buckets the filtered tasks by status in board order.
func (v *BoardView) columns() [][]models.Task {
	cols := make([][]models.Task, len(models.AllStatuses))
	for task := range v.criteria.Apply(v.session.Tasks.All()) {
		cols[int(task.Status)] = append(cols[int(task.Status)], task)
	}
	return cols
}

// currentTask returns the task under the cursor.
func (v *BoardView) currentTask() (models.Task, bool) {
	col := v.columns()[v.col]
	if len(col) == 0 {
		return models.Task{}, false
	}
	row := clamp(v.row, 0, len(col)-1)
	return col[row], true
}

func (v *BoardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(v.width)
		inputWidth := clamp(contentWidth-10, 20, 50)
		v.formDesc.SetWidth(inputWidth)
		v.editDesc.SetWidth(inputWidth)
		v.commentInput.SetWidth(inputWidth)
		return v, nil

	case tea.KeyMsg:
		// Handle help popup first - any key closes it
		if v.showHelpPopup {
			v.showHelpPopup = false
			return v, nil
		}

		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}

		if v.creating {
			return v.updateCreating(msg)
		}

		if v.viewingTask {
			return v.updateViewingTask(msg)
		}

		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *BoardView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v.statusMsg = ""

	// Handle search input typing first - don't process hotkeys while typing
	if v.searching {
		switch {
		case key.Matches(msg, v.keys.Back):
			v.searching = false
			v.searchInput.Blur()
			return v, nil
		case key.Matches(msg, v.keys.Enter):
			v.searching = false
			v.searchInput.Blur()
			return v, nil
		default:
			var cmd tea.Cmd
			v.searchInput, cmd = v.searchInput.Update(msg)
			v.criteria.Search = v.searchInput.Value()
			v.row = 0
			return v, cmd
		}
	}

	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Search):
		v.searching = true
		v.searchInput.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Status):
		v.criteria.Status = cycleStatus(v.criteria.Status)
		v.row = 0
		return v, nil

	case key.Matches(msg, v.keys.Priority):
		v.criteria.Priority = cyclePriority(v.criteria.Priority)
		v.row = 0
		return v, nil

	case key.Matches(msg, v.keys.Assignee):
		v.criteria.Assignee = v.cycleAssignee(v.criteria.Assignee)
		v.row = 0
		return v, nil

	case key.Matches(msg, v.keys.Clear):
		v.criteria.Reset()
		v.searchInput.Reset()
		v.row = 0
		return v, nil

	case key.Matches(msg, v.keys.Left):
		if v.col > 0 {
			v.col--
			v.row = 0
		}
		return v, nil

	case key.Matches(msg, v.keys.Right):
		if v.col < len(models.AllStatuses)-1 {
			v.col++
			v.row = 0
		}
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.row > 0 {
			v.row--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.row < len(v.columns()[v.col])-1 {
			v.row++
		}
		return v, nil

	case key.Matches(msg, v.keys.MoveLeft):
		return v, v.moveCurrent(-1)

	case key.Matches(msg, v.keys.MoveRight):
		return v, v.moveCurrent(1)

	case key.Matches(msg, v.keys.Enter):
		if task, ok := v.currentTask(); ok {
			v.session.Select(task.ID)
			v.viewingTask = true
		}
		return v, nil

	case key.Matches(msg, v.keys.Edit):
		if task, ok := v.currentTask(); ok {
			if !auth.CanEdit(v.session.Current, task) {
				v.statusMsg = "You cannot edit this task"
				return v, nil
			}
			v.session.Select(task.ID)
			v.viewingTask = true
			v.startEdit(task)
			return v, textinput.Blink
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		v.startCreate()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Delete):
		if task, ok := v.currentTask(); ok {
			if !auth.CanDelete(v.session.Current, task) {
				v.statusMsg = "Only admins can delete tasks"
				return v, nil
			}
			v.confirmingDelete = true
			v.deleteTargetID = task.ID
			v.deleteTargetName = task.Title
		}
		return v, nil

	case msg.String() == "?":
		v.showHelpPopup = true
		return v, nil
	}

	return v, nil
}

// moveCurrent shifts the task under the cursor one column over. This is the
// drop adapter: it resolves to a single Move on the store.
func (v *BoardView) moveCurrent(dir int) tea.Cmd {
	task, ok := v.currentTask()
	if !ok {
		return nil
	}

	target := int(task.Status) + dir
	if target < 0 || target >= len(models.AllStatuses) {
		return nil
	}

	grant, err := auth.AuthorizeEdit(v.session.Current, task)
	if err != nil {
		v.statusMsg = "You cannot move this task"
		return nil
	}
	if _, err := v.session.Tasks.Move(grant, models.Status(target)); err != nil {
		v.statusMsg = err.Error()
	}
	return nil
}

func cycleStatus(cur *models.Status) *models.Status {
	if cur == nil {
		s := models.AllStatuses[0]
		return &s
	}
	if int(*cur) >= len(models.AllStatuses)-1 {
		return nil
	}
	s := *cur + 1
	return &s
}

func cyclePriority(cur *models.Priority) *models.Priority {
	if cur == nil {
		p := models.AllPriorities[0]
		return &p
	}
	if int(*cur) >= len(models.AllPriorities)-1 {
		return nil
	}
	p := *cur + 1
	return &p
}

func (v *BoardView) cycleAssignee(cur string) string {
	if len(v.session.Users) == 0 {
		return ""
	}
	if cur == "" {
		return v.session.Users[0].ID
	}
	for i, u := range v.session.Users {
		if u.ID == cur {
			if i == len(v.session.Users)-1 {
				return ""
			}
			return v.session.Users[i+1].ID
		}
	}
	return ""
}

func (v *BoardView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.confirmingDelete = false
		if task, ok := v.session.Tasks.Get(v.deleteTargetID); ok {
			if grant, err := auth.AuthorizeDelete(v.session.Current, task); err == nil {
				v.session.DeleteTask(grant)
				v.viewingTask = false
			} else {
				v.statusMsg = "Only admins can delete tasks"
			}
		}
		return v, nil
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

func (v *BoardView) startCreate() {
	// The assignee picker indexes into the roster
	if len(v.session.Users) == 0 {
		v.statusMsg = "No users to assign tasks to"
		return
	}
	v.creating = true
	v.formFocus = 0
	v.formErr = ""
	v.formTitle.Reset()
	v.formDesc.Reset()
	v.formDue.Reset()
	v.formTags.Reset()
	v.formAssignee = 0
	v.formPriority = int(models.PriorityMedium)
	v.formStatus = int(models.StatusTodo)
	v.updateFormFocus()
}

func (v *BoardView) updateCreating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.creating = false
		return v, nil

	case msg.String() == "ctrl+s":
		return v, v.submitCreate()

	case key.Matches(msg, v.keys.Tab):
		v.formFocus = (v.formFocus + 1) % 8
		v.updateFormFocus()
		return v, nil

	case msg.String() == "shift+tab":
		v.formFocus = (v.formFocus + 7) % 8
		v.updateFormFocus()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		// Enter on single-line inputs moves to the next field
		if v.formFocus == 0 || v.formFocus == 5 || v.formFocus == 6 {
			v.formFocus++
			v.updateFormFocus()
			return v, nil
		}
		if v.formFocus == 7 {
			return v, v.submitCreate()
		}
		// Selector fields ignore enter; textarea takes the newline

	case key.Matches(msg, v.keys.Left):
		switch v.formFocus {
		case 2:
			v.formAssignee = (v.formAssignee + len(v.session.Users) - 1) % len(v.session.Users)
			return v, nil
		case 3:
			v.formPriority = (v.formPriority + len(models.AllPriorities) - 1) % len(models.AllPriorities)
			return v, nil
		case 4:
			v.formStatus = (v.formStatus + len(models.AllStatuses) - 1) % len(models.AllStatuses)
			return v, nil
		}

	case key.Matches(msg, v.keys.Right):
		switch v.formFocus {
		case 2:
			v.formAssignee = (v.formAssignee + 1) % len(v.session.Users)
			return v, nil
		case 3:
			v.formPriority = (v.formPriority + 1) % len(models.AllPriorities)
			return v, nil
		case 4:
			v.formStatus = (v.formStatus + 1) % len(models.AllStatuses)
			return v, nil
		}
	}

	var cmd tea.Cmd
	switch v.formFocus {
	case 0:
		v.formTitle, cmd = v.formTitle.Update(msg)
	case 1:
		v.formDesc, cmd = v.formDesc.Update(msg)
	case 5:
		v.formDue, cmd = v.formDue.Update(msg)
	case 6:
		v.formTags, cmd = v.formTags.Update(msg)
	}
	return v, cmd
}

func (v *BoardView) updateFormFocus() {
	v.formTitle.Blur()
	v.formDesc.Blur()
	v.formDue.Blur()
	v.formTags.Blur()

	switch v.formFocus {
	case 0:
		v.formTitle.Focus()
	case 1:
		v.formDesc.Focus()
	case 5:
		v.formDue.Focus()
	case 6:
		v.formTags.Focus()
	}
}

func (v *BoardView) submitCreate() tea.Cmd {
	var due time.Time
	if raw := strings.TrimSpace(v.formDue.Value()); raw != "" {
		parsed, err := time.Parse(dueDateLayout, raw)
		if err != nil {
			v.formErr = "Due date must be " + dueDateLayout
			return nil
		}
		due = parsed
	}

	var tags []string
	if raw := strings.TrimSpace(v.formTags.Value()); raw != "" {
		tags = strings.Split(raw, ",")
	}

	req := store.CreateRequest{
		Title:       v.formTitle.Value(),
		Description: strings.TrimSpace(v.formDesc.Value()),
		Status:      models.AllStatuses[v.formStatus],
		Priority:    models.AllPriorities[v.formPriority],
		Assignee:    v.session.Users[v.formAssignee],
		DueDate:     due,
		Tags:        tags,
	}

	if _, err := v.session.CreateTask(req); err != nil {
		// Validation failures stay on the form for correction
		v.formErr = err.Error()
		return nil
	}

	v.creating = false
	v.formErr = ""
	return nil
}

// View renders the view
func (v *BoardView) View() string {
	if v.showHelpPopup {
		return v.renderHelpPopup()
	}

	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}

	if v.creating {
		return v.renderCreateForm()
	}

	if v.viewingTask {
		return v.renderTaskView()
	}

	var b strings.Builder
	b.WriteString(v.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(v.renderColumns())
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *BoardView) renderHeader() string {
	s := v.styles

	searchStyle := s.Input
	if v.searching {
		searchStyle = s.InputFocused
	}
	searchWidth := clamp(styles.ContentWidth(v.width)-60, 14, 30)
	searchBox := searchStyle.Width(searchWidth).Render(v.searchInput.View())

	statusLabel := "All"
	if v.criteria.Status != nil {
		statusLabel = v.criteria.Status.String()
	}
	priorityLabel := "All"
	if v.criteria.Priority != nil {
		priorityLabel = v.criteria.Priority.String()
	}
	assigneeLabel := "All"
	if v.criteria.Assignee != "" {
		if u, ok := v.session.UserByID(v.criteria.Assignee); ok {
			assigneeLabel = u.Name
		}
	}

	filters := s.TitleMuted.Render(fmt.Sprintf("Status: %s  Priority: %s  Assignee: %s", statusLabel, priorityLabel, assigneeLabel))
	if v.criteria.Active() {
		filters += s.HelpKey.Render("  x") + s.TitleMuted.Render(" clear")
	}

	title := s.Title.Render("Tasks")
	header := lipgloss.JoinHorizontal(lipgloss.Center, searchBox, "  ", filters)

	return lipgloss.JoinVertical(lipgloss.Left, title, header)
}

func (v *BoardView) renderColumns() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	colWidth := clamp(contentWidth/len(models.AllStatuses)-2, 18, 28)

	// Cards are 2 lines + 1 spacer; keep room for header and help
	availableHeight := v.height - 12
	if availableHeight < 3 {
		availableHeight = 3
	}
	visibleCards := max(availableHeight/3, 1)

	cols := v.columns()
	var rendered []string
	for i, status := range models.AllStatuses {
		colStyle := s.Column
		if i == v.col {
			colStyle = s.ColumnFocused
		}

		accent := lipgloss.NewStyle().Foreground(styles.StatusColor(status))
		header := accent.Bold(true).Render(status.String()) +
			s.ColumnCount.Render(fmt.Sprintf(" %d", len(cols[i])))

		items := []string{header, ""}
		end := min(visibleCards, len(cols[i]))
		for j := 0; j < end; j++ {
			items = append(items, v.renderCard(cols[i][j], colWidth-2, i == v.col && j == v.row))
		}
		if len(cols[i]) == 0 {
			items = append(items, s.TitleMuted.Render("empty"))
		} else if len(cols[i]) > visibleCards {
			items = append(items, s.TitleMuted.Render(fmt.Sprintf("+%d more", len(cols[i])-visibleCards)))
		}

		rendered = append(rendered, colStyle.Width(colWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left, items...),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (v *BoardView) renderCard(task models.Task, width int, selected bool) string {
	s := v.styles

	cardStyle := s.Card
	if selected {
		cardStyle = s.CardSelected
	}

	priority := lipgloss.NewStyle().Foreground(styles.PriorityColor(task.Priority)).Render("●")
	title := task.Title
	if maxLen := width - 4; maxLen > 3 && len(title) > maxLen {
		title = title[:maxLen-1] + "…"
	}

	meta := fmt.Sprintf("%s %s · %s", priority, task.Assignee.Avatar, task.DueDate.Format("Jan 2"))

	return cardStyle.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			s.TitleMuted.Render(meta),
		),
	) + "\n"
}

func (v *BoardView) renderCreateForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-10, 20, 50)

	fieldStyle := func(idx int) lipgloss.Style {
		if v.formFocus == idx {
			return s.InputFocused
		}
		return s.Input
	}
	selectorStyle := func(idx int) lipgloss.Style {
		if v.formFocus == idx {
			return s.ButtonFocused
		}
		return s.Button
	}

	btnStyle := s.Button
	if v.formFocus == 7 {
		btnStyle = s.ButtonFocused
	}

	rows := []string{
		s.Title.Render("New Task"),
		"",
		"Title:",
		fieldStyle(0).Width(inputWidth).Render(v.formTitle.View()),
		"",
		"Description:",
		fieldStyle(1).Width(inputWidth).Render(v.formDesc.View()),
		"",
		"Assignee: " + selectorStyle(2).Render("◀ "+v.session.Users[v.formAssignee].Name+" ▶"),
		"Priority: " + selectorStyle(3).Render("◀ "+models.AllPriorities[v.formPriority].String()+" ▶"),
		"Status:   " + selectorStyle(4).Render("◀ "+models.AllStatuses[v.formStatus].String()+" ▶"),
		"",
		"Due date:",
		fieldStyle(5).Width(inputWidth).Render(v.formDue.View()),
		"",
		"Tags:",
		fieldStyle(6).Width(inputWidth).Render(v.formTags.View()),
		"",
		btnStyle.Render(" Create "),
	}

	if v.formErr != "" {
		rows = append(rows, "", s.StatusErr.Render(v.formErr))
	}
	rows = append(rows, "", s.TitleMuted.Render("Tab: next • ←/→ choose • Ctrl+S: save • Esc: cancel"))

	form := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *BoardView) renderDeleteConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("Delete Task?"),
		"",
		s.TitleMuted.Render(fmt.Sprintf("%q will be removed for everyone.", v.deleteTargetName)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *BoardView) renderHelp() string {
	s := v.styles
	help := fmt.Sprintf("%s open • %s new • %s edit • %s del • %s/%s move • %s search • %s/%s/%s filter • %s help",
		s.HelpKey.Render("↵"),
		s.HelpKey.Render("n"),
		s.HelpKey.Render("e"),
		s.HelpKey.Render("d"),
		s.HelpKey.Render("H"),
		s.HelpKey.Render("L"),
		s.HelpKey.Render("/"),
		s.HelpKey.Render("s"),
		s.HelpKey.Render("p"),
		s.HelpKey.Render("a"),
		s.HelpKey.Render("?"),
	)
	if v.statusMsg != "" {
		return s.StatusErr.Render(v.statusMsg) + "\n" + s.Help.Render(help)
	}
	return s.Help.Render(help)
}

func (v *BoardView) renderHelpPopup() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	helpItems := []string{
		s.HelpKey.Render("↵") + "      open task",
		s.HelpKey.Render("n") + "      new task",
		s.HelpKey.Render("e") + "      edit task",
		s.HelpKey.Render("d") + "      delete task",
		s.HelpKey.Render("H/L") + "    move task between columns",
		s.HelpKey.Render("←/→") + "    switch column",
		s.HelpKey.Render("↑/↓") + "    move cursor",
		s.HelpKey.Render("/") + "      search",
		s.HelpKey.Render("s") + "      cycle status filter",
		s.HelpKey.Render("p") + "      cycle priority filter",
		s.HelpKey.Render("a") + "      cycle assignee filter",
		s.HelpKey.Render("x") + "      clear filters",
		s.HelpKey.Render("q") + "      quit",
		"",
		s.TitleMuted.Render("Press any key to close"),
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{s.Title.Render("Keyboard Shortcuts"), ""}, helpItems...)...,
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.Popup.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}
