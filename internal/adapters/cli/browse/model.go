// Package browse implements the interactive todo browser: a bubbletea program
// that lists todos from the todo service and lets the user narrow them by
// category and status, open one, or add a new one.
package browse

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

type mode int

const (
	modeList mode = iota
	modeCategory
	modeAdd
	modeDetail
)

// Add form fields, in tab order.
const (
	fieldOwner = iota
	fieldBody
	fieldCategory
	fieldCount
)

const (
	defaultWidth  = 80
	defaultHeight = 20
	chromeHeight  = 6
)

type todosLoadedMsg struct {
	filter todo.Filter
	todos  []todo.Todo
	err    error
}

type todoAddedMsg struct {
	id  string
	err error
}

type todoOpenedMsg struct {
	todo *todo.Todo
	err  error
}

// Model is the browser state. The current Filter is the only query state;
// every change replaces it with a new value and reloads.
type Model struct {
	ctx  context.Context
	svc  ports.TodoService
	keys keyMap

	filter todo.Filter
	todos  []todo.Todo

	mode     mode
	list     list.Model
	category textinput.Model
	form     [fieldCount]textinput.Model
	focus    int
	spinner  spinner.Model
	help     help.Model

	loading bool
	detail  *todo.Todo
	notice  string
	err     error
}

// New creates a browser that starts by listing todos matching filter.
func New(ctx context.Context, svc ports.TodoService, filter todo.Filter) Model {
	l := list.New(nil, list.NewDefaultDelegate(), defaultWidth, defaultHeight)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("todo", "todos")

	category := textinput.New()
	category.Prompt = "category> "
	category.Placeholder = "empty shows every category"
	category.CharLimit = 100

	var form [fieldCount]textinput.Model
	for i, label := range [fieldCount]string{"owner", "body", "category"} {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = label
		ti.CharLimit = 500
		form[i] = ti
	}

	return Model{
		ctx:      ctx,
		svc:      svc,
		keys:     newKeyMap(),
		filter:   filter,
		list:     l,
		category: category,
		form:     form,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(pendingStyle)),
		help:     help.New(),
		loading:  true,
	}
}

// Run starts the browser full screen and blocks until the user quits or ctx
// is canceled.
func Run(ctx context.Context, svc ports.TodoService, filter todo.Filter) error {
	p := tea.NewProgram(New(ctx, svc, filter), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}

// Filter returns the filter the browser is currently showing.
func (m Model) Filter() todo.Filter {
	return m.filter
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch(m.filter))
}

func (m Model) fetch(filter todo.Filter) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		todos, err := svc.ListTodos(ctx, filter)
		return todosLoadedMsg{filter: filter, todos: todos, err: err}
	}
}

func (m Model) add(t *todo.Todo) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		id, err := svc.AddNewTodo(ctx, t)
		return todoAddedMsg{id: id, err: err}
	}
}

func (m Model) open(id string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		t, err := svc.GetTodoByID(ctx, id)
		return todoOpenedMsg{todo: t, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(max(msg.Width-4, 10), max(msg.Height-chromeHeight, 3))
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case todosLoadedMsg:
		// A newer filter has been applied since this request was sent.
		if msg.filter.Encode() != m.filter.Encode() {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.todos = msg.todos
		cmd := m.list.SetItems(toItems(msg.todos))
		return m, cmd

	case todoAddedMsg:
		if msg.err != nil {
			m.loading = false
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.notice = "added " + msg.id
		return m, m.fetch(m.filter)

	case todoOpenedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.detail = msg.todo
		m.mode = modeDetail
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeCategory:
			return m.updateCategory(msg)
		case modeAdd:
			return m.updateAdd(msg)
		case modeDetail:
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg (cursor blinks and the like) to whichever
// component currently has focus.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeCategory:
		m.category, cmd = m.category.Update(msg)
	case modeAdd:
		m.form[m.focus], cmd = m.form[m.focus].Update(msg)
	case modeList:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Category):
		m.mode = modeCategory
		m.category.SetValue(m.filter.Category())
		m.category.CursorEnd()
		cmd := m.category.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Clear):
		return m.applyFilter(m.svc.FilterByCategory(m.filter, ""))

	case key.Matches(msg, m.keys.Status):
		return m.applyFilter(m.nextStatus())

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		for i := range m.form {
			m.form[i].SetValue("")
		}
		m.form[fieldCategory].SetValue(m.filter.Category())
		cmd := m.focusField(fieldOwner)
		return m, cmd

	case key.Matches(msg, m.keys.Open):
		item, ok := m.list.SelectedItem().(todoItem)
		if !ok {
			return m, nil
		}
		m.loading = true
		return m, m.open(item.todo.ID)

	case key.Matches(msg, m.keys.Reload):
		m.notice = ""
		m.loading = true
		return m, m.fetch(m.filter)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateCategory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeList
		m.category.Blur()
		return m.applyFilter(m.svc.FilterByCategory(m.filter, strings.TrimSpace(m.category.Value())))
	case "esc":
		m.mode = modeList
		m.category.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.category, cmd = m.category.Update(msg)
	return m, cmd
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.form[m.focus].Blur()
		return m, nil
	case "tab", "down":
		cmd := m.focusField((m.focus + 1) % fieldCount)
		return m, cmd
	case "shift+tab", "up":
		cmd := m.focusField((m.focus + fieldCount - 1) % fieldCount)
		return m, cmd
	case "enter":
		if m.focus < fieldCount-1 {
			cmd := m.focusField(m.focus + 1)
			return m, cmd
		}
		t := &todo.Todo{
			Owner:    strings.TrimSpace(m.form[fieldOwner].Value()),
			Body:     strings.TrimSpace(m.form[fieldBody].Value()),
			Category: strings.TrimSpace(m.form[fieldCategory].Value()),
		}
		m.form[m.focus].Blur()
		m.mode = modeList
		m.loading = true
		return m, m.add(t)
	}

	var cmd tea.Cmd
	m.form[m.focus], cmd = m.form[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q", "backspace":
		m.mode = modeList
		m.detail = nil
	}
	return m, nil
}

func (m *Model) focusField(i int) tea.Cmd {
	m.form[m.focus].Blur()
	m.focus = i
	return m.form[i].Focus()
}

func (m Model) applyFilter(f todo.Filter) (tea.Model, tea.Cmd) {
	m.filter = f
	m.notice = ""
	m.loading = true
	return m, m.fetch(f)
}

// nextStatus cycles the status filter: any, incomplete, complete, any. The
// category is re-applied so it stays the last query parameter.
func (m Model) nextStatus() todo.Filter {
	f := m.filter
	complete, ok := f.Status()
	switch {
	case !ok:
		f = f.WithStatus(false)
	case !complete:
		f = f.WithStatus(true)
	default:
		f = f.WithoutStatus()
	}
	return m.svc.FilterByCategory(f, m.filter.Category())
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")

	if m.mode == modeDetail && m.detail != nil {
		b.WriteString(detailView(m.detail))
	} else {
		b.WriteString(m.list.View())
	}

	switch m.mode {
	case modeCategory:
		b.WriteString("\n")
		b.WriteString(panelStyle.Render("Filter by category\n" + m.category.View()))
	case modeAdd:
		b.WriteString("\n")
		b.WriteString(m.formView())
	}

	b.WriteString("\n")
	b.WriteString(m.statusView())
	return b.String()
}

func (m Model) headerView() string {
	done, pending := counts(m.todos)
	return fmt.Sprintf("%s  %s   %s %d  %s %d",
		titleStyle.Render("Todos"),
		filterStyle.Render(filterLabel(m.filter)),
		successStyle.Render(boxChecked), done,
		pendingStyle.Render(boxUnchecked), pending,
	)
}

func (m Model) formView() string {
	labels := [fieldCount]string{"Owner", "Body", "Category"}
	lines := make([]string, 0, fieldCount+1)
	lines = append(lines, "New todo")
	for i := range m.form {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(labels[i]), m.form[i].View()))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) statusView() string {
	switch {
	case m.loading:
		return m.spinner.View() + " loading"
	case m.err != nil:
		return errorStyle.Render("error: " + m.err.Error())
	case m.notice != "":
		return successStyle.Render(m.notice)
	default:
		return m.help.ShortHelpView(m.keys.help())
	}
}

func detailView(t *todo.Todo) string {
	rows := [][2]string{
		{"ID", t.ID},
		{"Owner", t.Owner},
		{"Status", t.StatusLabel()},
		{"Category", t.Category},
		{"Body", t.Body},
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = labelStyle.Render(r[0]) + r[1]
	}
	return panelStyle.Render(strings.Join(lines, "\n")) + "\n" + mutedStyle.Render("esc back")
}

// filterLabel renders the filter the way it appears on the backend URL.
func filterLabel(f todo.Filter) string {
	if f.IsZero() {
		return "all todos"
	}
	return "?" + f.Encode()
}
