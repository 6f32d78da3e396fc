package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/fitbook/internal/booking"
	"github.com/inovacc/fitbook/internal/catalog"
	"github.com/inovacc/fitbook/internal/filter"
	"github.com/inovacc/fitbook/internal/model"
)

type classesState int

const (
	classesLoading classesState = iota
	classesReady
	classesFailed
)

type catalogLoadedMsg struct {
	records []model.ClassRecord
	err     error
}

type bookingSettledMsg struct {
	attempt booking.Attempt
	outcome booking.Outcome
}

// ClassesModel is the class list screen.
type ClassesModel struct {
	deps      Deps
	state     classesState
	spinner   spinner.Model
	search    textinput.Model
	list      list.Model
	picker    *instructorPicker
	machine   *booking.Machine
	records   []model.ClassRecord
	selection filter.Selection
	err       error
	width     int
	height    int
}

func NewClassesModel(deps Deps) ClassesModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	ti := textinput.New()
	ti.Placeholder = "Search class, instructor or center"
	ti.Prompt = "⌕ "
	ti.CharLimit = 64
	ti.Width = 40

	l := list.New(nil, cardDelegate{}, 72, 18)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return ClassesModel{
		deps:    deps,
		state:   classesLoading,
		spinner: s,
		search:  ti,
		list:    l,
		width:   76,
	}
}

func (m ClassesModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCatalog)
}

func (m ClassesModel) loadCatalog() tea.Msg {
	if m.deps.Catalog == nil {
		return catalogLoadedMsg{records: catalog.Default()}
	}

	records, err := m.deps.Catalog.Load(context.Background())

	return catalogLoadedMsg{records: records, err: err}
}

// Capturing reports whether keys are going to a text field or modal.
func (m ClassesModel) Capturing() bool {
	return m.search.Focused() || m.picker != nil
}

// Machine exposes the booking state once the catalog has loaded.
func (m ClassesModel) Machine() *booking.Machine {
	return m.machine
}

func (m ClassesModel) Update(msg tea.Msg) (ClassesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()

		return m, nil

	case spinner.TickMsg:
		if m.state != classesLoading {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case catalogLoadedMsg:
		return m.loaded(msg), nil

	case bookingSettledMsg:
		return m.settled(msg)

	case highlightExpiredMsg:
		if m.machine != nil {
			m.machine.ClearHighlight(msg.classID)
		}

		return m, nil

	case pickedMsg:
		m.picker = nil

		if msg.ok {
			m.selection = m.selection.WithInstructor(msg.instructor)
			m.refresh()
		}

		return m, nil

	case tea.KeyMsg:
		if m.state != classesReady {
			return m, nil
		}

		return m.handleKey(msg)
	}

	return m, nil
}

func (m ClassesModel) loaded(msg catalogLoadedMsg) ClassesModel {
	if msg.err != nil {
		m.state = classesFailed
		m.err = msg.err
		m.deps.logger().Error("catalog load failed", "error", msg.err)

		return m
	}

	m.records = msg.records
	m.machine = booking.NewMachine(msg.records, m.deps.Booker, m.deps.notifier(),
		booking.WithManualHighlight(),
		booking.WithHighlightWindow(m.deps.HighlightWindow),
		booking.WithLogger(m.deps.logger()),
	)
	m.list.SetDelegate(cardDelegate{machine: m.machine})
	m.state = classesReady
	m.refresh()
	m.resize()

	m.deps.logger().Debug("catalog loaded", "classes", len(msg.records))

	return m
}

func (m ClassesModel) handleKey(msg tea.KeyMsg) (ClassesModel, tea.Cmd) {
	if m.picker != nil {
		p, cmd := m.picker.Update(msg)
		m.picker = &p

		return m, cmd
	}

	if m.search.Focused() {
		switch msg.String() {
		case "esc", "enter", "tab":
			m.search.Blur()

			return m, nil
		}

		var cmd tea.Cmd

		m.search, cmd = m.search.Update(msg)
		m.selection = m.selection.WithSearch(m.search.Value())
		m.refresh()

		return m, cmd
	}

	switch msg.String() {
	case "/":
		m.search.Focus()

		return m, textinput.Blink

	case "1", "2", "3":
		levels := model.Levels()
		m.selection = m.selection.ToggleLevel(levels[int(msg.Runes[0]-'1')])
		m.refresh()

		return m, nil

	case "i":
		current := ""
		if m.selection.Instructor != nil {
			current = *m.selection.Instructor
		}

		p := newInstructorPicker(catalog.Instructors(m.records), current)
		m.picker = &p

		return m, nil

	case "c":
		m.selection = m.selection.Clear()
		m.search.SetValue("")
		m.refresh()

		return m, nil

	case "enter", " ":
		i, ok := m.list.SelectedItem().(classItem)
		if !ok {
			return m, nil
		}

		return m.quickBook(i.class.ID)
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

// quickBook applies the optimistic write now and runs the booking call in a
// command.
func (m ClassesModel) quickBook(id string) (ClassesModel, tea.Cmd) {
	a, err := m.machine.Begin(id)
	if err != nil {
		if !errors.Is(err, booking.ErrAlreadyBooked) && !errors.Is(err, booking.ErrInFlight) {
			m.deps.logger().Warn("quick book rejected", "class_id", id, "error", err)
		}

		return m, nil
	}

	machine := m.machine

	return m, func() tea.Msg {
		return bookingSettledMsg{attempt: a, outcome: machine.Await(context.Background(), a)}
	}
}

func (m ClassesModel) settled(msg bookingSettledMsg) (ClassesModel, tea.Cmd) {
	if m.machine == nil || !m.machine.Settle(context.Background(), msg.attempt, msg.outcome) {
		return m, nil
	}

	cmds := []tea.Cmd{expireToast(m.deps.Toast)}

	if id, ok := m.machine.Highlighted(); ok && id == msg.attempt.ClassID {
		cmds = append(cmds, expireHighlight(id, m.deps.HighlightWindow))
	}

	return m, tea.Batch(cmds...)
}

// refresh re-derives the visible list from the machine's records.
func (m *ClassesModel) refresh() {
	if m.machine == nil {
		return
	}

	visible := m.selection.Apply(m.machine.Snapshot())

	items := make([]list.Item, len(visible))
	for i, c := range visible {
		items[i] = classItem{class: c}
	}

	m.list.SetItems(items)
}

func (m *ClassesModel) resize() {
	h, v := docStyle.GetFrameSize()

	height := m.height - v - lipgloss.Height(m.header()) - 2
	if height < 8 {
		height = 8
	}

	m.list.SetSize(m.width-h, height)
}

func (m ClassesModel) header() string {
	box := searchStyle
	if m.search.Focused() {
		box = focusStyle
	}

	chips := make([]string, 0, 4)

	for i, l := range model.Levels() {
		style := chipStyle
		if m.selection.Level != nil && *m.selection.Level == l {
			style = selectedChipStyle
		}

		chips = append(chips, style.Render(fmt.Sprintf("%d %s", i+1, l)))
	}

	instructor := chipStyle
	if m.selection.Instructor != nil {
		instructor = selectedChipStyle
	}

	chips = append(chips, instructor.Render("i "+m.selection.InstructorLabel()))

	return lipgloss.JoinVertical(lipgloss.Left,
		box.Render(m.search.View()),
		lipgloss.JoinHorizontal(lipgloss.Top, chips...),
	)
}

func (m ClassesModel) View() string {
	switch m.state {
	case classesLoading:
		return fmt.Sprintf("\n %s Loading classes...\n", m.spinner.View())

	case classesFailed:
		return "\n " + errorStyle.Render("Could not load classes: "+m.err.Error()) + "\n"
	}

	if m.picker != nil {
		return m.picker.View()
	}

	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n")

	if len(m.list.Items()) == 0 {
		b.WriteString(emptyTitleStyle.Render("No classes match"))
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render("Try removing filters or broadening your search."))
		b.WriteString("\n")
		b.WriteString(linkStyle.Render("press c to clear filters"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteString("\n")
	}

	help := "↑/↓ move • enter quick book • / search • 1-3 level • i instructor • c clear • tab profile • q quit"
	if m.search.Focused() {
		help = "type to search • enter/esc done"
	}

	b.WriteString(helpStyle.Render(help))

	return b.String()
}
