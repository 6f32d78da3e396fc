package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	pickerTitleStyle        = lipgloss.NewStyle().MarginLeft(2).Bold(true)
	pickerItemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	pickerSelectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle         = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
)

// allInstructors is the picker row that clears the instructor filter.
const allInstructors = "All instructors"

type pickerItem struct {
	title string
	// value is empty for the "All instructors" row
	value string
}

func (i pickerItem) FilterValue() string { return i.title }

type pickerDelegate struct{}

func (d pickerDelegate) Height() int                             { return 1 }
func (d pickerDelegate) Spacing() int                            { return 0 }
func (d pickerDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d pickerDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(pickerItem)
	if !ok {
		return
	}

	fn := pickerItemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return pickerSelectedItemStyle.Render("> " + s[0])
		}
	}

	_, _ = fmt.Fprint(w, fn(i.title))
}

// instructorPicker is the modal for choosing an instructor filter.
type instructorPicker struct {
	list list.Model
}

// pickedMsg is emitted when the picker closes. ok is false on cancel.
type pickedMsg struct {
	instructor string
	ok         bool
}

func newInstructorPicker(instructors []string, current string) instructorPicker {
	items := make([]list.Item, 0, len(instructors)+1)
	items = append(items, pickerItem{title: allInstructors})

	selected := 0

	for i, name := range instructors {
		items = append(items, pickerItem{title: name, value: name})

		if name == current {
			selected = i + 1
		}
	}

	l := list.New(items, pickerDelegate{}, 30, len(items)+4)
	l.Title = "Choose instructor"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = pickerTitleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Select(selected)

	return instructorPicker{list: l}
}

func (p instructorPicker) Update(msg tea.Msg) (instructorPicker, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q":
			return p, func() tea.Msg { return pickedMsg{} }

		case "enter":
			i, ok := p.list.SelectedItem().(pickerItem)
			if !ok {
				return p, func() tea.Msg { return pickedMsg{} }
			}

			return p, func() tea.Msg { return pickedMsg{instructor: i.value, ok: true} }
		}
	}

	var cmd tea.Cmd

	p.list, cmd = p.list.Update(msg)

	return p, cmd
}

func (p instructorPicker) View() string {
	return p.list.View() + "\n" + helpStyle.Render("enter select • esc close")
}
