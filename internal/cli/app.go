package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab is a top-level destination.
type Tab int

const (
	TabClasses Tab = iota
	TabProfile
)

func (t Tab) String() string {
	if t == TabProfile {
		return "Profile"
	}

	return "Classes"
}

// AppModel hosts the two destinations. They share nothing but Deps.
type AppModel struct {
	deps     Deps
	tab      Tab
	classes  ClassesModel
	profile  ProfileModel
	quitting bool
}

func NewApp(deps Deps) AppModel {
	return AppModel{
		deps:    deps,
		tab:     TabClasses,
		classes: NewClassesModel(deps),
		profile: NewProfileModel(deps),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.classes.Init(), m.profile.Init())
}

// Tab returns the active destination.
func (m AppModel) Tab() Tab {
	return m.tab
}

func (m AppModel) capturing() bool {
	if m.tab == TabProfile {
		return m.profile.Capturing()
	}

	return m.classes.Capturing()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true

			return m, tea.Quit
		}

		if !m.capturing() {
			switch msg.String() {
			case "q":
				m.quitting = true

				return m, tea.Quit

			case "tab", "shift+tab":
				m.tab = 1 - m.tab

				return m, nil
			}
		}

		var cmd tea.Cmd

		if m.tab == TabProfile {
			m.profile, cmd = m.profile.Update(msg)
		} else {
			m.classes, cmd = m.classes.Update(msg)
		}

		return m, cmd

	case tea.WindowSizeMsg:
		inner := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - lipgloss.Height(m.tabs()) - 1}
		m.classes, _ = m.classes.Update(inner)

		return m, nil

	case toastExpiredMsg:
		if m.deps.Toast != nil {
			m.deps.Toast.Dismiss(msg.seq)
		}

		return m, nil
	}

	var c1, c2 tea.Cmd

	m.classes, c1 = m.classes.Update(msg)
	m.profile, c2 = m.profile.Update(msg)

	return m, tea.Batch(c1, c2)
}

func (m AppModel) tabs() string {
	out := make([]string, 0, 2)

	for _, t := range []Tab{TabClasses, TabProfile} {
		style := tabStyle
		if t == m.tab {
			style = activeTabStyle
		}

		out = append(out, style.Render(t.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.tabs())
	b.WriteString("\n\n")

	if m.tab == TabProfile {
		b.WriteString(m.profile.View())
	} else {
		b.WriteString(m.classes.View())
	}

	if t := toastView(m.deps.Toast); t != "" {
		b.WriteString("\n")
		b.WriteString(t)
	}

	return docStyle.Render(b.String())
}
