package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/fitbook/internal/model"
	"github.com/inovacc/fitbook/internal/notify"
	"github.com/inovacc/fitbook/internal/profile"
)

var (
	profileNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	profileLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Width(16)

	profileAvatarStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("231")).
				Background(primary).
				Bold(true).
				Padding(1, 3)
)

// Toast texts for the profile screen.
const (
	ProfileSavedTitle   = "Profile saved"
	ProfileSavedBody    = "Your name was updated."
	InvalidNameTitle    = "Invalid name"
	InvalidNamePrompt   = "Please enter a valid name."
	profileMemberFormat = "Jan 2, 2006"
)

type profileState int

const (
	profileLoading profileState = iota
	profileViewing
	profileEditing
)

type profileLoadedMsg struct {
	name string
	ok   bool
}

type profileSavedMsg struct {
	name string
	err  error
}

// ProfileModel is the profile screen: display name plus static account info.
type ProfileModel struct {
	deps    Deps
	state   profileState
	spinner spinner.Model
	input   textinput.Model
	name    string
	stored  bool
	invalid bool
	account model.Account
}

func NewProfileModel(deps Deps) ProfileModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	ti := textinput.New()
	ti.Placeholder = "Your name"
	ti.CharLimit = 48
	ti.Width = 32

	return ProfileModel{
		deps:    deps,
		state:   profileLoading,
		spinner: s,
		input:   ti,
		name:    profile.DefaultName,
		account: model.DemoAccount(),
	}
}

func (m ProfileModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadName)
}

func (m ProfileModel) loadName() tea.Msg {
	if m.deps.Profile == nil {
		return profileLoadedMsg{}
	}

	name, ok := m.deps.Profile.LoadName(context.Background())

	return profileLoadedMsg{name: name, ok: ok}
}

func (m ProfileModel) saveName(value string) tea.Cmd {
	svc := m.deps.Profile

	return func() tea.Msg {
		if svc == nil {
			name, err := profile.Normalize(value)

			return profileSavedMsg{name: name, err: err}
		}

		name, err := svc.SaveName(context.Background(), value)

		return profileSavedMsg{name: name, err: err}
	}
}

// Capturing reports whether the name field has focus.
func (m ProfileModel) Capturing() bool {
	return m.state == profileEditing
}

// Name returns the name currently displayed.
func (m ProfileModel) Name() string {
	return m.name
}

func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.state != profileLoading {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case profileLoadedMsg:
		if m.state == profileLoading {
			m.state = profileViewing
		}

		if msg.ok {
			m.name = msg.name
			m.stored = true
		}

		return m, nil

	case profileSavedMsg:
		if errors.Is(msg.err, profile.ErrInvalidName) {
			m.invalid = true
			m.deps.dispatch(notify.Error(InvalidNameTitle, InvalidNamePrompt))

			return m, expireToast(m.deps.Toast)
		}

		m.name = msg.name
		m.stored = true
		m.invalid = false
		m.state = profileViewing
		m.input.Blur()
		m.deps.dispatch(notify.Success(ProfileSavedTitle, ProfileSavedBody))

		return m, expireToast(m.deps.Toast)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m ProfileModel) handleKey(msg tea.KeyMsg) (ProfileModel, tea.Cmd) {
	switch m.state {
	case profileViewing:
		if msg.String() == "e" {
			m.state = profileEditing
			m.invalid = false

			m.input.SetValue("")
			if m.stored {
				m.input.SetValue(m.name)
			}

			m.input.CursorEnd()
			m.input.Focus()

			return m, textinput.Blink
		}

	case profileEditing:
		switch msg.String() {
		case "esc":
			m.state = profileViewing
			m.invalid = false
			m.input.Blur()

			return m, nil

		case "enter":
			return m, m.saveName(m.input.Value())
		}

		var cmd tea.Cmd

		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m ProfileModel) View() string {
	if m.state == profileLoading {
		return fmt.Sprintf("\n %s Loading...\n", m.spinner.View())
	}

	initial := "?"
	if r := []rune(strings.TrimSpace(m.name)); len(r) > 0 {
		initial = strings.ToUpper(string(r[0]))
	}

	var b strings.Builder

	b.WriteString(profileAvatarStyle.Render(initial))
	b.WriteString("\n\n")

	if m.state == profileEditing {
		box := focusStyle
		b.WriteString(box.Render(m.input.View()))
		b.WriteString("\n")

		if m.invalid {
			b.WriteString(errorStyle.Render(InvalidNamePrompt))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(profileNameStyle.Render(m.name))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	rows := [][2]string{
		{"Phone", m.account.Phone},
		{"Credits", fmt.Sprintf("%d", m.account.Credits)},
		{"City", m.account.City},
		{"Member since", m.account.Joined.Format(profileMemberFormat)},
	}

	for _, r := range rows {
		b.WriteString(profileLabelStyle.Render(r[0]))
		b.WriteString(r[1])
		b.WriteString("\n")
	}

	help := "e edit name • tab classes • q quit"
	if m.state == profileEditing {
		help = "enter save • esc cancel"
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(help))

	return b.String()
}
