package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/fitbook/internal/booking"
	"github.com/inovacc/fitbook/internal/catalog"
	"github.com/inovacc/fitbook/internal/model"
)

// RolledBackNote is shown under the card after a forced failure.
const RolledBackNote = "Booking was rolled back (demo)."

// BookingDemoModel shows a single class card whose booking outcome is chosen
// by the user instead of drawn at random.
type BookingDemoModel struct {
	deps    Deps
	spinner spinner.Model
	class   model.ClassRecord
	machine *booking.Machine
	delay   time.Duration
	note    string
	width   int
}

// NewBookingDemoModel builds the demo around the first catalog class. delay
// is the simulated network time of each forced attempt.
func NewBookingDemoModel(deps Deps, delay time.Duration) BookingDemoModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := BookingDemoModel{
		deps:    deps,
		spinner: s,
		delay:   delay,
		width:   72,
	}

	return m.reset()
}

func (m BookingDemoModel) reset() BookingDemoModel {
	m.class = catalog.Default()[0]
	m.machine = booking.NewMachine([]model.ClassRecord{m.class}, nil, m.deps.notifier(),
		booking.WithManualHighlight(),
		booking.WithHighlightWindow(m.deps.HighlightWindow),
		booking.WithLogger(m.deps.logger()),
	)
	m.note = ""

	return m
}

func (m BookingDemoModel) Init() tea.Cmd {
	return nil
}

func (m BookingDemoModel) force(success bool) (BookingDemoModel, tea.Cmd) {
	a, err := m.machine.Begin(m.class.ID)
	if err != nil {
		if errors.Is(err, booking.ErrAlreadyBooked) {
			m.note = "Already booked. Press r to reset."
		}

		return m, nil
	}

	m.note = ""
	booker := booking.Fixed{Success: success, Delay: m.delay}

	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return bookingSettledMsg{attempt: a, outcome: booker.Attempt(context.Background())}
	})
}

func (m BookingDemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "s":
			return m.force(true)

		case "f":
			return m.force(false)

		case "r":
			if !m.machine.Pending(m.class.ID) {
				return m.reset(), nil
			}
		}

	case bookingSettledMsg:
		if !m.machine.Settle(context.Background(), msg.attempt, msg.outcome) {
			return m, nil
		}

		if !msg.outcome.Success {
			m.note = RolledBackNote

			return m, expireToast(m.deps.Toast)
		}

		return m, tea.Batch(expireToast(m.deps.Toast), expireHighlight(m.class.ID, m.deps.HighlightWindow))

	case highlightExpiredMsg:
		m.machine.ClearHighlight(msg.classID)

	case toastExpiredMsg:
		if m.deps.Toast != nil {
			m.deps.Toast.Dismiss(msg.seq)
		}

	case spinner.TickMsg:
		if !m.machine.Pending(m.class.ID) {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

// State exposes the card's booking state.
func (m BookingDemoModel) State() booking.State {
	st, _ := m.machine.State(m.class.ID)

	return st
}

func (m BookingDemoModel) View() string {
	st := m.State()

	var b strings.Builder

	b.WriteString(headingStyle.Render("Booking flow demo"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Force the outcome of a quick booking."))
	b.WriteString("\n\n")
	b.WriteString(renderCard(m.class, st, true, m.width-4))
	b.WriteString("\n\n")

	if st.Pending {
		b.WriteString(fmt.Sprintf(" %s Booking %s...\n", m.spinner.View(), m.class.Name))
	}

	if m.note != "" {
		b.WriteString(errorStyle.Render(m.note))
		b.WriteString("\n")
	}

	if t := toastView(m.deps.Toast); t != "" {
		b.WriteString(t)
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("s force success • f force failure • r reset • q quit"))

	return docStyle.Render(b.String())
}
