package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/fitbook/internal/booking"
	"github.com/inovacc/fitbook/internal/model"
)

type classItem struct {
	class model.ClassRecord
}

func (i classItem) Title() string       { return i.class.Name }
func (i classItem) Description() string { return cardMeta(i.class) }
func (i classItem) FilterValue() string { return i.class.SearchText() }

// cardDelegate renders one class card. Booking state is read from the
// machine at render time so items never go stale.
type cardDelegate struct {
	machine *booking.Machine
}

func (d cardDelegate) Height() int                             { return 3 }
func (d cardDelegate) Spacing() int                            { return 1 }
func (d cardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d cardDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(classItem)
	if !ok {
		return
	}

	var st booking.State
	if d.machine != nil {
		st, _ = d.machine.State(i.class.ID)
	}

	_, _ = fmt.Fprint(w, renderCard(i.class, st, index == m.Index(), m.Width()))
}

// quickBookLabel is the button text for a card in state st.
func quickBookLabel(st booking.State) string {
	switch {
	case st.Pending:
		return "Booking…"
	case st.Booked:
		return "Booked"
	default:
		return "Quick Book"
	}
}

func renderCard(c model.ClassRecord, st booking.State, selected bool, width int) string {
	info := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(c.Name),
		cardMetaStyle.Render(cardMeta(c)),
		cardSmallStyle.Render(c.Center),
	)

	btnStyle := quickBtnStyle
	switch {
	case st.Pending:
		btnStyle = pendingBtnStyle
	case st.Booked:
		btnStyle = bookedBtnStyle
	}

	btn := btnStyle.Render(quickBookLabel(st))
	if st.JustSucceeded {
		btn = lipgloss.JoinHorizontal(lipgloss.Center, btn, " ", burstStyle.Render("✓"))
	}

	left := lipgloss.JoinHorizontal(lipgloss.Center, avatarStyle.Render(c.Initial()), "  ", info)

	gap := width - lipgloss.Width(left) - lipgloss.Width(btn) - 4
	if gap < 2 {
		gap = 2
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, left, lipgloss.NewStyle().Width(gap).Render(""), btn)

	if selected {
		return selectedCardStyle.Render(row)
	}

	return cardStyle.Render(row)
}

func cardMeta(c model.ClassRecord) string {
	return fmt.Sprintf("%s · %s", c.Level, c.Instructor)
}
