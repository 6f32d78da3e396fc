package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/fitbook/internal/booking"
	"github.com/inovacc/fitbook/internal/catalog"
	"github.com/inovacc/fitbook/internal/model"
	"github.com/inovacc/fitbook/internal/notify"
	"github.com/inovacc/fitbook/internal/profile"
	"github.com/inovacc/fitbook/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testDeps(success bool) Deps {
	toast := notify.NewToast()
	d := notify.NewDispatcher(false, nil)
	d.Register(toast)

	return Deps{
		Catalog:         catalog.New(catalog.Default(), 0),
		Booker:          booking.Fixed{Success: success},
		Dispatcher:      d,
		Toast:           toast,
		Profile:         profile.NewService(store.NewMemory(), nil),
		HighlightWindow: time.Second,
	}
}

func loadedClasses(t *testing.T, deps Deps) ClassesModel {
	t.Helper()

	m := NewClassesModel(deps)
	m, _ = m.Update(m.loadCatalog())
	require.NotNil(t, m.Machine())

	return m
}

func visibleIDs(m ClassesModel) []string {
	ids := make([]string, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		ids = append(ids, it.(classItem).class.ID)
	}

	return ids
}

func TestClasses_LoadShowsAllClasses(t *testing.T) {
	m := NewClassesModel(testDeps(true))
	assert.Contains(t, m.View(), "Loading classes")

	m, _ = m.Update(m.loadCatalog())

	assert.Equal(t, []string{"c1", "c2", "c3", "c4", "c5"}, visibleIDs(m))
	assert.Contains(t, m.View(), "Yoga Basics")
}

func TestClasses_LevelChipToggles(t *testing.T) {
	m := loadedClasses(t, testDeps(true))

	m, _ = m.Update(key("1"))
	assert.Equal(t, []string{"c1", "c4"}, visibleIDs(m))

	m, _ = m.Update(key("1"))
	assert.Len(t, visibleIDs(m), 5)
}

func TestClasses_SearchAndEmptyState(t *testing.T) {
	m := loadedClasses(t, testDeps(true))

	m, _ = m.Update(key("/"))
	assert.True(t, m.Capturing())

	m, _ = m.Update(key("zumba"))
	assert.Empty(t, visibleIDs(m))
	assert.Contains(t, m.View(), "No classes match")

	m, _ = m.Update(key("esc"))
	assert.False(t, m.Capturing())

	m, _ = m.Update(key("c"))
	assert.Len(t, visibleIDs(m), 5)
	assert.Empty(t, m.search.Value())
}

func TestClasses_InstructorPicker(t *testing.T) {
	m := loadedClasses(t, testDeps(true))

	m, _ = m.Update(key("i"))
	require.NotNil(t, m.picker)

	// first row is "All instructors", then Asha, Rohit
	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("down"))

	m, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)

	m, _ = m.Update(cmd())
	assert.Nil(t, m.picker)
	assert.Equal(t, []string{"c2", "c4"}, visibleIDs(m))
	assert.Equal(t, "Rohit", m.selection.InstructorLabel())
}

func TestClasses_QuickBookSuccess(t *testing.T) {
	deps := testDeps(true)
	m := loadedClasses(t, deps)

	m, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)

	st, _ := m.Machine().State("c1")
	assert.True(t, st.Booked)
	assert.True(t, st.Pending)
	assert.Contains(t, m.View(), "Booking…")

	// a second press while pending is ignored
	_, again := m.Update(key("enter"))
	assert.Nil(t, again)

	m, _ = m.Update(cmd())

	st, _ = m.Machine().State("c1")
	assert.Equal(t, booking.State{Booked: true, JustSucceeded: true}, st)

	msg, _ := deps.Toast.Last()
	require.NotNil(t, msg)
	assert.Equal(t, booking.SuccessTitle, msg.Title)

	m, _ = m.Update(highlightExpiredMsg{classID: "c1"})
	st, _ = m.Machine().State("c1")
	assert.False(t, st.JustSucceeded)
	assert.Contains(t, m.View(), "Booked")
}

func TestClasses_QuickBookFailureRollsBack(t *testing.T) {
	deps := testDeps(false)
	m := loadedClasses(t, deps)

	m, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)

	m, _ = m.Update(cmd())

	st, _ := m.Machine().State("c1")
	assert.Equal(t, booking.State{}, st)

	_, ok := m.Machine().Highlighted()
	assert.False(t, ok)

	msg, _ := deps.Toast.Last()
	require.NotNil(t, msg)
	assert.Equal(t, booking.FailureTitle, msg.Title)
}

func TestClasses_BookedCardIsNotResubmitted(t *testing.T) {
	m := loadedClasses(t, testDeps(true))

	m, cmd := m.Update(key("enter"))
	m, _ = m.Update(cmd())

	_, cmd = m.Update(key("enter"))
	assert.Nil(t, cmd)
}

func TestProfile_EditAndSave(t *testing.T) {
	deps := testDeps(true)
	m := NewProfileModel(deps)

	m, _ = m.Update(m.loadName())
	assert.Equal(t, profile.DefaultName, m.Name())

	m, _ = m.Update(key("e"))
	assert.True(t, m.Capturing())

	m, _ = m.Update(key("  Priya  "))
	m, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)

	m, _ = m.Update(cmd())
	assert.False(t, m.Capturing())
	assert.Equal(t, "Priya", m.Name())

	msg, _ := deps.Toast.Last()
	require.NotNil(t, msg)
	assert.Equal(t, ProfileSavedTitle, msg.Title)

	// a fresh screen over the same store sees the saved name
	again := NewProfileModel(deps)
	again, _ = again.Update(again.loadName())
	assert.Equal(t, "Priya", again.Name())
}

func TestProfile_InvalidName(t *testing.T) {
	deps := testDeps(true)
	m := NewProfileModel(deps)
	m, _ = m.Update(m.loadName())

	m, _ = m.Update(key("e"))
	m, _ = m.Update(key("   "))
	m, cmd := m.Update(key("enter"))
	m, _ = m.Update(cmd())

	assert.True(t, m.Capturing())
	assert.Contains(t, m.View(), InvalidNamePrompt)
	assert.Equal(t, profile.DefaultName, m.Name())

	_, ok := deps.Profile.LoadName(t.Context())
	assert.False(t, ok)

	m, _ = m.Update(key("esc"))
	assert.False(t, m.Capturing())
}

func TestApp_TabSwitchingAndQuit(t *testing.T) {
	m := NewApp(testDeps(true))
	assert.Equal(t, TabClasses, m.Tab())

	next, _ := m.Update(key("tab"))
	m = next.(AppModel)
	assert.Equal(t, TabProfile, m.Tab())

	next, _ = m.Update(key("tab"))
	m = next.(AppModel)
	assert.Equal(t, TabClasses, m.Tab())

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_ToastExpiry(t *testing.T) {
	deps := testDeps(true)
	m := NewApp(deps)

	deps.Dispatcher.Dispatch(t.Context(), notify.Success("Booked", ""))
	_, seq := deps.Toast.Last()
	assert.Contains(t, m.View(), "Booked")

	next, _ := m.Update(toastExpiredMsg{seq: seq})
	m = next.(AppModel)

	msg, _ := deps.Toast.Last()
	assert.Nil(t, msg)
}

func TestBookingDemo_ForcedOutcomes(t *testing.T) {
	deps := testDeps(true)
	m := NewBookingDemoModel(deps, 0)

	next, cmd := m.Update(key("f"))
	m = next.(BookingDemoModel)
	require.NotNil(t, cmd)
	assert.True(t, m.State().Pending)

	a, err := m.machine.Begin(m.class.ID)
	assert.ErrorIs(t, err, booking.ErrInFlight)
	assert.Empty(t, a.ID)

	// settle through the real command result
	var settled bookingSettledMsg

	for _, c := range cmd().(tea.BatchMsg) {
		if msg, ok := c().(bookingSettledMsg); ok {
			settled = msg
		}
	}

	next, _ = m.Update(settled)
	m = next.(BookingDemoModel)
	assert.Equal(t, booking.State{}, m.State())
	assert.Contains(t, m.View(), RolledBackNote)

	next, cmd = m.Update(key("s"))
	m = next.(BookingDemoModel)

	for _, c := range cmd().(tea.BatchMsg) {
		if msg, ok := c().(bookingSettledMsg); ok {
			next, _ = m.Update(msg)
			m = next.(BookingDemoModel)
		}
	}

	assert.Equal(t, booking.State{Booked: true, JustSucceeded: true}, m.State())

	next, _ = m.Update(key("r"))
	m = next.(BookingDemoModel)
	assert.Equal(t, booking.State{}, m.State())
}

func TestQuickBookLabel(t *testing.T) {
	assert.Equal(t, "Quick Book", quickBookLabel(booking.State{}))
	assert.Equal(t, "Booking…", quickBookLabel(booking.State{Booked: true, Pending: true}))
	assert.Equal(t, "Booked", quickBookLabel(booking.State{Booked: true}))
	assert.Contains(t, renderCard(model.ClassRecord{Name: "Yoga Basics"}, booking.State{JustSucceeded: true, Booked: true}, false, 60), "✓")
}
