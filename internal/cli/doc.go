// Package cli provides the terminal user interface for fitbook.
//
// The package uses [Bubbletea] for the Model-View-Update loop, [Bubbles] for
// the list, spinner and text input widgets, and [Lipgloss] for styling.
//
// # Screens
//
//   - App: top-level model switching between Classes and Profile with tab
//   - Classes: filterable class list with quick booking
//   - Profile: display name editor backed by the local store
//   - BookingDemo: a single card with forced booking outcomes
//
// Booking state lives in a [booking.Machine]; models only hold what is needed
// to render it. Slow work (catalog load, booking call, store access) runs in
// tea.Cmd functions and comes back as messages.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Bubbles]: https://github.com/charmbracelet/bubbles
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
