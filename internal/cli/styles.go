package cli

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

var (
	primary = lipgloss.Color("33")
	muted   = lipgloss.Color("244")
	success = lipgloss.Color("42")
	danger  = lipgloss.Color("196")

	docStyle      = lipgloss.NewStyle().Margin(1, 2)
	headingStyle  = lipgloss.NewStyle().Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(muted)
	helpStyle     = list.DefaultStyles().HelpStyle.PaddingLeft(2).PaddingBottom(1)
	errorStyle    = lipgloss.NewStyle().Foreground(danger)
	spinnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(muted)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 2).Foreground(primary).Bold(true).Underline(true)

	chipStyle         = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("252"))
	selectedChipStyle = chipStyle.BorderForeground(primary).Foreground(primary).Bold(true)

	searchStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("252")).Padding(0, 1)
	focusStyle  = searchStyle.BorderForeground(primary)

	cardTitleStyle    = lipgloss.NewStyle().Bold(true)
	cardMetaStyle     = lipgloss.NewStyle().Foreground(muted)
	cardSmallStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	avatarStyle       = lipgloss.NewStyle().Foreground(primary).Bold(true).Padding(0, 1).Background(lipgloss.Color("255"))
	quickBtnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(primary).Bold(true).Padding(0, 1)
	bookedBtnStyle    = quickBtnStyle.Background(lipgloss.Color("240"))
	pendingBtnStyle   = quickBtnStyle.Background(lipgloss.Color("214"))
	burstStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(success).Bold(true).Padding(0, 1)
	selectedCardStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(primary).PaddingLeft(1)
	cardStyle         = lipgloss.NewStyle().PaddingLeft(2)

	emptyTitleStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	linkStyle       = lipgloss.NewStyle().Foreground(primary)
)
