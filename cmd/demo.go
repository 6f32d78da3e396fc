package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/fitbook/internal/cli"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the booking flow demo",
	Long: `Open a single class card whose booking outcome you choose.

Press s to force success, f to force failure and r to reset.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	m := cli.NewBookingDemoModel(e.deps(nil), e.cfg.Booking.Delay)

	_, err = tea.NewProgram(m).Run()

	return err
}
