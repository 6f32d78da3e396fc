package cmd

import (
	"errors"
	"fmt"

	"github.com/inovacc/fitbook/internal/booking"
	"github.com/inovacc/fitbook/internal/notify"
	"github.com/spf13/cobra"
)

var errBookingFailed = errors.New("booking failed")

var bookCmd = &cobra.Command{
	Use:   "book <class-id>",
	Short: "Quick-book a class",
	Long: `Quick-book a class by id.

The booking call is simulated: it waits for the configured delay and
succeeds most of the time. Use --force to pick the outcome.

Examples:
  fitbook book c1
  fitbook book c3 --force failure
  fitbook book c2 --delay 0s`,
	Args: cobra.ExactArgs(1),
	RunE: runBook,
}

var (
	bookForce outcomeFlag
	bookDelay string
)

func init() {
	rootCmd.AddCommand(bookCmd)

	bookCmd.Flags().Var(&bookForce, "force", "Force the outcome (success, failure)")
	bookCmd.Flags().StringVar(&bookDelay, "delay", "", "Simulated network delay (overrides booking.delay)")
}

func runBook(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer e.Close()

	if bookDelay != "" {
		d, err := parseDelay(bookDelay)
		if err != nil {
			return err
		}

		e.cfg.Booking.Delay = d
	}

	booker := bookForce.booker(e.cfg.Booking.Delay)
	if booker == nil {
		booker = e.booker()
	}

	records, err := e.catalog().Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load classes: %w", err)
	}

	m := booking.NewMachine(records, booker, e.dispatcher(notify.NewWriter(cmd.OutOrStdout())),
		booking.WithHighlightWindow(0),
		booking.WithLogger(e.logger),
	)

	out, err := m.QuickBook(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if !out.Success {
		return errBookingFailed
	}

	return nil
}
