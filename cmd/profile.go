package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/inovacc/fitbook/internal/cli"
	"github.com/inovacc/fitbook/internal/model"
	"github.com/inovacc/fitbook/internal/notify"
	"github.com/inovacc/fitbook/internal/profile"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the profile",
	Long: `Show the profile name and account summary.

The name is stored locally. Until one is saved the default name is shown.

Examples:
  fitbook profile
  fitbook profile --json
  fitbook profile set "Priya Sharma"`,
	Args: cobra.NoArgs,
	RunE: runProfile,
}

var profileSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Save the profile name",
	Long: `Save the profile name. Surrounding whitespace is trimmed and an empty
name is rejected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProfileSet,
}

var profileJSON bool

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)

	profileCmd.Flags().BoolVar(&profileJSON, "json", false, "Output as JSON")
}

// ProfileView is the JSON shape of `fitbook profile`.
type ProfileView struct {
	Name    string        `json:"name"`
	Saved   bool          `json:"saved"`
	Account model.Account `json:"account"`
}

func runProfile(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer e.Close()

	kv, err := e.store(cmd.Context())
	if err != nil {
		return err
	}

	svc := profile.NewService(kv, e.logger)

	name, saved := svc.LoadName(cmd.Context())
	if !saved {
		name = profile.DefaultName
	}

	view := ProfileView{Name: name, Saved: saved, Account: model.DemoAccount()}

	if profileJSON {
		return writeJSON(cmd.OutOrStdout(), view)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintf(w, "Name:\t%s\n", view.Name)
	_, _ = fmt.Fprintf(w, "Phone:\t%s\n", view.Account.Phone)
	_, _ = fmt.Fprintf(w, "Credits:\t%d\n", view.Account.Credits)
	_, _ = fmt.Fprintf(w, "City:\t%s\n", view.Account.City)
	_, _ = fmt.Fprintf(w, "Member since:\t%s\n", view.Account.Joined.Format(time.DateOnly))

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer e.Close()

	kv, err := e.store(cmd.Context())
	if err != nil {
		return err
	}

	svc := profile.NewService(kv, e.logger)

	if _, err := svc.SaveName(cmd.Context(), strings.Join(args, " ")); err != nil {
		return err
	}

	d := e.dispatcher(notify.NewWriter(cmd.OutOrStdout()))
	d.Dispatch(cmd.Context(), notify.Success(cli.ProfileSavedTitle, cli.ProfileSavedBody))

	return nil
}
