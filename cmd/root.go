package cmd

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/fitbook/internal/application"
	"github.com/inovacc/fitbook/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgPath   string
	logLevel  string
	ephemeral bool
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Browse and quick-book fitness classes",
	Long: `Fitbook lists fitness classes, filters them by level, instructor and
free text, and books them with a single key press.

Run without arguments in a terminal to open the interactive browser. When
stdout is not a terminal the class list is printed instead.`,
	SilenceUsage: true,
	RunE:         runRoot,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default is config.ini in the app directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep profile data in memory only")
}

func runRoot(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return runClasses(cmd, nil)
	}

	e, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	kv, err := e.store(cmd.Context())
	if err != nil {
		return err
	}

	deps := e.deps(kv)

	if _, err := tea.NewProgram(cli.NewApp(deps), tea.WithAltScreen()).Run(); err != nil {
		return err
	}

	return nil
}
