package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/inovacc/fitbook/internal/filter"
	"github.com/inovacc/fitbook/internal/model"
	"github.com/spf13/cobra"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List classes",
	Long: `List the class catalog, optionally filtered.

All filters must match. The instructor must match exactly; search matches
any part of the class name, instructor or center, ignoring case.

Examples:
  fitbook classes
  fitbook classes --level beginner
  fitbook classes --instructor Rohit --search yoga
  fitbook classes --json`,
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runClasses,
}

var (
	classesLevel      levelFlag
	classesInstructor string
	classesSearch     string
	classesJSON       bool
)

func init() {
	rootCmd.AddCommand(classesCmd)

	classesCmd.Flags().Var(&classesLevel, "level", "Only show this level (beginner, intermediate, advanced)")
	classesCmd.Flags().StringVar(&classesInstructor, "instructor", "", "Only show this instructor")
	classesCmd.Flags().StringVarP(&classesSearch, "search", "s", "", "Free text search")
	classesCmd.Flags().BoolVar(&classesJSON, "json", false, "Output as JSON")
}

func runClasses(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer e.Close()

	sel := filter.Selection{Level: classesLevel.level}.
		WithInstructor(classesInstructor).
		WithSearch(classesSearch)

	records, err := e.catalog().Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load classes: %w", err)
	}

	visible := sel.Apply(records)

	e.logger.Debug("classes listed", "total", len(records), "visible", len(visible))

	if classesJSON {
		return writeJSON(cmd.OutOrStdout(), visible)
	}

	return printClasses(cmd.OutOrStdout(), visible)
}

func printClasses(out io.Writer, records []model.ClassRecord) error {
	if len(records) == 0 {
		_, _ = fmt.Fprintln(out, "No classes match.")
		_, _ = fmt.Fprintln(out, "Try removing filters or broadening your search.")

		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "ID\tCLASS\tLEVEL\tINSTRUCTOR\tCENTER")
	_, _ = fmt.Fprintln(w, "--\t-----\t-----\t----------\t------")

	for _, c := range records {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Level, c.Instructor, c.Center)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
