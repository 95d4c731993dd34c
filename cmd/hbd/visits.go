package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hbd/internal/platform/tui"
	"github.com/vovakirdan/tui-hbd/internal/storage"
)

var (
	flagVisitsCSV   bool
	flagVisitsLimit int
	flagVisitsClear bool
)

var visitsCmd = &cobra.Command{
	Use:   "visits",
	Short: "List recent SSH visits",
	Long: `Show who came by through 'hbd serve', newest first.

Without flags an interactive table opens. With --csv the visits are
written to stdout.

Examples:
  hbd visits
  hbd visits --csv > visits.csv
  hbd visits --csv --limit 5
  hbd visits --clear`,
	Args: cobra.NoArgs,
	RunE: runVisits,
}

func init() {
	visitsCmd.Flags().BoolVar(&flagVisitsCSV, "csv", false, "Write visits as CSV to stdout")
	visitsCmd.Flags().IntVar(&flagVisitsLimit, "limit", 100, "Maximum number of visits for --csv")
	visitsCmd.Flags().BoolVar(&flagVisitsClear, "clear", false, "Delete all recorded visits")
}

func runVisits(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening visit log: %w", err)
	}
	defer store.Close()

	switch {
	case flagVisitsClear:
		if err := store.ClearVisits(); err != nil {
			return err
		}
		fmt.Println("Visit log cleared.")
		return nil

	case flagVisitsCSV:
		visits, err := store.RecentVisits(flagVisitsLimit)
		if err != nil {
			return err
		}
		return storage.WriteCSV(os.Stdout, visits)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return tui.RunVisitLog(store, width, height)
}
