package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"imgannotate/pkg/config"
	"imgannotate/pkg/imageset"
	"imgannotate/pkg/ledger"
	"imgannotate/pkg/models"
	"imgannotate/pkg/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Summarize the annotation ledger",
	Long: `Print what the ledger holds: the annotator initial, how many rows were
recorded per state, the last image id and how many images of the dataset
are still unannotated.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVarP(&datasetDir, "dataset", "d", "", "directory of N.ext images")
	statusCmd.Flags().StringVarP(&ledgerPath, "ledger", "l", "", "annotation ledger CSV")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, flagOverrides(cmd))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	lg := ledger.New(cfg.Ledger.Path)
	exists, err := lg.Exists()
	if err != nil {
		return err
	}
	if !exists {
		ui.PrintWarning("No ledger yet", cfg.Ledger.Path)
		return nil
	}

	summary, err := lg.Summarize()
	if err != nil {
		return err
	}

	// A missing dataset still lets the ledger be summarized.
	images, err := imageset.Load(cfg.Dataset.Directory)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	rows := statusRows(cfg.Ledger.Path, summary, images)
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
	return nil
}

// statusRows lays out a ledger summary. images may be nil.
func statusRows(path string, s *ledger.Summary, images *imageset.Set) [][]string {
	last := "none"
	if s.LastIndex >= 0 {
		last = strconv.Itoa(s.LastIndex)
	}

	rows := [][]string{
		{"Ledger", path},
		{"Annotator", s.Initial},
		{"Rows", strconv.Itoa(s.Rows)},
		{"Happy", strconv.Itoa(s.ByState[models.StateHappy])},
		{"Embarrassed", strconv.Itoa(s.ByState[models.StateEmbarrassed])},
		{"Bad", strconv.Itoa(s.ByState[models.StateBad])},
		{"Last image id", last},
	}

	if images == nil {
		return append(rows, []string{"Dataset", "unavailable"})
	}
	names := images.Names()
	remaining, next := 0, "none"
	if s.LastIndex < len(names)-1 {
		remaining = len(names) - (s.LastIndex + 1)
		next = names[s.LastIndex+1]
	}
	return append(rows,
		[]string{"Dataset", fmt.Sprintf("%s (%d images)", images.Dir(), images.Len())},
		[]string{"Remaining", strconv.Itoa(remaining)},
		[]string{"Next image", next},
	)
}
