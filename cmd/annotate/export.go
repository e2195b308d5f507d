package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"imgannotate/pkg/config"
	"imgannotate/pkg/ledger"
	"imgannotate/pkg/ui"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger to Parquet",
	Long: `Write every ledger row to a Parquet file for analysis tooling.
Bad images get null intensity and confidence.`,
	Example: `  annotate export
  annotate export --ledger faces.csv --out faces.parquet`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&ledgerPath, "ledger", "l", "", "annotation ledger CSV")
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "output file (default <ledger>.parquet)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, flagOverrides(cmd))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	out := exportOutput
	if out == "" {
		out = strings.TrimSuffix(cfg.Ledger.Path, ".csv") + ".parquet"
	}

	n, err := ledger.New(cfg.Ledger.Path).ExportParquet(out)
	if err != nil {
		return err
	}

	ui.PrintSuccess(fmt.Sprintf("Exported %d rows to %s", n, out))
	return nil
}
