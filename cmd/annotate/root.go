package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"imgannotate/pkg/ui"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile    string
	logLevel      string
	noColor       bool
	notifications bool
	verbose       bool

	// Session flags
	datasetDir string
	ledgerPath string
	viewerName string
)

// rootCmd runs an annotation session when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Label a directory of images with emotion, intensity and confidence",
	Long: `annotate shows each image of a dataset directory in numeric filename order
and records one keystroke judgment per image in a CSV ledger.

Keys:
  a  happy        (then intensity 1-7 and confidence 1-7)
  l  embarrassed  (then intensity 1-7 and confidence 1-7)
  g  bad image
  y  quit

Sessions resume: when the ledger already exists you are asked for the image
id of the last annotated image and the session continues after it.`,
	Example: `  # Start or resume with the defaults (dataset-master/, annotations.csv)
  annotate

  # Use another dataset and ledger, no image window
  annotate --dataset ./faces --ledger faces.csv --viewer none

  # Show the ledger summary
  annotate status`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			ui.SetColorEnabled(false)
		}
		if verbose && logLevel == "" {
			logLevel = "debug"
		}
	},
	RunE: runSession,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	rootCmd.SilenceErrors = true
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		ui.PrintError("Error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is ./annotate.yaml or ~/.config/annotate/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&notifications, "notifications", false, "send a desktop notification when the dataset is finished")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.Flags().StringVarP(&datasetDir, "dataset", "d", "", "directory of N.ext images (default dataset-master/)")
	rootCmd.Flags().StringVarP(&ledgerPath, "ledger", "l", "", "annotation ledger CSV (default annotations.csv)")
	rootCmd.Flags().StringVar(&viewerName, "viewer", "", "image viewer: auto, none or command")

	rootCmd.SetVersionTemplate(`annotate {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// flagOverrides collects flags the user actually set, for config.Load
func flagOverrides(cmd *cobra.Command) map[string]interface{} {
	flags := make(map[string]interface{})
	if datasetDir != "" {
		flags["dataset"] = datasetDir
	}
	if ledgerPath != "" {
		flags["ledger"] = ledgerPath
	}
	if viewerName != "" {
		flags["viewer"] = viewerName
	}
	if cmd.Flags().Changed("notifications") {
		flags["notifications"] = notifications
	}
	if logLevel != "" {
		flags["log-level"] = logLevel
	}
	return flags
}
