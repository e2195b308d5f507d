package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"imgannotate/pkg/config"
	"imgannotate/pkg/imageset"
	"imgannotate/pkg/ui"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration files",
	Long: `Manage annotate configuration files.

Configuration can be loaded from:
  - Command line flags (highest priority)
  - Environment variables (ANNOTATE_*, also read from .env)
  - Configuration file
  - Default values (lowest priority)`,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an example configuration file",
	Long: `Create an example configuration file with all available options.

The file will be created in the current directory as 'annotate.yaml'
unless a different path is specified with the --config flag.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate a configuration file for syntax errors and invalid values.

This command checks:
  - YAML syntax
  - Known viewer and log level values
  - The dataset directory and its filenames
  - Ledger and log file locations`,
	Args: cobra.NoArgs,
	RunE: runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(validateCmd)
}

const exampleConfig = `# annotate configuration file
#
# Every option can also be set with an ANNOTATE_ environment variable,
# for example ANNOTATE_DATASET_DIR or ANNOTATE_LOG_LEVEL.

dataset:
  # Directory holding images named N.ext (1.jpg, 2.png, ...)
  directory: "dataset-master/"

ledger:
  # CSV file the annotations are appended to
  path: "annotations.csv"

  # Refuse to start a second session on the same ledger
  lock: true

display:
  # auto: platform image opener (xdg-open, open, rundll32); the opened
  #       windows stay up after each image, prefer command with feh or imv
  # none: decode only, no window
  # command: run the command below with the image path appended
  viewer: "auto"
  command: []

notifications:
  # Desktop notifications
  enabled: false

  # Notify when every image has been annotated
  on_complete: true

logging:
  # Log level: debug, info, warn, error
  level: "warn"

  # Log file path (optional)
  # Leave empty to log to stderr
  file: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath := configFile
	if configPath == "" {
		configPath = "annotate.yaml"
	}

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists: %s (remove it first to overwrite)", configPath)
	}

	if err := os.WriteFile(configPath, []byte(exampleConfig), 0644); err != nil {
		return fmt.Errorf("failed to create configuration file: %w", err)
	}

	ui.PrintSuccess("Configuration file created: " + configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("1. Point dataset.directory at your images")
	fmt.Println("2. Run 'annotate config validate' to check the configuration")
	fmt.Println("3. Start annotating with 'annotate'")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, flagOverrides(cmd))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to format configuration: %w", err)
	}

	ui.PrintHighlight("Current Configuration")
	fmt.Println()
	fmt.Print(string(data))

	source := configFile
	if source == "" {
		source = config.FindConfigFile()
	}
	fmt.Println("\nConfiguration sources (in order of priority):")
	fmt.Println("1. Command line flags")
	fmt.Println("2. Environment variables (ANNOTATE_*)")
	if source != "" {
		fmt.Printf("3. Configuration file: %s\n", source)
	} else {
		fmt.Println("3. Configuration file: (none found)")
	}
	fmt.Println("4. Default values")
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	path := configFile
	if path == "" {
		path = config.FindConfigFile()
	}
	if path == "" {
		return fmt.Errorf("no configuration file found, specify one with --config")
	}

	ui.PrintInfo("Validating configuration", path)

	cfg, err := config.Load(path, nil)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	problems, warnings := checkPaths(cfg)

	if len(warnings) > 0 {
		ui.PrintWarning("Configuration warnings")
		for _, w := range warnings {
			fmt.Printf("  - %s\n", w)
		}
		fmt.Println()
	}
	if len(problems) > 0 {
		ui.PrintError("Configuration has errors")
		for _, p := range problems {
			fmt.Printf("  - %s\n", p)
		}
		return fmt.Errorf("%d configuration error(s)", len(problems))
	}

	ui.PrintSuccess("Configuration is valid")

	fmt.Println("\nConfiguration summary:")
	fmt.Printf("  Dataset: %s\n", cfg.Dataset.Directory)
	fmt.Printf("  Ledger: %s (lock: %t)\n", cfg.Ledger.Path, cfg.Ledger.Lock)
	fmt.Printf("  Viewer: %s\n", cfg.Display.Viewer)
	fmt.Printf("  Log level: %s\n", cfg.Logging.Level)
	return nil
}

// checkPaths inspects the filesystem locations a session will touch.
func checkPaths(cfg *config.Config) (problems, warnings []string) {
	if images, err := imageset.Load(cfg.Dataset.Directory); err != nil {
		problems = append(problems, fmt.Sprintf("dataset: %v", err))
	} else if images.Len() == 0 {
		warnings = append(warnings, fmt.Sprintf("dataset %s has no images", cfg.Dataset.Directory))
	}

	if dir := filepath.Dir(cfg.Ledger.Path); dir != "." {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			problems = append(problems, fmt.Sprintf("ledger directory %s does not exist", dir))
		}
	}
	if _, err := os.Stat(cfg.Ledger.Path); err == nil {
		warnings = append(warnings, fmt.Sprintf("ledger %s exists, the next session will resume it", cfg.Ledger.Path))
	}

	if cfg.Logging.File != "" {
		dir := filepath.Dir(cfg.Logging.File)
		if err := os.MkdirAll(dir, 0755); err != nil {
			problems = append(problems, fmt.Sprintf("cannot create log directory: %v", err))
		}
	}
	return problems, warnings
}
