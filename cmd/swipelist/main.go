package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/davidzwa/swipelist/internal/config"
	"github.com/davidzwa/swipelist/internal/source"
	"github.com/davidzwa/swipelist/internal/swipe"
	"github.com/davidzwa/swipelist/internal/tui"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	configFile      = config.DefaultPath
	itemsFile       string
	threshold       float64
	limit           float64
	silenceWarnings bool
	verbose         bool
	logFile         string
	jsonOutput      bool

	rootCmd = &cobra.Command{
		Use:   "swipelist",
		Short: "A terminal list whose rows are swiped left or right to act on them.",
		Long: `Drag a row with the mouse (or nudge it with the arrow keys) past the swipe threshold and release it to trigger the left or right action. ` +
			`Rows released before the threshold slide back. A click or space taps the row.`,
		Args: cobra.NoArgs,
		Run:  runList,
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout, especially for --json output.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&itemsFile, "items", "", "YAML or JSON file with the items to list [Defaults to demo items]")
	rootCmd.PersistentFlags().
		Float64Var(&threshold, "threshold", swipe.DefaultThreshold, "Swipe distance that triggers an action, overrides the config file")
	rootCmd.PersistentFlags().
		Float64Var(&limit, "limit", swipe.DefaultLimit, "Maximum drag distance, overrides the config file")
	rootCmd.PersistentFlags().BoolVar(&silenceWarnings, "silence-warnings", false, "Do not report corrected configuration values")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file while the list is shown")

	configCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the configuration in JSON format instead of text")
	rootCmd.AddCommand(configCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func main() {
	Execute()
}

// overrides collects the flags the user actually set.
func overrides(cmd *cobra.Command) config.Overrides {
	ov := config.Overrides{Items: itemsFile}
	flags := cmd.Flags()
	if flags.Changed("threshold") {
		ov.SwipeThreshold = &threshold
	}
	if flags.Changed("limit") {
		ov.SwipeLimit = &limit
	}
	if flags.Changed("silence-warnings") {
		ov.SilenceWarnings = &silenceWarnings
	}
	return ov
}

func runList(cmd *cobra.Command, _ []string) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	warner := swipe.LogWarner{Logger: logrus.StandardLogger()}
	ov := overrides(cmd)
	settings, err := config.Load(configFile, ov, warner)
	if err != nil {
		logrus.Fatalf("Unable to load config: %v", err)
	}

	items := source.Demo()
	if settings.ItemsPath != "" {
		if items, err = source.Load(settings.ItemsPath); err != nil {
			logrus.Fatalf("Unable to load items: %v", err)
		}
	}

	err = withLogFile(logFile, func(out io.Writer) error {
		return tui.Run(cmd.Context(), tui.Options{
			Items:     items,
			Settings:  settings,
			Overrides: ov,
			Warner:    warner,
			LogOutput: out,
			Watch:     true,
		})
	})
	if err != nil {
		logrus.Fatalf("TUI failed: %v", err)
	}
}

// withLogFile runs fn with path opened for appending, or with a nil writer when
// path is empty. The file is closed before withLogFile returns.
func withLogFile(path string, fn func(out io.Writer) error) error {
	if path == "" {
		return fn(nil)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	runErr := fn(f)
	if err := f.Close(); err != nil && runErr == nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return runErr
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective swipe configuration",
	Long:  "Load the config file, apply command line overrides, correct invalid values and print the result together with any warnings.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		var collected swipe.Collector
		settings, err := config.Load(configFile, overrides(cmd), &collected)
		if err != nil {
			logrus.Fatal(err)
		}
		cfg := swipe.Normalize(settings.Swipe, &collected)

		if err := printConfig(os.Stdout, settings, cfg, collected.Warnings, jsonOutput); err != nil {
			logrus.Fatal(err)
		}
	},
}

type warningReport struct {
	Code    swipe.WarningCode `json:"code"`
	Message string            `json:"message"`
}

type configReport struct {
	Path       string          `json:"path"`
	FileExists bool            `json:"file_exists"`
	Items      string          `json:"items,omitempty"`
	Swipe      swipe.Config    `json:"swipe"`
	Warnings   []warningReport `json:"warnings"`
}

func printConfig(w io.Writer, s config.Settings, cfg swipe.Config, warnings []swipe.Warning, asJSON bool) error {
	report := configReport{
		Path:       s.Path,
		FileExists: s.FileExists,
		Items:      s.ItemsPath,
		Swipe:      cfg,
		Warnings:   make([]warningReport, 0, len(warnings)),
	}
	for _, wr := range warnings {
		report.Warnings = append(report.Warnings, warningReport{Code: wr.Code, Message: wr.String()})
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	origin := "defaults"
	if report.FileExists {
		origin = report.Path
	}
	fmt.Fprintf(w, "config:            %s\n", origin)
	if report.Items != "" {
		fmt.Fprintf(w, "items:             %s\n", report.Items)
	}
	fmt.Fprintf(w, "swipe_threshold:   %g\n", cfg.SwipeThreshold)
	fmt.Fprintf(w, "swipe_limit:       %g\n", cfg.SwipeLimit)
	fmt.Fprintf(w, "left:              %s %s\n", cfg.LeftColor, cfg.LeftIcon)
	fmt.Fprintf(w, "right:             %s %s\n", cfg.RightColor, cfg.RightIcon)
	fmt.Fprintf(w, "default_color:     %s\n", cfg.DefaultSwipeColor)
	fmt.Fprintf(w, "multi_line:        %t\n", cfg.MultiLine)
	fmt.Fprintf(w, "icon:              %t\n", cfg.Icon)
	fmt.Fprintf(w, "avatar:            %t\n", cfg.Avatar)
	if len(report.Warnings) == 0 {
		return nil
	}
	fmt.Fprintln(w, "warnings:")
	for _, wr := range report.Warnings {
		fmt.Fprintf(w, "  %s: %s\n", wr.Code, wr.Message)
	}
	return nil
}
