package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Nomadcxx/sanger-rename/internal/config"
	"github.com/Nomadcxx/sanger-rename/internal/logging"
	"github.com/Nomadcxx/sanger-rename/internal/registry"
	"github.com/Nomadcxx/sanger-rename/internal/renamer"
	"github.com/Nomadcxx/sanger-rename/internal/reporter"
	"github.com/Nomadcxx/sanger-rename/internal/sanger"
	"github.com/Nomadcxx/sanger-rename/internal/ui"
	"github.com/Nomadcxx/sanger-rename/internal/wizard"
)

var (
	// Version information (set via -ldflags during build)
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

const dateLayout = "2006-01-02"

// flags holds the raw command line values shared by every subcommand
type flags struct {
	cfgFile string
	vendor  string
	date    string
	dryRun  bool
	opLog   string
	logFile string
	verbose bool
}

// settings is the effective configuration after flags override the config file
type settings struct {
	vendor     sanger.Vendor
	hasVendor  bool
	date       time.Time
	dryRun     bool
	opLog      string
	logFile    string
	verbose    bool
	extensions []string
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:           "sanger-rename [files|dirs...]",
		Short:         "Rename Sanger sequencing results to YYMMDD.template.primer",
		Long:          getLongDescription(),
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(cmd, f, args)
		},
	}

	previewCmd := &cobra.Command{
		Use:   "preview [files|dirs...]",
		Short: "Print the rename plan without starting the TUI or touching files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, f, args)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sanger-rename %s\n", version)
			fmt.Fprintf(out, "  Commit:     %s\n", commit)
			fmt.Fprintf(out, "  Built:      %s\n", buildTime)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/sanger-rename/config.toml)")
	pf.StringVar(&f.vendor, "vendor", "", "skip vendor selection: sangon, ruibio or genewiz")
	pf.StringVar(&f.date, "date", "", "capture date stamped on every file (YYYY-MM-DD); still adjustable in the TUI")
	pf.StringVar(&f.logFile, "log-file", "", "write debug log entries to this file")
	pf.BoolVar(&f.verbose, "verbose", false, "include debug entries in the log file")
	rootCmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "show what would be renamed without renaming")
	rootCmd.Flags().StringVar(&f.opLog, "op-log", "", "append completed renames to this file")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func getLongDescription() string {
	return ui.FormatASCIIHeader() + "\n\n" +
		"sanger-rename standardizes Sanger sequencing result files from Sangon, Ruibio\n" +
		"and Genewiz to YYMMDD.template.primer.ext. Directories are searched for\n" +
		"sequencing files; a TUI walks through primer and template overrides and the\n" +
		"capture date before anything is renamed."
}

// loadSettings merges the config file with the flags that were set explicitly
func loadSettings(cmd *cobra.Command, f *flags) (settings, error) {
	cfg, err := config.Load(f.cfgFile)
	if err != nil {
		return settings{}, err
	}

	s := settings{
		dryRun:     cfg.Commit.DryRun,
		opLog:      cfg.Commit.OperationLog,
		logFile:    cfg.Log.File,
		verbose:    cfg.Log.Verbose,
		extensions: cfg.Wizard.Extensions,
	}
	s.vendor, s.hasVendor, err = cfg.Vendor()
	if err != nil {
		return settings{}, err
	}

	changed := cmd.Flags().Changed
	if changed("vendor") {
		v, err := sanger.ParseVendor(f.vendor)
		if err != nil {
			return settings{}, err
		}
		s.vendor, s.hasVendor = v, true
	}
	if f.date != "" {
		s.date, err = time.ParseInLocation(dateLayout, f.date, time.Local)
		if err != nil {
			return settings{}, fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", f.date, err)
		}
	}
	if changed("dry-run") {
		s.dryRun = f.dryRun
	}
	if changed("op-log") {
		s.opLog = f.opLog
	}
	if changed("log-file") {
		s.logFile = f.logFile
	}
	if changed("verbose") {
		s.verbose = f.verbose
	}
	if len(s.extensions) == 0 {
		s.extensions = registry.DefaultExtensions
	}
	return s, nil
}

// collectPaths expands directories and rejects an empty selection
func collectPaths(args []string, s settings) ([]string, error) {
	paths, err := registry.ExpandPaths(args, s.extensions)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no sequencing files found (extensions: %v)", s.extensions)
	}
	return paths, nil
}

func runWizard(cmd *cobra.Command, f *flags, args []string) error {
	s, err := loadSettings(cmd, f)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{Path: s.logFile, Verbose: s.verbose})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	paths, err := collectPaths(args, s)
	if err != nil {
		return err
	}
	logger.Info("session started",
		zap.Int("files", len(paths)),
		zap.Bool("dry_run", s.dryRun),
		zap.String("version", version))

	committer := renamer.New(renamer.Config{DryRun: s.dryRun, LogPath: s.opLog}, logger)
	wiz := wizard.New(paths, wizard.Options{
		Committer: committer,
		Logger:    logger,
		Date:      s.date,
	})
	if s.hasVendor {
		if err := wiz.SelectVendor(s.vendor); err != nil {
			return err
		}
	}

	p := tea.NewProgram(ui.NewModel(wiz), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	m := finalModel.(ui.Model)
	result, committed := m.Wizard().Result()
	if !committed {
		logger.Info("session ended without renaming")
		return nil
	}

	vendor, _ := m.Wizard().SelectedVendor()
	if err := reporter.Write(cmd.OutOrStdout(), reporter.Report{
		Timestamp: time.Now(),
		Vendor:    vendor.String(),
		Rows:      m.Wizard().Preview(),
		Result:    &result,
	}); err != nil {
		return err
	}

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d files could not be renamed", result.Failed, len(paths))
	}
	return nil
}

func runPreview(cmd *cobra.Command, f *flags, args []string) error {
	s, err := loadSettings(cmd, f)
	if err != nil {
		return err
	}
	if !s.hasVendor {
		return errors.New("preview needs a vendor: pass --vendor or set [wizard] vendor in the config")
	}

	logger, err := logging.New(logging.Options{Path: s.logFile, Verbose: s.verbose})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	paths, err := collectPaths(args, s)
	if err != nil {
		return err
	}

	reg := registry.New()
	reg.Load(paths, s.vendor)
	if !s.date.IsZero() {
		reg.StampDate(s.date)
	}

	// A dry run reports the collisions a real commit would hit
	now := time.Now()
	result := renamer.New(renamer.Config{DryRun: true}, logger).Commit(reg.Files(), now)

	return reporter.Write(cmd.OutOrStdout(), reporter.Report{
		Timestamp: now,
		Vendor:    s.vendor.String(),
		Rows:      reg.Preview(now),
		Result:    &result,
	})
}
