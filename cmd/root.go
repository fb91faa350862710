package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tgv/tgv/internal/config"
	"github.com/tgv/tgv/internal/config/data"
	"github.com/tgv/tgv/internal/model"
	"github.com/tgv/tgv/internal/view"
)

const (
	appName    = "tgv"
	appVersion = "0.1.0"
)

var (
	tgvFlags *data.Flags
	rootCmd  = &cobra.Command{
		Use:   appName + " FILE",
		Short: "A mouse-driven terminal viewer for tabular files",
		Long:  `tgv renders TSV and CSV files as an interactive grid: click a header to sort, click a row to select it, hold to highlight before selecting.`,
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, appVersion)
		},
	}
)

func init() {
	tgvFlags = data.NewFlags()
	initTgvFlags()
	rootCmd.AddCommand(versionCmd)
}

func initTgvFlags() {
	rootCmd.Flags().StringVarP(tgvFlags.Delimiter, "delimiter", "d", "", "Field delimiter (defaults to tab, or comma for .csv files)")
	rootCmd.Flags().StringVarP(tgvFlags.LogLevel, "logLevel", "l", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(tgvFlags.LogFile, "logFile", "", "Log file path")
	rootCmd.Flags().BoolVarP(tgvFlags.Watch, "watch", "w", false, "Reload when the file changes on disk")
	rootCmd.Flags().IntVar(tgvFlags.LongPressMs, "longPressMs", 0, "Long-press delay in milliseconds")
	rootCmd.Flags().StringVarP(tgvFlags.SortColumn, "sortColumn", "s", "", "Column name to sort by on startup")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}

	if err := config.InitLocs(); err != nil {
		return fmt.Errorf("failed to initialize locations: %w", err)
	}

	cfg := config.NewConfig()
	if err := cfg.Load(config.AppConfigFile, false); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Refine(tgvFlags); err != nil {
		return fmt.Errorf("failed to refine configuration: %w", err)
	}
	_ = cfg.Save(false)

	closer, err := initLogging(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		if closer != nil {
			_ = closer.Close()
		}
	}()

	m := model.NewTableData(path, delimiterFor(cfg, path))
	if cfg.Tgv.DefaultSort != "" {
		m.SetDefaultSort(cfg.Tgv.DefaultSort, true)
	}

	app := view.NewApp(cfg, appVersion)
	if err := app.Init(m); err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	slog.Info("starting", "version", appVersion, "file", path)

	return app.Run()
}

// initLogging routes slog to the configured log file. Logging to stderr
// would fight the TUI for the terminal.
func initLogging(cfg *config.Config) (io.Closer, error) {
	path := cfg.Tgv.Logger.File
	if path == "" {
		path = config.AppLogFile
	}
	if err := config.InitLogLoc(); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Tgv.Logger.Level)); err != nil {
		level = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: level,
	})))

	return f, nil
}

// delimiterFor picks the field delimiter: an explicit setting wins,
// otherwise .csv files get a comma and everything else a tab.
func delimiterFor(cfg *config.Config, path string) rune {
	if cfg.Tgv.Delimiter != config.DefaultDelimiter && cfg.Tgv.Delimiter != "" {
		return cfg.Tgv.FieldDelimiter()
	}
	if len(path) > 4 && path[len(path)-4:] == ".csv" {
		return ','
	}
	return cfg.Tgv.FieldDelimiter()
}
