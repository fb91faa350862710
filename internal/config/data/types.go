// Package data provides configuration data types for the tgv application.
package data

// Flags represents CLI command-line flags for the tgv application.
type Flags struct {
	Delimiter   *string // Field delimiter (defaults to tab)
	LogLevel    *string // Log level (e.g. debug, info, warn, error)
	LogFile     *string // Path to log file
	Watch       *bool   // Reload the file when it changes on disk
	LongPressMs *int    // Long-press delay in milliseconds
	SortColumn  *string // Column to sort by on startup
}

// NewFlags creates a new Flags instance with all pointer fields initialized.
// All pointers are allocated but their values are not set.
func NewFlags() *Flags {
	return &Flags{
		Delimiter:   new(string),
		LogLevel:    new(string),
		LogFile:     new(string),
		Watch:       new(bool),
		LongPressMs: new(int),
		SortColumn:  new(string),
	}
}

// UI represents user interface configuration settings.
type UI struct {
	EnableMouse bool   `yaml:"enableMouse"`
	Menuless    bool   `yaml:"menuless"`
	Theme       string `yaml:"theme"`
}

// Logger represents logging configuration settings.
type Logger struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}
