package config

import (
	"os"
	"path/filepath"
)

const AppName = "tgv"

var (
	// AppConfigDir is ~/.config/tgv
	AppConfigDir string

	// AppStateDir is ~/.local/state/tgv
	AppStateDir string

	// AppConfigFile is ~/.config/tgv/tgv.yaml
	AppConfigFile string

	// AppThemeFile is ~/.config/tgv/theme.ini
	AppThemeFile string

	// AppLogFile is ~/.local/state/tgv/tgv.log
	AppLogFile string
)

// InitLocs initializes all application directory paths.
// It respects XDG environment variables if set.
func InitLocs() error {
	home := userHomeDir()

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(home, ".local", "state")
	}

	AppConfigDir = filepath.Join(configHome, AppName)
	AppStateDir = filepath.Join(stateHome, AppName)

	AppConfigFile = filepath.Join(AppConfigDir, "tgv.yaml")
	AppThemeFile = filepath.Join(AppConfigDir, "theme.ini")
	AppLogFile = filepath.Join(AppStateDir, "tgv.log")

	for _, dir := range []string{AppConfigDir, AppStateDir} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}

	return nil
}

// InitLogLoc ensures the log directory exists
func InitLogLoc() error {
	logDir := filepath.Dir(AppLogFile)
	return os.MkdirAll(logDir, 0700)
}

// userHomeDir returns the user's home directory
func userHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return home
}
