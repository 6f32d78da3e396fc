package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "fitbook"

	// EnvPrefix prefixes every environment override (FITBOOK_STORE_BACKEND)
	EnvPrefix = "FITBOOK"

	// ConfigFileName is the ini file inside the application directory
	ConfigFileName = "config.ini"

	// LogFileName receives logs while the TUI owns the terminal
	LogFileName = "fitbook.log"
)

// Version is overridden at build time with -ldflags "-X ...application.Version=v1.2.3".
var Version = "0.1.0"

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the fitbook data directory, creating it on
// first use. FITBOOK_HOME overrides the location.
// Linux: ~/.config/fitbook (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\fitbook (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, nil
}

// ConfigPath returns the default location of config.ini.
func ConfigPath() (string, error) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, ConfigFileName), nil
}

func lazyLoad() {
	if home := os.Getenv(EnvPrefix + "_HOME"); home != "" {
		appDir = home
	} else {
		var (
			baseDir string
			err     error
		)

		switch runtime.GOOS {
		case "windows":
			// Windows: use AppData\Local (via UserCacheDir)
			baseDir, err = os.UserCacheDir()
		default:
			// Linux/others: use ~/.config (via UserConfigDir)
			baseDir, err = os.UserConfigDir()
		}

		if err != nil {
			errDir = fmt.Errorf("failed to get config directory: %w", err)

			return
		}

		appDir = filepath.Join(baseDir, AppName)
	}

	if err := os.MkdirAll(appDir, 0o700); err != nil {
		errDir = fmt.Errorf("failed to create %s: %w", appDir, err)
	}
}
