package config

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
)

// appDataDir takes goos so tests can cover every platform branch.
func appDataDir(goos, appName string, roaming bool) string {
	if appName == "" || appName == "." {
		return "."
	}

	appName = strings.TrimPrefix(appName, ".")
	upper := string(unicode.ToUpper(rune(appName[0]))) + appName[1:]
	lower := string(unicode.ToLower(rune(appName[0]))) + appName[1:]

	var homeDir string
	if usr, err := user.Current(); err == nil {
		homeDir = usr.HomeDir
	}
	if homeDir == "" {
		homeDir = os.Getenv("HOME")
	}

	switch goos {
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		if roaming || appData == "" {
			appData = os.Getenv("APPDATA")
		}
		if appData != "" {
			return filepath.Join(appData, upper)
		}
	case "darwin":
		if homeDir != "" {
			return filepath.Join(homeDir, "Library", "Application Support", upper)
		}
	case "plan9":
		if homeDir != "" {
			return filepath.Join(homeDir, lower)
		}
	default:
		if homeDir != "" {
			return filepath.Join(homeDir, "."+lower)
		}
	}

	return "."
}

// AppDataDir returns an operating system specific directory for appName,
// the place the command line tools look for their config file.
//
// Example results:
//
//	dir := AppDataDir("shasum", false)
//	 POSIX (Linux/BSD): ~/.shasum
//	 Mac OS: $HOME/Library/Application Support/Shasum
//	 Windows: %LOCALAPPDATA%\Shasum
//	 Plan 9: $home/shasum
func AppDataDir(appName string, roaming bool) string {
	return appDataDir(runtime.GOOS, appName, roaming)
}
