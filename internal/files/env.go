package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultFileName is the log file created under the user's home directory.
	DefaultFileName = ".ttrk.json"
)

// ResolveLogPath determines where ttrk keeps its log, defaulting to ~/.ttrk.json.
// A non-empty override wins and may start with ~.
func ResolveLogPath(override string) (string, error) {
	override = strings.TrimSpace(override)
	if override != "" {
		return ExpandHome(override)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultFileName), nil
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
// Other paths, including "~user" forms, are returned unchanged.
func ExpandHome(input string) (string, error) {
	if input == "~" || strings.HasPrefix(input, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
