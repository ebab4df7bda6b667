// Package paths resolves the directories daytask stores its files in.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the directory holding the global config file
// and the stored credential. DAYTASK_CONFIG_DIR overrides the default
// location under the home directory.
func DefaultConfigDir() (string, error) {
	return ResolveWithDefault(os.Getenv("DAYTASK_CONFIG_DIR"), homeConfigDir)
}

func homeConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "daytask"), nil
}

// WorkingDir returns the current working directory.
func WorkingDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return dir, nil
}

// ResolveWithDefault returns the override when set, otherwise the
// fallback's result.
func ResolveWithDefault(override string, fallback func() (string, error)) (string, error) {
	if override != "" {
		return override, nil
	}
	return fallback()
}
