// Package credentials stores the session token between invocations.
//
// The token lives in a single file under the daytask config directory.
// A 401 from the server means the token is stale; callers clear it and
// ask the user to sign in again.
package credentials

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/amonks/daytask/internal/paths"
)

const tokenFile = "token"

// TokenPath returns the path of the stored credential.
func TokenPath() (string, error) {
	dir, err := paths.DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, tokenFile), nil
}

// Load returns the stored token, or "" if none is stored.
func Load() (string, error) {
	path, err := TokenPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read credential: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save stores the token, creating the config directory if needed. The
// file is readable only by the owner.
func Save(token string) error {
	path, err := TokenPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write credential: %w", err)
	}
	return nil
}

// Clear removes the stored token. Clearing an absent token is not an
// error.
func Clear() error {
	path, err := TokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credential: %w", err)
	}
	return nil
}
