package credentials

import (
	"os"
	"testing"
)

func TestSaveLoadClear(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	token, err := Load()
	if err != nil {
		t.Fatalf("Load() with no credential error = %v", err)
	}
	if token != "" {
		t.Errorf("Load() = %q, want empty", token)
	}

	if err := Save("tok-123"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	token, err = Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if token != "tok-123" {
		t.Errorf("Load() = %q, want tok-123", token)
	}

	path, err := TokenPath()
	if err != nil {
		t.Fatalf("TokenPath() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat credential: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("credential mode = %v, want 0600", info.Mode().Perm())
	}

	if err := Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if token, _ := Load(); token != "" {
		t.Errorf("Load() after Clear() = %q, want empty", token)
	}

	// Clearing again is not an error.
	if err := Clear(); err != nil {
		t.Errorf("second Clear() error = %v", err)
	}
}
