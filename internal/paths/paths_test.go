package paths

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfigDirUsesHome(t *testing.T) {
	t.Setenv("HOME", filepath.Join("/tmp", "test-home"))
	t.Setenv("DAYTASK_CONFIG_DIR", "")

	dir, err := DefaultConfigDir()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := filepath.Join("/tmp", "test-home", ".config", "daytask")
	if dir != expected {
		t.Fatalf("expected %s, got %s", expected, dir)
	}
}

func TestDefaultConfigDirOverride(t *testing.T) {
	t.Setenv("DAYTASK_CONFIG_DIR", "/srv/daytask")

	dir, err := DefaultConfigDir()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if dir != "/srv/daytask" {
		t.Fatalf("expected /srv/daytask, got %s", dir)
	}
}

func TestResolveWithDefault(t *testing.T) {
	t.Run("returns override when provided", func(t *testing.T) {
		result, err := ResolveWithDefault("/custom/path", DefaultConfigDir)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result != "/custom/path" {
			t.Fatalf("expected /custom/path, got %s", result)
		}
	})

	t.Run("falls back when empty", func(t *testing.T) {
		t.Setenv("HOME", filepath.Join("/tmp", "test-home"))
		t.Setenv("DAYTASK_CONFIG_DIR", "")

		result, err := ResolveWithDefault("", DefaultConfigDir)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		expected := filepath.Join("/tmp", "test-home", ".config", "daytask")
		if result != expected {
			t.Fatalf("expected %s, got %s", expected, result)
		}
	})
}
