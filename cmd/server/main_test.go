package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestProfileFromEnv_Missing(t *testing.T) {
	t.Setenv("APP_PROFILE", "")

	_, err := profileFromEnv()
	if err == nil {
		t.Fatal("expected error for missing APP_PROFILE")
	}
	for _, p := range shippedProfiles {
		if !strings.Contains(err.Error(), p) {
			t.Errorf("error %q does not list profile %q", err, p)
		}
	}
}

func TestProfileFromEnv_Set(t *testing.T) {
	t.Setenv("APP_PROFILE", "dev")

	got, err := profileFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "dev" {
		t.Errorf("profile = %q, want %q", got, "dev")
	}
}

func TestShippedProfiles_HaveConfigFiles(t *testing.T) {
	t.Parallel()

	for _, p := range shippedProfiles {
		path := filepath.Join("..", "..", "configs", p+".yaml")
		if _, err := os.Stat(path); err != nil {
			t.Errorf("profile %q listed but %s missing: %v", p, path, err)
		}
	}
}
