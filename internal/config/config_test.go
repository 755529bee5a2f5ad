package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != Default() {
		t.Errorf("settings = %+v, want defaults", s)
	}
}

func TestLoadFillsPartialSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	body := "window_width: 800\nchime: true\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.WindowWidth != 800 {
		t.Errorf("WindowWidth = %d, want 800", s.WindowWidth)
	}
	if !s.Chime {
		t.Error("Chime = false, want true")
	}
	if s.WindowHeight != WindowHeight || s.ChimeFreq != ChimeFreq {
		t.Errorf("unset fields not defaulted: %+v", s)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(":\n\t bad"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err == nil {
		t.Fatal("Load of corrupt file succeeded")
	}
	if s != Default() {
		t.Errorf("settings on error = %+v, want defaults", s)
	}
}
