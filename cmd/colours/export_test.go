package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/colourgrid/internal/styles"
)

func TestExportWritesFrames(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	testChdir(t, t.TempDir())

	flagWidth, flagHeight = 64, 48
	flagFrames = 3
	flagOutDir = dir
	flagExportMode = styles.ModeStripes
	flagSeed = 1
	flagConfig = ""

	if err := runExport(exportCmd, nil); err != nil {
		t.Fatalf("runExport() failed: %v", err)
	}

	for _, name := range []string{"frame_0000.png", "frame_0001.png", "frame_0002.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "frame_0003.png")); !os.IsNotExist(err) {
		t.Error("export wrote more frames than requested")
	}
}

func TestExportRejectsBadInput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	testChdir(t, t.TempDir())
	flagConfig = ""
	flagOutDir = t.TempDir()
	flagFrames = 1

	tests := []struct {
		name string
		w, h int
		mode string
	}{
		{"zero size", 0, 10, ""},
		{"unknown mode", 64, 48, "plaid"},
		{"grid does not fit", 4, 4, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flagWidth, flagHeight, flagExportMode = tc.w, tc.h, tc.mode
			if err := runExport(exportCmd, nil); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestExportWarnsOnUnknownConfigMode(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	testChdir(t, t.TempDir())

	path := filepath.Join(t.TempDir(), "colours.yaml")
	if err := os.WriteFile(path, []byte("animation:\n  mode: plaid\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var buf bytes.Buffer
	logOutput = &buf
	t.Cleanup(func() {
		logOutput = os.Stderr
		flagConfig = ""
	})

	flagConfig = path
	flagWidth, flagHeight = 64, 48
	flagFrames = 1
	flagOutDir = t.TempDir()
	flagExportMode = ""

	if err := runExport(exportCmd, nil); err != nil {
		t.Fatalf("runExport() failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "unknown mode") || !strings.Contains(out, "plaid") {
		t.Errorf("fallback should be logged, got %q", out)
	}
	if _, err := os.Stat(filepath.Join(flagOutDir, "frame_0000.png")); err != nil {
		t.Errorf("fallback mode should still export: %v", err)
	}
}
