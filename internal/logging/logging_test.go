package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultLogDir(t *testing.T) {
	dir := DefaultLogDir()
	if dir == "" {
		t.Fatal("DefaultLogDir returned empty string")
	}
	if !strings.Contains(dir, ".minigrep") || filepath.Base(dir) != "logs" {
		t.Errorf("DefaultLogDir should end with .minigrep/logs, got: %s", dir)
	}
}

func TestDefaultLogPath(t *testing.T) {
	path := DefaultLogPath()
	if filepath.Base(path) != "minigrep.log" {
		t.Errorf("DefaultLogPath should end with minigrep.log, got: %s", path)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got: %s", cfg.Level)
	}
	if cfg.MaxSizeMB != 10 {
		t.Errorf("expected MaxSizeMB 10, got: %d", cfg.MaxSizeMB)
	}
	if cfg.MaxFiles != 5 {
		t.Errorf("expected MaxFiles 5, got: %d", cfg.MaxFiles)
	}
	if cfg.FilePath != DefaultLogPath() {
		t.Errorf("expected FilePath %s, got: %s", DefaultLogPath(), cfg.FilePath)
	}
}

func TestDebugConfig(t *testing.T) {
	if cfg := DebugConfig(); cfg.Level != "debug" {
		t.Errorf("expected level 'debug', got: %s", cfg.Level)
	}
}

func TestSetup_WritesJSONToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "test.log")

	logger, cleanup, err := Setup(Config{
		Level:     "debug",
		FilePath:  logPath,
		MaxSizeMB: 1,
		MaxFiles:  3,
	})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	logger.Debug("search_started", slog.Int("query_len", 4))
	cleanup()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), `"msg":"search_started"`) {
		t.Errorf("expected JSON record in log, got: %s", content)
	}
	if !strings.Contains(string(content), `"query_len":4`) {
		t.Errorf("expected attribute in log, got: %s", content)
	}
}

func TestSetup_RespectsLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, cleanup, err := Setup(Config{Level: "warn", FilePath: logPath})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	logger.Info("dropped")
	logger.Warn("kept")
	cleanup()

	content, _ := os.ReadFile(logPath)
	if strings.Contains(string(content), "dropped") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(string(content), "kept") {
		t.Error("warn record should be written")
	}
}

func TestSetup_NoOutputsDiscards(t *testing.T) {
	logger, cleanup, err := Setup(Config{Level: "debug"})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	defer cleanup()

	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("logger without outputs should discard every level")
	}
}

func TestDiscard(t *testing.T) {
	if Discard().Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard logger should not be enabled")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"debug", "DEBUG"},
		{"DEBUG", "DEBUG"},
		{"info", "INFO"},
		{"warn", "WARN"},
		{"warning", "WARN"},
		{"Warning", "WARN"},
		{"error", "ERROR"},
	}

	for _, tc := range tests {
		level, err := ParseLevel(tc.input)
		if err != nil {
			t.Errorf("ParseLevel(%q) returned error: %v", tc.input, err)
			continue
		}
		if level.String() != tc.expected {
			t.Errorf("ParseLevel(%q) = %s, want %s", tc.input, level.String(), tc.expected)
		}
	}

	for _, bad := range []string{"", "trace", "verbose"} {
		if _, err := ParseLevel(bad); err == nil {
			t.Errorf("ParseLevel(%q) should fail", bad)
		}
	}
}

func TestSetup_RejectsUnknownLevel(t *testing.T) {
	if _, _, err := Setup(Config{Level: "verbose", FilePath: filepath.Join(t.TempDir(), "x.log")}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestRotatingWriter_SyncMakesDataVisible(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	w, err := NewRotatingWriter(logPath, 1, 3)
	if err != nil {
		t.Fatalf("failed to create writer: %v", err)
	}
	defer w.Close()

	testData := []byte(`{"level":"INFO","msg":"test"}` + "\n")
	n, err := w.Write(testData)
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if n != len(testData) {
		t.Errorf("expected %d bytes written, got %d", len(testData), n)
	}
	if err := w.Sync(); err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if string(content) != string(testData) {
		t.Errorf("expected %q, got %q", testData, content)
	}
}

func TestRotatingWriter_Rotates(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "minigrep.log")

	w, err := NewRotatingWriter(logPath, 1, 2)
	if err != nil {
		t.Fatalf("failed to create writer: %v", err)
	}
	defer w.Close()
	w.maxSize = 10

	// Each write exceeds the limit, so every write after the first rotates.
	for i := 0; i < 5; i++ {
		if _, err := fmt.Fprintf(w, "record-%d-padding\n", i); err != nil {
			t.Fatalf("write %d failed: %v", i, err)
		}
	}

	assertFile(t, logPath, "record-4-padding\n")
	assertFile(t, logPath+".1", "record-3-padding\n")
	assertFile(t, logPath+".2", "record-2-padding\n")
	if _, err := os.Stat(logPath + ".3"); !os.IsNotExist(err) {
		t.Errorf("expected at most 2 rotated files, found %s.3", logPath)
	}
}

func TestRotatingWriter_SharedFileRotatesOnce(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "minigrep.log")

	// Two writers stand in for two minigrep processes sharing a log file.
	w1, err := NewRotatingWriter(logPath, 1, 3)
	if err != nil {
		t.Fatalf("failed to create writer: %v", err)
	}
	defer w1.Close()
	w2, err := NewRotatingWriter(logPath, 1, 3)
	if err != nil {
		t.Fatalf("failed to create writer: %v", err)
	}
	defer w2.Close()
	w1.maxSize = 10
	w2.maxSize = 10

	mustWrite := func(w *RotatingWriter, s string) {
		t.Helper()
		if _, err := w.Write([]byte(s)); err != nil {
			t.Fatalf("write %q failed: %v", s, err)
		}
	}
	mustWrite(w1, "first-record-xx\n")
	mustWrite(w2, "second-record-x\n")
	mustWrite(w1, "third\n")  // rotates
	mustWrite(w2, "fourth\n") // sees the rotation and only reopens

	assertFile(t, logPath, "third\nfourth\n")
	assertFile(t, logPath+".1", "first-record-xx\nsecond-record-x\n")
	if _, err := os.Stat(logPath + ".2"); !os.IsNotExist(err) {
		t.Errorf("expected a single rotation, found %s.2", logPath)
	}
}

func TestRotatingWriter_WriteAfterClose(t *testing.T) {
	w, err := NewRotatingWriter(filepath.Join(t.TempDir(), "test.log"), 1, 1)
	if err != nil {
		t.Fatalf("failed to create writer: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second close should be a no-op, got: %v", err)
	}
	if _, err := w.Write([]byte("late")); err == nil {
		t.Error("expected error writing to closed writer")
	}
}

func assertFile(t *testing.T, path, want string) {
	t.Helper()
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	if string(got) != want {
		t.Errorf("%s: expected %q, got %q", filepath.Base(path), want, got)
	}
}
