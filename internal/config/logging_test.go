package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLogFile(t *testing.T) {
	dir := t.TempDir()

	f, err := SetupLogFile(dir, 10)
	if err != nil {
		t.Fatalf("SetupLogFile: %v", err)
	}
	defer f.Close()

	name := filepath.Base(f.Name())
	if !strings.HasPrefix(name, logFilePrefix) || !strings.HasSuffix(name, ".log") {
		t.Errorf("log file name = %q", name)
	}
}

func TestCleanupOldLogsKeepsNewest(t *testing.T) {
	dir := t.TempDir()

	names := []string{
		logFilePrefix + "2026-08-01T00-00-00.log",
		logFilePrefix + "2026-08-02T00-00-00.log",
		logFilePrefix + "2026-08-03T00-00-00.log",
		"unrelated.log",
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatalf("WriteFile(%s): %v", name, err)
		}
	}

	if err := cleanupOldLogs(dir, 2); err != nil {
		t.Fatalf("cleanupOldLogs: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, names[0])); !os.IsNotExist(err) {
		t.Error("oldest log file should be removed")
	}
	for _, name := range []string{names[1], names[2], "unrelated.log"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s should survive: %v", name, err)
		}
	}
}
