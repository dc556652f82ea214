package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lavamaze.log")

	closer, err := Setup(path, "debug")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	log.WithField("session", "abc").Debug("hello from test")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(content), "hello from test") {
		t.Errorf("log file %q missing message", content)
	}
	if !strings.Contains(string(content), "session=abc") {
		t.Errorf("log file %q missing field", content)
	}
}

func TestSetupDiscard(t *testing.T) {
	closer, err := Setup("", "info")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if log.GetLevel() != log.InfoLevel {
		t.Errorf("level = %v, want info", log.GetLevel())
	}
}

func TestSetupBadLevel(t *testing.T) {
	if _, err := Setup("", "loud"); err == nil {
		t.Error("Setup with unknown level should fail")
	}
}
