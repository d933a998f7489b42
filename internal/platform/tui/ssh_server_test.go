package tui

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

func testServerConfig(t *testing.T) SSHServerConfig {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "runs.db")
	cfg.Logger = log.New(io.Discard)
	return cfg
}

func TestNewSSHServerHostKeyFailureOpensNoStore(t *testing.T) {
	cfg := testServerConfig(t)

	// A regular file where the key directory should go
	blocker := filepath.Join(filepath.Dir(cfg.DBPath), "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	cfg.HostKeyPath = filepath.Join(blocker, "host_key")

	if _, err := NewSSHServer(cfg); err == nil {
		t.Fatal("NewSSHServer() should fail when the host key directory cannot be created")
	}
	if _, err := os.Stat(cfg.DBPath); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("run database was opened before setup failed: stat err = %v", err)
	}
}

func TestSSHServerShutdownClosesStore(t *testing.T) {
	srv, err := NewSSHServer(testServerConfig(t))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.store == nil {
		t.Fatal("server should own a run database")
	}

	if _, err := srv.store.SaveRun(storage.RunRecord{Player: "alice", Score: 10}); err != nil {
		t.Fatalf("SaveRun() before shutdown failed: %v", err)
	}

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}
	if _, err := srv.store.SaveRun(storage.RunRecord{Player: "alice", Score: 20}); err == nil {
		t.Error("store should be closed once Shutdown returns")
	}
}
