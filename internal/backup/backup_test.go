package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func writeStore(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "medpet.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write store: %v", err)
	}
	return path
}

func TestCreateBackup(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStore(t, dir, `{"version":1}`)

	mgr := NewManager(storePath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("backup not readable: %v", err)
	}
	if string(data) != `{"version":1}` {
		t.Errorf("backup content mismatch: %s", data)
	}
}

func TestCreateBackup_MissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected an error backing up a missing store")
	}
}

func TestListBackups_EmptyWithoutDirectory(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "medpet.json"))
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStore(t, dir, `{"version":1,"state":"good"}`)

	mgr := NewManager(storePath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Simulate store damage, then restore.
	if err := os.WriteFile(storePath, []byte("corrupted"), 0600); err != nil {
		t.Fatalf("failed to damage store: %v", err)
	}
	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	data, _ := os.ReadFile(storePath)
	if string(data) != `{"version":1,"state":"good"}` {
		t.Errorf("restore did not bring back the backup content: %s", data)
	}

	// The damaged store must itself have been backed up before restore.
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("expected a safety copy of the damaged store, got %d backups", len(backups))
	}
}

func TestRestoreBackup_MissingBackup(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStore(t, dir, `{}`)

	mgr := NewManager(storePath)
	if err := mgr.RestoreBackup(filepath.Join(dir, "nope.json")); err == nil {
		t.Error("expected an error restoring a missing backup")
	}
}
