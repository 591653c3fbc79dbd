package settings

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kridsada-n/acctrack/pkg/types"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func TestStorageSettingsFirstRun(t *testing.T) {
	m := newTestManager(t)

	s, err := m.StorageSettings()
	if err != nil {
		t.Fatalf("StorageSettings: %v", err)
	}
	if s != nil {
		t.Fatalf("first run returned settings: %+v", s)
	}
}

func TestStorageSettingsRoundTrip(t *testing.T) {
	m := newTestManager(t)

	in := &types.StorageSettings{
		StorageType:    types.StorageTypeSQLite,
		AutoBackup:     true,
		BackupInterval: 12,
		DatabasePath:   "/data/books",
	}
	if err := m.SaveStorageSettings(in); err != nil {
		t.Fatalf("SaveStorageSettings: %v", err)
	}

	out, err := m.StorageSettings()
	if err != nil {
		t.Fatalf("StorageSettings: %v", err)
	}
	if *out != *in {
		t.Fatalf("round-trip: got %+v, want %+v", out, in)
	}
}

func TestSaveStorageSettingsValidation(t *testing.T) {
	m := newTestManager(t)

	err := m.SaveStorageSettings(&types.StorageSettings{StorageType: "carrier-pigeon"})
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("unknown type: err = %v", err)
	}

	err = m.SaveStorageSettings(&types.StorageSettings{
		StorageType: types.StorageTypeSQLite,
		AutoBackup:  true,
		// Interval out of bounds.
		BackupInterval: 500,
	})
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("bad interval: err = %v", err)
	}

	if s, err := m.StorageSettings(); err != nil || s != nil {
		t.Fatalf("rejected save left a document: %+v, %v", s, err)
	}
}

func TestRecentFoldersOrderAndDedup(t *testing.T) {
	m := newTestManager(t)

	for _, f := range []string{"/a", "/b", "/c"} {
		if err := m.AddRecentFolder(f); err != nil {
			t.Fatalf("AddRecentFolder(%s): %v", f, err)
		}
	}

	folders, err := m.RecentFolders()
	if err != nil {
		t.Fatalf("RecentFolders: %v", err)
	}
	want := []string{"/c", "/b", "/a"}
	if len(folders) != 3 {
		t.Fatalf("got %d folders", len(folders))
	}
	for i := range want {
		if folders[i] != want[i] {
			t.Fatalf("order: got %v, want %v", folders, want)
		}
	}

	// Re-adding moves to the front without duplicating.
	if err := m.AddRecentFolder("/a"); err != nil {
		t.Fatal(err)
	}
	folders, _ = m.RecentFolders()
	if len(folders) != 3 || folders[0] != "/a" || folders[1] != "/c" {
		t.Fatalf("dedup: %v", folders)
	}
}

func TestRecentFoldersBounded(t *testing.T) {
	m := newTestManager(t)

	for i := 0; i < types.RecentFoldersLimit+5; i++ {
		if err := m.AddRecentFolder(fmt.Sprintf("/folder-%d", i)); err != nil {
			t.Fatal(err)
		}
	}

	folders, err := m.RecentFolders()
	if err != nil {
		t.Fatalf("RecentFolders: %v", err)
	}
	if len(folders) != types.RecentFoldersLimit {
		t.Fatalf("got %d folders, want %d", len(folders), types.RecentFoldersLimit)
	}
	if folders[0] != fmt.Sprintf("/folder-%d", types.RecentFoldersLimit+4) {
		t.Fatalf("most recent not first: %v", folders)
	}
}

func TestPreferredLocation(t *testing.T) {
	m := newTestManager(t)

	dir, firstRun, err := m.PreferredLocation("/default")
	if err != nil {
		t.Fatalf("PreferredLocation: %v", err)
	}
	if !firstRun || dir != "/default" {
		t.Fatalf("first run: dir=%q firstRun=%v", dir, firstRun)
	}

	// Settings without a custom path still fall back to the default.
	if err := m.SaveStorageSettings(types.DefaultStorageSettings()); err != nil {
		t.Fatal(err)
	}
	dir, firstRun, err = m.PreferredLocation("/default")
	if err != nil || firstRun || dir != "/default" {
		t.Fatalf("default path: dir=%q firstRun=%v err=%v", dir, firstRun, err)
	}

	s := types.DefaultStorageSettings()
	s.DatabasePath = "/custom/books"
	if err := m.SaveStorageSettings(s); err != nil {
		t.Fatal(err)
	}
	dir, firstRun, err = m.PreferredLocation("/default")
	if err != nil || firstRun || dir != "/custom/books" {
		t.Fatalf("custom path: dir=%q firstRun=%v err=%v", dir, firstRun, err)
	}
}
