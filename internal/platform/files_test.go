package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetScreenshotsDir(t *testing.T) {
	if IsAndroid() {
		t.Skip("desktop layout only")
	}

	dir, err := GetScreenshotsDir()
	if err != nil {
		t.Fatalf("Failed to get screenshots directory: %v", err)
	}

	if filepath.Base(dir) != ScreenshotsDirName {
		t.Errorf("Expected directory to end with %q, got: %s", ScreenshotsDirName, dir)
	}
	if filepath.Base(filepath.Dir(dir)) != PicturesDirName {
		t.Errorf("Expected parent directory %q, got: %s", PicturesDirName, dir)
	}
}

func TestGetScreenshotsDir_Android(t *testing.T) {
	t.Setenv("ANDROID_DATA", "/data")

	dir, err := GetScreenshotsDir()
	if err != nil {
		t.Fatalf("Failed to get screenshots directory: %v", err)
	}
	if dir != AndroidScreenshotsDir {
		t.Errorf("Expected %s, got %s", AndroidScreenshotsDir, dir)
	}
}

func TestEnsureWritable(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "shots")

	if err := EnsureWritable(dir); err != nil {
		t.Fatalf("EnsureWritable failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Probe file was left behind: %v", entries)
	}
}

func TestEnsureWritable_Empty(t *testing.T) {
	if err := EnsureWritable(""); err == nil {
		t.Error("Expected error for empty path")
	}
}

func TestEnsureWritable_ReadOnly(t *testing.T) {
	if runtime.GOOS == OSWindows || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}

	dir := t.TempDir()
	if err := os.Chmod(dir, 0555); err != nil {
		t.Fatalf("chmod failed: %v", err)
	}
	defer os.Chmod(dir, 0755)

	err := EnsureWritable(dir)
	if !errors.Is(err, ErrStoragePermission) {
		t.Errorf("Expected ErrStoragePermission, got %v", err)
	}
}

func TestOpenFileWithDefaultApp_NonExistentFile(t *testing.T) {
	err := OpenFileWithDefaultApp(filepath.Join(t.TempDir(), "missing.jpg"))
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_Android(t *testing.T) {
	t.Setenv("ANDROID_ROOT", "/system")

	var calls [][]string
	orig := runCommand
	runCommand = func(name string, args ...string) error {
		calls = append(calls, append([]string{name}, args...))
		if len(calls) < 2 {
			return errors.New("no gallery")
		}
		return nil
	}
	defer func() { runCommand = orig }()

	file := filepath.Join(t.TempDir(), "ticket.jpg")
	if err := os.WriteFile(file, []byte("jpg"), DefaultFilePermissions); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if err := OpenFileWithDefaultApp(file); err != nil {
		t.Fatalf("Expected second attempt to succeed, got %v", err)
	}
	if len(calls) != 2 {
		t.Fatalf("Expected 2 attempts, got %d", len(calls))
	}
	if calls[1][0] != AndroidAM || !strings.Contains(strings.Join(calls[1], " "), "image/*") {
		t.Errorf("Unexpected fallback command: %v", calls[1])
	}
}

func TestOpenAppSettings(t *testing.T) {
	t.Setenv("ANDROID_DATA", "/data")

	var calls []string
	orig := runCommand
	runCommand = func(name string, args ...string) error {
		calls = append(calls, strings.Join(args, " "))
		return nil
	}
	defer func() { runCommand = orig }()

	if err := OpenAppSettings("com.example.app"); err != nil {
		t.Fatalf("OpenAppSettings failed: %v", err)
	}
	if len(calls) != 1 || !strings.Contains(calls[0], "package:com.example.app") {
		t.Errorf("Unexpected commands: %v", calls)
	}
}

func TestNotifyMediaScanner_Desktop(t *testing.T) {
	if IsAndroid() {
		t.Skip("desktop only")
	}

	called := false
	orig := runCommand
	runCommand = func(string, ...string) error {
		called = true
		return nil
	}
	defer func() { runCommand = orig }()

	if err := NotifyMediaScanner("/tmp/x.jpg"); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
	if called {
		t.Error("Media scanner must not run off Android")
	}
}
