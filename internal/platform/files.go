package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
	OSIOS     = "ios"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
	AndroidAM      = "am"
)

// Storage locations
const (
	AndroidScreenshotsDir = "/sdcard/DCIM/Screenshots"
	PicturesDirName       = "Pictures"
	ScreenshotsDirName    = "Screenshots"
	writeProbePattern     = ".lotto645-probe-*"
)

// ErrStoragePermission is returned when the app may not write to the photo directory
var ErrStoragePermission = errors.New("storage permission denied")

// runCommand executes an external command; replaced in tests
var runCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// IsAndroid reports whether the process runs on Android.
// Fyne Android apps run as libdist.so, so environment hints are checked too.
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		os.Getenv("ANDROID_STORAGE") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetScreenshotsDir returns the directory where saved tickets show up in the photo library
func GetScreenshotsDir() (string, error) {
	if IsAndroid() {
		// External storage DCIM so the gallery picks files up after a media scan
		return AndroidScreenshotsDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, PicturesDirName, ScreenshotsDirName), nil
}

// EnsureWritable creates dirPath if needed and probes that a file can be written there.
// Permission failures are reported as ErrStoragePermission.
func EnsureWritable(dirPath string) error {
	if dirPath == "" {
		return fmt.Errorf("directory path is empty")
	}

	if err := CreateDirectoryIfNotExists(dirPath); err != nil {
		if errors.Is(err, os.ErrPermission) {
			return fmt.Errorf("%w: %s", ErrStoragePermission, dirPath)
		}
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}

	probe, err := os.CreateTemp(dirPath, writeProbePattern)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return fmt.Errorf("%w: %s", ErrStoragePermission, dirPath)
		}
		return fmt.Errorf("failed to write to %s: %w", dirPath, err)
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)

	return nil
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %v", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	if IsAndroid() {
		return openImageAndroid(absPath)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return runCommand(OpenCommand, absPath)
	case OSWindows:
		return runCommand(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath)
	case OSLinux:
		return runCommand(XDGOpenCommand, absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openImageAndroid tries the gallery first, then a generic image viewer intent
func openImageAndroid(filePath string) error {
	attempts := [][]string{
		{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + filePath, "-t", "image/jpeg"},
		{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + filePath, "-t", "image/*"},
		{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + filePath},
	}

	for _, args := range attempts {
		if err := runCommand(AndroidAM, args...); err == nil {
			return nil
		}
	}

	return fmt.Errorf("failed to open image: no suitable app found")
}

// OpenAppSettings opens the system settings page of the app so the user can
// grant storage permission after declining it permanently
func OpenAppSettings(appID string) error {
	if !IsAndroid() {
		return fmt.Errorf("app settings are only available on android")
	}

	err := runCommand(AndroidAM, "start", "-a", "android.settings.APPLICATION_DETAILS_SETTINGS", "-d", "package:"+appID)
	if err == nil {
		return nil
	}

	// Fall back to the generic settings screen
	if err := runCommand(AndroidAM, "start", "-a", "android.settings.SETTINGS"); err != nil {
		return fmt.Errorf("failed to open settings: %w", err)
	}
	return nil
}

// NotifyMediaScanner notifies Android media scanner about new media files
// This makes saved tickets appear in the Gallery app
func NotifyMediaScanner(filePath string) error {
	if !IsAndroid() {
		return nil
	}

	// Run in background so the save flow is not blocked by the broadcast
	go func() {
		if err := runCommand(AndroidAM, "broadcast", "-a", "android.intent.action.MEDIA_SCANNER_SCAN_FILE", "-d", "file://"+filePath); err != nil {
			fmt.Printf("Failed to notify media scanner about %s: %v\n", filePath, err)
		}
	}()

	return nil
}
