package ui

// Package ui contains the Fyne-based user interface for the application.
// It draws the lottery slip, wires the generate button to the number picker,
// animates each new draw and hands screenshots to the capture service.
// All UI strings are localized via Localization.
