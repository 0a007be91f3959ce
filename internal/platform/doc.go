package platform

// Package platform contains OS/platform integration glue: storage locations,
// write permission checks, the Android media scanner and OS open/settings.
