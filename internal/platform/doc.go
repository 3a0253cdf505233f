package platform

// Package platform contains OS/platform integration: writing to the clipboard
// through a running Fyne app or, for headless use, through the system
// clipboard with a bounded wait.
