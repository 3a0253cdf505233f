package ui

// Package ui contains the Fyne-based desktop user interface for the URL shortener.
// It forwards input, submit and copy actions to the submission controller and
// renders each state snapshot it publishes: the error panel, the latest short
// URL, and the session history. All UI strings are localized via Localization.
