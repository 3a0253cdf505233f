package controller

// Package controller implements the submission controller: it owns the
// client state, validates and submits URLs through a shortener.Shortener,
// copies short URLs to the clipboard and resets the copied flag after a
// delay. Every state change goes through model.Reduce and is pushed to a
// single subscriber, so any presenter (Fyne window, CLI) can render it.
