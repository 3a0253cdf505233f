package model

// Package model defines the client state of the shortener: the submission
// phase, the current result and error, the session history, and the pure
// Reduce function that moves the state from one event to the next. Nothing
// here performs I/O, so every transition can be exercised without a UI.
