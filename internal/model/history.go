package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ShortenResult is the outcome of the latest successful submission
type ShortenResult struct {
	OriginalURL string `json:"original_url"`
	ShortURL    string `json:"short_url"`
}

// HistoryEntry is one successful shortening kept for the session.
// Entries are never modified after creation.
type HistoryEntry struct {
	ID          string    `json:"id"`
	OriginalURL string    `json:"original_url"`
	ShortURL    string    `json:"short_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewHistoryEntry creates a history entry with a fresh ID
func NewHistoryEntry(originalURL, shortURL string, createdAt time.Time) HistoryEntry {
	return HistoryEntry{
		ID:          uuid.New().String(),
		OriginalURL: originalURL,
		ShortURL:    shortURL,
		CreatedAt:   createdAt,
	}
}

// Result returns the entry as a ShortenResult
func (e HistoryEntry) Result() *ShortenResult {
	return &ShortenResult{OriginalURL: e.OriginalURL, ShortURL: e.ShortURL}
}

// GetDisplayOriginal returns the original URL on one line, shortened to
// maxLen runes with an ellipsis when longer. maxLen <= 0 disables truncation.
func (e HistoryEntry) GetDisplayOriginal(maxLen int) string {
	s := strings.Join(strings.Fields(e.OriginalURL), " ")
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}
