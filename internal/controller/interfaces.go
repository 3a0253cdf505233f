package controller

import (
	"context"

	"github.com/ytget/url-shortener/internal/model"
)

// Submitter defines the interface presenters use to drive the submission state machine.
type Submitter interface {
	SetUpdateCallback(func(model.State))
	State() model.State
	History() []model.HistoryEntry
	SetInput(text string)
	Submit(ctx context.Context, input string) model.State

	// Copy places text on the clipboard and raises the copied flag
	Copy(text string) error
}

var _ Submitter = (*Controller)(nil)
