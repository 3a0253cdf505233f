package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// isMobileDevice checks if the app is running on a phone or tablet
func isMobileDevice() bool {
	device := fyne.CurrentDevice()
	return device != nil && device.IsMobile()
}

// newInputRow lays out the URL entry with its buttons. On mobile the entry
// takes its own line and the buttons sit below it as full-width touch targets.
func newInputRow(mobile bool, entry fyne.CanvasObject, settingsBtn, submitBtn fyne.CanvasObject) *fyne.Container {
	if !mobile {
		return container.NewBorder(nil, nil, settingsBtn, submitBtn, entry)
	}
	return container.NewVBox(
		entry,
		container.NewBorder(nil, nil, settingsBtn, nil, submitBtn),
	)
}
