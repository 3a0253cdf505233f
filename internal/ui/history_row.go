package ui

import (
	"fmt"
	"image/color"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/url-shortener/internal/model"
)

// parseLink parses a short URL for a hyperlink; nil when it cannot be opened
func parseLink(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return nil
	}
	return u
}

// HistoryRow represents one entry of the session history
type HistoryRow struct {
	widget.BaseWidget

	entry        model.HistoryEntry
	localization *Localization

	// UI components
	originalLabel *widget.Label
	shortLink     *widget.Hyperlink
	copyBtn       *widget.Button

	// Callbacks
	onCopy func(shortURL string)
}

// NewHistoryRow creates a new history row widget
func NewHistoryRow(entry model.HistoryEntry, localization *Localization) *HistoryRow {
	hr := &HistoryRow{
		entry:        entry,
		localization: localization,
	}
	hr.ExtendBaseWidget(hr)
	hr.createUI()
	hr.updateFromEntry()
	return hr
}

// SetOnCopy sets the copy action callback
func (hr *HistoryRow) SetOnCopy(onCopy func(shortURL string)) {
	hr.onCopy = onCopy
}

// UpdateEntry updates the row with another history entry
func (hr *HistoryRow) UpdateEntry(entry model.HistoryEntry) {
	hr.entry = entry
	hr.updateFromEntry()
	hr.Refresh()
}

// createUI creates the UI components
func (hr *HistoryRow) createUI() {
	hr.originalLabel = widget.NewLabel("")
	hr.originalLabel.Truncation = fyne.TextTruncateEllipsis

	hr.shortLink = widget.NewHyperlink("", nil)

	// History rows always read "Copy"; only the result row shows "Copied!"
	hr.copyBtn = widget.NewButton(hr.localization.GetText(KeyCopy), func() {
		if hr.onCopy != nil {
			hr.onCopy(hr.entry.ShortURL)
		}
	})
	hr.copyBtn.Importance = widget.HighImportance
}

// updateFromEntry updates UI components from the current entry
func (hr *HistoryRow) updateFromEntry() {
	original := hr.entry.GetDisplayOriginal(OriginalURLMaxLen)
	if original == "" {
		original = DashPlaceholder
	}
	hr.originalLabel.SetText(fmt.Sprintf(OriginalLabelFormat, hr.localization.GetText(KeyOriginal), original))

	hr.shortLink.SetText(hr.entry.ShortURL)
	hr.shortLink.SetURL(parseLink(hr.entry.ShortURL))

	hr.copyBtn.SetText(hr.localization.GetText(KeyCopy))
}

// CreateRenderer creates the widget renderer
func (hr *HistoryRow) CreateRenderer() fyne.WidgetRenderer {
	return &historyRowRenderer{row: hr}
}

// historyRowRenderer renders the history row widget
type historyRowRenderer struct {
	row    *HistoryRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *historyRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *historyRowRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	size := r.layout.MinSize()
	if size.Height < HistoryRowMinH {
		size.Height = HistoryRowMinH
	}
	return size
}

// Refresh refreshes the renderer
func (r *historyRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *historyRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *historyRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *historyRowRenderer) createLayout() {
	hr := r.row

	// Fixed button width keeps rows aligned regardless of language
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(CopyButtonWidth, hr.copyBtn.MinSize().Height))
	copyCell := container.NewCenter(container.NewStack(spacer, hr.copyBtn))

	texts := container.NewVBox(hr.originalLabel, hr.shortLink)

	r.layout = container.NewVBox(
		container.NewBorder(nil, nil, nil, copyCell, texts),
		widget.NewSeparator(),
	)
}
