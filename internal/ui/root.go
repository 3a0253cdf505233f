package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/ytget/url-shortener/internal/config"
	"github.com/ytget/url-shortener/internal/controller"
	"github.com/ytget/url-shortener/internal/model"
	"github.com/ytget/url-shortener/internal/shortener"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	ctrl         controller.Submitter
	backend      shortener.Configurable
	settings     *config.Settings
	localization *Localization

	// Input row
	titleLabel    *widget.Label
	subtitleLabel *widget.Label
	urlEntry      *widget.Entry
	shortenBtn    *widget.Button
	progress      *widget.ProgressBarInfinite

	// Error panel
	errorLabel     *widget.Label
	errorContainer *fyne.Container

	// Latest result
	resultLink      *widget.Hyperlink
	resultCopyBtn   *widget.Button
	resultContainer *fyne.Container

	// Session history
	historyTitle     *widget.Label
	historyList      *widget.List
	historyContainer *fyne.Container

	// Last rendered snapshot; only touched on the UI goroutine
	state model.State

	// runOnMain marshals UI updates onto the Fyne event loop
	runOnMain func(func())
	// runAsync starts blocking work off the event loop
	runAsync func(func())
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, ctrl controller.Submitter, backend shortener.Configurable, settings *config.Settings) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		ctrl:         ctrl,
		backend:      backend,
		settings:     settings,
		localization: localization,
		state:        ctrl.State(),
		runOnMain:    fyne.Do,
		runAsync:     func(f func()) { go f() },
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for state updates
	ui.ctrl.SetUpdateCallback(ui.onStateUpdate)

	ui.setupUI()
	ui.applyState(ui.state)

	log.Debug().Str("language", localization.GetCurrentLanguage()).Msg("RootUI initialized")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	ui.titleLabel = widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	ui.subtitleLabel = widget.NewLabelWithStyle(ui.localization.GetText(KeySubtitle), fyne.TextAlignCenter, fyne.TextStyle{})

	// Create URL entry
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.OnChanged = ui.ctrl.SetInput
	// Submit when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onShortenClick()
	}

	// Create shorten button
	ui.shortenBtn = widget.NewButton(ui.localization.GetText(KeyShorten), ui.onShortenClick)
	ui.shortenBtn.Importance = widget.HighImportance

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.progress = widget.NewProgressBarInfinite()
	ui.progress.Stop()
	ui.progress.Hide()

	topPanel := newInputRow(isMobileDevice(), ui.urlEntry, settingsBtn, ui.shortenBtn)

	// Error panel under URL input (hidden by default)
	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Alignment = fyne.TextAlignCenter
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorContainer = container.NewPadded(ui.errorLabel)
	ui.errorContainer.Hide()

	// Result row: short link and copy button
	ui.resultLink = widget.NewHyperlink("", nil)
	ui.resultCopyBtn = widget.NewButton(ui.localization.GetText(KeyCopy), func() {
		if ui.state.Result != nil {
			ui.onCopy(ui.state.Result.ShortURL)
		}
	})
	ui.resultCopyBtn.Importance = widget.HighImportance
	ui.resultContainer = container.NewBorder(nil, nil, nil, ui.resultCopyBtn, ui.resultLink)
	ui.resultContainer.Hide()

	// History list
	ui.historyTitle = widget.NewLabelWithStyle(ui.localization.GetText(KeyHistoryTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	ui.historyList = widget.NewList(
		func() int {
			return len(ui.state.History)
		},
		func() fyne.CanvasObject { return ui.createHistoryItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateHistoryItem(id, obj) },
	)
	ui.historyContainer = container.NewBorder(ui.historyTitle, nil, nil, nil, ui.historyList)
	ui.historyContainer.Hide()

	header := container.NewVBox(
		ui.titleLabel,
		ui.subtitleLabel,
		topPanel,
		ui.progress,
		ui.errorContainer,
		ui.resultContainer,
	)

	// History fills the remaining space below the input and result
	content := container.NewBorder(
		header, // top
		nil,    // bottom
		nil,    // left
		nil,    // right
		ui.historyContainer,
	)

	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for _, code := range sortedKeys(availableLanguages) {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))
	ui.subtitleLabel.SetText(ui.localization.GetText(KeySubtitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.shortenBtn.SetText(ui.localization.GetText(KeyShorten))
	ui.historyTitle.SetText(ui.localization.GetText(KeyHistoryTitle))

	// Error text and copy label are localized from state
	ui.applyState(ui.state)
	ui.historyList.Refresh()
}

// onShortenClick handles the shorten button click and Enter in the URL field
func (ui *RootUI) onShortenClick() {
	// Enter still fires while the button is disabled
	if ui.shortenBtn.Disabled() || ui.ctrl.State().Phase.IsActive() {
		return
	}

	// Blocks a second click before RequestStarted reaches the UI
	ui.shortenBtn.Disable()

	input := ui.urlEntry.Text
	ui.runAsync(func() {
		final := ui.ctrl.Submit(context.Background(), input)
		if !final.HasResult() {
			return
		}
		ui.runOnMain(func() {
			// Successful submission empties the input
			ui.urlEntry.SetText(final.Input)
		})
	})
}

// onCopy copies a short URL and reports clipboard failures
func (ui *RootUI) onCopy(shortURL string) {
	if err := ui.ctrl.Copy(shortURL); err != nil {
		log.Warn().Err(err).Msg("Copy failed")
		dialog.ShowError(err, ui.window)
	}
}

// onStateUpdate receives controller snapshots from any goroutine
func (ui *RootUI) onStateUpdate(s model.State) {
	ui.runOnMain(func() {
		ui.applyState(s)
	})
}

// applyState renders a state snapshot
func (ui *RootUI) applyState(s model.State) {
	historyChanged := len(s.History) != len(ui.state.History)
	ui.state = s

	// Validating counts as busy so the button stays disabled until the attempt ends
	if s.Phase.IsActive() {
		ui.shortenBtn.Disable()
	} else {
		ui.shortenBtn.Enable()
	}
	if s.Loading() {
		ui.progress.Show()
		ui.progress.Start()
	} else {
		ui.progress.Stop()
		ui.progress.Hide()
	}

	// Error panel
	if s.HasError() {
		ui.errorLabel.SetText(IconError + " " + ui.localization.ErrorText(s.ErrorKind, s.Error))
		ui.errorContainer.Show()
	} else {
		ui.errorLabel.SetText("")
		ui.errorContainer.Hide()
	}

	// Result
	if s.HasResult() {
		ui.resultLink.SetText(s.Result.ShortURL)
		ui.resultLink.SetURL(parseLink(s.Result.ShortURL))
		if s.Copied {
			ui.resultCopyBtn.SetText(IconCheck + " " + ui.localization.GetText(KeyCopied))
			ui.resultCopyBtn.Importance = widget.SuccessImportance
		} else {
			ui.resultCopyBtn.SetText(ui.localization.GetText(KeyCopy))
			ui.resultCopyBtn.Importance = widget.HighImportance
		}
		ui.resultCopyBtn.Refresh()
		ui.resultContainer.Show()
	} else {
		ui.resultContainer.Hide()
	}

	// History
	if len(s.History) > 0 {
		ui.historyContainer.Show()
	} else {
		ui.historyContainer.Hide()
	}
	if historyChanged {
		ui.historyList.Refresh()
		ui.historyList.ScrollToBottom()
	}
}

// createHistoryItem creates a new history row widget
func (ui *RootUI) createHistoryItem() fyne.CanvasObject {
	row := NewHistoryRow(model.HistoryEntry{}, ui.localization)
	row.SetOnCopy(ui.onCopy)
	return row
}

// updateHistoryItem binds a history row to the entry at id
func (ui *RootUI) updateHistoryItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(ui.state.History) {
		return
	}

	if row, ok := item.(*HistoryRow); ok {
		row.SetOnCopy(ui.onCopy)
		row.UpdateEntry(ui.state.History[id])
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies saved settings to the running client and UI
func (ui *RootUI) onSettingsSaved() {
	ui.backend.SetBaseURL(ui.settings.GetBackendURL())
	ui.backend.SetTimeout(ui.settings.GetRequestTimeout())

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	log.Info().
		Str("backend_url", ui.settings.GetBackendURL()).
		Dur("timeout", ui.settings.GetRequestTimeout()).
		Str("language", ui.settings.GetLanguage()).
		Msg("Settings applied")
}
