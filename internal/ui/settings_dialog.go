package ui

import (
	"errors"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/url-shortener/internal/config"
	"github.com/ytget/url-shortener/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	backendEntry   *widget.Entry
	backendHint    *widget.Label
	timeoutEntry   *widget.Entry
	languageSelect *widget.Select

	// language label -> code
	languageCodes map[string]string
}

// ShowSettingsDialog builds and shows the settings dialog; onSaved runs after settings are persisted
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Backend URL
	sd.backendEntry = widget.NewEntry()
	sd.backendEntry.SetPlaceHolder(config.DefaultBackendURL)
	sd.backendEntry.Validator = validateBackendURL
	sd.backendHint = widget.NewLabel(l.GetText(KeyBackendOverridden))
	sd.backendHint.Importance = widget.LowImportance
	sd.backendHint.Hide()

	// Request timeout
	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinRequestTimeoutSec) + "-" + strconv.Itoa(config.MaxRequestTimeoutSec))
	sd.timeoutEntry.Validator = validateTimeout

	// Language selection
	sd.languageCodes = make(map[string]string)
	languageLabels := sd.settings.GetLanguageOptions()
	languageOptions := []string{}
	for _, code := range sortedKeys(languageLabels) {
		label := languageLabels[code]
		sd.languageCodes[label] = code
		languageOptions = append(languageOptions, label)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyConnectionSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyBackendURL)+":"),
		sd.backendEntry,
		sd.backendHint,

		widget.NewLabel(l.GetText(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.backendEntry.SetText(sd.settings.GetBackendURL())
	if sd.settings.IsBackendURLOverridden() {
		sd.backendEntry.Disable()
		sd.backendHint.Show()
	} else {
		sd.backendEntry.Enable()
		sd.backendHint.Hide()
	}

	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetRequestTimeoutSeconds()))

	lang := sd.settings.GetLanguage()
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[lang])
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Backend URL is read-only while the environment overrides it
	if !sd.settings.IsBackendURLOverridden() {
		if validateBackendURL(sd.backendEntry.Text) == nil {
			sd.settings.SetBackendURL(sd.backendEntry.Text)
		}
	}

	// Validate and save request timeout
	if seconds, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text)); err == nil {
		sd.settings.SetRequestTimeoutSeconds(seconds)
	}

	// Save language
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// validateBackendURL accepts an empty value (the default is used) or an absolute URL
func validateBackendURL(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	if !model.Validate(input) {
		return errors.New("backend URL must be absolute, e.g. " + config.DefaultBackendURL)
	}
	return nil
}

// validateTimeout accepts whole seconds; out-of-range values are clamped on save
func validateTimeout(input string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(input)); err != nil {
		return errors.New("timeout must be a whole number of seconds")
	}
	return nil
}
