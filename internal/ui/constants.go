package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconCopy     = "📋"
	IconCheck    = "✔"
	IconError    = "❌"
	IconLink     = "🔗"
)

// Text fragments
const (
	OriginalLabelFormat = "%s: %s"
	DashPlaceholder     = "—"
)

// Layout sizing
const (
	WindowWidth  float32 = 640
	WindowHeight float32 = 560

	CopyButtonWidth   float32 = 96
	HistoryRowMinH    float32 = 56
	HistoryListMinH   float32 = 200
	OriginalURLMaxLen         = 80

	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 320
)
