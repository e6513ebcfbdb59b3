package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the map panel is hidden.
	LayoutCompactWidth = 100

	// LayoutWideWidth gives the listing pane a smaller share.
	LayoutWideWidth = 160
)

// Map panel size in cells.
const (
	MapWidth  = 36
	MapHeight = 12
)

// Log view limits.
const (
	// LogTailLines is the number of client log lines shown.
	LogTailLines = 400

	// LogRefreshInterval is how often the log view rereads the file.
	LogRefreshInterval = 2 * time.Second
)

// Timing constants.
const (
	// ToastLifetime is how long a notification stays on screen.
	ToastLifetime = 6 * time.Second

	// MaxToasts is the number of notifications shown at once.
	MaxToasts = 3

	// DefaultFlowTimeout bounds a flow started from the UI.
	DefaultFlowTimeout = 15 * time.Second

	// TickInterval drives toast expiry and log refresh.
	TickInterval = time.Second
)
