package model

import "time"

// Shared defaults used by the TUI, the headless runner and the config loader.
const (
	DefaultTickInterval = time.Second
	DefaultInitialCount = 0
	DefaultTitleFormat  = "You clicked %d times"
	DefaultStartPage    = "counter"
	DefaultSkin         = "default"
	DefaultLogLevel     = "info"
	DefaultHistorySize  = 20
)
