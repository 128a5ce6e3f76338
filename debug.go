package mire

// SetDebug toggles debug logging for suspicious-but-tolerated input:
// out-of-grid tile writes, empty sprite sheets. Warnings go to the standard
// logger. Off by default; intended for development builds.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// globalDebug gates the log sites. Plain bool with no synchronization; the
// per-frame model is single-threaded and the flag is set once at startup.
var globalDebug bool
