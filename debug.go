package tilekit

import (
	"fmt"
	"log"
	"os"
)

// globalDebug enables verbose logging of asset loads and ignored watcher
// events. Set with SetDebugMode.
var globalDebug bool

// SetDebugMode enables or disables debug logging. When enabled, every failed
// sprite load and every ignored watcher event is logged.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug logging is enabled.
func DebugMode() bool {
	return globalDebug
}

// debugf logs only in debug mode.
func debugf(format string, args ...any) {
	if globalDebug {
		log.Printf("tilekit: "+format, args...)
	}
}

// warnf always prints to stderr.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[tilekit] "+format+"\n", args...)
}
