package internal

import (
	"log"
	"os"
)

// InitLogging routes the process log to stdout with microsecond stamps.
func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}

// Warnf logs a recoverable drop-and-continue condition. Repeated drops are
// additionally surfaced as counters on the health endpoint, so callers
// should not escalate beyond this.
func Warnf(format string, args ...any) {
	log.Printf("warn: "+format, args...)
}
