// Package monitoring holds the diagnostic logger used by the commands.
// Library packages never log; they return values the commands report here.
package monitoring

import (
	"log"
	"time"
)

// Logf is the package-level diagnostic logger. It defaults to log.Printf but may
// be replaced by SetLogger. Tests or production code can redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Stage logs the start of a named processing step and returns a function
// that logs its duration. Typical use:
//
//	done := monitoring.Stage("filter %s", path)
//	defer done()
func Stage(format string, v ...interface{}) func() {
	start := time.Now()
	Logf("start: "+format, v...)
	return func() {
		args := append(append([]interface{}(nil), v...), time.Since(start).Round(time.Millisecond))
		Logf("done: "+format+" (%s)", args...)
	}
}
