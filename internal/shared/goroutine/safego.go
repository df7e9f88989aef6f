// Package goroutine provides utilities for safely launching goroutines with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/orris-inc/toolbox/internal/shared/logger"
)

// SafeGo launches a goroutine with panic recovery. If the goroutine panics,
// the panic is caught and logged with stack trace instead of crashing the process.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer Recover(log, name, nil)
		fn()
	}()
}

// Recover must be deferred. It logs a recovered panic under name and, when
// onPanic is set, hands the panic value to it so the caller can record a
// failure instead of losing the unit of work.
func Recover(log logger.Interface, name string, onPanic func(r any)) {
	r := recover()
	if r == nil {
		return
	}
	log.Errorw("goroutine panicked",
		"goroutine", name,
		"panic", fmt.Sprintf("%v", r),
		"stack", string(debug.Stack()),
	)
	if onPanic != nil {
		onPanic(r)
	}
}
