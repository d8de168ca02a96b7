// Package leaktest reports goroutines left running by a test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 500 * time.Millisecond
	pollInterval  = 10 * time.Millisecond
)

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	t        testing.TB
	baseline int
}

// NewGoroutineChecker records the baseline once background goroutines settle
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, baseline: runtime.NumGoroutine()}
}

// Check polls until at most tolerance extra goroutines remain, failing the
// test if they are still running after the settle timeout.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	if extra, ok := waitForCount(g.baseline+tolerance, settleTimeout); !ok {
		g.t.Errorf("goroutine leak: baseline=%d now=%d tolerance=%d",
			g.baseline, g.baseline+tolerance+extra, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to exit
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// waitForCount returns how many goroutines exceed target when it gives up
func waitForCount(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target {
			return 0, true
		}
		if time.Now().After(deadline) {
			return n - target, false
		}
		time.Sleep(pollInterval)
	}
}
