// Package leaktest catches goroutines and heap left behind by a test body.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay = 10 * time.Millisecond
	pollDelay   = 5 * time.Millisecond
	// DefaultWait bounds how long Check waits for goroutines to exit
	DefaultWait = 500 * time.Millisecond
)

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	t      testing.TB
	before int
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	time.Sleep(settleDelay)
	return &GoroutineChecker{t: t, before: runtime.NumGoroutine()}
}

// Check fails the test if more than tolerance goroutines are still running after
// DefaultWait. It polls so a clean test does not pay the full wait.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := runtime.NumGoroutine()
	deadline := time.Now().Add(DefaultWait)
	for after-g.before > tolerance && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(pollDelay)
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d", g.before, after, leaked, tolerance)
	}
}

// HeapChecker compares live heap against a baseline
type HeapChecker struct {
	t      testing.TB
	before uint64
}

// NewHeapChecker records the live heap after a GC
func NewHeapChecker(t testing.TB) *HeapChecker {
	t.Helper()
	return &HeapChecker{t: t, before: liveHeap()}
}

// Check fails the test if the live heap grew by more than maxGrowthMB
func (h *HeapChecker) Check(maxGrowthMB float64) {
	h.t.Helper()

	after := liveHeap()
	growth := (float64(after) - float64(h.before)) / (1 << 20)
	if growth > maxGrowthMB {
		h.t.Errorf("heap growth: before=%.2fMB after=%.2fMB growth=%.2fMB max=%.2fMB",
			float64(h.before)/(1<<20), float64(after)/(1<<20), growth, maxGrowthMB)
	}
}

func liveHeap() uint64 {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}

// NoGoroutineLeak runs fn and fails if it leaves goroutines behind
func NoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// BoundedHeap runs fn and fails if it grows the live heap by more than maxGrowthMB.
// Anything fn needs to keep alive must be reachable after it returns for the
// measurement to count it.
func BoundedHeap(t testing.TB, maxGrowthMB float64, fn func()) {
	t.Helper()
	checker := NewHeapChecker(t)
	fn()
	checker.Check(maxGrowthMB)
}
