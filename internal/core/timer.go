package core

import "time"

// Clock provides the time services the frame loop paces itself with.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock reads the wall clock and blocks the calling goroutine.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep pauses for d.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 30

// FramePeriod converts a frame rate into the delay slept between frames,
// truncated to whole milliseconds. Non-positive rates use DefaultFPS.
func FramePeriod(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Duration(1000/fps) * time.Millisecond
}

// TimeSeed derives an RNG seed from the clock.
func TimeSeed(c Clock) int64 {
	return c.Now().UnixNano()
}
