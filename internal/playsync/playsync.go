// Package playsync holds the clock-drift arithmetic shared by the server
// heartbeat and by receivers reconstructing the host's position.
package playsync

import (
	"math"
	"time"
)

// DriftThreshold is the minimum difference, in seconds, between a local
// playback position and the host-derived estimate that justifies a seek.
// Smaller differences are left alone: correcting them would cause audible
// stutter from constant micro-seeks.
const DriftThreshold = 0.6

// Now returns the server wall clock in epoch milliseconds, the unit every
// sync event carries.
func Now() int64 { return time.Now().UnixMilli() }

// Estimate reconstructs the true playback position of a snapshot taken at
// sentAt (epoch millis) and observed at now: the position plus the seconds
// that elapsed in transit.
func Estimate(position float64, sentAt, now int64) float64 {
	return position + float64(now-sentAt)/1000
}

// Extrapolate advances a stored position to the present, assuming playback
// continued since the state was last updated.
func Extrapolate(position float64, updatedAt, now time.Time) float64 {
	return position + now.Sub(updatedAt).Seconds()
}

// NeedsSeek reports whether local playback has drifted far enough from the
// estimated position to warrant a corrective seek.
func NeedsSeek(local, estimated float64) bool {
	return math.Abs(local-estimated) > DriftThreshold
}
