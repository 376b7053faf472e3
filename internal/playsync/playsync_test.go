package playsync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name     string
		position float64
		delayMs  int64
		want     float64
	}{
		{"no delay", 42.0, 0, 42.0},
		{"one second in transit", 42.0, 1000, 43.0},
		{"sub-second delay", 10.0, 250, 10.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sentAt := int64(1_700_000_000_000)
			got := Estimate(tt.position, sentAt, sentAt+tt.delayMs)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestNeedsSeek(t *testing.T) {
	tests := []struct {
		name      string
		local     float64
		estimated float64
		want      bool
	}{
		{"in sync", 42.0, 42.0, false},
		{"under threshold", 42.0, 42.5, false},
		{"over threshold ahead", 42.0, 43.0, true},
		{"over threshold behind", 43.0, 42.0, true},
		{"way off", 10.0, 43.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NeedsSeek(tt.local, tt.estimated))
		})
	}
}

// A guest one second behind the broadcast reconstructs the host's true
// position and corrects only because the gap exceeds the threshold.
func TestDriftCorrectionScenario(t *testing.T) {
	sentAt := Now()
	localNow := sentAt + 1000

	estimated := Estimate(42.0, sentAt, localNow)
	assert.InDelta(t, 43.0, estimated, 1e-9)

	localPosition := 10.0
	assert.True(t, NeedsSeek(localPosition, estimated))

	// Once seeked, the next heartbeat leaves playback alone.
	assert.False(t, NeedsSeek(estimated, estimated))
}

func TestExtrapolate(t *testing.T) {
	updatedAt := time.Now()
	now := updatedAt.Add(4 * time.Second)
	assert.InDelta(t, 16.0, Extrapolate(12.0, updatedAt, now), 1e-9)
}
