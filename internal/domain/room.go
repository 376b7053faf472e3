// Package domain contains entities without logic, just meta-data
// and the validation constants shared by every layer.
package domain

import "time"

type (
	// ConnID identifies a single WebSocket connection. The connection that
	// creates a room is its host for the room's whole lifetime.
	ConnID string

	// RoomID is the human-shareable 4-digit room code.
	RoomID string
)

const (
	CodeLength     = 4
	MaxUserNameLen = 36
)

// Room is the canonical session state. All fields are owned by the store;
// nothing outside internal/store mutates them.
type Room struct {
	ID           RoomID
	HostID       ConnID
	Members      map[ConnID]struct{}
	CurrentTrack *Track
	IsPlaying    bool
	CurrentTime  float64
	// PlaybackAt anchors CurrentTime in wall-clock time; chat and joins
	// touch LastActivity but never this.
	PlaybackAt   time.Time
	Chat         []ChatMessage
	CreatedAt    time.Time
	LastActivity time.Time
}

// ValidCode reports whether s is exactly four ASCII digits.
func ValidCode(s string) bool {
	if len(s) != CodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
