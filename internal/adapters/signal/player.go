package signal

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kamaldevyadav822-commits/Best-sync/internal/domain"
	"github.com/kamaldevyadav822-commits/Best-sync/internal/playsync"
	"github.com/kamaldevyadav822-commits/Best-sync/internal/store"
)

// isHost reports whether the sender controls the room's playback.
// Playback messages from anyone else are dropped without a reply: these
// are continuous control-stream events, and a spoofing client never sees
// its forged state reflected back, so an error channel buys nothing.
func (ctl *Controller) isHost(roomID domain.RoomID, id domain.ConnID) bool {
	host, ok := ctl.Rooms.HostOf(roomID)
	return ok && host == id
}

func (ctl *Controller) handleSetTrack(id domain.ConnID, data []byte) {
	var p setTrackPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad set-track payload")
		return
	}
	roomID := domain.RoomID(strings.TrimSpace(p.Room))
	if roomID == "" || p.Track == nil {
		return
	}
	if !ctl.isHost(roomID, id) {
		return
	}

	playing := false
	position := 0.0
	ctl.Rooms.UpdatePlayback(roomID, store.Update{
		Track:    p.Track,
		SetTrack: true,
		Playing:  &playing,
		Position: &position,
	})

	log.Info().Str("module", "signal").Str("room", string(roomID)).Str("kind", p.Track.Kind).Msg("track changed")
	ctl.broadcastRoom(roomID, id, trackChangedEvent{
		Type:        MsgTrackChanged,
		Track:       p.Track,
		CurrentTime: 0,
		IsPlaying:   false,
	})
}

func (ctl *Controller) handleStateChange(id domain.ConnID, data []byte) {
	var p stateChangePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad state-change payload")
		return
	}
	roomID := domain.RoomID(strings.TrimSpace(p.Room))
	if roomID == "" {
		return
	}
	if !ctl.isHost(roomID, id) {
		return
	}

	ctl.Rooms.UpdatePlayback(roomID, store.Update{
		Playing:  &p.IsPlaying,
		Position: &p.CurrentTime,
	})

	ctl.broadcastRoom(roomID, id, syncEvent{
		Type:            MsgSync,
		IsPlaying:       p.IsPlaying,
		CurrentTime:     p.CurrentTime,
		ServerTimestamp: playsync.Now(),
	})
}
