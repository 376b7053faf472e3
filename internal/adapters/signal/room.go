package signal

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kamaldevyadav822-commits/Best-sync/internal/domain"
)

func (ctl *Controller) handleCreate(id domain.ConnID) {
	conn, ok := ctl.Conns.Get(id)
	if !ok {
		return
	}

	roomID := ctl.Rooms.CreateRoom(id)
	log.Info().Str("module", "signal").Str("conn", string(id)).Str("room", string(roomID)).Msg("create room")
	ctl.sendJSON(conn, createdResp{Type: MsgRoomCreated, OK: true, Room: roomID})
}

func (ctl *Controller) handleJoin(id domain.ConnID, data []byte) {
	conn, ok := ctl.Conns.Get(id)
	if !ok {
		return
	}

	var p joinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad join payload")
		ctl.sendJSON(conn, joinedResp{Type: MsgRoomJoined, Error: domain.CodeInvalidCode})
		return
	}

	// Format check happens here so garbage codes never reach the registry.
	code := strings.TrimSpace(p.Room)
	if !domain.ValidCode(code) {
		ctl.sendJSON(conn, joinedResp{Type: MsgRoomJoined, Error: domain.CodeInvalidCode})
		return
	}

	roomID := domain.RoomID(code)
	snap, err := ctl.Rooms.JoinRoom(roomID, id)
	if err != nil {
		log.Info().Str("module", "signal").Str("conn", string(id)).Str("room", code).Str("error", domain.ErrorCode(err)).Msg("join rejected")
		ctl.sendJSON(conn, joinedResp{Type: MsgRoomJoined, Error: domain.ErrorCode(err)})
		return
	}

	log.Info().Str("module", "signal").Str("conn", string(id)).Str("room", code).Msg("join")
	ctl.sendJSON(conn, joinedResp{
		Type: MsgRoomJoined,
		OK:   true,
		Room: roomID,
		State: &roomState{
			CurrentTrack: snap.CurrentTrack,
			IsPlaying:    snap.IsPlaying,
			CurrentTime:  snap.CurrentTime,
		},
		Chat: snap.Chat,
	})
}

// handleLeave drops the room association but keeps the connection open.
// A departing host still kills the room for everyone else.
func (ctl *Controller) handleLeave(id domain.ConnID) {
	log.Info().Str("module", "signal").Str("conn", string(id)).Msg("leave")
	for _, c := range ctl.Rooms.Leave(id) {
		ctl.NotifyClosure(c)
	}
}
