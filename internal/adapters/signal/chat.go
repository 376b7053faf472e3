package signal

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kamaldevyadav822-commits/Best-sync/internal/domain"
)

// handleChat is the one acknowledged fire path: a user-authored message
// must not silently vanish, so the sender always hears back.
func (ctl *Controller) handleChat(id domain.ConnID, data []byte) {
	conn, ok := ctl.Conns.Get(id)
	if !ok {
		return
	}

	var p chatPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad chat payload")
		ctl.sendJSON(conn, chatAck{Type: MsgChatAck, Error: domain.CodeInternalError})
		return
	}

	roomID := domain.RoomID(strings.TrimSpace(p.Room))
	text := strings.TrimSpace(p.Text)
	if roomID == "" || text == "" {
		ctl.sendJSON(conn, chatAck{Type: MsgChatAck, Error: domain.CodeInternalError})
		return
	}

	msg, ok := ctl.Rooms.AppendChat(roomID, p.UserName, text)
	if !ok {
		ctl.sendJSON(conn, chatAck{Type: MsgChatAck, Error: domain.CodeRoomNotFound})
		return
	}

	// Everyone including the sender: the sender needs the server-assigned
	// timestamp and the truncation actually applied.
	ctl.broadcastRoom(roomID, "", chatEvent{
		Type:     MsgChatNew,
		Room:     roomID,
		UserName: msg.UserName,
		Text:     msg.Text,
		Ts:       msg.Ts,
	})
	ctl.sendJSON(conn, chatAck{Type: MsgChatAck, OK: true})
}
