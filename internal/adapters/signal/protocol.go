package signal

import "github.com/kamaldevyadav822-commits/Best-sync/internal/domain"

// Client → server message types.
const (
	MsgCreateRoom  = "create-room"
	MsgJoinRoom    = "join-room"
	MsgSetTrack    = "set-track"
	MsgStateChange = "state-change"
	MsgChatSend    = "chat-send"
	MsgLeave       = "leave"
	MsgPing        = "ping"
)

// Server → client message types.
const (
	MsgRoomCreated  = "room-created"
	MsgRoomJoined   = "room-joined"
	MsgChatAck      = "chat-ack"
	MsgTrackChanged = "track-changed"
	MsgSync         = "sync"
	MsgChatNew      = "chat-new"
	MsgRoomClosed   = "room-closed"
	MsgStatsUpdate  = "stats-update"
	MsgPong         = "pong"
)

type joinPayload struct {
	Type string `json:"type"`
	Room string `json:"room"`
}

type setTrackPayload struct {
	Type  string        `json:"type"`
	Room  string        `json:"room"`
	Track *domain.Track `json:"track"`
}

type stateChangePayload struct {
	Type        string  `json:"type"`
	Room        string  `json:"room"`
	IsPlaying   bool    `json:"isPlaying"`
	CurrentTime float64 `json:"currentTime"`
}

type chatPayload struct {
	Type     string `json:"type"`
	Room     string `json:"room"`
	UserName string `json:"userName"`
	Text     string `json:"text"`
}

// roomState is the playback snapshot a joining client renders first.
type roomState struct {
	CurrentTrack *domain.Track `json:"currentTrack"`
	IsPlaying    bool          `json:"isPlaying"`
	CurrentTime  float64       `json:"currentTime"`
}

type createdResp struct {
	Type  string        `json:"type"`
	OK    bool          `json:"ok"`
	Room  domain.RoomID `json:"roomId,omitempty"`
	Error string        `json:"error,omitempty"`
}

type joinedResp struct {
	Type  string               `json:"type"`
	OK    bool                 `json:"ok"`
	Room  domain.RoomID        `json:"roomId,omitempty"`
	State *roomState           `json:"state,omitempty"`
	Chat  []domain.ChatMessage `json:"chat,omitempty"`
	Error string               `json:"error,omitempty"`
}

type chatAck struct {
	Type  string `json:"type"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type trackChangedEvent struct {
	Type        string        `json:"type"`
	Track       *domain.Track `json:"track"`
	CurrentTime float64       `json:"currentTime"`
	IsPlaying   bool          `json:"isPlaying"`
}

// syncEvent carries the broadcaster's wall clock, not the host's, so
// receivers can compensate for delivery latency.
type syncEvent struct {
	Type            string  `json:"type"`
	IsPlaying       bool    `json:"isPlaying"`
	CurrentTime     float64 `json:"currentTime"`
	ServerTimestamp int64   `json:"serverTimestamp"`
}

type chatEvent struct {
	Type     string        `json:"type"`
	Room     domain.RoomID `json:"roomId"`
	UserName string        `json:"userName"`
	Text     string        `json:"text"`
	Ts       int64         `json:"ts"`
}

type statsEvent struct {
	Type   string `json:"type"`
	Online int64  `json:"online"`
}

type roomClosedEvent struct {
	Type string `json:"type"`
}

type pongEvent struct {
	Type string `json:"type"`
}
