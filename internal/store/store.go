// Package store is the single source of truth for room state.
// It knows nothing about the network transport.
package store

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kamaldevyadav822-commits/Best-sync/internal/domain"
)

// Snapshot is what a joining client needs to render immediately,
// without racing against live events.
type Snapshot struct {
	CurrentTrack *domain.Track
	IsPlaying    bool
	CurrentTime  float64
	Chat         []domain.ChatMessage
}

// Update carries a partial playback mutation. Only non-nil fields apply;
// SetTrack distinguishes "set track to nil" from "leave track alone".
type Update struct {
	Track    *domain.Track
	SetTrack bool
	Playing  *bool
	Position *float64
}

// Closure reports a deleted room and the members still subscribed to it,
// so the protocol layer can notify them before unsubscribing.
type Closure struct {
	RoomID  domain.RoomID
	Members []domain.ConnID
}

// PlaybackState is a read-only view used by the heartbeat broadcaster.
type PlaybackState struct {
	RoomID      domain.RoomID
	CurrentTime float64
	UpdatedAt   time.Time
}

type RoomStore struct {
	mu          sync.Mutex
	rooms       map[domain.RoomID]*domain.Room
	ttl         time.Duration
	maxRoomSize int
	now         func() time.Time
}

func NewRoomStore(ttl time.Duration, maxRoomSize int) *RoomStore {
	return &RoomStore{
		rooms:       make(map[domain.RoomID]*domain.Room),
		ttl:         ttl,
		maxRoomSize: maxRoomSize,
		now:         time.Now,
	}
}

// generateCode produces a 4-digit code not currently in use. With only
// 10,000 possible codes, collisions are routine, so retry is mandatory.
// Caller must hold s.mu.
func (s *RoomStore) generateCode() domain.RoomID {
	for {
		code := domain.RoomID(fmt.Sprintf("%04d", rand.IntN(10000)))
		if _, taken := s.rooms[code]; !taken {
			return code
		}
	}
}

// CreateRoom allocates a room with the caller as host and sole member.
func (s *RoomStore) CreateRoom(hostID domain.ConnID) domain.RoomID {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := s.generateCode()
	now := s.now()
	s.rooms[code] = &domain.Room{
		ID:           code,
		HostID:       hostID,
		Members:      map[domain.ConnID]struct{}{hostID: {}},
		CurrentTrack: nil,
		IsPlaying:    false,
		CurrentTime:  0,
		PlaybackAt:   now,
		CreatedAt:    now,
		LastActivity: now,
	}
	log.Info().Str("module", "store").Str("room", string(code)).Str("host", string(hostID)).Msg("room created")
	return code
}

// JoinRoom adds a member and returns the state snapshot it should render.
func (s *RoomStore) JoinRoom(roomID domain.RoomID, memberID domain.ConnID) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return Snapshot{}, domain.ErrRoomNotFound
	}
	if len(room.Members) >= s.maxRoomSize {
		return Snapshot{}, domain.ErrRoomFull
	}

	room.Members[memberID] = struct{}{}
	room.LastActivity = s.now()
	log.Info().Str("module", "store").Str("room", string(roomID)).Str("conn", string(memberID)).Msg("joined room")

	chat := make([]domain.ChatMessage, len(room.Chat))
	copy(chat, room.Chat)
	return Snapshot{
		CurrentTrack: room.CurrentTrack,
		IsPlaying:    room.IsPlaying,
		CurrentTime:  room.CurrentTime,
		Chat:         chat,
	}, nil
}

// Leave removes the connection from every room holding it. A room dies the
// instant its host leaves, regardless of remaining guests, or the instant it
// becomes empty. Returned closures list the members still to be notified.
func (s *RoomStore) Leave(memberID domain.ConnID) []Closure {
	s.mu.Lock()
	defer s.mu.Unlock()

	var closed []Closure
	for id, room := range s.rooms {
		if _, in := room.Members[memberID]; !in {
			continue
		}
		delete(room.Members, memberID)
		log.Info().Str("module", "store").Str("room", string(id)).Str("conn", string(memberID)).Msg("left room")

		switch {
		case room.HostID == memberID:
			closed = append(closed, Closure{RoomID: id, Members: memberIDs(room)})
			delete(s.rooms, id)
			log.Info().Str("module", "store").Str("room", string(id)).Msg("room deleted, host left")
		case len(room.Members) == 0:
			closed = append(closed, Closure{RoomID: id})
			delete(s.rooms, id)
			log.Info().Str("module", "store").Str("room", string(id)).Msg("room deleted, empty")
		}
	}
	return closed
}

// UpdatePlayback applies only the provided fields. Silent no-op if the
// room is gone.
func (s *RoomStore) UpdatePlayback(roomID domain.RoomID, u Update) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return
	}
	if u.SetTrack {
		room.CurrentTrack = u.Track
	}
	if u.Playing != nil {
		room.IsPlaying = *u.Playing
	}
	if u.Position != nil {
		room.CurrentTime = *u.Position
	}
	room.PlaybackAt = s.now()
	room.LastActivity = s.now()
}

// AppendChat stores a message, evicting the oldest beyond the history cap.
// Returns the stored message with its server-assigned timestamp.
func (s *RoomStore) AppendChat(roomID domain.RoomID, userName, text string) (*domain.ChatMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return nil, false
	}

	msg := domain.NewChatMessage(userName, text, s.now().UnixMilli())
	room.Chat = append(room.Chat, msg)
	if n := len(room.Chat); n > domain.MaxChatHistory {
		room.Chat = room.Chat[n-domain.MaxChatHistory:]
	}
	room.LastActivity = s.now()
	return &msg, true
}

// SweepExpired deletes every room idle longer than the TTL.
func (s *RoomStore) SweepExpired() []Closure {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	var closed []Closure
	for id, room := range s.rooms {
		if room.LastActivity.After(cutoff) {
			continue
		}
		closed = append(closed, Closure{RoomID: id, Members: memberIDs(room)})
		delete(s.rooms, id)
		log.Info().Str("module", "store").Str("room", string(id)).Msg("room expired")
	}
	return closed
}

// Exists is the read-only lookup behind /api/room-exists.
func (s *RoomStore) Exists(roomID domain.RoomID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.rooms[roomID]
	return ok
}

// Chat returns a copy of the room's history, nil if the room is absent.
func (s *RoomStore) Chat(roomID domain.RoomID) ([]domain.ChatMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return nil, false
	}
	chat := make([]domain.ChatMessage, len(room.Chat))
	copy(chat, room.Chat)
	return chat, true
}

// Members returns the current member set of a room.
func (s *RoomStore) Members(roomID domain.RoomID) []domain.ConnID {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return nil
	}
	return memberIDs(room)
}

// HostOf reports the room's host connection.
func (s *RoomStore) HostOf(roomID domain.RoomID) (domain.ConnID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return "", false
	}
	return room.HostID, true
}

// PlayingRooms snapshots every room currently playing, for the heartbeat.
func (s *RoomStore) PlayingRooms() []PlaybackState {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []PlaybackState
	for id, room := range s.rooms {
		if !room.IsPlaying {
			continue
		}
		out = append(out, PlaybackState{
			RoomID:      id,
			CurrentTime: room.CurrentTime,
			UpdatedAt:   room.PlaybackAt,
		})
	}
	return out
}

// Count returns the number of live rooms.
func (s *RoomStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}

func memberIDs(room *domain.Room) []domain.ConnID {
	out := make([]domain.ConnID, 0, len(room.Members))
	for id := range room.Members {
		out = append(out, id)
	}
	return out
}
