package domain

const (
	TrackKindYouTube = "youtube"
	TrackKindAudio   = "audio"
)

// Track describes what the room is playing. Reference is a video id for
// youtube tracks or a direct URL for audio tracks. Set only by the host.
type Track struct {
	Kind      string `json:"type"`
	Reference string `json:"id"`
}
