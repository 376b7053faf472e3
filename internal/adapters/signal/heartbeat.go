package signal

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kamaldevyadav822-commits/Best-sync/internal/playsync"
)

// RunHeartbeat re-emits sync snapshots for every playing room on a fixed
// interval, with the position extrapolated from the registry's canonical
// state. Late-joining or temporarily desynced guests self-correct from
// these without any host interaction.
func (ctl *Controller) RunHeartbeat(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info().Str("module", "signal").Dur("interval", interval).Msg("heartbeat started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Msg("heartbeat stopped")
			return
		case <-ticker.C:
			now := time.Now()
			for _, ps := range ctl.Rooms.PlayingRooms() {
				ctl.broadcastRoom(ps.RoomID, "", syncEvent{
					Type:            MsgSync,
					IsPlaying:       true,
					CurrentTime:     playsync.Extrapolate(ps.CurrentTime, ps.UpdatedAt, now),
					ServerTimestamp: now.UnixMilli(),
				})
			}
		}
	}
}
