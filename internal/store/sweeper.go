package store

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Sweeper periodically expires idle rooms for the lifetime of the process.
// OnClose lets the protocol layer notify the members of a swept room.
type Sweeper struct {
	Store    *RoomStore
	Interval time.Duration
	OnClose  func(Closure)
}

func (sw *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(sw.Interval)
	defer ticker.Stop()

	log.Info().Str("module", "store.sweeper").Dur("interval", sw.Interval).Msg("sweeper started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "store.sweeper").Msg("sweeper stopped")
			return
		case <-ticker.C:
			closed := sw.Store.SweepExpired()
			for _, c := range closed {
				if sw.OnClose != nil {
					sw.OnClose(c)
				}
			}
			if len(closed) > 0 {
				log.Info().Str("module", "store.sweeper").Int("expired", len(closed)).Msg("sweep pass")
			}
		}
	}
}
