package signal

import "github.com/kamaldevyadav822-commits/Best-sync/internal/domain"

func (ctl *Controller) handlePing(id domain.ConnID) {
	if conn, ok := ctl.Conns.Get(id); ok {
		ctl.sendJSON(conn, pongEvent{Type: MsgPong})
	}
}
