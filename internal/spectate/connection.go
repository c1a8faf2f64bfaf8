package spectate

import (
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 8
)

// viewer is one spectator connection. Frames are queued on send and written
// by writePump; nothing else writes to ws.
type viewer struct {
	ws   *websocket.Conn
	send chan []byte
}

func newViewer(ws *websocket.Conn) *viewer {
	return &viewer{ws: ws, send: make(chan []byte, sendBuffer)}
}

// readPump discards anything the viewer sends and returns once the
// connection is gone.
func (v *viewer) readPump() {
	v.ws.SetReadLimit(512)
	v.ws.SetReadDeadline(time.Now().Add(pongWait))
	v.ws.SetPongHandler(func(string) error {
		return v.ws.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := v.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("spectate: read: %v", err)
			}
			return
		}
	}
}

// writePump sends queued frames as binary messages until send is closed.
func (v *viewer) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		v.ws.Close()
	}()

	for {
		select {
		case frame, ok := <-v.send:
			v.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				v.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := v.ws.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			v.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := v.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// offer queues frame without blocking. It reports false when the viewer is
// too slow to keep up.
func (v *viewer) offer(frame []byte) bool {
	select {
	case v.send <- frame:
		return true
	default:
		return false
	}
}
