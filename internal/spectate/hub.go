// Package spectate streams finished frames to websocket viewers.
//
// Each frame is sent as one binary message holding the raw 6400-byte packed
// framebuffer. Viewers fetch /palette once to map the 2-bit values to colors.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"lightcycle/internal/core"

	"github.com/gorilla/websocket"
)

// Hub fans frames out to every connected viewer.
type Hub struct {
	upgrader websocket.Upgrader
	palette  [4]uint32
	frames   chan []byte

	mutex   sync.RWMutex
	viewers map[*viewer]struct{}
	last    []byte
	closed  bool
}

// NewHub returns a hub advertising palette (0xRRGGBB per framebuffer value).
func NewHub(palette [4]uint32) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		palette: palette,
		frames:  make(chan []byte, 1),
		viewers: make(map[*viewer]struct{}),
	}
}

// Publish hands a copy of fb to the hub. If the hub is still busy with the
// previous frame, that frame is replaced; the game loop never blocks.
func (h *Hub) Publish(fb *core.Framebuffer) {
	frame := make([]byte, core.FramebufferSize)
	copy(frame, fb[:])
	for {
		select {
		case h.frames <- frame:
			return
		default:
		}
		select {
		case <-h.frames:
		default:
		}
	}
}

// Run broadcasts published frames until ctx ends, then disconnects everyone.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case frame := <-h.frames:
			h.broadcast(frame)
		}
	}
}

func (h *Hub) broadcast(frame []byte) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.last = frame
	for v := range h.viewers {
		if !v.offer(frame) {
			delete(h.viewers, v)
			close(v.send)
		}
	}
}

func (h *Hub) shutdown() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.closed = true
	for v := range h.viewers {
		delete(h.viewers, v)
		close(v.send)
	}
}

func (h *Hub) add(v *viewer) bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.closed {
		return false
	}
	h.viewers[v] = struct{}{}
	if h.last != nil {
		v.offer(h.last)
	}
	return true
}

func (h *Hub) remove(v *viewer) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.viewers[v]; ok {
		delete(h.viewers, v)
		close(v.send)
	}
}

// Viewers returns the number of connected viewers.
func (h *Hub) Viewers() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.viewers)
}

// Handler serves /frames (websocket) and /palette (JSON).
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/frames", h.serveFrames)
	mux.HandleFunc("/palette", h.servePalette)
	return mux
}

func (h *Hub) serveFrames(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("spectate: upgrade: %v", err)
		return
	}
	v := newViewer(ws)
	if !h.add(v) {
		ws.Close()
		return
	}
	go v.writePump()
	v.readPump()
	h.remove(v)
}

// PaletteMessage is the /palette response body.
type PaletteMessage struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Colors [4]string `json:"colors"`
}

func (h *Hub) servePalette(w http.ResponseWriter, _ *http.Request) {
	msg := PaletteMessage{Width: core.ScreenWidth, Height: core.ScreenHeight}
	for i, c := range h.palette {
		msg.Colors[i] = fmt.Sprintf("#%06x", c)
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Printf("spectate: encode palette: %v", err)
	}
}

// Serve runs the hub and an HTTP server on addr until ctx ends.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: h.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go h.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()
	log.Printf("spectate: serving frames on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("spectate: %w", err)
	}
	return nil
}
