package live

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/weft-ui/weft/pkg/dom"
)

const (
	writeTimeout = 10 * time.Second
	readTimeout  = 60 * time.Second

	// sendBuffer is the per-subscriber frame queue. A subscriber that
	// falls this far behind is disconnected; it can resync on reconnect.
	sendBuffer = 32
)

// Handler returns the mirror's HTTP surface:
//
//	GET /live     WebSocket upgrade, snapshot then patch frames
//	GET /snapshot full HTML of the container
func (m *Mirror) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/live", m.serveWS)
	r.Get("/snapshot", m.serveSnapshot)
	return r
}

func (m *Mirror) serveSnapshot(w http.ResponseWriter, _ *http.Request) {
	frame, err := m.snapshot()
	if err != nil {
		http.Error(w, "snapshot failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(frame.HTML))
}

func (m *Mirror) serveWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
	}
	if m.checkOrigin != nil {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return m.checkOrigin(r.Header.Get("Origin"))
		}
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		m.log.Error("websocket upgrade failed", "error", err)
		return
	}

	sub := &subscriber{
		mirror: m,
		conn:   conn,
		out:    make(chan Frame, sendBuffer),
		done:   make(chan struct{}),
	}

	snapshot, err := m.snapshot()
	if err != nil {
		m.log.Error("snapshot failed", "error", err)
		conn.Close()
		return
	}

	m.mu.Lock()
	m.subs[sub] = struct{}{}
	m.mu.Unlock()
	m.log.Info("subscriber connected", "remote", conn.RemoteAddr())

	sub.out <- snapshot
	go sub.writeLoop()
	go sub.readLoop()
}

func (m *Mirror) drop(sub *subscriber) {
	m.mu.Lock()
	_, present := m.subs[sub]
	delete(m.subs, sub)
	m.mu.Unlock()

	if present {
		sub.shutdown()
		m.log.Info("subscriber disconnected")
	}
}

type subscriber struct {
	mirror *Mirror
	conn   *websocket.Conn
	out    chan Frame
	done   chan struct{}
	once   sync.Once
}

func (s *subscriber) shutdown() {
	s.once.Do(func() { close(s.done) })
}

// send queues a frame without blocking the flush. A full queue means the
// subscriber is too slow; it gets dropped.
func (s *subscriber) send(frame Frame) {
	select {
	case <-s.done:
	case s.out <- frame:
	default:
		s.mirror.drop(s)
	}
}

func (s *subscriber) writeLoop() {
	defer s.conn.Close()

	for {
		select {
		case <-s.done:
			return
		case frame := <-s.out:
			s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := s.conn.WriteJSON(frame); err != nil {
				s.mirror.drop(s)
				return
			}
		}
	}
}

func (s *subscriber) readLoop() {
	defer s.mirror.drop(s)

	for {
		s.conn.SetReadDeadline(time.Now().Add(readTimeout))
		var frame Frame
		if err := s.conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure,
				websocket.CloseAbnormalClosure) {
				s.mirror.log.Error("read error", "error", err)
			}
			return
		}
		if frame.Type != FrameEvent {
			s.mirror.log.Warn("unexpected frame type", "type", frame.Type)
			continue
		}
		s.mirror.handleEvent(frame)
	}
}

// handleEvent resolves an event frame and hands it to the application
// hook. Unknown targets are dropped; the node may have been unmounted
// while the frame was in flight.
func (m *Mirror) handleEvent(frame Frame) {
	if m.onEvent == nil || frame.Event == nil {
		return
	}
	ev := frame.Event
	node, ok := m.NodeByID(ev.Target)
	if !ok {
		m.log.Debug("event for unknown node", "target", ev.Target)
		return
	}
	m.onEvent(node, dom.Event{Type: ev.Event, Value: ev.Value})
}
