package feed

import (
	"errors"

	"github.com/gorilla/websocket"
)

// errFeedClosed is the close reason watchers see when a replay's feed is torn
// down, which happens when the replay itself is deleted.
var errFeedClosed = errors.New("feed closed")

// Hub fans one replay's events out to its watchers. All membership changes
// and broadcasts flow through Run's select loop, so the watcher set needs no
// lock.
type Hub struct {
	pin          string
	watchers     map[*Watcher]bool
	JoinWatcher  chan *Watcher
	LeaveWatcher chan *Watcher
	Events       chan Event
	done         chan struct{}
}

func newHub(pin string) *Hub {
	return &Hub{
		pin:          pin,
		watchers:     make(map[*Watcher]bool),
		JoinWatcher:  make(chan *Watcher),
		LeaveWatcher: make(chan *Watcher),
		Events:       make(chan Event, 8),
		done:         make(chan struct{}),
	}
}

// Join registers the connection and starts its pumps. A connection joining a
// hub that has already shut down is closed straight away.
func (h *Hub) Join(conn *websocket.Conn) *Watcher {
	watcher := newWatcher(h, conn)
	select {
	case h.JoinWatcher <- watcher:
	case <-h.done:
		conn.Close()
		return watcher
	}
	go watcher.WriteEvents()
	go watcher.ReadEvents()
	return watcher
}

// leave removes the watcher from the hub. Once the hub has shut down nothing
// drains LeaveWatcher, so leaving becomes a no-op rather than a blocked send.
func (h *Hub) leave(w *Watcher) {
	select {
	case h.LeaveWatcher <- w:
	case <-h.done:
	}
}

func (h *Hub) Run() {
	for {
		select {
		case watcher := <-h.JoinWatcher:
			h.watchers[watcher] = true
		case watcher := <-h.LeaveWatcher:
			if _, ok := h.watchers[watcher]; ok {
				delete(h.watchers, watcher)
				close(watcher.Receive)
			}
		case event := <-h.Events:
			message, err := event.marshal()
			if err != nil {
				continue
			}
			h.toAllWatchers(message)
		case <-h.done:
			for watcher := range h.watchers {
				delete(h.watchers, watcher)
				watcher.Close <- errFeedClosed
			}
			return
		}
	}
}

func (h *Hub) toAllWatchers(message []byte) {
	for watcher := range h.watchers {
		select {
		case watcher.Receive <- message:
		default:
			close(watcher.Receive)
			delete(h.watchers, watcher)
		}
	}
}
