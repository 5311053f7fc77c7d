package feed

import "sync"

// Registry keys live hubs by replay pin. Hubs are started lazily on the first
// watch and torn down when their replay is deleted.
type Registry struct {
	mu    sync.Mutex
	rooms map[string]*Hub
}

func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]*Hub),
	}
}

// Room returns the hub for a pin, starting one if none is running.
func (r *Registry) Room(pin string) *Hub {
	r.mu.Lock()
	defer r.mu.Unlock()

	hub, ok := r.rooms[pin]
	if !ok {
		hub = newHub(pin)
		r.rooms[pin] = hub
		go hub.Run()
	}
	return hub
}

// Publish hands an event to the pin's hub if anyone ever opened one. Events
// for unwatched replays are dropped; there is no history to replay.
func (r *Registry) Publish(pin string, event Event) {
	r.mu.Lock()
	hub, ok := r.rooms[pin]
	r.mu.Unlock()

	if !ok {
		return
	}

	select {
	case hub.Events <- event:
	default:
	}
}

// Close stops the pin's hub and disconnects its watchers.
func (r *Registry) Close(pin string) {
	r.mu.Lock()
	hub, ok := r.rooms[pin]
	if ok {
		delete(r.rooms, pin)
	}
	r.mu.Unlock()

	if ok {
		close(hub.done)
	}
}
