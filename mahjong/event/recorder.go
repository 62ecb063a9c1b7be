package event

import "sync"

// Recorder keeps every event sent to it, grouped by connection.
type Recorder struct {
	mu     sync.Mutex
	events map[ConnID][]Event
}

func NewRecorder() *Recorder {
	return &Recorder{events: map[ConnID][]Event{}}
}

func (r *Recorder) Send(conn ConnID, ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[conn] = append(r.events[conn], ev)
	return nil
}

func (r *Recorder) Events(conn ConnID) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event{}, r.events[conn]...)
}

func (r *Recorder) Kinds(conn ConnID) []Kind {
	events := r.Events(conn)
	kinds := make([]Kind, 0, len(events))
	for _, ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

// Last returns the newest event of kind sent to conn.
func (r *Recorder) Last(conn ConnID, kind Kind) (Event, bool) {
	events := r.Events(conn)
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind == kind {
			return events[i], true
		}
	}
	return Event{}, false
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = map[ConnID][]Event{}
}
