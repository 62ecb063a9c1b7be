package service

import (
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/mahjong/event"
	"github.com/ratel-online/mahjong/mahjong/tile"
)

// Sender delivers an event to one connection.
type Sender interface {
	Send(conn event.ConnID, ev event.Event) error
}

type Options struct {
	Scheduler   Scheduler
	Policy      DiscardPolicy
	AIMoveDelay time.Duration
	// NewRand seeds the engine and the discard policy of each new room.
	NewRand func() *rand.Rand
	NewID   func() string
	// Shuffle overrides how each round's wall is ordered.
	Shuffle func(tiles []tile.Tile, rng *rand.Rand) []tile.Tile
}

// Registry maps room ids to rooms and connections to the room they are bound to.
// mu serializes map writes and is never held while a room is locked by the same call.
type Registry struct {
	mu        sync.RWMutex
	rooms     *hashmap.HashMap
	connRooms *hashmap.HashMap
	sender    Sender
	scheduler Scheduler
	policy    DiscardPolicy
	aiDelay   time.Duration
	newRand   func() *rand.Rand
	newID     func() string
	shuffle   func(tiles []tile.Tile, rng *rand.Rand) []tile.Tile
}

var seeds int64

func NewRegistry(sender Sender, opts Options) *Registry {
	if opts.Scheduler == nil {
		opts.Scheduler = NewTimerScheduler()
	}
	if opts.Policy == nil {
		opts.Policy = RandomPolicy{}
	}
	if opts.NewRand == nil {
		opts.NewRand = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano() + atomic.AddInt64(&seeds, 1)))
		}
	}
	if opts.NewID == nil {
		opts.NewID = func() string {
			return "room-" + uuid.NewString()
		}
	}
	return &Registry{
		rooms:     hashmap.New(),
		connRooms: hashmap.New(),
		sender:    sender,
		scheduler: opts.Scheduler,
		policy:    opts.Policy,
		aiDelay:   opts.AIMoveDelay,
		newRand:   opts.NewRand,
		newID:     opts.NewID,
		shuffle:   opts.Shuffle,
	}
}

func (r *Registry) GetRoom(roomID string) *Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if v, ok := r.rooms.Get(roomID); ok {
		return v.(*Room)
	}
	return nil
}

func (r *Registry) GetRooms() []*Room {
	list := make([]*Room, 0)
	r.mu.RLock()
	r.rooms.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Room))
	})
	r.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

// RoomOf returns the room conn is bound to, or nil.
func (r *Registry) RoomOf(conn event.ConnID) *Room {
	r.mu.RLock()
	v, ok := r.connRooms.Get(int64(conn))
	r.mu.RUnlock()
	if ok {
		return r.GetRoom(v.(string))
	}
	return nil
}

func (r *Registry) addRoom(room *Room) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms.Set(room.ID, room)
}

func (r *Registry) bindConn(conn event.ConnID, roomID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connRooms.Set(int64(conn), roomID)
}

func (r *Registry) unbindConn(conn event.ConnID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connRooms.Del(int64(conn))
}

// deleteRoom must be called with the room locked.
func (r *Registry) deleteRoom(room *Room) {
	room.Generation++
	room.cancelPending()
	room.deleted = true
	r.mu.Lock()
	r.rooms.Del(room.ID)
	r.mu.Unlock()
	log.Infof("[Room] %s removed\n", room.ID)
}

// seatedRoom resolves the room and seat of conn, locking the room on success.
func (r *Registry) seatedRoom(conn event.ConnID) (*Room, int, error) {
	room := r.RoomOf(conn)
	if room == nil {
		return nil, 0, consts.ErrorsRoomNotFound
	}
	room.Lock()
	seat, ok := room.SeatOf(conn)
	if room.deleted || !ok {
		room.Unlock()
		return nil, 0, consts.ErrorsRoomNotFound
	}
	room.ActiveTime = time.Now()
	return room, seat, nil
}

// Sweep removes rooms idle for longer than maxIdle. Their connections are told
// the room closed and are unbound.
func (r *Registry) Sweep(now time.Time, maxIdle time.Duration) int {
	removed := 0
	for _, room := range r.GetRooms() {
		room.Lock()
		if !room.deleted && room.ActiveTime.Add(maxIdle).Before(now) {
			log.Infof("[Room] %s idle since %s\n", room.ID, room.ActiveTime.Format(time.RFC3339))
			room.broadcast(r.sender, event.Event{Kind: event.KindRoomClosed, Data: event.RoomClosed{
				RoomID: room.ID,
				Reason: event.ReasonIdle,
			}})
			for _, b := range room.seats {
				if b.bound && r.RoomOf(b.conn) == room {
					r.unbindConn(b.conn)
				}
			}
			r.deleteRoom(room)
			removed++
		}
		room.Unlock()
	}
	return removed
}

// RunJanitor sweeps idle rooms every interval until the process exits.
func (r *Registry) RunJanitor(interval, maxIdle time.Duration) {
	async.Async(func() {
		for {
			time.Sleep(interval)
			r.Sweep(time.Now(), maxIdle)
		}
	})
}
