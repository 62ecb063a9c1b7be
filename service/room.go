package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/mahjong/event"
	"github.com/ratel-online/mahjong/mahjong/game"
	"github.com/ratel-online/mahjong/model"
)

type binding struct {
	conn  event.ConnID
	bound bool
}

// Room owns one engine. Every field is guarded by the embedded mutex.
type Room struct {
	sync.Mutex

	ID         string
	State      int
	Creator    event.ConnID
	Game       *game.Game
	Generation uint64
	ActiveTime time.Time

	seats   []binding
	rand    *rand.Rand
	pending Cancel
	turns   uint64
	deleted bool
}

func newRoom(id string, g *game.Game, rng *rand.Rand) *Room {
	return &Room{
		ID:         id,
		State:      consts.RoomStateWaiting,
		Game:       g,
		ActiveTime: time.Now(),
		seats:      make([]binding, g.Capacity()),
		rand:       rng,
	}
}

// SeatOf returns the seat bound to conn.
func (room *Room) SeatOf(conn event.ConnID) (int, bool) {
	for seat, b := range room.seats {
		if b.bound && b.conn == conn {
			return seat, true
		}
	}
	return game.NoSeat, false
}

// Players counts bound human connections.
func (room *Room) Players() int {
	players := 0
	for _, b := range room.seats {
		if b.bound {
			players++
		}
	}
	return players
}

func (room *Room) Robots() int {
	robots := 0
	for seat := range room.seats {
		if room.Game.IsAI(seat) {
			robots++
		}
	}
	return robots
}

func (room *Room) freeSeat() int {
	for seat, b := range room.seats {
		if !b.bound && !room.Game.IsAI(seat) {
			return seat
		}
	}
	return game.NoSeat
}

func (room *Room) bind(seat int, conn event.ConnID) {
	room.seats[seat] = binding{conn: conn, bound: true}
	room.ActiveTime = time.Now()
}

func (room *Room) unbind(seat int) {
	room.seats[seat] = binding{}
	room.ActiveTime = time.Now()
}

// cancelPending stops the scheduled automated turn, if any.
func (room *Room) cancelPending() {
	if room.pending != nil {
		room.pending()
		room.pending = nil
	}
}

func (room *Room) broadcast(sender Sender, ev event.Event) {
	for _, b := range room.seats {
		if b.bound {
			room.unicast(sender, b.conn, ev)
		}
	}
}

func (room *Room) unicast(sender Sender, conn event.ConnID, ev event.Event) {
	if err := sender.Send(conn, ev); err != nil {
		log.Errorf("[Room] %s send %s to %d failed: %v\n", room.ID, ev.Kind, conn, err)
	}
}

func (room *Room) Model() model.RoomSummary {
	return model.RoomSummary{
		RoomID:    room.ID,
		State:     room.State,
		StateDesc: consts.RoomStates[room.State],
		Capacity:  room.Game.Capacity(),
		Players:   room.Players(),
		Robots:    room.Robots(),
		Round:     room.Game.Round(),
	}
}
