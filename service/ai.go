package service

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/mahjong/game"
	"github.com/ratel-online/mahjong/render"
)

type aiTicket struct {
	roomID     string
	generation uint64
	turn       uint64
}

// scheduleAI must be called with the room locked.
func (r *Registry) scheduleAI(room *Room) {
	room.cancelPending()
	room.turns++
	ticket := aiTicket{roomID: room.ID, generation: room.Generation, turn: room.turns}
	room.pending = r.scheduler.Schedule(r.aiDelay, func() {
		r.aiTurn(ticket)
	})
}

// aiTurn plays one automated turn unless the room moved on since it was scheduled.
func (r *Registry) aiTurn(ticket aiTicket) {
	room := r.GetRoom(ticket.roomID)
	if room == nil {
		return
	}
	room.Lock()
	defer room.Unlock()
	if room.deleted || room.Generation != ticket.generation || room.turns != ticket.turn || room.State != consts.RoomStatePlaying {
		log.Infof("[AI] %s: stale turn dropped\n", room.ID)
		return
	}
	room.pending = nil

	g := room.Game
	seat := g.CurrentSeat()
	if !g.IsAI(seat) || !g.InProgress() {
		return
	}
	if g.Phase() == game.PhaseAwaitingDraw {
		if _, err := g.Draw(seat); err != nil {
			if err == consts.ErrorsWallExhausted {
				r.finishExhausted(room)
			} else {
				log.Errorf("[AI] %s: draw failed: %v\n", room.ID, err)
			}
			return
		}
		r.afterDraw(room, seat)
	}
	if g.CanWin(seat) {
		if decomposition, err := g.DeclareWin(seat); err == nil {
			r.finishWin(room, seat, decomposition)
			return
		}
	}
	hand := g.Hand(seat)
	choice := r.policy.Choose(hand, room.rand)
	log.Infof("[AI] %s: player %d holds %s, picks %s\n", room.ID, seat, render.Tiles(hand), render.Tile(choice))
	t, err := g.Discard(seat, choice.ID)
	if err != nil {
		log.Errorf("[AI] %s: discard %s failed: %v\n", room.ID, choice.ID, err)
		return
	}
	r.afterDiscard(room, seat, t)
}
