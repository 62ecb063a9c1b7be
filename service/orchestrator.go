package service

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/mahjong/event"
	"github.com/ratel-online/mahjong/mahjong/game"
	"github.com/ratel-online/mahjong/mahjong/tile"
	"github.com/ratel-online/mahjong/mahjong/win"
	"github.com/ratel-online/mahjong/model"
	"github.com/ratel-online/mahjong/render"
)

// CreateRoom opens a room and binds conn as its creator to seat 0. When seat 0
// is automated the creator only watches and starts rounds.
func (r *Registry) CreateRoom(conn event.ConnID, capacity int, aiSeats []int) (model.Room, error) {
	rng := r.newRand()
	g, err := game.New(capacity, aiSeats, game.Options{Rand: rng, Shuffle: r.shuffle})
	if err != nil {
		return model.Room{}, err
	}
	r.Leave(conn)

	room := newRoom(r.newID(), g, rng)
	room.Creator = conn
	room.Lock()
	defer room.Unlock()
	room.bind(0, conn)
	r.addRoom(room)
	r.bindConn(conn, room.ID)
	log.Infof("[Room] created %s with %d players (AI: %v)\n", room.ID, capacity, aiSeats)

	state := g.PublicState()
	room.broadcast(r.sender, event.Event{Kind: event.KindPlayerJoined, Data: event.PlayerJoined{
		RoomID:      room.ID,
		SeatIndex:   0,
		PlayerCount: room.Players(),
		State:       state,
	}})
	return model.Room{RoomID: room.ID, SeatIndex: 0, State: state}, nil
}

// JoinRoom binds conn to the lowest free human seat of roomID. The seat is
// reserved before conn leaves its current room, so a rejected join keeps conn
// where it was.
func (r *Registry) JoinRoom(conn event.ConnID, roomID string) (model.Room, error) {
	room := r.GetRoom(roomID)
	if room == nil {
		return model.Room{}, consts.ErrorsRoomNotFound
	}
	seat, joined, err := r.reserveSeat(room, conn)
	if err != nil {
		return model.Room{}, err
	}
	if !joined {
		room.Lock()
		defer room.Unlock()
		return model.Room{RoomID: room.ID, SeatIndex: seat, State: room.Game.PublicState()}, nil
	}
	if current := r.RoomOf(conn); current != nil && current != room {
		r.Leave(conn)
	}

	room.Lock()
	defer room.Unlock()
	if room.deleted {
		return model.Room{}, consts.ErrorsRoomNotFound
	}
	r.bindConn(conn, room.ID)
	log.Infof("[Room] %d joined %s as player %d\n", conn, room.ID, seat)

	state := room.Game.PublicState()
	room.broadcast(r.sender, event.Event{Kind: event.KindPlayerJoined, Data: event.PlayerJoined{
		RoomID:      room.ID,
		SeatIndex:   seat,
		PlayerCount: room.Players(),
		State:       state,
	}})
	return model.Room{RoomID: room.ID, SeatIndex: seat, State: state}, nil
}

// reserveSeat binds conn to a free seat of room. joined is false when conn
// already held a seat there.
func (r *Registry) reserveSeat(room *Room, conn event.ConnID) (seat int, joined bool, err error) {
	room.Lock()
	defer room.Unlock()
	if room.deleted {
		return game.NoSeat, false, consts.ErrorsRoomNotFound
	}
	if seat, ok := room.SeatOf(conn); ok {
		return seat, false, nil
	}
	if room.State == consts.RoomStatePlaying {
		return game.NoSeat, false, consts.ErrorsRoomRunning
	}
	seat = room.freeSeat()
	if seat == game.NoSeat {
		return game.NoSeat, false, consts.ErrorsRoomFull
	}
	room.bind(seat, conn)
	return seat, true, nil
}

// StartGame deals a new round in the room of conn. Any automated turn of the
// previous round is dropped.
func (r *Registry) StartGame(conn event.ConnID) (model.Start, error) {
	room, _, err := r.seatedRoom(conn)
	if err != nil {
		return model.Start{}, err
	}
	defer room.Unlock()

	if err := room.Game.Start(); err != nil {
		return model.Start{}, err
	}
	room.Generation++
	room.cancelPending()
	room.State = consts.RoomStatePlaying
	log.Infof("[Game] %s round %d started\n", room.ID, room.Game.Round())

	state := room.Game.PublicState()
	room.broadcast(r.sender, event.Event{Kind: event.KindGameStarted, Data: event.GameStarted{State: state}})
	for seat, b := range room.seats {
		if b.bound && !room.Game.IsAI(seat) {
			room.unicast(r.sender, b.conn, event.Event{Kind: event.KindHandDealt, Data: event.HandDealt{
				SeatIndex: seat,
				Tiles:     room.Game.Hand(seat),
			}})
		}
	}
	r.advance(room)
	return model.Start{State: state}, nil
}

// movingRoom resolves the seat conn plays for. A creator bound to an automated
// seat cannot move for it.
func (r *Registry) movingRoom(conn event.ConnID) (*Room, int, error) {
	room, seat, err := r.seatedRoom(conn)
	if err != nil {
		return nil, 0, err
	}
	if room.Game.IsAI(seat) {
		room.Unlock()
		return nil, 0, consts.ErrorsNotYourTurn
	}
	return room, seat, nil
}

func (r *Registry) DrawTile(conn event.ConnID) (model.Draw, error) {
	room, seat, err := r.movingRoom(conn)
	if err != nil {
		return model.Draw{}, err
	}
	defer room.Unlock()

	t, err := room.Game.Draw(seat)
	if err != nil {
		if err == consts.ErrorsWallExhausted {
			r.finishExhausted(room)
		}
		return model.Draw{}, err
	}
	r.afterDraw(room, seat)
	room.unicast(r.sender, conn, event.Event{Kind: event.KindTileDrawn, Data: event.TileDrawn{SeatIndex: seat, Tile: t}})
	return model.Draw{Tile: t, State: room.Game.PublicState()}, nil
}

func (r *Registry) DiscardTile(conn event.ConnID, tileID string) (model.Discard, error) {
	room, seat, err := r.movingRoom(conn)
	if err != nil {
		return model.Discard{}, err
	}
	defer room.Unlock()

	t, err := room.Game.Discard(seat, tileID)
	if err != nil {
		return model.Discard{}, err
	}
	state := r.afterDiscard(room, seat, t)
	return model.Discard{Tile: t, State: state}, nil
}

func (r *Registry) DeclareWin(conn event.ConnID) (model.Win, error) {
	room, seat, err := r.movingRoom(conn)
	if err != nil {
		return model.Win{}, err
	}
	defer room.Unlock()

	decomposition, err := room.Game.DeclareWin(seat)
	if err != nil {
		log.Infof("[Win] %s: player %d claimed an invalid win\n", room.ID, seat)
		return model.Win{}, err
	}
	state := r.finishWin(room, seat, decomposition)
	return model.Win{Winner: seat, WinningHand: decomposition, State: state}, nil
}

// Leave unbinds conn. The room is removed once no human connection remains.
func (r *Registry) Leave(conn event.ConnID) {
	room := r.RoomOf(conn)
	r.unbindConn(conn)
	if room == nil {
		return
	}
	room.Lock()
	defer room.Unlock()
	seat, ok := room.SeatOf(conn)
	if room.deleted || !ok {
		return
	}
	room.unbind(seat)
	remaining := room.Players()
	log.Infof("[Disconnect] %d left %s (player %d), %d remaining\n", conn, room.ID, seat, remaining)
	room.broadcast(r.sender, event.Event{Kind: event.KindPlayerLeft, Data: event.PlayerLeft{
		SeatIndex: seat,
		Remaining: remaining,
	}})
	if remaining == 0 {
		r.deleteRoom(room)
		return
	}
	if room.Creator == conn {
		for _, b := range room.seats {
			if b.bound {
				room.Creator = b.conn
				break
			}
		}
	}
}

func (r *Registry) afterDraw(room *Room, seat int) {
	log.Infof("[Move] %s: player %d drew, wall %d\n", room.ID, seat, room.Game.WallSize())
	room.broadcast(r.sender, event.Event{Kind: event.KindPlayerDrew, Data: event.PlayerDrew{
		SeatIndex: seat,
		State:     room.Game.PublicState(),
	}})
}

func (r *Registry) afterDiscard(room *Room, seat int, t tile.Tile) game.State {
	log.Infof("[Move] %s: player %d discarded %s\n", room.ID, seat, render.Tile(t))
	state := room.Game.PublicState()
	room.broadcast(r.sender, event.Event{Kind: event.KindTileDiscarded, Data: event.TileDiscarded{
		SeatIndex: seat,
		Tile:      t,
		State:     state,
	}})
	r.advance(room)
	return state
}

// advance hands the turn to the current seat: automated seats are scheduled,
// human seats are notified.
func (r *Registry) advance(room *Room) {
	g := room.Game
	if !g.InProgress() {
		return
	}
	current := g.CurrentSeat()
	if g.IsAI(current) {
		r.scheduleAI(room)
		return
	}
	action := event.ActionDraw
	if g.Phase() == game.PhaseAwaitingDiscard {
		action = event.ActionDiscard
	}
	room.broadcast(r.sender, event.Event{Kind: event.KindPlayerTurn, Data: event.PlayerTurn{
		CurrentSeat: current,
		Action:      action,
	}})
}

func (r *Registry) finishWin(room *Room, seat int, decomposition win.Decomposition) game.State {
	room.State = consts.RoomStateFinished
	room.cancelPending()
	state := room.Game.PublicState()
	log.Infof("[Win] %s: player %d won with %s\n%s", room.ID, seat, render.Decomposition(decomposition), render.Board(state))
	winner := seat
	room.broadcast(r.sender, event.Event{Kind: event.KindGameEnded, Data: event.GameEnded{
		Winner:      &winner,
		Reason:      event.ReasonWin,
		State:       state,
		WinningHand: &decomposition,
	}})
	return state
}

func (r *Registry) finishExhausted(room *Room) {
	if room.State != consts.RoomStatePlaying {
		return
	}
	room.State = consts.RoomStateFinished
	room.cancelPending()
	state := room.Game.PublicState()
	log.Infof("[Game] %s: wall exhausted, no winner\n%s", room.ID, render.Board(state))
	room.broadcast(r.sender, event.Event{Kind: event.KindGameEnded, Data: event.GameEnded{
		Reason: event.ReasonWallExhausted,
		State:  state,
	}})
}
