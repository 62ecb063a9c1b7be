package game

import (
	"math/rand"
	"time"

	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/mahjong/tile"
	"github.com/ratel-online/mahjong/mahjong/win"
)

type Phase string

const (
	PhaseWaiting         Phase = "waiting"
	PhaseAwaitingDraw    Phase = "awaiting_draw"
	PhaseAwaitingDiscard Phase = "awaiting_discard"
	PhaseFinished        Phase = "finished"
)

// NoSeat marks an absent winner or pile owner.
const NoSeat = -1

// Dealer always sits at seat 0.
const Dealer = 0

type Options struct {
	Rand *rand.Rand
	Now  func() time.Time
	// Shuffle orders a fresh catalog into the wall. Defaults to tile.Shuffle.
	Shuffle func(tiles []tile.Tile, rng *rand.Rand) []tile.Tile
}

// Game is the engine of one table. It is not safe for concurrent use; callers
// serialize access per room.
type Game struct {
	players []*Player
	deck    *Deck
	pile    *Pile
	cycler  *Cycler
	phase   Phase
	winner  int
	round   int
	history []Move
	rand    *rand.Rand
	now     func() time.Time
	shuffle func(tiles []tile.Tile, rng *rand.Rand) []tile.Tile
}

func New(capacity int, aiSeats []int, opts Options) (*Game, error) {
	if capacity < consts.MinCapacity || capacity > consts.MaxCapacity {
		return nil, consts.ErrorsInputInvalid
	}
	ai := make(map[int]bool, len(aiSeats))
	for _, seat := range aiSeats {
		if seat < 0 || seat >= capacity || ai[seat] {
			return nil, consts.ErrorsInputInvalid
		}
		ai[seat] = true
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Shuffle == nil {
		opts.Shuffle = tile.Shuffle
	}
	players := make([]*Player, capacity)
	for seat := range players {
		players[seat] = newPlayer(seat, ai[seat])
		players[seat].reset()
	}
	return &Game{
		players: players,
		deck:    newDeckOf(nil),
		pile:    NewPile(),
		cycler:  NewCycler(capacity, Dealer),
		phase:   PhaseWaiting,
		winner:  NoSeat,
		history: make([]Move, 0),
		rand:    opts.Rand,
		now:     opts.Now,
		shuffle: opts.Shuffle,
	}, nil
}

// Start shuffles a fresh wall and deals a new round. The dealer receives the
// extra tile, so play opens with the dealer's discard.
func (g *Game) Start() error {
	deck := newDeckOf(g.shuffle(tile.Catalog(), g.rand))
	hands, err := deck.Deal(len(g.players), Dealer)
	if err != nil {
		return err
	}
	for seat, player := range g.players {
		player.reset()
		player.hand.AddTiles(hands[seat])
	}
	g.deck = deck
	g.pile = NewPile()
	g.cycler.Reset(Dealer)
	g.phase = PhaseAwaitingDiscard
	g.winner = NoSeat
	g.round++
	g.history = make([]Move, 0)
	return nil
}

// Draw moves the last wall tile into the hand of seat.
func (g *Game) Draw(seat int) (tile.Tile, error) {
	if g.phase == PhaseFinished && g.winner == NoSeat && g.deck.NoTiles() {
		return tile.Tile{}, consts.ErrorsWallExhausted
	}
	if g.phase != PhaseAwaitingDraw || seat != g.cycler.Current() {
		return tile.Tile{}, consts.ErrorsNotYourTurn
	}
	if g.deck.NoTiles() {
		g.phase = PhaseFinished
		g.winner = NoSeat
		return tile.Tile{}, consts.ErrorsWallExhausted
	}
	t := g.deck.BottomDrawOne()
	g.players[seat].hand.AddTiles([]tile.Tile{t})
	g.record(MoveDraw, seat, t)
	g.phase = PhaseAwaitingDiscard
	return t, nil
}

// Discard puts the tile identified by tileID on the pile and passes the turn.
func (g *Game) Discard(seat int, tileID string) (tile.Tile, error) {
	if g.phase != PhaseAwaitingDiscard || seat != g.cycler.Current() {
		return tile.Tile{}, consts.ErrorsNotYourTurn
	}
	player := g.players[seat]
	t, ok := player.hand.RemoveTile(tileID)
	if !ok {
		return tile.Tile{}, consts.ErrorsTileNotInHand
	}
	player.discards = append(player.discards, t)
	g.pile.Add(t)
	g.pile.SetLastPlayer(seat)
	g.record(MoveDiscard, seat, t)
	g.cycler.Next()
	g.phase = PhaseAwaitingDraw
	return t, nil
}

// DeclareWin ends the round in favour of seat when its 14 tiles form a winning hand.
func (g *Game) DeclareWin(seat int) (win.Decomposition, error) {
	if !g.InProgress() || !g.validSeat(seat) {
		return win.Decomposition{}, consts.ErrorsNotYourTurn
	}
	tiles := g.players[seat].hand.Tiles()
	if len(tiles) != win.WinningSize {
		return win.Decomposition{}, consts.ErrorsInvalidWin
	}
	decomposition, ok := win.Decompose(tiles)
	if !ok {
		return win.Decomposition{}, consts.ErrorsInvalidWin
	}
	g.phase = PhaseFinished
	g.winner = seat
	g.record(MoveWin, seat, tile.Tile{})
	return decomposition, nil
}

// CanWin reports whether seat currently holds a winning hand.
func (g *Game) CanWin(seat int) bool {
	if !g.validSeat(seat) {
		return false
	}
	return win.IsWinningHand(g.players[seat].hand.Tiles())
}

func (g *Game) InProgress() bool {
	return g.phase == PhaseAwaitingDraw || g.phase == PhaseAwaitingDiscard
}

func (g *Game) IsOver() bool {
	return g.phase == PhaseFinished
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) CurrentSeat() int {
	return g.cycler.Current()
}

// Winner returns the winning seat, or NoSeat.
func (g *Game) Winner() int {
	return g.winner
}

func (g *Game) Round() int {
	return g.round
}

func (g *Game) Capacity() int {
	return len(g.players)
}

func (g *Game) WallSize() int {
	return g.deck.Size()
}

func (g *Game) IsAI(seat int) bool {
	return g.validSeat(seat) && g.players[seat].ai
}

func (g *Game) Player(seat int) *Player {
	if !g.validSeat(seat) {
		return nil
	}
	return g.players[seat]
}

// Hand returns a copy of the concealed tiles of seat.
func (g *Game) Hand(seat int) []tile.Tile {
	if !g.validSeat(seat) {
		return nil
	}
	return g.players[seat].hand.Tiles()
}

func (g *Game) Pile() *Pile {
	return g.pile
}

func (g *Game) History() []Move {
	history := make([]Move, len(g.history))
	copy(history, g.history)
	return history
}

func (g *Game) validSeat(seat int) bool {
	return seat >= 0 && seat < len(g.players)
}

func (g *Game) record(kind MoveType, seat int, t tile.Tile) {
	g.history = append(g.history, Move{Type: kind, Seat: seat, Tile: t, Timestamp: g.now()})
}
