package game

import (
	"github.com/ratel-online/mahjong/mahjong/tile"
	"github.com/ratel-online/mahjong/mahjong/win"
)

type SeatState struct {
	Name     string      `json:"name"`
	IsAI     bool        `json:"isAI"`
	HandSize int         `json:"handSize"`
	Melds    []win.Meld  `json:"melds"`
	Discards []tile.Tile `json:"discards"`
}

// State is the snapshot every seat may see. It never contains concealed tiles.
type State struct {
	Capacity    int         `json:"capacity"`
	CurrentSeat int         `json:"currentSeat"`
	Seats       []SeatState `json:"seats"`
	WallSize    int         `json:"wallSize"`
	DiscardPile []tile.Tile `json:"discardPile"`
	GameOver    bool        `json:"gameOver"`
	Winner      *int        `json:"winner"`
	RoundNumber int         `json:"roundNumber"`
	Phase       Phase       `json:"phase"`
}

func (g *Game) PublicState() State {
	seats := make([]SeatState, 0, len(g.players))
	for _, p := range g.players {
		seats = append(seats, SeatState{
			Name:     p.name,
			IsAI:     p.ai,
			HandSize: p.hand.Size(),
			Melds:    p.Melds(),
			Discards: p.Discards(),
		})
	}
	var winner *int
	if g.winner != NoSeat {
		w := g.winner
		winner = &w
	}
	return State{
		Capacity:    len(g.players),
		CurrentSeat: g.cycler.Current(),
		Seats:       seats,
		WallSize:    g.deck.Size(),
		DiscardPile: g.pile.Tiles(),
		GameOver:    g.phase == PhaseFinished,
		Winner:      winner,
		RoundNumber: g.round,
		Phase:       g.phase,
	}
}
