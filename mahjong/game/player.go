package game

import (
	"fmt"

	"github.com/ratel-online/mahjong/mahjong/tile"
	"github.com/ratel-online/mahjong/mahjong/win"
)

// Player is one seat of the table.
type Player struct {
	name     string
	ai       bool
	hand     *Hand
	melds    []win.Meld
	discards []tile.Tile
}

func newPlayer(seat int, ai bool) *Player {
	name := fmt.Sprintf("Player %d", seat+1)
	if ai {
		name = fmt.Sprintf("AI Player %d", seat+1)
	}
	return &Player{name: name, ai: ai, hand: NewHand()}
}

func (p *Player) reset() {
	p.hand = NewHand()
	p.melds = make([]win.Meld, 0)
	p.discards = make([]tile.Tile, 0)
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) IsAI() bool {
	return p.ai
}

func (p *Player) HandSize() int {
	return p.hand.Size()
}

func (p *Player) Discards() []tile.Tile {
	discards := make([]tile.Tile, len(p.discards))
	copy(discards, p.discards)
	return discards
}

func (p *Player) Melds() []win.Meld {
	melds := make([]win.Meld, len(p.melds))
	copy(melds, p.melds)
	return melds
}
