package game

import "github.com/ratel-online/mahjong/mahjong/tile"

// Pile is the discard pile shared by every seat.
type Pile struct {
	tiles      []tile.Tile
	lastPlayer int
}

func NewPile() *Pile {
	return &Pile{tiles: make([]tile.Tile, 0, tile.Total), lastPlayer: NoSeat}
}

func (p *Pile) SetLastPlayer(seat int) {
	p.lastPlayer = seat
}

func (p *Pile) LastPlayer() int {
	return p.lastPlayer
}

func (p *Pile) Add(t tile.Tile) {
	p.tiles = append(p.tiles, t)
}

func (p *Pile) Tiles() []tile.Tile {
	tiles := make([]tile.Tile, len(p.tiles))
	copy(tiles, p.tiles)
	return tiles
}

func (p *Pile) Size() int {
	return len(p.tiles)
}
