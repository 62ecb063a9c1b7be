package game

import (
	"math/rand"

	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/mahjong/tile"
)

// Deck is the wall. Tiles leave from the end only.
type Deck struct {
	tiles []tile.Tile
}

func NewDeck(rng *rand.Rand) *Deck {
	return &Deck{tiles: tile.Shuffle(tile.Catalog(), rng)}
}

func newDeckOf(tiles []tile.Tile) *Deck {
	return &Deck{tiles: append([]tile.Tile{}, tiles...)}
}

func (d *Deck) NoTiles() bool {
	return len(d.tiles) == 0
}

func (d *Deck) Size() int {
	return len(d.tiles)
}

func (d *Deck) Tiles() []tile.Tile {
	tiles := make([]tile.Tile, len(d.tiles))
	copy(tiles, d.tiles)
	return tiles
}

// BottomDrawOne removes and returns the last tile. The wall must not be empty.
func (d *Deck) BottomDrawOne() tile.Tile {
	t := d.tiles[len(d.tiles)-1]
	d.tiles = d.tiles[:len(d.tiles)-1]
	return t
}

// Deal hands out HandSize tiles per seat in seat order, then one more to the dealer.
func (d *Deck) Deal(capacity, dealer int) ([][]tile.Tile, error) {
	if len(d.tiles) < consts.HandSize*capacity+1 {
		return nil, consts.ErrorsWallShort
	}
	hands := make([][]tile.Tile, capacity)
	for seat := 0; seat < capacity; seat++ {
		hands[seat] = make([]tile.Tile, 0, consts.HandSize+1)
		for i := 0; i < consts.HandSize; i++ {
			hands[seat] = append(hands[seat], d.BottomDrawOne())
		}
	}
	hands[dealer] = append(hands[dealer], d.BottomDrawOne())
	return hands, nil
}
