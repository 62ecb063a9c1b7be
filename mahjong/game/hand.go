package game

import "github.com/ratel-online/mahjong/mahjong/tile"

type Hand struct {
	tiles []tile.Tile
}

func NewHand() *Hand {
	return &Hand{tiles: make([]tile.Tile, 0, 14)}
}

func (h *Hand) AddTiles(tiles []tile.Tile) {
	h.tiles = append(h.tiles, tiles...)
}

func (h *Hand) Tiles() []tile.Tile {
	tiles := make([]tile.Tile, len(h.tiles))
	copy(tiles, h.tiles)
	return tiles
}

// RemoveTile takes the tile with the given identity out of the hand.
func (h *Hand) RemoveTile(id string) (tile.Tile, bool) {
	for index, t := range h.tiles {
		if t.ID == id {
			h.tiles = append(h.tiles[:index], h.tiles[index+1:]...)
			return t, true
		}
	}
	return tile.Tile{}, false
}

func (h *Hand) Size() int {
	return len(h.tiles)
}
