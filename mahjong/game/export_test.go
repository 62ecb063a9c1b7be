package game

import "github.com/ratel-online/mahjong/mahjong/tile"

func (g *Game) WallTiles() []tile.Tile {
	return g.deck.Tiles()
}

// SetHand replaces the concealed tiles of seat.
func (g *Game) SetHand(seat int, tiles []tile.Tile) {
	g.players[seat].hand = NewHand()
	g.players[seat].hand.AddTiles(tiles)
}

var NewDeckOf = newDeckOf
