package game

import (
	"time"

	"github.com/ratel-online/mahjong/mahjong/tile"
)

type MoveType string

const (
	MoveDraw    MoveType = "draw"
	MoveDiscard MoveType = "discard"
	MoveWin     MoveType = "win"
)

// Move is one entry of the append-only history. Tile is zero for a win.
type Move struct {
	Type      MoveType  `json:"type"`
	Seat      int       `json:"seat"`
	Tile      tile.Tile `json:"tile"`
	Timestamp time.Time `json:"timestamp"`
}
