package event

import (
	"github.com/ratel-online/mahjong/mahjong/game"
	"github.com/ratel-online/mahjong/mahjong/tile"
	"github.com/ratel-online/mahjong/mahjong/win"
)

type Kind string

const (
	KindPlayerJoined  Kind = "playerJoined"
	KindGameStarted   Kind = "gameStarted"
	KindHandDealt     Kind = "handDealt"
	KindTileDrawn     Kind = "tileDrawn"
	KindPlayerDrew    Kind = "playerDrew"
	KindTileDiscarded Kind = "tileDiscarded"
	KindPlayerTurn    Kind = "playerTurn"
	KindGameEnded     Kind = "gameEnded"
	KindPlayerLeft    Kind = "playerLeft"
	KindRoomClosed    Kind = "roomClosed"
)

const (
	ActionDraw    = "draw"
	ActionDiscard = "discard"

	ReasonWin           = "win"
	ReasonWallExhausted = "wall_exhausted"
	ReasonIdle          = "idle"
)

// ConnID addresses one client connection.
type ConnID int64

// Event is pushed to clients as {"event": kind, "data": payload}.
type Event struct {
	Kind Kind        `json:"event"`
	Data interface{} `json:"data"`
}

type PlayerJoined struct {
	RoomID      string     `json:"roomId"`
	SeatIndex   int        `json:"seatIndex"`
	PlayerCount int        `json:"playerCount"`
	State       game.State `json:"gameState"`
}

type GameStarted struct {
	State game.State `json:"gameState"`
}

// HandDealt is sent only to the seat that owns the tiles.
type HandDealt struct {
	SeatIndex int         `json:"seatIndex"`
	Tiles     []tile.Tile `json:"tiles"`
}

// TileDrawn is sent only to the drawing seat.
type TileDrawn struct {
	SeatIndex int       `json:"seatIndex"`
	Tile      tile.Tile `json:"tile"`
}

type PlayerDrew struct {
	SeatIndex int        `json:"seatIndex"`
	State     game.State `json:"gameState"`
}

type TileDiscarded struct {
	SeatIndex int        `json:"seatIndex"`
	Tile      tile.Tile  `json:"tile"`
	State     game.State `json:"gameState"`
}

type PlayerTurn struct {
	CurrentSeat int    `json:"currentPlayer"`
	Action      string `json:"action"`
}

type GameEnded struct {
	Winner      *int               `json:"winner"`
	Reason      string             `json:"reason"`
	State       game.State         `json:"gameState"`
	WinningHand *win.Decomposition `json:"winningHand,omitempty"`
}

type PlayerLeft struct {
	SeatIndex int `json:"playerIndex"`
	Remaining int `json:"remainingPlayers"`
}

// RoomClosed is sent before the server drops a room its players did not leave.
type RoomClosed struct {
	RoomID string `json:"roomId"`
	Reason string `json:"reason"`
}
