package model

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/mahjong/mahjong/game"
	"github.com/ratel-online/mahjong/mahjong/tile"
	"github.com/ratel-online/mahjong/mahjong/win"
)

// Request is one client packet: {"seq": 1, "action": "discardTile", "data": {...}}.
type Request struct {
	Seq    int64               `json:"seq"`
	Action string              `json:"action"`
	Data   jsoniter.RawMessage `json:"data"`
}

// Response answers exactly one Request with the same seq.
type Response struct {
	Seq     int64       `json:"seq"`
	Success bool        `json:"success"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func SucResp(seq int64, data interface{}) Response {
	return Response{Seq: seq, Success: true, Data: data}
}

func ErrResp(seq int64, code, msg string) Response {
	return Response{Seq: seq, Success: false, Error: code, Message: msg}
}

type CreateRoomReq struct {
	Capacity int   `json:"playerMode"`
	AISeats  []int `json:"aiPlayers"`
}

type JoinRoomReq struct {
	RoomID string `json:"roomId"`
}

type DiscardTileReq struct {
	TileID string `json:"tileId"`
}

type Room struct {
	RoomID    string     `json:"roomId"`
	SeatIndex int        `json:"playerIndex"`
	State     game.State `json:"gameState"`
}

type Start struct {
	State game.State `json:"gameState"`
}

type Draw struct {
	Tile  tile.Tile  `json:"tile"`
	State game.State `json:"gameState"`
}

type Discard struct {
	Tile  tile.Tile  `json:"tile"`
	State game.State `json:"gameState"`
}

type Win struct {
	Winner      int               `json:"winner"`
	WinningHand win.Decomposition `json:"winningHand"`
	State       game.State        `json:"gameState"`
}

// RoomSummary is the listing entry served over HTTP.
type RoomSummary struct {
	RoomID    string `json:"roomId"`
	State     int    `json:"state"`
	StateDesc string `json:"stateDesc"`
	Capacity  int    `json:"capacity"`
	Players   int    `json:"players"`
	Robots    int    `json:"robots"`
	Round     int    `json:"round"`
}

type Health struct {
	Status    string  `json:"status"`
	Service   string  `json:"service"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
	Rooms     int     `json:"rooms"`
}
