package service

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/mahjong/event"
	"github.com/ratel-online/mahjong/model"
)

const (
	ActionCreateRoom  = "createRoom"
	ActionJoinRoom    = "joinRoom"
	ActionStartGame   = "startGame"
	ActionDrawTile    = "drawTile"
	ActionDiscardTile = "discardTile"
	ActionDeclareWin  = "declareWin"
)

type servlet func(r *Registry, conn event.ConnID, data []byte) (interface{}, error)

var servlets = map[string]servlet{
	ActionCreateRoom:  createRoom,
	ActionJoinRoom:    joinRoom,
	ActionStartGame:   startGame,
	ActionDrawTile:    drawTile,
	ActionDiscardTile: discardTile,
	ActionDeclareWin:  declareWin,
}

// Handle runs one client action and returns the payload of its response.
func (r *Registry) Handle(conn event.ConnID, action string, data []byte) (interface{}, error) {
	s, ok := servlets[action]
	if !ok {
		return nil, consts.ErrorsUnknownAction
	}
	return s(r, conn, data)
}

func createRoom(r *Registry, conn event.ConnID, data []byte) (interface{}, error) {
	req := model.CreateRoomReq{}
	if err := decode(data, &req); err != nil {
		return nil, err
	}
	if req.Capacity == 0 {
		req.Capacity = consts.MaxCapacity
	}
	return r.CreateRoom(conn, req.Capacity, req.AISeats)
}

func joinRoom(r *Registry, conn event.ConnID, data []byte) (interface{}, error) {
	req := model.JoinRoomReq{}
	if err := decode(data, &req); err != nil {
		return nil, err
	}
	return r.JoinRoom(conn, req.RoomID)
}

func startGame(r *Registry, conn event.ConnID, _ []byte) (interface{}, error) {
	return r.StartGame(conn)
}

func drawTile(r *Registry, conn event.ConnID, _ []byte) (interface{}, error) {
	return r.DrawTile(conn)
}

func discardTile(r *Registry, conn event.ConnID, data []byte) (interface{}, error) {
	req := model.DiscardTileReq{}
	if err := decode(data, &req); err != nil {
		return nil, err
	}
	return r.DiscardTile(conn, req.TileID)
}

func declareWin(r *Registry, conn event.ConnID, _ []byte) (interface{}, error) {
	return r.DeclareWin(conn)
}

func decode(data []byte, v interface{}) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, v); err != nil {
		return consts.ErrorsInputInvalid
	}
	return nil
}
