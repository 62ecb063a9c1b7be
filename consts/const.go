package consts

import (
	"time"
)

const (
	MinCapacity = 1
	MaxCapacity = 4

	// HandSize is the number of concealed tiles every seat holds between turns.
	HandSize = 13

	RoomStateWaiting  = 1
	RoomStatePlaying  = 2
	RoomStateFinished = 3

	DefaultTCPAddr     = ":9999"
	DefaultWSAddr      = ":3000"
	DefaultAIMoveDelay = 1 * time.Second
	RoomSweepInterval  = 1 * time.Minute
	RoomMaxIdle        = 24 * time.Hour

	// SendQueueSize bounds the messages waiting to be written to one connection.
	SendQueueSize = 64

	AIPolicyRandom   = "random"
	AIPolicyIsolated = "isolated"
)

var RoomStates = map[int]string{
	RoomStateWaiting:  "Waiting",
	RoomStatePlaying:  "Playing",
	RoomStateFinished: "Finished",
}

type Error struct {
	Code string
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code string, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsNotYourTurn        = NewErr("not_your_turn", false, "Not your turn. ")
	ErrorsTileNotInHand      = NewErr("tile_not_in_hand", false, "Tile not in hand. ")
	ErrorsRoomNotFound       = NewErr("room_not_found", false, "Room not found. ")
	ErrorsRoomFull           = NewErr("room_full", false, "Room is full. ")
	ErrorsRoomRunning        = NewErr("room_running", false, "Join fail, room is running. ")
	ErrorsInvalidWin         = NewErr("invalid_win", false, "Invalid win. ")
	ErrorsWallExhausted      = NewErr("wall_empty", false, "Wall empty. ")
	ErrorsWallShort          = NewErr("wall_short", false, "Not enough tiles in the wall to deal. ")
	ErrorsInputInvalid       = NewErr("input_invalid", false, "Input invalid. ")
	ErrorsUnknownAction      = NewErr("unknown_action", false, "Unknown action. ")
	ErrorsConnectionNotFound = NewErr("connection_not_found", true, "Connection not found. ")
	ErrorsSendQueueFull      = NewErr("send_queue_full", true, "Connection too slow, dropped. ")
)

// Code returns the wire code of err, or "internal" for errors outside the taxonomy.
func Code(err error) string {
	if e, ok := err.(Error); ok {
		return e.Code
	}
	return "internal"
}
