package service_test

import (
	"testing"

	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/model"
	"github.com/ratel-online/mahjong/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle(t *testing.T) {
	f := newFixture(t, service.Options{})

	t.Run("unknown_action", func(t *testing.T) {
		_, err := f.registry.Handle(1, "shuffleWall", nil)
		assert.Equal(t, consts.ErrorsUnknownAction, err)
	})

	t.Run("malformed_payload", func(t *testing.T) {
		_, err := f.registry.Handle(1, service.ActionCreateRoom, []byte(`{"playerMode":"four"}`))
		assert.Equal(t, consts.ErrorsInputInvalid, err)
	})

	t.Run("create_defaults_to_four_seats", func(t *testing.T) {
		data, err := f.registry.Handle(1, service.ActionCreateRoom, []byte(`{"aiPlayers":[3]}`))
		require.NoError(t, err)
		room := data.(model.Room)
		assert.Equal(t, 4, room.State.Capacity)
		assert.True(t, room.State.Seats[3].IsAI)
	})

	t.Run("join_start_and_discard", func(t *testing.T) {
		room := f.registry.RoomOf(1)
		require.NotNil(t, room)
		data, err := f.registry.Handle(2, service.ActionJoinRoom, []byte(`{"roomId":"`+room.ID+`"}`))
		require.NoError(t, err)
		assert.Equal(t, 1, data.(model.Room).SeatIndex)

		_, err = f.registry.Handle(1, service.ActionStartGame, nil)
		require.NoError(t, err)
		_, err = f.registry.Handle(2, service.ActionDrawTile, []byte(`{}`))
		assert.Equal(t, consts.ErrorsNotYourTurn, err)
		_, err = f.registry.Handle(1, service.ActionDiscardTile, []byte(`{"tileId":"nope"}`))
		assert.Equal(t, consts.ErrorsTileNotInHand, err)
		_, err = f.registry.Handle(2, service.ActionDeclareWin, nil)
		assert.Equal(t, consts.ErrorsInvalidWin, err)
	})
}
