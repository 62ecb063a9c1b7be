package service_test

import (
	"sync"
	"testing"
	"time"

	"github.com/ratel-online/mahjong/mahjong/event"
	"github.com/ratel-online/mahjong/mahjong/tile"
	"github.com/ratel-online/mahjong/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertConserved checks that the wall, the hands and the discard pile hold
// every tile of the set exactly once.
func assertConserved(t *testing.T, room *service.Room) {
	t.Helper()
	require.NotNil(t, room)
	room.Lock()
	defer room.Unlock()
	g := room.Game
	seen := map[string]bool{}
	held := g.Pile().Tiles()
	for seat := 0; seat < g.Capacity(); seat++ {
		held = append(held, g.Hand(seat)...)
	}
	for _, tl := range held {
		assert.False(t, seen[tl.ID], "tile %s held twice", tl.ID)
		seen[tl.ID] = true
	}
	assert.Equal(t, tile.Total, len(held)+g.WallSize())
}

func TestConcurrentRooms(t *testing.T) {
	registry := service.NewRegistry(event.NewRecorder(), service.Options{})
	const tables = 8

	wg := sync.WaitGroup{}
	for i := 1; i <= tables; i++ {
		wg.Add(1)
		go func(conn event.ConnID) {
			defer wg.Done()
			_, err := registry.CreateRoom(conn, 4, []int{0, 1, 2, 3})
			if !assert.NoError(t, err) {
				return
			}
			_, err = registry.StartGame(conn)
			assert.NoError(t, err)
		}(event.ConnID(i))
	}

	shared, err := registry.CreateRoom(100, 3, []int{2})
	require.NoError(t, err)
	_, err = registry.JoinRoom(101, shared.RoomID)
	require.NoError(t, err)
	_, err = registry.StartGame(100)
	require.NoError(t, err)
	for _, conn := range []event.ConnID{100, 100, 101, 101} {
		wg.Add(1)
		go func(conn event.ConnID) {
			defer wg.Done()
			for i := 0; i < 300; i++ {
				room := registry.RoomOf(conn)
				if room == nil {
					return
				}
				room.Lock()
				seat, ok := room.SeatOf(conn)
				if !ok || room.Game.IsOver() {
					room.Unlock()
					return
				}
				hand := room.Game.Hand(seat)
				room.Unlock()
				_, _ = registry.DrawTile(conn)
				if len(hand) > 0 {
					_, _ = registry.DiscardTile(conn, hand[len(hand)-1].ID)
				}
			}
		}(conn)
	}
	wg.Wait()

	rooms := registry.GetRooms()
	require.Len(t, rooms, tables+1)
	require.Eventually(t, func() bool {
		for _, room := range rooms {
			if room.ID == shared.RoomID {
				continue
			}
			room.Lock()
			over := room.Game.IsOver()
			room.Unlock()
			if !over {
				return false
			}
		}
		return true
	}, 10*time.Second, 10*time.Millisecond)
	for _, room := range rooms {
		assertConserved(t, room)
	}

	conns := []event.ConnID{100, 101}
	for i := 1; i <= tables; i++ {
		conns = append(conns, event.ConnID(i))
	}
	for _, conn := range conns {
		wg.Add(1)
		go func(conn event.ConnID) {
			defer wg.Done()
			registry.Leave(conn)
		}(conn)
	}
	wg.Wait()

	assert.Empty(t, registry.GetRooms())
	for _, conn := range conns {
		assert.Nil(t, registry.RoomOf(conn))
	}
}
