package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/mahjong/game"
	"github.com/ratel-online/mahjong/mahjong/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeck(t *testing.T) {
	t.Run("draws_from_the_end", func(t *testing.T) {
		catalog := tile.Catalog()
		deck := game.NewDeckOf(catalog)
		assert.Equal(t, catalog[len(catalog)-1], deck.BottomDrawOne())
		assert.Equal(t, tile.Total-1, deck.Size())
	})

	t.Run("deal_gives_dealer_the_extra_tile", func(t *testing.T) {
		deck := game.NewDeck(rand.New(rand.NewSource(3)))
		hands, err := deck.Deal(4, game.Dealer)
		require.NoError(t, err)
		require.Len(t, hands, 4)
		assert.Len(t, hands[0], consts.HandSize+1)
		for _, hand := range hands[1:] {
			assert.Len(t, hand, consts.HandSize)
		}
		assert.Equal(t, tile.Total-4*consts.HandSize-1, deck.Size())
	})

	t.Run("short_wall_fails", func(t *testing.T) {
		deck := game.NewDeckOf(tile.Catalog()[:consts.HandSize])
		_, err := deck.Deal(1, game.Dealer)
		require.Equal(t, consts.ErrorsWallShort, err)
		assert.Equal(t, consts.HandSize, deck.Size())
	})
}

func TestShuffleOption(t *testing.T) {
	catalog := tile.Catalog()
	g, err := game.New(1, nil, game.Options{
		Shuffle: func(tiles []tile.Tile, _ *rand.Rand) []tile.Tile { return tiles },
	})
	require.NoError(t, err)
	require.NoError(t, g.Start())
	assert.ElementsMatch(t, catalog[len(catalog)-consts.HandSize-1:], g.Hand(0))
	assert.Equal(t, catalog[:len(catalog)-consts.HandSize-1], g.WallTiles())
}
