package service_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/mahjong/tile"
	"github.com/ratel-online/mahjong/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolatedPolicy(t *testing.T) {
	hand := []tile.Tile{
		tile.New(tile.Character, 1, 0), tile.New(tile.Character, 2, 0), tile.New(tile.Character, 3, 0),
		tile.New(tile.Dot, 5, 0), tile.New(tile.Dot, 5, 1),
		tile.New(tile.Wind, 3, 0),
		tile.New(tile.Bamboo, 7, 0), tile.New(tile.Bamboo, 8, 0),
	}
	choice := service.IsolatedPolicy{}.Choose(hand, nil)
	assert.Equal(t, "wwest-0", choice.ID)
}

func TestRandomPolicy(t *testing.T) {
	hand := tile.Catalog()[:14]
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		assert.Contains(t, hand, service.RandomPolicy{}.Choose(hand, rng))
	}
}

func TestPolicyByName(t *testing.T) {
	p, err := service.PolicyByName(consts.AIPolicyIsolated)
	require.NoError(t, err)
	assert.IsType(t, service.IsolatedPolicy{}, p)

	p, err = service.PolicyByName("")
	require.NoError(t, err)
	assert.IsType(t, service.RandomPolicy{}, p)

	_, err = service.PolicyByName("clairvoyant")
	assert.Equal(t, consts.ErrorsInputInvalid, err)
}
