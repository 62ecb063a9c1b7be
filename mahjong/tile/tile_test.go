package tile_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/mahjong/mahjong/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	t.Run("contains_136_tiles_with_unique_ids", func(t *testing.T) {
		tiles := tile.Catalog()
		require.Len(t, tiles, tile.Total)
		ids := map[string]bool{}
		for _, tl := range tiles {
			require.False(t, ids[tl.ID], "duplicate id %s", tl.ID)
			ids[tl.ID] = true
		}
	})

	t.Run("has_four_copies_of_every_kind", func(t *testing.T) {
		kinds := map[int]int{}
		for _, tl := range tile.Catalog() {
			kinds[tl.Key()]++
		}
		require.Len(t, kinds, 34)
		for key, n := range kinds {
			assert.Equal(t, tile.Copies, n, "kind %d", key)
		}
	})

	t.Run("numeral_and_honor_split", func(t *testing.T) {
		numerals := 0
		for _, tl := range tile.Catalog() {
			if tl.IsNumeral() {
				numerals++
			}
		}
		assert.Equal(t, 108, numerals)
		assert.Equal(t, 28, tile.Total-numerals)
	})
}

func TestShuffle(t *testing.T) {
	catalog := tile.Catalog()
	shuffled := tile.Shuffle(catalog, rand.New(rand.NewSource(7)))
	require.ElementsMatch(t, catalog, shuffled)
	require.NotEqual(t, catalog, shuffled)
	require.Equal(t, tile.Catalog(), catalog, "input must stay untouched")
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, "c1-0", tile.New(tile.Character, 1, 0).ID)
	assert.Equal(t, "d5-3", tile.New(tile.Dot, 5, 3).ID)
	assert.Equal(t, "drred-0", tile.New(tile.Dragon, 1, 0).ID)
	assert.Equal(t, "wnorth-2", tile.New(tile.Wind, 4, 2).ID)
}

func TestString(t *testing.T) {
	assert.Equal(t, "7b", tile.New(tile.Bamboo, 7, 1).String())
	assert.Equal(t, "Gd", tile.New(tile.Dragon, 2, 0).String())
	assert.Equal(t, "Sw", tile.New(tile.Wind, 2, 0).String())
}

func TestMarshalJSON(t *testing.T) {
	b, err := tile.New(tile.Dot, 3, 1).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"suit":"dot","value":3,"id":"d3-1"}`, string(b))

	b, err = tile.New(tile.Wind, 1, 0).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"suit":"wind","value":"east","id":"weast-0"}`, string(b))
}

func TestSame(t *testing.T) {
	a := tile.New(tile.Dragon, 1, 0)
	b := tile.New(tile.Dragon, 1, 3)
	c := tile.New(tile.Dragon, 2, 0)
	assert.True(t, a.Same(b))
	assert.False(t, a.Same(c))
	assert.NotEqual(t, a, b)
}
