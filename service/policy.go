package service

import (
	"math/rand"

	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/mahjong/tile"
	"github.com/ratel-online/mahjong/mahjong/win"
)

// DiscardPolicy picks the tile an automated seat throws away. Hands are never empty.
type DiscardPolicy interface {
	Choose(hand []tile.Tile, rng *rand.Rand) tile.Tile
}

type RandomPolicy struct{}

func (RandomPolicy) Choose(hand []tile.Tile, rng *rand.Rand) tile.Tile {
	return hand[rng.Intn(len(hand))]
}

// IsolatedPolicy discards the tile with the fewest partners: copies of the same
// kind weigh most, then neighbours one and two ranks away in the same suit.
type IsolatedPolicy struct{}

func (IsolatedPolicy) Choose(hand []tile.Tile, _ *rand.Rand) tile.Tile {
	sorted := win.SortedCopy(hand)
	best, bestScore := sorted[0], -1
	for i, t := range sorted {
		score := 0
		for j, o := range sorted {
			if i == j {
				continue
			}
			switch {
			case t.Same(o):
				score += 4
			case t.IsNumeral() && t.Suit == o.Suit && abs(t.Rank-o.Rank) == 1:
				score += 2
			case t.IsNumeral() && t.Suit == o.Suit && abs(t.Rank-o.Rank) == 2:
				score++
			}
		}
		if bestScore < 0 || score < bestScore {
			best, bestScore = t, score
		}
	}
	return best
}

func PolicyByName(name string) (DiscardPolicy, error) {
	switch name {
	case consts.AIPolicyRandom, "":
		return RandomPolicy{}, nil
	case consts.AIPolicyIsolated:
		return IsolatedPolicy{}, nil
	}
	return nil, consts.ErrorsInputInvalid
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
