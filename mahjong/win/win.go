package win

import (
	"sort"

	"github.com/ratel-online/mahjong/mahjong/tile"
)

// WinningSize is the tile count of a complete concealed hand.
const WinningSize = 14

type MeldKind string

const (
	Pung MeldKind = "pung"
	Chow MeldKind = "chow"
)

// Meld is three tiles forming a pung or a chow.
type Meld struct {
	Kind  MeldKind    `json:"kind"`
	Tiles []tile.Tile `json:"tiles"`
}

// Decomposition is one pair plus melds covering a whole hand.
type Decomposition struct {
	Pair  []tile.Tile `json:"pair"`
	Melds []Meld      `json:"melds"`
}

// IsWinningHand reports whether exactly 14 tiles split into one pair and four melds.
// The result does not depend on the order of tiles.
func IsWinningHand(tiles []tile.Tile) bool {
	if len(tiles) != WinningSize {
		return false
	}
	_, ok := Decompose(tiles)
	return ok
}

// Decompose searches every pair candidate and, below it, both the pung and the
// chow through the lowest remaining tile, backtracking until the rest is fully melded.
func Decompose(tiles []tile.Tile) (Decomposition, bool) {
	if len(tiles)%3 != 2 {
		return Decomposition{}, false
	}
	sorted := SortedCopy(tiles)
	s := &searcher{tiles: sorted, used: make([]bool, len(sorted))}
	for _, pos := range FindPairPos(sorted) {
		s.used[pos], s.used[pos+1] = true, true
		if s.meld(len(sorted) - 2) {
			return Decomposition{
				Pair:  []tile.Tile{sorted[pos], sorted[pos+1]},
				Melds: append([]Meld{}, s.melds...),
			}, true
		}
		s.used[pos], s.used[pos+1] = false, false
	}
	return Decomposition{}, false
}

// SortedCopy orders tiles by suit then rank, identity breaking ties.
func SortedCopy(tiles []tile.Tile) []tile.Tile {
	sorted := make([]tile.Tile, len(tiles))
	copy(sorted, tiles)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Key() != sorted[j].Key() {
			return sorted[i].Key() < sorted[j].Key()
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// FindPairPos returns the first position of every kind that occurs at least twice.
// Tiles must be sorted.
func FindPairPos(sortedTiles []tile.Tile) []int {
	pos := make([]int, 0, len(sortedTiles)/2)
	for i := 0; i+1 < len(sortedTiles); i++ {
		if !sortedTiles[i].Same(sortedTiles[i+1]) {
			continue
		}
		if len(pos) > 0 && sortedTiles[pos[len(pos)-1]].Same(sortedTiles[i]) {
			continue
		}
		pos = append(pos, i)
	}
	return pos
}

func IsTriplet(a, b, c tile.Tile) bool {
	return a.Same(b) && b.Same(c)
}

// IsSequence reports a chow; honors never form one.
func IsSequence(a, b, c tile.Tile) bool {
	if !a.IsNumeral() || a.Suit != b.Suit || b.Suit != c.Suit {
		return false
	}
	ranks := []int{a.Rank, b.Rank, c.Rank}
	sort.Ints(ranks)
	return ranks[1] == ranks[0]+1 && ranks[2] == ranks[1]+1
}

type searcher struct {
	tiles []tile.Tile
	used  []bool
	melds []Meld
}

func (s *searcher) meld(remaining int) bool {
	if remaining == 0 {
		return true
	}
	if remaining%3 != 0 {
		return false
	}
	first := s.nextUnused(-1, func(tile.Tile) bool { return true })
	head := s.tiles[first]
	s.used[first] = true
	defer func() { s.used[first] = false }()

	if j := s.nextUnused(first, head.Same); j >= 0 {
		if k := s.nextUnused(j, head.Same); k >= 0 {
			if s.try(Pung, first, j, k, remaining) {
				return true
			}
		}
	}
	if head.IsNumeral() && head.Rank <= 7 {
		j := s.nextUnused(first, rankOf(head, 1))
		if j >= 0 {
			if k := s.nextUnused(j, rankOf(head, 2)); k >= 0 {
				if s.try(Chow, first, j, k, remaining) {
					return true
				}
			}
		}
	}
	return false
}

func (s *searcher) try(kind MeldKind, first, j, k, remaining int) bool {
	s.used[j], s.used[k] = true, true
	s.melds = append(s.melds, Meld{Kind: kind, Tiles: []tile.Tile{s.tiles[first], s.tiles[j], s.tiles[k]}})
	if s.meld(remaining - 3) {
		return true
	}
	s.melds = s.melds[:len(s.melds)-1]
	s.used[j], s.used[k] = false, false
	return false
}

func (s *searcher) nextUnused(after int, match func(tile.Tile) bool) int {
	for i := after + 1; i < len(s.tiles); i++ {
		if !s.used[i] && match(s.tiles[i]) {
			return i
		}
	}
	return -1
}

func rankOf(head tile.Tile, offset int) func(tile.Tile) bool {
	return func(t tile.Tile) bool {
		return t.Suit == head.Suit && t.Rank == head.Rank+offset
	}
}
