package tile

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
)

type Suit string

const (
	Character Suit = "character"
	Dot       Suit = "dot"
	Bamboo    Suit = "bamboo"
	Dragon    Suit = "dragon"
	Wind      Suit = "wind"
)

// Copies is the number of physical copies of every tile kind.
const Copies = 4

// Total is the size of a full Hong Kong set.
const Total = 136

var (
	Dragons = []string{"red", "green", "white"}
	Winds   = []string{"east", "south", "west", "north"}
)

var suitPrefix = map[Suit]string{
	Character: "c",
	Dot:       "d",
	Bamboo:    "b",
	Dragon:    "dr",
	Wind:      "w",
}

var suitColor = map[Suit]*color.Color{
	Character: color.New(color.FgRed),
	Dot:       color.New(color.FgBlue),
	Bamboo:    color.New(color.FgGreen),
	Dragon:    color.New(color.FgMagenta, color.Bold),
	Wind:      color.New(color.FgYellow, color.Bold),
}

// Tile is one physical tile. Rank is 1-9 for numeral suits and the
// 1-based index into Dragons or Winds for honors.
type Tile struct {
	Suit Suit
	Rank int
	ID   string
}

func New(suit Suit, rank, copyIndex int) Tile {
	return Tile{Suit: suit, Rank: rank, ID: fmt.Sprintf("%s%s-%d", suitPrefix[suit], rankName(suit, rank), copyIndex)}
}

func (t Tile) IsNumeral() bool {
	return IsNumeralSuit(t.Suit)
}

func IsNumeralSuit(s Suit) bool {
	return s == Character || s == Dot || s == Bamboo
}

// Same reports whether both tiles are the same kind, ignoring identity.
func (t Tile) Same(o Tile) bool {
	return t.Suit == o.Suit && t.Rank == o.Rank
}

// Key orders kinds: numeral suits first, honors after, rank ascending within a suit.
func (t Tile) Key() int {
	return suitOrder(t.Suit)*10 + t.Rank
}

func (t Tile) Value() interface{} {
	if t.IsNumeral() {
		return t.Rank
	}
	return rankName(t.Suit, t.Rank)
}

func (t Tile) String() string {
	if t.IsNumeral() {
		return strconv.Itoa(t.Rank) + suitPrefix[t.Suit]
	}
	return strings.ToUpper(rankName(t.Suit, t.Rank)[:1]) + string(t.Suit[0])
}

func (t Tile) Paint() string {
	if c, ok := suitColor[t.Suit]; ok {
		return c.Sprint(t.String())
	}
	return t.String()
}

type wireTile struct {
	Suit  Suit        `json:"suit"`
	Value interface{} `json:"value"`
	ID    string      `json:"id"`
}

func (t Tile) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(wireTile{Suit: t.Suit, Value: t.Value(), ID: t.ID})
}

func ToTileString(tiles []Tile) string {
	ret := make([]string, 0, len(tiles))
	for _, t := range tiles {
		ret = append(ret, t.Paint())
	}
	return strings.Join(ret, " ")
}

// Catalog builds the fixed 136-tile set in a stable order.
func Catalog() []Tile {
	tiles := make([]Tile, 0, Total)
	for _, suit := range []Suit{Character, Dot, Bamboo} {
		for rank := 1; rank <= 9; rank++ {
			for c := 0; c < Copies; c++ {
				tiles = append(tiles, New(suit, rank, c))
			}
		}
	}
	for rank := 1; rank <= len(Dragons); rank++ {
		for c := 0; c < Copies; c++ {
			tiles = append(tiles, New(Dragon, rank, c))
		}
	}
	for rank := 1; rank <= len(Winds); rank++ {
		for c := 0; c < Copies; c++ {
			tiles = append(tiles, New(Wind, rank, c))
		}
	}
	return tiles
}

// Shuffle returns a uniformly random permutation of tiles, leaving the input untouched.
func Shuffle(tiles []Tile, rng *rand.Rand) []Tile {
	shuffled := make([]Tile, len(tiles))
	copy(shuffled, tiles)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled
}

func rankName(suit Suit, rank int) string {
	switch suit {
	case Dragon:
		return Dragons[rank-1]
	case Wind:
		return Winds[rank-1]
	}
	return strconv.Itoa(rank)
}

func suitOrder(s Suit) int {
	switch s {
	case Character:
		return 0
	case Dot:
		return 1
	case Bamboo:
		return 2
	case Dragon:
		return 3
	}
	return 4
}
