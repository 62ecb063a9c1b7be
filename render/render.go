package render

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"
	"github.com/ratel-online/mahjong/mahjong/game"
	"github.com/ratel-online/mahjong/mahjong/tile"
	"github.com/ratel-online/mahjong/mahjong/win"
)

var (
	current = color.New(color.FgCyan, color.Bold)
	winner  = color.New(color.FgGreen, color.Bold)
	faint   = color.New(color.Faint)
)

func Tile(t tile.Tile) string {
	return t.Paint()
}

func Tiles(tiles []tile.Tile) string {
	return tile.ToTileString(win.SortedCopy(tiles))
}

// Board renders the public table: one line per seat with its discards.
func Board(state game.State) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("round %d  %s  wall %d\n", state.RoundNumber, state.Phase, state.WallSize))
	for seat, s := range state.Seats {
		name := s.Name
		switch {
		case state.Winner != nil && *state.Winner == seat:
			name = winner.Sprint(name + " *")
		case !state.GameOver && state.CurrentSeat == seat:
			name = current.Sprint(name)
		}
		buf.WriteString(fmt.Sprintf("%-24s %2d  %s\n", name, s.HandSize, tile.ToTileString(s.Discards)))
	}
	return buf.String()
}

// Decomposition renders a winning arrangement as pair | meld | meld ...
func Decomposition(d win.Decomposition) string {
	buf := bytes.Buffer{}
	buf.WriteString(tile.ToTileString(d.Pair))
	for _, m := range d.Melds {
		buf.WriteString(faint.Sprint(" | "))
		buf.WriteString(tile.ToTileString(m.Tiles))
	}
	return buf.String()
}
