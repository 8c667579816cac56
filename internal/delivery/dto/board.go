package dto

import (
	"monopoly-backend/internal/board"
	"monopoly-backend/internal/gamestate"
)

// BoardTile merges a position's static catalog entry with its current
// mutable overlay, for GET /games/{id}/board's tiles array.
type BoardTile struct {
	board.Entry
	Owner      string `json:"owner,omitempty"`
	HouseCount int    `json:"house_count,omitempty"`
}

// ToBoardTiles projects a game's board into the combined static+mutable
// view the board endpoint returns.
func ToBoardTiles(g *gamestate.Game) []BoardTile {
	catalog := board.Catalog()
	tiles := make([]BoardTile, len(catalog))
	for i, entry := range catalog {
		tiles[i] = BoardTile{
			Entry:      entry,
			Owner:      g.Tiles[i].Owner,
			HouseCount: g.Tiles[i].HouseCount,
		}
	}
	return tiles
}
