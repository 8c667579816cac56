package gamestate

// TileState is the mutable overlay for one board position: who owns
// it (empty string = unowned) and, for properties, how many houses
// are built (5 denotes a hotel). The immutable price/rent/color data
// lives in internal/board's static catalog — this struct is only the
// part of a tile that changes during play.
type TileState struct {
	Owner      string `json:"owner,omitempty"`
	HouseCount int    `json:"house_count,omitempty"`
}

// Unowned reports whether no player owns this tile.
func (t TileState) Unowned() bool { return t.Owner == "" }
