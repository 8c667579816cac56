// Package board defines the static 40-tile Monopoly board catalog:
// positions, prices, base rents, color groups and house-build costs.
// The catalog never changes at runtime — mutable per-game state
// (ownership, house counts) lives alongside it in a game's tile state
// slice, not here.
package board

// Color is a property color group.
type Color string

const (
	ColorBrown     Color = "brown"
	ColorLightBlue Color = "light_blue"
	ColorPink      Color = "pink"
	ColorOrange    Color = "orange"
	ColorRed       Color = "red"
	ColorYellow    Color = "yellow"
	ColorGreen     Color = "green"
	ColorDarkBlue  Color = "dark_blue"
)

// Kind discriminates the ten tile variants spec.md §3 names.
type Kind string

const (
	KindGo             Kind = "go"
	KindProperty       Kind = "property"
	KindRailroad       Kind = "railroad"
	KindUtility        Kind = "utility"
	KindTax            Kind = "tax"
	KindChance         Kind = "chance"
	KindCommunityChest Kind = "community_chest"
	KindJail           Kind = "jail"
	KindFreeParking    Kind = "free_parking"
	KindGoToJail       Kind = "go_to_jail"
)

// NumTiles is the fixed board size.
const NumTiles = 40

// Entry is one catalog row: everything about a tile that never
// changes across a game's lifetime.
type Entry struct {
	Position  int
	Kind      Kind
	Name      string
	Color     Color // zero value for non-property tiles
	Price     int   // purchase price, 0 if not purchasable
	BaseRent  int   // unowned-monopoly-free rent, 0 if not rentable
	BuildCost int   // cost per house for Property tiles, 0 otherwise
	TaxAmount int    // for Tax tiles only
}

// catalog is the canonical, immutable 40-tile board. Reproduced
// exactly from the standard Monopoly board layout: railroads at
// 5/15/25/35, utilities at 12/28, taxes at 4(200)/38(100), Chance at
// 7/22/36, Community Chest at 2/17/33, per spec.md §4.1.
var catalog = [NumTiles]Entry{
	{Position: 0, Kind: KindGo, Name: "Go"},
	{Position: 1, Kind: KindProperty, Name: "Mediterranean Avenue", Color: ColorBrown, Price: 60, BaseRent: 2, BuildCost: 50},
	{Position: 2, Kind: KindCommunityChest, Name: "Community Chest"},
	{Position: 3, Kind: KindProperty, Name: "Baltic Avenue", Color: ColorBrown, Price: 60, BaseRent: 4, BuildCost: 50},
	{Position: 4, Kind: KindTax, Name: "Income Tax", TaxAmount: 200},
	{Position: 5, Kind: KindRailroad, Name: "Reading Railroad", Price: 200, BaseRent: 25},
	{Position: 6, Kind: KindProperty, Name: "Oriental Avenue", Color: ColorLightBlue, Price: 100, BaseRent: 6, BuildCost: 50},
	{Position: 7, Kind: KindChance, Name: "Chance"},
	{Position: 8, Kind: KindProperty, Name: "Vermont Avenue", Color: ColorLightBlue, Price: 100, BaseRent: 6, BuildCost: 50},
	{Position: 9, Kind: KindProperty, Name: "Connecticut Avenue", Color: ColorLightBlue, Price: 120, BaseRent: 8, BuildCost: 50},
	{Position: 10, Kind: KindJail, Name: "Jail"},
	{Position: 11, Kind: KindProperty, Name: "St. Charles Place", Color: ColorPink, Price: 140, BaseRent: 10, BuildCost: 100},
	{Position: 12, Kind: KindUtility, Name: "Electric Company", Price: 150},
	{Position: 13, Kind: KindProperty, Name: "States Avenue", Color: ColorPink, Price: 140, BaseRent: 10, BuildCost: 100},
	{Position: 14, Kind: KindProperty, Name: "Virginia Avenue", Color: ColorPink, Price: 160, BaseRent: 12, BuildCost: 100},
	{Position: 15, Kind: KindRailroad, Name: "Pennsylvania Railroad", Price: 200, BaseRent: 25},
	{Position: 16, Kind: KindProperty, Name: "St. James Place", Color: ColorOrange, Price: 180, BaseRent: 14, BuildCost: 100},
	{Position: 17, Kind: KindCommunityChest, Name: "Community Chest"},
	{Position: 18, Kind: KindProperty, Name: "Tennessee Avenue", Color: ColorOrange, Price: 180, BaseRent: 14, BuildCost: 100},
	{Position: 19, Kind: KindProperty, Name: "New York Avenue", Color: ColorOrange, Price: 200, BaseRent: 16, BuildCost: 100},
	{Position: 20, Kind: KindFreeParking, Name: "Free Parking"},
	{Position: 21, Kind: KindProperty, Name: "Kentucky Avenue", Color: ColorRed, Price: 220, BaseRent: 18, BuildCost: 150},
	{Position: 22, Kind: KindChance, Name: "Chance"},
	{Position: 23, Kind: KindProperty, Name: "Indiana Avenue", Color: ColorRed, Price: 220, BaseRent: 18, BuildCost: 150},
	{Position: 24, Kind: KindProperty, Name: "Illinois Avenue", Color: ColorRed, Price: 240, BaseRent: 20, BuildCost: 150},
	{Position: 25, Kind: KindRailroad, Name: "B&O Railroad", Price: 200, BaseRent: 25},
	{Position: 26, Kind: KindProperty, Name: "Atlantic Avenue", Color: ColorYellow, Price: 260, BaseRent: 22, BuildCost: 150},
	{Position: 27, Kind: KindProperty, Name: "Ventnor Avenue", Color: ColorYellow, Price: 260, BaseRent: 22, BuildCost: 150},
	{Position: 28, Kind: KindUtility, Name: "Water Works", Price: 150},
	{Position: 29, Kind: KindProperty, Name: "Marvin Gardens", Color: ColorYellow, Price: 280, BaseRent: 24, BuildCost: 150},
	{Position: 30, Kind: KindGoToJail, Name: "Go To Jail"},
	{Position: 31, Kind: KindProperty, Name: "Pacific Avenue", Color: ColorGreen, Price: 300, BaseRent: 26, BuildCost: 200},
	{Position: 32, Kind: KindProperty, Name: "North Carolina Avenue", Color: ColorGreen, Price: 300, BaseRent: 26, BuildCost: 200},
	{Position: 33, Kind: KindCommunityChest, Name: "Community Chest"},
	{Position: 34, Kind: KindProperty, Name: "Pennsylvania Avenue", Color: ColorGreen, Price: 320, BaseRent: 28, BuildCost: 200},
	{Position: 35, Kind: KindRailroad, Name: "Short Line", Price: 200, BaseRent: 25},
	{Position: 36, Kind: KindChance, Name: "Chance"},
	{Position: 37, Kind: KindProperty, Name: "Park Place", Color: ColorDarkBlue, Price: 350, BaseRent: 35, BuildCost: 200},
	{Position: 38, Kind: KindTax, Name: "Luxury Tax", TaxAmount: 100},
	{Position: 39, Kind: KindProperty, Name: "Boardwalk", Color: ColorDarkBlue, Price: 400, BaseRent: 50, BuildCost: 200},
}

// Catalog returns the static 40-tile board layout.
func Catalog() [NumTiles]Entry {
	return catalog
}

// At returns the catalog entry for a board position. Panics if pos is
// out of [0,40) — callers only ever pass positions already reduced
// modulo 40.
func At(pos int) Entry {
	return catalog[pos]
}

// GroupPositions returns every board position belonging to a color
// group, in ascending order.
func GroupPositions(color Color) []int {
	var positions []int
	for _, e := range catalog {
		if e.Kind == KindProperty && e.Color == color {
			positions = append(positions, e.Position)
		}
	}
	return positions
}
