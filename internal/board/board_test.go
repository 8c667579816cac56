package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_HasFortyTiles(t *testing.T) {
	catalog := Catalog()
	assert.Len(t, catalog, NumTiles)
}

func TestAt_KnownPositions(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		kind Kind
	}{
		{"Go", 0, KindGo},
		{"Reading Railroad", 5, KindRailroad},
		{"Electric Company", 12, KindUtility},
		{"Income Tax", 4, KindTax},
		{"Chance at 7", 7, KindChance},
		{"Community Chest at 2", 2, KindCommunityChest},
		{"Jail", 10, KindJail},
		{"Free Parking", 20, KindFreeParking},
		{"Go To Jail", 30, KindGoToJail},
		{"Boardwalk", 39, KindProperty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := At(tt.pos)
			assert.Equal(t, tt.pos, entry.Position)
			assert.Equal(t, tt.kind, entry.Kind)
		})
	}
}

func TestGroupPositions(t *testing.T) {
	tests := []struct {
		color Color
		want  []int
	}{
		{ColorBrown, []int{1, 3}},
		{ColorDarkBlue, []int{37, 39}},
		{ColorLightBlue, []int{6, 8, 9}},
		{ColorGreen, []int{31, 32, 34}},
	}

	for _, tt := range tests {
		t.Run(string(tt.color), func(t *testing.T) {
			assert.Equal(t, tt.want, GroupPositions(tt.color))
		})
	}
}

func TestRailroadsAndUtilities_HaveNoColor(t *testing.T) {
	for _, pos := range []int{5, 15, 25, 35, 12, 28} {
		entry := At(pos)
		assert.Equal(t, Color(""), entry.Color)
	}
}
