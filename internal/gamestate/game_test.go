package gamestate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monopoly-backend/internal/apperr"
	"monopoly-backend/internal/board"
)

func TestNew_StartsWaitingWithEmptyRoster(t *testing.T) {
	g := New()
	assert.Equal(t, StatusWaiting, g.Status)
	assert.Empty(t, g.Players)
	assert.Equal(t, InitialBankBalance, g.Bank)
}

func TestAddPlayer_Success(t *testing.T) {
	g := New()
	p, err := g.AddPlayer("Alice", TokenBoot)
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, StartingBalance, p.Balance)
	assert.Len(t, g.Players, 1)
}

func TestAddPlayer_RejectsInvalidName(t *testing.T) {
	g := New()
	_, err := g.AddPlayer("A", TokenBoot)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
}

func TestAddPlayer_RejectsInvalidToken(t *testing.T) {
	g := New()
	_, err := g.AddPlayer("Alice", Token("bogus"))
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
}

func TestAddPlayer_RejectsDuplicateNameAndToken(t *testing.T) {
	g := New()
	_, err := g.AddPlayer("Alice", TokenBoot)
	require.NoError(t, err)

	_, err = g.AddPlayer("Alice", TokenCar)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "duplicate_name", ae.Code)

	_, err = g.AddPlayer("Bob", TokenBoot)
	ae, ok = apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "duplicate_token", ae.Code)
}

func TestAddPlayer_RejectsFifthPlayer(t *testing.T) {
	g := New()
	tokens := []Token{TokenBoot, TokenCar, TokenShip, TokenThimble}
	for i, tok := range tokens {
		_, err := g.AddPlayer(nameFor(i), tok)
		require.NoError(t, err)
	}
	_, err := g.AddPlayer("Fifth", TokenHat)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "full", ae.Code)
}

func TestAddPlayer_RejectsAfterStart(t *testing.T) {
	g := New()
	_, _ = g.AddPlayer("Alice", TokenBoot)
	_, _ = g.AddPlayer("Bob", TokenCar)
	require.NoError(t, g.Start())

	_, err := g.AddPlayer("Carol", TokenShip)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindPrecondition, ae.Kind)
}

func TestStart_RequiresMinimumPlayers(t *testing.T) {
	g := New()
	_, _ = g.AddPlayer("Alice", TokenBoot)
	err := g.Start()
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "not_enough_players", ae.Code)
}

func TestStart_Success(t *testing.T) {
	g := New()
	_, _ = g.AddPlayer("Alice", TokenBoot)
	_, _ = g.AddPlayer("Bob", TokenCar)
	require.NoError(t, g.Start())
	assert.Equal(t, StatusInProgress, g.Status)
	assert.Equal(t, 0, g.CurrentPlayerIndex)
}

func TestHasMonopoly(t *testing.T) {
	g := New()
	alice, _ := g.AddPlayer("Alice", TokenBoot)
	g.SetOwner(1, alice.ID)
	assert.False(t, g.HasMonopoly(alice.ID, board.ColorBrown))
	g.SetOwner(3, alice.ID)
	assert.True(t, g.HasMonopoly(alice.ID, board.ColorBrown))
}

func TestRailroadAndUtilityCount(t *testing.T) {
	g := New()
	alice, _ := g.AddPlayer("Alice", TokenBoot)
	g.SetOwner(5, alice.ID)
	g.SetOwner(15, alice.ID)
	assert.Equal(t, 2, g.RailroadCount(alice.ID))
	assert.Equal(t, 0, g.UtilityCount(alice.ID))

	g.SetOwner(12, alice.ID)
	assert.Equal(t, 1, g.UtilityCount(alice.ID))
}

func TestReleaseOwnership_ClearsTileAndPortfolio(t *testing.T) {
	g := New()
	alice, _ := g.AddPlayer("Alice", TokenBoot)
	g.SetOwner(1, alice.ID)
	require.Contains(t, alice.Properties, 1)

	g.ReleaseOwnership(1)
	assert.True(t, g.Tiles[1].Unowned())
	assert.NotContains(t, alice.Properties, 1)
}

func nameFor(i int) string {
	names := []string{"Alice", "Bob", "Carol", "Dave"}
	return names[i]
}
