package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monopoly-backend/internal/deck"
	"monopoly-backend/internal/gamestate"
)

func newTwoPlayerGame(t *testing.T) (*gamestate.Game, *gamestate.Player, *gamestate.Player) {
	t.Helper()
	g := gamestate.New()
	alice, err := g.AddPlayer("Alice", gamestate.TokenBoot)
	require.NoError(t, err)
	bob, err := g.AddPlayer("Bob", gamestate.TokenCar)
	require.NoError(t, err)
	require.NoError(t, g.Start())
	return g, alice, bob
}

func TestLand_OnGo_Credits200(t *testing.T) {
	g, alice, _ := newTwoPlayerGame(t)
	alice.Position = 0
	before := alice.Balance
	interaction := Land(g, alice)
	assert.Equal(t, EventGoCredit, interaction.Event)
	assert.Equal(t, before+200, alice.Balance)
}

func TestLand_OnUnownedProperty_AutoPurchases(t *testing.T) {
	g, alice, _ := newTwoPlayerGame(t)
	alice.Position = 1 // Mediterranean Avenue, price 60
	before := alice.Balance
	interaction := Land(g, alice)
	assert.Equal(t, EventPurchased, interaction.Event)
	assert.Equal(t, alice.ID, g.Owner(1))
	assert.Equal(t, before-60, alice.Balance)
}

func TestLand_OnUnownedProperty_InsufficientFunds_NoOp(t *testing.T) {
	g, alice, _ := newTwoPlayerGame(t)
	alice.Balance = 10
	alice.Position = 39 // Boardwalk, price 400
	interaction := Land(g, alice)
	assert.Equal(t, EventNoOp, interaction.Event)
	assert.Equal(t, "", g.Owner(39))
	assert.Equal(t, 10, alice.Balance)
}

func TestLand_OnOwnProperty_NoRent(t *testing.T) {
	g, alice, _ := newTwoPlayerGame(t)
	g.SetOwner(1, alice.ID)
	alice.Position = 1
	before := alice.Balance
	interaction := Land(g, alice)
	assert.Equal(t, EventSelfOwned, interaction.Event)
	assert.Equal(t, before, alice.Balance)
}

func TestLand_OnOpponentProperty_PaysBaseRentWithoutMonopoly(t *testing.T) {
	g, alice, bob := newTwoPlayerGame(t)
	g.SetOwner(1, alice.ID) // Mediterranean, base rent 2
	bob.Position = 1
	bobBefore, aliceBefore := bob.Balance, alice.Balance
	interaction := Land(g, bob)
	assert.Equal(t, EventRentPaid, interaction.Event)
	assert.Equal(t, 2, interaction.Amount)
	assert.Equal(t, bobBefore-2, bob.Balance)
	assert.Equal(t, aliceBefore+2, alice.Balance)
}

func TestLand_OnOpponentProperty_DoublesRentWithMonopolyNoHouses(t *testing.T) {
	g, alice, bob := newTwoPlayerGame(t)
	g.SetOwner(1, alice.ID)
	g.SetOwner(3, alice.ID) // full brown monopoly
	bob.Position = 1
	interaction := Land(g, bob)
	assert.Equal(t, 4, interaction.Amount) // base rent 2 * 2
}

func TestLand_OnOpponentProperty_HouseMultiplier(t *testing.T) {
	g, alice, bob := newTwoPlayerGame(t)
	g.SetOwner(1, alice.ID)
	g.SetOwner(3, alice.ID)
	g.Tiles[1].HouseCount = 3
	bob.Position = 1
	interaction := Land(g, bob)
	assert.Equal(t, 2*15, interaction.Amount)
}

func TestLand_OnRailroad_RentScalesWithCount(t *testing.T) {
	g, alice, bob := newTwoPlayerGame(t)
	g.SetOwner(5, alice.ID)
	bob.Position = 5
	interaction := Land(g, bob)
	assert.Equal(t, 25, interaction.Amount)

	g.SetOwner(15, alice.ID)
	bob.Position = 15
	interaction = Land(g, bob)
	assert.Equal(t, 50, interaction.Amount)

	g.SetOwner(25, alice.ID)
	bob.Position = 25
	interaction = Land(g, bob)
	assert.Equal(t, 100, interaction.Amount)
}

func TestLand_OnUtility_RentDependsOnDiceAndCount(t *testing.T) {
	g, alice, bob := newTwoPlayerGame(t)
	g.SetOwner(12, alice.ID)
	g.LastDiceSum = 7
	bob.Position = 12
	interaction := Land(g, bob)
	assert.Equal(t, 28, interaction.Amount) // 7*4

	g.SetOwner(28, alice.ID)
	bob.Position = 28
	interaction = Land(g, bob)
	assert.Equal(t, 70, interaction.Amount) // 7*10
}

func TestLand_OnTax_ReportsTaxAmount(t *testing.T) {
	g, alice, _ := newTwoPlayerGame(t)
	alice.Position = 4 // Income Tax, 200
	interaction := Land(g, alice)
	assert.Equal(t, EventTaxPaid, interaction.Event)
	assert.Equal(t, 200, interaction.Amount)
}

func TestApplyTax_DebitsPlayerAndFeedsPot(t *testing.T) {
	g, alice, _ := newTwoPlayerGame(t)
	before := alice.Balance
	ApplyTax(g, alice, 200)
	assert.Equal(t, before-200, alice.Balance)
	assert.Equal(t, 200, g.SidePot)
}

func TestLand_OnFreeParking_SweepsPot(t *testing.T) {
	g, alice, _ := newTwoPlayerGame(t)
	g.SidePot = 150
	alice.Position = 20
	interaction := Land(g, alice)
	assert.Equal(t, EventFreeParkingHit, interaction.Event)
	assert.Equal(t, 150, interaction.Amount)
	assert.Equal(t, 0, g.SidePot)
}

func TestLand_OnGoToJail_SendsToJail(t *testing.T) {
	g, alice, _ := newTwoPlayerGame(t)
	alice.Position = 30
	interaction := Land(g, alice)
	assert.Equal(t, EventSentToJail, interaction.Event)
	assert.True(t, alice.InJail)
	assert.Equal(t, JailPosition, alice.Position)
}

func TestLand_OnJail_JustVisiting(t *testing.T) {
	g, alice, _ := newTwoPlayerGame(t)
	alice.Position = 10
	interaction := Land(g, alice)
	assert.Equal(t, EventNoOp, interaction.Event)
	assert.False(t, alice.InJail)
}

func TestApplyCard_MoveTo_CreditsGoPassWhenWrapping(t *testing.T) {
	g, alice, _ := newTwoPlayerGame(t)
	alice.Position = 30
	before := alice.Balance
	ApplyCard(g, alice, deck.Card{Action: deck.ActionMoveTo, Position: 5})
	assert.Equal(t, 5, alice.Position)
	assert.Equal(t, before+200, alice.Balance)
}

func TestApplyCard_MoveTo_NoGoPassWhenNotWrapping(t *testing.T) {
	g, alice, _ := newTwoPlayerGame(t)
	alice.Position = 5
	before := alice.Balance
	ApplyCard(g, alice, deck.Card{Action: deck.ActionMoveTo, Position: 20})
	assert.Equal(t, 20, alice.Position)
	assert.Equal(t, before, alice.Balance)
}

func TestSendToJail_ResetsJailTurns(t *testing.T) {
	g, alice, _ := newTwoPlayerGame(t)
	alice.JailTurns = 2
	SendToJail(alice)
	assert.True(t, alice.InJail)
	assert.Equal(t, 0, alice.JailTurns)
}
