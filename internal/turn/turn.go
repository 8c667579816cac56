// Package turn implements the single entry point that advances a game
// by one player's turn: dice roll, jail handling, movement, tile
// resolution, bankruptcy, and turn advancement, per spec.md §4.4.
package turn

import (
	"crypto/rand"
	"math/big"

	"go.uber.org/zap"

	"monopoly-backend/internal/apperr"
	"monopoly-backend/internal/board"
	"monopoly-backend/internal/gamestate"
	"monopoly-backend/internal/logger"
	"monopoly-backend/internal/tile"
)

// Result describes everything that happened during one executed turn,
// for the HTTP response body and the broadcast event payload.
type Result struct {
	PlayerID       string              `json:"player_id"`
	Dice           [2]int              `json:"dice"`
	DoublesRolled  bool                `json:"doubles_rolled"`
	JailReleased   bool                `json:"jail_released,omitempty"`
	PassedGo       bool                `json:"passed_go,omitempty"`
	Interactions   []tile.Interaction  `json:"interactions"`
	BankruptPlayer string              `json:"bankrupt_player,omitempty"`
	WinnerID       string              `json:"winner_id,omitempty"`
	NextPlayerID   string              `json:"next_player_id,omitempty"`
}

// rollDie returns a uniform value in [1,6] using a CSPRNG. Deck
// shuffling (internal/deck) uses math/rand/v2 instead.
func rollDie() int {
	n, err := rand.Int(rand.Reader, big.NewInt(6))
	if err != nil {
		// crypto/rand failing is a fatal environment error, not a
		// game-logic branch worth threading through every caller.
		panic(err)
	}
	return int(n.Int64()) + 1
}

// Execute advances game by exactly one turn for its current player,
// per spec.md §4.4's eight-step sequence. Callers must hold the
// game's per-game lock (internal/gamelock) for the duration of the
// call.
func Execute(g *gamestate.Game) (*Result, error) {
	if g.Status != gamestate.StatusInProgress {
		return nil, apperr.Precondition("not_started", "game is not in progress")
	}

	player := g.CurrentPlayer()
	if player == nil || !player.Active {
		return nil, apperr.Conflict("current player is not active")
	}

	res := &Result{PlayerID: player.ID}

	d1, d2 := rollDie(), rollDie()
	res.Dice = [2]int{d1, d2}
	sum := d1 + d2
	g.LastDiceSum = sum
	res.DoublesRolled = d1 == d2

	defer func() {
		logger.WithGameContext(g.ID, player.ID).Info("turn resolved",
			zap.Int("dice_sum", sum),
			zap.Bool("passed_go", res.PassedGo),
			zap.Int("interactions", len(res.Interactions)),
			zap.String("bankrupt_player", res.BankruptPlayer),
			zap.String("winner_id", res.WinnerID),
		)
	}()

	if player.InJail {
		released := handleJail(g, player, d1, d2)
		res.JailReleased = released
		if !released {
			advanceTurn(g)
			res.NextPlayerID = idOrEmpty(g.CurrentPlayer())
			g.Touch()
			return res, nil
		}
	}

	before := player.Position
	player.Position = (before + sum) % board.NumTiles
	if player.Position < before {
		res.PassedGo = true
		player.Credit(200)
	}

	interactions := resolveLanding(g, player)
	res.Interactions = interactions

	bankrupted := checkBankruptcy(g, player)
	if bankrupted {
		res.BankruptPlayer = player.ID
	}

	if winner := checkWinner(g); winner != "" {
		res.WinnerID = winner
		g.Status = gamestate.StatusFinished
		g.WinnerID = winner
		g.Touch()
		return res, nil
	}

	advanceTurn(g)
	res.NextPlayerID = idOrEmpty(g.CurrentPlayer())
	g.Touch()
	return res, nil
}

// handleJail runs the jail sub-state-machine for a player starting
// their turn in jail: the attempt counter increments on every roll,
// doubles release immediately, and the third failed attempt forces a
// $50 payment to the bank and release. Returns whether the player is
// now released and free to move this turn.
func handleJail(g *gamestate.Game, p *gamestate.Player, d1, d2 int) bool {
	p.JailTurns++
	if d1 == d2 {
		p.InJail = false
		p.JailTurns = 0
		return true
	}
	if p.JailTurns >= gamestate.MaxJailTurns {
		const jailFine = 50
		p.Debit(jailFine)
		g.Bank += jailFine
		p.InJail = false
		p.JailTurns = 0
		return true
	}
	return false
}

// resolveLanding resolves a single tile landing. A card's move/move_to
// action relocates the player, but the tile at the final position is
// not re-resolved in this simplified ruleset — the card's own
// Interaction is the sole interaction for the turn.
func resolveLanding(g *gamestate.Game, p *gamestate.Player) []tile.Interaction {
	interaction := tile.Land(g, p)

	switch interaction.Event {
	case tile.EventTaxPaid:
		tile.ApplyTax(g, p, interaction.Amount)
	case tile.EventCardDrawn:
		if interaction.Card != nil {
			tile.ApplyCard(g, p, *interaction.Card)
		}
	}
	return []tile.Interaction{interaction}
}

// checkBankruptcy marks a player inactive and releases their
// properties to the bank if their balance has gone negative, per the
// Open Question decision recorded in SPEC_FULL.md §16: bankrupt
// players' properties become unowned, never transferred to a
// creditor.
func checkBankruptcy(g *gamestate.Game, p *gamestate.Player) bool {
	if !p.Bankrupt() {
		return false
	}
	p.Active = false
	properties := append([]int(nil), p.Properties...)
	for _, pos := range properties {
		g.ReleaseOwnership(pos)
	}
	return true
}

// checkWinner returns the sole remaining active player's ID, or "" if
// more than one player remains active.
func checkWinner(g *gamestate.Game) string {
	active := g.ActivePlayers()
	if len(active) == 1 {
		return active[0].ID
	}
	return ""
}

// advanceTurn moves CurrentPlayerIndex to the next active player,
// wrapping around the player slice.
func advanceTurn(g *gamestate.Game) {
	n := len(g.Players)
	if n == 0 {
		return
	}
	for i := 1; i <= n; i++ {
		next := (g.CurrentPlayerIndex + i) % n
		if g.Players[next].Active {
			g.CurrentPlayerIndex = next
			return
		}
	}
}

func idOrEmpty(p *gamestate.Player) string {
	if p == nil {
		return ""
	}
	return p.ID
}
