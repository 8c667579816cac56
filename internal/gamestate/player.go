package gamestate

// StartingBalance is every player's balance when they join a game.
const StartingBalance = 1500

// MaxJailTurns is the number of turns a player may attempt to roll
// doubles before being forced to pay their way out of jail.
const MaxJailTurns = 3

// Player is one seat at the table. Field names and JSON tags are part
// of the snapshot's wire contract (spec.md §9) — renaming a field
// breaks round-trip compatibility with existing snapshots.
type Player struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Token      Token  `json:"token"`
	Balance    int    `json:"balance"`
	Position   int    `json:"position"`
	Active     bool   `json:"active"`
	InJail     bool   `json:"in_jail"`
	JailTurns  int    `json:"jail_turns"`
	Properties []int  `json:"properties"` // board positions owned, insertion order
}

func newPlayer(id, name string, token Token) *Player {
	return &Player{
		ID:         id,
		Name:       name,
		Token:      token,
		Balance:    StartingBalance,
		Position:   0,
		Active:     true,
		Properties: []int{},
	}
}

// AddProperty records ownership of a board position on the player's
// portfolio. Idempotent: adding an already-owned position is a no-op.
func (p *Player) AddProperty(pos int) {
	for _, owned := range p.Properties {
		if owned == pos {
			return
		}
	}
	p.Properties = append(p.Properties, pos)
}

// RemoveProperty drops a board position from the player's portfolio,
// used on bankruptcy reversion.
func (p *Player) RemoveProperty(pos int) {
	for i, owned := range p.Properties {
		if owned == pos {
			p.Properties = append(p.Properties[:i], p.Properties[i+1:]...)
			return
		}
	}
}

// Credit adds amount to the player's balance. amount may be negative
// via Debit's symmetric counterpart, but Credit itself is only ever
// called with non-negative amounts by the engine.
func (p *Player) Credit(amount int) {
	p.Balance += amount
}

// Debit subtracts amount from the player's balance. Balances are
// allowed to go negative — that is how bankruptcy is detected, not
// prevented at the debit site.
func (p *Player) Debit(amount int) {
	p.Balance -= amount
}

// Bankrupt reports whether the player's balance has gone negative.
func (p *Player) Bankrupt() bool {
	return p.Balance < 0
}
