// Package deck implements the two card decks (Chance, Community
// Chest): fixed card sets, shuffle, draw-with-reshuffle-on-empty, and
// card-action execution as a closed sum type over action tags.
package deck

// Action is the closed set of effects a card can have, per spec.md
// §3's Card action tags.
type Action string

const (
	ActionCollect            Action = "collect"
	ActionPay                Action = "pay"
	ActionPayToPot           Action = "pay_to_pot"
	ActionMove               Action = "move"
	ActionMoveTo             Action = "move_to"
	ActionGoToJail           Action = "go_to_jail"
	ActionGetOutOfJailFree   Action = "get_out_of_jail_free"
)

// Card is one entry in a deck: a description for display and a
// parameterized action tag that the turn engine executes directly.
type Card struct {
	Description string `json:"description"`
	Action      Action `json:"action"`
	Amount      int    `json:"amount,omitempty"`   // collect/pay/pay_to_pot amount, or move delta (signed)
	Position    int    `json:"position,omitempty"` // target board position for move_to
}
