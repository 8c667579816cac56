// Package tile implements what happens when a player lands on each of
// the ten board tile kinds. Behaviors dispatch on board.Kind as a
// closed switch rather than a type hierarchy, per the board's own
// closed Kind enum.
package tile

import (
	"monopoly-backend/internal/board"
	"monopoly-backend/internal/deck"
	"monopoly-backend/internal/gamestate"
)

// EventKind labels what happened so the turn engine can describe it
// in a turn result and the broadcast layer can name it in an event.
type EventKind string

const (
	EventNone           EventKind = "none"
	EventGoCredit       EventKind = "go_credit"
	EventPurchased      EventKind = "purchased"
	EventRentPaid       EventKind = "rent_paid"
	EventTaxPaid        EventKind = "tax_paid"
	EventCardDrawn      EventKind = "card_drawn"
	EventSentToJail     EventKind = "sent_to_jail"
	EventFreeParkingHit EventKind = "free_parking_hit"
	EventSelfOwned      EventKind = "self_owned"
	EventNoOp           EventKind = "no_op"
)

// Interaction describes the outcome of landing on a tile: what kind of
// event occurred, any card drawn, and any cash that moved, for the
// turn engine to fold into its Result and the broadcast layer to
// announce.
type Interaction struct {
	Event       EventKind
	Description string
	Card        *deck.Card
	Amount      int    // magnitude of money involved, always non-negative; for an unaffordable purchase, the price that was not paid
	Payer       string // player ID who paid, if any
	Payee       string // player ID or "bank"/"pot" who received, if any
}

// rentMultiplier maps a property's house count to its rent multiplier
// over base rent. Index 0 is the no-house case; monopolyNoHouseMultiplier is
// used instead of index 0 when the owner holds the full color group
// but has not yet built.
var rentMultiplier = map[int]int{
	0: 1,
	1: 5,
	2: 10,
	3: 15,
	4: 20,
	5: 25, // hotel
}

const monopolyNoHouseMultiplier = 2

// Land resolves a player's landing on a board position, mutating game
// and player state as needed, and returns a description of what
// happened. It never advances turns or checks bankruptcy — the turn
// engine does that after inspecting the Interaction.
func Land(g *gamestate.Game, p *gamestate.Player) Interaction {
	entry := board.At(p.Position)
	switch entry.Kind {
	case board.KindGo:
		return landOnGo(p)
	case board.KindProperty:
		return landOnProperty(g, p, entry)
	case board.KindRailroad:
		return landOnRailroad(g, p, entry)
	case board.KindUtility:
		return landOnUtility(g, p, entry)
	case board.KindTax:
		return landOnTax(g, entry)
	case board.KindChance:
		return landOnCard(g, p, g.ChanceDeck)
	case board.KindCommunityChest:
		return landOnCard(g, p, g.CommunityDeck)
	case board.KindJail:
		return Interaction{Event: EventNoOp, Description: "just visiting"}
	case board.KindFreeParking:
		return landOnFreeParking(g, p)
	case board.KindGoToJail:
		return SendToJail(p)
	default:
		return Interaction{Event: EventNone}
	}
}

func landOnGo(p *gamestate.Player) Interaction {
	const bonus = 200
	p.Credit(bonus)
	return Interaction{Event: EventGoCredit, Description: "landed on Go", Amount: bonus, Payer: "bank", Payee: p.ID}
}

func landOnProperty(g *gamestate.Game, p *gamestate.Player, entry board.Entry) Interaction {
	owner := g.Owner(entry.Position)
	switch {
	case owner == "":
		return purchase(g, p, entry)
	case owner == p.ID:
		return Interaction{Event: EventSelfOwned, Description: "landed on own property"}
	default:
		rent := propertyRent(g, entry, owner)
		return payRent(g, p, owner, rent)
	}
}

func propertyRent(g *gamestate.Game, entry board.Entry, owner string) int {
	houses := g.Tiles[entry.Position].HouseCount
	if houses == 0 && g.HasMonopoly(owner, entry.Color) {
		return entry.BaseRent * monopolyNoHouseMultiplier
	}
	return entry.BaseRent * rentMultiplier[houses]
}

func landOnRailroad(g *gamestate.Game, p *gamestate.Player, entry board.Entry) Interaction {
	owner := g.Owner(entry.Position)
	switch {
	case owner == "":
		return purchase(g, p, entry)
	case owner == p.ID:
		return Interaction{Event: EventSelfOwned, Description: "landed on own railroad"}
	default:
		count := g.RailroadCount(owner)
		rent := entry.BaseRent
		for i := 1; i < count; i++ {
			rent *= 2
		}
		return payRent(g, p, owner, rent)
	}
}

func landOnUtility(g *gamestate.Game, p *gamestate.Player, entry board.Entry) Interaction {
	owner := g.Owner(entry.Position)
	switch {
	case owner == "":
		return purchase(g, p, entry)
	case owner == p.ID:
		return Interaction{Event: EventSelfOwned, Description: "landed on own utility"}
	default:
		multiplier := 4
		if g.UtilityCount(owner) == 2 {
			multiplier = 10
		}
		rent := g.LastDiceSum * multiplier
		return payRent(g, p, owner, rent)
	}
}

// purchase auto-buys the tile for the landing player at face price, if
// they can afford it. Open Question resolved in favor of
// auto-purchase: a player who cannot afford it simply does not buy.
func purchase(g *gamestate.Game, p *gamestate.Player, entry board.Entry) Interaction {
	if p.Balance < entry.Price {
		return Interaction{Event: EventNoOp, Description: "insufficient funds to purchase", Amount: entry.Price}
	}
	p.Debit(entry.Price)
	g.Bank += entry.Price
	g.SetOwner(entry.Position, p.ID)
	return Interaction{
		Event:       EventPurchased,
		Description: "purchased " + entry.Name,
		Amount:      entry.Price,
		Payer:       p.ID,
		Payee:       "bank",
	}
}

func payRent(g *gamestate.Game, payer *gamestate.Player, ownerID string, rent int) Interaction {
	owner := g.PlayerByID(ownerID)
	payer.Debit(rent)
	if owner != nil {
		owner.Credit(rent)
	}
	return Interaction{
		Event:       EventRentPaid,
		Description: "paid rent",
		Amount:      rent,
		Payer:       payer.ID,
		Payee:       ownerID,
	}
}

func landOnTax(g *gamestate.Game, entry board.Entry) Interaction {
	// Tax is paid by the engine's caller via the returned amount —
	// Land only reports it here; ApplyTax below does the actual debit,
	// invoked by the turn engine which already holds the player
	// reference.
	return Interaction{Event: EventTaxPaid, Description: entry.Name, Amount: entry.TaxAmount, Payee: "pot"}
}

// ApplyTax debits the tax amount from the player and adds it to the
// side pot, per spec.md §4.2 — taxes feed the side pot, not the bank,
// so Free Parking has something to sweep.
func ApplyTax(g *gamestate.Game, p *gamestate.Player, amount int) {
	p.Debit(amount)
	g.SidePot += amount
}

func landOnCard(g *gamestate.Game, p *gamestate.Player, d *deck.Deck) Interaction {
	card := d.Draw()
	return Interaction{Event: EventCardDrawn, Description: card.Description, Card: &card}
}

// ApplyCard executes a drawn card's action against the landing player.
// move/move_to relocate the player but the tile at the new position is
// not re-resolved in this ruleset; a move_to that wraps past Go still
// credits the 200 bonus.
func ApplyCard(g *gamestate.Game, p *gamestate.Player, card deck.Card) {
	switch card.Action {
	case deck.ActionCollect:
		p.Credit(card.Amount)
	case deck.ActionPay:
		p.Debit(card.Amount)
	case deck.ActionPayToPot:
		p.Debit(card.Amount)
		g.SidePot += card.Amount
	case deck.ActionMove:
		p.Position = ((p.Position+card.Amount)%board.NumTiles + board.NumTiles) % board.NumTiles
	case deck.ActionMoveTo:
		if card.Position < p.Position {
			p.Credit(200)
		}
		p.Position = card.Position
	case deck.ActionGoToJail:
		SendToJail(p)
	case deck.ActionGetOutOfJailFree:
		// No effect: the card is not kept by the player, and the turn
		// engine's jail sub-state-machine checks InJail/JailTurns only.
	}
}

func landOnFreeParking(g *gamestate.Game, p *gamestate.Player) Interaction {
	amount := g.SidePot
	if amount > 0 {
		p.Credit(amount)
		g.SidePot = 0
	}
	return Interaction{Event: EventFreeParkingHit, Description: "collected free parking pot", Amount: amount, Payer: "pot", Payee: p.ID}
}

const JailPosition = 10

// SendToJail relocates a player directly to jail without passing Go.
func SendToJail(p *gamestate.Player) Interaction {
	p.Position = JailPosition
	p.InJail = true
	p.JailTurns = 0
	return Interaction{Event: EventSentToJail, Description: "sent to jail"}
}
