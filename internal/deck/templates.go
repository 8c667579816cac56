package deck

// Kind identifies which of the two card decks this is. Part of the
// snapshot wire contract — a deck's Kind determines which template it
// reshuffles from when drawn empty.
type Kind string

const (
	KindChance         Kind = "chance"
	KindCommunityChest Kind = "community_chest"
)

// chanceTemplate is the fixed Chance card set, per spec.md §4.3's
// requirement that the card set be stable across the external
// contract. Positions referenced by move_to match the board catalog
// in internal/board.
var chanceTemplate = []Card{
	{Description: "Advance to Go and collect $200", Action: ActionMoveTo, Position: 0},
	{Description: "Advance to Illinois Avenue", Action: ActionMoveTo, Position: 24},
	{Description: "Advance to St. Charles Place", Action: ActionMoveTo, Position: 11},
	{Description: "Advance to Boardwalk", Action: ActionMoveTo, Position: 39},
	{Description: "Take a trip to Reading Railroad", Action: ActionMoveTo, Position: 5},
	{Description: "Advance to Electric Company", Action: ActionMoveTo, Position: 12},
	{Description: "Go to Jail — go directly to jail", Action: ActionGoToJail},
	{Description: "Bank pays you a dividend of $50", Action: ActionCollect, Amount: 50},
	{Description: "Your building loan matures, collect $150", Action: ActionCollect, Amount: 150},
	{Description: "You have won a crossword competition, collect $100", Action: ActionCollect, Amount: 100},
	{Description: "Speeding fine, pay $15", Action: ActionPay, Amount: 15},
	{Description: "Make general repairs on all your property, pay $25", Action: ActionPay, Amount: 25},
	{Description: "Pay poor tax of $15", Action: ActionPayToPot, Amount: 15},
	{Description: "Get out of jail free", Action: ActionGetOutOfJailFree},
	{Description: "Go back 3 spaces", Action: ActionMove, Amount: -3},
}

// communityChestTemplate is the fixed Community Chest card set.
var communityChestTemplate = []Card{
	{Description: "Advance to Go and collect $200", Action: ActionMoveTo, Position: 0},
	{Description: "Bank error in your favor, collect $200", Action: ActionCollect, Amount: 200},
	{Description: "Doctor's fee, pay $50", Action: ActionPay, Amount: 50},
	{Description: "From sale of stock you get $50", Action: ActionCollect, Amount: 50},
	{Description: "Get out of jail free", Action: ActionGetOutOfJailFree},
	{Description: "Go to Jail — go directly to jail", Action: ActionGoToJail},
	{Description: "Holiday fund matures, receive $100", Action: ActionCollect, Amount: 100},
	{Description: "Income tax refund, collect $20", Action: ActionCollect, Amount: 20},
	{Description: "Life insurance matures, collect $100", Action: ActionCollect, Amount: 100},
	{Description: "Pay hospital fees of $100", Action: ActionPay, Amount: 100},
	{Description: "Pay school fees of $50", Action: ActionPay, Amount: 50},
	{Description: "Receive $25 consultancy fee", Action: ActionCollect, Amount: 25},
	{Description: "You are assessed for street repairs, pay $40 to the fund", Action: ActionPayToPot, Amount: 40},
	{Description: "You have won second prize in a beauty contest, collect $10", Action: ActionCollect, Amount: 10},
	{Description: "You inherit $100", Action: ActionCollect, Amount: 100},
}

func templateFor(kind Kind) []Card {
	switch kind {
	case KindChance:
		return chanceTemplate
	case KindCommunityChest:
		return communityChestTemplate
	default:
		return nil
	}
}
