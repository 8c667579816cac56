// Package gamestate holds the Monopoly aggregate: Game, Player, the
// bank balance, and the side pot, plus the invariants spec.md §3
// requires of them. It has no knowledge of HTTP, WebSockets, or
// storage — those are layered on top in internal/delivery and
// internal/store.
package gamestate

import (
	"regexp"
	"time"

	"github.com/google/uuid"

	"monopoly-backend/internal/apperr"
	"monopoly-backend/internal/board"
	"monopoly-backend/internal/deck"
)

// Status is the game's lifecycle state, per spec.md §3.
type Status string

const (
	StatusWaiting    Status = "waiting"
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
)

// MinPlayers and MaxPlayers bound how many seats a game may have.
const (
	MinPlayers = 2
	MaxPlayers = 4
)

// InitialBankBalance is high enough to be effectively unbounded for
// the lifetime of any single game — the bank may still go negative
// under sustained play; that is observability only, per spec.md §3.
const InitialBankBalance = 1_000_000_000

var namePattern = regexp.MustCompile(`^[A-Za-z0-9 -]{2,20}$`)

// Game is the aggregate root: players, board, bank, side pot, decks,
// and lifecycle status. JSON field names and order are the snapshot
// wire contract (spec.md §9) — every behavior-affecting field here
// round-trips through Save/Load unchanged.
type Game struct {
	ID                 string         `json:"id"`
	Players            []*Player      `json:"players"`
	CurrentPlayerIndex int            `json:"current_player_index"`
	Tiles              [board.NumTiles]TileState `json:"tiles"`
	Bank               int            `json:"bank"`
	SidePot            int            `json:"side_pot"`
	ChanceDeck         *deck.Deck     `json:"chance_deck"`
	CommunityDeck      *deck.Deck     `json:"community_deck"`
	Status             Status         `json:"status"`
	LastDiceSum        int            `json:"last_dice_sum"`
	WinnerID           string         `json:"winner_id,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	LastActivityAt     time.Time      `json:"last_activity_at"`
}

// New creates an empty, joinable game.
func New() *Game {
	now := time.Now()
	return &Game{
		ID:             uuid.New().String(),
		Players:        []*Player{},
		Bank:           InitialBankBalance,
		ChanceDeck:     deck.New(deck.KindChance),
		CommunityDeck:  deck.New(deck.KindCommunityChest),
		Status:         StatusWaiting,
		CreatedAt:      now,
		LastActivityAt: now,
	}
}

// ValidName reports whether a player name satisfies spec.md §6's
// `^[A-Za-z0-9 -]{2,20}$` contract.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// AddPlayer validates and appends a new player. Error codes match the
// POST /games/{id}/players table in spec.md §6 exactly.
func (g *Game) AddPlayer(name string, token Token) (*Player, error) {
	if !ValidName(name) {
		return nil, apperr.Validation("invalid_name", "player name must match ^[A-Za-z0-9 -]{2,20}$")
	}
	if !ValidToken(token) {
		return nil, apperr.Validation("invalid_token", "token must be one of the eight enumerated tokens")
	}
	if g.Status != StatusWaiting {
		return nil, apperr.Precondition("started", "game has already started")
	}
	if len(g.Players) >= MaxPlayers {
		return nil, apperr.Precondition("full", "game already has the maximum of 4 players")
	}
	for _, p := range g.Players {
		if p.Name == name {
			return nil, apperr.Precondition("duplicate_name", "a player with that name has already joined")
		}
		if p.Token == token {
			return nil, apperr.Precondition("duplicate_token", "that token is already taken")
		}
	}

	p := newPlayer(uuid.New().String(), name, token)
	g.Players = append(g.Players, p)
	g.touch()
	return p, nil
}

// Start transitions the game to in_progress. Requires at least
// MinPlayers joined and the game not already started.
func (g *Game) Start() error {
	if g.Status != StatusWaiting {
		return apperr.Precondition("already_started", "game has already started")
	}
	if len(g.Players) < MinPlayers {
		return apperr.Precondition("not_enough_players", "at least 2 players are required to start")
	}
	g.Status = StatusInProgress
	g.CurrentPlayerIndex = 0
	g.touch()
	return nil
}

// End explicitly finishes the game (POST /games/{id}/end request path).
func (g *Game) End() {
	g.Status = StatusFinished
	g.touch()
}

// CurrentPlayer returns the player whose turn it is. Only meaningful
// while Status is in_progress; callers check that precondition first.
func (g *Game) CurrentPlayer() *Player {
	if g.CurrentPlayerIndex < 0 || g.CurrentPlayerIndex >= len(g.Players) {
		return nil
	}
	return g.Players[g.CurrentPlayerIndex]
}

// PlayerByID finds a player by identifier.
func (g *Game) PlayerByID(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ActivePlayers returns every player still in the game.
func (g *Game) ActivePlayers() []*Player {
	var active []*Player
	for _, p := range g.Players {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}

// Owner returns the owning player ID for a board position, or "" if
// unowned.
func (g *Game) Owner(pos int) string {
	return g.Tiles[pos].Owner
}

// SetOwner assigns ownership of a board position, updating both the
// tile state and the owning player's property list.
func (g *Game) SetOwner(pos int, playerID string) {
	g.Tiles[pos].Owner = playerID
	if p := g.PlayerByID(playerID); p != nil {
		p.AddProperty(pos)
	}
}

// ReleaseOwnership clears ownership and house count for a position,
// removing it from the former owner's property list. Used by
// bankruptcy reversion (spec.md §4.4 step 7).
func (g *Game) ReleaseOwnership(pos int) {
	owner := g.Tiles[pos].Owner
	g.Tiles[pos] = TileState{}
	if owner != "" {
		if p := g.PlayerByID(owner); p != nil {
			p.RemoveProperty(pos)
		}
	}
}

// HasMonopoly reports whether owner holds every property in color.
func (g *Game) HasMonopoly(owner string, color board.Color) bool {
	positions := board.GroupPositions(color)
	if len(positions) == 0 {
		return false
	}
	for _, pos := range positions {
		if g.Tiles[pos].Owner != owner {
			return false
		}
	}
	return true
}

// RailroadCount returns how many of the four railroads owner holds.
func (g *Game) RailroadCount(owner string) int {
	count := 0
	for pos := 0; pos < board.NumTiles; pos++ {
		entry := board.At(pos)
		if entry.Kind == board.KindRailroad && g.Tiles[pos].Owner == owner {
			count++
		}
	}
	return count
}

// UtilityCount returns how many of the two utilities owner holds.
func (g *Game) UtilityCount(owner string) int {
	count := 0
	for pos := 0; pos < board.NumTiles; pos++ {
		entry := board.At(pos)
		if entry.Kind == board.KindUtility && g.Tiles[pos].Owner == owner {
			count++
		}
	}
	return count
}

func (g *Game) touch() {
	g.LastActivityAt = time.Now()
}

// Touch updates the last-activity timestamp; exported for callers
// outside the package (the turn engine) that mutate game state
// directly through exported fields.
func (g *Game) Touch() {
	g.touch()
}
