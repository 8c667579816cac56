package dto

import (
	"monopoly-backend/internal/gamestate"
	"monopoly-backend/internal/turn"
)

// TurnEndedPayload is the broadcast Data for a turn:ended event, per
// spec.md §6: the full turn result plus the post-turn game snapshot.
type TurnEndedPayload struct {
	TurnResult *turn.Result    `json:"turn_result"`
	Game       *gamestate.Game `json:"game"`
}

// JoinGameRequest is the body of POST /games/{id}/players.
type JoinGameRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=20,player_name"`
	Token string `json:"token" binding:"required,oneof=boot car ship thimble hat dog wheelbarrow iron"`
}

// JoinGameResponse is the success data for POST /games/{id}/players,
// per spec.md §6: `{player, game}`.
type JoinGameResponse struct {
	Player *gamestate.Player `json:"player"`
	Game   *gamestate.Game   `json:"game"`
}

// GameSummary is the listing-view projection of a game, per spec.md
// §6's `GET /games` success data.
type GameSummary struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	PlayerCount int    `json:"player_count"`
	CreatedAt   string `json:"created_at"`
}

// ListGamesResponse is the success data for GET /games.
type ListGamesResponse struct {
	Games []GameSummary `json:"games"`
	Total int           `json:"total"`
}

// ToGameSummary projects a Game to its listing view.
func ToGameSummary(g *gamestate.Game) GameSummary {
	return GameSummary{
		ID:          g.ID,
		Status:      string(g.Status),
		PlayerCount: len(g.Players),
		CreatedAt:   g.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
