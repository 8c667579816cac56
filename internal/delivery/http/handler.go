// Package http wires the gin router and handlers for every HTTP
// endpoint in spec.md §6: game creation/listing/retrieval, joining,
// starting, taking a turn, and ending a game.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"monopoly-backend/internal/apperr"
	"monopoly-backend/internal/broadcast"
	"monopoly-backend/internal/delivery/dto"
	"monopoly-backend/internal/gamelock"
	"monopoly-backend/internal/gamestate"
	"monopoly-backend/internal/logger"
	"monopoly-backend/internal/store"
	"monopoly-backend/internal/turn"
)

// GameHandler handles the game-lifecycle HTTP surface, per spec.md §6.
type GameHandler struct {
	store store.Store
	locks *gamelock.Registry
	hub   *broadcast.Hub
}

// NewGameHandler wires a handler to its store, lock registry, and
// broadcast hub.
func NewGameHandler(s store.Store, locks *gamelock.Registry, hub *broadcast.Hub) *GameHandler {
	return &GameHandler{store: s, locks: locks, hub: hub}
}

// writeEnvelope renders err as a failure envelope if non-nil, or data
// as a success envelope otherwise, using the status HTTPStatus reports
// for AppError and 500 for anything else.
func writeEnvelope(c *gin.Context, data interface{}, err error) {
	if err == nil {
		c.JSON(http.StatusOK, dto.Ok(data))
		return
	}
	if ae, ok := apperr.As(err); ok {
		c.JSON(ae.HTTPStatus(), dto.Fail(string(ae.Kind), ae.Code, ae.Message))
		return
	}
	logger.Error("unhandled internal error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.Fail("fatal", "internal_error", "internal server error"))
}

// CreateGame handles POST /games.
func (h *GameHandler) CreateGame(c *gin.Context) {
	g := gamestate.New()
	if err := h.store.Save(c.Request.Context(), g); err != nil {
		writeEnvelope(c, nil, err)
		return
	}
	logger.Info("game created", zap.String("game_id", g.ID))
	c.JSON(http.StatusCreated, dto.Ok(g))
}

// ListGames handles GET /games.
func (h *GameHandler) ListGames(c *gin.Context) {
	ctx := c.Request.Context()
	ids, err := h.store.AllIDs(ctx)
	if err != nil {
		writeEnvelope(c, nil, err)
		return
	}
	summaries := make([]dto.GameSummary, 0, len(ids))
	for _, id := range ids {
		g, err := h.store.Load(ctx, id)
		if err != nil {
			continue
		}
		summaries = append(summaries, dto.ToGameSummary(g))
	}
	c.JSON(http.StatusOK, dto.Ok(dto.ListGamesResponse{Games: summaries, Total: len(summaries)}))
}

// GetGame handles GET /games/{id}.
func (h *GameHandler) GetGame(c *gin.Context) {
	g, err := h.store.Load(c.Request.Context(), c.Param("id"))
	writeEnvelope(c, g, err)
}

// GetBoard handles GET /games/{id}/board.
func (h *GameHandler) GetBoard(c *gin.Context) {
	g, err := h.store.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeEnvelope(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, dto.Ok(dto.ToBoardTiles(g)))
}

// JoinGame handles POST /games/{id}/players.
func (h *GameHandler) JoinGame(c *gin.Context) {
	gameID := c.Param("id")
	var req dto.JoinGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("validation", "invalid_request", err.Error()))
		return
	}

	ctx := c.Request.Context()
	var joined *gamestate.Player
	var game *gamestate.Game
	err := h.locks.WithLock(gameID, func() error {
		g, err := h.store.Load(ctx, gameID)
		if err != nil {
			return err
		}
		joined, err = g.AddPlayer(req.Name, gamestate.Token(req.Token))
		if err != nil {
			return err
		}
		if err := h.store.Save(ctx, g); err != nil {
			return err
		}
		game = g
		h.hub.Publish(broadcast.Event{Type: broadcast.EventPlayerJoined, GameID: gameID, Data: joined})
		return nil
	})
	if err != nil {
		writeEnvelope(c, nil, err)
		return
	}
	writeEnvelope(c, dto.JoinGameResponse{Player: joined, Game: game}, nil)
}

// StartGame handles POST /games/{id}/start.
func (h *GameHandler) StartGame(c *gin.Context) {
	gameID := c.Param("id")
	ctx := c.Request.Context()
	var result *gamestate.Game
	err := h.locks.WithLock(gameID, func() error {
		g, err := h.store.Load(ctx, gameID)
		if err != nil {
			return err
		}
		if err := g.Start(); err != nil {
			return err
		}
		if err := h.store.Save(ctx, g); err != nil {
			return err
		}
		result = g
		h.hub.Publish(broadcast.Event{Type: broadcast.EventGameStarted, GameID: gameID, Data: g})
		return nil
	})
	writeEnvelope(c, result, err)
}

// RollTurn handles POST /games/{id}/roll.
func (h *GameHandler) RollTurn(c *gin.Context) {
	gameID := c.Param("id")
	ctx := c.Request.Context()
	var result *turn.Result
	err := h.locks.WithLock(gameID, func() error {
		g, err := h.store.Load(ctx, gameID)
		if err != nil {
			return err
		}
		result, err = turn.Execute(g)
		if err != nil {
			return err
		}
		if err := h.store.Save(ctx, g); err != nil {
			return err
		}
		h.hub.Publish(broadcast.Event{
			Type:   broadcast.EventTurnEnded,
			GameID: gameID,
			Data:   dto.TurnEndedPayload{TurnResult: result, Game: g},
		})
		if g.Status == gamestate.StatusFinished {
			h.hub.Publish(broadcast.Event{Type: broadcast.EventGameEnded, GameID: gameID, Data: gin.H{"winner_id": g.WinnerID}})
		} else {
			h.hub.Publish(broadcast.Event{Type: broadcast.EventGameUpdated, GameID: gameID, Data: g})
		}
		return nil
	})
	writeEnvelope(c, result, err)
}

// EndGame handles POST /games/{id}/end.
func (h *GameHandler) EndGame(c *gin.Context) {
	gameID := c.Param("id")
	ctx := c.Request.Context()
	var game *gamestate.Game
	err := h.locks.WithLock(gameID, func() error {
		g, err := h.store.Load(ctx, gameID)
		if err != nil {
			return err
		}
		g.End()
		if err := h.store.Save(ctx, g); err != nil {
			return err
		}
		game = g
		h.hub.Publish(broadcast.Event{Type: broadcast.EventGameEnded, GameID: gameID, Data: gin.H{"reason": "ended"}})
		return nil
	})
	writeEnvelope(c, game, err)
}

// DeleteGame handles DELETE /games/{id}.
func (h *GameHandler) DeleteGame(c *gin.Context) {
	gameID := c.Param("id")
	ctx := c.Request.Context()
	err := h.locks.WithLock(gameID, func() error {
		if _, err := h.store.Load(ctx, gameID); err != nil {
			return err
		}
		return h.store.Delete(ctx, gameID)
	})
	h.locks.Release(gameID)
	if err != nil {
		writeEnvelope(c, nil, err)
		return
	}
	writeEnvelope(c, nil, nil)
}

// HealthCheck handles GET /health.
func (h *GameHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.Ok(gin.H{"status": "ok"}))
}
