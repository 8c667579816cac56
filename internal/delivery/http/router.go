package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"monopoly-backend/internal/broadcast"
)

// NewRouter builds the gin engine: CORS, health check, the game
// lifecycle API under /api/v1, and the WebSocket upgrade endpoint.
func NewRouter(gameHandler *GameHandler, hub *broadcast.Hub, corsOriginPattern string) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOriginPatterns([]string{corsOriginPattern})
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", gameHandler.HealthCheck)

	api := r.Group("/api/v1")
	{
		api.POST("/games", gameHandler.CreateGame)
		api.GET("/games", gameHandler.ListGames)
		api.GET("/games/:id", gameHandler.GetGame)
		api.GET("/games/:id/board", gameHandler.GetBoard)
		api.POST("/games/:id/players", gameHandler.JoinGame)
		api.POST("/games/:id/start", gameHandler.StartGame)
		api.POST("/games/:id/roll", gameHandler.RollTurn)
		api.POST("/games/:id/end", gameHandler.EndGame)
		api.DELETE("/games/:id", gameHandler.DeleteGame)
	}

	r.GET("/ws", func(c *gin.Context) {
		connID := uuid.New().String()
		if err := hub.ServeWS(c.Writer, c.Request, connID); err != nil {
			c.AbortWithStatus(400)
		}
	})

	return r
}
