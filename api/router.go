package api

import "github.com/gin-gonic/gin"

// NewRouter builds the gin engine with all campaign routes
func NewRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(RequestLogger())
	engine.Use(RequestMetrics())

	engine.GET("/bets", h.GetBets)
	engine.GET("/leaderboard", h.GetLeaderboard)
	engine.GET("/user-bets", h.GetUserBets)
	engine.POST("/user-bets", h.PlaceBets)

	return engine
}
