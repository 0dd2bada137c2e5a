package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"questbets/metrics"
	"questbets/models"
	"questbets/service"
)

// Handler exposes the campaign's REST operations
type Handler struct {
	catalog     service.CatalogService
	leaderboard service.LeaderboardService
	submissions service.SubmissionService
	userBets    service.UserBetsService
}

// NewHandler creates a new API handler
func NewHandler(
	catalog service.CatalogService,
	leaderboard service.LeaderboardService,
	submissions service.SubmissionService,
	userBets service.UserBetsService,
) *Handler {
	return &Handler{
		catalog:     catalog,
		leaderboard: leaderboard,
		submissions: submissions,
		userBets:    userBets,
	}
}

// GetBets handles GET /bets
func (h *Handler) GetBets(c *gin.Context) {
	bets, err := h.catalog.ListBets(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Error fetching bets")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bets"})
		return
	}

	metrics.CatalogReadsTotal.Inc()
	if bets == nil {
		bets = []*models.Bet{}
	}
	c.JSON(http.StatusOK, bets)
}

// GetLeaderboard handles GET /leaderboard
func (h *Handler) GetLeaderboard(c *gin.Context) {
	entries, err := h.leaderboard.GetLeaderboard(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Error fetching leaderboard")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}

	if entries == nil {
		entries = []*models.LeaderboardEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// GetUserBets handles GET /user-bets with an optional address query
// parameter. The response shape depends on the parameter: a global
// summary without it, a single-user snapshot with it.
func (h *Handler) GetUserBets(c *gin.Context) {
	view, err := h.userBets.GetUserBets(c.Request.Context(), c.Query("address"))
	if err != nil {
		log.WithError(err).Error("Error fetching user bets")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user bets"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// PlaceBets handles POST /user-bets
func (h *Handler) PlaceBets(c *gin.Context) {
	var req PlaceBetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.SubmissionsTotal.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.submissions.PlaceBets(c.Request.Context(), req.Address, req.DiscordHandle, req.XHandle, req.BetOutcomes)
	if err != nil {
		h.writeSubmissionError(c, err)
		return
	}

	metrics.SubmissionsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, PlaceBetsResponse{
		ConsensusData: ConsensusData{
			LeaderReceipt: []LeaderReceipt{
				{ExecutionResult: result.ExecutionResult},
			},
		},
		UserID: result.UserID,
	})
}

// writeSubmissionError maps workflow errors onto status codes. Only the
// taxonomy's messages reach the caller; everything else is logged and
// collapsed to a generic 500.
func (h *Handler) writeSubmissionError(c *gin.Context, err error) {
	var invalidErr *service.InvalidRequestError
	if errors.As(err, &invalidErr) {
		metrics.SubmissionsTotal.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidErr.Message})
		return
	}

	var invariantErr *service.InvariantViolationError
	if errors.As(err, &invariantErr) {
		metrics.SubmissionsTotal.WithLabelValues("invariant").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": invariantErr.Message})
		return
	}

	var conflictErr *service.ConflictError
	if errors.As(err, &conflictErr) {
		metrics.SubmissionsTotal.WithLabelValues("conflict").Inc()
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Message})
		return
	}

	metrics.SubmissionsTotal.WithLabelValues("error").Inc()
	log.WithError(err).Error("Error placing bets")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place bets"})
}
