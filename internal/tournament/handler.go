package tournament

import (
	"errors"
	"net/http"

	"github.com/Emersonn00/arevoapp/internal/api"
	"github.com/Emersonn00/arevoapp/internal/auth"
	"github.com/Emersonn00/arevoapp/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListByArena godoc
// @Summary List tournaments at an arena
// @Tags tournaments
// @Produce json
// @Param arenaID path string true "Arena id"
// @Success 200 {array} Tournament
// @Security BearerAuth
// @Router /arenas/{arenaID}/tournaments [get]
func (h *Handler) ListByArena(c *gin.Context) {
	arenaID := c.Param("arenaID")

	tournaments, err := h.service.ListTournaments(c.Request.Context(), arenaID)
	if err != nil {
		logger.Error("failed to list tournaments", "arena_id", arenaID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list tournaments"})
		return
	}

	if tournaments == nil {
		tournaments = []Tournament{}
	}

	c.JSON(http.StatusOK, tournaments)
}

// Get godoc
// @Summary Get a tournament
// @Tags tournaments
// @Produce json
// @Param id path string true "Tournament id"
// @Success 200 {object} Tournament
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /tournaments/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")

	t, err := h.service.GetTournament(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "tournament not found"})
			return
		}
		logger.Error("failed to get tournament", "tournament_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to get tournament"})
		return
	}

	c.JSON(http.StatusOK, t)
}

// ListCategories godoc
// @Summary List a tournament's categories
// @Tags tournaments
// @Produce json
// @Param id path string true "Tournament id"
// @Success 200 {array} Category
// @Security BearerAuth
// @Router /tournaments/{id}/categories [get]
func (h *Handler) ListCategories(c *gin.Context) {
	id := c.Param("id")

	categories, err := h.service.ListCategories(c.Request.Context(), id)
	if err != nil {
		logger.Error("failed to list categories", "tournament_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list categories"})
		return
	}

	if categories == nil {
		categories = []Category{}
	}

	c.JSON(http.StatusOK, categories)
}

// Bracket godoc
// @Summary Get a category's bracket
// @Tags tournaments
// @Produce json
// @Param categoryID path string true "Category id"
// @Success 200 {array} Match
// @Security BearerAuth
// @Router /categories/{categoryID}/matches [get]
func (h *Handler) Bracket(c *gin.Context) {
	categoryID := c.Param("categoryID")

	matches, err := h.service.Bracket(c.Request.Context(), categoryID)
	if err != nil {
		logger.Error("failed to load bracket", "category_id", categoryID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load bracket"})
		return
	}

	if matches == nil {
		matches = []Match{}
	}

	c.JSON(http.StatusOK, matches)
}

// EnterScore godoc
// @Summary Enter a match score
// @Tags tournaments
// @Accept json
// @Produce json
// @Param matchID path string true "Match id"
// @Param request body EnterScoreRequest true "Scores"
// @Success 200 {object} Match
// @Failure 400 {object} api.ErrorResponse
// @Failure 403 {object} api.ErrorResponse
// @Failure 409 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /matches/{matchID}/score [post]
func (h *Handler) EnterScore(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	matchID := c.Param("matchID")

	var req EnterScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "both scores are required"})
		return
	}

	match, err := h.service.EnterScore(c.Request.Context(), userID, matchID, *req.Score1, *req.Score2)
	if err != nil {
		switch {
		case errors.Is(err, ErrMatchNotFound), errors.Is(err, ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrNotManager):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrNegativeScore), errors.Is(err, ErrTiedScore):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrMatchAlreadyComplete), errors.Is(err, ErrMatchMissingTeams):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			logger.Error("failed to enter score", "match_id", matchID, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to enter score"})
		}
		return
	}

	c.JSON(http.StatusOK, match)
}

// Draw godoc
// @Summary Perform the draw for a category
// @Tags tournaments
// @Produce json
// @Param categoryID path string true "Category id"
// @Success 200 {object} api.MessageResponse
// @Failure 403 {object} api.ErrorResponse
// @Failure 409 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /categories/{categoryID}/draw [post]
func (h *Handler) Draw(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	categoryID := c.Param("categoryID")

	if err := h.service.Draw(c.Request.Context(), userID, categoryID); err != nil {
		switch {
		case errors.Is(err, ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrNotManager):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrDrawAlreadyDone):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			logger.Error("draw failed", "category_id", categoryID, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "draw failed"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "draw completed"})
}
