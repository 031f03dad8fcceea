package arena

import (
	"net/http"

	"github.com/Emersonn00/arevoapp/internal/api"
	"github.com/Emersonn00/arevoapp/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Create an arena
// @Description  Admin-only: create a new arena
// @Tags         admin,arenas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body arena.CreateArenaRequest true "Arena payload"
// @Success      201 {object} arena.Arena
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/arenas [post]
func (h *Handler) CreateArena(c *gin.Context) {
	var req CreateArenaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	arena, err := h.service.CreateArena(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create arena"})
		return
	}

	c.JSON(http.StatusCreated, arena)
}

// @Summary      List active arenas
// @Tags         arenas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} arena.Arena
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /arenas [get]
func (h *Handler) ListArenas(c *gin.Context) {
	arenas, err := h.service.ListArenas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch arenas"})
		return
	}

	c.JSON(http.StatusOK, arenas)
}

// @Summary      My ban status for an arena
// @Tags         arenas
// @Produce      json
// @Security     BearerAuth
// @Param        arenaID path string true "Arena ID"
// @Success      200 {object} arena.BanStatus
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /arenas/{arenaID}/ban-status [get]
func (h *Handler) BanStatus(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	status, err := h.service.BanStatus(c.Request.Context(), userID, c.Param("arenaID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch ban status"})
		return
	}

	c.JSON(http.StatusOK, status)
}
