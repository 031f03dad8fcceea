package class

import (
	"net/http"

	"github.com/Emersonn00/arevoapp/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Create a class template
// @Description  Admin-only: create a one-off or recurring class
// @Tags         admin,classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body class.CreateTemplateRequest true "Class template payload"
// @Success      201 {object} class.Template
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/classes [post]
func (h *Handler) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	template, err := h.service.CreateTemplate(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidTemplate:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class template data"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create class"})
		}
		return
	}

	c.JSON(http.StatusCreated, template)
}

// @Summary      List classes for an arena and date
// @Description  Merges one-off classes with expanded recurring instances, with capacity
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Param        arenaID path string true "Arena ID"
// @Param        date query string true "Civil date YYYY-MM-DD"
// @Success      200 {array} class.Instance
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /arenas/{arenaID}/classes [get]
func (h *Handler) ListForDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "date query parameter required"})
		return
	}

	instances, err := h.service.ListForDate(c.Request.Context(), c.Param("arenaID"), date)
	if err != nil {
		switch err {
		case ErrInvalidCivilDate:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date, want YYYY-MM-DD"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch classes"})
		}
		return
	}

	c.JSON(http.StatusOK, instances)
}

// @Summary      Dates with classes in a range
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Param        arenaID path string true "Arena ID"
// @Param        start query string true "Range start YYYY-MM-DD"
// @Param        end query string true "Range end YYYY-MM-DD"
// @Success      200 {array} string
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /arenas/{arenaID}/class-dates [get]
func (h *Handler) AvailableDates(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "start and end query parameters required"})
		return
	}

	dates, err := h.service.AvailableDates(c.Request.Context(), c.Param("arenaID"), start, end)
	if err != nil {
		switch err {
		case ErrInvalidCivilDate:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date, want YYYY-MM-DD"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch dates"})
		}
		return
	}

	if dates == nil {
		dates = []string{}
	}
	c.JSON(http.StatusOK, dates)
}
