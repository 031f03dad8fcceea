package enrollment

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

// statusFor maps workflow rejections to HTTP statuses. The ban error carries
// data, so it is matched by type rather than identity.
func statusFor(err error) int {
	var banErr *BanError
	switch {
	case errors.Is(err, ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrClassNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotYetBookable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrClassFull),
		errors.Is(err, ErrAlreadySubscribed),
		errors.Is(err, ErrArenaDayLimit),
		errors.Is(err, ErrWeeklyLimit):
		return http.StatusConflict
	case errors.As(err, &banErr), errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrPaymentRequired):
		return http.StatusPaymentRequired
	case errors.Is(err, ErrRemoteUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Enroll godoc
// @Summary Enroll in a class instance
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body EnrollRequest true "Class instance and optional program choice"
// @Success 201 {object} Result
// @Success 200 {object} Result "Wellness program choice required"
// @Failure 401 {object} api.ErrorResponse
// @Failure 402 {object} api.ErrorResponse
// @Failure 403 {object} api.ErrorResponse
// @Failure 409 {object} api.ErrorResponse
// @Failure 422 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /enrollments [post]
func (h *Handler) Enroll(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.service.Enroll(c.Request.Context(), userID, req)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			logger.Error("enrollment failed", "user_id", userID, "class_id", req.ClassID, "error", err)
			c.JSON(status, api.ErrorResponse{Error: "failed to enroll"})
			return
		}
		c.JSON(status, api.ErrorResponse{Error: err.Error()})
		return
	}

	if result.NeedsProgramChoice {
		c.JSON(http.StatusOK, result)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Cancel godoc
// @Summary Cancel an enrollment
// @Tags enrollments
// @Produce json
// @Param class_id query string true "Composite class instance id"
// @Success 200 {object} api.MessageResponse
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /enrollments [delete]
func (h *Handler) Cancel(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	classID := c.Query("class_id")
	if classID == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "class_id is required"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), userID, classID); err != nil {
		if errors.Is(err, ErrEnrollmentNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "enrollment not found"})
			return
		}
		logger.Error("failed to cancel enrollment", "user_id", userID, "class_id", classID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to cancel enrollment"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "enrollment cancelled"})
}

// ListMine godoc
// @Summary List my active enrollments
// @Tags enrollments
// @Produce json
// @Success 200 {array} Enrollment
// @Security BearerAuth
// @Router /enrollments [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	enrollments, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		logger.Error("failed to list enrollments", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list enrollments"})
		return
	}

	if enrollments == nil {
		enrollments = []Enrollment{}
	}

	c.JSON(http.StatusOK, enrollments)
}
