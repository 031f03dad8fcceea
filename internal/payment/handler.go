package payment

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

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

type checkoutRequest struct {
	ClassID     string `json:"class_id" binding:"required"`
	ClassDate   string `json:"class_date" binding:"required"`
	Method      Method `json:"method" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
}

// StartCheckout godoc
// @Summary Start a pay-now checkout for a class enrollment
// @Tags payments
// @Accept json
// @Produce json
// @Param request body checkoutRequest true "Checkout details"
// @Success 201 {object} PendingPayment
// @Failure 400 {object} api.ErrorResponse
// @Failure 402 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /payments/checkout [post]
func (h *Handler) StartCheckout(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.service.StartCheckout(c.Request.Context(), userID, req.ClassID, req.ClassDate, req.Method, req.AmountCents)
	if err != nil {
		logger.Error("failed to start checkout", "user_id", userID, "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	switch req.Method {
	case MethodCredits:
		if err := h.service.PayWithCredits(c.Request.Context(), userID, req.ClassID, req.ClassDate); err != nil {
			if errors.Is(err, ErrInsufficientCredits) {
				c.JSON(http.StatusPaymentRequired, api.ErrorResponse{Error: "insufficient credits balance"})
				return
			}
			logger.Error("credits charge failed", "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to charge credits"})
			return
		}
		p.Status = StatusPaid
	case MethodCard:
		if err := h.service.PayWithCard(c.Request.Context(), userID, req.ClassID, req.ClassDate, req.AmountCents); err != nil {
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "payment sheet failed"})
			return
		}
	}

	c.JSON(http.StatusCreated, p)
}

type webhookRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	ClassID   string `json:"class_id" binding:"required"`
	ClassDate string `json:"class_date" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

// Webhook godoc
// @Summary Settlement webhook for the payment provider
// @Tags payments
// @Accept json
// @Produce json
// @Param request body webhookRequest true "Settlement event"
// @Success 200 {object} api.MessageResponse
// @Failure 401 {object} api.ErrorResponse
// @Router /payments/webhook [post]
func (h *Handler) Webhook(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if subtle.ConstantTimeCompare([]byte(c.GetHeader("X-Webhook-Secret")), []byte(secret)) != 1 {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
			return
		}

		var req webhookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}

		if req.Status != "succeeded" {
			c.JSON(http.StatusOK, api.MessageResponse{Message: "ignored"})
			return
		}

		if err := h.service.ConfirmPaid(c.Request.Context(), req.UserID, req.ClassID, req.ClassDate); err != nil {
			if errors.Is(err, ErrPaymentNotFound) {
				c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "payment not found"})
				return
			}
			logger.Error("failed to settle payment from webhook", "user_id", req.UserID, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to settle payment"})
			return
		}

		c.JSON(http.StatusOK, api.MessageResponse{Message: "settled"})
	}
}

// Status godoc
// @Summary Get the settlement status of a pending payment
// @Tags payments
// @Produce json
// @Param class_id query string true "Class template id"
// @Param class_date query string true "Class date (YYYY-MM-DD)"
// @Success 200 {object} map[string]string
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /payments/status [get]
func (h *Handler) Status(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	classID := c.Query("class_id")
	classDate := c.Query("class_date")
	if classID == "" || classDate == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "class_id and class_date are required"})
		return
	}

	status, err := h.service.Status(c.Request.Context(), userID, classID, classDate)
	if err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "payment not found"})
			return
		}
		logger.Error("failed to get payment status", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to get payment status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": string(status)})
}

// Await godoc
// @Summary Long-poll until a pending payment settles
// @Description Blocks until the payment leaves the pending state or the poll window elapses.
// @Tags payments
// @Produce json
// @Param class_id query string true "Class template id"
// @Param class_date query string true "Class date (YYYY-MM-DD)"
// @Success 200 {object} map[string]string
// @Failure 404 {object} api.ErrorResponse
// @Failure 408 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /payments/await [get]
func (h *Handler) Await(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	classID := c.Query("class_id")
	classDate := c.Query("class_date")
	if classID == "" || classDate == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "class_id and class_date are required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	status, err := h.service.AwaitSettlement(ctx, userID, classID, classDate)
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "payment not found"})
		case errors.Is(err, context.DeadlineExceeded):
			c.JSON(http.StatusRequestTimeout, api.ErrorResponse{Error: "payment still pending"})
		default:
			logger.Error("failed awaiting settlement", "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to check payment"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": string(status)})
}

// Cancel godoc
// @Summary Cancel a pending payment
// @Tags payments
// @Produce json
// @Param class_id query string true "Class template id"
// @Param class_date query string true "Class date (YYYY-MM-DD)"
// @Success 200 {object} api.MessageResponse
// @Security BearerAuth
// @Router /payments/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	classID := c.Query("class_id")
	classDate := c.Query("class_date")
	if classID == "" || classDate == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "class_id and class_date are required"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), userID, classID, classDate); err != nil {
		logger.Error("failed to cancel payment", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to cancel payment"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "payment cancelled"})
}
