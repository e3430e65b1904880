package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/memorial_park_app/internal/core/ports/services"
	"github.com/SscSPs/memorial_park_app/internal/dto"
	"github.com/SscSPs/memorial_park_app/internal/middleware"
	"github.com/SscSPs/memorial_park_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// cashierHandler handles HTTP requests made from the cashier desk.
type cashierHandler struct {
	walkInService       portssvc.WalkInSvc
	paymentService      portssvc.PaymentReaderSvc
	notificationService portssvc.NotificationSvcFacade
	posthogClient       *utils.PosthogClientWrapper
}

// RegisterCashierRoutes registers routes under /cashier.
func RegisterCashierRoutes(
	rg *gin.RouterGroup,
	walkIn portssvc.WalkInSvc,
	payments portssvc.PaymentReaderSvc,
	notifications portssvc.NotificationSvcFacade,
	posthogClient *utils.PosthogClientWrapper,
) {
	h := &cashierHandler{
		walkInService:       walkIn,
		paymentService:      payments,
		notificationService: notifications,
		posthogClient:       posthogClient,
	}

	cashier := rg.Group("/cashier")
	{
		cashier.POST("/walk-in", h.recordWalkInPayment)
		cashier.GET("/payments/:paymentId", h.getPayment)
		cashier.GET("/notifications", h.listNotifications)
		cashier.PATCH("/notifications/:notificationId/read", h.markNotificationRead)
	}
}

// recordWalkInPayment godoc
// @Summary Record a walk-in payment
// @Description Records a payment taken at the cashier desk, resolving or creating the client and lot, then issues the invoice and certificate.
// @Tags cashier
// @Accept  json
// @Produce  json
// @Param   payment body dto.WalkInPaymentRequest true "Walk-in payment"
// @Success 201 {object} dto.SuccessResponse{data=dto.WalkInPaymentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Lot not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to record payment"
// @Security BearerAuth
// @Router /cashier/walk-in [post]
func (h *cashierHandler) recordWalkInPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.WalkInPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for walk-in payment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request format"))
		return
	}

	// The desk app sends its own cashier id; the token subject fills it in when it doesn't.
	if req.CashierID == "" {
		if userID, ok := middleware.GetUserIDFromContext(c); ok {
			req.CashierID = userID
		}
	}
	if req.CashierUsername == "" {
		req.CashierUsername = middleware.GetUsernameFromContext(c)
	}

	result, err := h.walkInService.RecordWalkInPayment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "recording walk-in payment")
		return
	}

	logger.Info("Walk-in payment recorded",
		slog.String("payment_id", result.Payment.ID),
		slog.String("reference_number", result.Payment.ReferenceNumber),
		slog.Int("failed_stages", len(result.Failed())))

	middleware.PosthogEvent(c, h.posthogClient, "walk_in_payment_recorded", map[string]any{
		"payment_id":     result.Payment.ID,
		"client_created": result.Client.Created,
		"payment_status": string(result.Payment.PaymentStatus),
	})

	c.JSON(http.StatusCreated, dto.OK(dto.ToWalkInPaymentResponse(result)))
}

// getPayment godoc
// @Summary Get a payment
// @Tags cashier
// @Produce  json
// @Param   paymentId path string true "Payment ID"
// @Success 200 {object} dto.SuccessResponse{data=domain.Payment}
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cashier/payments/{paymentId} [get]
func (h *cashierHandler) getPayment(c *gin.Context) {
	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), c.Param("paymentId"))
	if err != nil {
		respondError(c, err, "getting payment")
		return
	}
	c.JSON(http.StatusOK, dto.OK(payment))
}

// listNotifications godoc
// @Summary List the cashier's notifications
// @Tags cashier
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.SuccessResponse{data=[]domain.Notification}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cashier/notifications [get]
func (h *cashierHandler) listNotifications(c *gin.Context) {
	cashierID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid query parameters"))
		return
	}

	notifications, err := h.notificationService.ListCashierNotifications(c.Request.Context(), cashierID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "listing notifications")
		return
	}
	c.JSON(http.StatusOK, dto.OK(notifications))
}

// markNotificationRead godoc
// @Summary Mark a notification as read
// @Tags cashier
// @Param   notificationId path string true "Notification ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Notification not found"
// @Security BearerAuth
// @Router /cashier/notifications/{notificationId}/read [patch]
func (h *cashierHandler) markNotificationRead(c *gin.Context) {
	cashierID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	if err := h.notificationService.MarkNotificationRead(c.Request.Context(), cashierID, c.Param("notificationId")); err != nil {
		respondError(c, err, "marking notification read")
		return
	}
	c.Status(http.StatusNoContent)
}
