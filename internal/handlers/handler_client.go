package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/memorial_park_app/internal/core/ports/services"
	"github.com/SscSPs/memorial_park_app/internal/dto"
	"github.com/SscSPs/memorial_park_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type clientHandler struct {
	documentEmailService portssvc.DocumentEmailSvc
}

// RegisterClientRoutes registers routes under /client. Extra middleware (rate limiting) wraps the email route.
func RegisterClientRoutes(rg *gin.RouterGroup, documentEmail portssvc.DocumentEmailSvc, emailMiddleware ...gin.HandlerFunc) {
	h := &clientHandler{documentEmailService: documentEmail}

	client := rg.Group("/client")
	client.POST("/email-documents", append(emailMiddleware, h.emailDocuments)...)
}

// emailDocuments godoc
// @Summary Email a client's documents
// @Description Re-sends the latest invoice and the certificate of ownership (or the template certificate) to the client's email.
// @Tags client
// @Accept  json
// @Produce  json
// @Param   request body dto.EmailDocumentsRequest true "Client"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Missing client id or email"
// @Failure 404 {object} dto.ErrorResponse "Client or documents not found"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Failed to send email"
// @Security BearerAuth
// @Router /client/email-documents [post]
func (h *clientHandler) emailDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EmailDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for email documents", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request format"))
		return
	}

	if err := h.documentEmailService.SendClientDocuments(c.Request.Context(), req.ClientID); err != nil {
		respondError(c, err, "emailing client documents")
		return
	}

	logger.Info("Client documents emailed", slog.String("client_id", req.ClientID))
	c.JSON(http.StatusOK, dto.OK(nil))
}
