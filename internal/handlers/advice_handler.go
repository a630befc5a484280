package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"billwise/internal/services"
)

// AdviceHandler serves generated saving advice.
type AdviceHandler struct {
	adviceService services.AdviceServicer
}

// NewAdviceHandler creates a new AdviceHandler.
func NewAdviceHandler(adviceService services.AdviceServicer) *AdviceHandler {
	return &AdviceHandler{adviceService: adviceService}
}

// GetAdvice generates saving advice from the user's spending data
// @Summary     Generate saving advice
// @Description Generate personalized saving advice from the current month's income and spending
// @Tags        advice
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Advice "Generated advice"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Advice generation unavailable"
// @Router      /advice [post]
func (h *AdviceHandler) GetAdvice(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	advice, err := h.adviceService.GetAdvice(ctx, userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, advice)
}
