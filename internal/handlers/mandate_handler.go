package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "billwise/internal/errors"
	"billwise/internal/models"
	"billwise/internal/services"
)

// MandateHandler handles recurring-mandate requests, including the four
// settlement operations (pay, reset, skip, unskip).
type MandateHandler struct {
	mandateService services.MandateServicer
	auditService   services.AuditServicer
}

// NewMandateHandler creates a new MandateHandler.
func NewMandateHandler(mandateService services.MandateServicer, auditService services.AuditServicer) *MandateHandler {
	return &MandateHandler{mandateService: mandateService, auditService: auditService}
}

// CreateMandateRequest represents the request payload for creating a mandate
type CreateMandateRequest struct {
	Name     string          `json:"name" binding:"required,max=255"`
	Category models.Category `json:"category" binding:"required,expense_category"`
	Amount   int64           `json:"amount" binding:"required,gt=0"`
	DueDay   int             `json:"due_day" binding:"omitempty,min=1,max=31"`
}

// UpdateMandateRequest represents the request payload for editing a mandate.
// Settlement facts are not editable; only descriptive fields appear here.
type UpdateMandateRequest struct {
	Name     string           `json:"name" binding:"omitempty,max=255"`
	Category *models.Category `json:"category" binding:"omitempty,expense_category"`
	Amount   *int64           `json:"amount" binding:"omitempty,gt=0"`
	DueDay   *int             `json:"due_day" binding:"omitempty,min=1,max=31"`
}

// PayMandateRequest carries the confirmed amount for a payment.
type PayMandateRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// ListMandatesQuery holds the optional query parameters for listing mandates.
type ListMandatesQuery struct {
	Sort string `form:"sort" binding:"omitempty,mandate_sort"`
}

// CreateMandate handles the creation of a new mandate
// @Summary     Create a mandate
// @Description Create a new recurring monthly payment obligation
// @Tags        mandates
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateMandateRequest true "Mandate details"
// @Success     201 {object} models.Mandate "Mandate created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /mandates [post]
func (h *MandateHandler) CreateMandate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateMandateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	mandate, err := h.mandateService.CreateMandate(userID, req.Name, req.Category, req.Amount, req.DueDay)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_MANDATE", "mandate", mandate.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "amount": req.Amount})

	c.JSON(http.StatusCreated, gin.H{"mandate": mandate})
}

// GetUserMandates lists the user's mandates with derived statuses
// @Summary     List mandates
// @Description Get all mandates with their settlement status for the current month, plus cycle totals
// @Tags        mandates
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       sort query string false "Display order (name, amount, due_day)"
// @Success     200 {object} services.MandateList "Mandates and summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /mandates [get]
func (h *MandateHandler) GetUserMandates(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query ListMandatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	list, err := h.mandateService.GetUserMandates(userID, query.Sort, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetMandateByID retrieves a single mandate
// @Summary     Get mandate by ID
// @Description Get a specific mandate by ID
// @Tags        mandates
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Mandate ID"
// @Success     200 {object} models.Mandate "Mandate details"
// @Failure     400 {object} ErrorResponse "Invalid mandate ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Mandate not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /mandates/{id} [get]
func (h *MandateHandler) GetMandateByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	mandateID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	mandate, err := h.mandateService.GetMandateByID(userID, mandateID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mandate": mandate})
}

// UpdateMandate edits a mandate's descriptive fields
// @Summary     Update mandate
// @Description Update a mandate's name, category, expected amount, or due day
// @Tags        mandates
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Mandate ID"
// @Param       request body UpdateMandateRequest true "Fields to update"
// @Success     200 {object} models.Mandate "Updated mandate"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Mandate not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /mandates/{id} [put]
func (h *MandateHandler) UpdateMandate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	mandateID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateMandateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	mandate, err := h.mandateService.UpdateMandate(userID, mandateID, req.Name, req.Category, req.Amount, req.DueDay)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_MANDATE", "mandate", mandateID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"mandate": mandate})
}

// DeleteMandate removes a mandate
// @Summary     Delete mandate
// @Description Delete a mandate. Ledger entries created by past payments are kept.
// @Tags        mandates
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Mandate ID"
// @Success     200 {object} MessageResponse "Mandate deleted"
// @Failure     400 {object} ErrorResponse "Invalid mandate ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Mandate not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /mandates/{id} [delete]
func (h *MandateHandler) DeleteMandate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	mandateID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.mandateService.DeleteMandate(userID, mandateID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_MANDATE", "mandate", mandateID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Mandate deleted successfully"})
}

// Pay settles a mandate for the current month
// @Summary     Pay a mandate
// @Description Record a payment for the current month: creates a ledger entry and updates the mandate atomically. The confirmed amount becomes the new expected amount.
// @Tags        mandates
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Mandate ID"
// @Param       request body PayMandateRequest true "Confirmed amount (paise)"
// @Success     200 {object} models.Mandate "Mandate after payment"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Mandate not found"
// @Failure     500 {object} ErrorResponse "Payment could not be committed"
// @Router      /mandates/{id}/pay [post]
func (h *MandateHandler) Pay(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	mandateID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PayMandateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	mandate, err := h.mandateService.Pay(userID, mandateID, req.Amount, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "PAY_MANDATE", "mandate", mandateID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount})

	c.JSON(http.StatusOK, gin.H{"mandate": mandate})
}

// Reset undoes the current payment
// @Summary     Reset a mandate payment
// @Description Clear the mandate's payment facts and delete the linked ledger entry, atomically
// @Tags        mandates
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Mandate ID"
// @Success     200 {object} models.Mandate "Mandate after reset"
// @Failure     400 {object} ErrorResponse "Invalid mandate ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Mandate not found"
// @Failure     500 {object} ErrorResponse "Reset could not be committed"
// @Router      /mandates/{id}/reset [post]
func (h *MandateHandler) Reset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	mandateID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	mandate, err := h.mandateService.Reset(userID, mandateID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "RESET_MANDATE", "mandate", mandateID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"mandate": mandate})
}

// Skip marks the current month as skipped
// @Summary     Skip a mandate for the current month
// @Description Mark the current month as intentionally skipped. Calling it again in the same month is a no-op.
// @Tags        mandates
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Mandate ID"
// @Success     200 {object} models.Mandate "Mandate after skip"
// @Failure     400 {object} ErrorResponse "Invalid mandate ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Mandate not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /mandates/{id}/skip [post]
func (h *MandateHandler) Skip(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	mandateID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	mandate, err := h.mandateService.Skip(userID, mandateID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SKIP_MANDATE", "mandate", mandateID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"mandate": mandate})
}

// Unskip removes the current month's skip record
// @Summary     Unskip a mandate for the current month
// @Description Remove the current month from the skip set if present; otherwise a no-op
// @Tags        mandates
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Mandate ID"
// @Success     200 {object} models.Mandate "Mandate after unskip"
// @Failure     400 {object} ErrorResponse "Invalid mandate ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Mandate not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /mandates/{id}/unskip [post]
func (h *MandateHandler) Unskip(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	mandateID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	mandate, err := h.mandateService.Unskip(userID, mandateID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UNSKIP_MANDATE", "mandate", mandateID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"mandate": mandate})
}
