package http

import (
	"errors"
	"net/http"

	"vidmint/internal/entity"
	"vidmint/internal/usecase"
	"vidmint/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase  usecase.AdminUseCase
	payoutUseCase usecase.PayoutUseCase
	logger        *logger.Logger
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase, payoutUseCase usecase.PayoutUseCase, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase:  adminUseCase,
		payoutUseCase: payoutUseCase,
		logger:        logger,
	}
}

type SuspendRequest struct {
	Suspended *bool `json:"suspended" binding:"required"`
}

type UpdateCPMRequest struct {
	CPM float64 `json:"cpm" binding:"required,gt=0"`
}

type DecidePayoutRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

// ListUsers godoc
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Page size"
// @Param        offset query int false "Offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	limit, offset := pagination(c, 50, 200)

	users, err := h.adminUseCase.ListUsers(limit, offset)
	if err != nil {
		h.logger.Error("Failed to list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// SuspendUser godoc
// @Summary      Suspend or reinstate user
// @Description  Suspending a user also revokes all their active sessions
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body SuspendRequest true "Suspension flag"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id}/suspend [put]
func (h *AdminHandler) SuspendUser(c *gin.Context) {
	userID := c.Param("id")

	var req SuspendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.adminUseCase.SetUserSuspended(userID, *req.Suspended); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("Failed to update suspension for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	message := "User reinstated"
	if *req.Suspended {
		message = "User suspended"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// GetSettings godoc
// @Summary      Get platform settings
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.WebSettings
// @Router       /admin/settings [get]
func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.adminUseCase.GetSettings()
	if err != nil {
		h.logger.Error("Failed to get settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateCPM godoc
// @Summary      Update CPM
// @Description  Set the platform-wide CPM rate used for new view earnings
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateCPMRequest true "New CPM"
// @Success      200  {object}  entity.WebSettings
// @Router       /admin/settings/cpm [put]
func (h *AdminHandler) UpdateCPM(c *gin.Context) {
	var req UpdateCPMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.adminUseCase.UpdateCPM(req.CPM)
	if err != nil {
		h.logger.Error("Failed to update CPM: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// ListAllPayouts godoc
// @Summary      List payout requests
// @Description  List payout requests across all users, filtered by status
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "pending, approved or rejected" default(pending)
// @Param        limit query int false "Page size"
// @Param        offset query int false "Offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/payouts [get]
func (h *AdminHandler) ListAllPayouts(c *gin.Context) {
	limit, offset := pagination(c, 50, 200)

	status := entity.PayoutStatus(c.DefaultQuery("status", string(entity.PayoutStatusPending)))
	switch status {
	case entity.PayoutStatusPending, entity.PayoutStatusApproved, entity.PayoutStatusRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	payouts, err := h.payoutUseCase.ListAllPayouts(status, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list payouts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payouts": payouts, "count": len(payouts)})
}

// DecidePayout godoc
// @Summary      Decide payout
// @Description  Approve or reject a pending payout. Rejection returns every detail amount to its video.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Payout ID"
// @Param        request body DecidePayoutRequest true "Decision"
// @Success      200  {object}  entity.Payout
// @Failure      409  {object}  map[string]string
// @Router       /admin/payouts/{id} [put]
func (h *AdminHandler) DecidePayout(c *gin.Context) {
	payoutID := c.Param("id")

	var req DecidePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payout, err := h.payoutUseCase.Decide(payoutID, *req.Approve)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "payout not found"})
		case errors.Is(err, usecase.ErrAlreadyDecided):
			c.JSON(http.StatusConflict, gin.H{"error": "payout already decided"})
		default:
			h.logger.Error("Failed to decide payout %s: %v", payoutID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, payout)
}
