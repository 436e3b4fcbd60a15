package http

import (
	"errors"
	"net/http"

	"vidmint/internal/usecase"
	"vidmint/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PayoutHandler struct {
	payoutUseCase usecase.PayoutUseCase
	logger        *logger.Logger
}

func NewPayoutHandler(payoutUseCase usecase.PayoutUseCase, logger *logger.Logger) *PayoutHandler {
	return &PayoutHandler{
		payoutUseCase: payoutUseCase,
		logger:        logger,
	}
}

type RequestPayoutRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type PaymentMethodRequest struct {
	Method        string `json:"method" binding:"required"`
	AccountName   string `json:"account_name" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
}

// RequestPayout godoc
// @Summary      Request payout
// @Description  Request a withdrawal against accumulated earnings. The amount is swept from per-video balances oldest-first.
// @Tags         payouts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body RequestPayoutRequest true "Payout amount"
// @Success      201  {object}  entity.Payout
// @Failure      400  {object}  map[string]string
// @Router       /payouts [post]
func (h *PayoutHandler) RequestPayout(c *gin.Context) {
	userID := c.GetString("user_id")

	var req RequestPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payout, err := h.payoutUseCase.RequestPayout(userID, req.Amount)
	if err != nil {
		if errors.Is(err, usecase.ErrInsufficientBalance) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient balance"})
			return
		}
		h.logger.Error("Failed to request payout: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, payout)
}

// ListPayouts godoc
// @Summary      List payouts
// @Description  List the user's payout requests with their per-video detail rows
// @Tags         payouts
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Page size"
// @Param        offset query int false "Offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /payouts [get]
func (h *PayoutHandler) ListPayouts(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, offset := pagination(c, 20, 100)

	payouts, err := h.payoutUseCase.ListPayouts(userID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list payouts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payouts": payouts, "count": len(payouts)})
}

// GetPaymentMethod godoc
// @Summary      Get payment method
// @Tags         payouts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.PaymentMethod
// @Failure      404  {object}  map[string]string
// @Router       /payouts/payment-method [get]
func (h *PayoutHandler) GetPaymentMethod(c *gin.Context) {
	userID := c.GetString("user_id")

	method, err := h.payoutUseCase.GetPaymentMethod(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "payment method not set"})
		return
	}

	c.JSON(http.StatusOK, method)
}

// SetPaymentMethod godoc
// @Summary      Set payment method
// @Description  Save or replace the bank or e-wallet account payouts are sent to
// @Tags         payouts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PaymentMethodRequest true "Payment destination"
// @Success      200  {object}  entity.PaymentMethod
// @Router       /payouts/payment-method [put]
func (h *PayoutHandler) SetPaymentMethod(c *gin.Context) {
	userID := c.GetString("user_id")

	var req PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	method, err := h.payoutUseCase.SetPaymentMethod(userID, req.Method, req.AccountName, req.AccountNumber)
	if err != nil {
		h.logger.Error("Failed to set payment method: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, method)
}
