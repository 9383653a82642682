package api

import (
	"errors"
	"net/http"

	"github.com/roobux/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	requestService  service.RequestService
	approvalService service.ApprovalService
	audit           service.AuditService
}

func NewTransactionHandler(requestService service.RequestService, approvalService service.ApprovalService, audit service.AuditService) *TransactionHandler {
	return &TransactionHandler{
		requestService:  requestService,
		approvalService: approvalService,
		audit:           audit,
	}
}

// @Summary Submit a deposit request
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param deposit body service.DepositRequest true "Deposit request"
// @Success 201 {object} models.Deposit "Pending deposit"
// @Failure 400 {object} map[string]string "Invalid amount or package"
// @Router /deposits [post]
func (h *TransactionHandler) CreateDeposit(c *gin.Context) {
	var req service.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	userID, _ := actor(c)
	deposit, err := h.requestService.CreateDeposit(userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrAmountOutOfRange) || errors.Is(err, service.ErrPackageUnavailable) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit deposit"})
		return
	}
	c.JSON(http.StatusCreated, deposit)
}

// @Summary List own deposits
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Deposit "Deposits"
// @Router /deposits [get]
func (h *TransactionHandler) GetUserDeposits(c *gin.Context) {
	userID, _ := actor(c)
	deposits, err := h.requestService.GetUserDeposits(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deposits"})
		return
	}
	c.JSON(http.StatusOK, deposits)
}

// @Summary Submit a withdrawal request
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param withdrawal body service.WithdrawalRequest true "Withdrawal request"
// @Success 201 {object} models.Withdrawal "Pending withdrawal"
// @Failure 400 {object} map[string]string "Invalid amount or insufficient balance"
// @Router /withdrawals [post]
func (h *TransactionHandler) CreateWithdrawal(c *gin.Context) {
	var req service.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	userID, _ := actor(c)
	withdrawal, err := h.requestService.CreateWithdrawal(userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrAmountOutOfRange) || errors.Is(err, service.ErrInsufficientFunds) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit withdrawal"})
		return
	}
	c.JSON(http.StatusCreated, withdrawal)
}

// @Summary List own withdrawals
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Withdrawal "Withdrawals"
// @Router /withdrawals [get]
func (h *TransactionHandler) GetUserWithdrawals(c *gin.Context) {
	userID, _ := actor(c)
	withdrawals, err := h.requestService.GetUserWithdrawals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch withdrawals"})
		return
	}
	c.JSON(http.StatusOK, withdrawals)
}

// @Summary List all deposits (Admin)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Deposit "Deposits"
// @Router /admin/deposits [get]
func (h *TransactionHandler) GetAllDeposits(c *gin.Context) {
	deposits, err := h.requestService.GetAllDeposits()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deposits"})
		return
	}
	c.JSON(http.StatusOK, deposits)
}

// @Summary List all withdrawals (Admin)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Withdrawal "Withdrawals"
// @Router /admin/withdrawals [get]
func (h *TransactionHandler) GetAllWithdrawals(c *gin.Context) {
	withdrawals, err := h.requestService.GetAllWithdrawals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch withdrawals"})
		return
	}
	c.JSON(http.StatusOK, withdrawals)
}

func reviewStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrDepositNotFound),
		errors.Is(err, service.ErrWithdrawalNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAlreadyReviewed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// @Summary Approve a deposit (Admin)
// @Description Credits the user, pays the one-time referral bonus when due, and marks the deposit approved, all atomically
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deposit ID"
// @Success 200 {object} service.DepositApproval "Approval result"
// @Failure 404 {object} map[string]string "Deposit not found"
// @Failure 409 {object} map[string]string "Already reviewed"
// @Router /admin/deposits/{id}/approve [put]
func (h *TransactionHandler) ApproveDeposit(c *gin.Context) {
	id := c.Param("id")
	result, err := h.approvalService.ApproveDeposit(id)
	if err != nil {
		c.JSON(reviewStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	adminID, adminEmail := actor(c)
	h.audit.LogAction(adminID, adminEmail, "approve_deposit", c.ClientIP(), map[string]interface{}{
		"deposit_id": id,
		"amount":     result.Deposit.Amount,
		"bonus_paid": result.BonusPaid,
	})
	c.JSON(http.StatusOK, result)
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

// @Summary Reject a deposit (Admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deposit ID"
// @Param rejection body RejectRequest true "Rejection reason"
// @Success 200 {object} models.Deposit "Rejected deposit"
// @Failure 404 {object} map[string]string "Deposit not found"
// @Failure 409 {object} map[string]string "Already reviewed"
// @Router /admin/deposits/{id}/reject [put]
func (h *TransactionHandler) RejectDeposit(c *gin.Context) {
	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	id := c.Param("id")
	deposit, err := h.approvalService.RejectDeposit(id, req.Reason)
	if err != nil {
		c.JSON(reviewStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	adminID, adminEmail := actor(c)
	h.audit.LogAction(adminID, adminEmail, "reject_deposit", c.ClientIP(), map[string]interface{}{
		"deposit_id": id,
		"reason":     req.Reason,
	})
	c.JSON(http.StatusOK, deposit)
}

// @Summary Approve a withdrawal (Admin)
// @Description Debits the user and marks the withdrawal approved; an insufficient balance auto-rejects instead
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Withdrawal ID"
// @Success 200 {object} service.WithdrawalApproval "Approval result"
// @Failure 404 {object} map[string]string "Withdrawal not found"
// @Failure 409 {object} map[string]string "Already reviewed"
// @Router /admin/withdrawals/{id}/approve [put]
func (h *TransactionHandler) ApproveWithdrawal(c *gin.Context) {
	id := c.Param("id")
	result, err := h.approvalService.ApproveWithdrawal(id)
	if err != nil {
		c.JSON(reviewStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	action := "approve_withdrawal"
	if result.AutoRejected {
		action = "auto_reject_withdrawal"
	}
	adminID, adminEmail := actor(c)
	h.audit.LogAction(adminID, adminEmail, action, c.ClientIP(), map[string]interface{}{
		"withdrawal_id": id,
		"amount":        result.Withdrawal.Amount,
	})
	c.JSON(http.StatusOK, result)
}

// @Summary Reject a withdrawal (Admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Withdrawal ID"
// @Param rejection body RejectRequest true "Rejection reason"
// @Success 200 {object} models.Withdrawal "Rejected withdrawal"
// @Failure 404 {object} map[string]string "Withdrawal not found"
// @Failure 409 {object} map[string]string "Already reviewed"
// @Router /admin/withdrawals/{id}/reject [put]
func (h *TransactionHandler) RejectWithdrawal(c *gin.Context) {
	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	id := c.Param("id")
	withdrawal, err := h.approvalService.RejectWithdrawal(id, req.Reason)
	if err != nil {
		c.JSON(reviewStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	adminID, adminEmail := actor(c)
	h.audit.LogAction(adminID, adminEmail, "reject_withdrawal", c.ClientIP(), map[string]interface{}{
		"withdrawal_id": id,
		"reason":        req.Reason,
	})
	c.JSON(http.StatusOK, withdrawal)
}
