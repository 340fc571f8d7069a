package handlers

import (
	"net/http"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// partnerHandler serves the partner program: partners, client payments, payouts and commissions.
type partnerHandler struct {
	partnerService portssvc.PartnerSvcFacade
}

func registerPartnerRoutes(partners *gin.RouterGroup, partnerService portssvc.PartnerSvcFacade) {
	h := &partnerHandler{partnerService: partnerService}

	partners.GET("", h.listPartners)
	partners.POST("", h.createPartner)
	partners.PUT("/:id", h.updatePartner)
	partners.DELETE("/:id", h.deletePartner)

	payments := partners.Group("/payments")
	{
		payments.GET("", h.listPayments)
		payments.POST("", h.recordPayment)
		payments.PUT("/:id", h.updatePayment)
		payments.DELETE("/:id", h.deletePayment)
	}

	withdrawals := partners.Group("/withdrawals")
	{
		withdrawals.GET("", h.listWithdrawals)
		withdrawals.POST("", h.addWithdrawal)
		withdrawals.PUT("/:id", h.updateWithdrawal)
		withdrawals.DELETE("/:id", h.deleteWithdrawal)
	}

	commissions := partners.Group("/comissoes")
	{
		commissions.GET("", h.listCommissions)
		commissions.POST("/pay", h.payCommission)
		commissions.POST("/pending", h.markCommissionPending)
	}

	partners.GET("/summary", h.summary)
}

// listPartners godoc
// @Summary List partners
// @Tags partners
// @Produce json
// @Success 200 {array} domain.Vendor
// @Security BearerAuth
// @Router /partners [get]
func (h *partnerHandler) listPartners(c *gin.Context) {
	vendors, err := h.partnerService.ListVendors(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "List partners")
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// createPartner godoc
// @Summary Create a partner
// @Tags partners
// @Accept json
// @Produce json
// @Param partner body dto.VendorRequest true "Partner"
// @Success 201 {object} domain.Vendor
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /partners [post]
func (h *partnerHandler) createPartner(c *gin.Context) {
	var req dto.VendorRequest
	if !bindJSON(c, &req) {
		return
	}
	vendor, err := h.partnerService.CreateVendor(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Create partner")
		return
	}
	c.JSON(http.StatusCreated, vendor)
}

// updatePartner godoc
// @Summary Update a partner
// @Description A new percentage only affects payments recorded afterwards.
// @Tags partners
// @Accept json
// @Produce json
// @Param id path string true "Partner ID"
// @Param partner body dto.VendorRequest true "Partner"
// @Success 200 {object} domain.Vendor
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /partners/{id} [put]
func (h *partnerHandler) updatePartner(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.VendorRequest
	if !bindJSON(c, &req) {
		return
	}
	vendor, err := h.partnerService.UpdateVendor(c.Request.Context(), id, req)
	if err != nil {
		respondWithError(c, err, "Update partner")
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// deletePartner godoc
// @Summary Delete a partner
// @Description Fails while the partner has commission history.
// @Tags partners
// @Produce json
// @Param id path string true "Partner ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /partners/{id} [delete]
func (h *partnerHandler) deletePartner(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.partnerService.DeleteVendor(c.Request.Context(), id); err != nil {
		respondWithError(c, err, "Delete partner")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Parceiro removido."})
}

// listPayments godoc
// @Summary List client payments
// @Tags payments
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} domain.Payment
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /partners/payments [get]
func (h *partnerHandler) listPayments(c *gin.Context) {
	var query dto.ListPaymentsQuery
	if !bindQuery(c, &query) {
		return
	}
	start, end, err := query.Bounds()
	if err != nil {
		respondWithError(c, err, "List payments")
		return
	}
	payments, err := h.partnerService.ListPayments(c.Request.Context(), start, end)
	if err != nil {
		respondWithError(c, err, "List payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}

// recordPayment godoc
// @Summary Record a client payment
// @Description Attributes the payment to the partner that referred the client, at the partner's current percentage.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Payment"
// @Success 201 {object} domain.Payment
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /partners/payments [post]
func (h *partnerHandler) recordPayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	fields, err := req.ToFields()
	if err != nil {
		respondWithError(c, err, "Record payment")
		return
	}
	payment, err := h.partnerService.RecordPayment(c.Request.Context(), req.ClientID, fields)
	if err != nil {
		respondWithError(c, err, "Record payment")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// updatePayment godoc
// @Summary Update a client payment
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param payment body dto.UpdatePaymentRequest true "Payment"
// @Success 200 {object} domain.Payment
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /partners/payments/{id} [put]
func (h *partnerHandler) updatePayment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	fields, err := req.ToFields()
	if err != nil {
		respondWithError(c, err, "Update payment")
		return
	}
	payment, err := h.partnerService.UpdatePayment(c.Request.Context(), id, fields)
	if err != nil {
		respondWithError(c, err, "Update payment")
		return
	}
	c.JSON(http.StatusOK, payment)
}

// deletePayment godoc
// @Summary Delete a client payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /partners/payments/{id} [delete]
func (h *partnerHandler) deletePayment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.partnerService.DeletePayment(c.Request.Context(), id); err != nil {
		respondWithError(c, err, "Delete payment")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Pagamento removido."})
}

// listWithdrawals godoc
// @Summary List partner payouts
// @Tags withdrawals
// @Produce json
// @Success 200 {array} domain.Withdrawal
// @Security BearerAuth
// @Router /partners/withdrawals [get]
func (h *partnerHandler) listWithdrawals(c *gin.Context) {
	withdrawals, err := h.partnerService.ListWithdrawals(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "List withdrawals")
		return
	}
	c.JSON(http.StatusOK, withdrawals)
}

// addWithdrawal godoc
// @Summary Record a partner payout
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param withdrawal body dto.WithdrawalRequest true "Withdrawal"
// @Success 201 {object} domain.Withdrawal
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /partners/withdrawals [post]
func (h *partnerHandler) addWithdrawal(c *gin.Context) {
	var req dto.WithdrawalRequest
	if !bindJSON(c, &req) {
		return
	}
	fields, err := req.ToFields()
	if err != nil {
		respondWithError(c, err, "Add withdrawal")
		return
	}
	withdrawal, err := h.partnerService.AddWithdrawal(c.Request.Context(), fields)
	if err != nil {
		respondWithError(c, err, "Add withdrawal")
		return
	}
	c.JSON(http.StatusCreated, withdrawal)
}

// updateWithdrawal godoc
// @Summary Update a partner payout
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param id path string true "Withdrawal ID"
// @Param withdrawal body dto.WithdrawalRequest true "Withdrawal"
// @Success 200 {object} domain.Withdrawal
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /partners/withdrawals/{id} [put]
func (h *partnerHandler) updateWithdrawal(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.WithdrawalRequest
	if !bindJSON(c, &req) {
		return
	}
	fields, err := req.ToFields()
	if err != nil {
		respondWithError(c, err, "Update withdrawal")
		return
	}
	withdrawal, err := h.partnerService.UpdateWithdrawal(c.Request.Context(), id, fields)
	if err != nil {
		respondWithError(c, err, "Update withdrawal")
		return
	}
	c.JSON(http.StatusOK, withdrawal)
}

// deleteWithdrawal godoc
// @Summary Delete a partner payout
// @Description A commission settled by this payout goes back to pending.
// @Tags withdrawals
// @Produce json
// @Param id path string true "Withdrawal ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /partners/withdrawals/{id} [delete]
func (h *partnerHandler) deleteWithdrawal(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.partnerService.DeleteWithdrawal(c.Request.Context(), id); err != nil {
		respondWithError(c, err, "Delete withdrawal")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Retirada removida."})
}

// listCommissions godoc
// @Summary List the commissions of a month
// @Tags commissions
// @Produce json
// @Param mes query string true "Month (YYYY-MM)"
// @Success 200 {object} dto.CommissionListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /partners/comissoes [get]
func (h *partnerHandler) listCommissions(c *gin.Context) {
	var query dto.CommissionQuery
	if !bindQuery(c, &query) {
		return
	}
	month, err := parseMonth(query.Month)
	if err != nil {
		respondWithError(c, err, "List commissions")
		return
	}
	commissions, err := h.partnerService.ComputeMonthlyCommissions(c.Request.Context(), month)
	if err != nil {
		respondWithError(c, err, "List commissions")
		return
	}
	c.JSON(http.StatusOK, dto.CommissionListResponse{Month: month, Commissions: commissions})
}

// payCommission godoc
// @Summary Pay the commission of a partner for a month
// @Description Records a payout of the computed amount and marks the commission paid.
// @Tags commissions
// @Accept json
// @Produce json
// @Param request body dto.CommissionActionRequest true "Partner and month"
// @Success 200 {object} domain.CommissionRecord
// @Failure 400 {object} dto.ErrorResponse "Already paid or nothing to pay"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /partners/comissoes/pay [post]
func (h *partnerHandler) payCommission(c *gin.Context) {
	var req dto.CommissionActionRequest
	if !bindJSON(c, &req) {
		return
	}
	month, err := parseMonth(req.Month)
	if err != nil {
		respondWithError(c, err, "Pay commission")
		return
	}
	record, err := h.partnerService.PayCommission(c.Request.Context(), req.PartnerID, month)
	if err != nil {
		respondWithError(c, err, "Pay commission")
		return
	}
	c.JSON(http.StatusOK, record)
}

// markCommissionPending godoc
// @Summary Revert a commission to pending
// @Description Deletes the payout that settled the commission, if any.
// @Tags commissions
// @Accept json
// @Produce json
// @Param request body dto.CommissionActionRequest true "Partner and month"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /partners/comissoes/pending [post]
func (h *partnerHandler) markCommissionPending(c *gin.Context) {
	var req dto.CommissionActionRequest
	if !bindJSON(c, &req) {
		return
	}
	month, err := parseMonth(req.Month)
	if err != nil {
		respondWithError(c, err, "Mark commission pending")
		return
	}
	if err := h.partnerService.MarkCommissionPending(c.Request.Context(), req.PartnerID, month); err != nil {
		respondWithError(c, err, "Mark commission pending")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Comissão marcada como pendente."})
}

// summary godoc
// @Summary Cash summary of the partner program
// @Tags payments
// @Produce json
// @Success 200 {object} domain.FinancialSummary
// @Security BearerAuth
// @Router /partners/summary [get]
func (h *partnerHandler) summary(c *gin.Context) {
	s, err := h.partnerService.FinancialSummary(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Financial summary")
		return
	}
	c.JSON(http.StatusOK, s)
}

func parseMonth(raw string) (domain.Month, error) {
	month, err := domain.ParseMonth(raw)
	if err != nil {
		return "", apperrors.NewValidationFailedError(err.Error())
	}
	return month, nil
}
