package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/dto"
	"github.com/SscSPs/ark_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler serves the ledger, its attachments and the closing report.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	attachmentService  portssvc.AttachmentSvcFacade
	reportService      portssvc.ReportSvc
	maxUploadBytes     int64
}

func registerTransactionRoutes(data *gin.RouterGroup, services *portssvc.ServiceContainer, maxUploadBytes int64) {
	h := &transactionHandler{
		transactionService: services.Transaction,
		attachmentService:  services.Attachment,
		reportService:      services.Report,
		maxUploadBytes:     maxUploadBytes,
	}

	transactions := data.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.POST("/batch-delete", h.batchDeleteTransactions)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
		transactions.POST("/:id/attach", h.attachFile)
	}
	data.DELETE("/attachments/:id", h.deleteAttachment)
	data.POST("/generate-report", h.generateReport)
}

// listTransactions godoc
// @Summary List transactions
// @Description Returns the filtered ledger, newest first. With a limit, the X-Next-Token header carries the cursor of the next page.
// @Tags transactions
// @Produce json
// @Param employeeId query string false "Employee ID"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param status query string false "paid or pending"
// @Param type query string false "sale or expense"
// @Param product query string false "Product name"
// @Param buyer query string false "Buyer name"
// @Param purchase query string false "Purchase item name"
// @Param supplier query string false "Supplier name"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Cursor returned by the previous page"
// @Success 200 {array} domain.Transaction
// @Header 200 {string} X-Next-Token "Cursor of the next page"
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /data/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var query dto.ListTransactionsQuery
	if !bindQuery(c, &query) {
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		respondWithError(c, err, "List transactions")
		return
	}

	transactions, next, err := h.transactionService.ListTransactions(c.Request.Context(), principal.TenantID, filter)
	if err != nil {
		respondWithError(c, err, "List transactions")
		return
	}
	if next != nil {
		c.Header(dto.NextTokenHeader, *next)
	}
	c.JSON(http.StatusOK, transactions)
}

// createTransaction godoc
// @Summary Create a transaction
// @Description The total is always computed as quantity times unit price.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.TransactionRequest true "Transaction"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unknown catalog reference"
// @Security BearerAuth
// @Router /data/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req dto.TransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	fields, err := req.ToFields()
	if err != nil {
		respondWithError(c, err, "Create transaction")
		return
	}

	tx, err := h.transactionService.CreateTransaction(c.Request.Context(), principal.TenantID, fields)
	if err != nil {
		respondWithError(c, err, "Create transaction")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transaction created", slog.String("transaction_id", tx.TransactionID))
	c.JSON(http.StatusCreated, tx)
}

// updateTransaction godoc
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.TransactionRequest true "Transaction"
// @Success 200 {object} domain.Transaction
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /data/transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.TransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	fields, err := req.ToFields()
	if err != nil {
		respondWithError(c, err, "Update transaction")
		return
	}

	tx, err := h.transactionService.UpdateTransaction(c.Request.Context(), principal.TenantID, id, fields)
	if err != nil {
		respondWithError(c, err, "Update transaction")
		return
	}
	c.JSON(http.StatusOK, tx)
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /data/transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), principal.TenantID, id); err != nil {
		respondWithError(c, err, "Delete transaction")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transação removida."})
}

// batchDeleteTransactions godoc
// @Summary Delete several transactions
// @Description Ids that do not belong to the caller's client are ignored.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.BatchDeleteRequest true "Transaction IDs"
// @Success 200 {object} dto.BatchDeleteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /data/transactions/batch-delete [post]
func (h *transactionHandler) batchDeleteTransactions(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req dto.BatchDeleteRequest
	if !bindJSON(c, &req) {
		return
	}
	deleted, err := h.transactionService.BatchDeleteTransactions(c.Request.Context(), principal.TenantID, req.IDs)
	if err != nil {
		respondWithError(c, err, "Batch delete transactions")
		return
	}
	c.JSON(http.StatusOK, dto.BatchDeleteResponse{Message: "Transações removidas.", Deleted: deleted})
}

// attachFile godoc
// @Summary Attach a receipt to a transaction
// @Description Replaces the previous attachment of the transaction, if any.
// @Tags transactions
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Transaction ID"
// @Param file formData file true "Receipt image"
// @Success 201 {object} domain.Attachment
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /data/transactions/{id}/attach [post]
func (h *transactionHandler) attachFile(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	limitBody(c, h.maxUploadBytes)

	upload, closeFile, err := formFile(c, "file")
	if err != nil {
		respondWithError(c, err, "Attach file")
		return
	}
	if upload == nil {
		respondWithError(c, apperrors.NewValidationFailedError("file is required"), "Attach file")
		return
	}
	defer closeFile()

	attachment, err := h.attachmentService.AttachToTransaction(c.Request.Context(), principal, id, *upload)
	if err != nil {
		respondWithError(c, err, "Attach file")
		return
	}
	c.JSON(http.StatusCreated, attachment)
}

// deleteAttachment godoc
// @Summary Delete an attachment
// @Tags transactions
// @Produce json
// @Param id path string true "Attachment ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /data/attachments/{id} [delete]
func (h *transactionHandler) deleteAttachment(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.attachmentService.DeleteAttachment(c.Request.Context(), principal, id); err != nil {
		respondWithError(c, err, "Delete attachment")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Anexo removido."})
}

// generateReport godoc
// @Summary Generate the closing report
// @Description Renders the filtered ledger with its summary as a printable HTML page.
// @Tags reports
// @Accept json
// @Produce html
// @Param request body dto.GenerateReportRequest true "Report options"
// @Success 200 {string} string "HTML document"
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /data/generate-report [post]
func (h *transactionHandler) generateReport(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req dto.GenerateReportRequest
	if !bindJSON(c, &req) {
		return
	}
	reportReq, err := req.ToReportRequest()
	if err != nil {
		respondWithError(c, err, "Generate report")
		return
	}

	html, err := h.reportService.Generate(c.Request.Context(), principal, reportReq)
	if err != nil {
		respondWithError(c, err, "Generate report")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
