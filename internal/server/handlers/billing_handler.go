package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eldhojacob/dairyfarm/internal/repository/mongodb"
	billingsvc "github.com/eldhojacob/dairyfarm/internal/service/billing"
)

// BillingHandler serves monthly statements, the WhatsApp share link, the
// bill PDF and the sheet export.
type BillingHandler struct {
	svc    *billingsvc.Service
	logger *zap.Logger
}

// NewBillingHandler constructs the billing adapter.
func NewBillingHandler(svc *billingsvc.Service, logger *zap.Logger) *BillingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BillingHandler{svc: svc, logger: logger}
}

// List returns every customer's statement for the selected month.
func (h *BillingHandler) List(c *gin.Context) {
	year, month, ok := monthYear(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month or year"})
		return
	}

	statements, err := h.svc.MonthlyStatements(c.Request.Context(), year, month)
	if err != nil {
		h.logger.Error("failed building statements", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build statements"})
		return
	}
	c.JSON(http.StatusOK, statements)
}

// WhatsAppLink returns the prefilled share-intent URL for one customer's
// bill. The caller opens it in a new browsing context; nothing confirms
// delivery.
func (h *BillingHandler) WhatsAppLink(c *gin.Context) {
	statement, ok := h.statement(c)
	if !ok {
		return
	}

	link := billingsvc.WhatsAppLink(h.svc.FarmName(c.Request.Context()), statement)
	c.JSON(http.StatusOK, gin.H{"url": link})
}

// PDF streams one customer's bill as a downloadable document.
func (h *BillingHandler) PDF(c *gin.Context) {
	statement, ok := h.statement(c)
	if !ok {
		return
	}

	data, err := billingsvc.PDF(h.svc.FarmName(c.Request.Context()), statement)
	if err != nil {
		h.logger.Error("failed rendering bill pdf", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render pdf"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+billingsvc.FileName(statement)+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// Export appends the month's statements to the configured sheet.
func (h *BillingHandler) Export(c *gin.Context) {
	year, month, ok := monthYear(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month or year"})
		return
	}

	count, err := h.svc.ExportMonth(c.Request.Context(), year, month)
	if err != nil {
		if errors.Is(err, billingsvc.ErrSheetsDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "sheets export not configured"})
			return
		}
		h.logger.Error("failed exporting statements", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export statements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exported": count})
}

func (h *BillingHandler) statement(c *gin.Context) (billingsvc.Statement, bool) {
	year, month, ok := monthYear(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month or year"})
		return billingsvc.Statement{}, false
	}

	statement, err := h.svc.CustomerStatement(c.Request.Context(), c.Param("id"), year, month)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return billingsvc.Statement{}, false
		}
		h.logger.Error("failed building statement", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build statement"})
		return billingsvc.Statement{}, false
	}
	return statement, true
}
