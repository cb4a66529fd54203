package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eldhojacob/dairyfarm/internal/domain/models"
)

// DeliveryStore lists the document store operations the delivery log needs.
type DeliveryStore interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	InsertDeliveries(ctx context.Context, deliveries []models.Delivery) error
	ListDeliveriesByDate(ctx context.Context, date string) ([]models.Delivery, error)
}

// DeliveryHandler serves the daily delivery log. It is the one surface open
// to staff accounts as well as admins.
type DeliveryHandler struct {
	store  DeliveryStore
	logger *zap.Logger
}

// NewDeliveryHandler constructs the delivery log adapter.
func NewDeliveryHandler(store DeliveryStore, logger *zap.Logger) *DeliveryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeliveryHandler{store: store, logger: logger}
}

// List returns the rows logged for one day (default today).
func (h *DeliveryHandler) List(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	deliveries, err := h.store.ListDeliveriesByDate(c.Request.Context(), date)
	if err != nil {
		h.logger.Error("failed listing deliveries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load deliveries"})
		return
	}
	c.JSON(http.StatusOK, deliveries)
}

type deliveryRow struct {
	CustomerID  string  `json:"customerId" binding:"required"`
	Milk        float64 `json:"milk"`
	ExtraMilk   float64 `json:"extraMilk"`
	Egg         float64 `json:"egg"`
	Curd        float64 `json:"curd"`
	Chanakapodi float64 `json:"chanakapodi"`
}

type saveDeliveryRequest struct {
	Date string        `json:"date" binding:"required"`
	Rows []deliveryRow `json:"rows" binding:"required"`
}

// Save appends one delivery document per submitted row. Customer names are
// denormalized onto the rows, matching the stored document shape.
func (h *DeliveryHandler) Save(c *gin.Context) {
	var req saveDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and rows are required"})
		return
	}

	customers, err := h.store.ListCustomers(c.Request.Context())
	if err != nil {
		h.logger.Error("failed loading customers for delivery save", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customers"})
		return
	}

	names := make(map[string]string, len(customers))
	for _, customer := range customers {
		names[customer.ID.Hex()] = customer.Name
	}

	deliveries := make([]models.Delivery, 0, len(req.Rows))
	for _, row := range req.Rows {
		deliveries = append(deliveries, models.Delivery{
			CustomerID:   row.CustomerID,
			CustomerName: names[row.CustomerID],
			Date:         req.Date,
			Milk:         row.Milk,
			ExtraMilk:    row.ExtraMilk,
			Egg:          row.Egg,
			Curd:         row.Curd,
			Chanakapodi:  row.Chanakapodi,
		})
	}

	if err := h.store.InsertDeliveries(c.Request.Context(), deliveries); err != nil {
		h.logger.Error("failed saving deliveries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save deliveries"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"saved": len(deliveries)})
}
