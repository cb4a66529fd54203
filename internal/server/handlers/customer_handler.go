package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eldhojacob/dairyfarm/internal/repository/mongodb"
	customersvc "github.com/eldhojacob/dairyfarm/internal/service/customers"
)

// CustomerHandler serves the customer roster endpoints.
type CustomerHandler struct {
	svc    *customersvc.Service
	logger *zap.Logger
}

// NewCustomerHandler constructs the roster adapter.
func NewCustomerHandler(svc *customersvc.Service, logger *zap.Logger) *CustomerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerHandler{svc: svc, logger: logger}
}

// List returns the roster, filtered by the optional q parameter.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.svc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.logger.Error("failed listing customers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

type addCustomerRequest struct {
	Name       string  `json:"name" binding:"required"`
	Phone      string  `json:"phone" binding:"required"`
	Address    string  `json:"address"`
	MilkLitres float64 `json:"milkLitres" binding:"required"`
}

// Add creates a customer. Name, phone and daily litres are required, as on
// the original form.
func (h *CustomerHandler) Add(c *gin.Context) {
	var req addCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fill all required fields"})
		return
	}

	id, err := h.svc.Add(c.Request.Context(), req.Name, req.Phone, req.Address, req.MilkLitres)
	if err != nil {
		h.logger.Error("failed adding customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add customer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Delete removes a customer.
func (h *CustomerHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		h.logger.Error("failed deleting customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete customer"})
		return
	}
	c.Status(http.StatusNoContent)
}

type pauseRequest struct {
	PauseStart string `json:"pauseStart" binding:"required"`
	PauseEnd   string `json:"pauseEnd" binding:"required"`
}

// Pause suspends a subscription over an inclusive date range.
func (h *CustomerHandler) Pause(c *gin.Context) {
	var req pauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "select both dates"})
		return
	}

	err := h.svc.Pause(c.Request.Context(), c.Param("id"), req.PauseStart, req.PauseEnd)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		h.logger.Error("failed pausing customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to pause customer"})
		return
	}
	c.Status(http.StatusOK)
}

// Resume clears a subscription pause.
func (h *CustomerHandler) Resume(c *gin.Context) {
	err := h.svc.Resume(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		h.logger.Error("failed resuming customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resume customer"})
		return
	}
	c.Status(http.StatusOK)
}

type addProductRequest struct {
	Product  string  `json:"product" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
}

// AddProduct records an ad-hoc sale priced at the current rate.
func (h *CustomerHandler) AddProduct(c *gin.Context) {
	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "select product and quantity"})
		return
	}

	transaction, err := h.svc.AddProduct(c.Request.Context(), c.Param("id"), req.Product, req.Quantity)
	if err != nil {
		if errors.Is(err, customersvc.ErrUnknownProduct) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed adding product sale", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add product"})
		return
	}

	c.JSON(http.StatusCreated, transaction)
}
