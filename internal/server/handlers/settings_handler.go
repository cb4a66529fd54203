package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eldhojacob/dairyfarm/internal/domain/models"
	"github.com/eldhojacob/dairyfarm/internal/domain/pricing"
	"github.com/eldhojacob/dairyfarm/internal/repository/mongodb"
)

// SettingsStore lists the document store operations the settings page needs.
type SettingsStore interface {
	GetSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, incoming models.Settings) (models.Settings, error)
}

// SettingsHandler serves the singleton business settings document.
type SettingsHandler struct {
	store  SettingsStore
	logger *zap.Logger
}

// NewSettingsHandler constructs the settings adapter.
func NewSettingsHandler(store SettingsStore, logger *zap.Logger) *SettingsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsHandler{store: store, logger: logger}
}

// Get returns the settings document, or defaults with a logged warning when
// the fetch fails.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.store.GetSettings(c.Request.Context())
	if err != nil {
		if !errors.Is(err, mongodb.ErrNotFound) {
			h.logger.Warn("settings fetch failed, serving defaults", zap.Error(err))
		}
		settings = models.DefaultSettings()
	}
	c.JSON(http.StatusOK, settings)
}

// Save merge-writes the settings document and returns the merged result.
func (h *SettingsHandler) Save(c *gin.Context) {
	var incoming models.Settings
	if err := c.ShouldBindJSON(&incoming); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settings payload"})
		return
	}

	merged, err := h.store.SaveSettings(c.Request.Context(), incoming)
	if err != nil {
		h.logger.Error("failed saving settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, merged)
}

type addRateRequest struct {
	Category string  `json:"category" binding:"required"`
	Rate     float64 `json:"rate" binding:"required"`
}

// AddRate appends a rate entry effective from the current month to one
// category's history, then merge-writes the document.
func (h *SettingsHandler) AddRate(c *gin.Context) {
	var req addRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category and rate are required"})
		return
	}

	settings, err := h.store.GetSettings(c.Request.Context())
	if err != nil {
		if !errors.Is(err, mongodb.ErrNotFound) {
			h.logger.Warn("settings fetch failed, starting from defaults", zap.Error(err))
		}
		settings = models.DefaultSettings()
	}

	now := time.Now()
	entry := models.RateEntry{Rate: req.Rate, From: pricing.MonthKey(now.Year(), now.Month())}
	if !settings.AppendRate(req.Category, entry) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown rate category"})
		return
	}

	merged, err := h.store.SaveSettings(c.Request.Context(), settings)
	if err != nil {
		h.logger.Error("failed saving rate entry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, merged)
}
