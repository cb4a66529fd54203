// Package reporting computes the revenue figures behind the dashboard and
// reports surfaces by fetching the collections wholesale and delegating the
// arithmetic to internal/domain/pricing.
package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/eldhojacob/dairyfarm/internal/domain/models"
	"github.com/eldhojacob/dairyfarm/internal/domain/pricing"
	"github.com/eldhojacob/dairyfarm/internal/repository/mongodb"
)

// Store lists the document store reads this service performs.
type Store interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	GetSettings(ctx context.Context) (models.Settings, error)
}

// Dashboard is the month summary shown on the landing page.
type Dashboard struct {
	Revenue         pricing.Revenue `json:"revenue"`
	ActiveCustomers int             `json:"activeCustomers"`
	PausedCustomers int             `json:"pausedCustomers"`
}

// Service exposes revenue reporting over the document store.
type Service struct {
	store  Store
	logger *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// MonthlyRevenue aggregates the five category revenues for one month.
func (s *Service) MonthlyRevenue(ctx context.Context, year int, month time.Month) (pricing.Revenue, error) {
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		return pricing.Revenue{}, fmt.Errorf("load customers: %w", err)
	}

	transactions, err := s.store.ListTransactions(ctx)
	if err != nil {
		return pricing.Revenue{}, fmt.Errorf("load transactions: %w", err)
	}

	settings := s.loadSettings(ctx)

	return pricing.Aggregate(customers, transactions, settings, year, month), nil
}

// MonthlyDashboard extends the revenue breakdown with customer counts.
func (s *Service) MonthlyDashboard(ctx context.Context, year int, month time.Month) (Dashboard, error) {
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("load customers: %w", err)
	}

	transactions, err := s.store.ListTransactions(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("load transactions: %w", err)
	}

	settings := s.loadSettings(ctx)

	dashboard := Dashboard{
		Revenue: pricing.Aggregate(customers, transactions, settings, year, month),
	}
	for _, c := range customers {
		if c.IsPaused {
			dashboard.PausedCustomers++
		} else {
			dashboard.ActiveCustomers++
		}
	}

	return dashboard, nil
}

// MonthlySummary renders the month's figures as a short text message for the
// owner push.
func (s *Service) MonthlySummary(ctx context.Context, year int, month time.Month) (string, error) {
	dashboard, err := s.MonthlyDashboard(ctx, year, month)
	if err != nil {
		return "", err
	}

	rev := dashboard.Revenue
	return fmt.Sprintf(
		"Revenue %d/%d\nMilk: %.2f\nExtra Milk: %.2f\nEgg: %.2f\nCurd: %.2f\nChanakapodi: %.2f\nTotal: %.2f\nActive customers: %d, paused: %d",
		int(month), year,
		rev.Milk, rev.ExtraMilk, rev.Egg, rev.Curd, rev.Dung, rev.Total,
		dashboard.ActiveCustomers, dashboard.PausedCustomers,
	), nil
}

// loadSettings degrades to defaults when the document is missing or the
// store misbehaves, matching the original settings fetch behavior.
func (s *Service) loadSettings(ctx context.Context) models.Settings {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, mongodb.ErrNotFound) {
			s.logger.Warn("settings fetch failed, using defaults", zap.Error(err))
		}
		return models.DefaultSettings()
	}
	return settings
}
