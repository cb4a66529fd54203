package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eldhojacob/dairyfarm/internal/domain/models"
	"github.com/eldhojacob/dairyfarm/internal/repository/mongodb"
)

type fakeStore struct {
	customers    []models.Customer
	transactions []models.Transaction
	settings     models.Settings
	settingsErr  error
}

func (f *fakeStore) ListCustomers(context.Context) ([]models.Customer, error) {
	return f.customers, nil
}

func (f *fakeStore) ListTransactions(context.Context) ([]models.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeStore) GetSettings(context.Context) (models.Settings, error) {
	if f.settingsErr != nil {
		return models.Settings{}, f.settingsErr
	}
	return f.settings, nil
}

func TestMonthlyRevenueEndToEnd(t *testing.T) {
	store := &fakeStore{
		customers: []models.Customer{{Name: "Anitha", MilkLitres: 2}},
		transactions: []models.Transaction{
			{Product: "Egg", Quantity: 10, Rate: 6, Date: "2025-06-15"},
		},
		settings: models.Settings{
			MilkRates: []models.RateEntry{{Rate: 70, From: "2025-01"}},
		},
	}

	svc := NewService(store, nil)

	rev, err := svc.MonthlyRevenue(context.Background(), 2025, time.June)
	require.NoError(t, err)

	assert.Equal(t, 4200.0, rev.Milk)
	assert.Equal(t, 60.0, rev.Egg)
	assert.Equal(t, 4260.0, rev.Total)
}

func TestMonthlyDashboardCounts(t *testing.T) {
	store := &fakeStore{
		customers: []models.Customer{
			{Name: "A"},
			{Name: "B", IsPaused: true, PauseStart: "2025-06-01", PauseEnd: "2025-06-30"},
			{Name: "C"},
		},
	}

	svc := NewService(store, nil)

	dashboard, err := svc.MonthlyDashboard(context.Background(), 2025, time.June)
	require.NoError(t, err)

	assert.Equal(t, 2, dashboard.ActiveCustomers)
	assert.Equal(t, 1, dashboard.PausedCustomers)
}

func TestMissingSettingsDegradesToDefaults(t *testing.T) {
	store := &fakeStore{
		customers:   []models.Customer{{Name: "A", MilkLitres: 5}},
		settingsErr: mongodb.ErrNotFound,
	}

	svc := NewService(store, nil)

	rev, err := svc.MonthlyRevenue(context.Background(), 2025, time.June)
	require.NoError(t, err)

	// Default settings carry no rate history, so milk resolves to rate 0.
	assert.Zero(t, rev.Total)
}

func TestMonthlySummaryFormatting(t *testing.T) {
	store := &fakeStore{
		customers: []models.Customer{{Name: "Anitha", MilkLitres: 2}},
		settings: models.Settings{
			MilkRates: []models.RateEntry{{Rate: 70, From: "2025-01"}},
		},
	}

	svc := NewService(store, nil)

	summary, err := svc.MonthlySummary(context.Background(), 2025, time.June)
	require.NoError(t, err)

	assert.Contains(t, summary, "Revenue 6/2025")
	assert.Contains(t, summary, "Milk: 4200.00")
	assert.Contains(t, summary, "Total: 4200.00")
	assert.Contains(t, summary, "Active customers: 1, paused: 0")
}
