package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/eldhojacob/dairyfarm/internal/domain/models"
)

func TestAggregateSubscriptionAndTransactions(t *testing.T) {
	customers := []models.Customer{
		{Name: "Anitha", MilkLitres: 2},
	}
	settings := models.Settings{
		MilkRates: []models.RateEntry{{Rate: 70, From: "2025-01"}},
	}
	transactions := []models.Transaction{
		{Product: "Egg", Quantity: 10, Rate: 6, Date: "2025-06-15"},
	}

	rev := Aggregate(customers, transactions, settings, 2025, time.June)

	// 30 days x 2 L x 70 = 4200, plus 10 eggs at 6.
	assert.Equal(t, 4200.0, rev.Milk)
	assert.Equal(t, 60.0, rev.Egg)
	assert.Equal(t, 4260.0, rev.Total)
}

func TestAggregatePauseProration(t *testing.T) {
	customers := []models.Customer{
		{Name: "Joseph", MilkLitres: 1, IsPaused: true, PauseStart: "2025-06-10", PauseEnd: "2025-06-20"},
	}
	settings := models.Settings{
		MilkRates: []models.RateEntry{{Rate: 70, From: "2025-01"}},
	}

	rev := Aggregate(customers, nil, settings, 2025, time.June)

	// 30 - 11 paused days = 19 active days.
	assert.Equal(t, 19*70.0, rev.Milk)
	assert.Equal(t, 19*70.0, rev.Total)
}

func TestAggregateBucketsByTransactionDate(t *testing.T) {
	transactions := []models.Transaction{
		{Product: "Curd", Quantity: 2, Rate: 40, Date: "2025-06-01"},
		{Product: "Curd", Quantity: 5, Rate: 40, Date: "2025-07-01"},
		{Product: "Chanakapodi", Quantity: 1, Rate: 300, Date: "2025-06-30"},
	}

	rev := Aggregate(nil, transactions, models.Settings{}, 2025, time.June)

	assert.Equal(t, 80.0, rev.Curd)
	assert.Equal(t, 300.0, rev.Dung)
	assert.Equal(t, 380.0, rev.Total)
}

func TestAggregateAcceptsLegacyExtraMilkSpelling(t *testing.T) {
	transactions := []models.Transaction{
		{Product: "ExtraMilk", Quantity: 1, Rate: 70, Date: "2025-06-05"},
		{Product: "Extra Milk", Quantity: 2, Rate: 70, Date: "2025-06-06"},
		{Product: "Butter", Quantity: 3, Rate: 100, Date: "2025-06-07"},
	}

	rev := Aggregate(nil, transactions, models.Settings{}, 2025, time.June)

	assert.Equal(t, 210.0, rev.ExtraMilk)
	assert.Equal(t, 210.0, rev.Total)
}

func TestAggregateStoredRateWinsOverCurrent(t *testing.T) {
	settings := models.Settings{
		EggRates: []models.RateEntry{{Rate: 8, From: "2025-06"}},
	}
	transactions := []models.Transaction{
		// Sold before the June rate change; the captured rate stands.
		{Product: "Egg", Quantity: 10, Rate: 6, Date: "2025-06-02"},
	}

	rev := Aggregate(nil, transactions, settings, 2025, time.June)

	assert.Equal(t, 60.0, rev.Egg)
}

func TestAggregateEmptyRateHistoryYieldsZeroMilk(t *testing.T) {
	customers := []models.Customer{{MilkLitres: 3}}

	rev := Aggregate(customers, nil, models.Settings{}, 2025, time.June)

	assert.Zero(t, rev.Milk)
	assert.Zero(t, rev.Total)
}
