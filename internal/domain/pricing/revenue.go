package pricing

import (
	"strings"
	"time"

	"github.com/eldhojacob/dairyfarm/internal/domain/models"
)

// Revenue is the per-category breakdown for one month.
type Revenue struct {
	Milk      float64 `json:"milk"`
	ExtraMilk float64 `json:"extraMilk"`
	Egg       float64 `json:"egg"`
	Curd      float64 `json:"curd"`
	Dung      float64 `json:"dung"`
	Total     float64 `json:"total"`
}

// Aggregate computes the month's revenue. Subscription milk is
// activeDays x litres x current milk rate per customer; the pause flag is
// ignored, only the computed active days matter. The four transaction
// categories sum quantity x the rate stored at sale time over transactions
// whose own date falls in the month.
func Aggregate(customers []models.Customer, transactions []models.Transaction, settings models.Settings, year int, month time.Month) Revenue {
	var rev Revenue

	milkRate := CurrentRate(settings.MilkRates)
	for _, c := range customers {
		rev.Milk += float64(ActiveDays(c, year, month)) * c.MilkLitres * milkRate
	}

	monthKey := MonthKey(year, month)
	for _, t := range transactions {
		if !strings.HasPrefix(t.Date, monthKey) {
			continue
		}

		product, ok := models.ParseProduct(t.Product)
		if !ok {
			continue
		}

		amount := t.Quantity * t.Rate
		switch product {
		case models.ProductExtraMilk:
			rev.ExtraMilk += amount
		case models.ProductEgg:
			rev.Egg += amount
		case models.ProductCurd:
			rev.Curd += amount
		case models.ProductChanakapodi:
			rev.Dung += amount
		}
	}

	rev.Total = rev.Milk + rev.ExtraMilk + rev.Egg + rev.Curd + rev.Dung
	return rev
}
