// Package pricing holds the pure billing arithmetic shared by the dashboard,
// billing and report surfaces: rate history resolution, pause-window
// proration and monthly revenue aggregation. Nothing here touches the store.
package pricing

import (
	"sort"

	"github.com/eldhojacob/dairyfarm/internal/domain/models"
)

// CurrentRate resolves the rate in effect now from an append-only history.
// Entries are sorted ascending by their "YYYY-MM" effective month and the
// last one wins; an empty or absent history resolves to 0. The sort is
// stable, so two entries sharing a month keep their appended order and the
// later-appended one wins.
func CurrentRate(history []models.RateEntry) float64 {
	if len(history) == 0 {
		return 0
	}

	sorted := make([]models.RateEntry, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].From < sorted[j].From
	})

	return sorted[len(sorted)-1].Rate
}
