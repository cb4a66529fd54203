package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/eldhojacob/dairyfarm/internal/domain/models"
)

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 30, DaysInMonth(2025, time.June))
	assert.Equal(t, 31, DaysInMonth(2025, time.July))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
}

func TestPausedDays(t *testing.T) {
	tests := []struct {
		name       string
		pauseStart string
		pauseEnd   string
		year       int
		month      time.Month
		want       int
	}{
		{
			name: "no pause window", year: 2025, month: time.June, want: 0,
		},
		{
			name:       "window inside month counts inclusively",
			pauseStart: "2025-06-10", pauseEnd: "2025-06-20",
			year: 2025, month: time.June, want: 11,
		},
		{
			name:       "window in another month",
			pauseStart: "2025-06-10", pauseEnd: "2025-06-20",
			year: 2025, month: time.July, want: 0,
		},
		{
			name:       "window clipped to month start",
			pauseStart: "2025-05-25", pauseEnd: "2025-06-05",
			year: 2025, month: time.June, want: 5,
		},
		{
			name:       "window clipped to month end",
			pauseStart: "2025-06-28", pauseEnd: "2025-07-03",
			year: 2025, month: time.June, want: 3,
		},
		{
			name:       "window spanning whole month",
			pauseStart: "2025-05-01", pauseEnd: "2025-08-01",
			year: 2025, month: time.June, want: 30,
		},
		{
			name:       "inverted window clamps to zero",
			pauseStart: "2025-06-20", pauseEnd: "2025-06-10",
			year: 2025, month: time.June, want: 0,
		},
		{
			name:       "unparseable dates count as no pause",
			pauseStart: "soon", pauseEnd: "later",
			year: 2025, month: time.June, want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := models.Customer{PauseStart: tt.pauseStart, PauseEnd: tt.pauseEnd}
			assert.Equal(t, tt.want, PausedDays(c, tt.year, tt.month))
		})
	}
}

func TestActiveDays(t *testing.T) {
	c := models.Customer{PauseStart: "2025-06-10", PauseEnd: "2025-06-20"}
	assert.Equal(t, 19, ActiveDays(c, 2025, time.June))

	full := models.Customer{PauseStart: "2025-06-01", PauseEnd: "2025-06-30"}
	assert.Equal(t, 0, ActiveDays(full, 2025, time.June))

	assert.Equal(t, 30, ActiveDays(models.Customer{}, 2025, time.June))
}
