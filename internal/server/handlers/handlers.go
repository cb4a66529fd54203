// Package handlers adapts the domain services to gin routes. Each page of
// the management app maps to one handler: dashboard, customers, delivery
// log, billing, reports and settings.
package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// monthYear reads the month/year query parameters, defaulting to the
// current month.
func monthYear(c *gin.Context) (int, time.Month, bool) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, false
		}
		year = parsed
	}

	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			return 0, 0, false
		}
		month = time.Month(parsed)
	}

	return year, month, true
}
