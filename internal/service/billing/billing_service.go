// Package billing builds per-customer monthly statements from the delivery
// log: delivered quantities times the current rates, plus the WhatsApp
// share link, PDF export and sheet export built on top of them.
package billing

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/eldhojacob/dairyfarm/internal/domain/models"
	"github.com/eldhojacob/dairyfarm/internal/domain/pricing"
	"github.com/eldhojacob/dairyfarm/internal/repository/mongodb"
)

const billingSheetRange = "Billing!A:H"

// ErrSheetsDisabled reports an export attempt with no sheet configured.
var ErrSheetsDisabled = errors.New("sheets export not configured")

// Store lists the document store operations this service performs.
type Store interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id string) (models.Customer, error)
	ListDeliveriesByMonth(ctx context.Context, monthKey string) ([]models.Delivery, error)
	GetSettings(ctx context.Context) (models.Settings, error)
}

// RowWriter appends rows to an external sheet.
type RowWriter interface {
	WriteRow(ctx context.Context, sheetRange string, values []interface{}) error
}

// Statement is one customer's bill for a month: delivered quantities and the
// amount they add up to at the current rates.
type Statement struct {
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customerName"`
	Phone        string  `json:"phone"`
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	Milk         float64 `json:"milk"`
	ExtraMilk    float64 `json:"extraMilk"`
	Egg          float64 `json:"egg"`
	Curd         float64 `json:"curd"`
	Chanakapodi  float64 `json:"chanakapodi"`
	Total        float64 `json:"total"`
}

// Service computes billing statements over the document store.
type Service struct {
	store  Store
	sheets RowWriter
	logger *zap.Logger
}

// NewService wires a billing service. The sheets writer may be nil when the
// export feature is not configured.
func NewService(store Store, sheets RowWriter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, sheets: sheets, logger: logger}
}

// MonthlyStatements builds one statement per customer for the month.
func (s *Service) MonthlyStatements(ctx context.Context, year int, month time.Month) ([]Statement, error) {
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}

	deliveries, err := s.store.ListDeliveriesByMonth(ctx, pricing.MonthKey(year, month))
	if err != nil {
		return nil, fmt.Errorf("load deliveries: %w", err)
	}

	settings := s.loadSettings(ctx)

	statements := make([]Statement, 0, len(customers))
	for _, customer := range customers {
		statements = append(statements, buildStatement(customer, deliveries, settings, year, month))
	}
	return statements, nil
}

// CustomerStatement builds the statement of a single customer.
func (s *Service) CustomerStatement(ctx context.Context, customerID string, year int, month time.Month) (Statement, error) {
	customer, err := s.store.GetCustomer(ctx, customerID)
	if err != nil {
		return Statement{}, err
	}

	deliveries, err := s.store.ListDeliveriesByMonth(ctx, pricing.MonthKey(year, month))
	if err != nil {
		return Statement{}, fmt.Errorf("load deliveries: %w", err)
	}

	return buildStatement(customer, deliveries, s.loadSettings(ctx), year, month), nil
}

// ExportMonth appends one row per statement to the configured sheet.
func (s *Service) ExportMonth(ctx context.Context, year int, month time.Month) (int, error) {
	if s.sheets == nil {
		return 0, ErrSheetsDisabled
	}

	statements, err := s.MonthlyStatements(ctx, year, month)
	if err != nil {
		return 0, err
	}

	monthKey := pricing.MonthKey(year, month)
	for _, st := range statements {
		row := []interface{}{
			monthKey, st.CustomerName,
			st.Milk, st.ExtraMilk, st.Egg, st.Curd, st.Chanakapodi,
			st.Total,
		}
		if err := s.sheets.WriteRow(ctx, billingSheetRange, row); err != nil {
			return 0, fmt.Errorf("export statement for %s: %w", st.CustomerName, err)
		}
	}

	s.logger.Info("billing statements exported",
		zap.String("month", monthKey),
		zap.Int("count", len(statements)))
	return len(statements), nil
}

// FarmName resolves the farm display name used in messages and PDFs.
func (s *Service) FarmName(ctx context.Context) string {
	return s.loadSettings(ctx).FarmName
}

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

func buildStatement(customer models.Customer, deliveries []models.Delivery, settings models.Settings, year int, month time.Month) Statement {
	st := Statement{
		CustomerID:   customer.ID.Hex(),
		CustomerName: customer.Name,
		Phone:        customer.Phone,
		Year:         year,
		Month:        int(month),
	}

	for _, d := range deliveries {
		if d.CustomerID != st.CustomerID {
			continue
		}
		st.Milk += d.Milk
		st.ExtraMilk += d.ExtraMilk
		st.Egg += d.Egg
		st.Curd += d.Curd
		st.Chanakapodi += d.Chanakapodi
	}

	// Extra milk is priced at the milk rate; it has no history of its own.
	milkRate := pricing.CurrentRate(settings.MilkRates)
	st.Total = st.Milk*milkRate +
		st.ExtraMilk*milkRate +
		st.Egg*pricing.CurrentRate(settings.EggRates) +
		st.Curd*pricing.CurrentRate(settings.CurdRates) +
		st.Chanakapodi*pricing.CurrentRate(settings.DungRates)

	return st
}

// Message renders the bill summary sent to the customer.
func Message(farmName string, st Statement) string {
	return fmt.Sprintf(`%s 🐄
Month: %d/%d

Customer: %s

Milk: %g
Extra Milk: %g
Egg: %g
Curd: %g
Chanakapodi: %g

Total: ₹%.2f

Thank you 🙏
`, farmName, st.Month, st.Year, st.CustomerName,
		st.Milk, st.ExtraMilk, st.Egg, st.Curd, st.Chanakapodi, st.Total)
}

// WhatsAppLink builds the prefilled share-intent URL for a statement. The
// link is fire and forget; nothing confirms delivery.
func WhatsAppLink(farmName string, st Statement) string {
	return "https://wa.me/?text=" + url.QueryEscape(Message(farmName, st))
}
