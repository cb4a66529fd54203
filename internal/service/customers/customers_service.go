// Package customers manages the subscription roster: add/delete, pause and
// resume, and ad-hoc product sales priced at the rate in effect when the
// sale is recorded.
package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/eldhojacob/dairyfarm/internal/domain/models"
	"github.com/eldhojacob/dairyfarm/internal/domain/pricing"
	"github.com/eldhojacob/dairyfarm/internal/repository/mongodb"
)

// ErrUnknownProduct reports a product name outside the enumeration.
var ErrUnknownProduct = errors.New("unknown product")

// Store lists the document store operations this service performs.
type Store interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	InsertCustomer(ctx context.Context, customer models.Customer) (string, error)
	DeleteCustomer(ctx context.Context, id string) error
	PauseCustomer(ctx context.Context, id string, pauseStart, pauseEnd string) error
	ResumeCustomer(ctx context.Context, id string) error
	InsertTransaction(ctx context.Context, transaction models.Transaction) error
	GetSettings(ctx context.Context) (models.Settings, error)
}

// Service implements roster management.
type Service struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a customers service instance.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// List returns the roster, optionally filtered by a name or phone substring.
func (s *Service) List(ctx context.Context, query string) ([]models.Customer, error) {
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return customers, nil
	}

	needle := strings.ToLower(query)
	filtered := customers[:0]
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), needle) || strings.Contains(c.Phone, query) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// Add creates a customer with an unpaused subscription and an empty payment
// history.
func (s *Service) Add(ctx context.Context, name, phone, address string, milkLitres float64) (string, error) {
	customer := models.Customer{
		Name:       name,
		Phone:      phone,
		Address:    address,
		MilkLitres: milkLitres,
		IsPaused:   false,
		Payments:   map[string]float64{},
	}
	return s.store.InsertCustomer(ctx, customer)
}

// Delete removes a customer from the roster.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteCustomer(ctx, id)
}

// Pause suspends a subscription over the inclusive date range.
func (s *Service) Pause(ctx context.Context, id string, pauseStart, pauseEnd string) error {
	return s.store.PauseCustomer(ctx, id, pauseStart, pauseEnd)
}

// Resume clears a subscription pause.
func (s *Service) Resume(ctx context.Context, id string) error {
	return s.store.ResumeCustomer(ctx, id)
}

// AddProduct records an ad-hoc product sale. The unit rate is resolved from
// the current rate history at write time and captured on the transaction;
// later rate changes never reprice it. The sale is stamped with today's date.
func (s *Service) AddProduct(ctx context.Context, customerID, productName string, quantity float64) (models.Transaction, error) {
	product, ok := models.ParseProduct(productName)
	if !ok {
		return models.Transaction{}, fmt.Errorf("%w: %q", ErrUnknownProduct, productName)
	}

	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, mongodb.ErrNotFound) {
			s.logger.Warn("settings fetch failed, using defaults", zap.Error(err))
		}
		settings = models.DefaultSettings()
	}

	transaction := models.Transaction{
		CustomerID: customerID,
		Product:    string(product),
		Quantity:   quantity,
		Rate:       pricing.CurrentRate(settings.RatesFor(product)),
		Date:       s.now().Format("2006-01-02"),
	}

	if err := s.store.InsertTransaction(ctx, transaction); err != nil {
		return models.Transaction{}, err
	}
	return transaction, nil
}
