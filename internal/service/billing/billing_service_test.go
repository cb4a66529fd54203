package billing

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eldhojacob/dairyfarm/internal/domain/models"
	"github.com/eldhojacob/dairyfarm/internal/repository/mongodb"
)

type fakeStore struct {
	customers  []models.Customer
	deliveries []models.Delivery
	settings   models.Settings
}

func (f *fakeStore) ListCustomers(context.Context) ([]models.Customer, error) {
	return f.customers, nil
}

func (f *fakeStore) GetCustomer(_ context.Context, id string) (models.Customer, error) {
	for _, c := range f.customers {
		if c.ID.Hex() == id {
			return c, nil
		}
	}
	return models.Customer{}, mongodb.ErrNotFound
}

func (f *fakeStore) ListDeliveriesByMonth(_ context.Context, monthKey string) ([]models.Delivery, error) {
	var out []models.Delivery
	for _, d := range f.deliveries {
		if strings.HasPrefix(d.Date, monthKey) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeStore) GetSettings(context.Context) (models.Settings, error) {
	return f.settings, nil
}

type fakeSheet struct {
	rows [][]interface{}
}

func (f *fakeSheet) WriteRow(_ context.Context, _ string, values []interface{}) error {
	f.rows = append(f.rows, values)
	return nil
}

func testSettings() models.Settings {
	return models.Settings{
		FarmName:  "Ann's Dairy Farm",
		MilkRates: []models.RateEntry{{Rate: 70, From: "2025-01"}},
		EggRates:  []models.RateEntry{{Rate: 6, From: "2025-01"}},
		CurdRates: []models.RateEntry{{Rate: 40, From: "2025-01"}},
		DungRates: []models.RateEntry{{Rate: 300, From: "2025-01"}},
	}
}

func TestCustomerStatement(t *testing.T) {
	customerID := primitive.NewObjectID()
	store := &fakeStore{
		customers: []models.Customer{{ID: customerID, Name: "Anitha", Phone: "9876"}},
		deliveries: []models.Delivery{
			{CustomerID: customerID.Hex(), Date: "2025-06-01", Milk: 2, Egg: 4},
			{CustomerID: customerID.Hex(), Date: "2025-06-02", Milk: 2, ExtraMilk: 1, Curd: 1},
			{CustomerID: customerID.Hex(), Date: "2025-07-01", Milk: 2},
			{CustomerID: "someone-else", Date: "2025-06-01", Milk: 9},
		},
		settings: testSettings(),
	}

	svc := NewService(store, nil, nil)

	st, err := svc.CustomerStatement(context.Background(), customerID.Hex(), 2025, time.June)
	require.NoError(t, err)

	assert.Equal(t, 4.0, st.Milk)
	assert.Equal(t, 1.0, st.ExtraMilk)
	assert.Equal(t, 4.0, st.Egg)
	assert.Equal(t, 1.0, st.Curd)
	// 4x70 + 1x70 (extra milk at milk rate) + 4x6 + 1x40
	assert.Equal(t, 414.0, st.Total)
}

func TestMonthlyStatementsCoverEveryCustomer(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	store := &fakeStore{
		customers: []models.Customer{
			{ID: a, Name: "Anitha"},
			{ID: b, Name: "Joseph"},
		},
		deliveries: []models.Delivery{
			{CustomerID: a.Hex(), Date: "2025-06-10", Milk: 3},
		},
		settings: testSettings(),
	}

	svc := NewService(store, nil, nil)

	statements, err := svc.MonthlyStatements(context.Background(), 2025, time.June)
	require.NoError(t, err)
	require.Len(t, statements, 2)

	assert.Equal(t, 210.0, statements[0].Total)
	assert.Zero(t, statements[1].Total)
}

func TestMessageAndWhatsAppLink(t *testing.T) {
	st := Statement{
		CustomerName: "Anitha",
		Year:         2025, Month: 6,
		Milk: 4, Egg: 10,
		Total: 340,
	}

	msg := Message("Ann's Dairy Farm", st)
	assert.Contains(t, msg, "Ann's Dairy Farm")
	assert.Contains(t, msg, "Month: 6/2025")
	assert.Contains(t, msg, "Customer: Anitha")
	assert.Contains(t, msg, "Milk: 4")
	assert.Contains(t, msg, "Total: ₹340.00")

	link := WhatsAppLink("Ann's Dairy Farm", st)
	require.True(t, strings.HasPrefix(link, "https://wa.me/?text="))

	decoded, err := url.QueryUnescape(strings.TrimPrefix(link, "https://wa.me/?text="))
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
}

func TestFileName(t *testing.T) {
	st := Statement{CustomerName: "Anitha", Month: 6, Year: 2025}
	assert.Equal(t, "Anitha-bill-6-2025.pdf", FileName(st))
}

func TestPDFRenders(t *testing.T) {
	st := Statement{CustomerName: "Anitha", Month: 6, Year: 2025, Milk: 4, Total: 280}

	data, err := PDF("Ann's Dairy Farm", st)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestExportMonth(t *testing.T) {
	customerID := primitive.NewObjectID()
	store := &fakeStore{
		customers: []models.Customer{{ID: customerID, Name: "Anitha"}},
		deliveries: []models.Delivery{
			{CustomerID: customerID.Hex(), Date: "2025-06-01", Milk: 2},
		},
		settings: testSettings(),
	}
	sheet := &fakeSheet{}

	svc := NewService(store, sheet, nil)

	count, err := svc.ExportMonth(context.Background(), 2025, time.June)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, sheet.rows, 1)
	assert.Equal(t, "2025-06", sheet.rows[0][0])
	assert.Equal(t, "Anitha", sheet.rows[0][1])
	assert.Equal(t, 140.0, sheet.rows[0][7])
}

func TestExportMonthWithoutSheetConfigured(t *testing.T) {
	svc := NewService(&fakeStore{}, nil, nil)

	_, err := svc.ExportMonth(context.Background(), 2025, time.June)
	assert.ErrorIs(t, err, ErrSheetsDisabled)
}
