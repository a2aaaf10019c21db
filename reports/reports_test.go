package reports

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fashionstore/models"
	"fashionstore/storage"
	"fashionstore/store"
)

type testEnv struct {
	reports   *Reports
	catalog   *store.CatalogStore
	customers *store.CustomerStore
	ledger    *store.SaleLedger
}

func newTestEnv(t *testing.T, now time.Time) *testEnv {
	t.Helper()

	kv := storage.NewMemory()
	catalog := store.NewCatalog(kv)
	customers := store.NewCustomers(kv)
	ledger := store.NewLedger(kv)

	r := New(catalog, customers, ledger)
	r.now = func() time.Time { return now }

	return &testEnv{reports: r, catalog: catalog, customers: customers, ledger: ledger}
}

func (env *testEnv) appendSale(t *testing.T, sale models.Sale) {
	t.Helper()
	require.NoError(t, env.ledger.Append(context.Background(), sale))
}

func sale(id, productID, customerID, method string, quantity int, total string, date time.Time) models.Sale {
	totalDec := decimal.RequireFromString(total)
	return models.Sale{
		ID:            id,
		ProductID:     productID,
		ProductName:   "Produto " + productID,
		CustomerID:    customerID,
		CustomerName:  "Cliente " + customerID,
		Quantity:      quantity,
		UnitPrice:     totalDec.Div(decimal.NewFromInt(int64(quantity))),
		Total:         totalDec,
		PaymentMethod: method,
		Date:          date,
		Time:          date.Format("15:04:05"),
	}
}

func TestCustomerDebt_SumsAllCreditSales(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(t, now)
	ctx := context.Background()

	env.appendSale(t, sale("s1", "p1", "c1", models.PaymentFiado, 1, "50.00", now))
	env.appendSale(t, sale("s2", "p1", "c1", models.PaymentFiado, 2, "100.00", now))
	env.appendSale(t, sale("s3", "p1", "c1", models.PaymentPix, 1, "999.00", now))
	env.appendSale(t, sale("s4", "p1", "c2", models.PaymentFiado, 1, "10.00", now))

	debt, err := env.reports.CustomerDebt(ctx, "c1")

	require.NoError(t, err)
	assert.True(t, debt.Equal(decimal.RequireFromString("150.00")), "got %s", debt)
}

// Settlement flips the customer flag only; the computed per-customer debt
// keeps counting historical fiado sales.
func TestCustomerDebt_IgnoresSettlement(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(t, now)
	ctx := context.Background()

	customer, err := env.customers.Create(ctx, models.CustomerInput{Name: "Maria", Phone: "11 99999-0001"})
	require.NoError(t, err)
	env.appendSale(t, sale("s1", "p1", customer.ID, models.PaymentFiado, 1, "50.00", now))

	require.NoError(t, env.customers.SetStatus(ctx, customer.ID, models.StatusPaid))

	debt, err := env.reports.CustomerDebt(ctx, customer.ID)
	require.NoError(t, err)
	assert.True(t, debt.Equal(decimal.RequireFromString("50.00")))
}

func TestTotalDebt_OnlyPendingCustomers(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(t, now)
	ctx := context.Background()

	pending, err := env.customers.Create(ctx, models.CustomerInput{Name: "Maria", Phone: "1"})
	require.NoError(t, err)
	settled, err := env.customers.Create(ctx, models.CustomerInput{Name: "João", Phone: "2"})
	require.NoError(t, err)

	require.NoError(t, env.customers.SetStatus(ctx, pending.ID, models.StatusPending))
	// settled stays paid even though they have fiado history.
	env.appendSale(t, sale("s1", "p1", pending.ID, models.PaymentFiado, 1, "80.00", now))
	env.appendSale(t, sale("s2", "p1", settled.ID, models.PaymentFiado, 1, "70.00", now))

	total, err := env.reports.TotalDebt(ctx)

	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("80.00")), "got %s", total)

	debtors, sum, err := env.reports.Debtors(ctx)
	require.NoError(t, err)
	require.Len(t, debtors, 1)
	assert.Equal(t, pending.ID, debtors[0].ID)
	assert.True(t, sum.Equal(total))
}

func TestSalesInPeriod_WeekBoundary(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 30, 0, 0, time.UTC)
	env := newTestEnv(t, now)
	ctx := context.Background()

	onBoundary := now.Add(-7 * 24 * time.Hour)
	env.appendSale(t, sale("in", "p1", "c1", models.PaymentPix, 1, "10.00", onBoundary))
	env.appendSale(t, sale("out", "p1", "c1", models.PaymentPix, 1, "10.00", onBoundary.Add(-24*time.Hour)))

	got, err := env.reports.SalesInPeriod(ctx, Filter{Period: PeriodWeek})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "in", got[0].ID)
}

func TestSalesInPeriod_Today(t *testing.T) {
	now := time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)
	env := newTestEnv(t, now)
	ctx := context.Background()

	env.appendSale(t, sale("today", "p1", "c1", models.PaymentPix, 1, "10.00", now.Add(-22*time.Hour)))
	env.appendSale(t, sale("yesterday", "p1", "c1", models.PaymentPix, 1, "10.00", now.Add(-24*time.Hour)))

	got, err := env.reports.SalesInPeriod(ctx, Filter{Period: PeriodToday})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "today", got[0].ID)
}

func TestSalesInPeriod_CustomRange(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(t, now)
	ctx := context.Background()

	env.appendSale(t, sale("s1", "p1", "c1", models.PaymentPix, 1, "10.00", time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)))
	env.appendSale(t, sale("s2", "p1", "c1", models.PaymentPix, 1, "10.00", time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)))
	env.appendSale(t, sale("s3", "p1", "c1", models.PaymentPix, 1, "10.00", time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)))

	// Endpoints are inclusive.
	got, err := env.reports.SalesInPeriod(ctx, Filter{Period: PeriodCustom, Start: "2026-08-01", End: "2026-08-15"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Empty bounds leave that side open.
	got, err = env.reports.SalesInPeriod(ctx, Filter{Period: PeriodCustom, Start: "2026-08-15"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = env.reports.SalesInPeriod(ctx, Filter{Period: PeriodCustom})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestRevenueAndAverageTicket(t *testing.T) {
	now := time.Now()
	sales := []models.Sale{
		sale("s1", "p1", "c1", models.PaymentPix, 1, "10.00", now),
		sale("s2", "p1", "c1", models.PaymentPix, 1, "20.00", now),
		sale("s3", "p1", "c1", models.PaymentPix, 1, "30.00", now),
	}

	assert.True(t, RevenueTotal(sales).Equal(decimal.RequireFromString("60.00")))
	assert.True(t, AverageTicket(sales).Equal(decimal.RequireFromString("20.00")))
	assert.True(t, AverageTicket(nil).Equal(decimal.Zero))
	assert.True(t, RevenueTotal(nil).Equal(decimal.Zero))
}

func TestPaymentMethodBreakdown_OnlyPresentMethods(t *testing.T) {
	now := time.Now()
	sales := []models.Sale{
		sale("s1", "p1", "c1", models.PaymentPix, 1, "10.00", now),
		sale("s2", "p1", "c1", models.PaymentPix, 1, "15.00", now),
		sale("s3", "p1", "c1", models.PaymentFiado, 1, "5.00", now),
	}

	breakdown := PaymentMethodBreakdown(sales)

	require.Len(t, breakdown, 2)
	assert.True(t, breakdown[models.PaymentPix].Equal(decimal.RequireFromString("25.00")))
	assert.True(t, breakdown[models.PaymentFiado].Equal(decimal.RequireFromString("5.00")))
	_, ok := breakdown[models.PaymentCartao]
	assert.False(t, ok)
}

func TestTopProducts_TieBreaksByInsertionOrder(t *testing.T) {
	now := time.Now()
	sales := []models.Sale{
		sale("s1", "A", "c1", models.PaymentPix, 1, "100.00", now),
		sale("s2", "B", "c1", models.PaymentPix, 1, "300.00", now),
		sale("s3", "C", "c1", models.PaymentPix, 1, "300.00", now),
	}

	top := TopProducts(sales, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].ProductID)
	assert.Equal(t, "C", top[1].ProductID)
}

func TestTopProducts_GroupsQuantityAndRevenue(t *testing.T) {
	now := time.Now()
	sales := []models.Sale{
		sale("s1", "A", "c1", models.PaymentPix, 2, "40.00", now),
		sale("s2", "A", "c2", models.PaymentFiado, 3, "60.00", now),
		sale("s3", "B", "c1", models.PaymentPix, 1, "10.00", now),
	}

	top := TopProducts(sales, 5)

	require.Len(t, top, 2)
	assert.Equal(t, "A", top[0].ProductID)
	assert.Equal(t, 5, top[0].Quantity)
	assert.True(t, top[0].Revenue.Equal(decimal.RequireFromString("100.00")))
}

func TestSummary_Idempotent(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(t, now)
	ctx := context.Background()

	env.appendSale(t, sale("s1", "p1", "c1", models.PaymentPix, 1, "10.00", now))
	env.appendSale(t, sale("s2", "p2", "c2", models.PaymentFiado, 2, "30.00", now))

	first, err := env.reports.Summary(ctx, Filter{Period: PeriodToday})
	require.NoError(t, err)
	second, err := env.reports.Summary(ctx, Filter{Period: PeriodToday})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, first.TotalSales)
	assert.True(t, first.TotalRevenue.Equal(decimal.RequireFromString("40.00")))
	assert.Len(t, first.TopProducts, 2)
}

func TestDashboardStats(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(t, now)
	ctx := context.Background()

	_, err := env.catalog.Create(ctx, models.Product{
		Code: "C1", Name: "Camiseta", Price: decimal.RequireFromString("30.00"), Stock: 5, Category: "camisetas",
	})
	require.NoError(t, err)

	paid, err := env.customers.Create(ctx, models.CustomerInput{Name: "Maria", Phone: "1"})
	require.NoError(t, err)
	_ = paid
	debtor, err := env.customers.Create(ctx, models.CustomerInput{Name: "João", Phone: "2"})
	require.NoError(t, err)
	require.NoError(t, env.customers.SetStatus(ctx, debtor.ID, models.StatusPending))

	env.appendSale(t, sale("today", "p1", "c1", models.PaymentPix, 1, "10.00", now))
	env.appendSale(t, sale("month", "p1", "c1", models.PaymentPix, 1, "20.00", now.Add(-10*24*time.Hour)))
	env.appendSale(t, sale("old", "p1", "c1", models.PaymentPix, 1, "40.00", now.Add(-60*24*time.Hour)))

	stats, err := env.reports.DashboardStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalProducts)
	assert.Equal(t, 3, stats.TotalSales)
	assert.Equal(t, 2, stats.TotalCustomers)
	assert.Equal(t, 1, stats.TotalDebtors)
	assert.True(t, stats.DailyRevenue.Equal(decimal.RequireFromString("10.00")), "got %s", stats.DailyRevenue)
	// 2026-08-21 is still August, 2026-07-02 is not.
	assert.True(t, stats.MonthlyRevenue.Equal(decimal.RequireFromString("30.00")), "got %s", stats.MonthlyRevenue)
}
