// Package reports is the read side: every query recomputes from the full
// record set on each call and writes nothing.
package reports

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fashionstore/models"
	"fashionstore/store"
)

type Reports struct {
	catalog   *store.CatalogStore
	customers *store.CustomerStore
	ledger    *store.SaleLedger

	now func() time.Time
}

func New(catalog *store.CatalogStore, customers *store.CustomerStore, ledger *store.SaleLedger) *Reports {
	return &Reports{
		catalog:   catalog,
		customers: customers,
		ledger:    ledger,
		now:       time.Now,
	}
}

// CustomerDebt sums every fiado sale the customer ever made. Settling a debt
// flips the customer's status only; historical fiado sales keep counting
// here, matching how the store has always tracked it.
func (r *Reports) CustomerDebt(ctx context.Context, customerID string) (decimal.Decimal, error) {
	sales, err := r.ledger.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	debt := decimal.Zero
	for _, s := range sales {
		if s.CustomerID == customerID && s.PaymentMethod == models.PaymentFiado {
			debt = debt.Add(s.Total)
		}
	}
	return debt, nil
}

// CustomerCreditSales returns the customer's fiado sales in ledger order.
func (r *Reports) CustomerCreditSales(ctx context.Context, customerID string) ([]models.Sale, error) {
	sales, err := r.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	credit := make([]models.Sale, 0)
	for _, s := range sales {
		if s.CustomerID == customerID && s.PaymentMethod == models.PaymentFiado {
			credit = append(credit, s)
		}
	}
	return credit, nil
}

// Debtor pairs a pending customer with their computed debt.
type Debtor struct {
	models.Customer
	Debt decimal.Decimal `json:"debt"`
}

// Debtors lists customers currently pending, each with their debt, plus the
// grand total across them.
func (r *Reports) Debtors(ctx context.Context) ([]Debtor, decimal.Decimal, error) {
	customers, err := r.customers.List(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}
	sales, err := r.ledger.List(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}

	debtByCustomer := make(map[string]decimal.Decimal)
	for _, s := range sales {
		if s.PaymentMethod == models.PaymentFiado {
			debtByCustomer[s.CustomerID] = debtByCustomer[s.CustomerID].Add(s.Total)
		}
	}

	debtors := make([]Debtor, 0)
	total := decimal.Zero
	for _, c := range customers {
		if c.Status != models.StatusPending {
			continue
		}
		debt := debtByCustomer[c.ID]
		debtors = append(debtors, Debtor{Customer: c, Debt: debt})
		total = total.Add(debt)
	}
	return debtors, total, nil
}

// TotalDebt sums the debt of every customer currently pending.
func (r *Reports) TotalDebt(ctx context.Context) (decimal.Decimal, error) {
	_, total, err := r.Debtors(ctx)
	return total, err
}

// SalesInPeriod returns the sales whose date falls inside the filter, in
// ledger order.
func (r *Reports) SalesInPeriod(ctx context.Context, f Filter) ([]models.Sale, error) {
	sales, err := r.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	now := r.now()
	filtered := make([]models.Sale, 0)
	for _, s := range sales {
		if f.InRange(s.Date, now) {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

func RevenueTotal(sales []models.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Total)
	}
	return total
}

// AverageTicket is revenue over count, zero when there are no sales.
func AverageTicket(sales []models.Sale) decimal.Decimal {
	if len(sales) == 0 {
		return decimal.Zero
	}
	return RevenueTotal(sales).Div(decimal.NewFromInt(int64(len(sales))))
}

// PaymentMethodBreakdown maps each payment method present in the sales to
// its summed total.
func PaymentMethodBreakdown(sales []models.Sale) map[string]decimal.Decimal {
	breakdown := make(map[string]decimal.Decimal)
	for _, s := range sales {
		breakdown[s.PaymentMethod] = breakdown[s.PaymentMethod].Add(s.Total)
	}
	return breakdown
}

type ProductRank struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// TopProducts groups sales by product and returns the top n by revenue.
// Ties keep the order products first appear in the ledger.
func TopProducts(sales []models.Sale, n int) []ProductRank {
	index := make(map[string]int)
	ranks := make([]ProductRank, 0)
	for _, s := range sales {
		i, ok := index[s.ProductID]
		if !ok {
			i = len(ranks)
			index[s.ProductID] = i
			ranks = append(ranks, ProductRank{ProductID: s.ProductID, Name: s.ProductName})
		}
		ranks[i].Quantity += s.Quantity
		ranks[i].Revenue = ranks[i].Revenue.Add(s.Total)
	}

	sort.SliceStable(ranks, func(a, b int) bool {
		return ranks[a].Revenue.GreaterThan(ranks[b].Revenue)
	})

	if n > 0 && len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}

// Summary is the full report for one period, the shape the report generator
// consumes.
type Summary struct {
	Filter        Filter                     `json:"filter"`
	TotalRevenue  decimal.Decimal            `json:"totalRevenue"`
	TotalSales    int                        `json:"totalSales"`
	AverageTicket decimal.Decimal            `json:"averageTicket"`
	ByPayment     map[string]decimal.Decimal `json:"paymentMethods"`
	TopProducts   []ProductRank              `json:"topProducts"`
	Sales         []models.Sale              `json:"sales"`
}

func (r *Reports) Summary(ctx context.Context, f Filter) (*Summary, error) {
	sales, err := r.SalesInPeriod(ctx, f)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Filter:        f,
		TotalRevenue:  RevenueTotal(sales),
		TotalSales:    len(sales),
		AverageTicket: AverageTicket(sales),
		ByPayment:     PaymentMethodBreakdown(sales),
		TopProducts:   TopProducts(sales, 5),
		Sales:         sales,
	}, nil
}

// DashboardStats are the counters on the landing screen. Daily revenue is
// the current calendar day, monthly the current calendar month.
type DashboardStats struct {
	TotalProducts  int             `json:"totalProducts"`
	TotalSales     int             `json:"totalSales"`
	TotalCustomers int             `json:"totalCustomers"`
	TotalDebtors   int             `json:"totalDebtors"`
	DailyRevenue   decimal.Decimal `json:"dailySales"`
	MonthlyRevenue decimal.Decimal `json:"monthlySales"`
}

func (r *Reports) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	products, err := r.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := r.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := r.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	now := r.now()
	today := now.Format(dayFormat)
	month := now.Format("2006-01")

	stats := &DashboardStats{
		TotalProducts:  len(products),
		TotalSales:     len(sales),
		TotalCustomers: len(customers),
		DailyRevenue:   decimal.Zero,
		MonthlyRevenue: decimal.Zero,
	}

	for _, c := range customers {
		if c.Status == models.StatusPending {
			stats.TotalDebtors++
		}
	}
	for _, s := range sales {
		day := s.Date.Format(dayFormat)
		if day == today {
			stats.DailyRevenue = stats.DailyRevenue.Add(s.Total)
		}
		if strings.HasPrefix(day, month) {
			stats.MonthlyRevenue = stats.MonthlyRevenue.Add(s.Total)
		}
	}
	return stats, nil
}
