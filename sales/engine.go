// Package sales holds the transaction engine: the unit of work that turns a
// validated sale request into a ledger entry, a stock decrement and, for
// credit sales, a customer status flip.
package sales

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"fashionstore/models"
	"fashionstore/store"
)

var validate = validator.New()

type Engine struct {
	// mu keeps the ledger append, stock decrement and status flip of one
	// sale from interleaving with another sale or settlement.
	mu        sync.Mutex
	catalog   *store.CatalogStore
	customers *store.CustomerStore
	ledger    *store.SaleLedger
	log       *logrus.Logger
}

func NewEngine(catalog *store.CatalogStore, customers *store.CustomerStore, ledger *store.SaleLedger, log *logrus.Logger) *Engine {
	return &Engine{
		catalog:   catalog,
		customers: customers,
		ledger:    ledger,
		log:       log,
	}
}

// RecordSale commits one sale. All validation happens before the first
// write; once writing starts the ledger append, the stock decrement and the
// conditional status flip are applied in that order. The created Sale is
// returned for the caller to hand to a receipt generator.
func (e *Engine) RecordSale(ctx context.Context, in models.SaleInput) (*models.Sale, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidInput, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	product, err := e.catalog.Get(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	customer, err := e.customers.Get(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}

	if in.Quantity > product.Stock {
		return nil, fmt.Errorf("%w: requested %d, available %d", store.ErrInsufficientStock, in.Quantity, product.Stock)
	}

	// Installments only mean something on card sales.
	installments := 0
	if in.PaymentMethod == models.PaymentCartao {
		installments = in.Installments
		if installments == 0 {
			installments = 1
		}
	}

	now := time.Now()
	sale := models.Sale{
		ID:            uuid.NewString(),
		ProductID:     product.ID,
		ProductName:   product.Name,
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		Quantity:      in.Quantity,
		UnitPrice:     product.Price,
		Total:         product.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
		PaymentMethod: in.PaymentMethod,
		Installments:  installments,
		Date:          now,
		Time:          now.Format("15:04:05"),
	}

	if err := e.ledger.Append(ctx, sale); err != nil {
		return nil, fmt.Errorf("recording sale: %w", err)
	}
	if err := e.catalog.DecrementStock(ctx, product.ID, in.Quantity); err != nil {
		return nil, fmt.Errorf("updating stock: %w", err)
	}
	if in.PaymentMethod == models.PaymentFiado {
		if err := e.customers.SetStatus(ctx, customer.ID, models.StatusPending); err != nil {
			return nil, fmt.Errorf("updating customer status: %w", err)
		}
	}

	e.log.WithFields(logrus.Fields{
		"saleId":        sale.ID,
		"productId":     sale.ProductID,
		"customerId":    sale.CustomerID,
		"quantity":      sale.Quantity,
		"total":         sale.Total.StringFixed(2),
		"paymentMethod": sale.PaymentMethod,
	}).Info("sale recorded")

	return &sale, nil
}

// SettleDebt marks the customer as paid. It only flips the status flag; the
// customer's fiado sales stay in the ledger untouched.
func (e *Engine) SettleDebt(ctx context.Context, customerID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.customers.SetStatus(ctx, customerID, models.StatusPaid); err != nil {
		return err
	}

	e.log.WithField("customerId", customerID).Info("debt settled")
	return nil
}
