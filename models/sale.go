package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentPix      = "pix"
	PaymentCartao   = "cartao"
	PaymentDinheiro = "dinheiro"
	PaymentFiado    = "fiado"
)

// Sale is one ledger entry. ProductName, CustomerName and UnitPrice are
// copied at sale time so the record survives later edits or deletions.
type Sale struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	Installments  int             `json:"installments,omitempty"`
	Date          time.Time       `json:"date"`
	Time          string          `json:"time"`
}

type SaleInput struct {
	ProductID     string `json:"productId" validate:"required"`
	CustomerID    string `json:"customerId" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=pix cartao dinheiro fiado"`
	Installments  int    `json:"installments" validate:"omitempty,gt=0"`
}
