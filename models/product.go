package models

import "github.com/shopspring/decimal"

func init() {
	// Money fields persist as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

const DefaultProductImage = "/placeholder.svg"

type Product struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
}

// Categories the store sells. The catalog rejects anything else.
var Categories = []string{"camisetas", "calcas", "vestidos", "sapatos", "acessorios"}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type ProductInput struct {
	Code        string          `json:"code" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Image       string          `json:"image"`
	Category    string          `json:"category" validate:"required,oneof=camisetas calcas vestidos sapatos acessorios"`
}
