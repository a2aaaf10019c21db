package store

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrSaleNotFound      = errors.New("sale not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidInput      = errors.New("invalid input data")
)
