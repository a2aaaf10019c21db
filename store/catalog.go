package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"fashionstore/models"
	"fashionstore/storage"
)

// CatalogStore owns the products bucket.
type CatalogStore struct {
	kv storage.Bucket
}

func NewCatalog(kv storage.Bucket) *CatalogStore {
	return &CatalogStore{kv: kv}
}

func (s *CatalogStore) List(ctx context.Context) ([]models.Product, error) {
	raw, ok, err := s.kv.Get(ctx, storage.BucketProducts)
	if err != nil {
		return nil, fmt.Errorf("loading products: %w", err)
	}
	if !ok || raw == "" {
		return []models.Product{}, nil
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}
	return products, nil
}

func (s *CatalogStore) save(ctx context.Context, products []models.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encoding products: %w", err)
	}
	return s.kv.Put(ctx, storage.BucketProducts, string(raw))
}

func (s *CatalogStore) Get(ctx context.Context, id string) (*models.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (s *CatalogStore) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Image == "" {
		p.Image = models.DefaultProductImage
	}

	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	products = append(products, p)
	if err := s.save(ctx, products); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *CatalogStore) Update(ctx context.Context, p models.Product) (*models.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	if p.Image == "" {
		p.Image = models.DefaultProductImage
	}

	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			if err := s.save(ctx, products); err != nil {
				return nil, err
			}
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (s *CatalogStore) Delete(ctx context.Context, id string) error {
	products, err := s.List(ctx)
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			return s.save(ctx, products)
		}
	}
	return ErrProductNotFound
}

// DecrementStock subtracts quantity from the product's stock. Stock never
// goes below zero; a request past the available count fails without writing.
func (s *CatalogStore) DecrementStock(ctx context.Context, id string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	products, err := s.List(ctx)
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == id {
			if quantity > products[i].Stock {
				return fmt.Errorf("%w: requested %d, available %d", ErrInsufficientStock, quantity, products[i].Stock)
			}
			products[i].Stock -= quantity
			return s.save(ctx, products)
		}
	}
	return ErrProductNotFound
}

func validateProduct(p models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: product name required", ErrInvalidInput)
	}
	if p.Code == "" {
		return fmt.Errorf("%w: product code required", ErrInvalidInput)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: product price cannot be negative", ErrInvalidInput)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: product stock cannot be negative", ErrInvalidInput)
	}
	if !models.ValidCategory(p.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, p.Category)
	}
	return nil
}
