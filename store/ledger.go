package store

import (
	"context"
	"encoding/json"
	"fmt"

	"fashionstore/models"
	"fashionstore/storage"
)

// SaleLedger owns the sales bucket. The ledger is append-only: records are
// never updated or removed once written.
type SaleLedger struct {
	kv storage.Bucket
}

func NewLedger(kv storage.Bucket) *SaleLedger {
	return &SaleLedger{kv: kv}
}

func (s *SaleLedger) List(ctx context.Context) ([]models.Sale, error) {
	raw, ok, err := s.kv.Get(ctx, storage.BucketSales)
	if err != nil {
		return nil, fmt.Errorf("loading sales: %w", err)
	}
	if !ok || raw == "" {
		return []models.Sale{}, nil
	}

	var sales []models.Sale
	if err := json.Unmarshal([]byte(raw), &sales); err != nil {
		return nil, fmt.Errorf("decoding sales: %w", err)
	}
	return sales, nil
}

func (s *SaleLedger) Get(ctx context.Context, id string) (*models.Sale, error) {
	sales, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		if sales[i].ID == id {
			sale := sales[i]
			return &sale, nil
		}
	}
	return nil, ErrSaleNotFound
}

func (s *SaleLedger) Append(ctx context.Context, sale models.Sale) error {
	sales, err := s.List(ctx)
	if err != nil {
		return err
	}
	sales = append(sales, sale)

	raw, err := json.Marshal(sales)
	if err != nil {
		return fmt.Errorf("encoding sales: %w", err)
	}
	return s.kv.Put(ctx, storage.BucketSales, string(raw))
}
