package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fashionstore/models"
	"fashionstore/storage"
)

// CustomerStore owns the customers bucket.
type CustomerStore struct {
	kv storage.Bucket
}

func NewCustomers(kv storage.Bucket) *CustomerStore {
	return &CustomerStore{kv: kv}
}

func (s *CustomerStore) List(ctx context.Context) ([]models.Customer, error) {
	raw, ok, err := s.kv.Get(ctx, storage.BucketCustomers)
	if err != nil {
		return nil, fmt.Errorf("loading customers: %w", err)
	}
	if !ok || raw == "" {
		return []models.Customer{}, nil
	}

	var customers []models.Customer
	if err := json.Unmarshal([]byte(raw), &customers); err != nil {
		return nil, fmt.Errorf("decoding customers: %w", err)
	}
	return customers, nil
}

func (s *CustomerStore) save(ctx context.Context, customers []models.Customer) error {
	raw, err := json.Marshal(customers)
	if err != nil {
		return fmt.Errorf("encoding customers: %w", err)
	}
	return s.kv.Put(ctx, storage.BucketCustomers, string(raw))
}

func (s *CustomerStore) Get(ctx context.Context, id string) (*models.Customer, error) {
	customers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			c := customers[i]
			return &c, nil
		}
	}
	return nil, ErrCustomerNotFound
}

// Create registers a customer. New customers start paid.
func (s *CustomerStore) Create(ctx context.Context, in models.CustomerInput) (*models.Customer, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: customer name required", ErrInvalidInput)
	}
	if in.Phone == "" {
		return nil, fmt.Errorf("%w: customer phone required", ErrInvalidInput)
	}

	customer := models.Customer{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		Status:    models.StatusPaid,
		CreatedAt: time.Now(),
	}

	customers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	customers = append(customers, customer)
	if err := s.save(ctx, customers); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Update edits contact fields only. Status and CreatedAt are kept as stored.
func (s *CustomerStore) Update(ctx context.Context, id string, in models.CustomerInput) (*models.Customer, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: customer name required", ErrInvalidInput)
	}
	if in.Phone == "" {
		return nil, fmt.Errorf("%w: customer phone required", ErrInvalidInput)
	}

	customers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			customers[i].Name = in.Name
			customers[i].Phone = in.Phone
			customers[i].Email = in.Email
			customers[i].Address = in.Address
			if err := s.save(ctx, customers); err != nil {
				return nil, err
			}
			c := customers[i]
			return &c, nil
		}
	}
	return nil, ErrCustomerNotFound
}

func (s *CustomerStore) Delete(ctx context.Context, id string) error {
	customers, err := s.List(ctx)
	if err != nil {
		return err
	}
	for i := range customers {
		if customers[i].ID == id {
			customers = append(customers[:i], customers[i+1:]...)
			return s.save(ctx, customers)
		}
	}
	return ErrCustomerNotFound
}

func (s *CustomerStore) SetStatus(ctx context.Context, id string, status string) error {
	if status != models.StatusPaid && status != models.StatusPending {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	customers, err := s.List(ctx)
	if err != nil {
		return err
	}
	for i := range customers {
		if customers[i].ID == id {
			customers[i].Status = status
			return s.save(ctx, customers)
		}
	}
	return ErrCustomerNotFound
}

// ToggleStatus flips paid <-> pending and returns the updated customer.
func (s *CustomerStore) ToggleStatus(ctx context.Context, id string) (*models.Customer, error) {
	customers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			if customers[i].Status == models.StatusPaid {
				customers[i].Status = models.StatusPending
			} else {
				customers[i].Status = models.StatusPaid
			}
			if err := s.save(ctx, customers); err != nil {
				return nil, err
			}
			c := customers[i]
			return &c, nil
		}
	}
	return nil, ErrCustomerNotFound
}
