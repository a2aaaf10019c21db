package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fashionstore/models"
	"fashionstore/storage"
)

func testCustomerInput() models.CustomerInput {
	return models.CustomerInput{
		Name:    "Maria Silva",
		Phone:   "11 99999-0001",
		Email:   "maria@example.com",
		Address: "Rua das Flores, 10",
	}
}

func TestCustomers_CreateDefaults(t *testing.T) {
	customers := NewCustomers(storage.NewMemory())

	created, err := customers.Create(context.Background(), testCustomerInput())

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusPaid, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCustomers_CreateValidation(t *testing.T) {
	customers := NewCustomers(storage.NewMemory())
	ctx := context.Background()

	in := testCustomerInput()
	in.Name = ""
	_, err := customers.Create(ctx, in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	in = testCustomerInput()
	in.Phone = ""
	_, err = customers.Create(ctx, in)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCustomers_UpdateKeepsStatusAndCreatedAt(t *testing.T) {
	customers := NewCustomers(storage.NewMemory())
	ctx := context.Background()
	created, err := customers.Create(ctx, testCustomerInput())
	require.NoError(t, err)
	require.NoError(t, customers.SetStatus(ctx, created.ID, models.StatusPending))

	in := testCustomerInput()
	in.Name = "Maria S. Oliveira"
	in.Address = ""
	updated, err := customers.Update(ctx, created.ID, in)

	require.NoError(t, err)
	assert.Equal(t, "Maria S. Oliveira", updated.Name)
	assert.Empty(t, updated.Address)
	assert.Equal(t, models.StatusPending, updated.Status)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
}

func TestCustomers_UpdateNotFound(t *testing.T) {
	customers := NewCustomers(storage.NewMemory())

	_, err := customers.Update(context.Background(), "missing", testCustomerInput())

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCustomers_SetStatus(t *testing.T) {
	customers := NewCustomers(storage.NewMemory())
	ctx := context.Background()
	created, err := customers.Create(ctx, testCustomerInput())
	require.NoError(t, err)

	require.NoError(t, customers.SetStatus(ctx, created.ID, models.StatusPending))
	got, err := customers.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)

	assert.ErrorIs(t, customers.SetStatus(ctx, created.ID, "quitado"), ErrInvalidInput)
	assert.ErrorIs(t, customers.SetStatus(ctx, "missing", models.StatusPaid), ErrCustomerNotFound)
}

func TestCustomers_ToggleStatus(t *testing.T) {
	customers := NewCustomers(storage.NewMemory())
	ctx := context.Background()
	created, err := customers.Create(ctx, testCustomerInput())
	require.NoError(t, err)

	toggled, err := customers.ToggleStatus(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, toggled.Status)

	toggled, err = customers.ToggleStatus(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, toggled.Status)
}

func TestCustomers_Delete(t *testing.T) {
	customers := NewCustomers(storage.NewMemory())
	ctx := context.Background()
	created, err := customers.Create(ctx, testCustomerInput())
	require.NoError(t, err)

	require.NoError(t, customers.Delete(ctx, created.ID))

	_, err = customers.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	list, err := customers.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
