package products_test

import (
	"context"
	"testing"

	"pet-adoption-api/internal/adapters/storage/memory"
	"pet-adoption-api/internal/domain/products"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *products.Service {
	return products.NewService(memory.NewProductRepo())
}

func TestCreate_NormalizesPrice(t *testing.T) {
	svc := newService()

	cases := map[string]string{
		"19.99": "19.99",
		"19":    "19.00",
		" 5.5 ": "5.50",
		"0":     "0.00",
	}
	for raw, want := range cases {
		p, err := svc.Create(context.Background(), products.CreateInput{
			Name:     "Chew Toy",
			Category: "toys",
			Price:    raw,
			Stock:    10,
		})
		require.NoError(t, err, "price %q", raw)
		assert.Equal(t, want, p.Price, "price %q", raw)
	}
}

func TestCreate_RejectsBadInput(t *testing.T) {
	svc := newService()

	_, err := svc.Create(context.Background(), products.CreateInput{
		Name:     "",
		Category: "",
		Price:    "free",
		Stock:    -1,
	})
	require.ErrorIs(t, err, products.ErrInvalidInput)

	msg := err.Error()
	assert.Contains(t, msg, "name is required")
	assert.Contains(t, msg, "category is required")
	assert.Contains(t, msg, "price must be a decimal number")
	assert.Contains(t, msg, "stock must be zero or positive")

	_, err = svc.Create(context.Background(), products.CreateInput{
		Name:     "Bird Seed",
		Category: "food",
		Price:    "-3",
	})
	assert.ErrorIs(t, err, products.ErrInvalidInput, "negative price")
}

func TestUpdate_PartialPatch(t *testing.T) {
	svc := newService()

	created, err := svc.Create(context.Background(), products.CreateInput{
		Name:        "Cat Tree",
		Category:    "accessories",
		PetType:     "cat",
		Price:       "49.99",
		Stock:       3,
		IsAvailable: true,
	})
	require.NoError(t, err)

	stock := 0
	available := false
	updated, err := svc.Update(context.Background(), created.ID, products.UpdateInput{
		Stock:       &stock,
		IsAvailable: &available,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, updated.Stock)
	assert.False(t, updated.IsAvailable)
	assert.Equal(t, "Cat Tree", updated.Name)
	assert.Equal(t, "49.99", updated.Price)
}

func TestDelete_ThenGet(t *testing.T) {
	svc := newService()

	created, err := svc.Create(context.Background(), products.CreateInput{
		Name:     "Leash",
		Category: "accessories",
		Price:    "12.00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, products.ErrNotFound)
}
