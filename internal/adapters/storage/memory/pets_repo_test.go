package memory_test

import (
	"context"
	"testing"

	"pet-adoption-api/internal/adapters/storage/memory"
	"pet-adoption-api/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetsRepo_CreateAssignsSequentialIDs(t *testing.T) {
	repo := memory.NewPetRepo()
	ctx := context.Background()

	a, err := repo.Create(ctx, pets.Pet{Name: "Max", Type: pets.TypeDog, IsAdoptable: true})
	require.NoError(t, err)
	b, err := repo.Create(ctx, pets.Pet{Name: "Luna", Type: pets.TypeCat, IsAdoptable: true})
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
}

func TestPetsRepo_RoundTrip(t *testing.T) {
	repo := memory.NewPetRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, pets.Pet{
		Name:        "Buddy",
		Type:        pets.TypeDog,
		Breed:       "Golden Retriever",
		Age:         5,
		IsAdoptable: true,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	got.Name = "Buddy II"
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buddy II", updated.Name)
}

func TestPetsRepo_DeleteThenGet(t *testing.T) {
	repo := memory.NewPetRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, pets.Pet{Name: "Rio", Type: pets.TypeBird})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, pets.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID), pets.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, created), pets.ErrNotFound)
}

func TestPetsRepo_ListingsPartitionByAdoptable(t *testing.T) {
	repo := memory.NewPetRepo()
	ctx := context.Background()

	_, err := repo.Create(ctx, pets.Pet{Name: "Max", Type: pets.TypeDog, IsAdoptable: true})
	require.NoError(t, err)
	_, err = repo.Create(ctx, pets.Pet{Name: "Charlie", Type: pets.TypeDog})
	require.NoError(t, err)
	_, err = repo.Create(ctx, pets.Pet{Name: "Luna", Type: pets.TypeCat, IsAdoptable: true})
	require.NoError(t, err)

	adoptable, err := repo.ListAdoptable(ctx)
	require.NoError(t, err)
	showcase, err := repo.ListShowcase(ctx)
	require.NoError(t, err)
	all, err := repo.ListAll(ctx)
	require.NoError(t, err)

	assert.Len(t, adoptable, 2)
	assert.Len(t, showcase, 1)
	assert.Len(t, all, 3)

	// orden estable por id asc
	assert.Equal(t, "Max", adoptable[0].Name)
	assert.Equal(t, "Luna", adoptable[1].Name)
}
