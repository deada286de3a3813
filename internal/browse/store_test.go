package browse_test

import (
	"testing"

	"pet-adoption-api/internal/browse"
	"pet-adoption-api/internal/domain/owners"
	"pet-adoption-api/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePets() []pets.Pet {
	return []pets.Pet{
		{ID: 1, Name: "Max", Type: pets.TypeDog, Age: 3, Gender: pets.GenderMale, Size: pets.SizeLarge, OwnerID: 1},
		{ID: 2, Name: "Luna", Type: pets.TypeCat, Age: 1, Gender: pets.GenderFemale, Size: pets.SizeSmall, OwnerID: 2},
		{ID: 3, Name: "Buddy", Type: pets.TypeDog, Age: 9, Gender: pets.GenderMale, Size: pets.SizeMedium, OwnerID: 1},
		{ID: 4, Name: "Rio", Type: pets.TypeBird, Age: 2, Gender: pets.GenderMale, OwnerID: 3},
	}
}

func TestFilteredPets_MultiField(t *testing.T) {
	st := browse.NewStore()
	st.SetPets(samplePets())

	// sin filtros: todo pasa
	assert.Len(t, st.FilteredPets(), 4)

	// solo perros
	st.SetFilter("type", "dog")
	got := st.FilteredPets()
	require.Len(t, got, 2)
	assert.Equal(t, "Max", got[0].Name)
	assert.Equal(t, "Buddy", got[1].Name)

	// perros + adultos: Buddy (9) es senior, queda Max (3)
	st.SetFilter("age", "adult")
	got = st.FilteredPets()
	require.Len(t, got, 1)
	assert.Equal(t, "Max", got[0].Name)

	// se suma género y size: sigue matcheando Max
	st.SetFilter("gender", "male")
	st.SetFilter("size", "large")
	got = st.FilteredPets()
	require.Len(t, got, 1)
	assert.Equal(t, "Max", got[0].Name)

	// size que no matchea: vacío
	st.SetFilter("size", "small")
	assert.Empty(t, st.FilteredPets())

	// reset: vuelve todo
	st.ResetFilters()
	assert.Len(t, st.FilteredPets(), 4)
}

func TestFilteredPets_AgeBuckets(t *testing.T) {
	st := browse.NewStore()
	st.SetPets([]pets.Pet{
		{ID: 1, Name: "Pup", Type: pets.TypeDog, Age: 0},
		{ID: 2, Name: "Yearling", Type: pets.TypeDog, Age: 1},
		{ID: 3, Name: "Grown", Type: pets.TypeDog, Age: 7},
		{ID: 4, Name: "Elder", Type: pets.TypeDog, Age: 8},
	})

	st.SetFilter("age", "young")
	assert.Len(t, st.FilteredPets(), 2, "young is age <= 1")

	st.SetFilter("age", "adult")
	got := st.FilteredPets()
	require.Len(t, got, 1, "adult is 1 < age <= 7")
	assert.Equal(t, "Grown", got[0].Name)

	st.SetFilter("age", "senior")
	got = st.FilteredPets()
	require.Len(t, got, 1, "senior is age > 7")
	assert.Equal(t, "Elder", got[0].Name)
}

func TestSetFilter_WildcardsAndUnknownField(t *testing.T) {
	st := browse.NewStore()
	st.SetPets(samplePets())

	// "any" y "" equivalen a "all"
	st.SetFilter("type", "any")
	assert.Len(t, st.FilteredPets(), 4)
	st.SetFilter("type", "")
	assert.Len(t, st.FilteredPets(), 4)

	// campo desconocido no rompe ni cambia nada
	st.SetFilter("color", "brown")
	assert.Len(t, st.FilteredPets(), 4)
}

func TestToggleFavorite_Idempotent(t *testing.T) {
	st := browse.NewStore()

	st.ToggleFavorite(5)
	st.ToggleFavorite(2)
	assert.True(t, st.IsFavorite(5))
	assert.Equal(t, []int64{2, 5}, st.Favorites())

	// segundo toggle del mismo id lo quita
	st.ToggleFavorite(5)
	assert.False(t, st.IsFavorite(5))
	assert.Equal(t, []int64{2}, st.Favorites())

	// par de toggles deja el set igual
	st.ToggleFavorite(2)
	st.ToggleFavorite(2)
	assert.Equal(t, []int64{2}, st.Favorites())
}

func TestSetError_PreservesListings(t *testing.T) {
	st := browse.NewStore()
	st.SetPets(samplePets())

	st.SetError("network down")
	assert.Equal(t, "network down", st.LastError())
	assert.Len(t, st.Pets(), 4, "error must not drop cached listings")

	// una carga exitosa limpia el error
	st.SetPets(samplePets()[:2])
	assert.Empty(t, st.LastError())

	st.SetError("again")
	st.ClearError()
	assert.Empty(t, st.LastError())
}

func TestLoadingFlags(t *testing.T) {
	st := browse.NewStore()

	assert.False(t, st.Loading("pets"))
	st.SetLoading("pets", true)
	assert.True(t, st.Loading("pets"))
	assert.False(t, st.Loading("owners"))
	st.SetLoading("pets", false)
	assert.False(t, st.Loading("pets"))
}

func TestFilteredOwners_NameSubstring(t *testing.T) {
	st := browse.NewStore()
	st.SetOwners([]owners.Owner{
		{ID: 1, Name: "Sarah Johnson"},
		{ID: 2, Name: "Michael Chen"},
		{ID: 3, Name: "Sara Lee"},
	})

	assert.Len(t, st.FilteredOwners(""), 3)
	assert.Len(t, st.FilteredOwners("sara"), 2)

	got := st.FilteredOwners("chen")
	require.Len(t, got, 1)
	assert.Equal(t, "Michael Chen", got[0].Name)

	assert.Empty(t, st.FilteredOwners("nobody"))
}

func TestPetsForOwner_SpansBothListings(t *testing.T) {
	st := browse.NewStore()
	st.SetPets(samplePets())
	st.SetShowcasePets([]pets.Pet{
		{ID: 10, Name: "Charlie", Type: pets.TypeDog, OwnerID: 1},
	})

	got := st.PetsForOwner(1)
	require.Len(t, got, 3)
	names := []string{got[0].Name, got[1].Name, got[2].Name}
	assert.Contains(t, names, "Charlie")
}

func TestReads_ReturnCopies(t *testing.T) {
	st := browse.NewStore()
	st.SetPets(samplePets())

	snapshot := st.Pets()
	snapshot[0].Name = "mutated"

	fresh := st.Pets()
	assert.Equal(t, "Max", fresh[0].Name, "mutating a snapshot must not affect the store")
}
