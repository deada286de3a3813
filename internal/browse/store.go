// Package browse es el estado de navegación del lado consumidor:
// catálogos cacheados, filtros multi-campo, favoritos y sesión.
package browse

import (
	"sort"
	"strings"
	"sync"

	"pet-adoption-api/internal/domain/owners"
	"pet-adoption-api/internal/domain/pets"
)

// Valores comodín de filtro: no restringen el campo.
const (
	FilterAll = "all"
	FilterAny = "any"
)

// Filters es el criterio multi-campo sobre el catálogo adoptable.
// Cada campo acepta "all"/"any" como comodín. Age filtra por bucket:
// young (<=1), adult (1..7], senior (>7).
type Filters struct {
	Type   string
	Age    string
	Size   string
	Gender string
}

func defaultFilters() Filters {
	return Filters{Type: FilterAll, Age: FilterAll, Size: FilterAll, Gender: FilterAll}
}

// Store guarda el estado de navegación. Todas las lecturas devuelven
// copias; nunca se expone el slice interno.
type Store struct {
	mu sync.RWMutex

	pets         []pets.Pet
	showcasePets []pets.Pet
	owners       []owners.Owner

	favorites map[int64]struct{}
	filters   Filters

	loading map[string]bool
	lastErr string
}

func NewStore() *Store {
	return &Store{
		favorites: make(map[int64]struct{}),
		filters:   defaultFilters(),
		loading:   make(map[string]bool),
	}
}

// SetPets reemplaza el catálogo adoptable y limpia el error previo.
func (s *Store) SetPets(items []pets.Pet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pets = clonePets(items)
	s.lastErr = ""
}

// SetShowcasePets reemplaza el listado showcase y limpia el error previo.
func (s *Store) SetShowcasePets(items []pets.Pet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showcasePets = clonePets(items)
	s.lastErr = ""
}

// SetOwners reemplaza el directorio de owners y limpia el error previo.
func (s *Store) SetOwners(items []owners.Owner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owners = cloneOwners(items)
	s.lastErr = ""
}

func (s *Store) Pets() []pets.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePets(s.pets)
}

func (s *Store) ShowcasePets() []pets.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePets(s.showcasePets)
}

func (s *Store) Owners() []owners.Owner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOwners(s.owners)
}

// ToggleFavorite agrega o quita el id del set local de favoritos.
// Dos toggles seguidos dejan el set como estaba.
func (s *Store) ToggleFavorite(petID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.favorites[petID]; ok {
		delete(s.favorites, petID)
		return
	}
	s.favorites[petID] = struct{}{}
}

func (s *Store) IsFavorite(petID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.favorites[petID]
	return ok
}

// Favorites devuelve los ids favoritos ordenados asc.
func (s *Store) Favorites() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]int64, 0, len(s.favorites))
	for id := range s.favorites {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SetFilters reemplaza el criterio completo; campos vacíos se tratan
// como comodín.
func (s *Store) SetFilters(f Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = normalizeFilters(f)
}

// SetFilter muta un solo campo ("type", "age", "size", "gender").
// Campos desconocidos se ignoran.
func (s *Store) SetFilter(field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "type":
		s.filters.Type = normalizeFilterValue(value)
	case "age":
		s.filters.Age = normalizeFilterValue(value)
	case "size":
		s.filters.Size = normalizeFilterValue(value)
	case "gender":
		s.filters.Gender = normalizeFilterValue(value)
	}
}

// ResetFilters vuelve todos los campos al comodín.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = defaultFilters()
}

func (s *Store) CurrentFilters() Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// SetLoading marca una operación en vuelo ("pets", "owners", ...).
func (s *Store) SetLoading(key string, v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v {
		s.loading[key] = true
		return
	}
	delete(s.loading, key)
}

func (s *Store) Loading(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading[key]
}

// SetError deja un mensaje de error sin tocar los listados ya cacheados.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = msg
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// FilteredPets aplica el criterio multi-campo sobre el catálogo
// adoptable. Un solo scan O(n); todos los campos deben matchear.
func (s *Store) FilteredPets() []pets.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]pets.Pet, 0, len(s.pets))
	for _, p := range s.pets {
		if matchesFilters(p, s.filters) {
			out = append(out, p)
		}
	}
	return out
}

// FilteredOwners filtra el directorio por substring del nombre
// (case-insensitive). Término vacío devuelve todos.
func (s *Store) FilteredOwners(term string) []owners.Owner {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return cloneOwners(s.owners)
	}
	out := make([]owners.Owner, 0)
	for _, o := range s.owners {
		if strings.Contains(strings.ToLower(o.Name), term) {
			out = append(out, o)
		}
	}
	return out
}

// PetsForOwner junta las mascotas (adoptables + showcase) de un owner.
func (s *Store) PetsForOwner(ownerID int64) []pets.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range s.pets {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	for _, p := range s.showcasePets {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out
}

func matchesFilters(p pets.Pet, f Filters) bool {
	if !wildcard(f.Type) && !strings.EqualFold(string(p.Type), f.Type) {
		return false
	}
	if !wildcard(f.Age) && ageBucket(p.Age) != strings.ToLower(f.Age) {
		return false
	}
	if !wildcard(f.Size) && !strings.EqualFold(string(p.Size), f.Size) {
		return false
	}
	if !wildcard(f.Gender) && !strings.EqualFold(string(p.Gender), f.Gender) {
		return false
	}
	return true
}

// ageBucket traduce edad en años a los buckets que usa la UI.
func ageBucket(age int) string {
	switch {
	case age <= 1:
		return "young"
	case age <= 7:
		return "adult"
	default:
		return "senior"
	}
}

func wildcard(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", FilterAll, FilterAny:
		return true
	}
	return false
}

func normalizeFilters(f Filters) Filters {
	return Filters{
		Type:   normalizeFilterValue(f.Type),
		Age:    normalizeFilterValue(f.Age),
		Size:   normalizeFilterValue(f.Size),
		Gender: normalizeFilterValue(f.Gender),
	}
}

func normalizeFilterValue(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" || v == FilterAny {
		return FilterAll
	}
	return v
}

func clonePets(items []pets.Pet) []pets.Pet {
	out := make([]pets.Pet, len(items))
	copy(out, items)
	return out
}

func cloneOwners(items []owners.Owner) []owners.Owner {
	out := make([]owners.Owner, len(items))
	copy(out, items)
	return out
}
