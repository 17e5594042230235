package search

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/filter"
	"github.com/tu-usuario/almacen-pro/pkg/logger"
)

// MaxRecentSearches acota el historial: la más antigua se desaloja primero.
const MaxRecentSearches = 10

// FilterState es la configuración activa de filtros de cada categoría más
// la categoría activa. Propiedad exclusiva del Store; nadie más la muta.
type FilterState struct {
	Active    entity.FilterCategory
	Products  entity.ProductFilter
	Movements entity.MovementFilter
	Clients   entity.ClientFilter
	Financial entity.FinancialFilter
}

// Store gestiona la configuración activa de filtros, los presets con nombre
// y el historial de búsquedas recientes. Ciclo de vida explícito: carga del
// almacén al construir, persiste en cada mutación (sin estado global
// implícito).
type Store struct {
	mu      sync.Mutex
	storage Storage
	log     *logger.Logger
	state   FilterState
	presets []entity.FilterPreset
	recents []entity.RecentSearch
}

// NewStore construye el Store cargando presets y recientes del almacén.
// Datos persistidos malformados o ilegibles degradan a listas vacías con un
// aviso en el log; nunca impiden el arranque.
func NewStore(storage Storage, log *logger.Logger) *Store {
	s := &Store{
		storage: storage,
		log:     log,
		state:   FilterState{Active: entity.FilterCategoryProducts},
	}
	presets, err := storage.LoadPresets()
	if err != nil {
		log.Warn().Err(err).Msg("no se pudieron cargar los presets; se parte de lista vacía")
	}
	s.presets = presets
	recents, err := storage.LoadRecents()
	if err != nil {
		log.Warn().Err(err).Msg("no se pudieron cargar las búsquedas recientes; se parte de lista vacía")
	}
	if len(recents) > MaxRecentSearches {
		recents = recents[:MaxRecentSearches]
	}
	s.recents = recents
	return s
}

// Apply reemplaza la configuración activa de la categoría del snapshot y la
// convierte en la categoría activa. No persiste nada.
func (s *Store) Apply(snapshot entity.FilterSnapshot) error {
	if !snapshot.Category.Valid() {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyLocked(snapshot)
	return nil
}

func (s *Store) applyLocked(snapshot entity.FilterSnapshot) {
	s.state.Active = snapshot.Category
	switch snapshot.Category {
	case entity.FilterCategoryProducts:
		if snapshot.Products != nil {
			s.state.Products = *snapshot.Products
		} else {
			s.state.Products = entity.ProductFilter{}
		}
	case entity.FilterCategoryMovements:
		if snapshot.Movements != nil {
			s.state.Movements = *snapshot.Movements
		} else {
			s.state.Movements = entity.MovementFilter{}
		}
	case entity.FilterCategoryClients:
		if snapshot.Clients != nil {
			s.state.Clients = *snapshot.Clients
		} else {
			s.state.Clients = entity.ClientFilter{}
		}
	case entity.FilterCategoryFinancial:
		if snapshot.Financial != nil {
			s.state.Financial = *snapshot.Financial
		} else {
			s.state.Financial = entity.FinancialFilter{}
		}
	}
}

// Snapshot congela la configuración actual de la categoría dada.
func (s *Store) Snapshot(category entity.FilterCategory) entity.FilterSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(category)
}

func (s *Store) snapshotLocked(category entity.FilterCategory) entity.FilterSnapshot {
	snap := entity.FilterSnapshot{Category: category}
	switch category {
	case entity.FilterCategoryProducts:
		f := s.state.Products
		snap.Products = &f
	case entity.FilterCategoryMovements:
		f := s.state.Movements
		snap.Movements = &f
	case entity.FilterCategoryClients:
		f := s.state.Clients
		snap.Clients = &f
	case entity.FilterCategoryFinancial:
		f := s.state.Financial
		snap.Financial = &f
	}
	return snap
}

// ActiveCategory devuelve la categoría activa.
func (s *Store) ActiveCategory() entity.FilterCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Active
}

// ActiveFieldCount cuenta los campos activos de la categoría dada.
func (s *Store) ActiveFieldCount(category entity.FilterCategory) int {
	return filter.ActiveFieldCount(s.Snapshot(category))
}

// SavePreset congela la configuración actual de la categoría como preset
// con nombre, lo añade a la lista durable y la persiste.
func (s *Store) SavePreset(name string, category entity.FilterCategory) (*entity.FilterPreset, error) {
	if name == "" || !category.Valid() {
		return nil, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	preset := entity.FilterPreset{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  category,
		Snapshot:  s.snapshotLocked(category),
		CreatedAt: time.Now(),
	}
	updated := append(append([]entity.FilterPreset(nil), s.presets...), preset)
	if err := s.storage.SavePresets(updated); err != nil {
		return nil, err
	}
	s.presets = updated
	return &preset, nil
}

// DeletePreset elimina un preset por ID y persiste la lista.
func (s *Store) DeletePreset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := make([]entity.FilterPreset, 0, len(s.presets))
	found := false
	for _, p := range s.presets {
		if p.ID == id {
			found = true
			continue
		}
		updated = append(updated, p)
	}
	if !found {
		return domain.ErrNotFound
	}
	if err := s.storage.SavePresets(updated); err != nil {
		return err
	}
	s.presets = updated
	return nil
}

// LoadPreset reemplaza la configuración activa de la categoría del preset
// con el snapshot guardado y cambia la categoría activa. No reescribe el
// almacén (cargar no muta la lista).
func (s *Store) LoadPreset(id string) (*entity.FilterPreset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.presets {
		if s.presets[i].ID == id {
			s.applyLocked(s.presets[i].Snapshot)
			preset := s.presets[i]
			return &preset, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListPresets devuelve la lista de presets (copia).
func (s *Store) ListPresets() []entity.FilterPreset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.FilterPreset(nil), s.presets...)
}

// RecordSearch antepone una búsqueda al historial con el snapshot de la
// configuración actual de la categoría, recorta a las MaxRecentSearches más
// recientes y persiste.
func (s *Store) RecordSearch(category entity.FilterCategory, query string) (*entity.RecentSearch, error) {
	if !category.Valid() {
		return nil, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := entity.RecentSearch{
		ID:        uuid.New().String(),
		Category:  category,
		Query:     query,
		Snapshot:  s.snapshotLocked(category),
		Timestamp: time.Now(),
	}
	updated := append([]entity.RecentSearch{entry}, s.recents...)
	if len(updated) > MaxRecentSearches {
		updated = updated[:MaxRecentSearches]
	}
	if err := s.storage.SaveRecents(updated); err != nil {
		return nil, err
	}
	s.recents = updated
	return &entry, nil
}

// ClearRecents vacía el historial y persiste la lista vacía.
func (s *Store) ClearRecents() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.SaveRecents(nil); err != nil {
		return err
	}
	s.recents = nil
	return nil
}

// ListRecents devuelve el historial (copia, más reciente primero).
func (s *Store) ListRecents() []entity.RecentSearch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.RecentSearch(nil), s.recents...)
}
