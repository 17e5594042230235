package redis

import (
	"sync"

	"github.com/tu-usuario/almacen-pro/internal/application/search"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

var _ search.Storage = (*MemoryStorage)(nil)

// MemoryStorage implementación en memoria de search.Storage, para tests y
// despliegues sin Redis (los presets no sobreviven al reinicio).
type MemoryStorage struct {
	mu      sync.Mutex
	presets []entity.FilterPreset
	recents []entity.RecentSearch
}

// NewMemoryStorage construye el almacén en memoria.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// LoadPresets devuelve la lista de presets.
func (s *MemoryStorage) LoadPresets() ([]entity.FilterPreset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.FilterPreset(nil), s.presets...), nil
}

// SavePresets reemplaza la lista de presets.
func (s *MemoryStorage) SavePresets(presets []entity.FilterPreset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presets = append([]entity.FilterPreset(nil), presets...)
	return nil
}

// LoadRecents devuelve el historial.
func (s *MemoryStorage) LoadRecents() ([]entity.RecentSearch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.RecentSearch(nil), s.recents...), nil
}

// SaveRecents reemplaza el historial.
func (s *MemoryStorage) SaveRecents(recents []entity.RecentSearch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recents = append([]entity.RecentSearch(nil), recents...)
	return nil
}
