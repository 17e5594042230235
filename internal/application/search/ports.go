package search

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// Storage persiste las listas de presets y búsquedas recientes como
// documentos JSON bajo dos claves conocidas de un almacén clave-valor
// durable. Se carga una vez al construir el Store y se reescribe en cada
// operación que muta.
type Storage interface {
	LoadPresets() ([]entity.FilterPreset, error)
	SavePresets(presets []entity.FilterPreset) error
	LoadRecents() ([]entity.RecentSearch, error)
	SaveRecents(recents []entity.RecentSearch) error
}
