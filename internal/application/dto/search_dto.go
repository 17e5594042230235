package dto

import (
	"time"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// ApplyFilterRequest body para reemplazar la configuración activa de una
// categoría (unión etiquetada: solo el campo de la categoría viene poblado).
type ApplyFilterRequest struct {
	Snapshot entity.FilterSnapshot `json:"snapshot"`
}

// SavePresetRequest body para guardar la configuración actual como preset.
type SavePresetRequest struct {
	Name     string                `json:"name"`
	Category entity.FilterCategory `json:"category"`
}

// PresetResponse representación de un preset.
type PresetResponse struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Category    entity.FilterCategory `json:"category"`
	Snapshot    entity.FilterSnapshot `json:"snapshot"`
	ActiveCount int                   `json:"active_count"`
	CreatedAt   time.Time             `json:"created_at"`
}

// RecordSearchRequest body para registrar una búsqueda reciente.
type RecordSearchRequest struct {
	Category entity.FilterCategory `json:"category"`
	Query    string                `json:"query"`
}

// RecentSearchResponse entrada del historial de búsqueda.
type RecentSearchResponse struct {
	ID        string                `json:"id"`
	Category  entity.FilterCategory `json:"category"`
	Query     string                `json:"query"`
	Snapshot  entity.FilterSnapshot `json:"snapshot"`
	Timestamp time.Time             `json:"timestamp"`
}
