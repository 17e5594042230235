package entity

import "time"

// FilterPreset es una configuración de filtros con nombre, congelada en el
// momento de guardarla. Propiedad del núcleo: se persiste en el almacén
// clave-valor bajo una clave conocida.
type FilterPreset struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Category  FilterCategory `json:"category"`
	Snapshot  FilterSnapshot `json:"snapshot"`
	CreatedAt time.Time      `json:"created_at"`
}

// RecentSearch es una entrada del historial de búsqueda, acotado a las 10
// más recientes (la más antigua se desaloja primero).
type RecentSearch struct {
	ID        string         `json:"id"`
	Category  FilterCategory `json:"category"`
	Query     string         `json:"query"`
	Snapshot  FilterSnapshot `json:"snapshot"`
	Timestamp time.Time      `json:"timestamp"`
}
