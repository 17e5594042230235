package entity

// WarehouseLocation representa una ubicación física del almacén (estante,
// rack o zona) identificada por su código único. Capacity es la capacidad
// nominal en unidades; la ocupación se deriva, no se almacena (ver ledger).
type WarehouseLocation struct {
	Code     string // único, ej. "A-01-02"
	Name     string
	Capacity int // >= 0; 0 significa sin capacidad definida
	Zone     string
	Level    string
	Section  string
}
