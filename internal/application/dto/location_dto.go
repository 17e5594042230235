package dto

// LocationResponse ubicación con sus hechos derivados de ocupación.
// Utilization es porcentaje (0 cuando la capacidad es 0).
type LocationResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Capacity    int     `json:"capacity"`
	Zone        string  `json:"zone,omitempty"`
	Level       string  `json:"level,omitempty"`
	Section     string  `json:"section,omitempty"`
	Occupancy   int     `json:"occupancy"`
	Utilization float64 `json:"utilization"`
}

// LocationListResponse listado de ubicaciones.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
}
