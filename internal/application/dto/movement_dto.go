package dto

import (
	"time"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// CreateTransferRequest body para POST /api/inventory/transfers.
// Status opcional: draft (flujo multi-paso, por defecto) o completed
// (traslado de un solo paso).
type CreateTransferRequest struct {
	ProductID    string `json:"product_id"`
	Quantity     int    `json:"quantity"`
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`
	Status       string `json:"status,omitempty"`
	BatchNumber  string `json:"batch_number,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// MovementFilterRequest query params del listado de movimientos.
type MovementFilterRequest struct {
	ProductID    string   `query:"product_id"`
	FromLocation string   `query:"from_location"`
	ToLocation   string   `query:"to_location"`
	UserID       string   `query:"user_id"`
	Notes        string   `query:"notes"`
	Status       []string `query:"status"`
	QuantityMin  *int     `query:"quantity_min"`
	QuantityMax  *int     `query:"quantity_max"`
	DateFrom     string   `query:"date_from"` // dd.mm.yyyy
	DateTo       string   `query:"date_to"`   // dd.mm.yyyy
}

// ToFilter convierte el request al filtro de dominio.
func (r MovementFilterRequest) ToFilter() *entity.MovementFilter {
	return &entity.MovementFilter{
		ProductID:    r.ProductID,
		FromLocation: r.FromLocation,
		ToLocation:   r.ToLocation,
		UserID:       r.UserID,
		Notes:        r.Notes,
		Status:       r.Status,
		QuantityMin:  r.QuantityMin,
		QuantityMax:  r.QuantityMax,
		DateFrom:     r.DateFrom,
		DateTo:       r.DateTo,
	}
}

// MovementResponse representación de un registro de movimiento.
type MovementResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	Quantity     int       `json:"quantity"`
	FromLocation string    `json:"from_location"`
	ToLocation   string    `json:"to_location"`
	Status       string    `json:"status"`
	BatchNumber  string    `json:"batch_number,omitempty"`
	UserID       string    `json:"user_id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	Notes        string    `json:"notes,omitempty"`
}

// MovementGroupResponse vista agregada de un lote para el listado:
// el representante más el estado con dominancia draft.
type MovementGroupResponse struct {
	Representative MovementResponse `json:"representative"`
	GroupedCount   int              `json:"grouped_count"`
	IsGrouped      bool             `json:"is_grouped"`
	Status         string           `json:"status"`
}

// BatchItemResponse línea editable de un lote (deduplicada).
type BatchItemResponse struct {
	ProductID    string `json:"product_id"`
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`
	Quantity     int    `json:"quantity"`
	Notes        string `json:"notes,omitempty"`
}

// ToMovementResponse mapea la entidad al DTO.
func ToMovementResponse(m *entity.MovementRecord) MovementResponse {
	return MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		Quantity:     m.Quantity,
		FromLocation: m.FromLocation,
		ToLocation:   m.ToLocation,
		Status:       m.Status,
		BatchNumber:  m.BatchNumber,
		UserID:       m.UserID,
		Timestamp:    m.Timestamp,
		Notes:        m.Notes,
	}
}
