package entity

import "time"

// Estados de un registro de movimiento. draft y pending son previos a la
// aplicación al ledger; completed es terminal (nunca se vuelve a draft).
const (
	MovementStatusDraft     = "draft"
	MovementStatusPending   = "pending"
	MovementStatusCompleted = "completed"
)

// MovementRecord representa un movimiento atómico de stock entre dos
// ubicaciones. Quantity es siempre positiva (convención: cantidad
// trasladada). BatchNumber agrupa movimientos de un mismo traslado lógico;
// si está vacío, el movimiento es un lote unitario identificado por su
// propio ID.
type MovementRecord struct {
	ID           string
	ProductID    string
	Quantity     int // > 0
	FromLocation string
	ToLocation   string // debe diferir de FromLocation
	Status       string // draft, pending, completed
	BatchNumber  string // opcional
	UserID       string
	Timestamp    time.Time
	Notes        string
}

// BatchKey devuelve el identificador de lote: BatchNumber si existe,
// si no el ID propio (todo movimiento sin agrupar es un lote unitario).
func (m *MovementRecord) BatchKey() string {
	if m.BatchNumber != "" {
		return m.BatchNumber
	}
	return m.ID
}

// IsCompleted indica si el movimiento ya fue aplicado al ledger.
func (m *MovementRecord) IsCompleted() bool {
	return m.Status == MovementStatusCompleted
}

// MovementGroup es la vista agregada de un lote (derivada, no persistida).
// Status sigue la regla de dominancia draft: basta un miembro draft/pending
// para que el lote completo se muestre como draft.
type MovementGroup struct {
	Representative *MovementRecord
	Members        []*MovementRecord
	GroupedCount   int
	IsGrouped      bool
	Status         string
}

// BatchStatus aplica la regla de dominancia draft sobre un conjunto de
// miembros: draft si ALGUNO está en draft/pending, completed si no.
func BatchStatus(members []*MovementRecord) string {
	for _, m := range members {
		if !m.IsCompleted() {
			return MovementStatusDraft
		}
	}
	return MovementStatusCompleted
}
