package movement

import (
	"sort"
	"strings"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/filter"
)

// BatchItem es una línea editable de un lote: movimientos con el mismo
// (producto, origen, destino) deduplicados sumando cantidades y
// concatenando las notas distintas.
type BatchItem struct {
	ProductID    string
	FromLocation string
	ToLocation   string
	Quantity     int
	Notes        string
}

// EditBatch reconstruye la lista editable de un lote en borrador.
// Un lote ya completado es estructuralmente inmutable y se rechaza con
// ErrBatchCompleted (solo las notas admiten enmienda posterior, por una vía
// de parcheo ajena a este motor).
func (e *BatchEngine) EditBatch(batchID string) ([]BatchItem, error) {
	members, err := e.movementRepo.ListByBatch(batchID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, domain.ErrNotFound
	}
	if entity.BatchStatus(members) == entity.MovementStatusCompleted {
		return nil, domain.ErrBatchCompleted
	}
	return dedupItems(members), nil
}

// dedupItems agrupa miembros por (producto, origen, destino) preservando el
// orden de primera aparición.
func dedupItems(members []*entity.MovementRecord) []BatchItem {
	type key struct{ product, from, to string }
	index := make(map[key]int, len(members))
	items := make([]BatchItem, 0, len(members))
	for _, m := range members {
		k := key{m.ProductID, m.FromLocation, m.ToLocation}
		if i, ok := index[k]; ok {
			items[i].Quantity += m.Quantity
			items[i].Notes = joinDistinctNotes(items[i].Notes, m.Notes)
			continue
		}
		index[k] = len(items)
		items = append(items, BatchItem{
			ProductID:    m.ProductID,
			FromLocation: m.FromLocation,
			ToLocation:   m.ToLocation,
			Quantity:     m.Quantity,
			Notes:        m.Notes,
		})
	}
	return items
}

// joinDistinctNotes concatena notas omitiendo vacíos y duplicados exactos.
func joinDistinctNotes(existing, note string) string {
	if note == "" {
		return existing
	}
	if existing == "" {
		return note
	}
	for _, part := range strings.Split(existing, "; ") {
		if part == note {
			return existing
		}
	}
	return existing + "; " + note
}

// GroupForDisplay particiona registros por clave de lote para el listado.
// Ordenación: lotes draft/pending antes que los completados (el trabajo sin
// terminar va primero) y, dentro de cada banda, timestamp descendente del
// representante (el más reciente primero). Función pura.
func GroupForDisplay(records []*entity.MovementRecord) []*entity.MovementGroup {
	byBatch := make(map[string][]*entity.MovementRecord)
	order := make([]string, 0)
	for _, r := range records {
		key := r.BatchKey()
		if _, seen := byBatch[key]; !seen {
			order = append(order, key)
		}
		byBatch[key] = append(byBatch[key], r)
	}

	groups := make([]*entity.MovementGroup, 0, len(order))
	for _, key := range order {
		members := byBatch[key]
		groups = append(groups, &entity.MovementGroup{
			Representative: latestOf(members),
			Members:        members,
			GroupedCount:   len(members),
			IsGrouped:      len(members) > 1,
			Status:         entity.BatchStatus(members),
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		bi, bj := groups[i], groups[j]
		di := bi.Status != entity.MovementStatusCompleted
		dj := bj.Status != entity.MovementStatusCompleted
		if di != dj {
			return di
		}
		return bi.Representative.Timestamp.After(bj.Representative.Timestamp)
	})
	return groups
}

func latestOf(members []*entity.MovementRecord) *entity.MovementRecord {
	latest := members[0]
	for _, m := range members[1:] {
		if m.Timestamp.After(latest.Timestamp) {
			latest = m
		}
	}
	return latest
}

// ListGrouped obtiene todos los movimientos, aplica el filtro de la sección
// y devuelve la vista agrupada para el listado.
func (e *BatchEngine) ListGrouped(f *entity.MovementFilter) ([]*entity.MovementGroup, error) {
	records, err := e.movementRepo.ListAll()
	if err != nil {
		return nil, err
	}
	filtered := records[:0:0]
	for _, r := range records {
		if filter.MatchesMovement(r, f) {
			filtered = append(filtered, r)
		}
	}
	return GroupForDisplay(filtered), nil
}
