package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación de LocationRepository sobre PostgreSQL
// (usable con pool o tx). Solo lectura: la ocupación se deriva, nunca se
// almacena.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// GetByCode obtiene una ubicación por código (nil si no existe).
func (r *LocationRepo) GetByCode(code string) (*entity.WarehouseLocation, error) {
	query := `
		SELECT code, name, capacity, zone, level, section
		FROM warehouse_locations WHERE code = $1`
	var loc entity.WarehouseLocation
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&loc.Code, &loc.Name, &loc.Capacity, &loc.Zone, &loc.Level, &loc.Section,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &loc, nil
}

// ListAll devuelve todas las ubicaciones ordenadas por código.
func (r *LocationRepo) ListAll() ([]*entity.WarehouseLocation, error) {
	query := `
		SELECT code, name, capacity, zone, level, section
		FROM warehouse_locations ORDER BY code`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var locations []*entity.WarehouseLocation
	for rows.Next() {
		var loc entity.WarehouseLocation
		if err := rows.Scan(&loc.Code, &loc.Name, &loc.Capacity, &loc.Zone, &loc.Level, &loc.Section); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, &loc)
	}
	return locations, rows.Err()
}
