package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL
// (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, product_id, quantity, from_location, to_location, status, batch_number, user_id, ts, notes`

// Create persiste un registro de movimiento.
func (r *MovementRepo) Create(m *entity.MovementRecord) error {
	if m.ID == "" {
		// ID de respaldo generado localmente ante datos sin identificador.
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	batchNumber := (*string)(nil)
	if m.BatchNumber != "" {
		batchNumber = &m.BatchNumber
	}
	userID := (*string)(nil)
	if m.UserID != "" {
		userID = &m.UserID
	}
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.Quantity, m.FromLocation, m.ToLocation,
		m.Status, batchNumber, userID, m.Timestamp, m.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID (nil si no existe).
func (r *MovementRepo) GetByID(id string) (*entity.MovementRecord, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// ListAll devuelve todos los movimientos, más recientes primero.
func (r *MovementRepo) ListAll() ([]*entity.MovementRecord, error) {
	query := `SELECT ` + movementColumns + ` FROM movements ORDER BY ts DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListByBatch devuelve los miembros de un lote: batch_number coincidente o,
// como fallback, el registro sin agrupar cuyo ID es la clave.
func (r *MovementRepo) ListByBatch(batchKey string) ([]*entity.MovementRecord, error) {
	query := `
		SELECT ` + movementColumns + ` FROM movements
		WHERE batch_number = $1 OR (batch_number IS NULL AND id = $1)
		ORDER BY ts`
	rows, err := r.q.Query(context.Background(), query, batchKey)
	if err != nil {
		return nil, fmt.Errorf("list batch movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// UpdateStatus transiciona el estado de un movimiento.
func (r *MovementRepo) UpdateStatus(id, status string) error {
	query := `UPDATE movements SET status = $2 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update movement status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un movimiento por ID.
func (r *MovementRepo) Delete(id string) error {
	query := `DELETE FROM movements WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanMovement(row pgx.Row) (*entity.MovementRecord, error) {
	var m entity.MovementRecord
	var batchNumber, userID, notes *string
	err := row.Scan(
		&m.ID, &m.ProductID, &m.Quantity, &m.FromLocation, &m.ToLocation,
		&m.Status, &batchNumber, &userID, &m.Timestamp, &notes,
	)
	if err != nil {
		return nil, err
	}
	if batchNumber != nil {
		m.BatchNumber = *batchNumber
	}
	if userID != nil {
		m.UserID = *userID
	}
	if notes != nil {
		m.Notes = *notes
	}
	return &m, nil
}

func scanMovements(rows pgx.Rows) ([]*entity.MovementRecord, error) {
	var movements []*entity.MovementRecord
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
