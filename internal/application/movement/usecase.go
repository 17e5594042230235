package movement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/ledger"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
	"github.com/tu-usuario/almacen-pro/pkg/logger"
)

// BatchEngine es el motor de lotes de movimientos: agrupa registros
// atómicos en traslados lógicos, posee la máquina de estados
// draft/pending -> completed y es el único componente autorizado a
// solicitar mutaciones del ledger (vía TxRunner al completar).
type BatchEngine struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	log          *logger.Logger
}

// NewBatchEngine construye el motor.
func NewBatchEngine(
	txRunner TxRunner,
	movementRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	log *logger.Logger,
) *BatchEngine {
	return &BatchEngine{
		txRunner:     txRunner,
		movementRepo: movementRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		log:          log,
	}
}

// TransferInput entrada para crear un traslado. Status lo decide el caller:
// draft para flujos multi-paso, completed para traslado de un solo paso.
// BatchNumber vacío deja el movimiento como lote unitario.
type TransferInput struct {
	ProductID    string
	Quantity     int
	FromLocation string
	ToLocation   string
	Status       string
	BatchNumber  string
	UserID       string
	Notes        string
}

// CreateTransfer valida y crea un registro de movimiento. Toda la
// validación ocurre antes de cualquier llamada al repositorio; un traslado
// creado como draft/pending nunca toca el ledger (neutralidad del borrador).
// Creado directamente como completed, el alta y su delta se aplican en la
// misma transacción.
func (e *BatchEngine) CreateTransfer(ctx context.Context, input TransferInput) (*entity.MovementRecord, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if input.FromLocation == "" || input.ToLocation == "" || input.FromLocation == input.ToLocation {
		return nil, domain.ErrSameLocation
	}
	status := input.Status
	if status == "" {
		status = entity.MovementStatusDraft
	}
	switch status {
	case entity.MovementStatusDraft, entity.MovementStatusPending, entity.MovementStatusCompleted:
	default:
		return nil, domain.ErrInvalidInput
	}

	product, err := e.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := e.resolveLocation(input.FromLocation); err != nil {
		return nil, err
	}
	if err := e.resolveLocation(input.ToLocation); err != nil {
		return nil, err
	}

	record := &entity.MovementRecord{
		ID:           uuid.New().String(),
		ProductID:    input.ProductID,
		Quantity:     input.Quantity,
		FromLocation: input.FromLocation,
		ToLocation:   input.ToLocation,
		Status:       status,
		BatchNumber:  input.BatchNumber,
		UserID:       input.UserID,
		Timestamp:    time.Now(),
		Notes:        input.Notes,
	}

	if status != entity.MovementStatusCompleted {
		// Borrador: solo el alta, sin efecto sobre el ledger.
		if err := e.movementRepo.Create(record); err != nil {
			return nil, err
		}
		return record, nil
	}

	// Traslado de un paso: alta + delta del ledger en una sola transacción.
	err = e.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := movRepo.Create(record); err != nil {
			return err
		}
		return applyDelta(movRepo, productRepo, record, false)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// CompleteBatch transiciona todos los miembros del lote a completed y
// aplica sus deltas al ledger, exactamente una vez cada uno, en una sola
// transacción (todo-o-nada). Reinvocar sobre un lote ya completado es un
// no-op, no un error (idempotente).
func (e *BatchEngine) CompleteBatch(ctx context.Context, batchID string) error {
	return e.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		members, err := movRepo.ListByBatch(batchID)
		if err != nil {
			return err
		}
		if len(members) == 0 {
			return domain.ErrNotFound
		}
		for _, m := range members {
			if m.IsCompleted() {
				continue // miembro ya aplicado, se omite
			}
			if err := applyDelta(movRepo, productRepo, m, true); err != nil {
				return err
			}
		}
		return nil
	})
}

// applyDelta aplica el delta de un movimiento al desglose por ubicación del
// producto (con bloqueo de fila) y, si transition es true, marca el
// registro como completed.
func applyDelta(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	m *entity.MovementRecord,
	transition bool,
) error {
	product, err := productRepo.GetByIDForUpdate(m.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := ledger.ApplyTransfer(product, m.FromLocation, m.ToLocation, m.Quantity); err != nil {
		return err
	}
	if err := productRepo.UpdateStockBreakdown(product.ID, product.LocationStock); err != nil {
		return err
	}
	if transition {
		if err := movRepo.UpdateStatus(m.ID, entity.MovementStatusCompleted); err != nil {
			return err
		}
		m.Status = entity.MovementStatusCompleted
	}
	return nil
}

// DeleteRecord elimina un registro individual en cualquier estado.
// Borrar un borrador no toca el ledger (nunca se aplicó). Borrar un
// registro completado NO revierte su efecto sobre el ledger: el desglose
// resultante se conserva y la eliminación queda registrada en el log.
func (e *BatchEngine) DeleteRecord(recordID string) error {
	record, err := e.movementRepo.GetByID(recordID)
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrNotFound
	}
	if record.IsCompleted() {
		e.log.Warn().
			Str("movement_id", recordID).
			Str("from", record.FromLocation).
			Str("to", record.ToLocation).
			Int("quantity", record.Quantity).
			Msg("eliminando movimiento completado sin revertir el ledger")
	}
	return e.movementRepo.Delete(recordID)
}

// resolveLocation verifica que la ubicación exista en el snapshot.
func (e *BatchEngine) resolveLocation(code string) error {
	loc, err := e.locationRepo.GetByCode(code)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.ErrUnknownLocation
	}
	return nil
}
