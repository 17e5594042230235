package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// MovementRepository define el puerto de persistencia para registros de
// movimiento (DIP). ListByBatch resuelve la clave de lote con el fallback
// al ID propio: incluye los registros cuyo batch_number coincide y el
// registro sin batch_number cuyo ID coincide.
type MovementRepository interface {
	Create(movement *entity.MovementRecord) error
	GetByID(id string) (*entity.MovementRecord, error)
	ListAll() ([]*entity.MovementRecord, error)
	ListByBatch(batchKey string) ([]*entity.MovementRecord, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
}
