package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// LocationRepository define el puerto de lectura de ubicaciones del almacén (DIP).
type LocationRepository interface {
	GetByCode(code string) (*entity.WarehouseLocation, error)
	ListAll() ([]*entity.WarehouseLocation, error)
}
