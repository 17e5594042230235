package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// ProductRepository define el puerto de lectura del catálogo de productos
// y de escritura del desglose de stock por ubicación (DIP). El catálogo es
// propiedad del almacén de datos externo; el núcleo solo escribe el
// desglose al completar traslados.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila del producto (SELECT FOR UPDATE);
	// solo tiene sentido dentro de una transacción.
	GetByIDForUpdate(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	ListAll() ([]*entity.Product, error)
	ListCategories() ([]string, error)
	// UpdateStockBreakdown persiste el desglose por ubicación tras aplicar
	// un delta de traslado.
	UpdateStockBreakdown(productID string, breakdown entity.LocationStock) error
}
