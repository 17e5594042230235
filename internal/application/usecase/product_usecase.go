package usecase

import (
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/filter"
	"github.com/tu-usuario/almacen-pro/internal/domain/ledger"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// ProductUseCase listado y búsqueda de productos. El catálogo es de solo
// lectura para el núcleo (lo posee el almacén de datos externo); el filtro
// se evalúa sobre el snapshot en memoria con el motor de filtros.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List aplica el filtro de la sección de productos y pagina el resultado.
func (uc *ProductUseCase) List(f *entity.ProductFilter, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	matched := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if filter.MatchesProduct(p, f) {
			matched = append(matched, p)
		}
	}
	total := len(matched)
	start := page.Offset
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}
	items := make([]dto.ProductResponse, 0, end-start)
	for _, p := range matched[start:end] {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// GetByID obtiene un producto por ID (nil si no existe).
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Categories devuelve las categorías conocidas del catálogo.
func (uc *ProductUseCase) Categories() ([]string, error) {
	return uc.repo.ListCategories()
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:                    p.ID,
		SKU:                   p.SKU,
		Name:                  p.Name,
		Category:              p.Category,
		CategoryName:          p.CategoryName,
		Supplier:              p.Supplier,
		SupplierName:          p.SupplierName,
		Stock:                 p.Stock,
		MinStock:              p.MinStock,
		ReservedStock:         p.ReservedStock,
		AvailableStock:        p.AvailableStock,
		StockStatus:           p.StockStatus(),
		Location:              p.Location,
		LocationStock:         p.LocationStock,
		DefaultSourceLocation: ledger.DefaultSourceLocation(p),
		Price:                 p.Price,
		CreatedAt:             p.CreatedAt,
	}
}
