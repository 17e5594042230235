package usecase

import (
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain/ledger"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// LocationUseCase listado de ubicaciones con sus hechos derivados
// (ocupación y utilización calculadas por el ledger, nunca almacenadas).
type LocationUseCase struct {
	locationRepo repository.LocationRepository
	productRepo  repository.ProductRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(locationRepo repository.LocationRepository, productRepo repository.ProductRepository) *LocationUseCase {
	return &LocationUseCase{locationRepo: locationRepo, productRepo: productRepo}
}

// List devuelve todas las ubicaciones con ocupación y utilización derivadas
// del snapshot de productos actual.
func (uc *LocationUseCase) List() (*dto.LocationListResponse, error) {
	locations, err := uc.locationRepo.ListAll()
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		items = append(items, dto.LocationResponse{
			Code:        loc.Code,
			Name:        loc.Name,
			Capacity:    loc.Capacity,
			Zone:        loc.Zone,
			Level:       loc.Level,
			Section:     loc.Section,
			Occupancy:   ledger.Occupancy(loc.Code, products),
			Utilization: ledger.Utilization(loc, products),
		})
	}
	return &dto.LocationListResponse{Items: items}, nil
}
