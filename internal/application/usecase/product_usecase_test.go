package usecase_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) ListAll() ([]*entity.Product, error) { return r.products, nil }

func (r *fakeProductRepo) ListCategories() ([]string, error) {
	return []string{"Laptops", "Monitores"}, nil
}

func (r *fakeProductRepo) UpdateStockBreakdown(string, entity.LocationStock) error { return nil }

type fakeLocationRepo struct {
	locations []*entity.WarehouseLocation
}

func (r *fakeLocationRepo) GetByCode(code string) (*entity.WarehouseLocation, error) {
	for _, loc := range r.locations {
		if loc.Code == code {
			return loc, nil
		}
	}
	return nil, nil
}

func (r *fakeLocationRepo) ListAll() ([]*entity.WarehouseLocation, error) {
	return r.locations, nil
}

func catalogo(n int) []*entity.Product {
	out := make([]*entity.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &entity.Product{
			ID:       fmt.Sprintf("prod-%02d", i),
			SKU:      fmt.Sprintf("SKU-%02d", i),
			Name:     fmt.Sprintf("Producto %02d", i),
			Stock:    10,
			Location: "A-01",
			Price:    decimal.NewFromInt(int64(100 + i)),
		})
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// ProductUseCase
// ──────────────────────────────────────────────────────────────────────────────

// TestProductList_Paginacion verifica el filtrado en memoria y la
// paginación con total de coincidencias.
func TestProductList_Paginacion(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{products: catalogo(25)})

	resp, err := uc.List(nil, dto.PageRequest{Limit: 10, Offset: 20})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 5, "última página parcial")
	assert.Equal(t, 25, resp.Page.Total)
	assert.Equal(t, "prod-20", resp.Items[0].ID)
}

// TestProductList_OffsetFueraDeRango verifica que un offset más allá del
// total devuelve página vacía, no un panic por slice fuera de rango.
func TestProductList_OffsetFueraDeRango(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{products: catalogo(3)})

	resp, err := uc.List(nil, dto.PageRequest{Limit: 10, Offset: 100})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 3, resp.Page.Total)
}

// TestProductList_FiltroReduceElTotal verifica que Total refleja las
// coincidencias del filtro, no el catálogo completo.
func TestProductList_FiltroReduceElTotal(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{products: catalogo(25)})

	resp, err := uc.List(&entity.ProductFilter{Name: "producto 0"}, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Page.Total, "prod-00..prod-09 contienen 'Producto 0'")
	assert.Len(t, resp.Items, 10)
}

// TestProductGetByID_IncluyeDerivados verifica que la respuesta incluye los
// campos derivados (estado de stock y origen por defecto).
func TestProductGetByID_IncluyeDerivados(t *testing.T) {
	producto := &entity.Product{
		ID:            "prod-1",
		Stock:         1,
		MinStock:      5,
		Location:      "A-01",
		LocationStock: entity.LocationStock{"A-01": 1},
	}
	uc := usecase.NewProductUseCase(&fakeProductRepo{products: []*entity.Product{producto}})

	resp, err := uc.GetByID("prod-1")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, entity.StockStatusLow, resp.StockStatus)
	assert.Equal(t, "A-01", resp.DefaultSourceLocation)

	ausente, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, ausente)
}

// ──────────────────────────────────────────────────────────────────────────────
// LocationUseCase
// ──────────────────────────────────────────────────────────────────────────────

// TestLocationList_HechosDerivados verifica que ocupación y utilización se
// derivan del snapshot de productos, incluyendo productos sin desglose.
func TestLocationList_HechosDerivados(t *testing.T) {
	locations := &fakeLocationRepo{locations: []*entity.WarehouseLocation{
		{Code: "A-01", Name: "Estante A1", Capacity: 20},
		{Code: "B-02", Name: "Estante B2", Capacity: 0},
	}}
	products := &fakeProductRepo{products: []*entity.Product{
		{ID: "p1", Stock: 10, Location: "A-01", LocationStock: entity.LocationStock{"A-01": 7, "B-02": 3}},
		{ID: "p2", Stock: 5, Location: "A-01"},
	}}
	uc := usecase.NewLocationUseCase(locations, products)

	resp, err := uc.List()
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)

	assert.Equal(t, 12, resp.Items[0].Occupancy)
	assert.InDelta(t, 60.0, resp.Items[0].Utilization, 0.0001)
	assert.Equal(t, 3, resp.Items[1].Occupancy)
	assert.Equal(t, 0.0, resp.Items[1].Utilization, "capacidad 0 no divide")
}
