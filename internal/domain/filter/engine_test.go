package filter_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/filter"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func intPtr(n int) *int { return &n }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func laptop(precio string, stock int) *entity.Product {
	return &entity.Product{
		ID:           "prod-1",
		SKU:          "LPT-001",
		Name:         "Laptop Gamer 15",
		Category:     "cat-9",
		CategoryName: "Laptops",
		Supplier:     "sup-3",
		SupplierName: "TecnoImport",
		Stock:        stock,
		MinStock:     2,
		Location:     "A-01",
		Price:        decimal.RequireFromString(precio),
		CreatedAt:    time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// MatchesProduct
// ──────────────────────────────────────────────────────────────────────────────

// TestMatchesProduct_FiltroVacioPasaTodo verifica que un filtro nil o sin
// campos activos acepta cualquier producto, y que un producto nil nunca
// coincide.
func TestMatchesProduct_FiltroVacioPasaTodo(t *testing.T) {
	p := laptop("1500", 10)

	assert.True(t, filter.MatchesProduct(p, nil))
	assert.True(t, filter.MatchesProduct(p, &entity.ProductFilter{}))
	assert.False(t, filter.MatchesProduct(nil, nil))
}

// TestMatchesProduct_ComposicionAND verifica que todos los campos activos
// deben coincidir a la vez: precio mínimo 1000 y categoría "laptops".
func TestMatchesProduct_ComposicionAND(t *testing.T) {
	f := &entity.ProductFilter{
		PriceMin: decPtr("1000"),
		Category: "laptops",
	}

	assert.True(t, filter.MatchesProduct(laptop("1500", 10), f),
		"cumple precio y categoría")
	assert.False(t, filter.MatchesProduct(laptop("800", 10), f),
		"falla el precio aunque la categoría coincida")

	barato := laptop("1500", 10)
	barato.Category = "cat-2"
	barato.CategoryName = "Accesorios"
	assert.False(t, filter.MatchesProduct(barato, f),
		"falla la categoría aunque el precio coincida")
}

// TestMatchesProduct_TextoInsensible verifica la contención de texto sin
// distinguir mayúsculas.
func TestMatchesProduct_TextoInsensible(t *testing.T) {
	p := laptop("1500", 10)

	assert.True(t, filter.MatchesProduct(p, &entity.ProductFilter{Name: "gamer"}))
	assert.True(t, filter.MatchesProduct(p, &entity.ProductFilter{Name: "LAPTOP"}))
	assert.False(t, filter.MatchesProduct(p, &entity.ProductFilter{Name: "tablet"}))
}

// TestMatchesProduct_CategoriaPorIDoNombre verifica que el filtro de
// categoría coincide tanto por ID exacto como por contención del nombre.
func TestMatchesProduct_CategoriaPorIDoNombre(t *testing.T) {
	p := laptop("1500", 10)

	assert.True(t, filter.MatchesProduct(p, &entity.ProductFilter{Category: "cat-9"}), "ID exacto")
	assert.True(t, filter.MatchesProduct(p, &entity.ProductFilter{Category: "lapto"}), "contención del nombre")
	assert.False(t, filter.MatchesProduct(p, &entity.ProductFilter{Category: "monitores"}))
}

// TestMatchesProduct_RangosOpcionales verifica que cada límite de rango es
// opcional por separado.
func TestMatchesProduct_RangosOpcionales(t *testing.T) {
	p := laptop("1500", 10)

	assert.True(t, filter.MatchesProduct(p, &entity.ProductFilter{StockMin: intPtr(5)}))
	assert.False(t, filter.MatchesProduct(p, &entity.ProductFilter{StockMin: intPtr(11)}))
	assert.True(t, filter.MatchesProduct(p, &entity.ProductFilter{StockMax: intPtr(10)}), "límites inclusivos")
	assert.False(t, filter.MatchesProduct(p, &entity.ProductFilter{PriceMax: decPtr("1499.99")}))
}

// TestMatchesProduct_EstadoDeStock verifica la multi-selección de estados
// derivados.
func TestMatchesProduct_EstadoDeStock(t *testing.T) {
	enStock := laptop("1500", 10)
	agotado := laptop("1500", 0)

	f := &entity.ProductFilter{StockStatus: []string{"low_stock", "out_of_stock"}}
	assert.False(t, filter.MatchesProduct(enStock, f))
	assert.True(t, filter.MatchesProduct(agotado, f))
}

// ──────────────────────────────────────────────────────────────────────────────
// Rangos de fecha dd.mm.yyyy
// ──────────────────────────────────────────────────────────────────────────────

// TestMatchesProduct_RangoDeFechas verifica límites dd.mm.yyyy inclusivos
// en ambos extremos (el límite superior cubre su día completo).
func TestMatchesProduct_RangoDeFechas(t *testing.T) {
	p := laptop("1500", 10) // creado el 15.02.2026 a las 10:00

	assert.True(t, filter.MatchesProduct(p, &entity.ProductFilter{
		DateFrom: "01.02.2026", DateTo: "28.02.2026",
	}))
	assert.True(t, filter.MatchesProduct(p, &entity.ProductFilter{DateTo: "15.02.2026"}),
		"el día del límite superior es inclusivo aunque haya hora")
	assert.True(t, filter.MatchesProduct(p, &entity.ProductFilter{DateFrom: "15.02.2026"}))
	assert.False(t, filter.MatchesProduct(p, &entity.ProductFilter{DateFrom: "16.02.2026"}))
	assert.False(t, filter.MatchesProduct(p, &entity.ProductFilter{DateTo: "14.02.2026"}))
}

// TestMatchesProduct_FechaMalformada verifica que un límite no parseable se
// trata como ausente en lugar de rechazar todos los registros.
func TestMatchesProduct_FechaMalformada(t *testing.T) {
	p := laptop("1500", 10)

	assert.True(t, filter.MatchesProduct(p, &entity.ProductFilter{DateFrom: "2026-02-01"}),
		"formato ISO no soportado: límite ignorado")
	assert.True(t, filter.MatchesProduct(p, &entity.ProductFilter{DateFrom: "basura"}))
}

// ──────────────────────────────────────────────────────────────────────────────
// MatchesMovement / MatchesClient / MatchesFinancial
// ──────────────────────────────────────────────────────────────────────────────

func TestMatchesMovement(t *testing.T) {
	m := &entity.MovementRecord{
		ID:           "m1",
		ProductID:    "prod-1",
		Quantity:     5,
		FromLocation: "A-01",
		ToLocation:   "B-02",
		Status:       entity.MovementStatusDraft,
		UserID:       "user-7",
		Timestamp:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Notes:        "Reposición urgente",
	}

	assert.True(t, filter.MatchesMovement(m, nil))
	assert.True(t, filter.MatchesMovement(m, &entity.MovementFilter{
		FromLocation: "a-01",
		Status:       []string{"draft"},
		QuantityMin:  intPtr(5),
	}))
	assert.False(t, filter.MatchesMovement(m, &entity.MovementFilter{Status: []string{"completed"}}))
	assert.True(t, filter.MatchesMovement(m, &entity.MovementFilter{Notes: "urgente"}))
	assert.False(t, filter.MatchesMovement(nil, nil))
}

func TestMatchesClient(t *testing.T) {
	c := &entity.Client{
		ID:             "cli-1",
		Name:           "Distribuidora Norte",
		Email:          "compras@norte.example",
		Status:         "active",
		TotalPurchases: decimal.RequireFromString("25000"),
		CreatedAt:      time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, filter.MatchesClient(c, &entity.ClientFilter{
		Name:     "norte",
		TotalMin: decPtr("10000"),
		Status:   []string{"active"},
	}))
	assert.False(t, filter.MatchesClient(c, &entity.ClientFilter{TotalMax: decPtr("24999")}))
}

func TestMatchesFinancial(t *testing.T) {
	e := &entity.FinancialEntry{
		ID:            "fin-1",
		Type:          entity.FinancialTypeExpense,
		Description:   "Compra de estanterías",
		Amount:        decimal.RequireFromString("1200.50"),
		PaymentMethod: "transfer",
		Date:          time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, filter.MatchesFinancial(e, &entity.FinancialFilter{
		Type:      []string{"expense"},
		AmountMin: decPtr("1000"),
	}))
	assert.False(t, filter.MatchesFinancial(e, &entity.FinancialFilter{
		PaymentMethod: []string{"cash"},
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// ActiveFieldCount
// ──────────────────────────────────────────────────────────────────────────────

// TestActiveFieldCount verifica el conteo de campos activos del snapshot:
// vacío cuenta 0, cada campo poblado cuenta 1 y un slice no vacío cuenta 1
// sin importar sus elementos.
func TestActiveFieldCount(t *testing.T) {
	assert.Equal(t, 0, filter.ActiveFieldCount(entity.FilterSnapshot{
		Category: entity.FilterCategoryProducts,
		Products: &entity.ProductFilter{},
	}))

	assert.Equal(t, 1, filter.ActiveFieldCount(entity.FilterSnapshot{
		Category: entity.FilterCategoryProducts,
		Products: &entity.ProductFilter{Name: "laptop"},
	}))

	assert.Equal(t, 0, filter.ActiveFieldCount(entity.FilterSnapshot{
		Category: entity.FilterCategoryProducts,
		Products: &entity.ProductFilter{StockStatus: []string{}},
	}), "un slice vacío no cuenta como activo")

	assert.Equal(t, 1, filter.ActiveFieldCount(entity.FilterSnapshot{
		Category: entity.FilterCategoryProducts,
		Products: &entity.ProductFilter{StockStatus: []string{"in_stock", "low_stock"}},
	}), "un slice con varios elementos cuenta una sola vez")

	assert.Equal(t, 3, filter.ActiveFieldCount(entity.FilterSnapshot{
		Category: entity.FilterCategoryMovements,
		Movements: &entity.MovementFilter{
			FromLocation: "A-01",
			QuantityMin:  intPtr(1),
			Status:       []string{"draft"},
		},
	}))

	assert.Equal(t, 0, filter.ActiveFieldCount(entity.FilterSnapshot{
		Category: entity.FilterCategoryClients,
	}), "snapshot sin filtro poblado cuenta 0")

	assert.Equal(t, 2, filter.ActiveFieldCount(entity.FilterSnapshot{
		Category: entity.FilterCategoryFinancial,
		Financial: &entity.FinancialFilter{
			Type:      []string{"income"},
			AmountMax: decPtr("500"),
		},
	}))
}
