package filter

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// ActiveFieldCount cuenta los campos activos (no vacíos) del snapshot según
// su categoría. Un string vacío, un slice vacío o un puntero nil cuentan
// como inactivos; un slice no vacío cuenta como un solo campo sin importar
// cuántos elementos tenga.
func ActiveFieldCount(s entity.FilterSnapshot) int {
	switch s.Category {
	case entity.FilterCategoryProducts:
		return ActiveProductFields(s.Products)
	case entity.FilterCategoryMovements:
		return ActiveMovementFields(s.Movements)
	case entity.FilterCategoryClients:
		return ActiveClientFields(s.Clients)
	case entity.FilterCategoryFinancial:
		return ActiveFinancialFields(s.Financial)
	}
	return 0
}

// ActiveProductFields cuenta los campos activos del filtro de productos.
func ActiveProductFields(f *entity.ProductFilter) int {
	if f == nil {
		return 0
	}
	return countStrings(f.Name, f.SKU, f.Category, f.Supplier, f.Location, f.DateFrom, f.DateTo) +
		countDecimals(f.PriceMin, f.PriceMax) +
		countInts(f.StockMin, f.StockMax) +
		countSlice(f.StockStatus)
}

// ActiveMovementFields cuenta los campos activos del filtro de movimientos.
func ActiveMovementFields(f *entity.MovementFilter) int {
	if f == nil {
		return 0
	}
	return countStrings(f.ProductID, f.FromLocation, f.ToLocation, f.UserID, f.Notes, f.DateFrom, f.DateTo) +
		countInts(f.QuantityMin, f.QuantityMax) +
		countSlice(f.Status)
}

// ActiveClientFields cuenta los campos activos del filtro de clientes.
func ActiveClientFields(f *entity.ClientFilter) int {
	if f == nil {
		return 0
	}
	return countStrings(f.Name, f.Email, f.Phone, f.DateFrom, f.DateTo) +
		countDecimals(f.TotalMin, f.TotalMax) +
		countSlice(f.Status)
}

// ActiveFinancialFields cuenta los campos activos del filtro financiero.
func ActiveFinancialFields(f *entity.FinancialFilter) int {
	if f == nil {
		return 0
	}
	return countStrings(f.Description, f.DateFrom, f.DateTo) +
		countDecimals(f.AmountMin, f.AmountMax) +
		countSlice(f.Type) +
		countSlice(f.PaymentMethod)
}

func countStrings(values ...string) int {
	n := 0
	for _, v := range values {
		if v != "" {
			n++
		}
	}
	return n
}

func countInts(values ...*int) int {
	n := 0
	for _, v := range values {
		if v != nil {
			n++
		}
	}
	return n
}

func countDecimals(values ...*decimal.Decimal) int {
	n := 0
	for _, v := range values {
		if v != nil {
			n++
		}
	}
	return n
}

func countSlice(v []string) int {
	if len(v) > 0 {
		return 1
	}
	return 0
}
