package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// ProductFilterRequest query params del listado de productos; se traduce a
// entity.ProductFilter (un campo vacío no restringe).
type ProductFilterRequest struct {
	Name        string   `query:"name"`
	SKU         string   `query:"sku"`
	Category    string   `query:"category"`
	Supplier    string   `query:"supplier"`
	Location    string   `query:"location"`
	PriceMin    string   `query:"price_min"`
	PriceMax    string   `query:"price_max"`
	StockMin    *int     `query:"stock_min"`
	StockMax    *int     `query:"stock_max"`
	StockStatus []string `query:"stock_status"`
	DateFrom    string   `query:"date_from"` // dd.mm.yyyy
	DateTo      string   `query:"date_to"`   // dd.mm.yyyy
}

// ToFilter convierte el request al filtro de dominio. Montos no parseables
// se tratan como ausentes (nunca rechazan el request).
func (r ProductFilterRequest) ToFilter() *entity.ProductFilter {
	return &entity.ProductFilter{
		Name:        r.Name,
		SKU:         r.SKU,
		Category:    r.Category,
		Supplier:    r.Supplier,
		Location:    r.Location,
		PriceMin:    parseDecimal(r.PriceMin),
		PriceMax:    parseDecimal(r.PriceMax),
		StockMin:    r.StockMin,
		StockMax:    r.StockMax,
		StockStatus: r.StockStatus,
		DateFrom:    r.DateFrom,
		DateTo:      r.DateTo,
	}
}

func parseDecimal(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// ProductResponse representación de un producto en listados.
type ProductResponse struct {
	ID                    string               `json:"id"`
	SKU                   string               `json:"sku"`
	Name                  string               `json:"name"`
	Category              string               `json:"category"`
	CategoryName          string               `json:"category_name,omitempty"`
	Supplier              string               `json:"supplier"`
	SupplierName          string               `json:"supplier_name,omitempty"`
	Stock                 int                  `json:"stock"`
	MinStock              int                  `json:"min_stock"`
	ReservedStock         int                  `json:"reserved_stock"`
	AvailableStock        int                  `json:"available_stock"`
	StockStatus           string               `json:"stock_status"`
	Location              string               `json:"location"`
	LocationStock         entity.LocationStock `json:"location_stock,omitempty"`
	DefaultSourceLocation string               `json:"default_source_location,omitempty"`
	Price                 decimal.Decimal      `json:"price"`
	CreatedAt             time.Time            `json:"created_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
