package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock derivados (para el filtro multi-selección stock_status).
const (
	StockStatusIn  = "in_stock"
	StockStatusLow = "low_stock"
	StockStatusOut = "out_of_stock"
)

// Product representa un producto o SKU del inventario, espejo local del
// almacén de datos externo. Stock es el total; LocationStock desglosa por
// ubicación. Invariante tras cada traslado completado:
// sum(LocationStock) == Stock. Si LocationStock está vacío, Location
// (ubicación primaria) contiene todo el Stock.
type Product struct {
	ID             string
	SKU            string
	Name           string
	Category       string // ID de categoría
	CategoryName   string // nombre legible (puede venir vacío del backend)
	Supplier       string // ID de proveedor
	SupplierName   string
	Stock          int
	MinStock       int
	ReservedStock  int
	AvailableStock int
	Location       string // código de ubicación primaria
	LocationStock  LocationStock
	Price          decimal.Decimal
	Cost           decimal.Decimal
	CreatedAt      time.Time
}

// StockStatus deriva el estado de stock contra el mínimo configurado.
func (p *Product) StockStatus() string {
	switch {
	case p.Stock <= 0:
		return StockStatusOut
	case p.Stock <= p.MinStock:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// LocationStock es el mapeo canónico código-de-ubicación -> cantidad (>= 0).
// El backend histórico lo serializa de formas heterogéneas (número, string
// numérico u objeto {quantity: n}); UnmarshalJSON las normaliza todas y
// degrada valores malformados a 0 en lugar de fallar.
type LocationStock map[string]int

// UnmarshalJSON tolera representaciones heterogéneas por entrada.
// Valores no numéricos cuentan como 0; negativos se recortan a 0.
func (ls *LocationStock) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// No es un objeto: se trata como ausente, nunca se propaga el error.
		*ls = nil
		return nil
	}
	out := make(LocationStock, len(raw))
	for code, v := range raw {
		out[code] = coerceQuantity(v)
	}
	*ls = out
	return nil
}

func coerceQuantity(v json.RawMessage) int {
	var n float64
	if err := json.Unmarshal(v, &n); err == nil {
		return clipNonNegative(int(n))
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		var f float64
		if err := json.Unmarshal([]byte(s), &f); err == nil {
			return clipNonNegative(int(f))
		}
		return 0
	}
	// Forma objeto {quantity: n} usada por versiones antiguas del backend.
	var obj struct {
		Quantity float64 `json:"quantity"`
	}
	if err := json.Unmarshal(v, &obj); err == nil {
		return clipNonNegative(int(obj.Quantity))
	}
	return 0
}

func clipNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Sum devuelve la suma de todas las cantidades del mapeo.
func (ls LocationStock) Sum() int {
	total := 0
	for _, q := range ls {
		total += q
	}
	return total
}

// Clone devuelve una copia independiente del mapeo (nil si está vacío).
func (ls LocationStock) Clone() LocationStock {
	if len(ls) == 0 {
		return nil
	}
	out := make(LocationStock, len(ls))
	for code, q := range ls {
		out[code] = q
	}
	return out
}
