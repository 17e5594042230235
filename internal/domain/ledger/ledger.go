package ledger

import (
	"sort"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// Funciones puras de derivación de stock por ubicación (servicio de dominio).
// Ninguna muta el snapshot salvo ApplyTransfer, que es la única primitiva de
// mutación y solo la invoca el motor de lotes al completar un traslado.

// QuantityAt devuelve la cantidad del producto en la ubicación dada.
// Si el producto desglosa por ubicación, se lee del mapeo; si no, la
// ubicación primaria contiene todo el stock. Nunca devuelve negativo.
func QuantityAt(p *entity.Product, locationCode string) int {
	if p == nil || locationCode == "" {
		return 0
	}
	if len(p.LocationStock) > 0 {
		q := p.LocationStock[locationCode]
		if q < 0 {
			return 0
		}
		return q
	}
	if p.Location == locationCode {
		if p.Stock < 0 {
			return 0
		}
		return p.Stock
	}
	return 0
}

// Occupancy devuelve la ocupación de una ubicación: suma de QuantityAt
// sobre todos los productos del snapshot.
func Occupancy(locationCode string, products []*entity.Product) int {
	total := 0
	for _, p := range products {
		total += QuantityAt(p, locationCode)
	}
	return total
}

// Utilization devuelve la utilización de la ubicación en porcentaje
// (ocupación / capacidad * 100). Capacidad 0 devuelve 0, nunca NaN/Inf.
func Utilization(loc *entity.WarehouseLocation, products []*entity.Product) float64 {
	if loc == nil || loc.Capacity <= 0 {
		return 0
	}
	return float64(Occupancy(loc.Code, products)) / float64(loc.Capacity) * 100
}

// DefaultSourceLocation devuelve la ubicación con mayor cantidad del
// producto, para prellenar el origen de un traslado nuevo. Empates se
// resuelven por orden lexicográfico del código (determinista). Sin desglose
// por ubicación cae a la ubicación primaria; devuelve "" si nada resuelve.
func DefaultSourceLocation(p *entity.Product) string {
	if p == nil {
		return ""
	}
	if len(p.LocationStock) == 0 {
		return p.Location
	}
	codes := make([]string, 0, len(p.LocationStock))
	for code := range p.LocationStock {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	best := ""
	bestQty := -1
	for _, code := range codes {
		if q := p.LocationStock[code]; q > bestQty {
			best = code
			bestQty = q
		}
	}
	if bestQty <= 0 {
		if p.Location != "" {
			return p.Location
		}
		return best
	}
	return best
}

// ApplyTransfer aplica el delta de un traslado completado al desglose por
// ubicación del producto, preservando la conservación:
// sum(LocationStock) == Stock antes y después. Si el producto no tenía
// desglose, se materializa {ubicación primaria: Stock} antes de aplicar.
// Si el origen no cubre la cantidad no se aplica nada (sin estados parciales).
func ApplyTransfer(p *entity.Product, from, to string, quantity int) error {
	if p == nil || quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if from == "" || to == "" || from == to {
		return domain.ErrSameLocation
	}
	if len(p.LocationStock) == 0 {
		p.LocationStock = entity.LocationStock{}
		if p.Location != "" && p.Stock > 0 {
			p.LocationStock[p.Location] = p.Stock
		}
	}
	if p.LocationStock[from] < quantity {
		return domain.ErrInsufficientStock
	}
	p.LocationStock[from] -= quantity
	if p.LocationStock[from] == 0 {
		delete(p.LocationStock, from)
	}
	p.LocationStock[to] += quantity
	return nil
}
