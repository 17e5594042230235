package filter

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// Motor de filtros compartido por los listados y la búsqueda avanzada.
// Cada Matches* evalúa AND sobre los campos activos del filtro; un campo
// vacío siempre coincide. Funciones puras, sin efectos secundarios.

// DateLayout es el formato de los límites de fecha de los filtros.
const DateLayout = "02.01.2006" // dd.mm.yyyy

// MatchesProduct evalúa un producto contra los filtros de su sección.
func MatchesProduct(p *entity.Product, f *entity.ProductFilter) bool {
	if p == nil {
		return false
	}
	if f == nil {
		return true
	}
	return matchText(p.Name, f.Name) &&
		matchText(p.SKU, f.SKU) &&
		matchIDOrName(p.Category, p.CategoryName, f.Category) &&
		matchIDOrName(p.Supplier, p.SupplierName, f.Supplier) &&
		matchText(p.Location, f.Location) &&
		matchDecimalRange(p.Price, f.PriceMin, f.PriceMax) &&
		matchIntRange(p.Stock, f.StockMin, f.StockMax) &&
		matchSet(p.StockStatus(), f.StockStatus) &&
		matchDateRange(p.CreatedAt, f.DateFrom, f.DateTo)
}

// MatchesMovement evalúa un movimiento contra los filtros de su sección.
func MatchesMovement(m *entity.MovementRecord, f *entity.MovementFilter) bool {
	if m == nil {
		return false
	}
	if f == nil {
		return true
	}
	return matchText(m.ProductID, f.ProductID) &&
		matchText(m.FromLocation, f.FromLocation) &&
		matchText(m.ToLocation, f.ToLocation) &&
		matchText(m.UserID, f.UserID) &&
		matchText(m.Notes, f.Notes) &&
		matchSet(m.Status, f.Status) &&
		matchIntRange(m.Quantity, f.QuantityMin, f.QuantityMax) &&
		matchDateRange(m.Timestamp, f.DateFrom, f.DateTo)
}

// MatchesClient evalúa un cliente contra los filtros de su sección.
func MatchesClient(c *entity.Client, f *entity.ClientFilter) bool {
	if c == nil {
		return false
	}
	if f == nil {
		return true
	}
	return matchText(c.Name, f.Name) &&
		matchText(c.Email, f.Email) &&
		matchText(c.Phone, f.Phone) &&
		matchSet(c.Status, f.Status) &&
		matchDecimalRange(c.TotalPurchases, f.TotalMin, f.TotalMax) &&
		matchDateRange(c.CreatedAt, f.DateFrom, f.DateTo)
}

// MatchesFinancial evalúa un asiento financiero contra los filtros de su sección.
func MatchesFinancial(e *entity.FinancialEntry, f *entity.FinancialFilter) bool {
	if e == nil {
		return false
	}
	if f == nil {
		return true
	}
	return matchText(e.Description, f.Description) &&
		matchSet(e.Type, f.Type) &&
		matchSet(e.PaymentMethod, f.PaymentMethod) &&
		matchDecimalRange(e.Amount, f.AmountMin, f.AmountMax) &&
		matchDateRange(e.Date, f.DateFrom, f.DateTo)
}

// matchText coincide si el filtro está vacío o el valor lo contiene sin
// distinguir mayúsculas.
func matchText(value, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}

// matchIDOrName coincide contra el identificador exacto o, si el registro
// trae nombre legible, contra el nombre por contención (el filtro guardado
// puede ser el ID o texto libre).
func matchIDOrName(id, name, query string) bool {
	if query == "" {
		return true
	}
	if strings.EqualFold(id, query) {
		return true
	}
	return name != "" && strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

// matchIntRange coincide si ambos límites están ausentes, o el valor cae
// dentro de los presentes (cada límite es opcional por separado).
func matchIntRange(value int, min, max *int) bool {
	if min != nil && value < *min {
		return false
	}
	if max != nil && value > *max {
		return false
	}
	return true
}

func matchDecimalRange(value decimal.Decimal, min, max *decimal.Decimal) bool {
	if min != nil && value.LessThan(*min) {
		return false
	}
	if max != nil && value.GreaterThan(*max) {
		return false
	}
	return true
}

// matchSet coincide si el conjunto está vacío (pasa todo) o el valor es
// miembro.
func matchSet(value string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}

// matchDateRange evalúa límites dd.mm.yyyy inclusivos. Un límite no
// parseable se trata como ausente: nunca lanza ni rechaza por formato.
func matchDateRange(value time.Time, from, to string) bool {
	if lower, ok := parseBound(from); ok && value.Before(lower) {
		return false
	}
	if upper, ok := parseBound(to); ok && value.After(endOfDay(upper)) {
		return false
	}
	return true
}

// parseBound parsea un límite dd.mm.yyyy al inicio de su día.
// Devuelve ok=false si está vacío o malformado.
func parseBound(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func endOfDay(t time.Time) time.Time {
	return t.Add(24*time.Hour - time.Nanosecond)
}
