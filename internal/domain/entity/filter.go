package entity

import "github.com/shopspring/decimal"

// FilterCategory distingue las cuatro secciones de búsqueda.
type FilterCategory string

// Categorías de filtro soportadas.
const (
	FilterCategoryProducts  FilterCategory = "products"
	FilterCategoryMovements FilterCategory = "movements"
	FilterCategoryClients   FilterCategory = "clients"
	FilterCategoryFinancial FilterCategory = "financial"
)

// Valid indica si la categoría es una de las cuatro conocidas.
func (c FilterCategory) Valid() bool {
	switch c {
	case FilterCategoryProducts, FilterCategoryMovements, FilterCategoryClients, FilterCategoryFinancial:
		return true
	}
	return false
}

// ProductFilter filtros de la sección de productos. Todo campo es opcional;
// un campo vacío siempre coincide. Las fechas usan formato dd.mm.yyyy
// (límites inclusivos); un límite no parseable se trata como ausente.
type ProductFilter struct {
	Name        string           `json:"name,omitempty"`
	SKU         string           `json:"sku,omitempty"`
	Category    string           `json:"category,omitempty"` // ID o texto de nombre
	Supplier    string           `json:"supplier,omitempty"` // ID o texto de nombre
	Location    string           `json:"location,omitempty"`
	PriceMin    *decimal.Decimal `json:"price_min,omitempty"`
	PriceMax    *decimal.Decimal `json:"price_max,omitempty"`
	StockMin    *int             `json:"stock_min,omitempty"`
	StockMax    *int             `json:"stock_max,omitempty"`
	StockStatus []string         `json:"stock_status,omitempty"` // in_stock, low_stock, out_of_stock
	DateFrom    string           `json:"date_from,omitempty"`    // dd.mm.yyyy sobre CreatedAt
	DateTo      string           `json:"date_to,omitempty"`
}

// MovementFilter filtros de la sección de movimientos/traslados.
type MovementFilter struct {
	ProductID    string   `json:"product_id,omitempty"`
	FromLocation string   `json:"from_location,omitempty"`
	ToLocation   string   `json:"to_location,omitempty"`
	UserID       string   `json:"user_id,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	Status       []string `json:"status,omitempty"` // draft, pending, completed
	QuantityMin  *int     `json:"quantity_min,omitempty"`
	QuantityMax  *int     `json:"quantity_max,omitempty"`
	DateFrom     string   `json:"date_from,omitempty"` // dd.mm.yyyy sobre Timestamp
	DateTo       string   `json:"date_to,omitempty"`
}

// ClientFilter filtros de la sección de clientes.
type ClientFilter struct {
	Name        string           `json:"name,omitempty"`
	Email       string           `json:"email,omitempty"`
	Phone       string           `json:"phone,omitempty"`
	Status      []string         `json:"status,omitempty"`
	TotalMin    *decimal.Decimal `json:"total_min,omitempty"`
	TotalMax    *decimal.Decimal `json:"total_max,omitempty"`
	DateFrom    string           `json:"date_from,omitempty"` // dd.mm.yyyy sobre CreatedAt
	DateTo      string           `json:"date_to,omitempty"`
}

// FinancialFilter filtros de la sección financiera.
type FinancialFilter struct {
	Description   string           `json:"description,omitempty"`
	Type          []string         `json:"type,omitempty"` // income, expense
	PaymentMethod []string         `json:"payment_method,omitempty"`
	AmountMin     *decimal.Decimal `json:"amount_min,omitempty"`
	AmountMax     *decimal.Decimal `json:"amount_max,omitempty"`
	DateFrom      string           `json:"date_from,omitempty"` // dd.mm.yyyy sobre Date
	DateTo        string           `json:"date_to,omitempty"`
}

// FilterSnapshot es la unión etiquetada por categoría: exactamente el campo
// correspondiente a Category está poblado. Es la forma que se congela en
// presets y búsquedas recientes.
type FilterSnapshot struct {
	Category  FilterCategory   `json:"category"`
	Products  *ProductFilter   `json:"products,omitempty"`
	Movements *MovementFilter  `json:"movements,omitempty"`
	Clients   *ClientFilter    `json:"clients,omitempty"`
	Financial *FinancialFilter `json:"financial,omitempty"`
}
