package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client representa un cliente del comercio, espejo local para búsqueda
// avanzada; el sistema de registro es el backend externo.
type Client struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	Status         string // active, inactive, blocked
	TotalPurchases decimal.Decimal
	CreatedAt      time.Time
}

// Tipos de asiento financiero.
const (
	FinancialTypeIncome  = "income"
	FinancialTypeExpense = "expense"
)

// FinancialEntry representa un asiento financiero (ingreso o gasto) usado
// por la búsqueda de la sección financiera.
type FinancialEntry struct {
	ID            string
	Type          string // income, expense
	Amount        decimal.Decimal
	PaymentMethod string // cash, card, transfer...
	Description   string
	Date          time.Time
}
