package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// LocationStock: normalización de representaciones heterogéneas del backend
// ──────────────────────────────────────────────────────────────────────────────

// TestLocationStock_UnmarshalNumeros verifica la forma canónica
// {"A-01": 7, "B-02": 3}.
func TestLocationStock_UnmarshalNumeros(t *testing.T) {
	var ls entity.LocationStock
	err := json.Unmarshal([]byte(`{"A-01": 7, "B-02": 3}`), &ls)

	require.NoError(t, err)
	assert.Equal(t, entity.LocationStock{"A-01": 7, "B-02": 3}, ls)
}

// TestLocationStock_UnmarshalStringsNumericos verifica que los strings
// numéricos del backend antiguo se coercen a enteros.
func TestLocationStock_UnmarshalStringsNumericos(t *testing.T) {
	var ls entity.LocationStock
	err := json.Unmarshal([]byte(`{"A-01": "7", "B-02": "3"}`), &ls)

	require.NoError(t, err)
	assert.Equal(t, entity.LocationStock{"A-01": 7, "B-02": 3}, ls)
}

// TestLocationStock_UnmarshalObjetoQuantity verifica la forma objeto
// {"quantity": n} de versiones aún más antiguas.
func TestLocationStock_UnmarshalObjetoQuantity(t *testing.T) {
	var ls entity.LocationStock
	err := json.Unmarshal([]byte(`{"A-01": {"quantity": 7}}`), &ls)

	require.NoError(t, err)
	assert.Equal(t, entity.LocationStock{"A-01": 7}, ls)
}

// TestLocationStock_ValoresMalformados verifica que un valor no numérico
// cuenta como 0 y nunca propaga error: una entrada corrupta no debe romper
// la carga del producto completo.
func TestLocationStock_ValoresMalformados(t *testing.T) {
	var ls entity.LocationStock
	err := json.Unmarshal([]byte(`{"A-01": "muchos", "B-02": true, "C-03": 4}`), &ls)

	require.NoError(t, err)
	assert.Equal(t, 0, ls["A-01"])
	assert.Equal(t, 0, ls["B-02"])
	assert.Equal(t, 4, ls["C-03"])
}

// TestLocationStock_NegativosSeRecortan verifica que las cantidades
// negativas se recortan a 0.
func TestLocationStock_NegativosSeRecortan(t *testing.T) {
	var ls entity.LocationStock
	err := json.Unmarshal([]byte(`{"A-01": -5, "B-02": "-2"}`), &ls)

	require.NoError(t, err)
	assert.Equal(t, 0, ls["A-01"])
	assert.Equal(t, 0, ls["B-02"])
}

// TestLocationStock_NoObjeto verifica que un valor que no es objeto JSON se
// trata como desglose ausente (nil) sin error.
func TestLocationStock_NoObjeto(t *testing.T) {
	var ls entity.LocationStock
	err := json.Unmarshal([]byte(`"no soy un objeto"`), &ls)

	require.NoError(t, err)
	assert.Nil(t, ls)
}

func TestLocationStock_SumYClone(t *testing.T) {
	ls := entity.LocationStock{"A-01": 7, "B-02": 3}
	assert.Equal(t, 10, ls.Sum())

	copia := ls.Clone()
	copia["A-01"] = 99
	assert.Equal(t, 7, ls["A-01"], "Clone debe ser independiente del original")

	var vacia entity.LocationStock
	assert.Nil(t, vacia.Clone())
}

// ── StockStatus ───────────────────────────────────────────────────────────────

func TestStockStatus(t *testing.T) {
	assert.Equal(t, entity.StockStatusOut, (&entity.Product{Stock: 0, MinStock: 5}).StockStatus())
	assert.Equal(t, entity.StockStatusLow, (&entity.Product{Stock: 3, MinStock: 5}).StockStatus())
	assert.Equal(t, entity.StockStatusLow, (&entity.Product{Stock: 5, MinStock: 5}).StockStatus())
	assert.Equal(t, entity.StockStatusIn, (&entity.Product{Stock: 6, MinStock: 5}).StockStatus())
}
