package search_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/application/search"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	infraredis "github.com/tu-usuario/almacen-pro/internal/infrastructure/redis"
	"github.com/tu-usuario/almacen-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newTestStore(t *testing.T) (*search.Store, *infraredis.MemoryStorage) {
	t.Helper()
	storage := infraredis.NewMemoryStorage()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return search.NewStore(storage, log), storage
}

// brokenStorage falla todas las escrituras; las lecturas devuelven vacío.
type brokenStorage struct{ err error }

func (s *brokenStorage) LoadPresets() ([]entity.FilterPreset, error) { return nil, nil }
func (s *brokenStorage) SavePresets([]entity.FilterPreset) error     { return s.err }
func (s *brokenStorage) LoadRecents() ([]entity.RecentSearch, error) { return nil, nil }
func (s *brokenStorage) SaveRecents([]entity.RecentSearch) error     { return s.err }

// ──────────────────────────────────────────────────────────────────────────────
// Configuración activa de filtros
// ──────────────────────────────────────────────────────────────────────────────

// TestApply_CambiaCategoriaActiva verifica que aplicar un snapshot reemplaza
// la configuración de su categoría y la convierte en la activa, sin tocar
// las demás categorías.
func TestApply_CambiaCategoriaActiva(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Equal(t, entity.FilterCategoryProducts, store.ActiveCategory(), "products es la categoría inicial")

	err := store.Apply(entity.FilterSnapshot{
		Category:  entity.FilterCategoryMovements,
		Movements: &entity.MovementFilter{FromLocation: "A-01"},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.FilterCategoryMovements, store.ActiveCategory())
	snap := store.Snapshot(entity.FilterCategoryMovements)
	require.NotNil(t, snap.Movements)
	assert.Equal(t, "A-01", snap.Movements.FromLocation)

	// La configuración de productos queda intacta.
	prodSnap := store.Snapshot(entity.FilterCategoryProducts)
	require.NotNil(t, prodSnap.Products)
	assert.Equal(t, entity.ProductFilter{}, *prodSnap.Products)
}

func TestApply_CategoriaInvalida(t *testing.T) {
	store, _ := newTestStore(t)
	err := store.Apply(entity.FilterSnapshot{Category: "inventado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestActiveFieldCount_DelegaEnElSnapshot verifica el conteo de campos
// activos sobre la configuración vigente.
func TestActiveFieldCount_DelegaEnElSnapshot(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Apply(entity.FilterSnapshot{
		Category: entity.FilterCategoryProducts,
		Products: &entity.ProductFilter{Name: "laptop", Location: "A-01"},
	}))

	assert.Equal(t, 2, store.ActiveFieldCount(entity.FilterCategoryProducts))
	assert.Equal(t, 0, store.ActiveFieldCount(entity.FilterCategoryClients))
}

// ──────────────────────────────────────────────────────────────────────────────
// Presets
// ──────────────────────────────────────────────────────────────────────────────

// TestSavePreset_CongelaLaConfiguracion verifica que el preset captura la
// configuración del momento de guardar, no la posterior.
func TestSavePreset_CongelaLaConfiguracion(t *testing.T) {
	store, storage := newTestStore(t)
	require.NoError(t, store.Apply(entity.FilterSnapshot{
		Category: entity.FilterCategoryProducts,
		Products: &entity.ProductFilter{Name: "laptop"},
	}))

	preset, err := store.SavePreset("Laptops caras", entity.FilterCategoryProducts)
	require.NoError(t, err)
	assert.NotEmpty(t, preset.ID)

	// Cambiar la configuración después no altera el preset guardado.
	require.NoError(t, store.Apply(entity.FilterSnapshot{
		Category: entity.FilterCategoryProducts,
		Products: &entity.ProductFilter{Name: "monitor"},
	}))

	presets := store.ListPresets()
	require.Len(t, presets, 1)
	assert.Equal(t, "laptop", presets[0].Snapshot.Products.Name, "el snapshot quedó congelado")

	// Y la lista se persistió en el almacén.
	persisted, err := storage.LoadPresets()
	require.NoError(t, err)
	assert.Len(t, persisted, 1)
}

func TestSavePreset_Validaciones(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.SavePreset("", entity.FilterCategoryProducts)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	_, err = store.SavePreset("x", "inventado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "categoría inválida")
}

// TestLoadPreset_AplicaYCambiaCategoria verifica que cargar un preset
// reemplaza la configuración activa y cambia la categoría, sin reescribir
// el almacén.
func TestLoadPreset_AplicaYCambiaCategoria(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Apply(entity.FilterSnapshot{
		Category:  entity.FilterCategoryMovements,
		Movements: &entity.MovementFilter{Status: []string{"draft"}},
	}))
	preset, err := store.SavePreset("Borradores", entity.FilterCategoryMovements)
	require.NoError(t, err)

	// Desviar la configuración y volver a products.
	require.NoError(t, store.Apply(entity.FilterSnapshot{Category: entity.FilterCategoryProducts}))
	require.NoError(t, store.Apply(entity.FilterSnapshot{
		Category:  entity.FilterCategoryMovements,
		Movements: &entity.MovementFilter{ToLocation: "Z-99"},
	}))
	require.NoError(t, store.Apply(entity.FilterSnapshot{Category: entity.FilterCategoryProducts}))

	loaded, err := store.LoadPreset(preset.ID)
	require.NoError(t, err)
	assert.Equal(t, "Borradores", loaded.Name)
	assert.Equal(t, entity.FilterCategoryMovements, store.ActiveCategory())

	snap := store.Snapshot(entity.FilterCategoryMovements)
	assert.Equal(t, []string{"draft"}, snap.Movements.Status)
	assert.Empty(t, snap.Movements.ToLocation, "la configuración desviada fue reemplazada")
}

func TestLoadPreset_Inexistente(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.LoadPreset("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestDeletePreset verifica la eliminación por ID y la persistencia de la
// lista resultante.
func TestDeletePreset(t *testing.T) {
	store, storage := newTestStore(t)
	preset, err := store.SavePreset("temporal", entity.FilterCategoryProducts)
	require.NoError(t, err)

	require.NoError(t, store.DeletePreset(preset.ID))
	assert.Empty(t, store.ListPresets())

	persisted, err := storage.LoadPresets()
	require.NoError(t, err)
	assert.Empty(t, persisted)

	assert.ErrorIs(t, store.DeletePreset(preset.ID), domain.ErrNotFound)
}

// TestSavePreset_FalloDePersistenciaNoCompromete verifica que si el almacén
// falla, la lista en memoria no queda a medias.
func TestSavePreset_FalloDePersistenciaNoCompromete(t *testing.T) {
	falla := errors.New("redis caído")
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	store := search.NewStore(&brokenStorage{err: falla}, log)

	_, err := store.SavePreset("x", entity.FilterCategoryProducts)
	require.ErrorIs(t, err, falla)
	assert.Empty(t, store.ListPresets(), "el preset no debe quedar en memoria si no se persistió")
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsquedas recientes
// ──────────────────────────────────────────────────────────────────────────────

// TestRecordSearch_Desaloja verifica el tope de 10 entradas: la undécima
// desaloja a la más antigua y el orden es más reciente primero.
func TestRecordSearch_Desaloja(t *testing.T) {
	store, _ := newTestStore(t)

	for i := 0; i < search.MaxRecentSearches+1; i++ {
		_, err := store.RecordSearch(entity.FilterCategoryProducts, fmt.Sprintf("busqueda-%d", i))
		require.NoError(t, err)
	}

	recents := store.ListRecents()
	require.Len(t, recents, search.MaxRecentSearches)
	assert.Equal(t, "busqueda-10", recents[0].Query, "la más reciente primero")
	assert.Equal(t, "busqueda-1", recents[len(recents)-1].Query,
		"busqueda-0 fue desalojada como la más antigua")
}

// TestRecordSearch_CapturaSnapshot verifica que la entrada captura la
// configuración vigente de su categoría.
func TestRecordSearch_CapturaSnapshot(t *testing.T) {
	store, storage := newTestStore(t)
	require.NoError(t, store.Apply(entity.FilterSnapshot{
		Category: entity.FilterCategoryProducts,
		Products: &entity.ProductFilter{SKU: "LPT"},
	}))

	entry, err := store.RecordSearch(entity.FilterCategoryProducts, "laptops")
	require.NoError(t, err)
	assert.Equal(t, "LPT", entry.Snapshot.Products.SKU)

	persisted, err := storage.LoadRecents()
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, "laptops", persisted[0].Query)
}

func TestClearRecents(t *testing.T) {
	store, storage := newTestStore(t)
	_, err := store.RecordSearch(entity.FilterCategoryProducts, "algo")
	require.NoError(t, err)

	require.NoError(t, store.ClearRecents())
	assert.Empty(t, store.ListRecents())

	persisted, err := storage.LoadRecents()
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

// TestNewStore_RecargaDelAlmacen verifica el ciclo de vida: un Store nuevo
// sobre el mismo almacén ve los presets y recientes persistidos.
func TestNewStore_RecargaDelAlmacen(t *testing.T) {
	store, storage := newTestStore(t)
	_, err := store.SavePreset("durable", entity.FilterCategoryProducts)
	require.NoError(t, err)
	_, err = store.RecordSearch(entity.FilterCategoryProducts, "persistida")
	require.NoError(t, err)

	log := logger.New(logger.Config{Env: "test", Level: "error"})
	reloaded := search.NewStore(storage, log)

	assert.Len(t, reloaded.ListPresets(), 1)
	require.Len(t, reloaded.ListRecents(), 1)
	assert.Equal(t, "persistida", reloaded.ListRecents()[0].Query)
}
