package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/movement"
	"github.com/tu-usuario/almacen-pro/internal/application/search"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	LocationUC  *usecase.LocationUseCase
	BatchEngine *movement.BatchEngine
	SearchStore *search.Store
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products (catálogo de solo lectura, con filtros)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/categories", productHandler.Categories)
	products.Get("/:id", productHandler.GetByID)

	// Locations (ocupación y utilización derivadas)
	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)

	// Inventory: traslados y lotes de movimientos
	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.BatchEngine)
	inventory.Post("/transfers", inventoryHandler.CreateTransfer)
	inventory.Get("/movements", inventoryHandler.ListGrouped)
	inventory.Delete("/movements/:id", inventoryHandler.DeleteMovement)
	inventory.Get("/batches/:id", inventoryHandler.EditBatch)
	inventory.Post("/batches/:id/complete", inventoryHandler.CompleteBatch)

	// Search: filtros activos, presets y búsquedas recientes
	searchGroup := api.Group("/search")
	searchHandler := NewSearchHandler(deps.SearchStore)
	searchGroup.Put("/filters", searchHandler.ApplyFilter)
	searchGroup.Get("/presets", searchHandler.ListPresets)
	searchGroup.Post("/presets", searchHandler.SavePreset)
	searchGroup.Delete("/presets/:id", searchHandler.DeletePreset)
	searchGroup.Post("/presets/:id/load", searchHandler.LoadPreset)
	searchGroup.Get("/recents", searchHandler.ListRecents)
	searchGroup.Post("/recents", searchHandler.RecordSearch)
	searchGroup.Delete("/recents", searchHandler.ClearRecents)
}
