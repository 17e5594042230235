package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/search"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/filter"
)

// SearchHandler maneja las peticiones HTTP de presets de filtros y del
// historial de búsquedas recientes.
type SearchHandler struct {
	store *search.Store
}

// NewSearchHandler construye el handler.
func NewSearchHandler(store *search.Store) *SearchHandler {
	return &SearchHandler{store: store}
}

// ApplyFilter godoc
// @Summary      Reemplazar la configuración activa de una categoría
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyFilterRequest  true  "snapshot con la categoría y su filtro"
// @Success      200   {object}  map[string]int
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/search/filters [put]
func (h *SearchHandler) ApplyFilter(c *fiber.Ctx) error {
	var in dto.ApplyFilterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.store.Apply(in.Snapshot); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"active_count": h.store.ActiveFieldCount(in.Snapshot.Category)})
}

// ListPresets godoc
// @Summary      Listar presets guardados
// @Tags         search
// @Produce      json
// @Success      200  {array}  dto.PresetResponse
// @Router       /api/search/presets [get]
func (h *SearchHandler) ListPresets(c *fiber.Ctx) error {
	presets := h.store.ListPresets()
	out := make([]dto.PresetResponse, 0, len(presets))
	for _, p := range presets {
		out = append(out, dto.PresetResponse{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Snapshot:    p.Snapshot,
			ActiveCount: filter.ActiveFieldCount(p.Snapshot),
			CreatedAt:   p.CreatedAt,
		})
	}
	return c.JSON(out)
}

// SavePreset godoc
// @Summary      Guardar la configuración actual como preset con nombre
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SavePresetRequest  true  "name y category"
// @Success      201   {object}  dto.PresetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/search/presets [post]
func (h *SearchHandler) SavePreset(c *fiber.Ctx) error {
	var in dto.SavePresetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	preset, err := h.store.SavePreset(in.Name, in.Category)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y category son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PresetResponse{
		ID:          preset.ID,
		Name:        preset.Name,
		Category:    preset.Category,
		Snapshot:    preset.Snapshot,
		ActiveCount: filter.ActiveFieldCount(preset.Snapshot),
		CreatedAt:   preset.CreatedAt,
	})
}

// DeletePreset godoc
// @Summary      Eliminar un preset
// @Tags         search
// @Produce      json
// @Param        id   path  string  true  "ID del preset"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/search/presets/{id} [delete]
func (h *SearchHandler) DeletePreset(c *fiber.Ctx) error {
	if err := h.store.DeletePreset(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "preset no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "preset eliminado"})
}

// LoadPreset godoc
// @Summary      Cargar un preset: reemplaza la configuración activa de su categoría
// @Tags         search
// @Produce      json
// @Param        id   path  string  true  "ID del preset"
// @Success      200  {object}  dto.PresetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/search/presets/{id}/load [post]
func (h *SearchHandler) LoadPreset(c *fiber.Ctx) error {
	preset, err := h.store.LoadPreset(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "preset no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.PresetResponse{
		ID:          preset.ID,
		Name:        preset.Name,
		Category:    preset.Category,
		Snapshot:    preset.Snapshot,
		ActiveCount: filter.ActiveFieldCount(preset.Snapshot),
		CreatedAt:   preset.CreatedAt,
	})
}

// ListRecents godoc
// @Summary      Listar búsquedas recientes (máximo 10, más reciente primero)
// @Tags         search
// @Produce      json
// @Success      200  {array}  dto.RecentSearchResponse
// @Router       /api/search/recents [get]
func (h *SearchHandler) ListRecents(c *fiber.Ctx) error {
	recents := h.store.ListRecents()
	out := make([]dto.RecentSearchResponse, 0, len(recents))
	for _, r := range recents {
		out = append(out, dto.RecentSearchResponse{
			ID:        r.ID,
			Category:  r.Category,
			Query:     r.Query,
			Snapshot:  r.Snapshot,
			Timestamp: r.Timestamp,
		})
	}
	return c.JSON(out)
}

// RecordSearch godoc
// @Summary      Registrar una búsqueda reciente
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSearchRequest  true  "category y query"
// @Success      201   {object}  dto.RecentSearchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/search/recents [post]
func (h *SearchHandler) RecordSearch(c *fiber.Ctx) error {
	var in dto.RecordSearchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entry, err := h.store.RecordSearch(in.Category, in.Query)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "category inválida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecentSearchResponse{
		ID:        entry.ID,
		Category:  entry.Category,
		Query:     entry.Query,
		Snapshot:  entry.Snapshot,
		Timestamp: entry.Timestamp,
	})
}

// ClearRecents godoc
// @Summary      Vaciar el historial de búsquedas recientes
// @Tags         search
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/search/recents [delete]
func (h *SearchHandler) ClearRecents(c *fiber.Ctx) error {
	if err := h.store.ClearRecents(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "historial vaciado"})
}
