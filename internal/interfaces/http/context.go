package http

import "github.com/gofiber/fiber/v2"

// GetUserID devuelve el identificador del usuario que origina la petición.
// La autenticación es responsabilidad del gateway externo; aquí solo se
// propaga la cabecera que él inyecta.
func GetUserID(c *fiber.Ctx) string {
	return c.Get("X-User-Id")
}
