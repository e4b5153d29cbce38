package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/kyc-api/internal/application/dto"
	"github.com/tu-usuario/kyc-api/internal/application/validator"
)

// Adaptadores Fiber del validador de esquemas. Corren estrictamente después de
// los middlewares de auth y antes del handler: una violación corta la cadena
// con 400 y ningún caso de uso llega a ejecutarse.

// validationError respuesta 400 con el mensaje de la primera regla violada.
func validationError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "VALIDATION",
		Message: msg,
	})
}

// ValidateBody parsea el body JSON a un mapa genérico y lo valida contra el schema.
func ValidateBody(schema validator.Schema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := map[string]any{}
		if len(c.Body()) > 0 {
			if err := json.Unmarshal(c.Body(), &payload); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
					Code:    "INVALID_BODY",
					Message: "invalid request body",
				})
			}
		}
		if err := schema.Validate(payload); err != nil {
			return validationError(c, err.Error())
		}
		return c.Next()
	}
}

// ValidateQuery valida los query params contra el schema. Los valores llegan
// como string; las reglas numéricas los toleran.
func ValidateQuery(schema validator.Schema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := map[string]any{}
		for k, v := range c.Queries() {
			payload[k] = v
		}
		if err := schema.Validate(payload); err != nil {
			return validationError(c, err.Error())
		}
		return c.Next()
	}
}
