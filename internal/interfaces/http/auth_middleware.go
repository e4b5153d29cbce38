package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/kyc-api/internal/application/dto"
	"github.com/tu-usuario/kyc-api/internal/domain/entity"
	"github.com/tu-usuario/kyc-api/pkg/jwt"
)

// Locals keys para la identidad del token en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// Causas internas de rechazo de la puerta de autenticación. Hacia el cliente
// ambas colapsan en el mismo 401; se distinguen para logging y tests.
var (
	ErrNoToken      = errors.New("sin token")
	ErrInvalidToken = errors.New("token inválido")
)

// Identity claims mínimos extraídos de un token válido.
type Identity struct {
	UserID string
	Role   string
}

// Decision resultado explícito de la puerta: Deny nil significa continuar con
// la identidad adjunta; Deny no nil corta la cadena sin efectos colaterales.
type Decision struct {
	Identity Identity
	Deny     error
}

// Authenticate puerta pura de autenticación. El orden de chequeos es fijo:
// primero ausencia de token, después verificación. La ausencia nunca debe
// reportarse como problema de rol.
func Authenticate(authHeader, secret string) Decision {
	if authHeader == "" {
		return Decision{Deny: ErrNoToken}
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if tokenString == "" {
		return Decision{Deny: ErrNoToken}
	}
	userID, role, err := jwt.Parse(secret, tokenString)
	if err != nil {
		return Decision{Deny: errors.Join(ErrInvalidToken, err)}
	}
	return Decision{Identity: Identity{UserID: userID, Role: role}}
}

// unauthorized respuesta única para todo 401: token ausente, malformado,
// vencido o con firma inválida son indistinguibles desde afuera.
func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Code:    "UNAUTHORIZED",
		Message: "authorization denied",
	})
}

// AuthMiddleware exige un Bearer token válido y carga la identidad a c.Locals.
// La causa exacta del rechazo solo se registra en el log.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := Authenticate(c.Get(fiber.HeaderAuthorization), jwtSecret)
		if d.Deny != nil {
			log.Debug().Err(d.Deny).Str("path", c.Path()).Msg("petición rechazada por la puerta de autenticación")
			return unauthorized(c)
		}
		c.Locals(LocalUserID, d.Identity.UserID)
		c.Locals(LocalRole, d.Identity.Role)
		return c.Next()
	}
}

// RequireRole autoriza por rol. Debe usarse DESPUÉS de AuthMiddleware: una
// identidad válida con rol insuficiente es 403; una identidad ausente (locals
// vacíos) sigue siendo 401, nunca 403.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return unauthorized(c)
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "Access denied",
		})
	}
}

// RequireAdmin atajo para las rutas administrativas.
func RequireAdmin() fiber.Handler {
	return RequireRole(entity.RoleAdmin)
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
