package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expiración fija de los tokens: toda la sesión dura 1 hora.
const TokenTTL = time.Hour

// Errores internos de verificación. Hacia el cliente los tres colapsan en un
// mismo 401; se distinguen aquí para logging y tests.
var (
	ErrExpired   = errors.New("token expirado")
	ErrSignature = errors.New("firma de token inválida")
	ErrMalformed = errors.New("token malformado")
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Se añade Role para que el middleware RBAC pueda tomar decisiones sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"` // "user" | "admin"
}

// Generate genera un token JWT firmado (HS256) que incluye userID y role.
// La expiración es siempre issuedAt + TokenTTL.
func Generate(secret, userID, role, issuer string) (string, error) {
	return generateAt(secret, userID, role, issuer, time.Now())
}

// generateAt separa el reloj para poder fabricar tokens vencidos en tests.
func generateAt(secret, userID, role, issuer string, now time.Time) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		UserID: userID,
		Role:   role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve userID y role.
// Retorna ErrExpired, ErrSignature o ErrMalformed según la causa del rechazo.
func Parse(secret, tokenString string) (userID, role string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", classify(err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", ErrMalformed
	}
	return claims.UserID, claims.Role, nil
}

// classify mapea los errores de la librería a la taxonomía propia.
// El orden importa: un token vencido con firma válida debe reportarse como expirado.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrSignature
	default:
		return ErrMalformed
	}
}
