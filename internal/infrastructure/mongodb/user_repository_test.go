package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/kyc-api/internal/domain"
	"go.mongodb.org/mongo-driver/mongo"
)

// writeException fabrica el error de clave duplicada tal como lo devuelve el
// driver (código 11000 con el índice solo en el mensaje).
func writeException(msg string) error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: msg},
		},
	}
}

func TestDuplicateUserError_IndiceDeUsername(t *testing.T) {
	err := writeException(`E11000 duplicate key error collection: kyc.users index: username_1 dup key: { username: "ana" }`)
	assert.ErrorIs(t, duplicateUserError(err), domain.ErrUsernameTaken)
}

func TestDuplicateUserError_IndiceDeEmail(t *testing.T) {
	err := writeException(`E11000 duplicate key error collection: kyc.users index: email_1 dup key: { email: "ana@example.com" }`)
	assert.ErrorIs(t, duplicateUserError(err), domain.ErrEmailAlreadyExists)
}

func TestDuplicateUserError_EmailConLaPalabraUsername_NoConfunde(t *testing.T) {
	// El valor duplicado puede contener "username"; solo decide el nombre del índice.
	err := writeException(`E11000 duplicate key error collection: kyc.users index: email_1 dup key: { email: "username@example.com" }`)
	assert.ErrorIs(t, duplicateUserError(err), domain.ErrEmailAlreadyExists)
}
