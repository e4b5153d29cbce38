package entity

import "time"

// Estados válidos de un registro KYC.
const (
	KYCStatusPending  = "pending"
	KYCStatusApproved = "approved"
	KYCStatusRejected = "rejected"
)

// KYCStatuses lista de estados válidos, en el orden del ciclo de vida.
var KYCStatuses = []string{KYCStatusPending, KYCStatusApproved, KYCStatusRejected}

// IsValidKYCStatus indica si s es un estado reconocido.
func IsValidKYCStatus(s string) bool {
	return s == KYCStatusPending || s == KYCStatusApproved || s == KYCStatusRejected
}

// KYC registro de verificación de identidad. Uno por usuario (índice único en userId):
// un registro existente bloquea cualquier nuevo submit. El estado nace en pending y
// solo lo muta un admin; el dueño no puede tocar el registro después de crearlo.
type KYC struct {
	ID         string    `bson:"_id"`
	UserID     string    `bson:"userId"`
	Name       string    `bson:"name"`
	IDDocument string    `bson:"idDocument"` // URL o referencia al documento almacenado
	Status     string    `bson:"status"`     // pending, approved, rejected
	CreatedAt  time.Time `bson:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}
