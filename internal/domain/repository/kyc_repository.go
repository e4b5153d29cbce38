package repository

import "github.com/tu-usuario/kyc-api/internal/domain/entity"

// KYCListOptions filtro, orden y paginación para el listado administrativo.
// Page es 1-indexado; Limit es el tamaño de página.
type KYCListOptions struct {
	Status    string // filtro de igualdad; vacío = sin filtro
	SortBy    string // campo de orden; vacío = orden natural de la persistencia
	SortOrder string // "asc" | "desc"
	Page      int
	Limit     int
}

// KYCRepository define el puerto de persistencia para registros KYC.
// FindByUserID devuelve (nil, nil) si el usuario no tiene registro.
type KYCRepository interface {
	Create(kyc *entity.KYC) error
	FindByUserID(userID string) (*entity.KYC, error)
	UpdateStatus(userID, status string) error
	CountByStatus(status string) (int64, error)
	List(opts KYCListOptions) ([]*entity.KYC, int64, error)
}
