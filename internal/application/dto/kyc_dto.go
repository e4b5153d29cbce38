package dto

import "time"

// SubmitKYCRequest entrada para el envío de datos KYC.
// IDDocument solo se usa en la variante sin subida de archivo (referencia string);
// con multipart el documento llega como archivo y este campo queda vacío.
type SubmitKYCRequest struct {
	Name       string `json:"name" form:"name"`
	IDDocument string `json:"idDocument" form:"idDocument"`
}

// UpdateKYCStatusRequest entrada para el cambio de estado (solo admin).
type UpdateKYCStatusRequest struct {
	Status string `json:"status"`
}

// KYCResponse registro KYC serializado.
type KYCResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Name       string    `json:"name"`
	IDDocument string    `json:"idDocument"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// KPIResponse conteos agregados del pipeline KYC.
// totalUsers cuenta solo cuentas con rol user (los admins no son solicitantes).
type KPIResponse struct {
	TotalUsers   int64 `json:"totalUsers"`
	ApprovedKYCs int64 `json:"approvedKYCs"`
	RejectedKYCs int64 `json:"rejectedKYCs"`
	PendingKYCs  int64 `json:"pendingKYCs"`
}

// KYCListResponse página del listado administrativo.
type KYCListResponse struct {
	KYCs  []KYCResponse `json:"kycs"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
}
