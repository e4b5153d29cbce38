package validator

import "github.com/tu-usuario/kyc-api/internal/domain/entity"

// Límite de tamaño del documento de identidad subido: 5 MiB.
const MaxIDDocumentSize = 5 * 1024 * 1024

// Mimetypes aceptados para el documento de identidad.
var AllowedIDDocumentMimetypes = []string{"image/jpeg", "image/png", "image/gif"}

// Campos por los que el listado administrativo permite ordenar.
var SortableKYCFields = []string{"name", "status", "createdAt", "updatedAt"}

// RegisterSchema valida el registro de cuentas. El email solo se exige como
// string no vacío; el chequeo de formato existe únicamente en PromoteSchema.
var RegisterSchema = Schema{
	Field("username", RequiredString()),
	Field("email", RequiredString()),
	Field("password", RequiredString()),
}

// LoginSchema valida el login.
var LoginSchema = Schema{
	Field("email", RequiredString()),
	Field("password", RequiredString()),
}

// PromoteSchema valida la promoción a admin: email con formato verificado.
var PromoteSchema = Schema{
	Field("email", RequiredString(), Email()),
}

// SubmitKYCFileSchema variante multipart: el documento llega como archivo.
var SubmitKYCFileSchema = Schema{
	Field("name", RequiredString()),
	Field("idDocument", RequiredFile(AllowedIDDocumentMimetypes, MaxIDDocumentSize)),
}

// SubmitKYCInlineSchema variante sin subida: idDocument es una referencia string.
var SubmitKYCInlineSchema = Schema{
	Field("name", RequiredString()),
	Field("idDocument", RequiredString()),
}

// UpdateKYCStatusSchema valida el cambio de estado.
var UpdateKYCStatusSchema = Schema{
	Field("status", RequiredString(), OneOf(entity.KYCStatuses...)),
}

// ListKYCQuerySchema valida los query params del listado; todos opcionales.
var ListKYCQuerySchema = Schema{
	Field("status", OptionalOneOf(entity.KYCStatuses...)),
	Field("sortBy", OptionalOneOf(SortableKYCFields...)),
	Field("sortOrder", OptionalOneOf("asc", "desc")),
	Field("page", OptionalPositiveInt()),
	Field("limit", OptionalPositiveInt()),
}
