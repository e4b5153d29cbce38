package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/kyc-api/internal/application/dto"
	"github.com/tu-usuario/kyc-api/internal/application/kyc"
	"github.com/tu-usuario/kyc-api/internal/application/validator"
	"github.com/tu-usuario/kyc-api/internal/domain"
	"github.com/tu-usuario/kyc-api/internal/domain/repository"
)

// KYCHandler maneja el ciclo de vida de los registros KYC.
type KYCHandler struct {
	uc *kyc.KYCUseCase
}

// NewKYCHandler construye el handler de KYC.
func NewKYCHandler(uc *kyc.KYCUseCase) *KYCHandler {
	return &KYCHandler{uc: uc}
}

// Submit godoc
// @Summary      Enviar datos KYC
// @Tags         kyc
// @Security     Bearer
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Param        name        formData  string  true   "Nombre completo"
// @Param        idDocument  formData  file    false  "Documento de identidad (jpeg/png/gif, máx 5 MiB)"
// @Success      201  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/kyc/submit [post]
func (h *KYCHandler) Submit(c *fiber.Ctx) error {
	userID := GetUserID(c)

	// La validación corre aquí y no como middleware porque el schema depende de
	// la variante: archivo subido (multipart) o referencia string en el body.
	name, source, verr, err := h.parseSubmit(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if verr != nil {
		return validationError(c, verr.Error())
	}

	if err := h.uc.Submit(userID, name, source); err != nil {
		switch {
		case errors.Is(err, domain.ErrKYCAlreadyExists):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ALREADY_SUBMITTED", Message: "KYC data already submitted"})
		case errors.Is(err, domain.ErrInvalidInput):
			return validationError(c, `"idDocument" is required`)
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "KYC data submitted successfully"})
}

// parseSubmit arma el payload de validación y la fuente del documento según la
// variante de la petición. Devuelve (name, source, error de validación, error de parseo).
func (h *KYCHandler) parseSubmit(c *fiber.Ctx) (string, kyc.DocumentSource, error, error) {
	file, ferr := c.FormFile("idDocument")
	if ferr == nil {
		name := c.FormValue("name")
		mimetype := file.Header.Get(fiber.HeaderContentType)
		payload := map[string]any{
			"name":       name,
			"idDocument": validator.FileInfo{Mimetype: mimetype, Size: file.Size},
		}
		if verr := validator.SubmitKYCFileSchema.Validate(payload); verr != nil {
			return "", kyc.DocumentSource{}, verr, nil
		}
		f, err := file.Open()
		if err != nil {
			return "", kyc.DocumentSource{}, nil, err
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return "", kyc.DocumentSource{}, nil, err
		}
		return name, kyc.UploadedBlob(data, file.Filename, mimetype), nil, nil
	}

	var in dto.SubmitKYCRequest
	if err := c.BodyParser(&in); err != nil {
		return "", kyc.DocumentSource{}, nil, err
	}
	payload := map[string]any{"name": in.Name, "idDocument": in.IDDocument}
	if verr := validator.SubmitKYCInlineSchema.Validate(payload); verr != nil {
		return "", kyc.DocumentSource{}, verr, nil
	}
	return in.Name, kyc.InlineReference(in.IDDocument), nil, nil
}

// Get godoc
// @Summary      Consultar los datos KYC propios
// @Tags         kyc
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.KYCResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kyc [get]
func (h *KYCHandler) Get(c *fiber.Ctx) error {
	// El userID sale SIEMPRE del token autenticado: este endpoint no puede
	// devolver el registro de otro usuario.
	out, err := h.uc.Get(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrKYCNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "KYC data not found"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de un KYC (solo admin)
// @Tags         kyc
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        userId  path  string  true  "ID del usuario dueño del registro"
// @Param        body    body  dto.UpdateKYCStatusRequest  true  "status: pending | approved | rejected"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kyc/{userId}/status [put]
func (h *KYCHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateKYCStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if err := h.uc.UpdateStatus(c.Params("userId"), in.Status); err != nil {
		if errors.Is(err, domain.ErrKYCNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "KYC data not found"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "KYC status updated successfully"})
}

// KPI godoc
// @Summary      KPIs del pipeline KYC (solo admin)
// @Tags         kyc
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.KPIResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/kyc/kpi [get]
func (h *KYCHandler) KPI(c *fiber.Ctx) error {
	out, err := h.uc.KPI()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar registros KYC (solo admin)
// @Tags         kyc
// @Security     Bearer
// @Produce      json
// @Param        status     query  string  false  "Filtro por estado"      Enums(pending, approved, rejected)
// @Param        sortBy     query  string  false  "Campo de orden"         Enums(name, status, createdAt, updatedAt)
// @Param        sortOrder  query  string  false  "Dirección"              Enums(asc, desc)
// @Param        page       query  int     false  "Página (1-indexada)"    default(1)
// @Param        limit      query  int     false  "Tamaño de página"       default(10)
// @Success      200  {object}  dto.KYCListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/kyc/list [get]
func (h *KYCHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(repository.KYCListOptions{
		Status:    c.Query("status"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Page:      c.QueryInt("page", kyc.DefaultPage),
		Limit:     c.QueryInt("limit", kyc.DefaultLimit),
	})
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
