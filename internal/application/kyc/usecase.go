package kyc

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/kyc-api/internal/application/dto"
	"github.com/tu-usuario/kyc-api/internal/domain"
	"github.com/tu-usuario/kyc-api/internal/domain/entity"
	"github.com/tu-usuario/kyc-api/internal/domain/repository"
)

// Valores por defecto de paginación del listado administrativo.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// KYCUseCase casos de uso del ciclo de vida KYC: submit, consulta propia,
// cambio de estado, KPIs y listado administrativo.
type KYCUseCase struct {
	kycRepo  repository.KYCRepository
	userRepo repository.UserRepository
	store    DocumentStore // nil = sin object storage; submit exige referencia inline
	now      func() time.Time
}

// NewKYCUseCase construye el caso de uso. store puede ser nil.
func NewKYCUseCase(kycRepo repository.KYCRepository, userRepo repository.UserRepository, store DocumentStore) *KYCUseCase {
	return &KYCUseCase{kycRepo: kycRepo, userRepo: userRepo, store: store, now: time.Now}
}

// Submit crea el registro KYC del usuario autenticado. Un registro existente
// bloquea el envío; el documento se resuelve a una referencia almacenada antes
// de persistir y el estado nace siempre en pending.
func (uc *KYCUseCase) Submit(userID, name string, source DocumentSource) error {
	existing, err := uc.kycRepo.FindByUserID(userID)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrKYCAlreadyExists
	}

	ref, err := uc.resolveDocument(source)
	if err != nil {
		return err
	}

	now := uc.now()
	return uc.kycRepo.Create(&entity.KYC{
		ID:         uuid.New().String(),
		UserID:     userID,
		Name:       name,
		IDDocument: ref,
		Status:     entity.KYCStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

// resolveDocument convierte la entrada polimórfica en la referencia a persistir.
// Los blobs se suben al object storage con clave kyc/<unixms>_<filename>.
func (uc *KYCUseCase) resolveDocument(source DocumentSource) (string, error) {
	if source.Blob == nil {
		if source.InlineRef == "" {
			return "", domain.ErrInvalidInput
		}
		return source.InlineRef, nil
	}
	if uc.store == nil {
		return "", domain.ErrInvalidInput
	}
	key := fmt.Sprintf("kyc/%d_%s", uc.now().UnixMilli(), source.Filename)
	return uc.store.Upload(key, source.Mimetype, source.Blob)
}

// Get devuelve el registro KYC PROPIO del usuario autenticado. El userID viene
// siempre del token, nunca de la petición: jamás se devuelve el registro de otro.
func (uc *KYCUseCase) Get(userID string) (*dto.KYCResponse, error) {
	record, err := uc.kycRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrKYCNotFound
	}
	return toKYCResponse(record), nil
}

// UpdateStatus sobreescribe el estado del registro del usuario indicado.
// Sin restricción de transiciones: cualquier estado puede pasar a cualquier
// otro, incluidos no-ops (política permisiva vigente).
func (uc *KYCUseCase) UpdateStatus(targetUserID, status string) error {
	if !entity.IsValidKYCStatus(status) {
		return domain.ErrInvalidInput
	}
	return uc.kycRepo.UpdateStatus(targetUserID, status)
}

// KPI devuelve los conteos agregados del pipeline. Cada conteo es una consulta
// independiente en el momento de la llamada: sin snapshot transaccional.
func (uc *KYCUseCase) KPI() (*dto.KPIResponse, error) {
	totalUsers, err := uc.userRepo.CountByRole(entity.RoleUser)
	if err != nil {
		return nil, err
	}
	approved, err := uc.kycRepo.CountByStatus(entity.KYCStatusApproved)
	if err != nil {
		return nil, err
	}
	rejected, err := uc.kycRepo.CountByStatus(entity.KYCStatusRejected)
	if err != nil {
		return nil, err
	}
	pending, err := uc.kycRepo.CountByStatus(entity.KYCStatusPending)
	if err != nil {
		return nil, err
	}
	return &dto.KPIResponse{
		TotalUsers:   totalUsers,
		ApprovedKYCs: approved,
		RejectedKYCs: rejected,
		PendingKYCs:  pending,
	}, nil
}

// List devuelve una página del listado administrativo con filtro y orden
// opcionales. page es 1-indexado; pages = ceil(total/limit).
func (uc *KYCUseCase) List(opts repository.KYCListOptions) (*dto.KYCListResponse, error) {
	if opts.Page < 1 {
		opts.Page = DefaultPage
	}
	if opts.Limit < 1 {
		opts.Limit = DefaultLimit
	}
	records, total, err := uc.kycRepo.List(opts)
	if err != nil {
		return nil, err
	}
	out := make([]dto.KYCResponse, 0, len(records))
	for _, r := range records {
		out = append(out, *toKYCResponse(r))
	}
	pages := int((total + int64(opts.Limit) - 1) / int64(opts.Limit))
	return &dto.KYCListResponse{
		KYCs:  out,
		Total: total,
		Page:  opts.Page,
		Pages: pages,
	}, nil
}

func toKYCResponse(k *entity.KYC) *dto.KYCResponse {
	if k == nil {
		return nil
	}
	return &dto.KYCResponse{
		ID:         k.ID,
		UserID:     k.UserID,
		Name:       k.Name,
		IDDocument: k.IDDocument,
		Status:     k.Status,
		CreatedAt:  k.CreatedAt,
		UpdatedAt:  k.UpdatedAt,
	}
}
