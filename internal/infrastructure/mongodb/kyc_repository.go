package mongodb

import (
	"context"
	"fmt"

	"github.com/tu-usuario/kyc-api/internal/domain"
	"github.com/tu-usuario/kyc-api/internal/domain/entity"
	"github.com/tu-usuario/kyc-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repository.KYCRepository = (*KYCRepo)(nil)

// KYCRepo implementación del puerto KYCRepository sobre MongoDB.
type KYCRepo struct {
	db *DB
}

// NewKYCRepository construye el adaptador de persistencia para registros KYC.
func NewKYCRepository(db *DB) *KYCRepo {
	return &KYCRepo{db: db}
}

// Create persiste un nuevo registro. El índice único de userId convierte una
// carrera check-then-write en un duplicado detectado aquí mismo.
func (r *KYCRepo) Create(kyc *entity.KYC) error {
	_, err := r.db.collection(kycsCollection).InsertOne(context.Background(), kyc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrKYCAlreadyExists
		}
		return fmt.Errorf("insert kyc: %w", err)
	}
	return nil
}

// FindByUserID obtiene el registro del usuario; (nil, nil) si no existe.
func (r *KYCRepo) FindByUserID(userID string) (*entity.KYC, error) {
	record := &entity.KYC{}
	err := r.db.collection(kycsCollection).FindOne(context.Background(), bson.M{"userId": userID}).Decode(record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find kyc: %w", err)
	}
	return record, nil
}

// UpdateStatus sobreescribe el estado del registro del usuario indicado.
// Devuelve ErrKYCNotFound si el usuario no tiene registro.
func (r *KYCRepo) UpdateStatus(userID, status string) error {
	res, err := r.db.collection(kycsCollection).UpdateOne(
		context.Background(),
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"status": status}, "$currentDate": bson.M{"updatedAt": true}},
	)
	if err != nil {
		return fmt.Errorf("update kyc status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrKYCNotFound
	}
	return nil
}

// CountByStatus cuenta registros en ese estado.
func (r *KYCRepo) CountByStatus(status string) (int64, error) {
	n, err := r.db.collection(kycsCollection).CountDocuments(context.Background(), bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("count kycs: %w", err)
	}
	return n, nil
}

// List devuelve la página pedida y el total que satisface el filtro.
// El orden es por un único campo; sin sortBy se respeta el orden natural.
func (r *KYCRepo) List(opts repository.KYCListOptions) ([]*entity.KYC, int64, error) {
	ctx := context.Background()
	coll := r.db.collection(kycsCollection)

	filter := bson.M{}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count kycs for list: %w", err)
	}

	findOpts := options.Find().
		SetSkip(int64(opts.Page-1) * int64(opts.Limit)).
		SetLimit(int64(opts.Limit))
	if opts.SortBy != "" {
		dir := 1
		if opts.SortOrder == "desc" {
			dir = -1
		}
		findOpts.SetSort(bson.D{{Key: opts.SortBy, Value: dir}})
	}

	cursor, err := coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("list kycs: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*entity.KYC
	if err := cursor.All(ctx, &records); err != nil {
		return nil, 0, fmt.Errorf("decode kycs: %w", err)
	}
	return records, total, nil
}
