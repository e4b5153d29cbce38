package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tu-usuario/kyc-api/internal/domain"
	"github.com/tu-usuario/kyc-api/internal/domain/entity"
	"github.com/tu-usuario/kyc-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre MongoDB.
type UserRepo struct {
	db *DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nuevo usuario. Un choque con los índices únicos de email o
// username (incluida una carrera posterior al find del caso de uso) se mapea al
// sentinel del campo que chocó.
func (r *UserRepo) Create(user *entity.User) error {
	_, err := r.db.collection(usersCollection).InsertOne(context.Background(), user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return duplicateUserError(err)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// duplicateUserError distingue qué índice único rechazó el insert. El driver
// solo expone el índice dentro del mensaje del write error ("index: username_1").
func duplicateUserError(err error) error {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if strings.Contains(e.Message, "index: username") {
				return domain.ErrUsernameTaken
			}
		}
	}
	return domain.ErrEmailAlreadyExists
}

// FindByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) FindByID(id string) (*entity.User, error) {
	return r.findOne(bson.M{"_id": id})
}

// FindByEmail obtiene un usuario por email; (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.findOne(bson.M{"email": email})
}

// FindByUsername obtiene un usuario por username; (nil, nil) si no existe.
func (r *UserRepo) FindByUsername(username string) (*entity.User, error) {
	return r.findOne(bson.M{"username": username})
}

// UpdateRole cambia el rol del usuario y actualiza updatedAt.
func (r *UserRepo) UpdateRole(id, role string) error {
	res, err := r.db.collection(usersCollection).UpdateOne(
		context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": role}, "$currentDate": bson.M{"updatedAt": true}},
	)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// CountByRole cuenta usuarios con ese rol.
func (r *UserRepo) CountByRole(role string) (int64, error) {
	n, err := r.db.collection(usersCollection).CountDocuments(context.Background(), bson.M{"role": role})
	if err != nil {
		return 0, fmt.Errorf("count users by role: %w", err)
	}
	return n, nil
}

func (r *UserRepo) findOne(filter bson.M) (*entity.User, error) {
	user := &entity.User{}
	err := r.db.collection(usersCollection).FindOne(context.Background(), filter).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
