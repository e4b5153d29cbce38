package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/kyc-api/pkg/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Nombres de las colecciones.
const (
	usersCollection = "users"
	kycsCollection  = "kycs"
)

// Timeout de conexión y ping inicial.
const connectTimeout = 10 * time.Second

// DB conexión a MongoDB más el nombre de la base a usar.
type DB struct {
	client *mongo.Client
	name   string
}

// Connect abre la conexión y verifica con un ping.
func Connect(cfg config.DBConfig) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, fmt.Errorf("conectar a mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping a mongo: %w", err)
	}
	return &DB{client: client, name: cfg.Database}, nil
}

// Disconnect cierra la conexión.
func (db *DB) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return db.client.Disconnect(ctx)
}

func (db *DB) collection(name string) *mongo.Collection {
	return db.client.Database(db.name).Collection(name)
}

// EnsureIndexes crea los índices únicos que sostienen las invariantes de
// unicidad: email y username de users, y userId de kycs (un KYC por usuario).
// Con ellos el insert es la autoridad atómica; el find previo solo mejora el
// mensaje de error. Debe ejecutarse antes de servir tráfico.
func (db *DB) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	unique := options.Index().SetUnique(true)

	_, err := db.collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
	})
	if err != nil {
		return fmt.Errorf("índices de users: %w", err)
	}

	_, err = db.collection(kycsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("índice de kycs: %w", err)
	}
	return nil
}
