package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/payslip-api/pkg/config"
)

// NewClient conecta con MongoDB y verifica la conexión con un ping.
// El timeout de la configuración aplica a la conexión inicial y al ping.
func NewClient(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.Timeout).
		SetServerSelectionTimeout(cfg.Timeout)

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar mongo: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// EnsureIndexes crea los índices que el servicio necesita: email único en usuarios y
// búsqueda por identificador en nóminas. Es idempotente.
func EnsureIndexes(ctx context.Context, db *mongo.Database, cfg config.MongoConfig) error {
	_, err := db.Collection(cfg.UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	if err != nil {
		return fmt.Errorf("índice de usuarios: %w", err)
	}

	_, err = db.Collection(cfg.PayrollCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "ippis_no", Value: 1}}, Options: options.Index().SetName("ippis_no")},
		{Keys: bson.D{{Key: "service_no", Value: 1}}, Options: options.Index().SetName("service_no")},
	})
	if err != nil {
		return fmt.Errorf("índices de nómina: %w", err)
	}
	return nil
}
