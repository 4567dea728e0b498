package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/payslip-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/payslip-api/pkg/config"
	"github.com/jhoicas/payslip-api/pkg/logger"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "payrollctl",
		Short:         "Operaciones offline sobre la base de nóminas",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newImportCmd(), newSeedAdminCmd())
	return root
}

// env configuración, logger y base de datos compartidos por los subcomandos.
type env struct {
	cfg    *config.Config
	log    *logger.Logger
	client *mongo.Client
	db     *mongo.Database
}

func loadEnv(ctx context.Context, needDB bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	e := &env{cfg: cfg, log: log}
	if !needDB {
		return e, nil
	}
	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("MONGO_URI es requerido")
	}
	client, err := mongodb.NewClient(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}
	e.client = client
	e.db = client.Database(cfg.Mongo.Database)
	return e, nil
}

func (e *env) close() {
	if e.client == nil {
		return
	}
	if err := e.client.Disconnect(context.Background()); err != nil {
		e.log.Error().Err(err).Msg("desconexión de MongoDB")
	}
}
