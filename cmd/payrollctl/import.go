package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jhoicas/payslip-api/internal/application/importer"
	"github.com/jhoicas/payslip-api/internal/domain/entity"
	"github.com/jhoicas/payslip-api/internal/domain/repository"
	"github.com/jhoicas/payslip-api/internal/infrastructure/mongodb"
)

func newImportCmd() *cobra.Command {
	var (
		file   string
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Importa un export de nómina (CSV o XLSX) y lo fusiona por empleado",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			e, err := loadEnv(ctx, !dryRun)
			if err != nil {
				return err
			}
			defer e.close()

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("abrir %s: %w", file, err)
			}
			defer f.Close()

			rows, err := importer.ReadFile(filepath.Base(file), f)
			if err != nil {
				return err
			}
			e.log.Info().Str("file", file).Int("rows", len(rows)).Msg("import: archivo leído")

			var repo repository.PayrollRepository = dryRunRepo{}
			if !dryRun {
				repo = mongodb.NewPayrollRepository(e.db.Collection(e.cfg.Mongo.PayrollCollection))
			}
			report, err := importer.New(repo, e.log).Run(ctx, rows)
			if err != nil {
				return err
			}

			out := json.NewEncoder(cmd.OutOrStdout())
			out.SetIndent("", "  ")
			return out.Encode(report)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "ruta del export (.csv o .xlsx)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "limpia y agrupa sin escribir en la base")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// dryRunRepo descarta las escrituras; el reporte muestra operaciones sin inserciones.
type dryRunRepo struct{}

func (dryRunRepo) FindByIdentifier(context.Context, string) (*entity.EmployeePayroll, error) {
	return nil, nil
}

func (dryRunRepo) BulkUpsert(context.Context, []repository.PayrollUpsert) (repository.BulkResult, error) {
	return repository.BulkResult{}, nil
}
