package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/payslip-api/internal/application/dto"
	"github.com/jhoicas/payslip-api/internal/application/usecase"
	"github.com/jhoicas/payslip-api/internal/domain"
	"github.com/jhoicas/payslip-api/internal/domain/entity"
	"github.com/jhoicas/payslip-api/internal/infrastructure/mongodb"
)

func newSeedAdminCmd() *cobra.Command {
	var in dto.CreateUserRequest
	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Crea la cuenta de administrador si el email no existe",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			e, err := loadEnv(ctx, true)
			if err != nil {
				return err
			}
			defer e.close()

			if err := mongodb.EnsureIndexes(ctx, e.db, e.cfg.Mongo); err != nil {
				e.log.Warn().Err(err).Msg("no se pudieron crear los índices")
			}

			users := usecase.NewUserUseCase(mongodb.NewUserRepository(e.db.Collection(e.cfg.Mongo.UsersCollection)))
			in.Role = entity.RoleAdmin
			out, err := users.Create(ctx, in)
			switch {
			case errors.Is(err, domain.ErrEmailAlreadyExists):
				fmt.Fprintf(cmd.OutOrStdout(), "el administrador %s ya existe\n", in.Email)
				return nil
			case err != nil:
				return err
			}
			e.log.Info().Str("user_id", out.ID).Str("email", out.Email).Msg("administrador creado")
			fmt.Fprintf(cmd.OutOrStdout(), "administrador creado: %s (%s)\n", out.Email, out.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Email, "email", "", "email del administrador")
	cmd.Flags().StringVar(&in.Password, "password", "", "contraseña inicial")
	cmd.Flags().StringVar(&in.Name, "name", "admin", "nombre visible")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
