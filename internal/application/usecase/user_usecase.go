package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/payslip-api/internal/application/dto"
	"github.com/jhoicas/payslip-api/internal/domain"
	"github.com/jhoicas/payslip-api/internal/domain/entity"
	"github.com/jhoicas/payslip-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength longitud mínima aceptada al reemplazar una contraseña.
const MinPasswordLength = 4

// UserUseCase aplica reglas de negocio para las cuentas de la aplicación.
type UserUseCase struct {
	repo repository.UserRepository
	cost int
	now  func() time.Time
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo, cost: bcrypt.DefaultCost, now: time.Now}
}

// WithHashCost ajusta el costo de bcrypt (los tests usan bcrypt.MinCost).
func (uc *UserUseCase) WithHashCost(cost int) *UserUseCase {
	uc.cost = cost
	return uc
}

// Create crea un usuario. Requiere los cuatro campos; rechaza email duplicado con
// domain.ErrEmailAlreadyExists.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, fmt.Errorf("%w: name, email, password y role son requeridos", domain.ErrInvalidInput)
	}
	if !entity.ValidRole(in.Role) {
		return nil, fmt.Errorf("%w: role debe ser admin o user", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("crear usuario: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, fmt.Errorf("crear usuario: hash: %w", err)
	}
	now := uc.now()
	user := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// List devuelve todas las cuentas sin hash de contraseña.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *entityToUserResponse(u))
	}
	return out, nil
}

// UpdatePassword reemplaza el hash de la contraseña de un usuario.
func (uc *UserUseCase) UpdatePassword(ctx context.Context, id, password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password debe tener al menos %d caracteres", domain.ErrInvalidInput, MinPasswordLength)
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("cambiar password: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.cost)
	if err != nil {
		return fmt.Errorf("cambiar password: hash: %w", err)
	}
	return uc.repo.UpdatePassword(ctx, id, string(hash))
}

// Delete elimina una cuenta; domain.ErrUserNotFound si no existe.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
