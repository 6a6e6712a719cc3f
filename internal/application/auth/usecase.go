package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/panasystem/panasystem-api/internal/application/dto"
	"github.com/panasystem/panasystem-api/internal/domain"
	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
	"github.com/panasystem/panasystem-api/pkg/config"
	"github.com/panasystem/panasystem-api/pkg/jwt"
)

// AuthUseCase maneja login y alta de usuarios. Las contraseñas se guardan
// con bcrypt; un login exitoso emite un JWT con usuario y rol.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg config.JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login valida credenciales y devuelve el token. Credenciales incorrectas y
// usuario inexistente fallan con el mismo error, sin distinguir el caso.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrUnauthorized
	}
	u, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Username, u.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	}, nil
}

// Register da de alta un usuario. Pensado para seeding y administración,
// no se expone sin autenticación.
func (uc *AuthUseCase) Register(ctx context.Context, username, password, name, role string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("usuario y contraseña son requeridos: %w", domain.ErrInvalidInput)
	}
	if role != entity.RoleAdmin && role != entity.RoleVendedor {
		return nil, fmt.Errorf("rol %q desconocido: %w", role, domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
