package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panasystem/panasystem-api/internal/application/auth"
	"github.com/panasystem/panasystem-api/internal/application/dto"
	"github.com/panasystem/panasystem-api/internal/domain"
	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
	"github.com/panasystem/panasystem-api/pkg/config"
	pkgjwt "github.com/panasystem/panasystem-api/pkg/jwt"
)

var _ repository.UserRepository = (*fakeUserRepo)(nil)

type fakeUserRepo struct {
	users map[string]*entity.User // por username
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.Username] = u
	return nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.users[username], nil
}

var testJWT = config.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	Expiration: 60,
	Issuer:     "panasystem-test",
}

func newTestUC() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	return auth.NewAuthUseCase(repo, testJWT), repo
}

func TestRegisterYLogin(t *testing.T) {
	uc, _ := newTestUC()

	u, err := uc.Register(context.Background(), "dueña", "secreta123", "La Dueña", entity.RoleAdmin)
	require.NoError(t, err)
	assert.NotEqual(t, "secreta123", u.PasswordHash, "la contraseña nunca se guarda en claro")

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "dueña", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, "dueña", out.Username)
	assert.Equal(t, entity.RoleAdmin, out.Role)

	// El token emitido es verificable y trae los claims del usuario.
	userID, username, role, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
	assert.Equal(t, "dueña", username)
	assert.Equal(t, entity.RoleAdmin, role)
}

// Usuario inexistente y contraseña incorrecta devuelven el MISMO error: no se
// filtra si la cuenta existe.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newTestUC()
	_, err := uc.Register(context.Background(), "vendedora1", "secreta123", "", entity.RoleVendedor)
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "vendedora1", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "no-existe", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "", Password: ""})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegister_Validaciones(t *testing.T) {
	uc, _ := newTestUC()

	_, err := uc.Register(context.Background(), "", "pass", "", entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(context.Background(), "user", "", "", entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(context.Background(), "user", "pass", "", "gerente")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "solo admin y vendedor son roles válidos")
}
