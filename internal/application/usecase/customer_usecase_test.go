package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panasystem/panasystem-api/internal/application/dto"
	"github.com/panasystem/panasystem-api/internal/application/usecase"
	"github.com/panasystem/panasystem-api/internal/domain"
	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	cc := *c
	r.customers[c.ID] = &cc
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	cc := *c
	r.customers[c.ID] = &cc
	return nil
}

func (r *fakeCustomerRepo) List(_ context.Context, search string, _, _ int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		if search != "" && c.Name != search {
			continue
		}
		cc := *c
		out = append(out, &cc)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id string) error {
	delete(r.customers, id)
	return nil
}

func newCustomerUC() *usecase.CustomerUseCase {
	return usecase.NewCustomerUseCase(&fakeCustomerRepo{customers: make(map[string]*entity.Customer)})
}

func TestCustomerCreate_ActivoPorDefecto(t *testing.T) {
	uc := newCustomerUC()
	out, err := uc.Create(context.Background(), dto.CustomerRequest{
		Name: "Panadería del barrio",
		City: entity.CityArroyoCabral,
	})
	require.NoError(t, err)
	assert.True(t, out.IsActive, "el cliente nace activo si no se indica lo contrario")
	assert.Equal(t, "ac", out.City)
}

func TestCustomerCreate_Validaciones(t *testing.T) {
	uc := newCustomerUC()

	_, err := uc.Create(context.Background(), dto.CustomerRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre requerido")

	_, err = uc.Create(context.Background(), dto.CustomerRequest{Name: "X", City: "cba"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "solo ac, lc o vacío")
}

func TestCustomerCreate_CiudadVaciaEsValida(t *testing.T) {
	uc := newCustomerUC()
	out, err := uc.Create(context.Background(), dto.CustomerRequest{Name: "Sin reparto"})
	require.NoError(t, err)
	assert.Equal(t, "", out.City)
}

func TestCustomerUpdate_Desactivar(t *testing.T) {
	uc := newCustomerUC()
	created, err := uc.Create(context.Background(), dto.CustomerRequest{Name: "Panadería del barrio"})
	require.NoError(t, err)

	inactive := false
	out, err := uc.Update(context.Background(), created.ID, dto.CustomerRequest{
		Name:     "Panadería del barrio",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, out.IsActive)
}

func TestCustomerUpdate_NoExiste(t *testing.T) {
	uc := newCustomerUC()
	_, err := uc.Update(context.Background(), "nope", dto.CustomerRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
