package auth_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dulceria/sweetshop-api/internal/application/auth"
	"github.com/dulceria/sweetshop-api/internal/application/dto"
	"github.com/dulceria/sweetshop-api/internal/domain"
	"github.com/dulceria/sweetshop-api/internal/domain/entity"
	pkgjwt "github.com/dulceria/sweetshop-api/pkg/jwt"
)

type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*entity.User
	// failNextCreate simula la carrera chequeo/insert: el insert choca con el
	// constraint único aunque el chequeo previo no vio el email.
	failNextCreate bool
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNextCreate {
		r.failNextCreate = false
		return domain.ErrEmailAlreadyExists
	}
	if _, ok := r.users[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newUseCase() (*auth.AuthUseCase, *memUserRepo) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "sweetshop-test",
	})
	return uc, repo
}

func TestRegister_HasheaPasswordYAsignaRolUser(t *testing.T) {
	uc, repo := newUseCase()

	out, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "ana@example.com", out.Email)
	assert.Equal(t, entity.RoleUser, out.Role)

	stored, err := repo.GetByEmail("ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "el password nunca se almacena en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")),
		"el hash almacenado debe verificar contra el password original")
}

func TestRegister_CamposVacios_Validacion(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Register(dto.RegisterRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrMissingFields)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrMissingFields)
}

func TestRegister_EmailDuplicado_Conflicto(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_CarreraEnInsert_MismoConflicto(t *testing.T) {
	// La violación de unicidad reportada por el store en el insert produce el
	// mismo 409 que el chequeo previo.
	uc, repo := newUseCase()
	repo.failNextCreate = true

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_DevuelveTokenConUserIDYRol(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
	assert.Equal(t, entity.RoleUser, role)
}

func TestLogin_EmailDesconocidoYPasswordIncorrecto_MismoError(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	_, errWrongPass := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	_, errNoUser := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "secreta123"})

	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error(),
		"ambos fallos comparten mensaje: no se puede enumerar usuarios")
}

func TestLogin_CamposVacios_Validacion(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Login(dto.LoginRequest{Email: "ana@example.com"})
	assert.ErrorIs(t, err, domain.ErrMissingFields)
}

func TestLogin_SinSecret_ErrorInterno(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: "", ExpMinutes: 60})

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"})
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgjwt.ErrNoSecret)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials,
		"un secret ausente es fallo interno, no credenciales inválidas")
}
