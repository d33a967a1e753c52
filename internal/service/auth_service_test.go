package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/webplotcentersj-hash/stock2/internal/dto"
	"github.com/webplotcentersj-hash/stock2/internal/model"
	"github.com/webplotcentersj-hash/stock2/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func seedUsuarioConPassword(r *stubUsuarioRepo, email, password, role string) *model.Usuario {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &model.Usuario{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Usuario Test",
		PasswordHash: string(hash),
		Role:         role,
	}
	r.usuarios[u.ID] = u
	return u
}

func TestLogin_TokenContieneUserID(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := seedUsuarioConPassword(repo, "ana@stock2.local", "secreta123", "ventas")
	svc := service.NewAuthService(repo, testSecret, 168)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@stock2.local",
		Password: "secreta123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	// The token's userId claim must match the authenticated row
	parsed, err := jwt.Parse(resp.Token, func(_ *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, u.ID.String(), claims["userId"])
	assert.Equal(t, "ana@stock2.local", claims["email"])
	assert.Equal(t, "ventas", claims["rol"])

	assert.Equal(t, u.ID.String(), resp.User.ID)
	assert.Equal(t, "ventas", resp.User.Role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUsuarioConPassword(repo, "ana@stock2.local", "secreta123", "ventas")
	svc := service.NewAuthService(repo, testSecret, 168)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@stock2.local",
		Password: "otra",
	})
	assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)
}

func TestLogin_EmailInexistente(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewAuthService(repo, testSecret, 168)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@stock2.local",
		Password: "x",
	})
	// same error as wrong password — no user enumeration
	assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)
}

func TestUsuarioResponse_NuncaSerializaPassword(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := seedUsuarioConPassword(repo, "ana@stock2.local", "secreta123", "ventas")
	svc := service.NewAuthService(repo, testSecret, 168)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@stock2.local",
		Password: "secreta123",
	})
	require.NoError(t, err)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), u.PasswordHash)
}

func TestListarUsuarios_ExcluyeAlSolicitante(t *testing.T) {
	repo := newStubUsuarioRepo()
	yo := seedUsuario(repo, "Yo", "yo@stock2.local", "ventas")
	seedUsuario(repo, "Berta", "berta@stock2.local", "compras")
	seedUsuario(repo, "Aldo", "aldo@stock2.local", "administración")
	svc := service.NewUsuarioService(repo)

	out, err := svc.Listar(context.Background(), yo.ID)
	require.NoError(t, err)
	require.Len(t, out, 2)
	// ordered by name, caller absent
	assert.Equal(t, "Aldo", out[0].Name)
	assert.Equal(t, "Berta", out[1].Name)
}
