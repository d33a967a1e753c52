package service

import (
	"context"
	"errors"
	"time"

	"github.com/webplotcentersj-hash/stock2/internal/dto"
	"github.com/webplotcentersj-hash/stock2/internal/model"
	"github.com/webplotcentersj-hash/stock2/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrCredencialesInvalidas is deliberately the same for unknown email and for
// wrong password so the login endpoint never reveals which one failed.
var ErrCredencialesInvalidas = errors.New("Credenciales inválidas")

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	usuarios        repository.UsuarioRepository
	jwtSecret       string
	expirationHours int
}

func NewAuthService(usuarios repository.UsuarioRepository, jwtSecret string, expirationHours int) AuthService {
	return &authService{usuarios: usuarios, jwtSecret: jwtSecret, expirationHours: expirationHours}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := s.usuarios.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrCredencialesInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	token, err := s.generateToken(u)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		User:  *UsuarioToResponse(u),
		Token: token,
	}, nil
}

func (s *authService) generateToken(u *model.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": u.ID.String(),
		"email":  u.Email,
		"rol":    u.Role,
		"iat":    now.Unix(),
		"exp":    now.Add(time.Duration(s.expirationHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// UsuarioToResponse maps a user row to its API shape. The password hash has no
// counterpart field, so it can never leak through serialization.
func UsuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
