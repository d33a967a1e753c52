package service

import (
	"context"

	"github.com/webplotcentersj-hash/stock2/internal/dto"
	"github.com/webplotcentersj-hash/stock2/internal/repository"

	"github.com/google/uuid"
)

type UsuarioService interface {
	// Listar returns every user except the caller, ordered by name.
	Listar(ctx context.Context, callerID uuid.UUID) ([]dto.UsuarioResponse, error)
}

type usuarioService struct {
	repo repository.UsuarioRepository
}

func NewUsuarioService(repo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{repo: repo}
}

func (s *usuarioService) Listar(ctx context.Context, callerID uuid.UUID) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.repo.ListExcept(ctx, callerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, *UsuarioToResponse(&usuarios[i]))
	}
	return out, nil
}
