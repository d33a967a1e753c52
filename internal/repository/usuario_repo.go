package repository

import (
	"context"

	"github.com/webplotcentersj-hash/stock2/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsuarioRepository defines the data access contract for users.
// Services and the auth middleware depend on this interface, not on the
// concrete GORM implementation, enabling unit testing via in-memory fakes.
type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	// ListExcept returns every user except the given one, ordered by name.
	ListExcept(ctx context.Context, id uuid.UUID) ([]model.Usuario, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *usuarioRepo) ListExcept(ctx context.Context, id uuid.UUID) ([]model.Usuario, error) {
	var users []model.Usuario
	err := r.db.WithContext(ctx).Where("id <> ?", id).Order("name ASC").Find(&users).Error
	return users, err
}
