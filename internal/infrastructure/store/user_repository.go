package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/jhoicas/Storefront-api/internal/domain/repository"
)

// UserRepo implementa repository.UserRepository sobre la colección users.
type UserRepo struct {
	users collection[userDoc]
}

// NewUserRepo construye el repositorio de usuarios.
func NewUserRepo(docs DocumentStore) *UserRepo {
	return &UserRepo{users: collection[userDoc]{docs: docs, name: CollectionUsers}}
}

var _ repository.UserRepository = (*UserRepo)(nil)

// Create inserta un usuario nuevo; un id existente devuelve domain.ErrConflict.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	version, err := r.users.put(ctx, user.ID, newUserDoc(user), 0)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	user.Version = version
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	rec, err := r.users.get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	return rec.value.toEntity(rec.version), nil
}

// GetByUsername busca por username exacto.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range all {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// FindByIdentifier devuelve los usuarios cuyo username o email coincide.
func (r *UserRepo) FindByIdentifier(ctx context.Context, identifier string) ([]*entity.User, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*entity.User
	for _, u := range all {
		if u.Username == identifier || (u.Email != "" && u.Email == identifier) {
			out = append(out, u)
		}
	}
	return out, nil
}

// List devuelve todos los usuarios en orden de inserción.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	recs, err := r.users.list(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]*entity.User, 0, len(recs))
	for i := range recs {
		out = append(out, recs[i].value.toEntity(recs[i].version))
	}
	return out, nil
}

// Update reemplaza el usuario comparando user.Version.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	version, err := r.users.put(ctx, user.ID, newUserDoc(user), user.Version)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	user.Version = version
	return nil
}

// Delete elimina el usuario; false si no existía.
func (r *UserRepo) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := r.users.delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return ok, nil
}

// Count número de usuarios registrados.
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	n, err := r.users.count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
