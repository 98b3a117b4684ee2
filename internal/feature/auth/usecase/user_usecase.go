package usecase

import (
	"context"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/shared/paging"
)

// UserReader is the read side of the user store.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserReader interface {
	FindByUsername(ctx context.Context, username string) (*entity.AppUser, error)
	FindByEmail(ctx context.Context, email string) (*entity.AppUser, error)
	FindAllUsers(ctx context.Context, keyword string, req paging.PageRequest) (paging.Page[entity.AppUser], error)
	FindRoleByUsername(ctx context.Context, username string) ([]string, error)
}

// UserUsecase provides user lookups for the HTTP layer.
type UserUsecase struct {
	users UserReader
}

// NewUserUsecase creates a UserUsecase reading from users.
func NewUserUsecase(users UserReader) *UserUsecase {
	return &UserUsecase{users: users}
}

// GetByUsername returns the user or ErrUserNotFound.
func (u *UserUsecase) GetByUsername(ctx context.Context, username string) (*entity.AppUser, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetByEmail returns the user or ErrUserNotFound.
func (u *UserUsecase) GetByEmail(ctx context.Context, email string) (*entity.AppUser, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// SearchUsers pages through users whose username contains keyword, ignoring case.
// The keyword is wrapped with % here; % and _ typed by the caller keep their LIKE meaning.
func (u *UserUsecase) SearchUsers(ctx context.Context, keyword string, req paging.PageRequest) (paging.Page[entity.AppUser], error) {
	return u.users.FindAllUsers(ctx, "%"+keyword+"%", req)
}

// RolesOf returns the distinct role names of username, empty when there are none.
func (u *UserUsecase) RolesOf(ctx context.Context, username string) ([]string, error) {
	return u.users.FindRoleByUsername(ctx, username)
}
