package di

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	authadapters "shop_backend/internal/feature/auth/adapters"
	"shop_backend/internal/feature/auth/domain/entity"
	authusecase "shop_backend/internal/feature/auth/usecase"
)

// DefaultRoles are the roles every environment starts with.
// A role without any grant is never returned by role lookups, so each carries at least one.
var DefaultRoles = map[string][]authadapters.Grant{
	entity.RoleUser: {
		{Permission: "inventory", Activity: "read"},
		{Permission: "users", Activity: "read"},
	},
	entity.RoleAdmin: {
		{Permission: "inventory", Activity: "read"},
		{Permission: "inventory", Activity: "write"},
		{Permission: "users", Activity: "read"},
	},
}

// SeedRoles ensures DefaultRoles exist. It is safe to run repeatedly.
func SeedRoles(ctx context.Context, db *gorm.DB) error {
	roles := authadapters.NewRoleRepository(db)
	for _, name := range []string{entity.RoleUser, entity.RoleAdmin} {
		if _, err := roles.Ensure(ctx, name, DefaultRoles[name]...); err != nil {
			return err
		}
	}
	return nil
}

// GrantAdmin gives an existing user ROLE_ADMIN. Granting twice is a no-op.
// An unknown username returns an error wrapping usecase.ErrUserNotFound.
func GrantAdmin(ctx context.Context, db *gorm.DB, log *zap.Logger, username string) error {
	users := authadapters.NewUserRepository(db, log)
	u, err := users.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("grant admin to %s: %w", username, err)
	}
	if u == nil {
		return fmt.Errorf("grant admin to %s: %w", username, authusecase.ErrUserNotFound)
	}
	if err := users.AssignRoles(ctx, u.ID, entity.RoleAdmin); err != nil {
		return fmt.Errorf("grant admin to %s: %w", username, err)
	}
	log.Info("admin role granted", zap.String("username", username))
	return nil
}

// Bootstrap seeds the default roles and, when adminUsername is set, grants it ROLE_ADMIN.
// Run it after the tables are migrated.
func Bootstrap(ctx context.Context, db *gorm.DB, log *zap.Logger, adminUsername string) error {
	if err := SeedRoles(ctx, db); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	if adminUsername == "" {
		return nil
	}
	return GrantAdmin(ctx, db, log, adminUsername)
}
