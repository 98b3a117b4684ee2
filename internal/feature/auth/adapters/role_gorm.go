package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/usecase"
)

// Grant is a permission/activity pair attached to a role.
type Grant struct {
	Permission string
	Activity   string
}

// roleGorm manages roles and their permission activities.
type roleGorm struct {
	db *gorm.DB
}

// NewRoleRepository creates a roleGorm backed by db.
func NewRoleRepository(db *gorm.DB) *roleGorm {
	return &roleGorm{db: db}
}

// Ensure creates the role if missing and adds any grant it does not have yet.
// Existing grants are left untouched.
func (r *roleGorm) Ensure(ctx context.Context, name string, grants ...Grant) (*entity.Role, error) {
	var role entity.Role
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(entity.Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
			return err
		}
		for _, g := range grants {
			activity := entity.RolePermissionActivity{
				RoleID:     role.ID,
				Permission: g.Permission,
				Activity:   g.Activity,
			}
			if err := tx.Where(activity).FirstOrCreate(&activity).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ensure role %s: %w", name, err)
	}
	return &role, nil
}

// FindByName returns the role with its permission activities.
func (r *roleGorm) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	var role entity.Role
	if err := r.db.WithContext(ctx).
		Preload("PermissionActivities").
		Where("name = ?", name).
		First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}
