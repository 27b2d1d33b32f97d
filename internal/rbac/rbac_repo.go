package rbac

import (
	"context"

	"gorm.io/gorm"
)

// Repository reads extra grants stored in role_permissions on top of the
// built-in policy.
type Repository interface {
	GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type RolePermissionRow struct {
	Role     string
	Resource string
	Action   string
}

func (r *repository) GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error) {
	var result []RolePermissionRow

	err := r.db.WithContext(ctx).
		Table("role_permissions").
		Select("role, resource, action").
		Order("role, resource, action").
		Scan(&result).Error

	return result, err
}
