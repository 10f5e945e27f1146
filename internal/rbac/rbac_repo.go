package rbac

import (
	"gorm.io/gorm"
)

type EmployeeRole struct {
	EmployeeID string
	RoleID     string
}

type RolePermission struct {
	RoleID   string
	Resource string
	Action   string
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetEmployeeRoles() ([]EmployeeRole, error)
	GetRolePermissions() ([]RolePermission, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetEmployeeRoles() ([]EmployeeRole, error) {
	var roles []EmployeeRole
	query := `
SELECT employee_id::text, role_id::text
FROM employee_roles
`
	err := r.db.Raw(query).Scan(&roles).Error
	return roles, err
}

func (r *repository) GetRolePermissions() ([]RolePermission, error) {
	var perms []RolePermission
	query := `
SELECT rp.role_id::text, p.resource, p.action
FROM role_permissions rp
JOIN permissions p ON p.id = rp.permission_id
`
	err := r.db.Raw(query).Scan(&perms).Error
	return perms, err
}
