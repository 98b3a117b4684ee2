package entity

// Role is a named group of permission activities.
type Role struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:100;not null"`

	PermissionActivities []RolePermissionActivity `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM.
func (Role) TableName() string {
	return "tbl_roles"
}

// RolePermissionActivity grants a role one activity (read, write, ...) on a permission.
// A role without any row here is not reported by role lookups.
type RolePermissionActivity struct {
	ID         uint   `gorm:"primaryKey"`
	RoleID     uint   `gorm:"index;not null"`
	Permission string `gorm:"size:100;not null"`
	Activity   string `gorm:"size:50;not null"`
}

// TableName returns the table name for GORM.
func (RolePermissionActivity) TableName() string {
	return "tbl_role_permission_activities"
}

// Well-known role names.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)
