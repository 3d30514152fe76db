package models

// Role classifies platform users
type Role string

const (
	RoleSchoolAdmin Role = "school_admin"
	RoleSubstitute  Role = "substitute"
	RoleSystemAdmin Role = "system_admin"
)

// Roles returns every declared role in declaration order
func Roles() []Role {
	return []Role{RoleSchoolAdmin, RoleSubstitute, RoleSystemAdmin}
}

func (r Role) String() string {
	return string(r)
}
