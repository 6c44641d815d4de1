package domain

// UserRole is the staff role code.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleManager UserRole = "MANAGER"
	RoleStaff   UserRole = "STAFF"
)

var userRoleLabels = map[UserRole]string{
	RoleAdmin:   "Administrator",
	RoleManager: "Manager",
	RoleStaff:   "Staff Member",
}

func (r UserRole) Label() string {
	if label, ok := userRoleLabels[r]; ok {
		return label
	}
	return string(r)
}

func (r UserRole) Valid() bool {
	_, ok := userRoleLabels[r]
	return ok
}

func UserRoles() []UserRole {
	return []UserRole{RoleAdmin, RoleManager, RoleStaff}
}

type UserStatus string

const (
	UserActive   UserStatus = "ACTIVE"
	UserInactive UserStatus = "INACTIVE"
)

func (s UserStatus) Label() string {
	switch s {
	case UserActive:
		return "Active"
	case UserInactive:
		return "Inactive"
	}
	return string(s)
}

func (s UserStatus) Valid() bool {
	return s == UserActive || s == UserInactive
}

type User struct {
	ID        int64      `json:"id"`
	UserID    string     `json:"user_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Role      UserRole   `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt Timestamp  `json:"created_at"`
	UpdatedAt Timestamp  `json:"updated_at"`
}
