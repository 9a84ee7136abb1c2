package user

import "time"

type Role string

const (
	RoleClient  Role = "client"
	RoleCourier Role = "courier"
	RoleAdmin   Role = "admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleClient, RoleCourier, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID             uint
	FirstName      string
	LastName       string
	Username       string
	HashedPassword string
	PhoneNumber    *string
	Role           Role
	CreatedAt      time.Time
}

type RefreshToken struct {
	ID        uint
	Token     string
	UserID    uint
	CreatedAt time.Time
}

type RegisterParams struct {
	FirstName   string
	LastName    string
	Username    string
	Password    string
	PhoneNumber *string
	Role        Role
}

// UpdateProfileParams carries the full mutable field set. Role is immutable
// after creation and is deliberately absent here.
type UpdateProfileParams struct {
	UserID      uint
	FirstName   string
	LastName    string
	PhoneNumber *string
}

// TokenPair is what login and registration hand back to the transport layer.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
