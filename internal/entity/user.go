package entity

import "time"

type Role string

const (
	RoleFollower Role = "follower"
	RoleAuthor   Role = "author"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleFollower, RoleAuthor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	Password    string    `json:"-"`
	Role        Role      `json:"role"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Principal is the actor behind a request. A nil *Principal means the
// request is anonymous.
type Principal struct {
	ID   string
	Role Role
}

func (u *User) Principal() *Principal {
	if u == nil {
		return nil
	}
	return &Principal{ID: u.ID, Role: u.Role}
}
