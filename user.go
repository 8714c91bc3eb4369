package teamdesk

import (
	"context"

	"github.com/google/uuid"
)

type Role string

const (
	RoleManager Role = "manager"
	RoleMember  Role = "member"
)

// User is the identity record issued by the user service. The role is
// read-only on this side: it is whatever the server said at login.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     Role      `json:"role"`
}

// AuthPayload is the result of a successful login mutation.
type AuthPayload struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// IdentityBackend covers the GraphQL surface of the user service.
type IdentityBackend interface {
	FetchUsers(ctx context.Context) ([]User, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (User, error)
	Login(ctx context.Context, email, password string) (AuthPayload, error)
	Logout(ctx context.Context) error
}
