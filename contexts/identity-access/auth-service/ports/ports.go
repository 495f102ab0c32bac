package ports

import (
	"context"
	"time"

	"deskflow/internal/shared/events"
)

type Clock interface {
	Now() time.Time
}

type TokenGenerator interface {
	NewToken() string
}

type User struct {
	UserID    string
	Name      string
	Email     string
	Role      string
	Password  string // mock credential, plain by design of the source system
	Status    string // active or invited
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Session struct {
	Token     string
	UserID    string
	UserAgent string
	CreatedAt time.Time
}

type Repository interface {
	GetUser(ctx context.Context, userID string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	CreateUser(ctx context.Context, user User) error
	UpdateUser(ctx context.Context, user User) error

	CreateSession(ctx context.Context, session Session) error
	GetSession(ctx context.Context, token string) (Session, error)
	DeleteSession(ctx context.Context, token string) error
}

type EventRecorder interface {
	UserLogin(actor events.Actor, userAgent string)
	UserLogout(actor events.Actor)
	UserInvited(actor events.Actor, invitedEmail string, role string)
	UserRoleChanged(actor events.Actor, userID string, oldRole string, newRole string)
	UserProfileUpdated(actor events.Actor, changes map[string]any)
}
