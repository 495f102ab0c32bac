package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	domainerrors "deskflow/contexts/identity-access/auth-service/domain/errors"
	"deskflow/contexts/identity-access/auth-service/ports"
	"deskflow/internal/shared/events"
)

var allowedRoles = map[string]struct{}{
	"admin":   {},
	"manager": {},
	"member":  {},
	"viewer":  {},
}

type Service struct {
	Repo   ports.Repository
	Events ports.EventRecorder
	Clock  ports.Clock
	Tokens ports.TokenGenerator
	Logger *slog.Logger
}

// Login checks the mock credential, opens a session and emits
// user_login. Credential security is out of scope by design; the user
// store carries the source system's plain mock passwords.
func (s Service) Login(ctx context.Context, email string, password string, userAgent string) (ports.Session, ports.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return ports.Session{}, ports.User{}, domainerrors.ErrInvalidRequest
	}

	user, err := s.Repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return ports.Session{}, ports.User{}, domainerrors.ErrInvalidCredentials
		}
		return ports.Session{}, ports.User{}, err
	}
	if user.Password != password {
		return ports.Session{}, ports.User{}, domainerrors.ErrInvalidCredentials
	}

	session := ports.Session{
		Token:     s.Tokens.NewToken(),
		UserID:    user.UserID,
		UserAgent: userAgent,
		CreatedAt: s.Clock.Now(),
	}
	if err := s.Repo.CreateSession(ctx, session); err != nil {
		return ports.Session{}, ports.User{}, err
	}

	resolveLogger(s.Logger).Info("user logged in",
		"event", "user_login",
		"module", "identity-access/auth-service",
		"layer", "application",
		"user_id", user.UserID,
	)
	s.Events.UserLogin(Snapshot(user), userAgent)
	return session, user, nil
}

func (s Service) Logout(ctx context.Context, token string) error {
	session, err := s.Repo.GetSession(ctx, token)
	if err != nil {
		return err
	}
	user, err := s.Repo.GetUser(ctx, session.UserID)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteSession(ctx, token); err != nil {
		return err
	}
	s.Events.UserLogout(Snapshot(user))
	return nil
}

// CurrentUser resolves the session token to its user. No event: reads
// of the auth state are not state changes.
func (s Service) CurrentUser(ctx context.Context, token string) (ports.User, error) {
	session, err := s.Repo.GetSession(ctx, token)
	if err != nil {
		return ports.User{}, err
	}
	return s.Repo.GetUser(ctx, session.UserID)
}

func (s Service) GetUser(ctx context.Context, userID string) (ports.User, error) {
	if strings.TrimSpace(userID) == "" {
		return ports.User{}, domainerrors.ErrInvalidRequest
	}
	return s.Repo.GetUser(ctx, userID)
}

// UpdateProfile applies a name/email change map to the acting user and
// emits user_profile_updated with the applied delta.
func (s Service) UpdateProfile(ctx context.Context, userID string, changes map[string]any) (ports.User, error) {
	if len(changes) == 0 {
		return ports.User{}, domainerrors.ErrInvalidRequest
	}
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return ports.User{}, err
	}

	for key, value := range changes {
		switch key {
		case "name":
			name, ok := value.(string)
			if !ok || strings.TrimSpace(name) == "" {
				return ports.User{}, domainerrors.ErrInvalidRequest
			}
			user.Name = name
		case "email":
			email, ok := value.(string)
			if !ok || !strings.Contains(email, "@") {
				return ports.User{}, domainerrors.ErrInvalidRequest
			}
			user.Email = strings.ToLower(strings.TrimSpace(email))
		default:
			return ports.User{}, domainerrors.ErrInvalidRequest
		}
	}

	user.UpdatedAt = s.Clock.Now()
	if err := s.Repo.UpdateUser(ctx, user); err != nil {
		return ports.User{}, err
	}
	s.Events.UserProfileUpdated(Snapshot(user), changes)
	return user, nil
}

// InviteUser registers an invited user record and emits user_invited.
func (s Service) InviteUser(ctx context.Context, actor events.Actor, email string, role string) (ports.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return ports.User{}, domainerrors.ErrInvalidRequest
	}
	if _, ok := allowedRoles[role]; !ok {
		return ports.User{}, domainerrors.ErrInvalidRole
	}
	if _, err := s.Repo.GetUserByEmail(ctx, email); err == nil {
		return ports.User{}, domainerrors.ErrEmailTaken
	} else if !errors.Is(err, domainerrors.ErrUserNotFound) {
		return ports.User{}, err
	}

	now := s.Clock.Now()
	user := ports.User{
		UserID:    s.Tokens.NewToken(),
		Name:      strings.SplitN(email, "@", 2)[0],
		Email:     email,
		Role:      role,
		Status:    "invited",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return ports.User{}, err
	}
	s.Events.UserInvited(actor, email, role)
	return user, nil
}

func (s Service) ChangeRole(ctx context.Context, actor events.Actor, userID string, newRole string) (ports.User, error) {
	if _, ok := allowedRoles[newRole]; !ok {
		return ports.User{}, domainerrors.ErrInvalidRole
	}
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return ports.User{}, err
	}

	oldRole := user.Role
	user.Role = newRole
	user.UpdatedAt = s.Clock.Now()
	if err := s.Repo.UpdateUser(ctx, user); err != nil {
		return ports.User{}, err
	}
	s.Events.UserRoleChanged(actor, user.UserID, oldRole, newRole)
	return user, nil
}

// Snapshot denormalizes a user into the actor shape carried by event
// envelopes.
func Snapshot(user ports.User) events.Actor {
	return events.Actor{
		ID:    user.UserID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
