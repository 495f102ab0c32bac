package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domainerrors "deskflow/contexts/identity-access/auth-service/domain/errors"
	"deskflow/contexts/identity-access/auth-service/ports"
)

// Store holds the seeded user directory and live sessions, the local
// persistent storage of the source system.
type Store struct {
	mu       sync.RWMutex
	users    map[string]ports.User
	sessions map[string]ports.Session
}

func NewStore() *Store {
	now := time.Now().UTC()
	users := map[string]ports.User{
		"user_001": {
			UserID:    "user_001",
			Name:      "Sarah Chen",
			Email:     "sarah.chen@deskflow.io",
			Role:      "admin",
			Password:  "admin123",
			Status:    "active",
			CreatedAt: now.Add(-120 * 24 * time.Hour),
			UpdatedAt: now.Add(-120 * 24 * time.Hour),
		},
		"user_002": {
			UserID:    "user_002",
			Name:      "Marcus Webb",
			Email:     "marcus.webb@deskflow.io",
			Role:      "manager",
			Password:  "manager123",
			Status:    "active",
			CreatedAt: now.Add(-90 * 24 * time.Hour),
			UpdatedAt: now.Add(-90 * 24 * time.Hour),
		},
		"user_003": {
			UserID:    "user_003",
			Name:      "Priya Nair",
			Email:     "priya.nair@deskflow.io",
			Role:      "member",
			Password:  "member123",
			Status:    "active",
			CreatedAt: now.Add(-30 * 24 * time.Hour),
			UpdatedAt: now.Add(-30 * 24 * time.Hour),
		},
	}
	return &Store{
		users:    users,
		sessions: make(map[string]ports.Session),
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewToken() string {
	return uuid.NewString()
}

func (s *Store) GetUser(ctx context.Context, userID string) (ports.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return ports.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (ports.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return ports.User{}, domainerrors.ErrUserNotFound
}

func (s *Store) CreateUser(ctx context.Context, user ports.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.UserID] = user
	return nil
}

func (s *Store) UpdateUser(ctx context.Context, user ports.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.UserID]; !ok {
		return domainerrors.ErrUserNotFound
	}
	s.users[user.UserID] = user
	return nil
}

func (s *Store) CreateSession(ctx context.Context, session ports.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
	return nil
}

func (s *Store) GetSession(ctx context.Context, token string) (ports.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return ports.Session{}, domainerrors.ErrSessionNotFound
	}
	return session, nil
}

func (s *Store) DeleteSession(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return domainerrors.ErrSessionNotFound
	}
	delete(s.sessions, token)
	return nil
}
