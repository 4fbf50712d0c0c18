package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mcoot/clubregistry/internal/model"
	"github.com/mcoot/clubregistry/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Users are held by value so callers never alias stored records.
type Storage struct {
	mu    sync.RWMutex
	users []model.User
}

// New creates a new, empty in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]*model.User, len(s.users))
	for i := range s.users {
		u := s.users[i]
		users[i] = &u
	}
	return users, nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, model.ErrUserNotFound
	}
	u := s.users[i]
	return &u, nil
}

func (s *Storage) AddUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(user.ID) >= 0 {
		return model.ErrUserExists
	}
	s.users = append(s.users, *user)
	return nil
}

func (s *Storage) DeleteUser(ctx context.Context, id model.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return model.ErrUserNotFound
	}
	s.users = slices.Delete(s.users, i, i+1)
	return nil
}

// indexOf must be called with mu held
func (s *Storage) indexOf(id model.UserID) int {
	return slices.IndexFunc(s.users, func(u model.User) bool {
		return u.ID == id
	})
}
