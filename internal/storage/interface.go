package storage

import (
	"context"

	"github.com/mcoot/clubregistry/internal/model"
)

// Storage defines the interface for the ordered user collection.
// Implementations must keep insertion order and make each call atomic.
type Storage interface {
	// ListUsers returns every user in insertion order
	ListUsers(ctx context.Context) ([]*model.User, error)

	// GetUser returns model.ErrUserNotFound if no user has the id
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)

	// AddUser appends the user, or returns model.ErrUserExists if the id is taken
	AddUser(ctx context.Context, user *model.User) error

	// DeleteUser removes the user, or returns model.ErrUserNotFound
	DeleteUser(ctx context.Context, id model.UserID) error
}
