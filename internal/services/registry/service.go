package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/clubregistry/internal/dependencies/idgen"
	"github.com/mcoot/clubregistry/internal/model"
	"github.com/mcoot/clubregistry/internal/storage"
)

// maxIDAttempts bounds retries when a generated id is already taken
const maxIDAttempts = 3

// ErrIDExhausted is returned when no unused id could be generated
var ErrIDExhausted = errors.New("could not generate an unused user id")

// RegisterInput is the untrusted field bag submitted for a registration.
// NewsLetter is nil when the client omitted it.
type RegisterInput struct {
	Username     string
	Password     string
	FavoriteClub string
	NewsLetter   any
}

// Service is the user registry: an ordered collection of validated users
type Service struct {
	storage storage.Storage
	ids     idgen.Generator
	logger  *slog.Logger
}

// New creates a new registry service
func New(storage storage.Storage, ids idgen.Generator, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		ids:     ids,
		logger:  logger,
	}
}

// Seed inserts the given users, skipping any whose id is already present
func (s *Service) Seed(ctx context.Context, users ...*model.User) error {
	for _, u := range users {
		err := s.storage.AddUser(ctx, u)
		if err != nil && !errors.Is(err, model.ErrUserExists) {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}
	return nil
}

// List returns all users in insertion order
func (s *Service) List(ctx context.Context) ([]*model.User, error) {
	return s.storage.ListUsers(ctx)
}

// Get returns a single user by id
func (s *Service) Get(ctx context.Context, id model.UserID) (*model.User, error) {
	return s.storage.GetUser(ctx, id)
}

// Register validates the input and appends a new user with a fresh id.
// Validation failures are returned as *ValidationError.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	newsLetter := in.NewsLetter
	if newsLetter == nil {
		newsLetter = false
	}

	user := &model.User{
		Username:     in.Username,
		Password:     in.Password,
		FavoriteClub: in.FavoriteClub,
		NewsLetter:   newsLetter,
	}

	for range maxIDAttempts {
		user.ID = model.UserID(s.ids.NewID())
		err := s.storage.AddUser(ctx, user)
		if err == nil {
			s.logger.Info("user registered",
				slog.String("user_id", string(user.ID)),
				slog.String("username", user.Username),
			)
			return user, nil
		}
		if !errors.Is(err, model.ErrUserExists) {
			return nil, fmt.Errorf("add user: %w", err)
		}
		s.logger.Warn("generated user id already taken", slog.String("user_id", string(user.ID)))
	}
	return nil, ErrIDExhausted
}

// Remove deletes the user with the given id, or returns model.ErrUserNotFound
func (s *Service) Remove(ctx context.Context, id model.UserID) error {
	if err := s.storage.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user removed", slog.String("user_id", string(id)))
	return nil
}
