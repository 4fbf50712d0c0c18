package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mcoot/clubregistry/internal/services/registry"
)

// ErrTrailingData is returned when a body holds more than one JSON value
var ErrTrailingData = errors.New("unexpected data after JSON body")

// RegisterUserRequest is the request body for registering a user.
// NewsLetter accepts any JSON value and is stored untouched.
type RegisterUserRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	FavoriteClub string `json:"favoriteClub"`
	NewsLetter   any    `json:"newsLetter"`
}

// DecodeRegisterUser reads a registration body from r.
// Keys must match exactly; an empty body decodes to an empty request.
func DecodeRegisterUser(r io.Reader) (RegisterUserRequest, error) {
	var req RegisterUserRequest

	dec := json.NewDecoder(r)
	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return req, nil
		}
		return req, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return req, ErrTrailingData
	}

	var err error
	if req.Username, err = stringField(fields, "username"); err != nil {
		return req, err
	}
	if req.Password, err = stringField(fields, "password"); err != nil {
		return req, err
	}
	if req.FavoriteClub, err = stringField(fields, "favoriteClub"); err != nil {
		return req, err
	}
	if raw, ok := fields["newsLetter"]; ok {
		if err := json.Unmarshal(raw, &req.NewsLetter); err != nil {
			return req, fmt.Errorf("field newsLetter: %w", err)
		}
	}
	return req, nil
}

func stringField(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("field %s: %w", key, err)
	}
	return s, nil
}

// Input converts the request into registry input
func (r RegisterUserRequest) Input() registry.RegisterInput {
	return registry.RegisterInput{
		Username:     r.Username,
		Password:     r.Password,
		FavoriteClub: r.FavoriteClub,
		NewsLetter:   r.NewsLetter,
	}
}
