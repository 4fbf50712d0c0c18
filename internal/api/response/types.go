package response

import "github.com/mcoot/clubregistry/internal/model"

// User represents a user in API responses.
// The password is returned as stored.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	FavoriteClub string `json:"favoriteClub"`
	NewsLetter   any    `json:"newsLetter"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:           string(u.ID),
		Username:     u.Username,
		Password:     u.Password,
		FavoriteClub: u.FavoriteClub,
		NewsLetter:   u.NewsLetter,
	}
}

// UsersFromModel converts a list of users, never returning nil
func UsersFromModel(users []*model.User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = UserFromModel(u)
	}
	return out
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}
