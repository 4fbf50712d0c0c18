package model

import "slices"

// UserID uniquely identifies a registered user
type UserID string

// User is a single registration record.
// Password is stored as submitted; NewsLetter holds whatever JSON value the
// client sent (false when omitted).
type User struct {
	ID           UserID `json:"id"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	FavoriteClub string `json:"favoriteClub"`
	NewsLetter   any    `json:"newsLetter"`
}

// Clubs is the closed set of accepted favorite clubs
var Clubs = []string{
	"Cache Valley Stone Society",
	"Ogden Curling Club",
	"Park City Curling Club",
	"Salt City Curling Club",
	"Utah Olympic Oval Curling Club",
}

// IsClub reports whether name exactly matches one of Clubs
func IsClub(name string) bool {
	return slices.Contains(Clubs, name)
}

// FixtureUsers returns the records present at process start.
// A fresh slice is returned on every call so callers may keep the pointers.
func FixtureUsers() []*User {
	return []*User{
		{
			ID:           "3c8da4d5-1597-46e7-baa1-e402aed70d80",
			Username:     "sallyStudent",
			Password:     "c00d1ng1sc00l",
			FavoriteClub: "Cache Valley Stone Society",
			NewsLetter:   "true",
		},
		{
			ID:           "ce20079c-2326-4f17-8ac4-f617bfd28b7f",
			Username:     "johnBlocton",
			Password:     "veryg00dpassw0rd",
			FavoriteClub: "Salt City Curling Club",
			NewsLetter:   "false",
		},
	}
}
