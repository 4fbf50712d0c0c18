package registry

import (
	"regexp"
	"unicode/utf8"

	"github.com/mcoot/clubregistry/internal/model"
)

// Length limits, inclusive, counted in characters
const (
	MinUsernameLength = 6
	MaxUsernameLength = 20
	MinPasswordLength = 8
	MaxPasswordLength = 36
)

// Rejection reasons, in the order the rules are checked
const (
	ReasonUsernameRequired     = "Username required"
	ReasonPasswordRequired     = "Password required"
	ReasonFavoriteClubRequired = "favorite Club required"
	ReasonUsernameLength       = "Username must be between 6 and 20 characters"
	ReasonPasswordLength       = "Password must be between 8 and 36 characters"
	ReasonPasswordComposition  = "Password must be contain at least one digit"
	ReasonFavoriteClubUnknown  = "Not a valid club"
)

var (
	// Passwords are letters and digits only; the letter and digit checks are
	// separate because RE2 has no lookahead.
	passwordCharset = regexp.MustCompile(`^[A-Za-z\d]{8,}$`)
	passwordLetter  = regexp.MustCompile(`[A-Za-z]`)
	passwordDigit   = regexp.MustCompile(`\d`)
)

// ValidationError reports the first registration rule an input failed
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// rule is a single predicate in the registration pipeline
type rule struct {
	ok     func(in RegisterInput) bool
	reason string
}

// rules is evaluated in order; the first failing rule decides the rejection
var rules = []rule{
	{func(in RegisterInput) bool { return in.Username != "" }, ReasonUsernameRequired},
	{func(in RegisterInput) bool { return in.Password != "" }, ReasonPasswordRequired},
	{func(in RegisterInput) bool { return in.FavoriteClub != "" }, ReasonFavoriteClubRequired},
	{func(in RegisterInput) bool {
		return lengthBetween(in.Username, MinUsernameLength, MaxUsernameLength)
	}, ReasonUsernameLength},
	{func(in RegisterInput) bool {
		return lengthBetween(in.Password, MinPasswordLength, MaxPasswordLength)
	}, ReasonPasswordLength},
	{func(in RegisterInput) bool { return validPasswordComposition(in.Password) }, ReasonPasswordComposition},
	{func(in RegisterInput) bool { return model.IsClub(in.FavoriteClub) }, ReasonFavoriteClubUnknown},
}

// Validate runs the registration rules against the input and returns a
// *ValidationError for the first one that fails, or nil.
func Validate(in RegisterInput) error {
	for _, r := range rules {
		if !r.ok(in) {
			return &ValidationError{Reason: r.reason}
		}
	}
	return nil
}

func lengthBetween(s string, lo, hi int) bool {
	n := utf8.RuneCountInString(s)
	return n >= lo && n <= hi
}

func validPasswordComposition(password string) bool {
	return passwordCharset.MatchString(password) &&
		passwordLetter.MatchString(password) &&
		passwordDigit.MatchString(password)
}
