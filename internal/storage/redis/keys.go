package redis

import (
	"fmt"

	"github.com/mcoot/clubregistry/internal/model"
)

// Key prefix for all registry data
const keyPrefix = "clubreg"

// userKey returns the Redis key for a User record
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// userOrderKey returns the Redis key for the LIST of user ids in insertion order
func userOrderKey() string {
	return fmt.Sprintf("%s:idx:user_order", keyPrefix)
}
