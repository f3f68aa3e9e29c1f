package user

import "time"

// Username constraints enforced at registration
const (
	MinUsernameLength = 3
	MaxUsernameLength = 32
	MinPasswordLength = 8
)

// Name cache tuning. Username to player ID mappings never change, so a
// generous TTL is safe.
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 10 * time.Minute
)
