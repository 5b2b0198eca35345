// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// AttendanceKeyPrefix is the prefix for per-occurrence attendance count keys.
// Keys are formed as attendance:<eventID>:<YYYY-MM-DD>.
const AttendanceKeyPrefix = "attendance:"

// FeedCacheKey stores the pre-materialized upcoming-occurrences feed.
const FeedCacheKey = "feed:upcoming"

// FeedCacheTTL bounds staleness of the pre-materialized feed between cron runs.
const FeedCacheTTL = 2 * time.Hour
