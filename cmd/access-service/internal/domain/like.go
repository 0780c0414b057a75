package domain

// LikeCount is the result of reading an album's like aggregate. FromCache
// tags the freshness guarantee of the value: a cached read may lag the
// source of truth inside the invalidation window.
type LikeCount struct {
	Count     int
	FromCache bool
}
