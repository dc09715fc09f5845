package cache

import "time"

const (
	// PostsListKey holds the full posts list (without comments).
	PostsListKey = "posts:all"

	PostsListTTL = 5 * time.Minute
)
