package cachedRepo

import (
	"github.com/alimx07/Social_Content_Backend/posts_service/postsRepo"
)

// CachedRepo decorates the persistent repo with a post read cache.
// Cache failures degrade to the persistent path, they never fail a call.
type CachedRepo interface {
	postsRepo.PostsRepo

	Close() error
}
