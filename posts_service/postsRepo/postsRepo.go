package postsRepo

import (
	"context"

	"github.com/alimx07/Social_Content_Backend/posts_service/models"
)

type PostsRepo interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	GetPost(ctx context.Context, id string) (models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) (models.Post, error)
	DeletePost(ctx context.Context, id string) error
	ListPosts(ctx context.Context, callerID string, offset, limit int32) ([]models.Post, error)

	CreateLike(ctx context.Context, like models.Like) error
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	ListComments(ctx context.Context, postID string, offset, limit int32) ([]models.Comment, error)
	CreateView(ctx context.Context, view models.View) error
}
