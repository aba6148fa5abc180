package cachedRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/alimx07/Social_Content_Backend/posts_service/models"
	"github.com/alimx07/Social_Content_Backend/posts_service/postsRepo"
	"github.com/redis/go-redis/v9"
)

type redisRepo struct {
	repo        postsRepo.PostsRepo // presistance db
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisRepo(repo postsRepo.PostsRepo, config models.Config) (*redisRepo, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(config.CacheHost, config.CachePort),
		Password: config.CachePassword,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &redisRepo{
		repo:        repo,
		redisClient: client,
		ttl:         config.CacheTTL,
	}, nil
}

func postKey(id string) string {
	return fmt.Sprintf("post:%v", id)
}

func (rs *redisRepo) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	created, err := rs.repo.CreatePost(ctx, post)
	if err != nil {
		return models.Post{}, err
	}
	rs.cachePost(ctx, created)
	return created, nil
}

func (rs *redisRepo) GetPost(ctx context.Context, id string) (models.Post, error) {
	data, err := rs.redisClient.Get(ctx, postKey(id)).Bytes()
	if err == nil {
		var post models.Post
		if err := json.Unmarshal(data, &post); err == nil {
			return post, nil
		}
		log.Printf("Corrupted cache entry for post{%v}, falling back to DB\n", id)
	}

	post, err := rs.repo.GetPost(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	rs.cachePost(ctx, post)
	return post, nil
}

func (rs *redisRepo) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	updated, err := rs.repo.UpdatePost(ctx, post)
	if err != nil {
		return models.Post{}, err
	}
	rs.cachePost(ctx, updated)
	return updated, nil
}

func (rs *redisRepo) DeletePost(ctx context.Context, id string) error {
	err := rs.repo.DeletePost(ctx, id)
	if err != nil {
		return err
	}
	// In case of cache failing here there will be inconsistency as users
	// can still read the post from cache until the TTL runs out.
	// Just log the error for now.
	if err := rs.redisClient.Del(ctx, postKey(id)).Err(); err != nil {
		log.Printf("Failed to delete post{%v} from the cache: %v\n", id, err.Error())
	}
	return nil
}

func (rs *redisRepo) ListPosts(ctx context.Context, callerID string, offset, limit int32) ([]models.Post, error) {
	// no caching for listings now
	return rs.repo.ListPosts(ctx, callerID, offset, limit)
}

func (rs *redisRepo) CreateLike(ctx context.Context, like models.Like) error {
	return rs.repo.CreateLike(ctx, like)
}

func (rs *redisRepo) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	return rs.repo.CreateComment(ctx, comment)
}

func (rs *redisRepo) ListComments(ctx context.Context, postID string, offset, limit int32) ([]models.Comment, error) {
	return rs.repo.ListComments(ctx, postID, offset, limit)
}

func (rs *redisRepo) CreateView(ctx context.Context, view models.View) error {
	return rs.repo.CreateView(ctx, view)
}

func (rs *redisRepo) Close() error {
	return rs.redisClient.Close()
}

func (rs *redisRepo) cachePost(ctx context.Context, post models.Post) {
	data, err := json.Marshal(post)
	if err != nil {
		return
	}
	if err := rs.redisClient.Set(ctx, postKey(post.Id), data, rs.ttl).Err(); err != nil {
		log.Printf("Failed to cache post{%v}: %v\n", post.Id, err.Error())
	}
}
