package postsRepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/alimx07/Social_Content_Backend/posts_service/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{
		db: db,
	}
}

func (ps *PostgresRepo) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	now := time.Now().UTC()
	post.Id = uuid.NewString()
	post.Created_at = now
	post.Updated_at = now
	_, err := ps.db.ExecContext(ctx,
		`INSERT INTO posts (id, title, description, creator_id, is_private, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		post.Id, post.Title, post.Description, post.Creator_id, post.Is_private,
		strings.Join(post.Tags, ","), post.Created_at, post.Updated_at)
	if err != nil {
		log.Println("Error creating post: ", err.Error())
		return models.Post{}, err
	}
	return post, nil
}

func (ps *PostgresRepo) GetPost(ctx context.Context, id string) (models.Post, error) {
	var post models.Post
	var tags string
	err := ps.db.QueryRowContext(ctx,
		`SELECT id, title, description, creator_id, is_private, tags, created_at, updated_at
		FROM posts WHERE id = $1`, id).Scan(
		&post.Id, &post.Title, &post.Description, &post.Creator_id,
		&post.Is_private, &tags, &post.Created_at, &post.Updated_at)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, models.ErrNotFound
	}
	if err != nil {
		log.Printf("Error fetching post{%v}: %v\n", id, err.Error())
		return models.Post{}, err
	}
	post.Tags = splitTags(tags)
	return post, nil
}

func (ps *PostgresRepo) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	post.Updated_at = time.Now().UTC()
	res, err := ps.db.ExecContext(ctx,
		`UPDATE posts SET title = $2, description = $3, is_private = $4, tags = $5, updated_at = $6
		WHERE id = $1`,
		post.Id, post.Title, post.Description, post.Is_private,
		strings.Join(post.Tags, ","), post.Updated_at)
	if err != nil {
		log.Printf("Error updating post{%v}: %v\n", post.Id, err.Error())
		return models.Post{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Post{}, models.ErrNotFound
	}
	return post, nil
}

func (ps *PostgresRepo) DeletePost(ctx context.Context, id string) error {
	// Comments and likes are kept on purpose. The analytics side still
	// references deleted posts and the data model has no cascade rule.
	res, err := ps.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting post{%v}: %v\n", id, err.Error())
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (ps *PostgresRepo) ListPosts(ctx context.Context, callerID string, offset, limit int32) ([]models.Post, error) {
	rows, err := ps.db.QueryContext(ctx,
		`SELECT id, title, description, creator_id, is_private, tags, created_at, updated_at
		FROM posts WHERE is_private = false OR creator_id = $1
		ORDER BY seq LIMIT $2 OFFSET $3`, callerID, limit, offset)
	if err != nil {
		log.Println("Error listing posts: ", err.Error())
		return nil, err
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var post models.Post
		var tags string
		if err := rows.Scan(&post.Id, &post.Title, &post.Description, &post.Creator_id,
			&post.Is_private, &tags, &post.Created_at, &post.Updated_at); err != nil {
			log.Println("Error scanning post row: ", err.Error())
			return nil, err
		}
		post.Tags = splitTags(tags)
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// CreateLike inserts the like row and its event envelope into the outbox
// in one transaction. Uniqueness of (user_id, post_id) is the likes
// primary key, so concurrent duplicates lose at the storage layer and no
// second event ever reaches the outbox.
func (ps *PostgresRepo) CreateLike(ctx context.Context, like models.Like) error {
	tx, err := ps.db.BeginTx(ctx, nil)
	if err != nil {
		log.Println("Error opening like transaction: ", err.Error())
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO likes (post_id, user_id, created_at) VALUES ($1, $2, $3)`,
		like.Post_id, like.User_id, like.Created_at)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return models.ErrAlreadyLiked
		}
		log.Printf("Error creating like on post{%v} by user{%v}: %v\n",
			like.Post_id, like.User_id, err.Error())
		return err
	}

	evt := models.LikeEvent{
		EventId: uuid.NewString(),
		PostId:  like.Post_id,
		UserId:  like.User_id,
		LikedAt: like.Created_at.Format(time.RFC3339),
	}
	if err := insertOutbox(ctx, tx, models.TopicLikes, like.Post_id, evt); err != nil {
		return err
	}
	return tx.Commit()
}

func (ps *PostgresRepo) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	comment.Id = uuid.NewString()
	comment.Created_at = time.Now().UTC()

	tx, err := ps.db.BeginTx(ctx, nil)
	if err != nil {
		log.Println("Error opening comment transaction: ", err.Error())
		return models.Comment{}, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO comments (id, post_id, user_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		comment.Id, comment.Post_id, comment.User_id, comment.Content, comment.Created_at)
	if err != nil {
		log.Printf("Error creating comment on post{%v} by user{%v}: %v\n",
			comment.Post_id, comment.User_id, err.Error())
		return models.Comment{}, err
	}

	evt := models.CommentEvent{
		EventId:     uuid.NewString(),
		PostId:      comment.Post_id,
		CommentId:   comment.Id,
		UserId:      comment.User_id,
		Content:     comment.Content,
		CommentedAt: comment.Created_at.Format(time.RFC3339),
	}
	if err := insertOutbox(ctx, tx, models.TopicComments, comment.Post_id, evt); err != nil {
		return models.Comment{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

func (ps *PostgresRepo) ListComments(ctx context.Context, postID string, offset, limit int32) ([]models.Comment, error) {
	rows, err := ps.db.QueryContext(ctx,
		`SELECT id, post_id, user_id, content, created_at FROM comments
		WHERE post_id = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3`,
		postID, limit, offset)
	if err != nil {
		log.Printf("Error listing comments for post{%v}: %v\n", postID, err.Error())
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.Id, &comment.Post_id, &comment.User_id,
			&comment.Content, &comment.Created_at); err != nil {
			log.Println("Error scanning comment row: ", err.Error())
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// CreateView records no content row, only the event envelope. It still
// goes through the outbox so views get the same at-least-once path as
// likes and comments.
func (ps *PostgresRepo) CreateView(ctx context.Context, view models.View) error {
	evt := models.ViewEvent{
		EventId:  uuid.NewString(),
		PostId:   view.Post_id,
		UserId:   view.User_id,
		ViewedAt: view.Viewed_at.Format(time.RFC3339),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	_, err = ps.db.ExecContext(ctx,
		`INSERT INTO outbox (topic, kafka_key, payload) VALUES ($1, $2, $3)`,
		models.TopicViews, view.Post_id, payload)
	if err != nil {
		log.Printf("Error recording view on post{%v}: %v\n", view.Post_id, err.Error())
	}
	return err
}

func insertOutbox(ctx context.Context, tx *sql.Tx, topic, key string, evt any) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO outbox (topic, kafka_key, payload) VALUES ($1, $2, $3)`,
		topic, key, payload)
	if err != nil {
		log.Println("Failed to insert event in outbox: ", err.Error())
	}
	return err
}

func splitTags(tags string) []string {
	if tags == "" {
		return []string{}
	}
	return strings.Split(tags, ",")
}
