package main

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alimx07/Social_Content_Backend/posts_service/models"
	pb "github.com/alimx07/Social_Content_Backend/services_bindings_go"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Mock PostsRepo implementation for testing
type MockRepo struct {
	posts    map[string]models.Post
	comments map[string][]models.Comment
	likes    map[string]bool
	views    []models.View

	nextId int
}

func NewMockRepo() *MockRepo {
	return &MockRepo{
		posts:    make(map[string]models.Post),
		comments: make(map[string][]models.Comment),
		likes:    make(map[string]bool),
	}
}

func (m *MockRepo) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	m.nextId++
	post.Id = fmt.Sprintf("post_%d", m.nextId)
	post.Created_at = time.Now().UTC()
	post.Updated_at = post.Created_at
	m.posts[post.Id] = post
	return post, nil
}

func (m *MockRepo) GetPost(ctx context.Context, id string) (models.Post, error) {
	post, ok := m.posts[id]
	if !ok {
		return models.Post{}, models.ErrNotFound
	}
	return post, nil
}

func (m *MockRepo) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if _, ok := m.posts[post.Id]; !ok {
		return models.Post{}, models.ErrNotFound
	}
	post.Updated_at = time.Now().UTC()
	m.posts[post.Id] = post
	return post, nil
}

func (m *MockRepo) DeletePost(ctx context.Context, id string) error {
	if _, ok := m.posts[id]; !ok {
		return models.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *MockRepo) ListPosts(ctx context.Context, callerID string, offset, limit int32) ([]models.Post, error) {
	var visible []models.Post
	for i := 1; i <= m.nextId; i++ {
		post, ok := m.posts[fmt.Sprintf("post_%d", i)]
		if !ok {
			continue
		}
		if !post.Is_private || post.Creator_id == callerID {
			visible = append(visible, post)
		}
	}
	if int(offset) >= len(visible) {
		return nil, nil
	}
	end := int(offset + limit)
	if end > len(visible) {
		end = len(visible)
	}
	return visible[offset:end], nil
}

func (m *MockRepo) CreateLike(ctx context.Context, like models.Like) error {
	key := like.User_id + ":" + like.Post_id
	if m.likes[key] {
		return models.ErrAlreadyLiked
	}
	m.likes[key] = true
	return nil
}

func (m *MockRepo) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	m.nextId++
	comment.Id = fmt.Sprintf("comment_%d", m.nextId)
	comment.Created_at = time.Now().UTC()
	m.comments[comment.Post_id] = append(m.comments[comment.Post_id], comment)
	return comment, nil
}

func (m *MockRepo) ListComments(ctx context.Context, postID string, offset, limit int32) ([]models.Comment, error) {
	all := m.comments[postID]
	if int(offset) >= len(all) {
		return nil, nil
	}
	end := int(offset + limit)
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *MockRepo) CreateView(ctx context.Context, view models.View) error {
	m.views = append(m.views, view)
	return nil
}

func ctxWithUser(userId string) context.Context {
	md := metadata.Pairs("current_user", userId)
	return metadata.NewIncomingContext(context.Background(), md)
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected grpc status error, got %v", err)
	}
	if st.Code() != code {
		t.Fatalf("expected code %v, got %v (%v)", code, st.Code(), st.Message())
	}
}

func newTestService() (*postsService, *MockRepo) {
	repo := NewMockRepo()
	return NewPostsService(repo, models.Config{}), repo
}

func Test_CreatePost_RequiresCaller(t *testing.T) {
	ps, _ := newTestService()
	_, err := ps.CreatePost(context.Background(), &pb.CreatePostRequest{Title: "hello"})
	wantCode(t, err, codes.Unauthenticated)
}

func Test_CreatePost_SetsCreatorFromMetadata(t *testing.T) {
	ps, _ := newTestService()
	post, err := ps.CreatePost(ctxWithUser("alice"), &pb.CreatePostRequest{
		Title:       "hello",
		Description: "first post",
		Tags:        []string{"go", "kafka"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if post.CreatorId != "alice" {
		t.Fatalf("expected creator alice, got %v", post.CreatorId)
	}
	if post.Id == "" || post.CreatedAt == "" {
		t.Fatal("expected id and created_at to be set")
	}
}

func Test_GetPost_PrivateHiddenFromOthers(t *testing.T) {
	ps, _ := newTestService()
	post, _ := ps.CreatePost(ctxWithUser("alice"), &pb.CreatePostRequest{
		Title:     "secret",
		IsPrivate: true,
	})

	// owner can read it
	if _, err := ps.GetPost(ctxWithUser("alice"), &pb.GetPostRequest{Id: post.Id}); err != nil {
		t.Fatal(err)
	}

	// other users can not
	_, err := ps.GetPost(ctxWithUser("bob"), &pb.GetPostRequest{Id: post.Id})
	wantCode(t, err, codes.PermissionDenied)

	// neither can anonymous callers
	_, err = ps.GetPost(context.Background(), &pb.GetPostRequest{Id: post.Id})
	wantCode(t, err, codes.PermissionDenied)
}

func Test_GetPost_NotFound(t *testing.T) {
	ps, _ := newTestService()
	_, err := ps.GetPost(ctxWithUser("alice"), &pb.GetPostRequest{Id: "missing"})
	wantCode(t, err, codes.NotFound)
}

func Test_UpdatePost_OwnerOnly(t *testing.T) {
	ps, _ := newTestService()
	post, _ := ps.CreatePost(ctxWithUser("alice"), &pb.CreatePostRequest{Title: "hello"})

	_, err := ps.UpdatePost(ctxWithUser("bob"), &pb.UpdatePostRequest{Id: post.Id, Title: "hacked"})
	wantCode(t, err, codes.PermissionDenied)
}

func Test_UpdatePost_PartialMerge(t *testing.T) {
	ps, _ := newTestService()
	post, _ := ps.CreatePost(ctxWithUser("alice"), &pb.CreatePostRequest{
		Title:       "hello",
		Description: "first post",
		Tags:        []string{"go"},
	})

	// empty title keeps the old one, tags and is_private are replaced
	updated, err := ps.UpdatePost(ctxWithUser("alice"), &pb.UpdatePostRequest{
		Id:          post.Id,
		Description: "edited",
		IsPrivate:   true,
		Tags:        []string{"go", "postgres"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Title != "hello" {
		t.Fatalf("expected title unchanged, got %v", updated.Title)
	}
	if updated.Description != "edited" {
		t.Fatalf("expected description edited, got %v", updated.Description)
	}
	if !updated.IsPrivate {
		t.Fatal("expected post to become private")
	}
	if len(updated.Tags) != 2 {
		t.Fatalf("expected tags replaced, got %v", updated.Tags)
	}
}

func Test_DeletePost_OwnerOnly(t *testing.T) {
	ps, _ := newTestService()
	post, _ := ps.CreatePost(ctxWithUser("alice"), &pb.CreatePostRequest{Title: "hello"})

	_, err := ps.DeletePost(ctxWithUser("bob"), &pb.DeletePostRequest{Id: post.Id})
	wantCode(t, err, codes.PermissionDenied)

	if _, err := ps.DeletePost(ctxWithUser("alice"), &pb.DeletePostRequest{Id: post.Id}); err != nil {
		t.Fatal(err)
	}
	_, err = ps.GetPost(ctxWithUser("alice"), &pb.GetPostRequest{Id: post.Id})
	wantCode(t, err, codes.NotFound)
}

func Test_ListPosts_VisibilityAndPaging(t *testing.T) {
	ps, _ := newTestService()
	for i := 0; i < 5; i++ {
		ps.CreatePost(ctxWithUser("alice"), &pb.CreatePostRequest{Title: fmt.Sprintf("pub_%d", i)})
	}
	ps.CreatePost(ctxWithUser("alice"), &pb.CreatePostRequest{Title: "secret", IsPrivate: true})

	// bob sees only the 5 public posts
	res, err := ps.ListPosts(ctxWithUser("bob"), &pb.ListPostsRequest{Page: 0, PageSize: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Posts) != 5 {
		t.Fatalf("expected 5 posts, got %v", len(res.Posts))
	}

	// alice sees her private post too
	res, _ = ps.ListPosts(ctxWithUser("alice"), &pb.ListPostsRequest{Page: 0, PageSize: 10})
	if len(res.Posts) != 6 {
		t.Fatalf("expected 6 posts, got %v", len(res.Posts))
	}

	// second page with size 2 skips the first two
	res, _ = ps.ListPosts(ctxWithUser("bob"), &pb.ListPostsRequest{Page: 1, PageSize: 2})
	if len(res.Posts) != 2 || res.Posts[0].Title != "pub_2" {
		t.Fatalf("unexpected page content: %v", res.Posts)
	}

	// invalid paging falls back to defaults
	res, _ = ps.ListPosts(ctxWithUser("bob"), &pb.ListPostsRequest{Page: -3, PageSize: 0})
	if len(res.Posts) != 5 {
		t.Fatalf("expected default page, got %v posts", len(res.Posts))
	}
}

func Test_LikePost_DoubleLike(t *testing.T) {
	ps, _ := newTestService()
	post, _ := ps.CreatePost(ctxWithUser("alice"), &pb.CreatePostRequest{Title: "hello"})

	if _, err := ps.LikePost(ctxWithUser("bob"), &pb.LikePostRequest{PostId: post.Id}); err != nil {
		t.Fatal(err)
	}
	_, err := ps.LikePost(ctxWithUser("bob"), &pb.LikePostRequest{PostId: post.Id})
	wantCode(t, err, codes.AlreadyExists)

	// a different user still can
	if _, err := ps.LikePost(ctxWithUser("carol"), &pb.LikePostRequest{PostId: post.Id}); err != nil {
		t.Fatal(err)
	}
}

func Test_LikePost_PrivateDenied(t *testing.T) {
	ps, _ := newTestService()
	post, _ := ps.CreatePost(ctxWithUser("alice"), &pb.CreatePostRequest{Title: "secret", IsPrivate: true})

	_, err := ps.LikePost(ctxWithUser("bob"), &pb.LikePostRequest{PostId: post.Id})
	wantCode(t, err, codes.PermissionDenied)
}

func Test_ViewPost_RecordsView(t *testing.T) {
	ps, repo := newTestService()
	post, _ := ps.CreatePost(ctxWithUser("alice"), &pb.CreatePostRequest{Title: "hello"})

	if _, err := ps.ViewPost(ctxWithUser("bob"), &pb.ViewPostRequest{PostId: post.Id}); err != nil {
		t.Fatal(err)
	}
	if len(repo.views) != 1 || repo.views[0].User_id != "bob" {
		t.Fatalf("unexpected views: %v", repo.views)
	}

	_, err := ps.ViewPost(context.Background(), &pb.ViewPostRequest{PostId: post.Id})
	wantCode(t, err, codes.Unauthenticated)
}

func Test_Comments_CreateAndList(t *testing.T) {
	ps, _ := newTestService()
	post, _ := ps.CreatePost(ctxWithUser("alice"), &pb.CreatePostRequest{Title: "hello"})

	for i := 0; i < 3; i++ {
		_, err := ps.CreateComment(ctxWithUser("bob"), &pb.CreateCommentRequest{
			PostId:  post.Id,
			Content: fmt.Sprintf("comment_%d", i),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	res, err := ps.ListComments(ctxWithUser("carol"), &pb.ListCommentsRequest{PostId: post.Id, Page: 0, PageSize: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Comments) != 2 || res.Comments[0].Content != "comment_0" {
		t.Fatalf("unexpected comments: %v", res.Comments)
	}

	res, _ = ps.ListComments(ctxWithUser("carol"), &pb.ListCommentsRequest{PostId: post.Id, Page: 1, PageSize: 2})
	if len(res.Comments) != 1 || res.Comments[0].Content != "comment_2" {
		t.Fatalf("unexpected second page: %v", res.Comments)
	}
}

func Test_ListComments_PrivatePostDenied(t *testing.T) {
	ps, _ := newTestService()
	post, _ := ps.CreatePost(ctxWithUser("alice"), &pb.CreatePostRequest{Title: "secret", IsPrivate: true})

	_, err := ps.ListComments(ctxWithUser("bob"), &pb.ListCommentsRequest{PostId: post.Id})
	wantCode(t, err, codes.PermissionDenied)
}
