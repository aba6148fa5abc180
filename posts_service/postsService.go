package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/alimx07/Social_Content_Backend/posts_service/models"
	"github.com/alimx07/Social_Content_Backend/posts_service/postsRepo"
	pb "github.com/alimx07/Social_Content_Backend/services_bindings_go"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

type postsService struct {
	pb.UnimplementedPostsServiceServer
	repo   postsRepo.PostsRepo
	config models.Config
}

func NewPostsService(repo postsRepo.PostsRepo, config models.Config) *postsService {
	return &postsService{
		repo:   repo,
		config: config,
	}
}

func (ps *postsService) start() error {
	log.Printf("Starting gRPC server on %s:%s", ps.config.ServerHost, ps.config.ServerPort)
	listener, err := net.Listen("tcp", net.JoinHostPort(ps.config.ServerHost, ps.config.ServerPort))
	if err != nil {
		log.Fatal("Can not intialized Connection on Host:", net.JoinHostPort(ps.config.ServerHost, ps.config.ServerPort))
	}
	grpcserver := grpc.NewServer()
	pb.RegisterPostsServiceServer(grpcserver, ps)
	reflection.Register(grpcserver)
	return grpcserver.Serve(listener)
}

func (ps *postsService) StartHealthServer() error {
	router := http.NewServeMux()
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok", "service": "posts_service"}`))
	})
	server := &http.Server{
		Addr:    net.JoinHostPort(ps.config.ServerHost, ps.config.ServerHttpPort),
		Handler: router,
	}
	log.Printf("PostsService HTTP starting on %s:%s\n", ps.config.ServerHost, ps.config.ServerHttpPort)
	return server.ListenAndServe()
}

// The gateway authenticates callers and forwards the stable user id as
// call metadata. It is resolved here once per RPC and passed down as a
// plain argument, nothing below the handlers reads the context metadata.
func callerFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get("current_user")
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

func requireCaller(ctx context.Context) (string, error) {
	callerID := callerFromContext(ctx)
	if callerID == "" {
		return "", status.Error(codes.Unauthenticated, "missing current_user metadata")
	}
	return callerID, nil
}

func canRead(post models.Post, callerID string) bool {
	return !post.Is_private || post.Creator_id == callerID
}

func validatePage(page, pageSize int32) (int32, int32) {
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = 10 // default value
	}
	return page * pageSize, pageSize
}

func (ps *postsService) CreatePost(ctx context.Context, req *pb.CreatePostRequest) (*pb.Post, error) {
	callerID, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}
	post, err := ps.repo.CreatePost(ctx, models.Post{
		Title:       req.GetTitle(),
		Description: req.GetDescription(),
		Creator_id:  callerID,
		Is_private:  req.GetIsPrivate(),
		Tags:        req.GetTags(),
	})
	if err != nil {
		log.Printf("Failed to create post for user{%v}: %v\n", callerID, err.Error())
		return nil, status.Error(codes.Internal, "Post can not be created due to internal issues")
	}
	return postToProto(post), nil
}

func (ps *postsService) GetPost(ctx context.Context, req *pb.GetPostRequest) (*pb.Post, error) {
	callerID := callerFromContext(ctx)
	post, err := ps.repo.GetPost(ctx, req.GetId())
	if err != nil {
		return nil, mapStorageError(err, "Failed to fetch post due to internal issues")
	}
	if !canRead(post, callerID) {
		return nil, status.Error(codes.PermissionDenied, "Access denied: private post")
	}
	return postToProto(post), nil
}

func (ps *postsService) UpdatePost(ctx context.Context, req *pb.UpdatePostRequest) (*pb.Post, error) {
	callerID, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}
	post, err := ps.repo.GetPost(ctx, req.GetId())
	if err != nil {
		return nil, mapStorageError(err, "Failed to update post due to internal issues")
	}
	if post.Creator_id != callerID {
		return nil, status.Error(codes.PermissionDenied, "Access denied: not the owner")
	}

	// Empty title/description mean "keep the old value".
	// is_private and tags are always carried as set fields on the wire,
	// so they replace the stored values unconditionally.
	if req.GetTitle() != "" {
		post.Title = req.GetTitle()
	}
	if req.GetDescription() != "" {
		post.Description = req.GetDescription()
	}
	post.Is_private = req.GetIsPrivate()
	post.Tags = req.GetTags()

	updated, err := ps.repo.UpdatePost(ctx, post)
	if err != nil {
		return nil, mapStorageError(err, "Failed to update post due to internal issues")
	}
	return postToProto(updated), nil
}

func (ps *postsService) DeletePost(ctx context.Context, req *pb.DeletePostRequest) (*pb.Ack, error) {
	callerID, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}
	post, err := ps.repo.GetPost(ctx, req.GetId())
	if err != nil {
		return nil, mapStorageError(err, "Failed to delete post due to internal issues")
	}
	if post.Creator_id != callerID {
		return nil, status.Error(codes.PermissionDenied, "Access denied: not the owner")
	}
	if err := ps.repo.DeletePost(ctx, req.GetId()); err != nil {
		return nil, mapStorageError(err, "Failed to delete post due to internal issues")
	}
	return &pb.Ack{
		Message: "Post deleted successfully",
	}, nil
}

func (ps *postsService) ListPosts(ctx context.Context, req *pb.ListPostsRequest) (*pb.ListPostsResponse, error) {
	callerID := callerFromContext(ctx)
	offset, limit := validatePage(req.GetPage(), req.GetPageSize())
	posts, err := ps.repo.ListPosts(ctx, callerID, offset, limit)
	if err != nil {
		log.Println("Failed to list posts: ", err.Error())
		return nil, status.Error(codes.Internal, "Failed to list posts due to internal issues")
	}
	resPosts := make([]*pb.Post, 0, len(posts))
	for _, post := range posts {
		resPosts = append(resPosts, postToProto(post))
	}
	return &pb.ListPostsResponse{
		Posts: resPosts,
	}, nil
}

func (ps *postsService) ViewPost(ctx context.Context, req *pb.ViewPostRequest) (*pb.Ack, error) {
	callerID, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}
	post, err := ps.repo.GetPost(ctx, req.GetPostId())
	if err != nil {
		return nil, mapStorageError(err, "Failed to record view due to internal issues")
	}
	if !canRead(post, callerID) {
		return nil, status.Error(codes.PermissionDenied, "Access denied: private post")
	}
	err = ps.repo.CreateView(ctx, models.View{
		Post_id:   post.Id,
		User_id:   callerID,
		Viewed_at: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("Failed to record view on post{%v} by user{%v}: %v\n",
			post.Id, callerID, err.Error())
		return nil, status.Error(codes.Internal, "Failed to record view due to internal issues")
	}
	return &pb.Ack{
		Message: "View recorded",
	}, nil
}

func (ps *postsService) LikePost(ctx context.Context, req *pb.LikePostRequest) (*pb.Ack, error) {
	callerID, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}
	post, err := ps.repo.GetPost(ctx, req.GetPostId())
	if err != nil {
		return nil, mapStorageError(err, "Failed to like post due to internal issues")
	}
	if !canRead(post, callerID) {
		return nil, status.Error(codes.PermissionDenied, "Access denied: private post")
	}
	err = ps.repo.CreateLike(ctx, models.Like{
		Post_id:    post.Id,
		User_id:    callerID,
		Created_at: time.Now().UTC(),
	})
	if err != nil {
		if err == models.ErrAlreadyLiked {
			return nil, status.Error(codes.AlreadyExists, "Post already liked")
		}
		log.Printf("Failed to create like on post{%v} by user{%v}: %v\n",
			post.Id, callerID, err.Error())
		return nil, status.Error(codes.Internal, "Failed to like post due to internal issues")
	}
	return &pb.Ack{
		Message: "Post liked",
	}, nil
}

func (ps *postsService) CreateComment(ctx context.Context, req *pb.CreateCommentRequest) (*pb.Comment, error) {
	callerID, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}
	post, err := ps.repo.GetPost(ctx, req.GetPostId())
	if err != nil {
		return nil, mapStorageError(err, "Failed to create comment due to internal issues")
	}
	if !canRead(post, callerID) {
		return nil, status.Error(codes.PermissionDenied, "Access denied: private post")
	}
	comment, err := ps.repo.CreateComment(ctx, models.Comment{
		Post_id: post.Id,
		User_id: callerID,
		Content: req.GetContent(),
	})
	if err != nil {
		log.Printf("Failed to create comment on post{%v} by user{%v}: %v\n",
			post.Id, callerID, err.Error())
		return nil, status.Error(codes.Internal, "Failed to create comment due to internal issues")
	}
	return commentToProto(comment), nil
}

func (ps *postsService) ListComments(ctx context.Context, req *pb.ListCommentsRequest) (*pb.ListCommentsResponse, error) {
	callerID := callerFromContext(ctx)
	post, err := ps.repo.GetPost(ctx, req.GetPostId())
	if err != nil {
		return nil, mapStorageError(err, "Failed to list comments due to internal issues")
	}
	if !canRead(post, callerID) {
		return nil, status.Error(codes.PermissionDenied, "Access denied: private post")
	}
	offset, limit := validatePage(req.GetPage(), req.GetPageSize())
	comments, err := ps.repo.ListComments(ctx, post.Id, offset, limit)
	if err != nil {
		log.Printf("Failed to list comments for post{%v}: %v\n", post.Id, err.Error())
		return nil, status.Error(codes.Internal, "Failed to list comments due to internal issues")
	}
	resComments := make([]*pb.Comment, 0, len(comments))
	for _, comment := range comments {
		resComments = append(resComments, commentToProto(comment))
	}
	return &pb.ListCommentsResponse{
		Comments: resComments,
	}, nil
}

func mapStorageError(err error, internalMsg string) error {
	if err == models.ErrNotFound {
		return status.Error(codes.NotFound, "Post not found")
	}
	return status.Error(codes.Internal, internalMsg)
}

func postToProto(post models.Post) *pb.Post {
	return &pb.Post{
		Id:          post.Id,
		Title:       post.Title,
		Description: post.Description,
		CreatorId:   post.Creator_id,
		IsPrivate:   post.Is_private,
		Tags:        post.Tags,
		CreatedAt:   post.Created_at.Format(time.RFC3339),
		UpdatedAt:   post.Updated_at.Format(time.RFC3339),
	}
}

func commentToProto(comment models.Comment) *pb.Comment {
	return &pb.Comment{
		Id:        comment.Id,
		PostId:    comment.Post_id,
		UserId:    comment.User_id,
		Content:   comment.Content,
		CreatedAt: comment.Created_at.Format(time.RFC3339),
	}
}
