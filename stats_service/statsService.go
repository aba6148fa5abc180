package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	pb "github.com/alimx07/Social_Content_Backend/services_bindings_go"
	"github.com/alimx07/Social_Content_Backend/stats_service/models"
	"github.com/alimx07/Social_Content_Backend/stats_service/statsRepo"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

type statsService struct {
	pb.UnimplementedStatsServiceServer
	repo   statsRepo.StatsRepo
	config models.Config
}

func NewStatsService(repo statsRepo.StatsRepo, config models.Config) *statsService {
	return &statsService{
		repo:   repo,
		config: config,
	}
}

func (ss *statsService) start() error {
	log.Printf("Starting gRPC server on %s:%s", ss.config.ServerHost, ss.config.ServerPort)
	listener, err := net.Listen("tcp", net.JoinHostPort(ss.config.ServerHost, ss.config.ServerPort))
	if err != nil {
		log.Fatal("Can not intialized Connection on Host:", net.JoinHostPort(ss.config.ServerHost, ss.config.ServerPort))
	}
	grpcserver := grpc.NewServer()
	pb.RegisterStatsServiceServer(grpcserver, ss)
	reflection.Register(grpcserver)
	return grpcserver.Serve(listener)
}

func (ss *statsService) StartHealthServer() error {
	router := http.NewServeMux()
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok", "service": "stats_service"}`))
	})
	server := &http.Server{
		Addr:    net.JoinHostPort(ss.config.ServerHost, ss.config.ServerHttpPort),
		Handler: router,
	}
	log.Printf("StatsService HTTP starting on %s:%s\n", ss.config.ServerHost, ss.config.ServerHttpPort)
	return server.ListenAndServe()
}

func metricFromProto(m pb.Metric) models.Metric {
	switch m {
	case pb.Metric_LIKES:
		return models.MetricLikes
	case pb.Metric_COMMENTS:
		return models.MetricComments
	default:
		return models.MetricViews
	}
}

func (ss *statsService) GetPostStats(ctx context.Context, req *pb.PostStatsRequest) (*pb.PostStatsResponse, error) {
	stats, err := ss.repo.GetPostStats(ctx, req.GetPostId())
	if err != nil {
		log.Printf("Failed to fetch stats for post{%v}: %v\n", req.GetPostId(), err.Error())
		return nil, status.Error(codes.Internal, "Failed to fetch post stats due to internal issues")
	}
	return &pb.PostStatsResponse{
		Views:    stats.Views,
		Likes:    stats.Likes,
		Comments: stats.Comments,
	}, nil
}

func (ss *statsService) GetPostViewsHistory(ctx context.Context, req *pb.PostHistoryRequest) (*pb.PostHistoryResponse, error) {
	return ss.history(ctx, models.MetricViews, req.GetPostId())
}

func (ss *statsService) GetPostLikesHistory(ctx context.Context, req *pb.PostHistoryRequest) (*pb.PostHistoryResponse, error) {
	return ss.history(ctx, models.MetricLikes, req.GetPostId())
}

func (ss *statsService) GetPostCommentsHistory(ctx context.Context, req *pb.PostHistoryRequest) (*pb.PostHistoryResponse, error) {
	return ss.history(ctx, models.MetricComments, req.GetPostId())
}

func (ss *statsService) history(ctx context.Context, metric models.Metric, postID string) (*pb.PostHistoryResponse, error) {
	buckets, err := ss.repo.GetPostHistory(ctx, metric, postID)
	if err != nil {
		log.Printf("Failed to fetch history for post{%v}: %v\n", postID, err.Error())
		return nil, status.Error(codes.Internal, "Failed to fetch post history due to internal issues")
	}
	return bucketsToProto(buckets, "2006-01-02"), nil
}

func (ss *statsService) GetPostRecentComments(ctx context.Context, req *pb.PostHistoryRequest) (*pb.PostHistoryResponse, error) {
	buckets, err := ss.repo.GetRecentComments(ctx, req.GetPostId())
	if err != nil {
		log.Printf("Failed to fetch recent comments for post{%v}: %v\n", req.GetPostId(), err.Error())
		return nil, status.Error(codes.Internal, "Failed to fetch recent comments due to internal issues")
	}
	return bucketsToProto(buckets, time.RFC3339), nil
}

func (ss *statsService) GetTopTenPosts(ctx context.Context, req *pb.TopTenRequest) (*pb.TopTenPostsResponse, error) {
	ids, err := ss.repo.GetTopPosts(ctx, metricFromProto(req.GetMetric()))
	if err != nil {
		log.Println("Failed to fetch top posts: ", err.Error())
		return nil, status.Error(codes.Internal, "Failed to fetch top posts due to internal issues")
	}
	return &pb.TopTenPostsResponse{
		PostIds: ids,
	}, nil
}

func (ss *statsService) GetTopTenUsers(ctx context.Context, req *pb.TopTenRequest) (*pb.TopTenUsersResponse, error) {
	ids, err := ss.repo.GetTopUsers(ctx, metricFromProto(req.GetMetric()))
	if err != nil {
		log.Println("Failed to fetch top users: ", err.Error())
		return nil, status.Error(codes.Internal, "Failed to fetch top users due to internal issues")
	}
	return &pb.TopTenUsersResponse{
		UserIds: ids,
	}, nil
}

func bucketsToProto(buckets []models.HistoryBucket, layout string) *pb.PostHistoryResponse {
	res := make([]*pb.HistoryBucket, 0, len(buckets))
	for _, b := range buckets {
		res = append(res, &pb.HistoryBucket{
			Date:  b.Date.Format(layout),
			Count: b.Count,
		})
	}
	return &pb.PostHistoryResponse{
		History: res,
	}
}
