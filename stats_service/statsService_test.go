package main

import (
	"context"
	"errors"
	"testing"
	"time"

	pb "github.com/alimx07/Social_Content_Backend/services_bindings_go"
	"github.com/alimx07/Social_Content_Backend/stats_service/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Mock StatsRepo implementation for testing
type MockRepo struct {
	stats      models.PostStats
	history    []models.HistoryBucket
	topIds     []string
	lastMetric models.Metric
	err        error
}

func (m *MockRepo) InsertInteractions(ctx context.Context, metric models.Metric, rows []models.InteractionRow) error {
	return m.err
}

func (m *MockRepo) GetPostStats(ctx context.Context, postID string) (models.PostStats, error) {
	return m.stats, m.err
}

func (m *MockRepo) GetPostHistory(ctx context.Context, metric models.Metric, postID string) ([]models.HistoryBucket, error) {
	m.lastMetric = metric
	return m.history, m.err
}

func (m *MockRepo) GetRecentComments(ctx context.Context, postID string) ([]models.HistoryBucket, error) {
	return m.history, m.err
}

func (m *MockRepo) GetTopPosts(ctx context.Context, metric models.Metric) ([]string, error) {
	m.lastMetric = metric
	return m.topIds, m.err
}

func (m *MockRepo) GetTopUsers(ctx context.Context, metric models.Metric) ([]string, error) {
	m.lastMetric = metric
	return m.topIds, m.err
}

func (m *MockRepo) Close() error { return nil }

func Test_GetPostStats(t *testing.T) {
	repo := &MockRepo{stats: models.PostStats{Views: 100, Likes: 20, Comments: 5}}
	ss := NewStatsService(repo, models.Config{})

	res, err := ss.GetPostStats(context.Background(), &pb.PostStatsRequest{PostId: "post_1"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Views != 100 || res.Likes != 20 || res.Comments != 5 {
		t.Fatalf("unexpected stats: %+v", res)
	}
}

func Test_GetPostStats_InternalError(t *testing.T) {
	repo := &MockRepo{err: errors.New("clickhouse down")}
	ss := NewStatsService(repo, models.Config{})

	_, err := ss.GetPostStats(context.Background(), &pb.PostStatsRequest{PostId: "post_1"})
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
}

func Test_History_MetricRoutingAndDateFormat(t *testing.T) {
	day := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	repo := &MockRepo{history: []models.HistoryBucket{{Date: day, Count: 7}}}
	ss := NewStatsService(repo, models.Config{})

	res, err := ss.GetPostLikesHistory(context.Background(), &pb.PostHistoryRequest{PostId: "post_1"})
	if err != nil {
		t.Fatal(err)
	}
	if repo.lastMetric != models.MetricLikes {
		t.Fatalf("expected likes metric, got %v", repo.lastMetric)
	}
	if len(res.History) != 1 || res.History[0].Date != "2026-08-27" || res.History[0].Count != 7 {
		t.Fatalf("unexpected history: %+v", res.History)
	}

	ss.GetPostViewsHistory(context.Background(), &pb.PostHistoryRequest{PostId: "post_1"})
	if repo.lastMetric != models.MetricViews {
		t.Fatalf("expected views metric, got %v", repo.lastMetric)
	}
	ss.GetPostCommentsHistory(context.Background(), &pb.PostHistoryRequest{PostId: "post_1"})
	if repo.lastMetric != models.MetricComments {
		t.Fatalf("expected comments metric, got %v", repo.lastMetric)
	}
}

func Test_RecentComments_MinuteTimestamps(t *testing.T) {
	minute := time.Date(2026, 8, 28, 11, 42, 0, 0, time.UTC)
	repo := &MockRepo{history: []models.HistoryBucket{{Date: minute, Count: 3}}}
	ss := NewStatsService(repo, models.Config{})

	res, err := ss.GetPostRecentComments(context.Background(), &pb.PostHistoryRequest{PostId: "post_1"})
	if err != nil {
		t.Fatal(err)
	}
	if res.History[0].Date != "2026-08-28T11:42:00Z" {
		t.Fatalf("unexpected bucket timestamp: %v", res.History[0].Date)
	}
}

func Test_TopTen(t *testing.T) {
	repo := &MockRepo{topIds: []string{"p3", "p1", "p2"}}
	ss := NewStatsService(repo, models.Config{})

	res, err := ss.GetTopTenPosts(context.Background(), &pb.TopTenRequest{Metric: pb.Metric_COMMENTS})
	if err != nil {
		t.Fatal(err)
	}
	if repo.lastMetric != models.MetricComments {
		t.Fatalf("expected comments metric, got %v", repo.lastMetric)
	}
	if len(res.PostIds) != 3 || res.PostIds[0] != "p3" {
		t.Fatalf("unexpected top posts: %v", res.PostIds)
	}

	users, err := ss.GetTopTenUsers(context.Background(), &pb.TopTenRequest{Metric: pb.Metric_LIKES})
	if err != nil {
		t.Fatal(err)
	}
	if repo.lastMetric != models.MetricLikes {
		t.Fatalf("expected likes metric, got %v", repo.lastMetric)
	}
	if len(users.UserIds) != 3 {
		t.Fatalf("unexpected top users: %v", users.UserIds)
	}
}
