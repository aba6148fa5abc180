package statsRepo

import (
	"context"

	"github.com/alimx07/Social_Content_Backend/stats_service/models"
)

// StatsRepo is the storage layer of the stats service. The ingestor
// appends interaction rows, the gRPC side reads aggregates. Appends
// must be durable before the consumer commits its offsets.
type StatsRepo interface {
	InsertInteractions(ctx context.Context, metric models.Metric, rows []models.InteractionRow) error

	GetPostStats(ctx context.Context, postID string) (models.PostStats, error)
	GetPostHistory(ctx context.Context, metric models.Metric, postID string) ([]models.HistoryBucket, error)
	GetRecentComments(ctx context.Context, postID string) ([]models.HistoryBucket, error)
	GetTopPosts(ctx context.Context, metric models.Metric) ([]string, error)
	GetTopUsers(ctx context.Context, metric models.Metric) ([]string, error)

	Close() error
}
