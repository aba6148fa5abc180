package statsRepo

import (
	"context"
	"fmt"
	"log"
	"net"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/alimx07/Social_Content_Backend/stats_service/models"
)

type clickhouseRepo struct {
	conn driver.Conn
}

func tableFor(metric models.Metric) string {
	switch metric {
	case models.MetricLikes:
		return "likes"
	case models.MetricComments:
		return "comments"
	default:
		return "views"
	}
}

func NewClickhouseRepo(config models.Config) (StatsRepo, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{net.JoinHostPort(config.ClickHouseHost, config.ClickHousePort)},
		Auth: clickhouse.Auth{
			Database: config.ClickHouseDB,
			Username: config.ClickHouseUser,
			Password: config.ClickHousePassword,
		},
	})
	if err != nil {
		log.Println("Failed to connect to clickhouse: ", err.Error())
		return nil, err
	}
	if err := conn.Ping(context.Background()); err != nil {
		log.Println("Failed to ping clickhouse: ", err.Error())
		return nil, err
	}
	repo := &clickhouseRepo{conn: conn}
	if err := repo.applyMigration(context.Background()); err != nil {
		log.Println("Failed to create clickhouse tables: ", err.Error())
		return nil, err
	}
	return repo, nil
}

// One table per interaction type, all with the same shape. MergeTree
// does not enforce uniqueness so redelivered events land as duplicate
// rows, every read aggregates with uniqExact(event_id) to collapse
// them.
func (ch *clickhouseRepo) applyMigration(ctx context.Context) error {
	for _, table := range []string{"views", "likes", "comments"} {
		err := ch.conn.Exec(ctx, fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				event_id String,
				post_id  String,
				user_id  String,
				ts       DateTime
			)
			ENGINE = MergeTree
			ORDER BY (post_id, ts)`, table))
		if err != nil {
			return err
		}
	}
	return nil
}

func (ch *clickhouseRepo) InsertInteractions(ctx context.Context, metric models.Metric, rows []models.InteractionRow) error {
	if len(rows) == 0 {
		return nil
	}
	batch, err := ch.conn.PrepareBatch(ctx,
		fmt.Sprintf("INSERT INTO %s (event_id, post_id, user_id, ts)", tableFor(metric)))
	if err != nil {
		return err
	}
	for _, row := range rows {
		if err := batch.Append(row.EventId, row.PostId, row.UserId, row.Ts); err != nil {
			return err
		}
	}
	return batch.Send()
}

func (ch *clickhouseRepo) GetPostStats(ctx context.Context, postID string) (models.PostStats, error) {
	var stats models.PostStats
	targets := []struct {
		metric models.Metric
		dst    *uint64
	}{
		{models.MetricViews, &stats.Views},
		{models.MetricLikes, &stats.Likes},
		{models.MetricComments, &stats.Comments},
	}
	for _, t := range targets {
		row := ch.conn.QueryRow(ctx,
			fmt.Sprintf("SELECT uniqExact(event_id) FROM %s WHERE post_id = ?", tableFor(t.metric)),
			postID)
		if err := row.Scan(t.dst); err != nil {
			return models.PostStats{}, err
		}
	}
	return stats, nil
}

func (ch *clickhouseRepo) GetPostHistory(ctx context.Context, metric models.Metric, postID string) ([]models.HistoryBucket, error) {
	rows, err := ch.conn.Query(ctx, fmt.Sprintf(`
		SELECT toDate(ts) AS day, uniqExact(event_id) AS cnt
		FROM %s
		WHERE post_id = ?
		GROUP BY day
		ORDER BY day`, tableFor(metric)), postID)
	if err != nil {
		return nil, err
	}
	return scanBuckets(rows)
}

func (ch *clickhouseRepo) GetRecentComments(ctx context.Context, postID string) ([]models.HistoryBucket, error) {
	rows, err := ch.conn.Query(ctx, `
		SELECT toStartOfMinute(ts) AS minute, uniqExact(event_id) AS cnt
		FROM comments
		WHERE post_id = ? AND ts >= now() - INTERVAL 1 HOUR
		GROUP BY minute
		ORDER BY minute`, postID)
	if err != nil {
		return nil, err
	}
	return scanBuckets(rows)
}

func (ch *clickhouseRepo) GetTopPosts(ctx context.Context, metric models.Metric) ([]string, error) {
	return ch.topTen(ctx, metric, "post_id")
}

func (ch *clickhouseRepo) GetTopUsers(ctx context.Context, metric models.Metric) ([]string, error) {
	return ch.topTen(ctx, metric, "user_id")
}

// Ties are broken by id ascending so the leaderboard is stable across
// calls.
func (ch *clickhouseRepo) topTen(ctx context.Context, metric models.Metric, column string) ([]string, error) {
	rows, err := ch.conn.Query(ctx, fmt.Sprintf(`
		SELECT %s, uniqExact(event_id) AS cnt
		FROM %s
		GROUP BY %s
		ORDER BY cnt DESC, %s ASC
		LIMIT 10`, column, tableFor(metric), column, column))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		var cnt uint64
		if err := rows.Scan(&id, &cnt); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanBuckets(rows driver.Rows) ([]models.HistoryBucket, error) {
	defer rows.Close()
	var buckets []models.HistoryBucket
	for rows.Next() {
		var b models.HistoryBucket
		if err := rows.Scan(&b.Date, &b.Count); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

func (ch *clickhouseRepo) Close() error {
	return ch.conn.Close()
}
