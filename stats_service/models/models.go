package models

import "time"

type Config struct {
	ClickHouseHost     string
	ClickHousePort     string
	ClickHouseUser     string
	ClickHousePassword string
	ClickHouseDB       string

	ServerHost string
	ServerPort string

	ServerHttpPort string
}

type KafkaConfig struct {
	BootStrapServers string
	GroupID          string
	OffsetReset      string

	// for better batching
	FetchMinBytes string

	Topics     []string
	DLQTopic   string
	MaxRetries int
}

// Metric selects which interaction a history or leaderboard query
// aggregates over.
type Metric int

const (
	MetricViews Metric = iota
	MetricLikes
	MetricComments
)

// Interaction events as they arrive from the posts side. The event_id
// travels with every redelivery of the same event, counting is done
// with uniqExact over it so duplicates collapse.
type ViewEvent struct {
	EventId  string `json:"event_id"`
	PostId   string `json:"post_id"`
	UserId   string `json:"user_id"`
	ViewedAt string `json:"viewed_at"`
}

type LikeEvent struct {
	EventId string `json:"event_id"`
	PostId  string `json:"post_id"`
	UserId  string `json:"user_id"`
	LikedAt string `json:"liked_at"`
}

type CommentEvent struct {
	EventId     string `json:"event_id"`
	PostId      string `json:"post_id"`
	CommentId   string `json:"comment_id"`
	UserId      string `json:"user_id"`
	Content     string `json:"content"`
	CommentedAt string `json:"commented_at"`
}

// InteractionRow is the shape all three ClickHouse tables share.
type InteractionRow struct {
	EventId string    `ch:"event_id"`
	PostId  string    `ch:"post_id"`
	UserId  string    `ch:"user_id"`
	Ts      time.Time `ch:"ts"`
}

// PostStats are the per-post interaction totals.
type PostStats struct {
	Views    uint64
	Likes    uint64
	Comments uint64
}

// HistoryBucket is one time bucket of one metric for one post, a day
// for the daily histories and a minute for the recent comments view.
type HistoryBucket struct {
	Date  time.Time
	Count uint64
}
