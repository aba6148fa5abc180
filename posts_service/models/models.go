package models

import (
	"errors"
	"time"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBName     string
	DBPassword string
	ServerHost string
	ServerPort string

	ServerHttpPort string

	CacheHost     string
	CachePort     string
	CachePassword string
	CacheTTL      time.Duration
}

type KafkaConfig struct {
	BootStrapServers string
	Acks             string
	Idempotence      string
	ComperssionType  string
	LingerMs         string

	RelayInterval  time.Duration
	RelayBatchSize int
}

type Post struct {
	Id          string
	Title       string
	Description string
	Creator_id  string
	Is_private  bool
	Tags        []string
	Created_at  time.Time
	Updated_at  time.Time
}

type Comment struct {
	Id         string
	Post_id    string
	User_id    string
	Content    string
	Created_at time.Time
}

type Like struct {
	Post_id    string
	User_id    string
	Created_at time.Time
}

type View struct {
	Post_id   string
	User_id   string
	Viewed_at time.Time
}

// Sentinel errors returned by the storage layer. The gRPC layer maps
// them to status codes, raw storage errors never leave the service.
var (
	ErrNotFound     = errors.New("post not found")
	ErrAlreadyLiked = errors.New("post already liked by this user")
)

// One Kafka topic per interaction type.
const (
	TopicViews    = "views"
	TopicLikes    = "likes"
	TopicComments = "comments"
)

// Interaction event envelopes, JSON-serialized into the outbox and from
// there onto Kafka. EventId is assigned once by the producer inside the
// content transaction, so a redelivered event keeps the same id and the
// stats side can count it exactly once.
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

// OutboxRow is one undelivered event waiting for the relay.
type OutboxRow struct {
	Id       int64
	Topic    string
	KafkaKey string
	Payload  []byte
}
