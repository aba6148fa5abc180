package ingestor

import (
	"context"
	"errors"
	"testing"

	"github.com/alimx07/Social_Content_Backend/stats_service/models"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// Mock StatsRepo implementation for testing
type MockRepo struct {
	inserted []models.InteractionRow
	metrics  []models.Metric

	// number of InsertInteractions calls that should fail first
	failures int
}

func (m *MockRepo) InsertInteractions(ctx context.Context, metric models.Metric, rows []models.InteractionRow) error {
	if m.failures > 0 {
		m.failures--
		return errors.New("clickhouse unavailable")
	}
	m.inserted = append(m.inserted, rows...)
	m.metrics = append(m.metrics, metric)
	return nil
}

func (m *MockRepo) GetPostStats(ctx context.Context, postID string) (models.PostStats, error) {
	return models.PostStats{}, nil
}

func (m *MockRepo) GetPostHistory(ctx context.Context, metric models.Metric, postID string) ([]models.HistoryBucket, error) {
	return nil, nil
}

func (m *MockRepo) GetRecentComments(ctx context.Context, postID string) ([]models.HistoryBucket, error) {
	return nil, nil
}

func (m *MockRepo) GetTopPosts(ctx context.Context, metric models.Metric) ([]string, error) {
	return nil, nil
}

func (m *MockRepo) GetTopUsers(ctx context.Context, metric models.Metric) ([]string, error) {
	return nil, nil
}

func (m *MockRepo) Close() error { return nil }

// Mock Consumer implementation for testing
type MockConsumer struct {
	committed []*kafka.Message
}

func (m *MockConsumer) Poll(timeoutMs int) kafka.Event { return nil }

func (m *MockConsumer) CommitMessage(msg *kafka.Message) ([]kafka.TopicPartition, error) {
	m.committed = append(m.committed, msg)
	return nil, nil
}

func (m *MockConsumer) SubscribeTopics(topics []string, cb kafka.RebalanceCb) error { return nil }

func (m *MockConsumer) Close() error { return nil }

// Mock DLQProducer implementation for testing
type MockDLQ struct {
	parked []*kafka.Message
	fail   bool
}

func (m *MockDLQ) Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error {
	if m.fail {
		return errors.New("dlq unreachable")
	}
	m.parked = append(m.parked, msg)
	return nil
}

func testMessage(topic string, value string) *kafka.Message {
	return &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic},
		Key:            []byte("post_1"),
		Value:          []byte(value),
	}
}

func newTestIngestor(repo *MockRepo, dlq *MockDLQ) (*Ingestor, *MockConsumer) {
	consumer := &MockConsumer{}
	config := models.KafkaConfig{
		DLQTopic:   "stats.dlq",
		MaxRetries: 3,
	}
	return NewIngestor(consumer, dlq, repo, config), consumer
}

func Test_ProcessMessage_InsertsAndCommits(t *testing.T) {
	repo := &MockRepo{}
	ig, consumer := newTestIngestor(repo, &MockDLQ{})

	msg := testMessage(TopicLikes,
		`{"event_id":"e1","post_id":"post_1","user_id":"bob","liked_at":"2026-08-28T12:00:00Z"}`)
	if err := ig.ProcessMessage(context.Background(), msg); err != nil {
		t.Fatal(err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 inserted row, got %v", len(repo.inserted))
	}
	row := repo.inserted[0]
	if row.EventId != "e1" || row.PostId != "post_1" || row.UserId != "bob" {
		t.Fatalf("unexpected row: %+v", row)
	}
	if repo.metrics[0] != models.MetricLikes {
		t.Fatalf("expected likes metric, got %v", repo.metrics[0])
	}
	if len(consumer.committed) != 1 {
		t.Fatal("expected offset commit after insert")
	}
}

func Test_ProcessMessage_RoutesByTopic(t *testing.T) {
	repo := &MockRepo{}
	ig, _ := newTestIngestor(repo, &MockDLQ{})

	ig.ProcessMessage(context.Background(), testMessage(TopicViews,
		`{"event_id":"e1","post_id":"p1","user_id":"u1","viewed_at":"2026-08-28T12:00:00Z"}`))
	ig.ProcessMessage(context.Background(), testMessage(TopicComments,
		`{"event_id":"e2","post_id":"p1","comment_id":"c1","user_id":"u1","content":"hi","commented_at":"2026-08-28T12:00:00Z"}`))

	if len(repo.metrics) != 2 || repo.metrics[0] != models.MetricViews || repo.metrics[1] != models.MetricComments {
		t.Fatalf("unexpected metric routing: %v", repo.metrics)
	}
}

func Test_ProcessMessage_RetriesTransientFailure(t *testing.T) {
	repo := &MockRepo{failures: 2}
	dlq := &MockDLQ{}
	ig, consumer := newTestIngestor(repo, dlq)

	msg := testMessage(TopicLikes,
		`{"event_id":"e1","post_id":"post_1","user_id":"bob","liked_at":"2026-08-28T12:00:00Z"}`)
	if err := ig.ProcessMessage(context.Background(), msg); err != nil {
		t.Fatal(err)
	}
	if len(repo.inserted) != 1 {
		t.Fatal("expected insert to succeed on third attempt")
	}
	if len(dlq.parked) != 0 {
		t.Fatal("recovered event should not be parked")
	}
	if len(consumer.committed) != 1 {
		t.Fatal("expected offset commit after recovery")
	}
}

func Test_ProcessMessage_ParksAfterMaxRetries(t *testing.T) {
	repo := &MockRepo{failures: 10}
	dlq := &MockDLQ{}
	ig, consumer := newTestIngestor(repo, dlq)

	msg := testMessage(TopicLikes,
		`{"event_id":"e1","post_id":"post_1","user_id":"bob","liked_at":"2026-08-28T12:00:00Z"}`)
	if err := ig.ProcessMessage(context.Background(), msg); err != nil {
		t.Fatal(err)
	}
	if len(dlq.parked) != 1 {
		t.Fatal("expected event parked on DLQ")
	}
	if string(dlq.parked[0].Value) != string(msg.Value) {
		t.Fatal("DLQ should carry the raw message")
	}
	if len(consumer.committed) != 1 {
		t.Fatal("parked event must still commit its offset")
	}
}

func Test_ProcessMessage_MalformedGoesToDLQ(t *testing.T) {
	repo := &MockRepo{}
	dlq := &MockDLQ{}
	ig, consumer := newTestIngestor(repo, dlq)

	if err := ig.ProcessMessage(context.Background(), testMessage(TopicLikes, `not json`)); err != nil {
		t.Fatal(err)
	}
	if len(repo.inserted) != 0 {
		t.Fatal("malformed event should not be inserted")
	}
	if len(dlq.parked) != 1 || len(consumer.committed) != 1 {
		t.Fatal("malformed event should be parked and committed")
	}
}

func Test_ProcessMessage_DLQFailureKeepsOffset(t *testing.T) {
	repo := &MockRepo{failures: 10}
	dlq := &MockDLQ{fail: true}
	ig, consumer := newTestIngestor(repo, dlq)

	msg := testMessage(TopicLikes,
		`{"event_id":"e1","post_id":"post_1","user_id":"bob","liked_at":"2026-08-28T12:00:00Z"}`)
	if err := ig.ProcessMessage(context.Background(), msg); err == nil {
		t.Fatal("expected error when DLQ is unreachable")
	}
	if len(consumer.committed) != 0 {
		t.Fatal("offset must stay uncommitted so the event is redelivered")
	}
}

func Test_ProcessMessage_UnknownTopicParked(t *testing.T) {
	repo := &MockRepo{}
	dlq := &MockDLQ{}
	ig, _ := newTestIngestor(repo, dlq)

	if err := ig.ProcessMessage(context.Background(), testMessage("unrelated", `{}`)); err != nil {
		t.Fatal(err)
	}
	if len(dlq.parked) != 1 {
		t.Fatal("unknown topic should be parked")
	}
}
