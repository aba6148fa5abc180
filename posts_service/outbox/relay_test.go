package outbox

import (
	"errors"
	"testing"

	"github.com/alimx07/Social_Content_Backend/posts_service/models"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// Mock Producer implementation for testing
type MockProducer struct {
	produced []*kafka.Message

	// ids that should fail at enqueue time
	enqueueFail map[int64]bool
	// ids that enqueue fine but come back with a delivery error
	deliveryFail map[int64]bool
}

func (m *MockProducer) Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error {
	id := msg.Opaque.(int64)
	if m.enqueueFail[id] {
		return errors.New("queue full")
	}
	m.produced = append(m.produced, msg)
	ack := *msg
	if m.deliveryFail[id] {
		ack.TopicPartition.Error = errors.New("broker unreachable")
	}
	go func() { deliveryChan <- &ack }()
	return nil
}

func (m *MockProducer) Flush(timeoutMs int) int {
	return 0
}

func (m *MockProducer) Close() {}

func testBatch(ids ...int64) []models.OutboxRow {
	rows := make([]models.OutboxRow, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.OutboxRow{
			Id:       id,
			Topic:    models.TopicLikes,
			KafkaKey: "post_1",
			Payload:  []byte(`{"event_id":"e1","post_id":"post_1"}`),
		})
	}
	return rows
}

func Test_PublishBatch_AllDelivered(t *testing.T) {
	producer := &MockProducer{}
	relay := &Relay{producer: producer}

	delivered := relay.publishBatch(testBatch(1, 2, 3))
	if len(delivered) != 3 {
		t.Fatalf("expected 3 delivered, got %v", delivered)
	}
	if len(producer.produced) != 3 {
		t.Fatalf("expected 3 produced messages, got %v", len(producer.produced))
	}
	msg := producer.produced[0]
	if *msg.TopicPartition.Topic != models.TopicLikes {
		t.Fatalf("unexpected topic: %v", *msg.TopicPartition.Topic)
	}
	if string(msg.Key) != "post_1" {
		t.Fatalf("unexpected key: %v", string(msg.Key))
	}
}

func Test_PublishBatch_EnqueueFailureSkipsRow(t *testing.T) {
	producer := &MockProducer{
		enqueueFail: map[int64]bool{2: true},
	}
	relay := &Relay{producer: producer}

	delivered := relay.publishBatch(testBatch(1, 2, 3))
	if len(delivered) != 2 {
		t.Fatalf("expected 2 delivered, got %v", delivered)
	}
	for _, id := range delivered {
		if id == 2 {
			t.Fatal("row 2 should not be delivered")
		}
	}
}

func Test_PublishBatch_DeliveryErrorKeepsRow(t *testing.T) {
	producer := &MockProducer{
		deliveryFail: map[int64]bool{1: true, 3: true},
	}
	relay := &Relay{producer: producer}

	delivered := relay.publishBatch(testBatch(1, 2, 3))
	if len(delivered) != 1 || delivered[0] != 2 {
		t.Fatalf("expected only row 2 delivered, got %v", delivered)
	}
}
