package ingestor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/alimx07/Social_Content_Backend/stats_service/models"
	"github.com/alimx07/Social_Content_Backend/stats_service/statsRepo"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

const (
	TopicViews    = "views"
	TopicLikes    = "likes"
	TopicComments = "comments"
)

// Consumer is the part of *kafka.Consumer the ingestor needs.
type Consumer interface {
	Poll(timeoutMs int) kafka.Event
	CommitMessage(m *kafka.Message) ([]kafka.TopicPartition, error)
	SubscribeTopics(topics []string, rebalanceCb kafka.RebalanceCb) error
	Close() error
}

// DLQProducer parks events that can not be ingested.
type DLQProducer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
}

// Ingestor reads interaction events from Kafka and appends them to the
// stats store. Offsets are committed manually and only after the store
// accepted the rows, a crash between insert and commit replays the
// event and uniqExact over event_id absorbs the duplicate. An event
// that keeps failing is parked on the DLQ topic and committed so one
// poison message can not stall the partition.
type Ingestor struct {
	consumer Consumer
	producer DLQProducer
	repo     statsRepo.StatsRepo
	config   models.KafkaConfig
}

func NewIngestor(consumer Consumer, producer DLQProducer, repo statsRepo.StatsRepo, config models.KafkaConfig) *Ingestor {
	return &Ingestor{
		consumer: consumer,
		producer: producer,
		repo:     repo,
		config:   config,
	}
}

func NewKafkaConsumer(config models.KafkaConfig) (*kafka.Consumer, error) {
	c, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers": config.BootStrapServers,
		"group.id":          config.GroupID,

		// for better batching
		"fetch.min.bytes":   config.FetchMinBytes,
		"auto.offset.reset": config.OffsetReset,

		// Offsets are committed by hand after the ClickHouse insert,
		// auto commit would let an offset get ahead of an insert that
		// has not happened yet.
		"enable.auto.commit": "false",
	})
	if err != nil {
		log.Println("Error in intiallizing a kakfa consumer: ", err.Error())
		return nil, err
	}
	err = c.SubscribeTopics(config.Topics, nil)
	if err != nil {
		log.Println("Error in subcribtion to topic: ", err.Error())
		return nil, err
	}
	return c, nil
}

func (ig *Ingestor) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			ig.consumer.Close()
			return
		default:
			ev := ig.consumer.Poll(100)
			switch e := ev.(type) {
			case *kafka.Message:
				if err := ig.ProcessMessage(ctx, e); err != nil {
					log.Println("Error Processing Message: ", err.Error())
				}
			case kafka.Error:
				log.Println("Error in Consuming events: ", e)
			}
		}
	}
}

// ProcessMessage inserts one event and commits its offset. Transient
// store failures are retried in place, after MaxRetries the raw
// message goes to the DLQ and the offset is committed anyway.
func (ig *Ingestor) ProcessMessage(ctx context.Context, msg *kafka.Message) error {
	row, metric, err := decodeEvent(msg)
	if err != nil {
		// Malformed payload, retrying can not fix it.
		log.Println("Error in decoding event: ", err.Error())
		return ig.park(msg)
	}

	for attempt := 0; attempt < ig.config.MaxRetries; attempt++ {
		err = ig.repo.InsertInteractions(ctx, metric, []models.InteractionRow{row})
		if err == nil {
			_, err = ig.consumer.CommitMessage(msg)
			return err
		}
		log.Printf("Error in inserting event{%v} (attempt %d): %v\n", row.EventId, attempt+1, err.Error())
		time.Sleep(time.Duration(attempt+1) * 100 * time.Millisecond)
	}
	return ig.park(msg)
}

func (ig *Ingestor) park(msg *kafka.Message) error {
	dlq := ig.config.DLQTopic
	err := ig.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &dlq, Partition: kafka.PartitionAny},
		Key:            msg.Key,
		Value:          msg.Value,
	}, nil)
	if err != nil {
		// DLQ unreachable, keep the offset uncommitted so the event
		// is redelivered instead of lost.
		log.Println("Error in producing to DLQ: ", err.Error())
		return err
	}
	_, err = ig.consumer.CommitMessage(msg)
	return err
}

func decodeEvent(msg *kafka.Message) (models.InteractionRow, models.Metric, error) {
	topic := ""
	if msg.TopicPartition.Topic != nil {
		topic = *msg.TopicPartition.Topic
	}
	switch topic {
	case TopicViews:
		var evt models.ViewEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			return models.InteractionRow{}, 0, err
		}
		ts, err := parseEventTime(evt.ViewedAt)
		if err != nil {
			return models.InteractionRow{}, 0, err
		}
		return models.InteractionRow{
			EventId: evt.EventId,
			PostId:  evt.PostId,
			UserId:  evt.UserId,
			Ts:      ts,
		}, models.MetricViews, nil
	case TopicLikes:
		var evt models.LikeEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			return models.InteractionRow{}, 0, err
		}
		ts, err := parseEventTime(evt.LikedAt)
		if err != nil {
			return models.InteractionRow{}, 0, err
		}
		return models.InteractionRow{
			EventId: evt.EventId,
			PostId:  evt.PostId,
			UserId:  evt.UserId,
			Ts:      ts,
		}, models.MetricLikes, nil
	case TopicComments:
		var evt models.CommentEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			return models.InteractionRow{}, 0, err
		}
		ts, err := parseEventTime(evt.CommentedAt)
		if err != nil {
			return models.InteractionRow{}, 0, err
		}
		return models.InteractionRow{
			EventId: evt.EventId,
			PostId:  evt.PostId,
			UserId:  evt.UserId,
			Ts:      ts,
		}, models.MetricComments, nil
	default:
		return models.InteractionRow{}, 0, fmt.Errorf("unknown topic %q", topic)
	}
}

func parseEventTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
