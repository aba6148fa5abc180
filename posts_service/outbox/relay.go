package outbox

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/alimx07/Social_Content_Backend/posts_service/models"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/lib/pq"
)

// Producer is the part of *kafka.Producer the relay needs.
type Producer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
	Flush(timeoutMs int) int
	Close()
}

// Relay drains the outbox table into Kafka. Events are written to the
// outbox inside the same transaction as the content change, so draining
// later can lose nothing. Rows are locked with SKIP LOCKED, several
// relay instances can run against the same table without double sends
// inside one polling round. A row is deleted only after the broker acks
// its message, a crash in between redelivers the event with the same
// event_id and the stats side deduplicates it.
type Relay struct {
	db        *sql.DB
	producer  Producer
	interval  time.Duration
	batchSize int
}

func NewRelay(db *sql.DB, producer Producer, config models.KafkaConfig) *Relay {
	return &Relay{
		db:        db,
		producer:  producer,
		interval:  config.RelayInterval,
		batchSize: config.RelayBatchSize,
	}
}

func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.producer.Flush(5000)
			return
		case <-ticker.C:
			// drain fully on each tick so a burst does not wait
			// for the next interval
			for {
				n, err := r.DrainOnce(ctx)
				if err != nil {
					log.Println("Error in draining outbox: ", err.Error())
					break
				}
				if n < r.batchSize {
					break
				}
			}
		}
	}
}

// DrainOnce delivers one batch and reports how many rows it handled.
func (r *Relay) DrainOnce(ctx context.Context) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT id, topic, kafka_key, payload FROM outbox
		 ORDER BY id
		 LIMIT $1
		 FOR UPDATE SKIP LOCKED`, r.batchSize)
	if err != nil {
		return 0, err
	}
	var batch []models.OutboxRow
	for rows.Next() {
		var row models.OutboxRow
		if err := rows.Scan(&row.Id, &row.Topic, &row.KafkaKey, &row.Payload); err != nil {
			rows.Close()
			return 0, err
		}
		batch = append(batch, row)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}
	if len(batch) == 0 {
		return 0, nil
	}

	delivered := r.publishBatch(batch)
	if len(delivered) > 0 {
		_, err = tx.ExecContext(ctx, `DELETE FROM outbox WHERE id = ANY($1)`, pq.Array(delivered))
		if err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(batch), nil
}

// publishBatch produces the batch to Kafka and returns the ids of the
// rows the broker acked. Rows that fail to enqueue or to deliver are
// left out, their rows survive the round and are retried.
func (r *Relay) publishBatch(batch []models.OutboxRow) []int64 {
	deliveryChan := make(chan kafka.Event, len(batch))
	inflight := 0
	for _, row := range batch {
		topic := row.Topic
		err := r.producer.Produce(&kafka.Message{
			TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
			Key:            []byte(row.KafkaKey),
			Value:          row.Payload,
			Opaque:         row.Id,
		}, deliveryChan)
		if err != nil {
			log.Printf("Error in producing outbox row {%v}: %v\n", row.Id, err.Error())
			continue
		}
		inflight++
	}

	delivered := make([]int64, 0, inflight)
	for i := 0; i < inflight; i++ {
		e := <-deliveryChan
		m, ok := e.(*kafka.Message)
		if !ok {
			continue
		}
		if m.TopicPartition.Error != nil {
			log.Printf("Delivery failed for outbox row {%v}: %v\n",
				m.Opaque, m.TopicPartition.Error.Error())
			continue
		}
		delivered = append(delivered, m.Opaque.(int64))
	}
	return delivered
}
