package main

import (
	"context"
	"log"

	"github.com/alimx07/Social_Content_Backend/posts_service/cachedRepo"
	"github.com/alimx07/Social_Content_Backend/posts_service/db"
	"github.com/alimx07/Social_Content_Backend/posts_service/outbox"
	"github.com/alimx07/Social_Content_Backend/posts_service/postsRepo"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

func main() {
	InitLogger()

	config, err := LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config file: ", err.Error())
	}
	kafkaConfig, err := LoadKafkaConfig()
	if err != nil {
		log.Fatal("Failed to load kafka config: ", err.Error())
	}

	database, err := db.InitDB(config)
	if err != nil {
		log.Fatal("Failed to initialize database connection: ", err.Error())
	}
	defer database.Close()

	repo := postsRepo.NewPostgresRepo(database)
	cached, err := cachedRepo.NewRedisRepo(repo, config)
	if err != nil {
		log.Fatal("Error in Loading Redis: ", err.Error())
	}
	defer cached.Close()

	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":  kafkaConfig.BootStrapServers,
		"acks":               kafkaConfig.Acks,
		"enable.idempotence": kafkaConfig.Idempotence,

		// for better batching
		"compression.type": kafkaConfig.ComperssionType,
		"linger.ms":        kafkaConfig.LingerMs,
	})
	if err != nil {
		log.Fatal("Error in intiallizing a kakfa producer: ", err.Error())
	}
	defer producer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	relay := outbox.NewRelay(database, producer, kafkaConfig)
	go relay.Run(ctx)

	postsService := NewPostsService(cached, config)
	go func() {
		log.Println(postsService.StartHealthServer())
	}()
	log.Fatal(postsService.start())
}
