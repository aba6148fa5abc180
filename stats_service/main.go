package main

import (
	"context"
	"log"

	"github.com/alimx07/Social_Content_Backend/stats_service/ingestor"
	"github.com/alimx07/Social_Content_Backend/stats_service/statsRepo"
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

	repo, err := statsRepo.NewClickhouseRepo(config)
	if err != nil {
		log.Fatal("Failed to initialize clickhouse connection: ", err.Error())
	}
	defer repo.Close()

	consumer, err := ingestor.NewKafkaConsumer(kafkaConfig)
	if err != nil {
		log.Fatal("Failed to initialize kafka consumer: ", err.Error())
	}

	// DLQ producer for events that can not be ingested
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": kafkaConfig.BootStrapServers,
	})
	if err != nil {
		log.Fatal("Error in intiallizing a kakfa producer: ", err.Error())
	}
	defer producer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ig := ingestor.NewIngestor(consumer, producer, repo, kafkaConfig)
	go ig.Run(ctx)

	statsService := NewStatsService(repo, config)
	go func() {
		log.Println(statsService.StartHealthServer())
	}()
	log.Fatal(statsService.start())
}
