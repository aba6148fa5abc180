package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/alimx07/Social_Content_Backend/stats_service/models"
	"github.com/joho/godotenv"
)

func LoadConfig() (models.Config, error) {
	godotenv.Load()
	config := models.Config{
		ClickHouseHost:     os.Getenv("CLICKHOUSE_HOST"),
		ClickHousePort:     os.Getenv("CLICKHOUSE_PORT"),
		ClickHouseUser:     os.Getenv("CLICKHOUSE_USER"),
		ClickHousePassword: os.Getenv("CLICKHOUSE_PASSWORD"),
		ClickHouseDB:       os.Getenv("CLICKHOUSE_DB"),

		ServerPort:     os.Getenv("SERVER_PORT"),
		ServerHost:     os.Getenv("SERVER_HOST"),
		ServerHttpPort: os.Getenv("SERVER_HTTP_PORT"),
	}
	return config, nil
}

func LoadKafkaConfig() (models.KafkaConfig, error) {
	config := models.KafkaConfig{
		BootStrapServers: os.Getenv("BOOTSTRAP_SERVERS"),
		GroupID:          os.Getenv("GROUP_ID"),
		OffsetReset:      os.Getenv("OFFSET_RESET"),
		FetchMinBytes:    os.Getenv("FETCH_MIN_BYTES"),
		Topics:           strings.Split(os.Getenv("TOPICS"), ","),
		DLQTopic:         os.Getenv("DLQ_TOPIC"),
		MaxRetries:       parseInt(os.Getenv("MAX_RETRIES"), 3),
	}
	if config.DLQTopic == "" {
		config.DLQTopic = "stats.dlq"
	}
	return config, nil
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Invalid number {%v}, using default %v\n", s, def)
		return def
	}
	return n
}
