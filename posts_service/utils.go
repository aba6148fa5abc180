package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/alimx07/Social_Content_Backend/posts_service/models"
	"github.com/joho/godotenv"
)

func LoadConfig() (models.Config, error) {
	godotenv.Load()
	config := models.Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		ServerPort:     os.Getenv("SERVER_PORT"),
		ServerHost:     os.Getenv("SERVER_HOST"),
		ServerHttpPort: os.Getenv("SERVER_HTTP_PORT"),

		CachePassword: os.Getenv("CACHE_PASSWORD"),
		CacheHost:     os.Getenv("CACHE_HOST"),
		CachePort:     os.Getenv("CACHE_PORT"),
		CacheTTL:      parseDuration(os.Getenv("CACHE_TTL"), 5*time.Minute),
	}
	return config, nil
}

func LoadKafkaConfig() (models.KafkaConfig, error) {
	config := models.KafkaConfig{
		BootStrapServers: os.Getenv("BOOTSTRAP_SERVERS"),
		Acks:             os.Getenv("ACKS"),
		Idempotence:      os.Getenv("IDEMPOTENCE"),
		ComperssionType:  os.Getenv("COMPRESSION_TYPE"),
		LingerMs:         os.Getenv("LINGER_MS"),

		RelayInterval:  parseDuration(os.Getenv("RELAY_INTERVAL"), time.Second),
		RelayBatchSize: parseInt(os.Getenv("RELAY_BATCH_SIZE"), 100),
	}
	return config, nil
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration {%v}, using default %v\n", s, def)
		return def
	}
	return d
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
