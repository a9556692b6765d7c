package config

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Load reads a local .env file into the environment if one exists.
func Load() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using process environment")
	}
}

func EnvOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func MustInitPostgres() *sql.DB {
	dbHost := EnvOr("DB_HOST", "localhost")
	dbPort := EnvOr("DB_PORT", "5432")
	dbName := EnvOr("DB_NAME", "tastybites")
	dbUser := EnvOr("DB_USER", "postgres")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}

	if err = db.Ping(); err != nil {
		logrus.Fatal("Failed to ping database: ", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

// NewRedis returns a Redis client, or nil when REDIS_HOST is unset or the
// server is unreachable. The menu cache is optional in development.
func NewRedis() *redis.Client {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: host + ":" + EnvOr("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.Warn("Redis unreachable, menu cache disabled: ", err)
		return nil
	}

	return client
}

// NewKafkaWriter returns a writer for the given topic, or nil when
// KAFKA_BROKER is unset. Query events are best-effort analytics.
func NewKafkaWriter(topic string) *kafka.Writer {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return nil
	}

	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
