package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// KafkaBrokers is a comma separated list. Empty logs notifications instead.
	KafkaBrokers           string
	KafkaNotificationTopic string

	// RedisAddr empty disables Idempotency-Key handling.
	RedisAddr      string
	IdempotencyTTL time.Duration

	Timezone            string
	NotifyTimeout       time.Duration
	CheckoutConcurrency int

	DigestSchedule string
	AdminEmail     string
	SystemAdminID  string

	LogLevel string
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Location resolves Timezone, defaulting to UTC.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}
