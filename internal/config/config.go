package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultServiceName = "inkafarma"
	DefaultHTTPAddr    = ":8080"
	DefaultOrdersTopic = "orders"

	// PublishTimeout bounds a single hand-off to the notification channel.
	PublishTimeout = 300 * time.Millisecond
)

type Config struct {
	ServiceName string
	Env         string
	HTTPAddr    string

	// KafkaBrokers is empty when no broker is configured; published orders
	// are then handed to the logging sink instead.
	KafkaBrokers []string
	OrdersTopic  string

	// NotifyBuffer caps the in-flight notification queue.
	NotifyBuffer int

	// PaymentAllowReprocess restores the legacy behavior where paying an
	// already-paid order debits the ledger again.
	PaymentAllowReprocess bool
}

// Load reads configuration from the environment, after loading an optional
// .env file from the working directory.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServiceName:           getenvDefault("SERVICE_NAME", DefaultServiceName),
		Env:                   getenvDefault("ENV", "dev"),
		HTTPAddr:              getenvDefault("HTTP_ADDR", DefaultHTTPAddr),
		KafkaBrokers:          splitList(os.Getenv("KAFKA_BROKERS")),
		OrdersTopic:           getenvDefault("ORDERS_TOPIC", DefaultOrdersTopic),
		NotifyBuffer:          getenvInt("NOTIFY_BUFFER", 1024),
		PaymentAllowReprocess: getenvBool("PAYMENT_ALLOW_REPROCESS", false),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
