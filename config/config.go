package config

import (
	// Go Internal Packages
	"time"

	// Local Packages
	errors "fraud-dash/errors"
)

var DefaultConfig = []byte(`
application: "fraud-dash"

logger:
  level: "debug"

is_prod_mode: false

http:
  port: "8080"
  read_timeout: "15s"
  write_timeout: "15s"
  idle_timeout: "60s"
  shutdown_timeout: "5s"
  allowed_origins:
    - "*"

feed:
  capacity: 20
  initial_size: 10
  interval: "3s"
  amount_min: 10
  amount_max: 5009
  user_id_max: 1000
  seed: 0
  preserve_on_restart: false
  always_on: false
  sink_timeout: "2s"

mongo:
  uri: "mongodb://localhost:27017"
  database: "frauddash"
  collection: "feed_transactions"

redis:
  enabled: false
  uri: "localhost:6379"
  password: ""
  snapshot_key: "feed:snapshot"
  dlq_prefix: "feed:dlq"

kafka:
  brokers:
    - "localhost:9092"
  publish: false
  topic: "feed-transactions"
  records_per_poll: 500
  consumer_name: "feed-archiver"
`)

type Config struct {
	Application string `koanf:"application"`
	Logger      Logger `koanf:"logger"`
	IsProdMode  bool   `koanf:"is_prod_mode"`
	HTTP        HTTP   `koanf:"http"`
	Feed        Feed   `koanf:"feed"`
	Mongo       Mongo  `koanf:"mongo"`
	Redis       Redis  `koanf:"redis"`
	Kafka       Kafka  `koanf:"kafka"`
}

type Logger struct {
	Level string `koanf:"level"`
}

type HTTP struct {
	Port            string        `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	AllowedOrigins  []string      `koanf:"allowed_origins"`
}

type Feed struct {
	Capacity          int           `koanf:"capacity"`
	InitialSize       int           `koanf:"initial_size"`
	Interval          time.Duration `koanf:"interval"`
	AmountMin         int           `koanf:"amount_min"`
	AmountMax         int           `koanf:"amount_max"`
	UserIDMax         int           `koanf:"user_id_max"`
	Seed              uint64        `koanf:"seed"`
	PreserveOnRestart bool          `koanf:"preserve_on_restart"`
	AlwaysOn          bool          `koanf:"always_on"`
	SinkTimeout       time.Duration `koanf:"sink_timeout"`
}

type Mongo struct {
	URI        string `koanf:"uri"`
	Database   string `koanf:"database"`
	Collection string `koanf:"collection"`
}

type Redis struct {
	Enabled     bool   `koanf:"enabled"`
	URI         string `koanf:"uri"`
	Password    string `koanf:"password"`
	SnapshotKey string `koanf:"snapshot_key"`
	DLQPrefix   string `koanf:"dlq_prefix"`
}

type Kafka struct {
	Brokers        []string `koanf:"brokers"`
	Publish        bool     `koanf:"publish"`
	Topic          string   `koanf:"topic"`
	RecordsPerPoll int      `koanf:"records_per_poll"`
	ConsumerName   string   `koanf:"consumer_name"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	ve := errors.ValidationErrs()

	if c.Application == "" {
		ve.Add("application", "cannot be empty")
	}
	if c.Logger.Level == "" {
		ve.Add("logger.level", "cannot be empty")
	}
	if c.HTTP.Port == "" {
		ve.Add("http.port", "cannot be empty")
	}

	if c.Feed.Capacity <= 0 {
		ve.Add("feed.capacity", "must be positive")
	}
	if c.Feed.InitialSize < 0 || c.Feed.InitialSize > c.Feed.Capacity {
		ve.Add("feed.initial_size", "must be between 0 and feed.capacity")
	}
	if c.Feed.Interval <= 0 {
		ve.Add("feed.interval", "must be positive")
	}
	if c.Feed.AmountMin <= 0 {
		ve.Add("feed.amount_min", "must be positive")
	}
	if c.Feed.AmountMax < c.Feed.AmountMin {
		ve.Add("feed.amount_max", "cannot be lower than feed.amount_min")
	}
	if c.Feed.UserIDMax <= 0 {
		ve.Add("feed.user_id_max", "must be positive")
	}
	if c.Feed.PreserveOnRestart && !c.Redis.Enabled {
		ve.Add("feed.preserve_on_restart", "requires redis.enabled")
	}

	if c.Redis.Enabled && c.Redis.URI == "" {
		ve.Add("redis.uri", "cannot be empty")
	}
	if c.Kafka.Publish {
		if len(c.Kafka.Brokers) == 0 {
			ve.Add("kafka.brokers", "cannot be empty")
		}
		if c.Kafka.Topic == "" {
			ve.Add("kafka.topic", "cannot be empty")
		}
	}

	return ve.Err()
}

// ValidateArchiver validates the sections the archiver depends on
func (c *Config) ValidateArchiver() error {
	ve := errors.ValidationErrs()

	if c.Mongo.URI == "" {
		ve.Add("mongo.uri", "cannot be empty")
	}
	if c.Mongo.Database == "" {
		ve.Add("mongo.database", "cannot be empty")
	}
	if c.Redis.URI == "" {
		ve.Add("redis.uri", "cannot be empty")
	}
	if len(c.Kafka.Brokers) == 0 {
		ve.Add("kafka.brokers", "cannot be empty")
	}
	if c.Kafka.Topic == "" {
		ve.Add("kafka.topic", "cannot be empty")
	}
	if c.Kafka.ConsumerName == "" {
		ve.Add("kafka.consumer_name", "cannot be empty")
	}

	return ve.Err()
}
