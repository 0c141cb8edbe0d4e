package config

import (
	"flag"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"os"
	"time"
)

type Config struct {
	Env        string   `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer          `yaml:"http_server"`
	Storage    Storage  `yaml:"storage"`
	Notifier   Notifier `yaml:"notifier"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Storage selects the key-value backend the planner state is mirrored to.
type Storage struct {
	Driver         string   `yaml:"driver" env:"STORAGE_DRIVER" env-default:"file"`
	Codec          string   `yaml:"codec" env:"STORAGE_CODEC" env-default:"json"`
	Dir            string   `yaml:"dir" env:"STORAGE_DIR" env-default:"./data"`
	SQLitePath     string   `yaml:"sqlite_path" env:"STORAGE_SQLITE_PATH" env-default:"./data/planner.db"`
	ResetOnCorrupt bool     `yaml:"reset_on_corrupt" env:"STORAGE_RESET_ON_CORRUPT" env-default:"false"`
	Database       Database `yaml:"database"`
	Redis          Redis    `yaml:"redis"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"event_planner"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Redis struct {
	Host          string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port          int           `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password      string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB            int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	Prefix        string        `yaml:"prefix" env:"REDIS_PREFIX" env-default:"planner:"`
	DialTimeout   time.Duration `yaml:"dial_timeout" env-default:"5s"`
	MaxRetries    int           `yaml:"max_retries" env-default:"3"`
	RetryInterval time.Duration `yaml:"retry_interval" env-default:"1s"`
}

type Notifier struct {
	Kafka Kafka `yaml:"kafka"`
}

type Kafka struct {
	Enabled  bool          `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
	Brokers  []string      `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:"," env-default:"localhost:9092"`
	Topic    string        `yaml:"topic" env:"KAFKA_TOPIC" env-default:"planner.changes"`
	ClientID string        `yaml:"client_id" env:"KAFKA_CLIENT_ID" env-default:"event-planner"`
	Timeout  time.Duration `yaml:"timeout" env:"KAFKA_TIMEOUT" env-default:"5s"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		log.Fatal("config path is empty")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	return &cfg, nil
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
