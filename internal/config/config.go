package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	Storage struct {
		Driver string `mapstructure:"driver"`
		Key    string `mapstructure:"key"`
		Dir    string `mapstructure:"dir"`
	} `mapstructure:"storage"`
	Retry struct {
		InitialInterval time.Duration `mapstructure:"initial_interval"`
		MaxElapsed      time.Duration `mapstructure:"max_elapsed"`
	} `mapstructure:"retry"`
	Backup struct {
		Retain int `mapstructure:"retain"`
	} `mapstructure:"backup"`
	Seed struct {
		Enabled bool `mapstructure:"enabled"`
		Copies  int  `mapstructure:"copies"`
	} `mapstructure:"seed"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	SQLite struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"sqlite"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
	Jaeger struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"jaeger"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("storage.driver", DriverFile)
	v.SetDefault("storage.key", "portfolios")
	v.SetDefault("storage.dir", "./data")
	v.SetDefault("retry.initial_interval", 100*time.Millisecond)
	v.SetDefault("retry.max_elapsed", 3*time.Second)
	v.SetDefault("seed.enabled", true)
	v.SetDefault("seed.copies", 3)
	v.SetDefault("backup.retain", 10)
	v.SetDefault("sqlite.path", "./data/portfolios.db")
}

// LoadConfig reads .env, then config.yaml from the given paths (the working
// directory when none are given), then environment overrides.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	envFiles := make([]string, len(paths))
	for i, p := range paths {
		envFiles[i] = strings.TrimRight(p, "/") + "/.env"
	}
	if err = godotenv.Load(envFiles...); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	setDefaults(v)
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("storage.driver", "STORAGE_DRIVER")
	v.BindEnv("storage.key", "STORAGE_KEY")
	v.BindEnv("storage.dir", "STORAGE_DIR")
	v.BindEnv("retry.initial_interval", "RETRY_INITIAL_INTERVAL")
	v.BindEnv("retry.max_elapsed", "RETRY_MAX_ELAPSED")
	v.BindEnv("seed.enabled", "SEED_ENABLED")
	v.BindEnv("seed.copies", "SEED_COPIES")
	v.BindEnv("backup.retain", "BACKUP_RETAIN")
	v.BindEnv("db.dsn", "DB_DSN")
	v.BindEnv("sqlite.path", "SQLITE_PATH")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("jaeger.otlp_endpoint", "JAEGER_OTLP_ENDPOINT")

	v.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	v.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	v.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")

	if err = v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Kafka.Brokers = splitBrokers(cfg.Kafka.Brokers)

	err = cfg.Validate()
	return
}

// KAFKA_BROKERS arrives as one comma separated string from the environment.
func splitBrokers(in []string) []string {
	out := make([]string, 0, len(in))
	for _, b := range in {
		for _, part := range strings.Split(b, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverFile, DriverRedis, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.Key == "" {
		return fmt.Errorf("storage key must not be empty")
	}
	if c.Storage.Driver == DriverPostgres && c.DB.DSN == "" {
		return fmt.Errorf("db.dsn is required for the postgres driver")
	}
	if c.Storage.Driver == DriverRedis && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required for the redis driver")
	}
	if c.Backup.Retain < 0 {
		return fmt.Errorf("backup.retain must not be negative, got %d", c.Backup.Retain)
	}
	if c.Seed.Copies <= 0 {
		return fmt.Errorf("seed.copies must be positive, got %d", c.Seed.Copies)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
