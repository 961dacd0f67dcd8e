package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"       validate:"required"`
	Logger      LoggerConfig      `yaml:"logger"       validate:"required"`
	Gin         GinConfig         `yaml:"gin"          validate:"required"`
	Storage     StorageConfig     `yaml:"storage"      validate:"required"`
	Postgres    PostgresConfig    `yaml:"postgres"`
	ClubService ClubServiceConfig `yaml:"club_service" validate:"required"`
	CORS        CORSConfig        `yaml:"cors"`
	Telegram    TelegramConfig    `yaml:"telegram"`
	RabbitMQ    RabbitMQConfig    `yaml:"rabbitmq"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"15s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type StorageConfig struct {
	Driver        string `yaml:"driver"         env:"STORAGE_DRIVER"  env-default:"postgres"   validate:"required,oneof=memory postgres"`
	MigrationsDir string `yaml:"migrations_dir" env:"MIGRATIONS_DIR"  env-default:"migrations" validate:"required"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"tennishub" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ClubServiceConfig struct {
	BaseURL        string        `yaml:"base_url"        env:"CLUB_SERVICE_URL"             env-default:"http://localhost:8081" validate:"required,url"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"CLUB_SERVICE_CONNECT_TIMEOUT" env-default:"5s"                    validate:"gt=0"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"CLUB_SERVICE_REQUEST_TIMEOUT" env-default:"10s"                   validate:"gt=0"`
	RetryAttempts  int           `yaml:"retry_attempts"  env:"CLUB_SERVICE_RETRY_ATTEMPTS"  env-default:"3"                     validate:"min=1"`
	RetryDelay     time.Duration `yaml:"retry_delay"     env:"CLUB_SERVICE_RETRY_DELAY"     env-default:"100ms"                 validate:"gt=0"`
	HealthInterval time.Duration `yaml:"health_interval" env:"CLUB_SERVICE_HEALTH_INTERVAL" env-default:"30s"                   validate:"gt=0"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins" env:"CORS_ALLOW_ORIGINS" env-default:"*" env-separator:","`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

type RabbitMQConfig struct {
	URL      string `yaml:"url"      env:"RABBITMQ_URL"      env-default:""`
	Exchange string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"tennishub.registrations"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
