package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Saikabilane/AutoSense/internal/domain"
)

// Поддерживаемые драйверы хранилища календаря
const (
	StorageCSV      = "csv"
	StoragePostgres = "postgres"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Calendar     CalendarConfig     `toml:"calendar"`
	Storage      StorageConfig      `toml:"storage"`
	Database     DatabaseConfig     `toml:"database"`
	CallService  CallServiceConfig  `toml:"call_service"`
	DecisionFeed DecisionFeedConfig `toml:"decision_feed"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CalendarConfig форма календаря и параметры сидера
type CalendarConfig struct {
	HorizonDays         int     `toml:"horizon_days"`
	FirstSlotHour       int     `toml:"first_slot_hour"`
	LastSlotHour        int     `toml:"last_slot_hour"`
	SlotDurationMinutes int     `toml:"slot_duration_minutes"`
	SlotCapacity        int     `toml:"slot_capacity"`
	SeedRatio           float64 `toml:"seed_ratio"`
	SeedMaxAttempts     int     `toml:"seed_max_attempts"` // 0 = по числу слотов
	GenerateIfMissing   bool    `toml:"generate_if_missing"`
}

// StorageConfig выбор хранилища календаря
type StorageConfig struct {
	Driver string `toml:"driver"` // csv | postgres
	File   string `toml:"file"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// CallServiceConfig параметры внешнего сервиса звонков
type CallServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// DecisionFeedConfig подписка на диагностические решения через MQTT
type DecisionFeedConfig struct {
	Enabled  bool   `toml:"enabled"`
	Broker   string `toml:"broker"`
	ClientID string `toml:"client_id"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	Topic    string `toml:"topic"`
	QoS      byte   `toml:"qos"`
}

// Load читает конфигурацию из TOML файла и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse разбирает конфигурацию из строки TOML
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SetDefaults заполняет незаданные значения
func (c *Config) SetDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "autosense"
	}

	if c.Calendar.HorizonDays == 0 {
		c.Calendar.HorizonDays = domain.DefaultHorizonDays
	}
	if c.Calendar.FirstSlotHour == 0 && c.Calendar.LastSlotHour == 0 {
		c.Calendar.FirstSlotHour = domain.DefaultFirstSlotHour
		c.Calendar.LastSlotHour = domain.DefaultLastSlotHour
	}
	if c.Calendar.SlotDurationMinutes == 0 {
		c.Calendar.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if c.Calendar.SlotCapacity == 0 {
		c.Calendar.SlotCapacity = domain.DefaultSlotCapacity
	}

	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageCSV
	}
	if c.Storage.File == "" {
		c.Storage.File = "AutoSense_ServiceCalendar.csv"
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.CallService.Timeout == 0 {
		c.CallService.Timeout = 120
	}

	if c.DecisionFeed.ClientID == "" {
		c.DecisionFeed.ClientID = "autosense-scheduler"
	}
	if c.DecisionFeed.Topic == "" {
		c.DecisionFeed.Topic = "autosense/decisions"
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	switch c.Storage.Driver {
	case StorageCSV:
		if c.Storage.File == "" {
			return fmt.Errorf("%w: storage.file is required for csv driver", ErrInvalidConfig)
		}
	case StoragePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres driver", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Calendar.SeedRatio < 0 || c.Calendar.SeedRatio > 1 {
		return fmt.Errorf("%w: calendar.seed_ratio must be in [0, 1]", ErrInvalidConfig)
	}
	if c.Calendar.SeedMaxAttempts < 0 {
		return fmt.Errorf("%w: calendar.seed_max_attempts must not be negative", ErrInvalidConfig)
	}

	if c.DecisionFeed.Enabled && c.DecisionFeed.Broker == "" {
		return fmt.Errorf("%w: decision_feed.broker is required when the feed is enabled", ErrInvalidConfig)
	}
	if c.DecisionFeed.QoS > 2 {
		return fmt.Errorf("%w: decision_feed.qos must be 0, 1 or 2", ErrInvalidConfig)
	}

	return nil
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// CalendarShape возвращает параметры генерации календаря
func (c CalendarConfig) CalendarShape() domain.CalendarConfig {
	return domain.CalendarConfig{
		HorizonDays:         c.HorizonDays,
		FirstSlotHour:       c.FirstSlotHour,
		LastSlotHour:        c.LastSlotHour,
		SlotDurationMinutes: c.SlotDurationMinutes,
		SlotCapacity:        c.SlotCapacity,
	}
}
