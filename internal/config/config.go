package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/mediana/WHX-BookingService/internal/domain"
	"github.com/mediana/WHX-BookingService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Storage StorageConfig `toml:"storage"`
	Admin   AdminConfig   `toml:"admin"`
	Mail    MailConfig    `toml:"mail"`
	Event   EventConfig   `toml:"event"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig настройки хранилища состояния.
// Driver выбирает бэкенд: file (по умолчанию), redis или postgres.
type StorageConfig struct {
	Driver   string         `toml:"driver"`
	File     FileStorage    `toml:"file"`
	Redis    RedisStorage   `toml:"redis"`
	Postgres DatabaseConfig `toml:"postgres"`
}

// FileStorage настройки файлового хранилища
type FileStorage struct {
	Dir string `toml:"dir"`
}

// RedisStorage настройки Redis
type RedisStorage struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// AdminConfig настройки административного API
type AdminConfig struct {
	Token string `toml:"token"`
}

// MailConfig настройки сервиса отправки подтверждений
type MailConfig struct {
	Enabled   bool   `toml:"enabled"`
	URL       string `toml:"url"`
	Timeout   int    `toml:"timeout"`
	QueueSize int    `toml:"queue_size"`
}

// EventConfig настройки выставки. Пустая секция означает
// конфигурацию по умолчанию (WHX Dubai 2026).
type EventConfig struct {
	Name             string            `toml:"name"`
	Days             []EventDayConfig  `toml:"days"`
	InquiryTypes     []InquiryTypeItem `toml:"inquiry_types"`
	ProductInterests []string          `toml:"product_interests"`
	Countries        []string          `toml:"countries"`
}

// EventDayConfig одна дата выставки с рабочим окном
type EventDayConfig struct {
	Date  string `toml:"date"`
	Start string `toml:"start"`
	End   string `toml:"end"`
}

// InquiryTypeItem тип запроса с описанием для формы
type InquiryTypeItem struct {
	Type        string `toml:"type"`
	Description string `toml:"description"`
}

// ToDomain конвертирует секцию [event] в доменную конфигурацию.
// Если секция не заполнена, возвращает конфигурацию по умолчанию.
func (e *EventConfig) ToDomain() (*domain.EventConfig, error) {
	if len(e.Days) == 0 {
		return domain.DefaultEventConfig(), nil
	}

	days := make([]domain.EventDay, len(e.Days))
	for i, day := range e.Days {
		start, err := types.NewTimeStringFromString(day.Start)
		if err != nil {
			return nil, fmt.Errorf("config: event day %s: invalid start %q: %w", day.Date, day.Start, err)
		}
		end, err := types.NewTimeStringFromString(day.End)
		if err != nil {
			return nil, fmt.Errorf("config: event day %s: invalid end %q: %w", day.Date, day.End, err)
		}
		days[i] = domain.EventDay{
			Date:  day.Date,
			Start: start,
			End:   end,
		}
	}

	event := &domain.EventConfig{
		Name:             e.Name,
		Days:             days,
		InquiryTypes:     make([]domain.InquiryType, len(e.InquiryTypes)),
		ProductInterests: e.ProductInterests,
		Countries:        e.Countries,
	}
	for i, it := range e.InquiryTypes {
		event.InquiryTypes[i] = domain.InquiryType{
			Type:        it.Type,
			Description: it.Description,
		}
	}

	// Незаполненные списки наследуются из конфигурации по умолчанию
	defaults := domain.DefaultEventConfig()
	if event.Name == "" {
		event.Name = defaults.Name
	}
	if len(event.InquiryTypes) == 0 {
		event.InquiryTypes = defaults.InquiryTypes
	}
	if len(event.ProductInterests) == 0 {
		event.ProductInterests = defaults.ProductInterests
	}
	if len(event.Countries) == 0 {
		event.Countries = defaults.Countries
	}

	return event, nil
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.File == "" {
		c.Logs.File = "logs/app.log"
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "whx-booking-service"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "file"
	}
	if c.Storage.File.Dir == "" {
		c.Storage.File.Dir = "data"
	}
	if c.Mail.Timeout == 0 {
		c.Mail.Timeout = 10
	}
	if c.Mail.QueueSize == 0 {
		c.Mail.QueueSize = 64
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "file", "redis", "postgres":
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}

	if c.Storage.Driver == "redis" && c.Storage.Redis.Addr == "" {
		return fmt.Errorf("config: storage.redis.addr is required for redis driver")
	}
	if c.Storage.Driver == "postgres" && c.Storage.Postgres.Host == "" {
		return fmt.Errorf("config: storage.postgres.host is required for postgres driver")
	}

	if c.Admin.Token == "" {
		return fmt.Errorf("config: admin.token is required")
	}

	if c.Mail.Enabled && c.Mail.URL == "" {
		return fmt.Errorf("config: mail.url is required when mail is enabled")
	}

	return nil
}
